package mock

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

type stub struct {
	method  string
	pattern string
	status  int
	body    any
}

// RecordService is a stand-in for the record service HTTP API.
// Paths may use * to match one segment, e.g. /api/v1/sales/*.
type RecordService struct {
	mu       sync.Mutex
	stubs    []stub
	requests map[string]int
	server   *httptest.Server
}

func NewRecordService() *RecordService {
	return &RecordService{requests: map[string]int{}}
}

// Stub registers the response for method and path pattern. Later stubs win.
func (r *RecordService) Stub(method, pattern string, status int, body any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stubs = append(r.stubs, stub{method: method, pattern: pattern, status: status, body: body})
}

func (r *RecordService) Start() {
	r.server = httptest.NewServer(http.HandlerFunc(r.serve))
}

func (r *RecordService) URL() string {
	if r.server == nil {
		return ""
	}
	return r.server.URL
}

func (r *RecordService) Close() {
	if r.server != nil {
		r.server.Close()
		r.server = nil
	}
}

// Requests returns how many requests hit method and path.
func (r *RecordService) Requests(method, path string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.requests[method+" "+path]
}

func (r *RecordService) serve(w http.ResponseWriter, req *http.Request) {
	r.mu.Lock()
	r.requests[req.Method+" "+req.URL.Path]++
	s, ok := r.match(req.Method, req.URL.Path)
	r.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"no stub"}`))
		return
	}

	w.WriteHeader(s.status)
	_ = json.NewEncoder(w).Encode(s.body)
}

func (r *RecordService) match(method, path string) (stub, bool) {
	for i := len(r.stubs) - 1; i >= 0; i-- {
		s := r.stubs[i]
		if s.method == method && matchPath(s.pattern, path) {
			return s, true
		}
	}
	return stub{}, false
}

func matchPath(pattern, path string) bool {
	if pattern == path {
		return true
	}

	patternParts := strings.Split(pattern, "/")
	pathParts := strings.Split(path, "/")
	if len(patternParts) != len(pathParts) {
		return false
	}

	for i := range patternParts {
		if patternParts[i] != "*" && patternParts[i] != pathParts[i] {
			return false
		}
	}
	return true
}
