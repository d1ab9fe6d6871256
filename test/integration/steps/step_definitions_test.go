//go:build integration

package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sales-dashboard/backend/config"
	"github.com/sales-dashboard/backend/internal/application/usecase/sale"
	"github.com/sales-dashboard/backend/internal/domain/entity"
	"github.com/sales-dashboard/backend/internal/domain/valueobject"
	"github.com/sales-dashboard/backend/internal/infra/dependency"
	"github.com/sales-dashboard/backend/internal/integration/entrypoint/view"
	"github.com/sales-dashboard/backend/internal/integration/persistence"
	"github.com/sales-dashboard/backend/internal/integration/persistence/model"
	"github.com/sales-dashboard/backend/internal/integration/statestore"
	"github.com/sales-dashboard/backend/test/integration/mock"
)

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri        string
	headers    map[string]string
	client     *http.Client
	response   *response
	db         *mock.Db
	redis      *mock.Redis
	serverPort int
	lastSaleID uint

	dashboard       *dependency.DashboardInjector
	dashboardServer *httptest.Server
	recordService   *mock.RecordService
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

var saleLinkPattern = regexp.MustCompile(`href="/sales/(\d+)"`)

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		redis:      mock.NewRedis(),
		db: mock.NewDb(map[string]any{
			"sales": &model.SaleModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		test.stopDashboard()
		test.stopRecordService()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^the following sales exist:$`, test.theFollowingSalesExist)
	ctx.Given(`^(\d+) sales are seeded$`, test.salesAreSeeded)

	// Dashboard steps
	ctx.Given(`^the dashboard is running$`, test.theDashboardIsRunning)
	ctx.Given(`^the dashboard is running against an unavailable record service$`, test.theDashboardIsRunningAgainstAnUnavailableRecordService)
	ctx.When(`^the dashboard refreshes its data$`, test.theDashboardRefreshesItsData)
	ctx.When(`^the dashboard restarts$`, test.theDashboardRestarts)
	ctx.When(`^I send a dashboard "([^"]*)" request to "([^"]*)"$`, test.iSendADashboardRequestTo)
	ctx.When(`^I send a dashboard "([^"]*)" request to "([^"]*)" with body:$`, test.iSendADashboardRequestToWithBody)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should be null$`, test.theResponseFieldShouldBeNull)
	ctx.Then(`^the response list "([^"]*)" should have (\d+) items$`, test.theResponseListShouldHaveItems)
	ctx.Then(`^the page should show "([^"]*)"$`, test.thePageShouldShow)
	ctx.Then(`^the page should list the sales "([^"]*)"$`, test.thePageShouldListTheSales)
	ctx.Then(`^the dashboard criteria field "([^"]*)" should be "([^"]*)"$`, test.theDashboardCriteriaFieldShouldBe)
	ctx.Then(`^the state store should contain '([^']*)'$`, test.theStateStoreShouldContain)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.response = nil
	t.lastSaleID = 0
	t.recordService = nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	if t.redis != nil {
		t.redis.Clear()
	}
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			injector := dependency.NewInjector(config.Load(), testDB.DbConn, func() bool {
				return testDB != nil && testDB.DbConn != nil
			})
			engine := injector.Router.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) theFollowingSalesExist(table *godog.Table) error {
	if len(table.Rows) < 2 {
		return errors.New("sales table needs a header and at least one row")
	}

	header := make([]string, len(table.Rows[0].Cells))
	for i, cell := range table.Rows[0].Cells {
		header[i] = cell.Value
	}

	repo := persistence.NewSaleRepository(t.db.DbConn)
	for _, row := range table.Rows[1:] {
		values := make(map[string]string, len(header))
		for i, cell := range row.Cells {
			values[header[i]] = cell.Value
		}

		amount, err := decimal.NewFromString(values["amount"])
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", values["amount"], err)
		}
		date, err := valueobject.ParseDate(values["date"])
		if err != nil {
			return err
		}
		var region *string
		if r := values["region"]; r != "" {
			region = &r
		}

		s := entity.NewSale(values["product"], values["category"], amount, region, date)
		if err := repo.Create(context.Background(), s); err != nil {
			return err
		}
		t.lastSaleID = s.ID
	}
	return nil
}

func (t *testContext) salesAreSeeded(count int) error {
	seeder := sale.NewSeedSalesUseCase(persistence.NewSaleRepository(t.db.DbConn), rand.New(rand.NewPCG(7, 11)))
	_, err := seeder.Execute(context.Background(), sale.SeedSalesInput{Count: count})
	return err
}

func (t *testContext) theDashboardIsRunning() error {
	t.startServer()
	return t.startDashboard(t.uri)
}

func (t *testContext) theDashboardIsRunningAgainstAnUnavailableRecordService() error {
	t.recordService = mock.NewRecordService()
	maintenance := map[string]any{"error": "maintenance"}
	t.recordService.Stub(http.MethodGet, "/api/v1/sales", http.StatusServiceUnavailable, maintenance)
	t.recordService.Stub(http.MethodGet, "/api/v1/sales/*", http.StatusServiceUnavailable, maintenance)
	t.recordService.Start()

	return t.startDashboard(t.recordService.URL())
}

func (t *testContext) startDashboard(recordServiceURL string) error {
	t.stopDashboard()

	cfg := config.Load()
	cfg.Dashboard.RecordServiceURL = recordServiceURL
	cfg.Dashboard.FetchTimeout = 2 * time.Second

	injector, err := dependency.NewDashboardInjector(cfg, statestore.NewRedisStorage(t.redis.Client), nil)
	if err != nil {
		return err
	}
	injector.Store.Load(context.Background())

	t.dashboard = injector
	t.dashboardServer = httptest.NewServer(injector.Router.Setup("test"))
	return nil
}

func (t *testContext) stopDashboard() {
	if t.dashboardServer != nil {
		t.dashboardServer.Close()
		t.dashboardServer = nil
	}
	t.dashboard = nil
}

func (t *testContext) stopRecordService() {
	if t.recordService != nil {
		t.recordService.Close()
		t.recordService = nil
	}
}

func (t *testContext) theStateStoreShouldContain(expected string) error {
	if t.dashboard == nil {
		return errors.New("dashboard is not running")
	}
	key := t.dashboard.Config.Dashboard.StateKey
	stored := t.redis.Stored(key)
	if !strings.Contains(stored, expected) {
		return fmt.Errorf("expected %q to contain %q, got %q", key, expected, stored)
	}
	return nil
}

func (t *testContext) theDashboardRefreshesItsData() error {
	if t.dashboard == nil {
		return errors.New("dashboard is not running")
	}
	t.dashboard.Worker.RefreshNow(context.Background())
	return nil
}

func (t *testContext) theDashboardRestarts() error {
	if t.dashboard == nil {
		return errors.New("dashboard is not running")
	}
	recordServiceURL := t.dashboard.Config.Dashboard.RecordServiceURL
	t.stopDashboard()
	return t.startDashboard(recordServiceURL)
}

func (t *testContext) iSendADashboardRequestTo(method, path string) error {
	if t.dashboardServer == nil {
		return errors.New("dashboard is not running")
	}
	return t.executeRequest(t.dashboardServer.URL, method, path, nil)
}

func (t *testContext) iSendADashboardRequestToWithBody(method, path string, body *godog.DocString) error {
	if t.dashboardServer == nil {
		return errors.New("dashboard is not running")
	}
	return t.executeRequest(t.dashboardServer.URL, method, path, []byte(body.Content))
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(t.uri, method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(t.uri, method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	return strings.ReplaceAll(content, "{{sale_id}}", strconv.FormatUint(uint64(t.lastSaleID), 10))
}

func (t *testContext) executeRequest(baseURL, method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := baseURL + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	// Capture the sale id for later requests
	if id, ok := responseBody["id"].(float64); ok && id > 0 {
		t.lastSaleID = uint(id)
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBeNull(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	value, exists := body[field]
	if !exists {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	if value != nil {
		return fmt.Errorf("field '%s' expected null, got %v", field, value)
	}
	return nil
}

func (t *testContext) theResponseListShouldHaveItems(field string, quantity int) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	items, ok := body[field].([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, body[field])
	}
	if len(items) != quantity {
		return fmt.Errorf("expected %d items in '%s', got %d", quantity, field, len(items))
	}
	return nil
}

func (t *testContext) thePageShouldShow(text string) error {
	page, err := t.htmlBody()
	if err != nil {
		return err
	}
	if !strings.Contains(page, text) {
		return fmt.Errorf("page does not contain %q", text)
	}
	return nil
}

func (t *testContext) thePageShouldListTheSales(ids string) error {
	page, err := t.htmlBody()
	if err != nil {
		return err
	}

	var got []string
	for _, match := range saleLinkPattern.FindAllStringSubmatch(page, -1) {
		got = append(got, match[1])
	}

	want := []string{}
	if ids != "" {
		want = strings.Split(ids, ",")
	}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		return fmt.Errorf("expected sales %v, got %v", want, got)
	}
	return nil
}

func (t *testContext) theDashboardCriteriaFieldShouldBe(field, expected string) error {
	if t.dashboard == nil {
		return errors.New("dashboard is not running")
	}

	signals := view.SignalsMap(t.dashboard.Store.Criteria())
	value, ok := signals[field]
	if !ok {
		return fmt.Errorf("unknown criteria field '%s'", field)
	}
	if actual := fmt.Sprintf("%v", value); actual != expected {
		return fmt.Errorf("criteria field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func (t *testContext) jsonBody() (map[string]any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	return body, nil
}

func (t *testContext) htmlBody() (string, error) {
	if t.response == nil {
		return "", errors.New("no response received")
	}
	page, ok := t.response.body.(string)
	if !ok {
		return "", fmt.Errorf("response is not a page: %v", t.response.body)
	}
	return page, nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			if value == nil {
				query = query.Where(fmt.Sprintf("%s IS NULL", key))
				continue
			}
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
