// Package uistate holds the dashboard view criteria, notifies subscribers on every change
// and persists the full criteria to a durable key-value slot.
package uistate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sales-dashboard/backend/internal/application/adapter"
	domainerror "github.com/sales-dashboard/backend/internal/domain/error"
	"github.com/sales-dashboard/backend/internal/domain/valueobject"
)

// DefaultStateKey is the slot key used when none is configured.
const DefaultStateKey = "sales:table-state"

// Listener receives a snapshot of the criteria after each change.
type Listener func(valueobject.Criteria)

// Store is the state container for the dashboard criteria.
// Listeners run while the change is being committed and must not modify the store.
type Store struct {
	// commitMu orders apply, persist and notify so the slot always holds the latest criteria.
	commitMu  sync.Mutex
	mu        sync.Mutex
	criteria  valueobject.Criteria
	storage   adapter.StateStorage
	key       string
	listeners map[int]Listener
	nextID    int
}

// NewStore creates a store holding the default criteria.
// A nil storage keeps the state in memory only.
func NewStore(storage adapter.StateStorage, key string) *Store {
	if key == "" {
		key = DefaultStateKey
	}
	return &Store{
		criteria:  valueobject.DefaultCriteria(),
		storage:   storage,
		key:       key,
		listeners: make(map[int]Listener),
	}
}

// Load restores the persisted criteria over the defaults.
// A missing, unreadable or malformed value leaves the defaults in place.
func (s *Store) Load(ctx context.Context) {
	if s.storage == nil {
		return
	}

	data, found, err := s.storage.Load(ctx, s.key)
	if err != nil {
		slog.Warn("Failed to read persisted criteria, using defaults", "key", s.key, "error", err)
		return
	}
	if !found {
		return
	}

	var patch valueobject.CriteriaPatch
	if err := json.Unmarshal(data, &patch); err != nil {
		slog.Warn("Discarding malformed persisted criteria", "key", s.key, "error", err)
		return
	}

	s.commitMu.Lock()
	defer s.commitMu.Unlock()

	s.mu.Lock()
	s.criteria = valueobject.DefaultCriteria().Merge(patch)
	snapshot, listeners := s.snapshotLocked()
	s.mu.Unlock()

	notify(listeners, snapshot)
	slog.Info("Restored persisted criteria", "key", s.key)
}

// Criteria returns a snapshot of the current criteria.
func (s *Store) Criteria() valueobject.Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria.Clone()
}

// Subscribe registers a listener and returns the function that removes it.
func (s *Store) Subscribe(listener Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = listener

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// SetSearchText sets the search text. The filter field is left untouched.
func (s *Store) SetSearchText(ctx context.Context, text string) {
	s.update(ctx, func(c *valueobject.Criteria) { c.SearchText = text })
}

// SetFilterField sets the field the search text is matched against.
// The search text is kept.
func (s *Store) SetFilterField(ctx context.Context, field valueobject.FilterField) error {
	if !field.IsValid() {
		return invalidValue("filterField", string(field))
	}
	s.update(ctx, func(c *valueobject.Criteria) { c.FilterField = field })
	return nil
}

// SetDateFrom sets or clears the inclusive lower date bound.
func (s *Store) SetDateFrom(ctx context.Context, from *time.Time) {
	s.update(ctx, func(c *valueobject.Criteria) { c.DateFrom = copyTime(from) })
}

// SetDateTo sets or clears the inclusive upper date bound.
func (s *Store) SetDateTo(ctx context.Context, to *time.Time) {
	s.update(ctx, func(c *valueobject.Criteria) { c.DateTo = copyTime(to) })
}

// SetSortField sets the sort field.
func (s *Store) SetSortField(ctx context.Context, field valueobject.SortField) error {
	if !field.IsValid() {
		return invalidValue("sortField", string(field))
	}
	s.update(ctx, func(c *valueobject.Criteria) { c.SortField = field })
	return nil
}

// SetSortOrder sets the sort order.
func (s *Store) SetSortOrder(ctx context.Context, order valueobject.SortOrder) error {
	if !order.IsValid() {
		return invalidValue("sortOrder", string(order))
	}
	s.update(ctx, func(c *valueobject.Criteria) { c.SortOrder = order })
	return nil
}

// SetChartSelection sets the chart shown in the panel.
func (s *Store) SetChartSelection(ctx context.Context, kind valueobject.ChartKind) error {
	if !kind.IsValid() {
		return invalidValue("chartSelection", string(kind))
	}
	s.update(ctx, func(c *valueobject.Criteria) { c.ChartSelection = kind })
	return nil
}

// SetShowPanel shows or hides the chart panel.
func (s *Store) SetShowPanel(ctx context.Context, show bool) {
	s.update(ctx, func(c *valueobject.Criteria) { c.ShowPanel = show })
}

// TogglePanel flips the chart panel visibility.
func (s *Store) TogglePanel(ctx context.Context) {
	s.update(ctx, func(c *valueobject.Criteria) { c.ShowPanel = !c.ShowPanel })
}

// ToggleSort selects a sort column the way a table header click does:
// the active column flips its order, another column becomes active unchanged in order.
func (s *Store) ToggleSort(ctx context.Context, field valueobject.SortField) error {
	if !field.IsValid() {
		return invalidValue("sortField", string(field))
	}
	s.update(ctx, func(c *valueobject.Criteria) {
		if c.SortField == field {
			c.SortOrder = c.SortOrder.Toggle()
			return
		}
		c.SortField = field
	})
	return nil
}

// Reset restores every field to its default.
func (s *Store) Reset(ctx context.Context) {
	s.update(ctx, func(c *valueobject.Criteria) { *c = valueobject.DefaultCriteria() })
}

// Hydrate merges the fields present in the patch over the current criteria.
// Enum values outside their set are skipped.
func (s *Store) Hydrate(ctx context.Context, patch valueobject.CriteriaPatch) {
	s.update(ctx, func(c *valueobject.Criteria) { *c = c.Merge(patch) })
}

// Apply merges the patch like Hydrate but rejects it whole when any enum value is unknown.
func (s *Store) Apply(ctx context.Context, patch valueobject.CriteriaPatch) error {
	if patch.FilterField != nil && !patch.FilterField.IsValid() {
		return invalidValue("filterField", string(*patch.FilterField))
	}
	if patch.SortField != nil && !patch.SortField.IsValid() {
		return invalidValue("sortField", string(*patch.SortField))
	}
	if patch.SortOrder != nil && !patch.SortOrder.IsValid() {
		return invalidValue("sortOrder", string(*patch.SortOrder))
	}
	if patch.ChartSelection != nil && !patch.ChartSelection.IsValid() {
		return invalidValue("chartSelection", string(*patch.ChartSelection))
	}
	s.Hydrate(ctx, patch)
	return nil
}

// update applies a change, persists the result and notifies listeners.
func (s *Store) update(ctx context.Context, apply func(*valueobject.Criteria)) {
	s.commitMu.Lock()
	defer s.commitMu.Unlock()

	s.mu.Lock()
	apply(&s.criteria)
	snapshot, listeners := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	notify(listeners, snapshot)
}

func (s *Store) snapshotLocked() (valueobject.Criteria, []Listener) {
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	return s.criteria.Clone(), listeners
}

// persist writes the criteria; failures are logged and the in-memory change stands.
func (s *Store) persist(ctx context.Context, criteria valueobject.Criteria) {
	if s.storage == nil {
		return
	}

	data, err := json.Marshal(criteria)
	if err != nil {
		slog.Error("Failed to encode criteria", "error", err)
		return
	}

	if err := s.storage.Save(ctx, s.key, data); err != nil {
		slog.Warn("Failed to persist criteria", "key", s.key, "error", err)
	}
}

func notify(listeners []Listener, criteria valueobject.Criteria) {
	for _, l := range listeners {
		l(criteria.Clone())
	}
}

func invalidValue(field, value string) error {
	return domainerror.NewDashboardError(
		domainerror.ErrCodeInvalidCriteriaValue,
		fmt.Sprintf("%s does not accept %q", field, value),
		domainerror.ErrInvalidCriteriaValue,
	)
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
