// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"sync"
	"time"

	"github.com/sales-dashboard/backend/internal/domain/entity"
)

// DatasetStatus describes the last refresh of the record set.
type DatasetStatus struct {
	Loaded    bool
	Count     int
	FetchedAt time.Time
	LastError string
}

// Dataset holds the record set most recently fetched from the Record Service.
// Each successful fetch replaces it whole.
type Dataset struct {
	mu        sync.RWMutex
	records   []*entity.Sale
	status    DatasetStatus
	listeners map[int]func()
	nextID    int
}

// NewDataset creates an empty, not yet loaded dataset.
func NewDataset() *Dataset {
	return &Dataset{
		listeners: make(map[int]func()),
	}
}

// Replace swaps in a new record set and notifies subscribers.
func (d *Dataset) Replace(records []*entity.Sale, fetchedAt time.Time) {
	d.mu.Lock()
	d.records = records
	d.status = DatasetStatus{
		Loaded:    true,
		Count:     len(records),
		FetchedAt: fetchedAt,
	}
	listeners := d.listenersLocked()
	d.mu.Unlock()

	for _, l := range listeners {
		l()
	}
}

// MarkFailed records a failed refresh. The current records are kept.
func (d *Dataset) MarkFailed(err error) {
	d.mu.Lock()
	d.status.LastError = err.Error()
	listeners := d.listenersLocked()
	d.mu.Unlock()

	for _, l := range listeners {
		l()
	}
}

// Records returns the current record set. Callers must not modify it.
func (d *Dataset) Records() []*entity.Sale {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.records
}

// Status returns the state of the last refresh.
func (d *Dataset) Status() DatasetStatus {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.status
}

// Subscribe registers a callback run after every replacement or failure.
func (d *Dataset) Subscribe(listener func()) func() {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := d.nextID
	d.nextID++
	d.listeners[id] = listener

	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		delete(d.listeners, id)
	}
}

func (d *Dataset) listenersLocked() []func() {
	out := make([]func(), 0, len(d.listeners))
	for _, l := range d.listeners {
		out = append(out, l)
	}
	return out
}
