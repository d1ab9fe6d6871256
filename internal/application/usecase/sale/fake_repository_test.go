package sale

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/sales-dashboard/backend/internal/domain/entity"
	domainerror "github.com/sales-dashboard/backend/internal/domain/error"
)

// fakeSaleRepository is an in-memory adapter.SaleRepository.
type fakeSaleRepository struct {
	mu     sync.Mutex
	sales  map[uint]*entity.Sale
	nextID uint
	err    error
}

func newFakeSaleRepository(seed ...*entity.Sale) *fakeSaleRepository {
	r := &fakeSaleRepository{sales: make(map[uint]*entity.Sale), nextID: 1}
	for _, s := range seed {
		_ = r.Create(context.Background(), s)
	}
	return r
}

func (r *fakeSaleRepository) Create(_ context.Context, sale *entity.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	sale.ID = r.nextID
	r.nextID++
	stored := *sale
	r.sales[sale.ID] = &stored
	return nil
}

func (r *fakeSaleRepository) CreateBatch(ctx context.Context, sales []*entity.Sale) error {
	for _, s := range sales {
		if err := r.Create(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeSaleRepository) FindByID(_ context.Context, id uint) (*entity.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	s, ok := r.sales[id]
	if !ok {
		return nil, domainerror.ErrSaleNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSaleRepository) FindAll(_ context.Context) ([]*entity.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*entity.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		copied := *s
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ID > out[j].ID
		}
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

func (r *fakeSaleRepository) Update(_ context.Context, sale *entity.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if _, ok := r.sales[sale.ID]; !ok {
		return domainerror.ErrSaleNotFound
	}
	stored := *sale
	r.sales[sale.ID] = &stored
	return nil
}

func (r *fakeSaleRepository) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if _, ok := r.sales[id]; !ok {
		return domainerror.ErrSaleNotFound
	}
	delete(r.sales, id)
	return nil
}

func (r *fakeSaleRepository) DeleteAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	n := int64(len(r.sales))
	r.sales = make(map[uint]*entity.Sale)
	return n, nil
}

var errDatabaseDown = errors.New("database down")
