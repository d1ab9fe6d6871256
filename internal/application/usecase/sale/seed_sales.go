package sale

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sales-dashboard/backend/internal/application/adapter"
	"github.com/sales-dashboard/backend/internal/domain/entity"
)

const (
	// DefaultSeedCount is the number of sales generated when no count is given.
	DefaultSeedCount = 200

	seedMinAmount = 5_000
	seedMaxAmount = 1_500_000
	seedDaysBack  = 60
)

// SeedSalesInput represents the input for seeding.
type SeedSalesInput struct {
	Count int
}

// SeedSalesOutput represents the output of seeding.
type SeedSalesOutput struct {
	Deleted int64
	Created int
}

// SeedSalesUseCase replaces every stored sale with synthetic ones.
type SeedSalesUseCase struct {
	saleRepo adapter.SaleRepository
	random   func() float64
	now      func() time.Time
}

// NewSeedSalesUseCase creates a seeder. A nil random source uses the global generator.
func NewSeedSalesUseCase(saleRepo adapter.SaleRepository, random *rand.Rand) *SeedSalesUseCase {
	uc := &SeedSalesUseCase{
		saleRepo: saleRepo,
		random:   rand.Float64,
		now:      time.Now,
	}
	if random != nil {
		uc.random = random.Float64
	}
	return uc
}

// Execute deletes every sale and inserts the generated ones.
func (uc *SeedSalesUseCase) Execute(ctx context.Context, input SeedSalesInput) (*SeedSalesOutput, error) {
	count := input.Count
	if count <= 0 {
		count = DefaultSeedCount
	}

	deleted, err := uc.saleRepo.DeleteAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to clear sales: %w", err)
	}

	sales := make([]*entity.Sale, 0, count)
	for i := 0; i < count; i++ {
		sales = append(sales, uc.generate())
	}

	if err := uc.saleRepo.CreateBatch(ctx, sales); err != nil {
		return nil, fmt.Errorf("failed to insert seed sales: %w", err)
	}

	slog.Info("Seeded sales", "deleted", deleted, "created", len(sales))

	return &SeedSalesOutput{
		Deleted: deleted,
		Created: len(sales),
	}, nil
}

// generate draws one synthetic sale.
func (uc *SeedSalesUseCase) generate() *entity.Sale {
	entry := seedCatalog[uc.pick(len(seedCatalog))]
	product := entry.Products[uc.pick(len(entry.Products))]
	region := seedRegions[uc.pick(len(seedRegions))]

	amount := math.Floor(uc.random()*(seedMaxAmount-seedMinAmount) + seedMinAmount)
	date := uc.now().UTC().AddDate(0, 0, -uc.pick(seedDaysBack))

	return entity.NewSale(product, entry.Category, decimal.NewFromInt(int64(amount)), &region, date)
}

// pick returns an index in [0, n).
func (uc *SeedSalesUseCase) pick(n int) int {
	return int(math.Floor(uc.random() * float64(n)))
}
