package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/repuestos-erp/internal/application/dto"
	"github.com/tu-usuario/repuestos-erp/internal/domain/analysis"
	"github.com/tu-usuario/repuestos-erp/internal/domain/entity"
)

const testCompanyID = "company-1"

var analysisNow = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func defaultAnalysisQuery() dto.StockAnalysisQuery {
	return dto.StockAnalysisQuery{
		FastMovingDays:       30,
		SlowMovingDays:       90,
		DeadStockDays:        180,
		AnalysisPeriodMonths: 6,
	}
}

func analysisPart(id, partNo, categoryID string, cost int64) *entity.Part {
	return &entity.Part{
		ID:          id,
		CompanyID:   testCompanyID,
		PartNo:      partNo,
		Description: "repuesto " + partNo,
		CategoryID:  categoryID,
		Cost:        decimal.NewFromInt(cost),
		Status:      entity.PartStatusActive,
	}
}

func analysisMovement(partID, movType string, qty int64, occurredAt time.Time) *entity.StockMovement {
	return &entity.StockMovement{
		ID:         partID + occurredAt.Format("20060102") + movType,
		CompanyID:  testCompanyID,
		PartID:     partID,
		StoreID:    "store-1",
		Type:       movType,
		Quantity:   qty,
		OccurredAt: occurredAt,
	}
}

func TestStockAnalysis_ClassifiesCatalog(t *testing.T) {
	partRepo := newFakePartRepo(
		analysisPart("p-fast", "FA-001", "cat-filters", 10),
		analysisPart("p-dead", "ZZ-009", "cat-brakes", 100),
	)
	categoryRepo := newFakeCategoryRepo(
		&entity.Category{ID: "cat-filters", CompanyID: testCompanyID, Name: "Filtros"},
		&entity.Category{ID: "cat-brakes", CompanyID: testCompanyID, Name: "Frenos"},
	)
	movRepo := &fakeMovementRepo{movements: []*entity.StockMovement{
		analysisMovement("p-fast", entity.MovementTypeIn, 50, analysisNow.AddDate(0, 0, -7)),
	}}

	uc := NewAnalysisUseCase(partRepo, movRepo, categoryRepo)
	resp, err := uc.StockAnalysis(context.Background(), testCompanyID, defaultAnalysisQuery(), analysisNow)
	require.NoError(t, err)
	require.Len(t, resp.Data, 2)

	// Orden por número de parte.
	fast, dead := resp.Data[0], resp.Data[1]
	assert.Equal(t, "FA-001", fast.PartNo)
	assert.Equal(t, analysis.ClassificationFast, fast.Classification)
	assert.Equal(t, int64(50), fast.Quantity)
	assert.Equal(t, 7, fast.DaysIdle)
	assert.InDelta(t, 8.3, fast.Turnover, 0.001) // 50/6 redondeado a 1 decimal
	assert.Equal(t, "Filtros", fast.Category)
	assert.True(t, decimal.NewFromInt(500).Equal(fast.Value))

	// Sin movimientos: centinela de 365 días y rotación 0 => Dead.
	assert.Equal(t, "ZZ-009", dead.PartNo)
	assert.Equal(t, analysis.ClassificationDead, dead.Classification)
	assert.Equal(t, 365, dead.DaysIdle)
	assert.Zero(t, dead.Turnover)
	assert.True(t, dead.Value.IsZero())
}

func TestStockAnalysis_NegativeStockValuedAtZero(t *testing.T) {
	partRepo := newFakePartRepo(analysisPart("p-neg", "NE-001", "", 40))
	movRepo := &fakeMovementRepo{movements: []*entity.StockMovement{
		analysisMovement("p-neg", entity.MovementTypeIn, 2, analysisNow.AddDate(0, 0, -10)),
		analysisMovement("p-neg", entity.MovementTypeOut, 5, analysisNow.AddDate(0, 0, -3)),
	}}

	uc := NewAnalysisUseCase(partRepo, movRepo, newFakeCategoryRepo())
	resp, err := uc.StockAnalysis(context.Background(), testCompanyID, defaultAnalysisQuery(), analysisNow)
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)

	// El clasificador reporta el balance sin recortar; la valorización sí
	// recorta a cero.
	item := resp.Data[0]
	assert.Equal(t, int64(-3), item.Quantity)
	assert.True(t, item.Value.IsZero())
}

func TestStockAnalysis_Filters(t *testing.T) {
	partRepo := newFakePartRepo(
		analysisPart("p-1", "FA-001", "cat-filters", 10),
		analysisPart("p-2", "FR-002", "cat-brakes", 10),
	)
	categoryRepo := newFakeCategoryRepo(
		&entity.Category{ID: "cat-filters", CompanyID: testCompanyID, Name: "Filtros"},
		&entity.Category{ID: "cat-brakes", CompanyID: testCompanyID, Name: "Frenos"},
	)
	movRepo := &fakeMovementRepo{movements: []*entity.StockMovement{
		analysisMovement("p-1", entity.MovementTypeIn, 60, analysisNow.AddDate(0, 0, -5)),
		analysisMovement("p-2", entity.MovementTypeIn, 1, analysisNow.AddDate(0, 0, -100)),
	}}
	uc := NewAnalysisUseCase(partRepo, movRepo, categoryRepo)

	t.Run("por clasificación", func(t *testing.T) {
		q := defaultAnalysisQuery()
		q.Classification = "slow"
		resp, err := uc.StockAnalysis(context.Background(), testCompanyID, q, analysisNow)
		require.NoError(t, err)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "FR-002", resp.Data[0].PartNo)
	})

	t.Run("por categoría, insensible a mayúsculas", func(t *testing.T) {
		q := defaultAnalysisQuery()
		q.Category = "filtros"
		resp, err := uc.StockAnalysis(context.Background(), testCompanyID, q, analysisNow)
		require.NoError(t, err)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "FA-001", resp.Data[0].PartNo)
	})

	t.Run("categoría all no filtra", func(t *testing.T) {
		q := defaultAnalysisQuery()
		q.Category = "All"
		resp, err := uc.StockAnalysis(context.Background(), testCompanyID, q, analysisNow)
		require.NoError(t, err)
		assert.Len(t, resp.Data, 2)
	})

	t.Run("búsqueda sobre part_no y descripción", func(t *testing.T) {
		q := defaultAnalysisQuery()
		q.Search = "fr-0"
		resp, err := uc.StockAnalysis(context.Background(), testCompanyID, q, analysisNow)
		require.NoError(t, err)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "FR-002", resp.Data[0].PartNo)
	})

	t.Run("búsqueda sobre nombre de categoría", func(t *testing.T) {
		q := defaultAnalysisQuery()
		q.Search = "filtros"
		resp, err := uc.StockAnalysis(context.Background(), testCompanyID, q, analysisNow)
		require.NoError(t, err)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "FA-001", resp.Data[0].PartNo)
	})
}

func TestStockAnalysis_PartWithoutCategory(t *testing.T) {
	partRepo := newFakePartRepo(analysisPart("p-raw", "SC-001", "", 10))

	uc := NewAnalysisUseCase(partRepo, &fakeMovementRepo{}, newFakeCategoryRepo())
	resp, err := uc.StockAnalysis(context.Background(), testCompanyID, defaultAnalysisQuery(), analysisNow)
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Sin categoría", resp.Data[0].Category)
}

func TestStockAnalysis_IgnoresInactiveParts(t *testing.T) {
	inactive := analysisPart("p-off", "IN-001", "", 10)
	inactive.Status = entity.PartStatusInactive
	partRepo := newFakePartRepo(analysisPart("p-on", "AC-001", "", 10), inactive)

	uc := NewAnalysisUseCase(partRepo, &fakeMovementRepo{}, newFakeCategoryRepo())
	resp, err := uc.StockAnalysis(context.Background(), testCompanyID, defaultAnalysisQuery(), analysisNow)
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "AC-001", resp.Data[0].PartNo)
}
