package inventory

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/repuestos-erp/internal/application/dto"
	"github.com/tu-usuario/repuestos-erp/internal/domain/analysis"
	"github.com/tu-usuario/repuestos-erp/internal/domain/entity"
	"github.com/tu-usuario/repuestos-erp/internal/domain/repository"
)

// AnalysisUseCase arma el análisis de rotación: clasifica el catálogo activo
// completo contra su libro de movimientos y aplica los filtros del request.
type AnalysisUseCase struct {
	partRepo     repository.PartRepository
	movRepo      repository.StockMovementRepository
	categoryRepo repository.CategoryRepository
}

func NewAnalysisUseCase(
	partRepo repository.PartRepository,
	movRepo repository.StockMovementRepository,
	categoryRepo repository.CategoryRepository,
) *AnalysisUseCase {
	return &AnalysisUseCase{
		partRepo:     partRepo,
		movRepo:      movRepo,
		categoryRepo: categoryRepo,
	}
}

// StockAnalysis clasifica todos los repuestos activos de la empresa.
//
// now llega como parámetro para que el cálculo sea reproducible en tests; el
// handler pasa time.Now(). Los filtros de búsqueda/categoría/clasificación se
// aplican sobre el resultado ya clasificado y el listado sale ordenado por
// número de parte. Value valoriza el stock recortado a cero (un balance
// negativo no produce valor negativo) aunque la clasificación use el balance
// sin recortar.
func (uc *AnalysisUseCase) StockAnalysis(
	ctx context.Context,
	companyID string,
	q dto.StockAnalysisQuery,
	now time.Time,
) (*dto.StockAnalysisResponse, error) {
	parts, err := uc.partRepo.ListActiveByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	categoryNames, err := uc.categoryNames(companyID)
	if err != nil {
		return nil, err
	}

	partIDs := make([]string, 0, len(parts))
	for _, p := range parts {
		partIDs = append(partIDs, p.ID)
	}
	movements, err := uc.movRepo.ListByPartIDs(ctx, partIDs)
	if err != nil {
		return nil, err
	}
	movementsByPart := make(map[string][]entity.StockMovement, len(parts))
	for _, m := range movements {
		movementsByPart[m.PartID] = append(movementsByPart[m.PartID], *m)
	}

	cfg := analysis.Config{
		FastMovingDays:       q.FastMovingDays,
		SlowMovingDays:       q.SlowMovingDays,
		DeadStockDays:        q.DeadStockDays,
		AnalysisPeriodMonths: q.AnalysisPeriodMonths,
	}

	search := strings.ToLower(strings.TrimSpace(q.Search))
	items := make([]dto.StockAnalysisItemDTO, 0, len(parts))
	for _, p := range parts {
		result := analysis.Classify(p.ID, movementsByPart[p.ID], cfg, now)

		if q.Classification != "" && !strings.EqualFold(q.Classification, "all") &&
			!strings.EqualFold(q.Classification, result.Classification) {
			continue
		}
		category := categoryNames[p.CategoryID]
		if category == "" {
			category = "Sin categoría"
		}
		if q.Category != "" && !strings.EqualFold(q.Category, "all") &&
			!strings.EqualFold(q.Category, category) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.PartNo), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) &&
			!strings.Contains(strings.ToLower(category), search) {
			continue
		}

		items = append(items, dto.StockAnalysisItemDTO{
			ID:             p.ID,
			PartNo:         p.PartNo,
			Description:    p.Description,
			Category:       category,
			Quantity:       result.CurrentStock,
			Value:          stockValue(p.Cost, result.CurrentStock),
			DaysIdle:       result.DaysIdle,
			Turnover:       math.Round(result.TurnoverPerMonth*10) / 10,
			Classification: result.Classification,
		})
	}

	sort.Slice(items, func(i, j int) bool { return items[i].PartNo < items[j].PartNo })

	return &dto.StockAnalysisResponse{Data: items}, nil
}

func (uc *AnalysisUseCase) categoryNames(companyID string) (map[string]string, error) {
	categories, err := uc.categoryRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names, nil
}

// stockValue valoriza el stock: cost * max(0, quantity).
func stockValue(cost decimal.Decimal, quantity int64) decimal.Decimal {
	if quantity < 0 {
		quantity = 0
	}
	return cost.Mul(decimal.NewFromInt(quantity))
}
