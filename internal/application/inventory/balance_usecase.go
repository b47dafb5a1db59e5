package inventory

import (
	"context"

	"github.com/tu-usuario/repuestos-erp/internal/application/dto"
	"github.com/tu-usuario/repuestos-erp/internal/domain"
	"github.com/tu-usuario/repuestos-erp/internal/domain/entity"
	"github.com/tu-usuario/repuestos-erp/internal/domain/repository"
)

// BalanceUseCase consulta balances derivados del libro de movimientos.
type BalanceUseCase struct {
	movRepo  repository.StockMovementRepository
	partRepo repository.PartRepository
}

func NewBalanceUseCase(
	movRepo repository.StockMovementRepository,
	partRepo repository.PartRepository,
) *BalanceUseCase {
	return &BalanceUseCase{movRepo: movRepo, partRepo: partRepo}
}

// PartBalance balance de un repuesto puntual.
func (uc *BalanceUseCase) PartBalance(ctx context.Context, companyID, partID string) (*dto.BalanceResponse, error) {
	part, err := uc.partRepo.GetByID(partID)
	if err != nil || part == nil {
		return nil, domain.ErrNotFound
	}
	if part.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	sums, err := uc.movRepo.SumsByPart(ctx, partID)
	if err != nil {
		return nil, err
	}
	return &dto.BalanceResponse{
		PartID:  partID,
		In:      sums.In,
		Out:     sums.Out,
		Balance: sums.Balance(),
	}, nil
}

// Balances balances de todo el catálogo con banderas de alerta.
// lowOnly limita a repuestos en o bajo su punto de reorden; outOnly a
// repuestos con balance cero o negativo.
func (uc *BalanceUseCase) Balances(
	ctx context.Context,
	companyID string,
	filter repository.PartFilter,
	lowOnly, outOnly bool,
	page dto.PageRequest,
) (*dto.StockBalancesResponse, error) {
	page.DefaultPage()

	parts, err := uc.partRepo.List(companyID, filter, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	sums, err := uc.movRepo.SumsByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	balances := make(map[string]repository.StockSums, len(sums))
	for _, s := range sums {
		balances[s.PartID] = s
	}

	items := make([]dto.StockBalanceItemDTO, 0, len(parts))
	for _, p := range parts {
		balance := balances[p.ID].Balance()
		if lowOnly && balance > p.ReorderPoint {
			continue
		}
		if outOnly && balance > 0 {
			continue
		}
		items = append(items, toBalanceItem(p, balance))
	}

	return &dto.StockBalancesResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func toBalanceItem(p *entity.Part, balance int64) dto.StockBalanceItemDTO {
	return dto.StockBalanceItemDTO{
		PartID:       p.ID,
		PartNo:       p.PartNo,
		Description:  p.Description,
		Balance:      balance,
		ReorderPoint: p.ReorderPoint,
		Value:        stockValue(p.Cost, balance),
		IsLowStock:   balance <= p.ReorderPoint,
		IsOutOfStock: balance <= 0,
	}
}
