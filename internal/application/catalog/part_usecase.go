package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/repuestos-erp/internal/application/dto"
	"github.com/tu-usuario/repuestos-erp/internal/domain"
	"github.com/tu-usuario/repuestos-erp/internal/domain/entity"
	"github.com/tu-usuario/repuestos-erp/internal/domain/repository"
)

// PartUseCase CRUD del catálogo de repuestos (item master).
type PartUseCase struct {
	partRepo repository.PartRepository
}

func NewPartUseCase(partRepo repository.PartRepository) *PartUseCase {
	return &PartUseCase{partRepo: partRepo}
}

// Create da de alta un repuesto. El número de parte es único por empresa y se
// normaliza a mayúsculas.
func (uc *PartUseCase) Create(companyID string, in dto.CreatePartRequest) (*dto.PartResponse, error) {
	partNo := strings.ToUpper(strings.TrimSpace(in.PartNo))
	if partNo == "" || strings.TrimSpace(in.Description) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Cost.IsNegative() || in.Price.IsNegative() || in.ReorderPoint < 0 {
		return nil, domain.ErrInvalidInput
	}

	if existing, _ := uc.partRepo.GetByCompanyAndPartNo(companyID, partNo); existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	part := &entity.Part{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		PartNo:       partNo,
		Description:  strings.TrimSpace(in.Description),
		CategoryID:   in.CategoryID,
		BrandID:      in.BrandID,
		UnitMeasure:  in.UnitMeasure,
		Origin:       in.Origin,
		Cost:         in.Cost,
		Price:        in.Price,
		ReorderPoint: in.ReorderPoint,
		Status:       entity.PartStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.partRepo.Create(part); err != nil {
		return nil, err
	}
	return toPartResponse(part), nil
}

// GetByID trae un repuesto verificando pertenencia a la empresa.
func (uc *PartUseCase) GetByID(companyID, id string) (*dto.PartResponse, error) {
	part, err := uc.ownedPart(companyID, id)
	if err != nil {
		return nil, err
	}
	return toPartResponse(part), nil
}

// Update aplica cambios parciales; los campos nil del request no se tocan.
func (uc *PartUseCase) Update(companyID, id string, in dto.UpdatePartRequest) (*dto.PartResponse, error) {
	part, err := uc.ownedPart(companyID, id)
	if err != nil {
		return nil, err
	}

	if in.Description != nil {
		if strings.TrimSpace(*in.Description) == "" {
			return nil, domain.ErrInvalidInput
		}
		part.Description = strings.TrimSpace(*in.Description)
	}
	if in.CategoryID != nil {
		part.CategoryID = *in.CategoryID
	}
	if in.BrandID != nil {
		part.BrandID = *in.BrandID
	}
	if in.UnitMeasure != nil {
		part.UnitMeasure = *in.UnitMeasure
	}
	if in.Origin != nil {
		part.Origin = *in.Origin
	}
	if in.Cost != nil {
		if in.Cost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		part.Cost = *in.Cost
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		part.Price = *in.Price
	}
	if in.ReorderPoint != nil {
		if *in.ReorderPoint < 0 {
			return nil, domain.ErrInvalidInput
		}
		part.ReorderPoint = *in.ReorderPoint
	}
	if in.Status != nil {
		if *in.Status != entity.PartStatusActive && *in.Status != entity.PartStatusInactive {
			return nil, domain.ErrInvalidInput
		}
		part.Status = *in.Status
	}
	part.UpdatedAt = time.Now()

	if err := uc.partRepo.Update(part); err != nil {
		return nil, err
	}
	return toPartResponse(part), nil
}

// Deactivate baja lógica: el repuesto pasa a inactive y sale del análisis de
// rotación, pero su libro de movimientos se conserva.
func (uc *PartUseCase) Deactivate(companyID, id string) error {
	part, err := uc.ownedPart(companyID, id)
	if err != nil {
		return err
	}
	part.Status = entity.PartStatusInactive
	part.UpdatedAt = time.Now()
	return uc.partRepo.Update(part)
}

// List lista el catálogo con filtros y paginación.
func (uc *PartUseCase) List(companyID string, filter repository.PartFilter, page dto.PageRequest) (*dto.PartListResponse, error) {
	page.DefaultPage()
	parts, err := uc.partRepo.List(companyID, filter, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PartResponse, 0, len(parts))
	for _, p := range parts {
		items = append(items, *toPartResponse(p))
	}
	return &dto.PartListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func (uc *PartUseCase) ownedPart(companyID, id string) (*entity.Part, error) {
	part, err := uc.partRepo.GetByID(id)
	if err != nil || part == nil {
		return nil, domain.ErrNotFound
	}
	if part.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return part, nil
}

func toPartResponse(p *entity.Part) *dto.PartResponse {
	return &dto.PartResponse{
		ID:           p.ID,
		CompanyID:    p.CompanyID,
		PartNo:       p.PartNo,
		Description:  p.Description,
		CategoryID:   p.CategoryID,
		BrandID:      p.BrandID,
		UnitMeasure:  p.UnitMeasure,
		Origin:       p.Origin,
		Cost:         p.Cost,
		Price:        p.Price,
		ReorderPoint: p.ReorderPoint,
		Status:       p.Status,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
