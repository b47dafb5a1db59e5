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

// TaxonomyUseCase administra categorías, marcas y bodegas: las tres comparten
// la misma mecánica de nombre único por empresa.
type TaxonomyUseCase struct {
	categoryRepo repository.CategoryRepository
	brandRepo    repository.BrandRepository
	storeRepo    repository.StoreRepository
}

func NewTaxonomyUseCase(
	categoryRepo repository.CategoryRepository,
	brandRepo repository.BrandRepository,
	storeRepo repository.StoreRepository,
) *TaxonomyUseCase {
	return &TaxonomyUseCase{
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
		storeRepo:    storeRepo,
	}
}

// CreateCategory crea una categoría con nombre único por empresa.
func (uc *TaxonomyUseCase) CreateCategory(companyID string, in dto.NameRequest) (*dto.NamedResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.categoryRepo.GetByCompanyAndName(companyID, name); existing != nil {
		return nil, domain.ErrDuplicate
	}
	category := &entity.Category{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return &dto.NamedResponse{ID: category.ID, Name: category.Name, CreatedAt: category.CreatedAt}, nil
}

// ListCategories lista las categorías de la empresa.
func (uc *TaxonomyUseCase) ListCategories(companyID string) ([]dto.NamedResponse, error) {
	categories, err := uc.categoryRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NamedResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.NamedResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt})
	}
	return out, nil
}

// RenameCategory cambia el nombre de una categoría.
func (uc *TaxonomyUseCase) RenameCategory(companyID, id string, in dto.NameRequest) (*dto.NamedResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil || category == nil {
		return nil, domain.ErrNotFound
	}
	if category.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	category.Name = name
	if err := uc.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return &dto.NamedResponse{ID: category.ID, Name: category.Name, CreatedAt: category.CreatedAt}, nil
}

// DeleteCategory elimina una categoría; los repuestos asociados quedan sin
// categoría, no se borran.
func (uc *TaxonomyUseCase) DeleteCategory(companyID, id string) error {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil || category == nil {
		return domain.ErrNotFound
	}
	if category.CompanyID != companyID {
		return domain.ErrForbidden
	}
	return uc.categoryRepo.Delete(id)
}

// CreateBrand crea una marca.
func (uc *TaxonomyUseCase) CreateBrand(companyID string, in dto.NameRequest) (*dto.NamedResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	brand := &entity.Brand{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := uc.brandRepo.Create(brand); err != nil {
		return nil, err
	}
	return &dto.NamedResponse{ID: brand.ID, Name: brand.Name, CreatedAt: brand.CreatedAt}, nil
}

// ListBrands lista las marcas de la empresa.
func (uc *TaxonomyUseCase) ListBrands(companyID string) ([]dto.NamedResponse, error) {
	brands, err := uc.brandRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NamedResponse, 0, len(brands))
	for _, b := range brands {
		out = append(out, dto.NamedResponse{ID: b.ID, Name: b.Name, CreatedAt: b.CreatedAt})
	}
	return out, nil
}

// DeleteBrand elimina una marca.
func (uc *TaxonomyUseCase) DeleteBrand(companyID, id string) error {
	brand, err := uc.brandRepo.GetByID(id)
	if err != nil || brand == nil {
		return domain.ErrNotFound
	}
	if brand.CompanyID != companyID {
		return domain.ErrForbidden
	}
	return uc.brandRepo.Delete(id)
}

// CreateStore crea una bodega.
func (uc *TaxonomyUseCase) CreateStore(companyID string, in dto.NameRequest) (*dto.NamedResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	store := &entity.Store{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      name,
		Location:  in.Location,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uc.storeRepo.Create(store); err != nil {
		return nil, err
	}
	return &dto.NamedResponse{ID: store.ID, Name: store.Name, Location: store.Location, CreatedAt: store.CreatedAt}, nil
}

// ListStores lista las bodegas de la empresa.
func (uc *TaxonomyUseCase) ListStores(companyID string) ([]dto.NamedResponse, error) {
	stores, err := uc.storeRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NamedResponse, 0, len(stores))
	for _, s := range stores {
		out = append(out, dto.NamedResponse{ID: s.ID, Name: s.Name, Location: s.Location, CreatedAt: s.CreatedAt})
	}
	return out, nil
}

// UpdateStore renombra o reubica una bodega.
func (uc *TaxonomyUseCase) UpdateStore(companyID, id string, in dto.NameRequest) (*dto.NamedResponse, error) {
	store, err := uc.storeRepo.GetByID(id)
	if err != nil || store == nil {
		return nil, domain.ErrNotFound
	}
	if store.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		store.Name = name
	}
	if in.Location != "" {
		store.Location = in.Location
	}
	store.UpdatedAt = time.Now()
	if err := uc.storeRepo.Update(store); err != nil {
		return nil, err
	}
	return &dto.NamedResponse{ID: store.ID, Name: store.Name, Location: store.Location, CreatedAt: store.CreatedAt}, nil
}

// DeleteStore elimina una bodega.
func (uc *TaxonomyUseCase) DeleteStore(companyID, id string) error {
	store, err := uc.storeRepo.GetByID(id)
	if err != nil || store == nil {
		return domain.ErrNotFound
	}
	if store.CompanyID != companyID {
		return domain.ErrForbidden
	}
	return uc.storeRepo.Delete(id)
}
