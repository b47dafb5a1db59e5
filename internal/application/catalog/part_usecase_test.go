package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/repuestos-erp/internal/application/dto"
	"github.com/tu-usuario/repuestos-erp/internal/domain"
	"github.com/tu-usuario/repuestos-erp/internal/domain/entity"
	"github.com/tu-usuario/repuestos-erp/internal/domain/repository"
)

type memPartRepo struct {
	parts map[string]*entity.Part
}

func newMemPartRepo() *memPartRepo {
	return &memPartRepo{parts: make(map[string]*entity.Part)}
}

func (r *memPartRepo) Create(p *entity.Part) error { r.parts[p.ID] = p; return nil }

func (r *memPartRepo) GetByID(id string) (*entity.Part, error) {
	p, ok := r.parts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (r *memPartRepo) GetByCompanyAndPartNo(companyID, partNo string) (*entity.Part, error) {
	for _, p := range r.parts {
		if p.CompanyID == companyID && p.PartNo == partNo {
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memPartRepo) Update(p *entity.Part) error { r.parts[p.ID] = p; return nil }
func (r *memPartRepo) Delete(id string) error      { delete(r.parts, id); return nil }

func (r *memPartRepo) List(companyID string, _ repository.PartFilter, _, _ int) ([]*entity.Part, error) {
	var out []*entity.Part
	for _, p := range r.parts {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memPartRepo) ListActiveByCompany(_ context.Context, companyID string) ([]*entity.Part, error) {
	var out []*entity.Part
	for _, p := range r.parts {
		if p.CompanyID == companyID && p.Status == entity.PartStatusActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func TestPartCreate_NormalizesAndDefaults(t *testing.T) {
	uc := NewPartUseCase(newMemPartRepo())

	resp, err := uc.Create("company-1", dto.CreatePartRequest{
		PartNo:      "  fa-001 ",
		Description: "Filtro de aire",
		Cost:        decimal.NewFromInt(10),
		Price:       decimal.NewFromInt(15),
	})
	require.NoError(t, err)
	assert.Equal(t, "FA-001", resp.PartNo)
	assert.Equal(t, entity.PartStatusActive, resp.Status)
	assert.NotEmpty(t, resp.ID)
}

func TestPartCreate_DuplicatePartNo(t *testing.T) {
	uc := NewPartUseCase(newMemPartRepo())

	req := dto.CreatePartRequest{PartNo: "FA-001", Description: "Filtro de aire"}
	_, err := uc.Create("company-1", req)
	require.NoError(t, err)

	_, err = uc.Create("company-1", req)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Mismo número en otra empresa sí se permite.
	_, err = uc.Create("company-2", req)
	assert.NoError(t, err)
}

func TestPartCreate_Validation(t *testing.T) {
	uc := NewPartUseCase(newMemPartRepo())

	_, err := uc.Create("company-1", dto.CreatePartRequest{PartNo: "", Description: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create("company-1", dto.CreatePartRequest{PartNo: "A", Description: "x", Cost: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPartUpdate_PartialFields(t *testing.T) {
	repo := newMemPartRepo()
	uc := NewPartUseCase(repo)

	created, err := uc.Create("company-1", dto.CreatePartRequest{
		PartNo:      "FA-001",
		Description: "Filtro de aire",
		Cost:        decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	newCost := decimal.NewFromInt(12)
	updated, err := uc.Update("company-1", created.ID, dto.UpdatePartRequest{Cost: &newCost})
	require.NoError(t, err)
	assert.True(t, newCost.Equal(updated.Cost))
	assert.Equal(t, "Filtro de aire", updated.Description) // campo no tocado
}

func TestPartUpdate_OtherCompanyForbidden(t *testing.T) {
	uc := NewPartUseCase(newMemPartRepo())
	created, err := uc.Create("company-1", dto.CreatePartRequest{PartNo: "FA-001", Description: "x"})
	require.NoError(t, err)

	_, err = uc.Update("company-2", created.ID, dto.UpdatePartRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestPartDeactivate_RemovesFromActiveList(t *testing.T) {
	repo := newMemPartRepo()
	uc := NewPartUseCase(repo)
	created, err := uc.Create("company-1", dto.CreatePartRequest{PartNo: "FA-001", Description: "x"})
	require.NoError(t, err)

	require.NoError(t, uc.Deactivate("company-1", created.ID))

	active, err := repo.ListActiveByCompany(context.Background(), "company-1")
	require.NoError(t, err)
	assert.Empty(t, active)
}
