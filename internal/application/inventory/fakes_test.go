package inventory

import (
	"context"

	"github.com/tu-usuario/repuestos-erp/internal/application/dto"
	"github.com/tu-usuario/repuestos-erp/internal/domain"
	"github.com/tu-usuario/repuestos-erp/internal/domain/entity"
	"github.com/tu-usuario/repuestos-erp/internal/domain/repository"
)

// Fakes en memoria para los tests del paquete. Implementan solo lo que los
// use cases ejercitan; el resto devuelve cero/nil.

type fakePartRepo struct {
	parts map[string]*entity.Part
}

func newFakePartRepo(parts ...*entity.Part) *fakePartRepo {
	r := &fakePartRepo{parts: make(map[string]*entity.Part)}
	for _, p := range parts {
		r.parts[p.ID] = p
	}
	return r
}

func (r *fakePartRepo) Create(part *entity.Part) error {
	r.parts[part.ID] = part
	return nil
}

func (r *fakePartRepo) GetByID(id string) (*entity.Part, error) {
	p, ok := r.parts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (r *fakePartRepo) GetByCompanyAndPartNo(companyID, partNo string) (*entity.Part, error) {
	for _, p := range r.parts {
		if p.CompanyID == companyID && p.PartNo == partNo {
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakePartRepo) Update(part *entity.Part) error {
	r.parts[part.ID] = part
	return nil
}

func (r *fakePartRepo) Delete(id string) error {
	delete(r.parts, id)
	return nil
}

func (r *fakePartRepo) List(companyID string, _ repository.PartFilter, _, _ int) ([]*entity.Part, error) {
	var out []*entity.Part
	for _, p := range r.parts {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePartRepo) ListActiveByCompany(_ context.Context, companyID string) ([]*entity.Part, error) {
	var out []*entity.Part
	for _, p := range r.parts {
		if p.CompanyID == companyID && p.Status == entity.PartStatusActive {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeStoreRepo struct {
	stores map[string]*entity.Store
}

func newFakeStoreRepo(stores ...*entity.Store) *fakeStoreRepo {
	r := &fakeStoreRepo{stores: make(map[string]*entity.Store)}
	for _, s := range stores {
		r.stores[s.ID] = s
	}
	return r
}

func (r *fakeStoreRepo) Create(store *entity.Store) error {
	r.stores[store.ID] = store
	return nil
}

func (r *fakeStoreRepo) GetByID(id string) (*entity.Store, error) {
	s, ok := r.stores[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (r *fakeStoreRepo) ListByCompany(companyID string) ([]*entity.Store, error) {
	var out []*entity.Store
	for _, s := range r.stores {
		if s.CompanyID == companyID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeStoreRepo) Update(store *entity.Store) error {
	r.stores[store.ID] = store
	return nil
}

func (r *fakeStoreRepo) Delete(id string) error {
	delete(r.stores, id)
	return nil
}

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	r.movements = append(r.movements, m)
	return nil
}

func (r *fakeMovementRepo) List(_ context.Context, companyID string, _ repository.MovementFilter, _, _ int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if m.CompanyID == companyID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) ListByPartIDs(_ context.Context, partIDs []string) ([]*entity.StockMovement, error) {
	wanted := make(map[string]bool, len(partIDs))
	for _, id := range partIDs {
		wanted[id] = true
	}
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if wanted[m.PartID] {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) SumsByPart(_ context.Context, partID string) (repository.StockSums, error) {
	sums := repository.StockSums{PartID: partID}
	for _, m := range r.movements {
		if m.PartID != partID {
			continue
		}
		if m.Type == entity.MovementTypeIn {
			sums.In += m.Quantity
		} else {
			sums.Out += m.Quantity
		}
	}
	return sums, nil
}

func (r *fakeMovementRepo) SumsByPartAndStore(_ context.Context, partID, storeID string) (repository.StockSums, error) {
	sums := repository.StockSums{PartID: partID}
	for _, m := range r.movements {
		if m.PartID != partID || m.StoreID != storeID {
			continue
		}
		if m.Type == entity.MovementTypeIn {
			sums.In += m.Quantity
		} else {
			sums.Out += m.Quantity
		}
	}
	return sums, nil
}

func (r *fakeMovementRepo) SumsByCompany(_ context.Context, companyID string) ([]repository.StockSums, error) {
	byPart := make(map[string]*repository.StockSums)
	for _, m := range r.movements {
		if m.CompanyID != companyID {
			continue
		}
		s, ok := byPart[m.PartID]
		if !ok {
			s = &repository.StockSums{PartID: m.PartID}
			byPart[m.PartID] = s
		}
		if m.Type == entity.MovementTypeIn {
			s.In += m.Quantity
		} else {
			s.Out += m.Quantity
		}
	}
	out := make([]repository.StockSums, 0, len(byPart))
	for _, s := range byPart {
		out = append(out, *s)
	}
	return out, nil
}

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

func newFakeCategoryRepo(categories ...*entity.Category) *fakeCategoryRepo {
	r := &fakeCategoryRepo{categories: make(map[string]*entity.Category)}
	for _, c := range categories {
		r.categories[c.ID] = c
	}
	return r
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (r *fakeCategoryRepo) GetByCompanyAndName(companyID, name string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.CompanyID == companyID && c.Name == name {
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeCategoryRepo) ListByCompany(companyID string) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.categories {
		if c.CompanyID == companyID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(c *entity.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) Delete(id string) error {
	delete(r.categories, id)
	return nil
}

// fakeTxRunner ejecuta la función sin transacción real, sobre el mismo repo.
type fakeTxRunner struct {
	movRepo repository.StockMovementRepository
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(movRepo repository.StockMovementRepository) error) error {
	return fn(t.movRepo)
}

type fakePublisher struct {
	events []dto.MovementRecordedEvent
	err    error
}

func (p *fakePublisher) PublishMovementRecorded(_ context.Context, event dto.MovementRecordedEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}
