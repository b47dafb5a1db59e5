package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/repuestos-erp/internal/application/dto"
	"github.com/tu-usuario/repuestos-erp/internal/domain"
	"github.com/tu-usuario/repuestos-erp/internal/domain/entity"
)

func movementFixtures() (*fakePartRepo, *fakeStoreRepo, *fakeMovementRepo) {
	partRepo := newFakePartRepo(&entity.Part{
		ID:        "p-1",
		CompanyID: testCompanyID,
		PartNo:    "FA-001",
		Status:    entity.PartStatusActive,
	})
	storeRepo := newFakeStoreRepo(
		&entity.Store{ID: "s-1", CompanyID: testCompanyID, Name: "Bodega Central"},
		&entity.Store{ID: "s-2", CompanyID: testCompanyID, Name: "Sucursal Norte"},
	)
	return partRepo, storeRepo, &fakeMovementRepo{}
}

func TestRegisterMovement_CreatesAndPublishes(t *testing.T) {
	partRepo, storeRepo, movRepo := movementFixtures()
	publisher := &fakePublisher{}
	uc := NewRegisterMovementUseCase(movRepo, partRepo, storeRepo, &fakeTxRunner{movRepo: movRepo}, publisher)

	resp, err := uc.RegisterMovement(context.Background(), testCompanyID, "user-1", dto.RegisterMovementRequest{
		PartID:   "p-1",
		StoreID:  "s-1",
		Type:     entity.MovementTypeIn,
		Quantity: 10,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, entity.MovementTypeIn, resp.Type)
	assert.False(t, resp.OccurredAt.IsZero())

	require.Len(t, movRepo.movements, 1)
	assert.Equal(t, "user-1", movRepo.movements[0].CreatedBy)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, resp.ID, publisher.events[0].MovementID)
	assert.Equal(t, int64(10), publisher.events[0].Quantity)
}

func TestRegisterMovement_Validation(t *testing.T) {
	partRepo, storeRepo, movRepo := movementFixtures()
	uc := NewRegisterMovementUseCase(movRepo, partRepo, storeRepo, &fakeTxRunner{movRepo: movRepo}, nil)

	cases := []struct {
		name string
		req  dto.RegisterMovementRequest
		want error
	}{
		{"tipo inválido", dto.RegisterMovementRequest{PartID: "p-1", StoreID: "s-1", Type: "adjust", Quantity: 1}, domain.ErrInvalidInput},
		{"cantidad cero", dto.RegisterMovementRequest{PartID: "p-1", StoreID: "s-1", Type: entity.MovementTypeIn, Quantity: 0}, domain.ErrInvalidInput},
		{"cantidad negativa", dto.RegisterMovementRequest{PartID: "p-1", StoreID: "s-1", Type: entity.MovementTypeOut, Quantity: -5}, domain.ErrInvalidInput},
		{"repuesto inexistente", dto.RegisterMovementRequest{PartID: "nope", StoreID: "s-1", Type: entity.MovementTypeIn, Quantity: 1}, domain.ErrNotFound},
		{"bodega inexistente", dto.RegisterMovementRequest{PartID: "p-1", StoreID: "nope", Type: entity.MovementTypeIn, Quantity: 1}, domain.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.RegisterMovement(context.Background(), testCompanyID, "user-1", tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
	assert.Empty(t, movRepo.movements)
}

func TestRegisterMovement_OtherCompanyForbidden(t *testing.T) {
	partRepo, storeRepo, movRepo := movementFixtures()
	uc := NewRegisterMovementUseCase(movRepo, partRepo, storeRepo, &fakeTxRunner{movRepo: movRepo}, nil)

	_, err := uc.RegisterMovement(context.Background(), "other-company", "user-1", dto.RegisterMovementRequest{
		PartID:   "p-1",
		StoreID:  "s-1",
		Type:     entity.MovementTypeIn,
		Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRegisterMovement_OutBeyondBalanceIsAccepted(t *testing.T) {
	partRepo, storeRepo, movRepo := movementFixtures()
	uc := NewRegisterMovementUseCase(movRepo, partRepo, storeRepo, &fakeTxRunner{movRepo: movRepo}, nil)

	// El libro acepta salidas que dejan balance negativo; no hay rechazo.
	resp, err := uc.RegisterMovement(context.Background(), testCompanyID, "user-1", dto.RegisterMovementRequest{
		PartID:   "p-1",
		StoreID:  "s-1",
		Type:     entity.MovementTypeOut,
		Quantity: 99,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(99), resp.Quantity)

	sums, err := movRepo.SumsByPart(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Equal(t, int64(-99), sums.Balance())
}

func TestTransfer_CreatesPairedMovements(t *testing.T) {
	partRepo, storeRepo, movRepo := movementFixtures()
	movRepo.movements = []*entity.StockMovement{{
		ID: "seed", CompanyID: testCompanyID, PartID: "p-1", StoreID: "s-1",
		Type: entity.MovementTypeIn, Quantity: 20,
	}}
	publisher := &fakePublisher{}
	uc := NewRegisterMovementUseCase(movRepo, partRepo, storeRepo, &fakeTxRunner{movRepo: movRepo}, publisher)

	err := uc.Transfer(context.Background(), testCompanyID, "user-1", dto.TransferRequest{
		PartID:      "p-1",
		FromStoreID: "s-1",
		ToStoreID:   "s-2",
		Quantity:    8,
	})
	require.NoError(t, err)
	require.Len(t, movRepo.movements, 3)

	out, in := movRepo.movements[1], movRepo.movements[2]
	assert.Equal(t, entity.MovementTypeOut, out.Type)
	assert.Equal(t, "s-1", out.StoreID)
	assert.Equal(t, entity.MovementTypeIn, in.Type)
	assert.Equal(t, "s-2", in.StoreID)
	assert.Equal(t, out.Reference, in.Reference)
	assert.Contains(t, out.Reference, "TRF-")

	// El balance total del repuesto no cambia con un traslado.
	sums, err := movRepo.SumsByPart(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Equal(t, int64(20), sums.Balance())

	assert.Len(t, publisher.events, 2)
}

func TestTransfer_InsufficientStock(t *testing.T) {
	partRepo, storeRepo, movRepo := movementFixtures()
	movRepo.movements = []*entity.StockMovement{{
		ID: "seed", CompanyID: testCompanyID, PartID: "p-1", StoreID: "s-1",
		Type: entity.MovementTypeIn, Quantity: 5,
	}}
	uc := NewRegisterMovementUseCase(movRepo, partRepo, storeRepo, &fakeTxRunner{movRepo: movRepo}, nil)

	err := uc.Transfer(context.Background(), testCompanyID, "user-1", dto.TransferRequest{
		PartID:      "p-1",
		FromStoreID: "s-1",
		ToStoreID:   "s-2",
		Quantity:    6,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Len(t, movRepo.movements, 1)
}

func TestTransfer_SameStoreRejected(t *testing.T) {
	partRepo, storeRepo, movRepo := movementFixtures()
	uc := NewRegisterMovementUseCase(movRepo, partRepo, storeRepo, &fakeTxRunner{movRepo: movRepo}, nil)

	err := uc.Transfer(context.Background(), testCompanyID, "user-1", dto.TransferRequest{
		PartID:      "p-1",
		FromStoreID: "s-1",
		ToStoreID:   "s-1",
		Quantity:    1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
