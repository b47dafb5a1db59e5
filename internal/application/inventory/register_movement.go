package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/repuestos-erp/internal/application/dto"
	"github.com/tu-usuario/repuestos-erp/internal/domain"
	"github.com/tu-usuario/repuestos-erp/internal/domain/entity"
	"github.com/tu-usuario/repuestos-erp/internal/domain/repository"
)

// RegisterMovementUseCase registra asientos en el libro de movimientos:
// entradas/salidas sueltas y traslados entre bodegas (par out+in transaccional).
type RegisterMovementUseCase struct {
	movRepo   repository.StockMovementRepository
	partRepo  repository.PartRepository
	storeRepo repository.StoreRepository
	txRunner  TxRunner
	publisher MovementPublisher // puede ser nil (sin broker configurado)
}

// NewRegisterMovementUseCase construye el caso de uso. publisher admite nil.
func NewRegisterMovementUseCase(
	movRepo repository.StockMovementRepository,
	partRepo repository.PartRepository,
	storeRepo repository.StoreRepository,
	txRunner TxRunner,
	publisher MovementPublisher,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		movRepo:   movRepo,
		partRepo:  partRepo,
		storeRepo: storeRepo,
		txRunner:  txRunner,
		publisher: publisher,
	}
}

// RegisterMovement valida y persiste un asiento in/out.
//
// Una salida que deje el balance negativo NO se rechaza: el libro acepta lo
// que el mundo físico ya hizo y el balance derivado queda negativo (se
// registra un warning). Rechazarla ocultaría la inconsistencia de origen.
func (uc *RegisterMovementUseCase) RegisterMovement(
	ctx context.Context,
	companyID, userID string,
	in dto.RegisterMovementRequest,
) (*dto.MovementResponse, error) {
	if in.Type != entity.MovementTypeIn && in.Type != entity.MovementTypeOut {
		return nil, domain.ErrInvalidInput
	}
	if in.PartID == "" || in.StoreID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	part, err := uc.partRepo.GetByID(in.PartID)
	if err != nil || part == nil {
		return nil, domain.ErrNotFound
	}
	if part.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	store, err := uc.storeRepo.GetByID(in.StoreID)
	if err != nil || store == nil {
		return nil, domain.ErrNotFound
	}
	if store.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	occurredAt := now
	if in.OccurredAt != nil {
		occurredAt = *in.OccurredAt
	}

	if in.Type == entity.MovementTypeOut {
		sums, err := uc.movRepo.SumsByPart(ctx, in.PartID)
		if err == nil && sums.Balance()-in.Quantity < 0 {
			log.Warn().
				Str("part_id", in.PartID).
				Int64("balance", sums.Balance()).
				Int64("quantity", in.Quantity).
				Msg("salida deja balance negativo")
		}
	}

	mov := &entity.StockMovement{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		PartID:     in.PartID,
		StoreID:    in.StoreID,
		Type:       in.Type,
		Quantity:   in.Quantity,
		Reference:  in.Reference,
		Notes:      in.Notes,
		OccurredAt: occurredAt,
		CreatedAt:  now,
		CreatedBy:  userID,
	}
	if err := uc.movRepo.Create(mov); err != nil {
		return nil, err
	}

	uc.publish(ctx, mov)

	return toMovementResponse(mov), nil
}

// Transfer registra el par de asientos de un traslado entre bodegas dentro de
// una transacción. A diferencia de las salidas sueltas, aquí sí se exige
// disponibilidad en la bodega origen (ErrInsufficientStock).
func (uc *RegisterMovementUseCase) Transfer(
	ctx context.Context,
	companyID, userID string,
	in dto.TransferRequest,
) error {
	if in.PartID == "" || in.FromStoreID == "" || in.ToStoreID == "" {
		return domain.ErrInvalidInput
	}
	if in.FromStoreID == in.ToStoreID || in.Quantity <= 0 {
		return domain.ErrInvalidInput
	}

	part, err := uc.partRepo.GetByID(in.PartID)
	if err != nil || part == nil {
		return domain.ErrNotFound
	}
	if part.CompanyID != companyID {
		return domain.ErrForbidden
	}
	fromStore, _ := uc.storeRepo.GetByID(in.FromStoreID)
	toStore, _ := uc.storeRepo.GetByID(in.ToStoreID)
	if fromStore == nil || toStore == nil ||
		fromStore.CompanyID != companyID || toStore.CompanyID != companyID {
		return domain.ErrNotFound
	}

	now := time.Now()
	reference := "TRF-" + uuid.New().String()[:8]

	var outMov, inMov *entity.StockMovement
	err = uc.txRunner.Run(ctx, func(movRepo repository.StockMovementRepository) error {
		sums, err := movRepo.SumsByPartAndStore(ctx, in.PartID, in.FromStoreID)
		if err != nil {
			return err
		}
		if sums.Balance() < in.Quantity {
			return domain.ErrInsufficientStock
		}

		outMov = &entity.StockMovement{
			ID:         uuid.New().String(),
			CompanyID:  companyID,
			PartID:     in.PartID,
			StoreID:    in.FromStoreID,
			Type:       entity.MovementTypeOut,
			Quantity:   in.Quantity,
			Reference:  reference,
			Notes:      in.Notes,
			OccurredAt: now,
			CreatedAt:  now,
			CreatedBy:  userID,
		}
		if err := movRepo.Create(outMov); err != nil {
			return err
		}

		inMov = &entity.StockMovement{
			ID:         uuid.New().String(),
			CompanyID:  companyID,
			PartID:     in.PartID,
			StoreID:    in.ToStoreID,
			Type:       entity.MovementTypeIn,
			Quantity:   in.Quantity,
			Reference:  reference,
			Notes:      in.Notes,
			OccurredAt: now,
			CreatedAt:  now,
			CreatedBy:  userID,
		}
		return movRepo.Create(inMov)
	})
	if err != nil {
		return err
	}

	uc.publish(ctx, outMov)
	uc.publish(ctx, inMov)
	return nil
}

// ListMovements lista asientos del libro con filtros y paginación.
func (uc *RegisterMovementUseCase) ListMovements(
	ctx context.Context,
	companyID string,
	filter repository.MovementFilter,
	limit, offset int,
) (*dto.MovementListResponse, error) {
	movs, err := uc.movRepo.List(ctx, companyID, filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// publish notifica el asiento al broker si hay publicador configurado.
// Un fallo aquí solo se loguea: el asiento ya está confirmado en la DB.
func (uc *RegisterMovementUseCase) publish(ctx context.Context, mov *entity.StockMovement) {
	if uc.publisher == nil || mov == nil {
		return
	}
	event := dto.MovementRecordedEvent{
		EventID:    uuid.New().String(),
		CompanyID:  mov.CompanyID,
		MovementID: mov.ID,
		PartID:     mov.PartID,
		StoreID:    mov.StoreID,
		Type:       mov.Type,
		Quantity:   mov.Quantity,
		Reference:  mov.Reference,
		OccurredAt: mov.OccurredAt,
		Timestamp:  time.Now(),
	}
	if err := uc.publisher.PublishMovementRecorded(ctx, event); err != nil {
		log.Error().Err(err).Str("movement_id", mov.ID).Msg("publicar evento de movimiento")
	}
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:         m.ID,
		PartID:     m.PartID,
		StoreID:    m.StoreID,
		Type:       m.Type,
		Quantity:   m.Quantity,
		Reference:  m.Reference,
		Notes:      m.Notes,
		OccurredAt: m.OccurredAt,
		CreatedAt:  m.CreatedAt,
		CreatedBy:  m.CreatedBy,
	}
}
