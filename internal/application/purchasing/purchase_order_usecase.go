package purchasing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/repuestos-erp/internal/application/dto"
	"github.com/tu-usuario/repuestos-erp/internal/domain"
	"github.com/tu-usuario/repuestos-erp/internal/domain/entity"
	"github.com/tu-usuario/repuestos-erp/internal/domain/repository"
)

// PurchaseOrderUseCase ciclo de vida de órdenes de compra:
// draft -> ordered -> received, con cancelación desde draft u ordered.
// La recepción genera los asientos IN en la misma transacción.
type PurchaseOrderUseCase struct {
	poRepo       repository.PurchaseOrderRepository
	supplierRepo repository.SupplierRepository
	partRepo     repository.PartRepository
	storeRepo    repository.StoreRepository
	txRunner     TxRunner
}

func NewPurchaseOrderUseCase(
	poRepo repository.PurchaseOrderRepository,
	supplierRepo repository.SupplierRepository,
	partRepo repository.PartRepository,
	storeRepo repository.StoreRepository,
	txRunner TxRunner,
) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{
		poRepo:       poRepo,
		supplierRepo: supplierRepo,
		partRepo:     partRepo,
		storeRepo:    storeRepo,
		txRunner:     txRunner,
	}
}

// Create crea una orden en draft con número secuencial PO-00001 por empresa.
func (uc *PurchaseOrderUseCase) Create(companyID, userID string, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if in.SupplierID == "" || in.StoreID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil || supplier == nil || supplier.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	store, err := uc.storeRepo.GetByID(in.StoreID)
	if err != nil || store == nil || store.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	orderID := uuid.New().String()
	items, total, err := uc.buildItems(companyID, orderID, in.Items)
	if err != nil {
		return nil, err
	}

	count, err := uc.poRepo.CountByCompany(companyID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &entity.PurchaseOrder{
		ID:         orderID,
		CompanyID:  companyID,
		OrderNo:    fmt.Sprintf("PO-%05d", count+1),
		SupplierID: in.SupplierID,
		StoreID:    in.StoreID,
		Status:     entity.POStatusDraft,
		Notes:      in.Notes,
		Total:      total,
		Items:      items,
		CreatedAt:  now,
		UpdatedAt:  now,
		CreatedBy:  userID,
	}
	if in.ExpectedDate != nil {
		order.ExpectedDate = *in.ExpectedDate
	}

	if err := uc.poRepo.Create(order); err != nil {
		return nil, err
	}
	return toPurchaseOrderResponse(order), nil
}

// GetByID trae una orden con sus renglones.
func (uc *PurchaseOrderUseCase) GetByID(companyID, id string) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.owned(companyID, id)
	if err != nil {
		return nil, err
	}
	return toPurchaseOrderResponse(order), nil
}

// List lista órdenes de la empresa; status vacío = todas.
func (uc *PurchaseOrderUseCase) List(companyID, status string, page dto.PageRequest) (*dto.PurchaseOrderListResponse, error) {
	page.DefaultPage()
	orders, err := uc.poRepo.ListByCompany(companyID, status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseOrderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, *toPurchaseOrderResponse(o))
	}
	return &dto.PurchaseOrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update modifica una orden; solo se permite en draft.
func (uc *PurchaseOrderUseCase) Update(companyID, id string, in dto.UpdatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.owned(companyID, id)
	if err != nil {
		return nil, err
	}
	if order.Status != entity.POStatusDraft {
		return nil, domain.ErrConflict
	}

	if in.StoreID != nil {
		store, err := uc.storeRepo.GetByID(*in.StoreID)
		if err != nil || store == nil || store.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
		order.StoreID = *in.StoreID
	}
	if in.ExpectedDate != nil {
		order.ExpectedDate = *in.ExpectedDate
	}
	if in.Notes != nil {
		order.Notes = *in.Notes
	}
	if len(in.Items) > 0 {
		items, total, err := uc.buildItems(companyID, order.ID, in.Items)
		if err != nil {
			return nil, err
		}
		order.Items = items
		order.Total = total
	}
	order.UpdatedAt = time.Now()

	if err := uc.poRepo.Update(order); err != nil {
		return nil, err
	}
	return toPurchaseOrderResponse(order), nil
}

// Place pasa la orden de draft a ordered.
func (uc *PurchaseOrderUseCase) Place(companyID, id string) error {
	order, err := uc.owned(companyID, id)
	if err != nil {
		return err
	}
	if order.Status != entity.POStatusDraft {
		return domain.ErrConflict
	}
	return uc.poRepo.UpdateStatus(id, entity.POStatusOrdered)
}

// Receive marca la orden como recibida y registra un asiento IN por cada
// renglón en la bodega destino, todo dentro de una transacción: o entra el
// stock completo y la orden queda received, o no pasa nada.
func (uc *PurchaseOrderUseCase) Receive(ctx context.Context, companyID, userID, id string) error {
	order, err := uc.owned(companyID, id)
	if err != nil {
		return err
	}
	if order.Status != entity.POStatusOrdered {
		return domain.ErrConflict
	}

	now := time.Now()
	return uc.txRunner.Run(ctx, func(movRepo repository.StockMovementRepository, poRepo repository.PurchaseOrderRepository) error {
		for _, item := range order.Items {
			mov := &entity.StockMovement{
				ID:         uuid.New().String(),
				CompanyID:  companyID,
				PartID:     item.PartID,
				StoreID:    order.StoreID,
				Type:       entity.MovementTypeIn,
				Quantity:   item.Quantity,
				Reference:  order.OrderNo,
				OccurredAt: now,
				CreatedAt:  now,
				CreatedBy:  userID,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
		}
		return poRepo.UpdateStatus(id, entity.POStatusReceived)
	})
}

// Cancel anula la orden; válido desde draft u ordered.
func (uc *PurchaseOrderUseCase) Cancel(companyID, id string) error {
	order, err := uc.owned(companyID, id)
	if err != nil {
		return err
	}
	if order.Status != entity.POStatusDraft && order.Status != entity.POStatusOrdered {
		return domain.ErrConflict
	}
	return uc.poRepo.UpdateStatus(id, entity.POStatusCancelled)
}

// Delete elimina una orden; solo en draft.
func (uc *PurchaseOrderUseCase) Delete(companyID, id string) error {
	order, err := uc.owned(companyID, id)
	if err != nil {
		return err
	}
	if order.Status != entity.POStatusDraft {
		return domain.ErrConflict
	}
	return uc.poRepo.Delete(id)
}

func (uc *PurchaseOrderUseCase) owned(companyID, id string) (*entity.PurchaseOrder, error) {
	order, err := uc.poRepo.GetByID(id)
	if err != nil || order == nil {
		return nil, domain.ErrNotFound
	}
	if order.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

func (uc *PurchaseOrderUseCase) buildItems(companyID, orderID string, in []dto.PurchaseOrderItemRequest) ([]entity.PurchaseOrderItem, decimal.Decimal, error) {
	items := make([]entity.PurchaseOrderItem, 0, len(in))
	total := decimal.Zero
	for _, it := range in {
		if it.Quantity <= 0 || it.UnitCost.IsNegative() {
			return nil, decimal.Zero, domain.ErrInvalidInput
		}
		part, err := uc.partRepo.GetByID(it.PartID)
		if err != nil || part == nil || part.CompanyID != companyID {
			return nil, decimal.Zero, domain.ErrNotFound
		}
		subtotal := it.UnitCost.Mul(decimal.NewFromInt(it.Quantity))
		items = append(items, entity.PurchaseOrderItem{
			ID:       uuid.New().String(),
			OrderID:  orderID,
			PartID:   it.PartID,
			Quantity: it.Quantity,
			UnitCost: it.UnitCost,
			Subtotal: subtotal,
		})
		total = total.Add(subtotal)
	}
	return items, total, nil
}

func toPurchaseOrderResponse(o *entity.PurchaseOrder) *dto.PurchaseOrderResponse {
	resp := &dto.PurchaseOrderResponse{
		ID:         o.ID,
		OrderNo:    o.OrderNo,
		SupplierID: o.SupplierID,
		StoreID:    o.StoreID,
		Status:     o.Status,
		Notes:      o.Notes,
		Total:      o.Total,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
	if !o.ExpectedDate.IsZero() {
		expected := o.ExpectedDate
		resp.ExpectedDate = &expected
	}
	for _, it := range o.Items {
		resp.Items = append(resp.Items, dto.PurchaseOrderItemResponse{
			ID:       it.ID,
			PartID:   it.PartID,
			Quantity: it.Quantity,
			UnitCost: it.UnitCost,
			Subtotal: it.Subtotal,
		})
	}
	return resp
}
