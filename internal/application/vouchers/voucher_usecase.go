// Package vouchers administra comprobantes de caja (recibos de ingreso y
// comprobantes de egreso) con numeración secuencial y PDF imprimible.
package vouchers

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/repuestos-erp/internal/application/dto"
	"github.com/tu-usuario/repuestos-erp/internal/domain"
	"github.com/tu-usuario/repuestos-erp/internal/domain/entity"
	"github.com/tu-usuario/repuestos-erp/internal/domain/repository"
)

// PDFGenerator puerto de salida para renderizar un comprobante como PDF.
type PDFGenerator interface {
	VoucherPDF(voucher *entity.Voucher, company *entity.Company) ([]byte, error)
}

// VoucherUseCase alta, consulta y PDF de comprobantes.
type VoucherUseCase struct {
	voucherRepo repository.VoucherRepository
	companyRepo repository.CompanyRepository
	pdfGen      PDFGenerator
}

func NewVoucherUseCase(
	voucherRepo repository.VoucherRepository,
	companyRepo repository.CompanyRepository,
	pdfGen PDFGenerator,
) *VoucherUseCase {
	return &VoucherUseCase{
		voucherRepo: voucherRepo,
		companyRepo: companyRepo,
		pdfGen:      pdfGen,
	}
}

// Create emite un comprobante con número secuencial por empresa y tipo:
// RV-0001 para recibos, PV-0001 para egresos.
func (uc *VoucherUseCase) Create(companyID, userID string, in dto.CreateVoucherRequest) (*dto.VoucherResponse, error) {
	if in.Type != entity.VoucherTypeReceipt && in.Type != entity.VoucherTypePayment {
		return nil, domain.ErrInvalidInput
	}
	if strings.TrimSpace(in.PartyName) == "" || !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	switch in.Method {
	case entity.VoucherMethodCash, entity.VoucherMethodTransfer, entity.VoucherMethodCheck:
	default:
		return nil, domain.ErrInvalidInput
	}

	count, err := uc.voucherRepo.CountByCompanyAndType(companyID, in.Type)
	if err != nil {
		return nil, err
	}
	prefix := "RV"
	if in.Type == entity.VoucherTypePayment {
		prefix = "PV"
	}

	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	voucher := &entity.Voucher{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		VoucherNo: fmt.Sprintf("%s-%04d", prefix, count+1),
		Type:      in.Type,
		PartyName: strings.TrimSpace(in.PartyName),
		Amount:    in.Amount,
		Method:    in.Method,
		Date:      date,
		Notes:     in.Notes,
		CreatedBy: userID,
		CreatedAt: now,
	}
	if err := uc.voucherRepo.Create(voucher); err != nil {
		return nil, err
	}
	return toVoucherResponse(voucher), nil
}

// GetByID trae un comprobante verificando pertenencia a la empresa.
func (uc *VoucherUseCase) GetByID(companyID, id string) (*dto.VoucherResponse, error) {
	voucher, err := uc.owned(companyID, id)
	if err != nil {
		return nil, err
	}
	return toVoucherResponse(voucher), nil
}

// List lista comprobantes con filtros de tipo y rango de fechas.
func (uc *VoucherUseCase) List(companyID string, filter repository.VoucherFilter, page dto.PageRequest) (*dto.VoucherListResponse, error) {
	page.DefaultPage()
	vouchers, err := uc.voucherRepo.ListByCompany(companyID, filter, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VoucherResponse, 0, len(vouchers))
	for _, v := range vouchers {
		items = append(items, *toVoucherResponse(v))
	}
	return &dto.VoucherListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete anula un comprobante.
func (uc *VoucherUseCase) Delete(companyID, id string) error {
	if _, err := uc.owned(companyID, id); err != nil {
		return err
	}
	return uc.voucherRepo.Delete(id)
}

// PDF genera el comprobante imprimible con los datos de la empresa en el
// encabezado.
func (uc *VoucherUseCase) PDF(companyID, id string) ([]byte, error) {
	voucher, err := uc.owned(companyID, id)
	if err != nil {
		return nil, err
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil || company == nil {
		return nil, domain.ErrNotFound
	}
	return uc.pdfGen.VoucherPDF(voucher, company)
}

func (uc *VoucherUseCase) owned(companyID, id string) (*entity.Voucher, error) {
	voucher, err := uc.voucherRepo.GetByID(id)
	if err != nil || voucher == nil {
		return nil, domain.ErrNotFound
	}
	if voucher.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return voucher, nil
}

func toVoucherResponse(v *entity.Voucher) *dto.VoucherResponse {
	return &dto.VoucherResponse{
		ID:        v.ID,
		VoucherNo: v.VoucherNo,
		Type:      v.Type,
		PartyName: v.PartyName,
		Amount:    v.Amount,
		Method:    v.Method,
		Date:      v.Date,
		Notes:     v.Notes,
		CreatedBy: v.CreatedBy,
		CreatedAt: v.CreatedAt,
	}
}
