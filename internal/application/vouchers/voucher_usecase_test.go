package vouchers

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/repuestos-erp/internal/application/dto"
	"github.com/tu-usuario/repuestos-erp/internal/domain"
	"github.com/tu-usuario/repuestos-erp/internal/domain/entity"
	"github.com/tu-usuario/repuestos-erp/internal/domain/repository"
)

type memVoucherRepo struct {
	vouchers []*entity.Voucher
}

func (r *memVoucherRepo) Create(v *entity.Voucher) error {
	r.vouchers = append(r.vouchers, v)
	return nil
}

func (r *memVoucherRepo) GetByID(id string) (*entity.Voucher, error) {
	for _, v := range r.vouchers {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, nil
}

func (r *memVoucherRepo) ListByCompany(companyID string, filter repository.VoucherFilter, limit, offset int) ([]*entity.Voucher, error) {
	var out []*entity.Voucher
	for _, v := range r.vouchers {
		if v.CompanyID != companyID {
			continue
		}
		if filter.Type != "" && v.Type != filter.Type {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (r *memVoucherRepo) Delete(id string) error {
	for i, v := range r.vouchers {
		if v.ID == id {
			r.vouchers = append(r.vouchers[:i], r.vouchers[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memVoucherRepo) CountByCompanyAndType(companyID, voucherType string) (int, error) {
	count := 0
	for _, v := range r.vouchers {
		if v.CompanyID == companyID && v.Type == voucherType {
			count++
		}
	}
	return count, nil
}

type memCompanyRepo struct {
	companies map[string]*entity.Company
}

func (r *memCompanyRepo) Create(c *entity.Company) error { r.companies[c.ID] = c; return nil }
func (r *memCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.companies[id], nil
}
func (r *memCompanyRepo) Update(c *entity.Company) error { r.companies[c.ID] = c; return nil }

type fakePDFGen struct {
	calls int
}

func (g *fakePDFGen) VoucherPDF(v *entity.Voucher, c *entity.Company) ([]byte, error) {
	g.calls++
	return []byte("%PDF-1.4 " + v.VoucherNo), nil
}

func newTestUseCase() (*VoucherUseCase, *memVoucherRepo, *fakePDFGen) {
	voucherRepo := &memVoucherRepo{}
	companyRepo := &memCompanyRepo{companies: map[string]*entity.Company{
		"co-1": {ID: "co-1", Name: "Repuestos El Motor"},
	}}
	pdfGen := &fakePDFGen{}
	return NewVoucherUseCase(voucherRepo, companyRepo, pdfGen), voucherRepo, pdfGen
}

func receiptRequest(party string) dto.CreateVoucherRequest {
	return dto.CreateVoucherRequest{
		Type:      entity.VoucherTypeReceipt,
		PartyName: party,
		Amount:    decimal.NewFromInt(150000),
		Method:    entity.VoucherMethodCash,
	}
}

func TestCreate_NumeracionSecuencialPorTipo(t *testing.T) {
	uc, _, _ := newTestUseCase()

	rv1, err := uc.Create("co-1", "user-1", receiptRequest("Cliente A"))
	require.NoError(t, err)
	rv2, err := uc.Create("co-1", "user-1", receiptRequest("Cliente B"))
	require.NoError(t, err)

	pv := receiptRequest("Proveedor X")
	pv.Type = entity.VoucherTypePayment
	pv1, err := uc.Create("co-1", "user-1", pv)
	require.NoError(t, err)

	assert.Equal(t, "RV-0001", rv1.VoucherNo)
	assert.Equal(t, "RV-0002", rv2.VoucherNo)
	assert.Equal(t, "PV-0001", pv1.VoucherNo, "los egresos llevan su propia secuencia")
}

func TestCreate_NumeracionIndependientePorEmpresa(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Create("co-1", "user-1", receiptRequest("Cliente A"))
	require.NoError(t, err)
	otra, err := uc.Create("co-2", "user-9", receiptRequest("Cliente Z"))
	require.NoError(t, err)

	assert.Equal(t, "RV-0001", otra.VoucherNo)
}

func TestCreate_Validacion(t *testing.T) {
	uc, _, _ := newTestUseCase()

	cases := []struct {
		name   string
		mutate func(*dto.CreateVoucherRequest)
	}{
		{"tipo inválido", func(r *dto.CreateVoucherRequest) { r.Type = "invoice" }},
		{"sin beneficiario", func(r *dto.CreateVoucherRequest) { r.PartyName = "   " }},
		{"monto cero", func(r *dto.CreateVoucherRequest) { r.Amount = decimal.Zero }},
		{"monto negativo", func(r *dto.CreateVoucherRequest) { r.Amount = decimal.NewFromInt(-10) }},
		{"método inválido", func(r *dto.CreateVoucherRequest) { r.Method = "crypto" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := receiptRequest("Cliente A")
			tc.mutate(&in)
			_, err := uc.Create("co-1", "user-1", in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCreate_RespetaFechaExplicita(t *testing.T) {
	uc, _, _ := newTestUseCase()

	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	in := receiptRequest("Cliente A")
	in.Date = &date

	out, err := uc.Create("co-1", "user-1", in)
	require.NoError(t, err)
	assert.True(t, date.Equal(out.Date))
}

func TestDelete_EliminaDelListado(t *testing.T) {
	uc, repo, _ := newTestUseCase()

	rv1, err := uc.Create("co-1", "user-1", receiptRequest("Cliente A"))
	require.NoError(t, err)
	_, err = uc.Create("co-1", "user-1", receiptRequest("Cliente B"))
	require.NoError(t, err)

	require.NoError(t, uc.Delete("co-1", rv1.ID))

	out, err := uc.List("co-1", repository.VoucherFilter{}, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Len(t, repo.vouchers, 1)
}

func TestDelete_OtraEmpresaForbidden(t *testing.T) {
	uc, _, _ := newTestUseCase()

	rv, err := uc.Create("co-1", "user-1", receiptRequest("Cliente A"))
	require.NoError(t, err)

	err = uc.Delete("co-2", rv.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestPDF_DelegaEnGenerador(t *testing.T) {
	uc, _, pdfGen := newTestUseCase()

	rv, err := uc.Create("co-1", "user-1", receiptRequest("Cliente A"))
	require.NoError(t, err)

	pdf, err := uc.PDF("co-1", rv.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, pdfGen.calls)
	assert.Contains(t, string(pdf), "RV-0001")
}

func TestPDF_EmpresaInexistente(t *testing.T) {
	uc, _, _ := newTestUseCase()

	rv, err := uc.Create("co-9", "user-1", receiptRequest("Cliente A"))
	require.NoError(t, err)

	_, err = uc.PDF("co-9", rv.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
