// Package pdf genera la representación imprimible de los comprobantes de caja.
//
// Layout de la página A5 apaisada:
//
//	┌───────────────────────────────────────────────┐
//	│  HEADER: Empresa + NIT  │  N° Comprobante     │
//	│  ───────────────────────────────────────────  │
//	│  RECIBIDO DE / PAGADO A: nombre               │
//	│  MONTO (destacado) + método de pago + fecha   │
//	│  Notas                                        │
//	│  ───────────────────────────────────────────  │
//	│  Firmas: Elaborado / Recibido                 │
//	└───────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/repuestos-erp/internal/application/vouchers"
	"github.com/tu-usuario/repuestos-erp/internal/domain/entity"
)

var _ vouchers.PDFGenerator = (*MarotoVoucherGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoVoucherGenerator implementa vouchers.PDFGenerator usando Maroto v2.
type MarotoVoucherGenerator struct{}

// NewMarotoVoucherGenerator construye el generador.
func NewMarotoVoucherGenerator() *MarotoVoucherGenerator { return &MarotoVoucherGenerator{} }

// VoucherPDF genera el comprobante y devuelve sus bytes.
func (g *MarotoVoucherGenerator) VoucherPDF(voucher *entity.Voucher, company *entity.Company) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(voucherTitle(voucher.Type)+" "+voucher.VoucherNo, true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(voucher, company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partyRow(voucher))
	m.AddRows(amountRow(voucher))
	if voucher.Notes != "" {
		m.AddRows(notesRow(voucher.Notes))
	}
	m.AddRows(line.NewRow(3))
	m.AddRows(signaturesRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

func voucherTitle(voucherType string) string {
	if voucherType == entity.VoucherTypePayment {
		return "COMPROBANTE DE EGRESO"
	}
	return "RECIBO DE CAJA"
}

// headerRow: empresa (izq) y número + fecha (der).
func headerRow(voucher *entity.Voucher, company *entity.Company) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("NIT: "+nonEmpty(company.TaxID, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(voucherTitle(voucher.Type), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(voucher.VoucherNo, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+voucher.Date.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// partyRow: de quién se recibe o a quién se paga.
func partyRow(voucher *entity.Voucher) core.Row {
	label := "RECIBIDO DE"
	if voucher.Type == entity.VoucherTypePayment {
		label = "PAGADO A"
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(voucher.PartyName, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 7,
			}),
		),
	)
}

// amountRow: monto destacado + método de pago.
func amountRow(voucher *entity.Voucher) core.Row {
	return row.New(16).Add(
		col.New(6).Add(
			text.New("VALOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New("$"+formatMoney(voucher.Amount.StringFixed(0)), props.Text{
				Style: fontstyle.Bold, Size: 14, Top: 6, Color: colorPrimary,
			}),
		),
		col.New(6).Add(
			text.New("MÉTODO DE PAGO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(methodLabel(voucher.Method), props.Text{
				Size: 10, Align: align.Right, Top: 7,
			}),
		),
	)
}

func notesRow(notes string) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("Concepto: "+notes, props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
	)
}

// signaturesRow: líneas para firmas de elaboración y recepción.
func signaturesRow() core.Row {
	sig := func(label string) core.Col {
		return col.New(6).Add(
			text.New("__________________________", props.Text{
				Size: 9, Align: align.Center, Top: 8,
			}),
			text.New(label, props.Text{
				Size: 8, Align: align.Center, Top: 13, Color: colorGray,
			}),
		)
	}
	return row.New(20).Add(sig("Elaborado por"), sig("Recibido por"))
}

func methodLabel(method string) string {
	switch method {
	case entity.VoucherMethodTransfer:
		return "Transferencia"
	case entity.VoucherMethodCheck:
		return "Cheque"
	default:
		return "Efectivo"
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
