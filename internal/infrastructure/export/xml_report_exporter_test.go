package export

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/repuestos-erp/internal/application/dto"
)

func TestStockMovementReportXML(t *testing.T) {
	report := &dto.StockMovementReportDTO{
		From: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC),
		Rows: []dto.StockMovementReportRowDTO{
			{
				PartID:         "part-1",
				PartNo:         "FA-001",
				Description:    "Filtro de aceite",
				OpeningBalance: 10,
				PeriodIn:       25,
				PeriodOut:      12,
				ClosingBalance: 23,
			},
			{
				PartID:         "part-2",
				PartNo:         "BJ-204",
				Description:    "Bujía iridio",
				OpeningBalance: -3, // el libro admite balances negativos
				PeriodIn:       0,
				PeriodOut:      2,
				ClosingBalance: -5,
			},
		},
	}

	out, err := NewXMLReportExporter().StockMovementReportXML(report)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	root := doc.SelectElement("StockMovementReport")
	require.NotNil(t, root)
	assert.Equal(t, "2025-05-01", root.SelectAttrValue("from", ""))
	assert.Equal(t, "2025-05-31", root.SelectAttrValue("to", ""))

	parts := root.SelectElements("Part")
	require.Len(t, parts, 2)

	first := parts[0]
	assert.Equal(t, "FA-001", first.SelectAttrValue("partNo", ""))
	assert.Equal(t, "Filtro de aceite", first.SelectElement("Description").Text())
	assert.Equal(t, "10", first.SelectElement("OpeningBalance").Text())
	assert.Equal(t, "23", first.SelectElement("ClosingBalance").Text())

	second := parts[1]
	assert.Equal(t, "-5", second.SelectElement("ClosingBalance").Text(),
		"los balances negativos se serializan tal cual")
}

func TestStockMovementReportXML_SinFilas(t *testing.T) {
	report := &dto.StockMovementReportDTO{
		From: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
	}

	out, err := NewXMLReportExporter().StockMovementReportXML(report)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	root := doc.SelectElement("StockMovementReport")
	require.NotNil(t, root)
	assert.Empty(t, root.SelectElements("Part"))
}
