// Package export serializa informes a formatos descargables.
package export

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/tu-usuario/repuestos-erp/internal/application/dto"
	"github.com/tu-usuario/repuestos-erp/internal/application/reports"
)

// Verificar en tiempo de compilación que XMLReportExporter implementa el puerto.
var _ reports.XMLExporter = (*XMLReportExporter)(nil)

// XMLReportExporter implementa reports.XMLExporter usando etree.
type XMLReportExporter struct{}

// NewXMLReportExporter construye el exportador.
func NewXMLReportExporter() *XMLReportExporter { return &XMLReportExporter{} }

// StockMovementReportXML serializa el informe de movimientos:
//
//	<StockMovementReport from="..." to="...">
//	  <Part id="..." partNo="...">
//	    <Description>...</Description>
//	    <OpeningBalance>...</OpeningBalance>
//	    <PeriodIn>...</PeriodIn>
//	    <PeriodOut>...</PeriodOut>
//	    <ClosingBalance>...</ClosingBalance>
//	  </Part>
//	</StockMovementReport>
func (e *XMLReportExporter) StockMovementReportXML(report *dto.StockMovementReportDTO) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("StockMovementReport")
	root.CreateAttr("from", report.From.Format("2006-01-02"))
	root.CreateAttr("to", report.To.Format("2006-01-02"))

	for _, row := range report.Rows {
		part := root.CreateElement("Part")
		part.CreateAttr("id", row.PartID)
		part.CreateAttr("partNo", row.PartNo)
		part.CreateElement("Description").SetText(row.Description)
		part.CreateElement("OpeningBalance").SetText(strconv.FormatInt(row.OpeningBalance, 10))
		part.CreateElement("PeriodIn").SetText(strconv.FormatInt(row.PeriodIn, 10))
		part.CreateElement("PeriodOut").SetText(strconv.FormatInt(row.PeriodOut, 10))
		part.CreateElement("ClosingBalance").SetText(strconv.FormatInt(row.ClosingBalance, 10))
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("serializar informe XML: %w", err)
	}
	return out, nil
}
