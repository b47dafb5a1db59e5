package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/repuestos-erp/internal/application/dto"
	"github.com/tu-usuario/repuestos-erp/internal/application/reports"
)

// ReportHandler maneja el tablero y los informes descargables (protegido).
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Tablero de inventario
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	out, err := h.uc.Dashboard(c.Context(), companyID, time.Now())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// StockMovements godoc
// @Summary      Informe de movimientos por período
// @Description  Balance de apertura, entradas, salidas y cierre por repuesto
// @Description  en [from, to]. format=xml descarga el informe como XML.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from    query  string  true   "Fecha inicial (YYYY-MM-DD)"
// @Param        to      query  string  true   "Fecha final (YYYY-MM-DD)"
// @Param        format  query  string  false  "json (default) | xml"
// @Success      200  {object}  dto.StockMovementReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/stock-movement [get]
func (h *ReportHandler) StockMovements(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido (YYYY-MM-DD)"})
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido (YYYY-MM-DD)"})
	}

	if c.Query("format") == "xml" {
		xmlBytes, err := h.uc.StockMovementReportXML(c.Context(), companyID, from, to)
		if err != nil {
			return errorJSON(c, err)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimientos.xml"`)
		return c.Send(xmlBytes)
	}

	out, err := h.uc.StockMovementReport(c.Context(), companyID, from, to)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
