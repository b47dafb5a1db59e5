package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/repuestos-erp/internal/application/dto"
	"github.com/tu-usuario/repuestos-erp/internal/application/inventory"
	"github.com/tu-usuario/repuestos-erp/internal/domain/repository"
)

// InventoryHandler maneja el libro de movimientos, balances y el análisis de
// rotación de stock (protegido).
type InventoryHandler struct {
	movementUC *inventory.RegisterMovementUseCase
	balanceUC  *inventory.BalanceUseCase
	analysisUC *inventory.AnalysisUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	movementUC *inventory.RegisterMovementUseCase,
	balanceUC *inventory.BalanceUseCase,
	analysisUC *inventory.AnalysisUseCase,
) *InventoryHandler {
	return &InventoryHandler{movementUC: movementUC, balanceUC: balanceUC, analysisUC: analysisUC}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Movimiento (in/out)"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.movementUC.RegisterMovement(c.Context(), companyID, GetUserID(c), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMovements godoc
// @Summary      Listar movimientos de inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        part_id   query  string  false  "Filtro por repuesto"
// @Param        store_id  query  string  false  "Filtro por bodega"
// @Param        type      query  string  false  "in | out"
// @Param        from      query  string  false  "Fecha inicial (YYYY-MM-DD)"
// @Param        to        query  string  false  "Fecha final (YYYY-MM-DD)"
// @Param        limit     query  int     false  "Límite"   default(20)
// @Param        offset    query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	filter := repository.MovementFilter{
		PartID:  c.Query("part_id"),
		StoreID: c.Query("store_id"),
		Type:    c.Query("type"),
		From:    parseDateQuery(c, "from"),
		To:      parseDateQuery(c, "to"),
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.movementUC.ListMovements(c.Context(), companyID, filter, page.Limit, page.Offset)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Transfer godoc
// @Summary      Traslado entre bodegas
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "Traslado"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "Stock insuficiente en bodega origen"
// @Router       /api/inventory/transfers [post]
func (h *InventoryHandler) Transfer(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.movementUC.Transfer(c.Context(), companyID, GetUserID(c), in); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Balances godoc
// @Summary      Balances de stock por repuesto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        search        query  string  false  "Busca en número de parte y descripción"
// @Param        low_stock     query  bool    false  "Solo repuestos en o bajo punto de reorden"
// @Param        out_of_stock  query  bool    false  "Solo repuestos con balance cero o negativo"
// @Param        limit         query  int     false  "Límite"   default(20)
// @Param        offset        query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.StockBalancesResponse
// @Router       /api/inventory/balances [get]
func (h *InventoryHandler) Balances(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	filter := repository.PartFilter{Search: c.Query("search")}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.balanceUC.Balances(c.Context(), companyID, filter,
		c.QueryBool("low_stock", false), c.QueryBool("out_of_stock", false), page)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// PartBalance godoc
// @Summary      Balance de un repuesto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        partId  path  string  true  "ID del repuesto"
// @Success      200  {object}  dto.BalanceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/balance/{partId} [get]
func (h *InventoryHandler) PartBalance(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	out, err := h.balanceUC.PartBalance(c.Context(), companyID, c.Params("partId"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// StockAnalysis godoc
// @Summary      Análisis de rotación de stock
// @Description  Clasifica cada repuesto activo como Fast, Normal, Slow o Dead
// @Description  según días sin movimiento y rotación mensual. Los umbrales son
// @Description  configurables por query; valores no numéricos caen al default.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        fast_moving_days  query  int     false  "Umbral Fast (días)"      default(30)
// @Param        slow_moving_days  query  int     false  "Umbral Slow (días)"      default(90)
// @Param        dead_stock_days   query  int     false  "Umbral Dead (días)"      default(180)
// @Param        analysis_period   query  int     false  "Ventana de rotación (meses)"  default(6)
// @Param        search            query  string  false  "Busca en número de parte y descripción"
// @Param        category          query  string  false  "Nombre de categoría; all = todas"
// @Param        classification    query  string  false  "Fast | Normal | Slow | Dead; all = todas"
// @Success      200  {object}  dto.StockAnalysisResponse
// @Router       /api/inventory/stock-analysis [get]
func (h *InventoryHandler) StockAnalysis(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	// QueryInt cae al default con valores no numéricos; umbrales no positivos
	// también vuelven al default en lugar de responder 400.
	q := dto.StockAnalysisQuery{
		FastMovingDays:       positiveOr(c.QueryInt("fast_moving_days", 30), 30),
		SlowMovingDays:       positiveOr(c.QueryInt("slow_moving_days", 90), 90),
		DeadStockDays:        positiveOr(c.QueryInt("dead_stock_days", 180), 180),
		AnalysisPeriodMonths: positiveOr(c.QueryInt("analysis_period", 6), 6),
		Search:               c.Query("search"),
		Category:             c.Query("category"),
		Classification:       c.Query("classification"),
	}
	out, err := h.analysisUC.StockAnalysis(c.Context(), companyID, q, time.Now())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

func positiveOr(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// parseDateQuery parsea un query param YYYY-MM-DD; inválido o ausente = nil.
func parseDateQuery(c *fiber.Ctx, name string) *time.Time {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &t
}
