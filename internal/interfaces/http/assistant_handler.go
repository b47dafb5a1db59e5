package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/repuestos-erp/internal/application/assistant"
	"github.com/tu-usuario/repuestos-erp/internal/application/dto"
)

// AssistantHandler maneja el asistente de inventario con IA (protegido).
type AssistantHandler struct {
	uc *assistant.AssistantUseCase
}

// NewAssistantHandler construye el handler.
func NewAssistantHandler(uc *assistant.AssistantUseCase) *AssistantHandler {
	return &AssistantHandler{uc: uc}
}

// Chat godoc
// @Summary      Preguntar al asistente de inventario
// @Description  Responde preguntas sobre el inventario usando un resumen del
// @Description  catálogo clasificado como único contexto del modelo.
// @Tags         assistant
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChatRequest  true  "Pregunta"
// @Success      200   {object}  dto.AssistantAnswerDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse  "Asistente no configurado"
// @Router       /api/assistant/chat [post]
func (h *AssistantHandler) Chat(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var in dto.ChatRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Chat(c.Context(), companyID, in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
