package dto

import "github.com/shopspring/decimal"

// ChatRequest body para POST /api/assistant/chat.
type ChatRequest struct {
	Question string `json:"question"`
}

// DeadStockItemDTO repuesto muerto destacado en el contexto del asistente.
type DeadStockItemDTO struct {
	PartNo      string          `json:"part_no"`
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity"`
	DaysIdle    int             `json:"days_idle"`
	Value       decimal.Decimal `json:"value"`
}

// InventorySnapshotDTO resumen de inventario que acompaña cada pregunta al
// LLM; es el único contexto que el modelo recibe (no consulta la DB).
type InventorySnapshotDTO struct {
	ActiveParts   int64              `json:"active_parts"`
	StockUnits    int64              `json:"stock_units"`
	StockValue    decimal.Decimal    `json:"stock_value"`
	LowStockParts int64              `json:"low_stock_parts"`
	DeadStockTop  []DeadStockItemDTO `json:"dead_stock_top"`
}

// AssistantAnswerDTO respuesta del asistente de inventario.
type AssistantAnswerDTO struct {
	Answer string `json:"answer"`
	Model  string `json:"model"`
}
