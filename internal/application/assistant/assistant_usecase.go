// Package assistant responde preguntas sobre el inventario usando un LLM.
// El modelo no consulta la DB: recibe un resumen armado aquí junto con la
// pregunta del usuario.
package assistant

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/repuestos-erp/internal/application/dto"
	"github.com/tu-usuario/repuestos-erp/internal/domain"
	"github.com/tu-usuario/repuestos-erp/internal/domain/analysis"
	"github.com/tu-usuario/repuestos-erp/internal/domain/entity"
	"github.com/tu-usuario/repuestos-erp/internal/domain/repository"
)

// askTimeout tope por pregunta al proveedor del LLM.
const askTimeout = 10 * time.Second

// deadStockTopN repuestos muertos destacados en el contexto del modelo.
const deadStockTopN = 5

// LLMService puerto de salida hacia el proveedor del modelo de lenguaje.
type LLMService interface {
	Ask(ctx context.Context, question string, snapshot dto.InventorySnapshotDTO) (*dto.AssistantAnswerDTO, error)
}

// AssistantUseCase arma el resumen de inventario y delega la respuesta al LLM.
type AssistantUseCase struct {
	partRepo repository.PartRepository
	movRepo  repository.StockMovementRepository
	llm      LLMService
}

func NewAssistantUseCase(
	partRepo repository.PartRepository,
	movRepo repository.StockMovementRepository,
	llm LLMService,
) *AssistantUseCase {
	return &AssistantUseCase{partRepo: partRepo, movRepo: movRepo, llm: llm}
}

// Chat responde una pregunta sobre el inventario de la empresa.
func (uc *AssistantUseCase) Chat(ctx context.Context, companyID string, in dto.ChatRequest) (*dto.AssistantAnswerDTO, error) {
	question := strings.TrimSpace(in.Question)
	if question == "" {
		return nil, domain.ErrInvalidInput
	}
	if uc.llm == nil {
		return nil, domain.ErrUnavailable
	}

	snapshot, err := uc.snapshot(ctx, companyID)
	if err != nil {
		return nil, err
	}

	askCtx, cancel := context.WithTimeout(ctx, askTimeout)
	defer cancel()
	return uc.llm.Ask(askCtx, question, *snapshot)
}

// snapshot resume el inventario: totales del catálogo activo y el top de
// repuestos muertos por valor inmovilizado (umbrales por defecto).
func (uc *AssistantUseCase) snapshot(ctx context.Context, companyID string) (*dto.InventorySnapshotDTO, error) {
	parts, err := uc.partRepo.ListActiveByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	partIDs := make([]string, 0, len(parts))
	for _, p := range parts {
		partIDs = append(partIDs, p.ID)
	}
	movements, err := uc.movRepo.ListByPartIDs(ctx, partIDs)
	if err != nil {
		return nil, err
	}
	byPart := make(map[string][]entity.StockMovement, len(parts))
	for _, m := range movements {
		byPart[m.PartID] = append(byPart[m.PartID], *m)
	}

	now := time.Now()
	cfg := analysis.DefaultConfig()
	snap := &dto.InventorySnapshotDTO{ActiveParts: int64(len(parts))}

	var dead []dto.DeadStockItemDTO
	for _, p := range parts {
		result := analysis.Classify(p.ID, byPart[p.ID], cfg, now)
		stock := result.CurrentStock
		value := decimal.Zero
		if stock > 0 {
			snap.StockUnits += stock
			value = p.Cost.Mul(decimal.NewFromInt(stock))
		}
		snap.StockValue = snap.StockValue.Add(value)
		if result.CurrentStock <= p.ReorderPoint {
			snap.LowStockParts++
		}
		if result.Classification == analysis.ClassificationDead && stock > 0 {
			dead = append(dead, dto.DeadStockItemDTO{
				PartNo:      p.PartNo,
				Description: p.Description,
				Quantity:    stock,
				DaysIdle:    result.DaysIdle,
				Value:       value,
			})
		}
	}

	sort.Slice(dead, func(i, j int) bool { return dead[i].Value.GreaterThan(dead[j].Value) })
	if len(dead) > deadStockTopN {
		dead = dead[:deadStockTopN]
	}
	snap.DeadStockTop = dead
	return snap, nil
}
