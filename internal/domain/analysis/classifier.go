// Package analysis clasifica repuestos por velocidad de rotación a partir de
// su libro de movimientos (servicio de dominio puro, sin I/O ni estado).
package analysis

import (
	"math"
	"time"

	"github.com/tu-usuario/repuestos-erp/internal/domain/entity"
)

// Clasificaciones de rotación de un repuesto.
const (
	ClassificationFast   = "Fast"
	ClassificationNormal = "Normal"
	ClassificationSlow   = "Slow"
	ClassificationDead   = "Dead"
)

// NeverMovedDaysIdle es el centinela para repuestos sin ningún movimiento:
// se tratan como si llevaran un año quietos.
const NeverMovedDaysIdle = 365

// fastTurnoverFloor es el mínimo de unidades/mes para clasificar Fast.
// Umbral fijo del negocio, no configurable por request.
const fastTurnoverFloor = 5.0

// Config umbrales del análisis, en días salvo el período (meses).
type Config struct {
	FastMovingDays       int
	SlowMovingDays       int
	DeadStockDays        int
	AnalysisPeriodMonths int
}

// DefaultConfig umbrales por defecto del endpoint de análisis: 30/90/180 días
// sobre un período de 6 meses.
func DefaultConfig() Config {
	return Config{
		FastMovingDays:       30,
		SlowMovingDays:       90,
		DeadStockDays:        180,
		AnalysisPeriodMonths: 6,
	}
}

// Result métricas derivadas de un repuesto. No se persiste: se recalcula en
// cada consulta a partir del libro de movimientos.
type Result struct {
	PartID           string
	CurrentStock     int64 // sum(in) - sum(out), sin recortar (puede ser negativo)
	DaysIdle         int
	TurnoverPerMonth float64
	Classification   string
}

// Classify calcula stock actual, días sin movimiento, rotación mensual y la
// clasificación Fast/Normal/Slow/Dead de un repuesto.
//
// Reglas, evaluadas en este orden estricto (gana la primera que aplique):
//
//  1. Dead   si DaysIdle >= DeadStockDays o la rotación es exactamente 0.
//  2. Slow   si DaysIdle >= SlowMovingDays.
//  3. Fast   si DaysIdle <= FastMovingDays y rotación >= 5 unidades/mes.
//  4. Normal en cualquier otro caso.
//
// El orden importa: rotación 0 fuerza Dead aunque DaysIdle sea pequeño (un
// repuesto recién creado sin movimientos queda Dead el primer día), y una
// rotación altísima con DaysIdle entre Fast y Slow cae en Normal. Ese es el
// comportamiento del producto; no "corregirlo" aquí.
//
// La rotación cuenta unidades movidas en ambos sentidos (in + out) dentro de
// la ventana [now - AnalysisPeriodMonths, now], divididas por los meses del
// período. Movimientos fuera de la ventana no aportan, aunque sean los únicos.
//
// La función es determinista e idempotente; entradas mal formadas (cantidades
// negativas, período 0) se propagan aritméticamente, no se rechazan.
func Classify(partID string, movements []entity.StockMovement, cfg Config, now time.Time) Result {
	windowStart := now.AddDate(0, -cfg.AnalysisPeriodMonths, 0)

	var inQty, outQty, movedInWindow int64
	var lastMovement time.Time
	hasMovements := false

	for _, m := range movements {
		if m.Type == entity.MovementTypeIn {
			inQty += m.Quantity
		} else {
			outQty += m.Quantity
		}
		if !hasMovements || m.OccurredAt.After(lastMovement) {
			lastMovement = m.OccurredAt
			hasMovements = true
		}
		if !m.OccurredAt.Before(windowStart) {
			movedInWindow += m.Quantity
		}
	}

	daysIdle := NeverMovedDaysIdle
	if hasMovements {
		daysIdle = int(math.Floor(now.Sub(lastMovement).Hours() / 24))
	}

	turnover := float64(movedInWindow) / float64(cfg.AnalysisPeriodMonths)

	classification := ClassificationNormal
	if daysIdle >= cfg.DeadStockDays || turnover == 0 {
		classification = ClassificationDead
	} else if daysIdle >= cfg.SlowMovingDays {
		classification = ClassificationSlow
	} else if daysIdle <= cfg.FastMovingDays && turnover >= fastTurnoverFloor {
		classification = ClassificationFast
	}

	return Result{
		PartID:           partID,
		CurrentStock:     inQty - outQty,
		DaysIdle:         daysIdle,
		TurnoverPerMonth: turnover,
		Classification:   classification,
	}
}
