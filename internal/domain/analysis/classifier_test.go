package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/repuestos-erp/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// referencia fija para que los cálculos de días sean deterministas.
var testNow = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func movIn(qty int64, occurredAt time.Time) entity.StockMovement {
	return entity.StockMovement{Type: entity.MovementTypeIn, Quantity: qty, OccurredAt: occurredAt}
}

func movOut(qty int64, occurredAt time.Time) entity.StockMovement {
	return entity.StockMovement{Type: entity.MovementTypeOut, Quantity: qty, OccurredAt: occurredAt}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios de negocio (umbrales por defecto 30/90/180 días, período 6 meses)
// ──────────────────────────────────────────────────────────────────────────────

// Entrada reciente con volumen alto: rotación 50/6 ≈ 8.3 y 7 días quieto → Fast.
func TestClassify_EntradaRecienteAltoVolumen_EsFast(t *testing.T) {
	movs := []entity.StockMovement{movIn(50, date(2025, 5, 25))}

	r := Classify("part-a", movs, DefaultConfig(), testNow)

	assert.Equal(t, int64(50), r.CurrentStock)
	assert.Equal(t, 7, r.DaysIdle)
	require.InDelta(t, 50.0/6.0, r.TurnoverPerMonth, 1e-9)
	assert.Equal(t, ClassificationFast, r.Classification)
}

// Sin movimientos: stock 0, centinela de 365 días, rotación 0 → Dead.
func TestClassify_SinMovimientos_CentinelaDead(t *testing.T) {
	r := Classify("part-b", nil, DefaultConfig(), testNow)

	assert.Equal(t, int64(0), r.CurrentStock)
	assert.Equal(t, NeverMovedDaysIdle, r.DaysIdle)
	assert.Zero(t, r.TurnoverPerMonth)
	assert.Equal(t, ClassificationDead, r.Classification)
}

// 212 días quieto supera deadStockDays=180 → Dead sin importar la rotación.
func TestClassify_QuietoMasDeDeadStockDays_EsDead(t *testing.T) {
	movs := []entity.StockMovement{movIn(20, date(2024, 11, 1))}

	r := Classify("part-c", movs, DefaultConfig(), testNow)

	assert.Equal(t, 212, r.DaysIdle)
	assert.Equal(t, ClassificationDead, r.Classification)
}

// 92 días quieto (entre slow=90 y dead=180) con rotación baja pero no nula → Slow.
func TestClassify_QuietoEntreSlowYDead_EsSlow(t *testing.T) {
	movs := []entity.StockMovement{movIn(10, date(2025, 3, 1))}

	r := Classify("part-d", movs, DefaultConfig(), testNow)

	assert.Equal(t, 92, r.DaysIdle)
	require.InDelta(t, 10.0/6.0, r.TurnoverPerMonth, 1e-9)
	assert.Equal(t, ClassificationSlow, r.Classification)
}

// Movimiento reciente pero rotación 8/6 ≈ 1.3 < 5 → falla Fast y cae en Normal.
func TestClassify_RotacionBajoUmbralFast_EsNormal(t *testing.T) {
	movs := []entity.StockMovement{movIn(8, date(2025, 5, 20))}

	r := Classify("part-e", movs, DefaultConfig(), testNow)

	assert.Equal(t, 12, r.DaysIdle)
	require.InDelta(t, 8.0/6.0, r.TurnoverPerMonth, 1e-9)
	assert.Equal(t, ClassificationNormal, r.Classification)
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedades del cálculo
// ──────────────────────────────────────────────────────────────────────────────

// El stock actual es sum(in) - sum(out) y no se recorta: puede quedar negativo.
func TestClassify_StockEsSumaEntradasMenosSalidas_SinRecorte(t *testing.T) {
	movs := []entity.StockMovement{
		movIn(5, date(2025, 5, 1)),
		movOut(8, date(2025, 5, 10)),
	}

	r := Classify("p", movs, DefaultConfig(), testNow)

	assert.Equal(t, int64(-3), r.CurrentStock,
		"el clasificador no debe recortar stock negativo; eso es del caller")
}

// Rotación 0 fuerza Dead aunque DaysIdle sea mínimo y deadStockDays sea enorme.
// Caso real: un asiento de cantidad 0 registrado ayer.
func TestClassify_RotacionCeroFuerzaDead_AunqueDaysIdleSeaPequeno(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DeadStockDays = 500

	movs := []entity.StockMovement{movIn(0, testNow.AddDate(0, 0, -1))}

	r := Classify("p", movs, cfg, testNow)

	assert.Equal(t, 1, r.DaysIdle)
	assert.Zero(t, r.TurnoverPerMonth)
	assert.Equal(t, ClassificationDead, r.Classification,
		"turnover == 0 debe cortocircuitar a Dead antes de evaluar los días")
}

// Fast exige ambas condiciones: rotación altísima con DaysIdle > fastMovingDays
// cae en Normal, no en Fast.
func TestClassify_RotacionAltaPeroQuieto_EsNormal(t *testing.T) {
	// 600 unidades hace 40 días: rotación 100/mes, pero 40 > 30 días quieto.
	movs := []entity.StockMovement{movIn(600, testNow.AddDate(0, 0, -40))}

	r := Classify("p", movs, DefaultConfig(), testNow)

	assert.Equal(t, 40, r.DaysIdle)
	require.InDelta(t, 100.0, r.TurnoverPerMonth, 1e-9)
	assert.Equal(t, ClassificationNormal, r.Classification)
}

// Los movimientos fuera de la ventana de análisis no aportan a la rotación,
// aunque sí al stock y a la fecha del último movimiento.
func TestClassify_MovimientosFueraDeVentana_NoSumanRotacion(t *testing.T) {
	movs := []entity.StockMovement{
		movIn(100, testNow.AddDate(0, -8, 0)), // fuera de la ventana de 6 meses
		movIn(6, testNow.AddDate(0, 0, -3)),
	}

	r := Classify("p", movs, DefaultConfig(), testNow)

	assert.Equal(t, int64(106), r.CurrentStock, "el stock cuenta todo el libro")
	assert.Equal(t, 3, r.DaysIdle)
	require.InDelta(t, 1.0, r.TurnoverPerMonth, 1e-9, "solo las 6 unidades en ventana")
	assert.Equal(t, ClassificationNormal, r.Classification)
}

// Si el único movimiento quedó fuera de la ventana, la rotación es 0 → Dead,
// incluso con deadStockDays configurado muy por encima de los días quietos.
func TestClassify_UnicoMovimientoFueraDeVentana_EsDead(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AnalysisPeriodMonths = 3
	cfg.DeadStockDays = 500

	movs := []entity.StockMovement{movIn(50, testNow.AddDate(0, -4, 0))}

	r := Classify("p", movs, cfg, testNow)

	assert.Zero(t, r.TurnoverPerMonth)
	assert.Equal(t, ClassificationDead, r.Classification)
}

// DaysIdle es el piso de la diferencia en días (7.5 días → 7).
func TestClassify_DaysIdleUsaPiso(t *testing.T) {
	movs := []entity.StockMovement{movIn(50, testNow.Add(-180 * time.Hour))} // 7 días 12 h

	r := Classify("p", movs, DefaultConfig(), testNow)

	assert.Equal(t, 7, r.DaysIdle)
}

// La rotación cuenta unidades movidas en ambos sentidos, no el neto.
func TestClassify_RotacionCuentaEntradasYSalidas(t *testing.T) {
	movs := []entity.StockMovement{
		movIn(20, testNow.AddDate(0, 0, -10)),
		movOut(16, testNow.AddDate(0, 0, -5)),
	}

	r := Classify("p", movs, DefaultConfig(), testNow)

	assert.Equal(t, int64(4), r.CurrentStock)
	require.InDelta(t, 36.0/6.0, r.TurnoverPerMonth, 1e-9,
		"36 unidades movidas en ventana, no el neto de 4")
	assert.Equal(t, ClassificationFast, r.Classification)
}

// Función pura: dos llamadas con la misma entrada devuelven lo mismo.
func TestClassify_EsIdempotente(t *testing.T) {
	movs := []entity.StockMovement{
		movIn(50, date(2025, 5, 25)),
		movOut(10, date(2025, 5, 28)),
	}
	cfg := DefaultConfig()

	first := Classify("p", movs, cfg, testNow)
	second := Classify("p", movs, cfg, testNow)

	assert.Equal(t, first, second)
}
