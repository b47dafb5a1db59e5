package reports

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/repuestos-erp/internal/application/dto"
	"github.com/tu-usuario/repuestos-erp/internal/domain"
	"github.com/tu-usuario/repuestos-erp/internal/domain/repository"
)

type fakeReportRepo struct {
	totals *repository.DashboardTotals
	rows   []repository.StockMovementReportRow
}

func (r *fakeReportRepo) DashboardTotals(ctx context.Context, companyID string, now time.Time) (*repository.DashboardTotals, error) {
	return r.totals, nil
}

func (r *fakeReportRepo) StockMovementReport(ctx context.Context, companyID string, from, to time.Time) ([]repository.StockMovementReportRow, error) {
	return r.rows, nil
}

type fakeExporter struct {
	got *dto.StockMovementReportDTO
}

func (e *fakeExporter) StockMovementReportXML(report *dto.StockMovementReportDTO) ([]byte, error) {
	e.got = report
	return []byte("<StockMovementReport/>"), nil
}

func TestDashboard_MapeaTotales(t *testing.T) {
	repo := &fakeReportRepo{totals: &repository.DashboardTotals{
		ActiveParts:    42,
		StockUnits:     310,
		StockValue:     decimal.NewFromInt(1250000),
		MovementsToday: 7,
		InUnitsToday:   20,
		OutUnitsToday:  13,
		LowStockParts:  5,
	}}
	uc := NewReportUseCase(repo, &fakeExporter{})

	out, err := uc.Dashboard(context.Background(), "co-1", time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(42), out.ActiveParts)
	assert.Equal(t, int64(310), out.StockUnits)
	assert.True(t, decimal.NewFromInt(1250000).Equal(out.StockValue))
	assert.Equal(t, int64(7), out.MovementsToday)
	assert.Equal(t, int64(5), out.LowStockParts)
}

func TestStockMovementReport_PeriodoInvertido(t *testing.T) {
	uc := NewReportUseCase(&fakeReportRepo{}, &fakeExporter{})

	from := time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	_, err := uc.StockMovementReport(context.Background(), "co-1", from, to)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStockMovementReportXML_DelegaEnExportador(t *testing.T) {
	repo := &fakeReportRepo{rows: []repository.StockMovementReportRow{
		{PartID: "part-1", PartNo: "FA-001", OpeningBalance: 10, PeriodIn: 5, PeriodOut: 2, ClosingBalance: 13},
	}}
	exporter := &fakeExporter{}
	uc := NewReportUseCase(repo, exporter)

	from := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)
	out, err := uc.StockMovementReportXML(context.Background(), "co-1", from, to)
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	require.NotNil(t, exporter.got)
	require.Len(t, exporter.got.Rows, 1)
	assert.Equal(t, "FA-001", exporter.got.Rows[0].PartNo)
	assert.True(t, from.Equal(exporter.got.From))
}
