// Package reports arma el tablero de inventario y el informe periódico de
// movimientos, con exportación XML.
package reports

import (
	"context"
	"time"

	"github.com/tu-usuario/repuestos-erp/internal/application/dto"
	"github.com/tu-usuario/repuestos-erp/internal/domain"
	"github.com/tu-usuario/repuestos-erp/internal/domain/repository"
)

// XMLExporter puerto de salida para serializar el informe de movimientos.
type XMLExporter interface {
	StockMovementReportXML(report *dto.StockMovementReportDTO) ([]byte, error)
}

// ReportUseCase consultas de solo lectura para tableros e informes.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
	exporter   XMLExporter
}

func NewReportUseCase(reportRepo repository.ReportRepository, exporter XMLExporter) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo, exporter: exporter}
}

// Dashboard agregados del día: catálogo activo, unidades y valor en stock,
// movimientos de hoy y repuestos bajo punto de reorden.
func (uc *ReportUseCase) Dashboard(ctx context.Context, companyID string, now time.Time) (*dto.DashboardResponse, error) {
	totals, err := uc.reportRepo.DashboardTotals(ctx, companyID, now)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		ActiveParts:    totals.ActiveParts,
		StockUnits:     totals.StockUnits,
		StockValue:     totals.StockValue,
		MovementsToday: totals.MovementsToday,
		InUnitsToday:   totals.InUnitsToday,
		OutUnitsToday:  totals.OutUnitsToday,
		LowStockParts:  totals.LowStockParts,
	}, nil
}

// StockMovementReport informe de apertura/entradas/salidas/cierre por repuesto
// en el período [from, to].
func (uc *ReportUseCase) StockMovementReport(ctx context.Context, companyID string, from, to time.Time) (*dto.StockMovementReportDTO, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}
	rows, err := uc.reportRepo.StockMovementReport(ctx, companyID, from, to)
	if err != nil {
		return nil, err
	}
	report := &dto.StockMovementReportDTO{From: from, To: to}
	for _, r := range rows {
		report.Rows = append(report.Rows, dto.StockMovementReportRowDTO{
			PartID:         r.PartID,
			PartNo:         r.PartNo,
			Description:    r.Description,
			OpeningBalance: r.OpeningBalance,
			PeriodIn:       r.PeriodIn,
			PeriodOut:      r.PeriodOut,
			ClosingBalance: r.ClosingBalance,
		})
	}
	return report, nil
}

// StockMovementReportXML el mismo informe serializado como XML descargable.
func (uc *ReportUseCase) StockMovementReportXML(ctx context.Context, companyID string, from, to time.Time) ([]byte, error) {
	report, err := uc.StockMovementReport(ctx, companyID, from, to)
	if err != nil {
		return nil, err
	}
	return uc.exporter.StockMovementReportXML(report)
}
