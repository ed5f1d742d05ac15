package reporting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/babetech/borastock/internal/domain/models"
	"github.com/babetech/borastock/internal/repository/mongodb"
	"github.com/babetech/borastock/internal/repository/sheets"
	"github.com/babetech/borastock/internal/service/stats"
	"github.com/babetech/borastock/internal/store"
)

// Service assembles the daily warehouse report from the store, persists
// it and optionally exports it to the shared spreadsheet.
type Service struct {
	store    *store.Store
	repo     mongodb.Repository
	exporter sheets.Exporter
	logger   *zap.Logger
}

// NewService wires a new reporting service instance. The exporter may be
// nil when the sheets export is not configured.
func NewService(st *store.Store, repo mongodb.Repository, exporter sheets.Exporter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: st, repo: repo, exporter: exporter, logger: logger}
}

// BuildReport computes the aggregates for the given date from the
// current collections. Pure with respect to the store snapshots.
func (s *Service) BuildReport(date time.Time) models.DailyReport {
	stockStats := stats.ComputeStockStats(s.store.Items())
	entryStats := stats.ComputeEntryStats(s.store.Entries())
	exitStats := stats.ComputeExitStats(s.store.Exits())
	supplierStats := stats.ComputeSupplierStats(s.store.Suppliers())

	return models.DailyReport{
		Date:            date,
		TotalProducts:   stockStats.TotalProducts,
		LowStock:        stockStats.LowStock,
		OutOfStock:      stockStats.OutOfStock,
		StockValue:      stockStats.TotalValue,
		EntriesCount:    entryStats.TotalEntries,
		EntriesValue:    entryStats.TotalValue,
		ExitsCount:      exitStats.TotalExits,
		ExitsValue:      exitStats.TotalValue,
		UrgentExits:     exitStats.Urgent,
		ActiveSuppliers: supplierStats.Active,
		SupplierRating:  supplierStats.AverageRating,
		CreatedAt:       time.Now(),
	}
}

// RunDailyReport builds, persists and exports the report for the date.
func (s *Service) RunDailyReport(ctx context.Context, date time.Time) (models.DailyReport, error) {
	report := s.BuildReport(date)

	if err := s.repo.SaveDailyReport(ctx, report); err != nil {
		return models.DailyReport{}, fmt.Errorf("persist daily report: %w", err)
	}

	if s.exporter != nil {
		if err := s.exporter.AppendReport(ctx, report); err != nil {
			// The report is already persisted; a failed export should not fail the run.
			s.logger.Warn("sheet export failed", zap.Error(err))
		}
	}

	s.logger.Info("daily report generated",
		zap.Time("date", report.Date),
		zap.Int("products", report.TotalProducts),
		zap.Float64("stock_value", report.StockValue))
	return report, nil
}

// History returns up to limit stored reports, most recent first.
func (s *Service) History(ctx context.Context, limit int64) ([]models.DailyReport, error) {
	reports, err := s.repo.LatestDailyReports(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("load report history: %w", err)
	}
	return reports, nil
}

// FormatSummary renders the report as the human summary sent to alert
// channels.
func (s *Service) FormatSummary(report models.DailyReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Rapport du %s\n", report.Date.Format("2006-01-02"))
	fmt.Fprintf(&b, "Produits: %d (faibles: %d, ruptures: %d)\n", report.TotalProducts, report.LowStock, report.OutOfStock)
	fmt.Fprintf(&b, "Valeur du stock: %.2f EUR\n", report.StockValue)
	fmt.Fprintf(&b, "Entrées: %d pour %.2f EUR\n", report.EntriesCount, report.EntriesValue)
	fmt.Fprintf(&b, "Sorties: %d pour %.2f EUR (urgentes: %d)\n", report.ExitsCount, report.ExitsValue, report.UrgentExits)
	fmt.Fprintf(&b, "Fournisseurs actifs: %d, note moyenne %.1f", report.ActiveSuppliers, report.SupplierRating)
	return b.String()
}
