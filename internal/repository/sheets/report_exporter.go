package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/babetech/borastock/internal/config"
	"github.com/babetech/borastock/internal/domain/models"
)

const reportRange = "Reports!A:L"

// Exporter appends daily report rows to a shared spreadsheet so the
// back office can chart them without touching the service.
type Exporter interface {
	AppendReport(ctx context.Context, report models.DailyReport) error
}

// GoogleSheetExporter implements Exporter using the official Google Sheets API.
type GoogleSheetExporter struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetExporter builds a Google Sheets backed exporter instance.
func NewGoogleSheetExporter(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (Exporter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetExporter{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// AppendReport appends one report as a spreadsheet row.
func (e *GoogleSheetExporter) AppendReport(ctx context.Context, report models.DailyReport) error {
	row := []interface{}{
		report.Date.Format("2006-01-02"),
		report.TotalProducts,
		report.LowStock,
		report.OutOfStock,
		report.StockValue,
		report.EntriesCount,
		report.EntriesValue,
		report.ExitsCount,
		report.ExitsValue,
		report.UrgentExits,
		report.ActiveSuppliers,
		report.SupplierRating,
	}
	payload := &sheetsapi.ValueRange{Values: [][]interface{}{row}}

	call := e.service.Spreadsheets.Values.Append(e.spreadsheetID, reportRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append report row into range %s: %w", reportRange, err)
	}

	e.logger.Debug("report row appended to sheet", zap.String("range", reportRange))
	return nil
}
