package reporting

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/babetech/borastock/internal/domain/models"
	"github.com/babetech/borastock/internal/store"
)

type fakeRepo struct {
	saved   []models.DailyReport
	saveErr error
	history []models.DailyReport
}

func (r *fakeRepo) SaveDailyReport(_ context.Context, report models.DailyReport) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, report)
	return nil
}

func (r *fakeRepo) LatestDailyReports(_ context.Context, limit int64) ([]models.DailyReport, error) {
	if int64(len(r.history)) > limit {
		return r.history[:limit], nil
	}
	return r.history, nil
}

func (r *fakeRepo) CompanyInfo(context.Context) (models.CompanyInfo, error) {
	return models.CompanyInfo{}, nil
}

func (r *fakeRepo) SaveCompanyInfo(context.Context, models.CompanyInfo) error { return nil }

func (r *fakeRepo) Preferences(context.Context) (models.Preferences, error) {
	return models.Preferences{}, nil
}

func (r *fakeRepo) SavePreferences(context.Context, models.Preferences) error { return nil }

type fakeExporter struct {
	appended []models.DailyReport
	err      error
}

func (e *fakeExporter) AppendReport(_ context.Context, report models.DailyReport) error {
	if e.err != nil {
		return e.err
	}
	e.appended = append(e.appended, report)
	return nil
}

func seededStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New(nil)
	st.Seed()
	return st
}

func TestBuildReportAggregates(t *testing.T) {
	st := seededStore(t)
	svc := NewService(st, &fakeRepo{}, nil, nil)

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	report := svc.BuildReport(date)

	if !report.Date.Equal(date) {
		t.Errorf("Date = %v, want %v", report.Date, date)
	}
	if report.TotalProducts != 4 {
		t.Errorf("TotalProducts = %d, want 4", report.TotalProducts)
	}
	if report.EntriesCount != 2 {
		t.Errorf("EntriesCount = %d, want 2", report.EntriesCount)
	}
	if report.ExitsCount != 2 {
		t.Errorf("ExitsCount = %d, want 2", report.ExitsCount)
	}
	if report.ActiveSuppliers == 0 {
		t.Error("ActiveSuppliers = 0, want > 0")
	}
	if report.SupplierRating <= 0 {
		t.Errorf("SupplierRating = %v, want > 0", report.SupplierRating)
	}

	var wantStockValue float64
	for _, item := range st.Items() {
		wantStockValue += item.TotalValue()
	}
	if report.StockValue != wantStockValue {
		t.Errorf("StockValue = %v, want %v", report.StockValue, wantStockValue)
	}
}

func TestRunDailyReportPersistsAndExports(t *testing.T) {
	repo := &fakeRepo{}
	exporter := &fakeExporter{}
	svc := NewService(seededStore(t), repo, exporter, nil)

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	report, err := svc.RunDailyReport(context.Background(), date)
	if err != nil {
		t.Fatalf("RunDailyReport: %v", err)
	}

	if len(repo.saved) != 1 || !repo.saved[0].Date.Equal(date) {
		t.Errorf("saved reports = %+v, want one for %v", repo.saved, date)
	}
	if len(exporter.appended) != 1 {
		t.Errorf("exported reports = %d, want 1", len(exporter.appended))
	}
	if report.TotalProducts != 4 {
		t.Errorf("TotalProducts = %d, want 4", report.TotalProducts)
	}
}

func TestRunDailyReportPersistFailure(t *testing.T) {
	wantErr := errors.New("mongo down")
	svc := NewService(seededStore(t), &fakeRepo{saveErr: wantErr}, nil, nil)

	_, err := svc.RunDailyReport(context.Background(), time.Now())
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want wrapped %v", err, wantErr)
	}
}

func TestRunDailyReportExportFailureIsNonFatal(t *testing.T) {
	repo := &fakeRepo{}
	exporter := &fakeExporter{err: errors.New("sheets unavailable")}
	svc := NewService(seededStore(t), repo, exporter, nil)

	_, err := svc.RunDailyReport(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("RunDailyReport: %v", err)
	}
	if len(repo.saved) != 1 {
		t.Errorf("saved reports = %d, want 1", len(repo.saved))
	}
}

func TestHistoryHonorsLimit(t *testing.T) {
	repo := &fakeRepo{history: []models.DailyReport{
		{TotalProducts: 3},
		{TotalProducts: 2},
		{TotalProducts: 1},
	}}
	svc := NewService(store.New(nil), repo, nil, nil)

	reports, err := svc.History(context.Background(), 2)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("len = %d, want 2", len(reports))
	}
}

func TestFormatSummary(t *testing.T) {
	svc := NewService(store.New(nil), &fakeRepo{}, nil, nil)
	report := models.DailyReport{
		Date:            time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		TotalProducts:   4,
		LowStock:        1,
		OutOfStock:      1,
		StockValue:      12500.50,
		ActiveSuppliers: 5,
		SupplierRating:  4.3,
	}

	summary := svc.FormatSummary(report)
	for _, want := range []string{"Rapport du 2024-06-01", "faibles: 1", "ruptures: 1", "12500.50 EUR", "note moyenne 4.3"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
}
