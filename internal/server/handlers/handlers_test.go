package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/babetech/borastock/internal/domain/models"
	"github.com/babetech/borastock/internal/repository/mongodb"
	"github.com/babetech/borastock/internal/server/handlers"
	"github.com/babetech/borastock/internal/server/router"
	"github.com/babetech/borastock/internal/service/reporting"
	"github.com/babetech/borastock/internal/service/stockview"
	"github.com/babetech/borastock/internal/store"
)

// memoryRepo keeps settings and reports in memory behind the durable
// repository interface.
type memoryRepo struct {
	reports []models.DailyReport
	company models.CompanyInfo
	prefs   models.Preferences
}

var _ mongodb.Repository = (*memoryRepo)(nil)

func (r *memoryRepo) SaveDailyReport(_ context.Context, report models.DailyReport) error {
	r.reports = append([]models.DailyReport{report}, r.reports...)
	return nil
}

func (r *memoryRepo) LatestDailyReports(_ context.Context, limit int64) ([]models.DailyReport, error) {
	if int64(len(r.reports)) > limit {
		return r.reports[:limit], nil
	}
	return r.reports, nil
}

func (r *memoryRepo) CompanyInfo(context.Context) (models.CompanyInfo, error) {
	return r.company, nil
}

func (r *memoryRepo) SaveCompanyInfo(_ context.Context, info models.CompanyInfo) error {
	r.company = info
	return nil
}

func (r *memoryRepo) Preferences(context.Context) (models.Preferences, error) {
	return r.prefs, nil
}

func (r *memoryRepo) SavePreferences(_ context.Context, prefs models.Preferences) error {
	r.prefs = prefs
	return nil
}

func newTestRouter(t *testing.T, seed bool) (*gin.Engine, *store.Store) {
	t.Helper()

	st := store.New(nil)
	if seed {
		st.Seed()
	}
	queries := stockview.NewQueryState()
	repo := &memoryRepo{}
	reportSvc := reporting.NewService(st, repo, nil, nil)

	engine := router.New(router.Handlers{
		Stock:     handlers.NewStockHandler(st, queries, nil),
		Entries:   handlers.NewEntriesHandler(st, queries, nil),
		Exits:     handlers.NewExitsHandler(st, queries, nil),
		Suppliers: handlers.NewSuppliersHandler(st, queries, nil),
		Settings:  handlers.NewSettingsHandler(repo, nil),
		Reports:   handlers.NewReportsHandler(reportSvc, nil),
	}, nil)
	return engine, st
}

func doJSON(t *testing.T, engine *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	engine, _ := newTestRouter(t, false)
	w := doJSON(t, engine, http.MethodGet, "/healthz", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestCreateStockItem(t *testing.T) {
	engine, _ := newTestRouter(t, false)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/stock/items", `{
		"name": "Clavier mécanique",
		"category": "Accessoires",
		"current_stock": 5,
		"min_stock": 10,
		"max_stock": 100,
		"price": 89.99,
		"supplier": "TechDistrib"
	}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var item models.StockItem
	if err := json.Unmarshal(w.Body.Bytes(), &item); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if item.ID != "P001" {
		t.Errorf("ID = %q, want P001", item.ID)
	}
	if item.Status != models.StockLowStock {
		t.Errorf("Status = %q, want derived %q", item.Status, models.StockLowStock)
	}
}

func TestCreateStockItemRejectsMissingFields(t *testing.T) {
	engine, _ := newTestRouter(t, false)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/stock/items", `{"name": "Clavier"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetUnknownItemIs404(t *testing.T) {
	engine, _ := newTestRouter(t, true)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/stock/items/P999", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestUpdateEntryIllegalTransitionIs409(t *testing.T) {
	engine, st := newTestRouter(t, false)
	entry := st.AddEntry(models.StockEntry{
		ProductName: "iPhone 15 Pro",
		Category:    "Smartphones",
		Quantity:    50,
		UnitPrice:   1199.99,
		Supplier:    "Apple Inc.",
		Status:      models.EntryPending,
	})

	// PENDING cannot jump straight to RECEIVED.
	w := doJSON(t, engine, http.MethodPut, "/api/v1/entries/"+entry.ID, `{
		"product_name": "iPhone 15 Pro",
		"category": "Smartphones",
		"quantity": 50,
		"unit_price": 1199.99,
		"supplier": "Apple Inc.",
		"status": "RECEIVED"
	}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestListEntriesFilterByLabel(t *testing.T) {
	engine, _ := newTestRouter(t, true)

	target := "/api/v1/entries?filter=" + url.QueryEscape("Validées")
	w := doJSON(t, engine, http.MethodGet, target, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Entries []models.StockEntry `json:"entries"`
		Total   int                 `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Total != 1 || len(resp.Entries) != 1 || resp.Entries[0].ID != "E002" {
		t.Fatalf("entries = %+v, want only E002", resp.Entries)
	}
}

func TestQueryStatePersistsAcrossRequests(t *testing.T) {
	engine, _ := newTestRouter(t, true)

	w := doJSON(t, engine, http.MethodPut, "/api/v1/stock/query", `{"filter": "Rupture"}`)
	if w.Code != http.StatusNoContent {
		t.Fatalf("set query status = %d", w.Code)
	}

	// The stored filter applies without URL parameters; only the seeded
	// P003 is out of stock.
	w = doJSON(t, engine, http.MethodGet, "/api/v1/stock/items", "")
	var resp struct {
		Items []models.StockItem `json:"items"`
		Total int                `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Total != 1 || len(resp.Items) != 1 || resp.Items[0].ID != "P003" {
		t.Fatalf("items = %+v, want only P003 under stored filter", resp.Items)
	}

	// A URL parameter overrides the stored state for that request.
	w = doJSON(t, engine, http.MethodGet, "/api/v1/stock/items?filter=Toutes", "")
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Total != 4 {
		t.Fatalf("total = %d, want 4 with override", resp.Total)
	}
}

func TestReportsRunAndHistory(t *testing.T) {
	engine, _ := newTestRouter(t, true)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/reports/daily/run", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("run status = %d, body = %s", w.Code, w.Body.String())
	}

	w = doJSON(t, engine, http.MethodGet, "/api/v1/reports/daily", "")
	if w.Code != http.StatusOK {
		t.Fatalf("history status = %d", w.Code)
	}
	var resp struct {
		Reports []models.DailyReport `json:"reports"`
		Total   int                  `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Total != 1 || resp.Reports[0].TotalProducts != 4 {
		t.Fatalf("reports = %+v", resp.Reports)
	}
}

func TestReportsHistoryRejectsBadLimit(t *testing.T) {
	engine, _ := newTestRouter(t, false)

	for _, limit := range []string{"abc", "0", "-3"} {
		w := doJSON(t, engine, http.MethodGet, "/api/v1/reports/daily?limit="+limit, "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("limit %q: status = %d, want 400", limit, w.Code)
		}
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	engine, _ := newTestRouter(t, false)

	w := doJSON(t, engine, http.MethodPut, "/api/v1/settings/company", `{
		"company_name": "BoraStock SARL",
		"city": "Dakar",
		"country": "Sénégal",
		"currency": "XOF"
	}`)
	if w.Code != http.StatusOK {
		t.Fatalf("put status = %d, body = %s", w.Code, w.Body.String())
	}

	w = doJSON(t, engine, http.MethodGet, "/api/v1/settings/company", "")
	var info models.CompanyInfo
	if err := json.Unmarshal(w.Body.Bytes(), &info); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if info.CompanyName != "BoraStock SARL" || info.Currency != "XOF" {
		t.Fatalf("company info = %+v", info)
	}

	w = doJSON(t, engine, http.MethodPut, "/api/v1/settings/company", `{"city": "Dakar"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing name status = %d, want 400", w.Code)
	}
}

func TestDeleteExit(t *testing.T) {
	engine, _ := newTestRouter(t, true)

	w := doJSON(t, engine, http.MethodDelete, "/api/v1/exits/S001", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", w.Code)
	}
	w = doJSON(t, engine, http.MethodGet, "/api/v1/exits/S001", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d, want 404", w.Code)
	}
}
