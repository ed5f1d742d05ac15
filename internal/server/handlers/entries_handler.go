package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/babetech/borastock/internal/domain/models"
	"github.com/babetech/borastock/internal/service/stats"
	"github.com/babetech/borastock/internal/service/stockview"
	"github.com/babetech/borastock/internal/store"
)

// EntriesHandler serves the entries screen: the derived receipt view,
// receipt CRUD, header statistics and the screen's query state.
type EntriesHandler struct {
	store   *store.Store
	queries *stockview.QueryState
	logger  *zap.Logger
}

// NewEntriesHandler constructs the HTTP handler adapter.
func NewEntriesHandler(st *store.Store, queries *stockview.QueryState, logger *zap.Logger) *EntriesHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EntriesHandler{store: st, queries: queries, logger: logger}
}

type stockEntryPayload struct {
	ProductName string     `json:"product_name" binding:"required"`
	Category    string     `json:"category" binding:"required"`
	Quantity    int        `json:"quantity" binding:"required,min=1"`
	UnitPrice   float64    `json:"unit_price" binding:"required,min=0"`
	Supplier    string     `json:"supplier" binding:"required"`
	BatchNumber string     `json:"batch_number"`
	ExpiryDate  *time.Time `json:"expiry_date"`
	Status      string     `json:"status" binding:"omitempty,oneof=PENDING VALIDATED RECEIVED CANCELLED"`
	Notes       string     `json:"notes"`
}

func (p stockEntryPayload) toModel() models.StockEntry {
	return models.StockEntry{
		ProductName: p.ProductName,
		Category:    p.Category,
		Quantity:    p.Quantity,
		UnitPrice:   p.UnitPrice,
		Supplier:    p.Supplier,
		BatchNumber: p.BatchNumber,
		ExpiryDate:  p.ExpiryDate,
		Status:      models.EntryStatus(p.Status),
		Notes:       p.Notes,
	}
}

func (h *EntriesHandler) query(c *gin.Context) stockview.EntryQuery {
	q := h.queries.Entries()
	params := c.Request.URL.Query()
	if params.Has("q") {
		q.Search = params.Get("q")
	}
	if params.Has("filter") {
		q.Filter = models.ParseEntryFilter(params.Get("filter"))
	}
	if params.Has("sort") {
		q.Sort = models.ParseEntrySort(params.Get("sort"))
	}
	return q
}

// List returns the filtered, sorted entry view.
func (h *EntriesHandler) List(c *gin.Context) {
	view := stockview.DeriveEntries(h.store.Entries(), h.query(c))
	c.JSON(http.StatusOK, gin.H{"entries": view, "total": len(view)})
}

// Get returns a single receipt by id.
func (h *EntriesHandler) Get(c *gin.Context) {
	entry, err := h.store.EntryByID(c.Param("id"))
	if err != nil {
		writeStoreError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Create adds a new receipt; id, entry date and total value are assigned
// server-side.
func (h *EntriesHandler) Create(c *gin.Context) {
	var payload stockEntryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry := h.store.AddEntry(payload.toModel())
	c.JSON(http.StatusCreated, entry)
}

// Update replaces the receipt carrying the path id. Status changes must
// follow the entry lifecycle.
func (h *EntriesHandler) Update(c *gin.Context) {
	var payload stockEntryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry := payload.toModel()
	entry.ID = c.Param("id")
	if current, err := h.store.EntryByID(entry.ID); err == nil {
		entry.EntryDate = current.EntryDate
		if entry.Status == "" {
			entry.Status = current.Status
		}
	}
	updated, err := h.store.UpdateEntry(entry)
	if err != nil {
		writeStoreError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes the receipt carrying the path id.
func (h *EntriesHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteEntry(c.Param("id")); err != nil {
		writeStoreError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Stats returns the entries screen header figures.
func (h *EntriesHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, stats.ComputeEntryStats(h.store.Entries()))
}

// SetQuery replaces the entries screen query state.
func (h *EntriesHandler) SetQuery(c *gin.Context) {
	var params queryParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.queries.SetEntries(stockview.EntryQuery{
		Search: params.Search,
		Filter: models.ParseEntryFilter(params.Filter),
		Sort:   models.ParseEntrySort(params.Sort),
	})
	c.Status(http.StatusNoContent)
}
