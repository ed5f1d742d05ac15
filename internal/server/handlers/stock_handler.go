package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/babetech/borastock/internal/domain/models"
	"github.com/babetech/borastock/internal/service/stats"
	"github.com/babetech/borastock/internal/service/stockview"
	"github.com/babetech/borastock/internal/store"
)

// StockHandler serves the stock items screen: the derived item view,
// item CRUD, header statistics and the screen's query state.
type StockHandler struct {
	store   *store.Store
	queries *stockview.QueryState
	logger  *zap.Logger
}

// NewStockHandler constructs the HTTP handler adapter.
func NewStockHandler(st *store.Store, queries *stockview.QueryState, logger *zap.Logger) *StockHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StockHandler{store: st, queries: queries, logger: logger}
}

type stockItemPayload struct {
	Name         string  `json:"name" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	CurrentStock *int    `json:"current_stock" binding:"required,min=0"`
	MinStock     *int    `json:"min_stock" binding:"required,min=0"`
	MaxStock     *int    `json:"max_stock" binding:"required,min=0"`
	Price        float64 `json:"price" binding:"required,min=0"`
	Supplier     string  `json:"supplier" binding:"required"`
}

func (p stockItemPayload) toModel() models.StockItem {
	return models.StockItem{
		Name:         p.Name,
		Category:     p.Category,
		CurrentStock: *p.CurrentStock,
		MinStock:     *p.MinStock,
		MaxStock:     *p.MaxStock,
		Price:        p.Price,
		Supplier:     p.Supplier,
	}
}

// query resolves the effective query: the stored screen state, with any
// present URL parameters taking precedence.
func (h *StockHandler) query(c *gin.Context) stockview.ItemQuery {
	q := h.queries.Items()
	params := c.Request.URL.Query()
	if params.Has("q") {
		q.Search = params.Get("q")
	}
	if params.Has("filter") {
		q.Filter = models.ParseItemFilter(params.Get("filter"))
	}
	if params.Has("sort") {
		q.Sort = models.ParseItemSort(params.Get("sort"))
	}
	return q
}

// List returns the filtered, sorted item view.
func (h *StockHandler) List(c *gin.Context) {
	view := stockview.DeriveItems(h.store.Items(), h.query(c))
	c.JSON(http.StatusOK, gin.H{"items": view, "total": len(view)})
}

// Get returns a single item by id.
func (h *StockHandler) Get(c *gin.Context) {
	item, err := h.store.ItemByID(c.Param("id"))
	if err != nil {
		writeStoreError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create adds a new item; id, status and timestamp are assigned server-side.
func (h *StockHandler) Create(c *gin.Context) {
	var payload stockItemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item := h.store.AddItem(payload.toModel())
	c.JSON(http.StatusCreated, item)
}

// Update replaces the item carrying the path id.
func (h *StockHandler) Update(c *gin.Context) {
	var payload stockItemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item := payload.toModel()
	item.ID = c.Param("id")
	updated, err := h.store.UpdateItem(item)
	if err != nil {
		writeStoreError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes the item carrying the path id.
func (h *StockHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteItem(c.Param("id")); err != nil {
		writeStoreError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Stats returns the stock screen header figures.
func (h *StockHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, stats.ComputeStockStats(h.store.Items()))
}

// SetQuery replaces the stock screen query state.
func (h *StockHandler) SetQuery(c *gin.Context) {
	var params queryParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.queries.SetItems(stockview.ItemQuery{
		Search: params.Search,
		Filter: models.ParseItemFilter(params.Filter),
		Sort:   models.ParseItemSort(params.Sort),
	})
	c.Status(http.StatusNoContent)
}
