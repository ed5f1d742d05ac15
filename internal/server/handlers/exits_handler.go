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

// ExitsHandler serves the exits screen: the derived shipment view,
// shipment CRUD, header statistics and the screen's query state.
type ExitsHandler struct {
	store   *store.Store
	queries *stockview.QueryState
	logger  *zap.Logger
}

// NewExitsHandler constructs the HTTP handler adapter.
func NewExitsHandler(st *store.Store, queries *stockview.QueryState, logger *zap.Logger) *ExitsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExitsHandler{store: st, queries: queries, logger: logger}
}

type stockExitPayload struct {
	ProductName     string  `json:"product_name" binding:"required"`
	Category        string  `json:"category" binding:"required"`
	Quantity        int     `json:"quantity" binding:"required,min=1"`
	UnitPrice       float64 `json:"unit_price" binding:"required,min=0"`
	Customer        string  `json:"customer" binding:"required"`
	OrderNumber     string  `json:"order_number"`
	DeliveryAddress string  `json:"delivery_address"`
	Status          string  `json:"status" binding:"omitempty,oneof=PENDING PREPARED SHIPPED DELIVERED CANCELLED"`
	Urgency         string  `json:"urgency" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	Notes           string  `json:"notes"`
}

func (p stockExitPayload) toModel() models.StockExit {
	return models.StockExit{
		ProductName:     p.ProductName,
		Category:        p.Category,
		Quantity:        p.Quantity,
		UnitPrice:       p.UnitPrice,
		Customer:        p.Customer,
		OrderNumber:     p.OrderNumber,
		DeliveryAddress: p.DeliveryAddress,
		Status:          models.ExitStatus(p.Status),
		Urgency:         models.ExitUrgency(p.Urgency),
		Notes:           p.Notes,
	}
}

func (h *ExitsHandler) query(c *gin.Context) stockview.ExitQuery {
	q := h.queries.Exits()
	params := c.Request.URL.Query()
	if params.Has("q") {
		q.Search = params.Get("q")
	}
	if params.Has("filter") {
		q.Filter = models.ParseExitFilter(params.Get("filter"))
	}
	if params.Has("sort") {
		q.Sort = models.ParseExitSort(params.Get("sort"))
	}
	return q
}

// List returns the filtered, sorted exit view.
func (h *ExitsHandler) List(c *gin.Context) {
	view := stockview.DeriveExits(h.store.Exits(), h.query(c))
	c.JSON(http.StatusOK, gin.H{"exits": view, "total": len(view)})
}

// Get returns a single shipment by id.
func (h *ExitsHandler) Get(c *gin.Context) {
	exit, err := h.store.ExitByID(c.Param("id"))
	if err != nil {
		writeStoreError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, exit)
}

// Create adds a new shipment; id, exit date and total value are assigned
// server-side.
func (h *ExitsHandler) Create(c *gin.Context) {
	var payload stockExitPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	exit := h.store.AddExit(payload.toModel())
	c.JSON(http.StatusCreated, exit)
}

// Update replaces the shipment carrying the path id. Status changes must
// follow the exit lifecycle.
func (h *ExitsHandler) Update(c *gin.Context) {
	var payload stockExitPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	exit := payload.toModel()
	exit.ID = c.Param("id")
	if current, err := h.store.ExitByID(exit.ID); err == nil {
		exit.ExitDate = current.ExitDate
		if exit.Status == "" {
			exit.Status = current.Status
		}
		if exit.Urgency == "" {
			exit.Urgency = current.Urgency
		}
	}
	updated, err := h.store.UpdateExit(exit)
	if err != nil {
		writeStoreError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes the shipment carrying the path id.
func (h *ExitsHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteExit(c.Param("id")); err != nil {
		writeStoreError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Stats returns the exits screen header figures.
func (h *ExitsHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, stats.ComputeExitStats(h.store.Exits()))
}

// SetQuery replaces the exits screen query state.
func (h *ExitsHandler) SetQuery(c *gin.Context) {
	var params queryParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.queries.SetExits(stockview.ExitQuery{
		Search: params.Search,
		Filter: models.ParseExitFilter(params.Filter),
		Sort:   models.ParseExitSort(params.Sort),
	})
	c.Status(http.StatusNoContent)
}
