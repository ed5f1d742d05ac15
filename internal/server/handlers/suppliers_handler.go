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

// SuppliersHandler serves the suppliers screen: the derived supplier
// view, supplier CRUD, header statistics and the screen's query state.
type SuppliersHandler struct {
	store   *store.Store
	queries *stockview.QueryState
	logger  *zap.Logger
}

// NewSuppliersHandler constructs the HTTP handler adapter.
func NewSuppliersHandler(st *store.Store, queries *stockview.QueryState, logger *zap.Logger) *SuppliersHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SuppliersHandler{store: st, queries: queries, logger: logger}
}

type supplierPayload struct {
	Name          string     `json:"name" binding:"required"`
	Category      string     `json:"category" binding:"required"`
	ContactPerson string     `json:"contact_person"`
	Email         string     `json:"email" binding:"omitempty,email"`
	Phone         string     `json:"phone"`
	Address       string     `json:"address"`
	City          string     `json:"city"`
	Country       string     `json:"country"`
	ProductsCount int        `json:"products_count" binding:"min=0"`
	TotalOrders   int        `json:"total_orders" binding:"min=0"`
	TotalValue    float64    `json:"total_value" binding:"min=0"`
	Rating        float64    `json:"rating" binding:"min=0,max=5"`
	Status        string     `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE PENDING BLOCKED"`
	Reliability   string     `json:"reliability" binding:"omitempty,oneof=EXCELLENT GOOD AVERAGE POOR"`
	LastOrderDate *time.Time `json:"last_order_date"`
	PaymentTerms  string     `json:"payment_terms"`
	Notes         string     `json:"notes"`
}

func (p supplierPayload) toModel() models.Supplier {
	supplier := models.Supplier{
		Name:          p.Name,
		Category:      p.Category,
		ContactPerson: p.ContactPerson,
		Email:         p.Email,
		Phone:         p.Phone,
		Address:       p.Address,
		City:          p.City,
		Country:       p.Country,
		ProductsCount: p.ProductsCount,
		TotalOrders:   p.TotalOrders,
		TotalValue:    p.TotalValue,
		Rating:        p.Rating,
		Status:        models.SupplierStatus(p.Status),
		Reliability:   models.SupplierReliability(p.Reliability),
		PaymentTerms:  p.PaymentTerms,
		Notes:         p.Notes,
	}
	if p.LastOrderDate != nil {
		supplier.LastOrderDate = *p.LastOrderDate
	}
	return supplier
}

func (h *SuppliersHandler) query(c *gin.Context) stockview.SupplierQuery {
	q := h.queries.Suppliers()
	params := c.Request.URL.Query()
	if params.Has("q") {
		q.Search = params.Get("q")
	}
	if params.Has("filter") {
		q.Filter = models.ParseSupplierFilter(params.Get("filter"))
	}
	if params.Has("sort") {
		q.Sort = models.ParseSupplierSort(params.Get("sort"))
	}
	return q
}

// List returns the filtered, sorted supplier view.
func (h *SuppliersHandler) List(c *gin.Context) {
	view := stockview.DeriveSuppliers(h.store.Suppliers(), h.query(c))
	c.JSON(http.StatusOK, gin.H{"suppliers": view, "total": len(view)})
}

// Get returns a single supplier by id.
func (h *SuppliersHandler) Get(c *gin.Context) {
	supplier, err := h.store.SupplierByID(c.Param("id"))
	if err != nil {
		writeStoreError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, supplier)
}

// Create adds a new supplier; the id is assigned server-side.
func (h *SuppliersHandler) Create(c *gin.Context) {
	var payload supplierPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	supplier := h.store.AddSupplier(payload.toModel())
	c.JSON(http.StatusCreated, supplier)
}

// Update replaces the supplier carrying the path id.
func (h *SuppliersHandler) Update(c *gin.Context) {
	var payload supplierPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	supplier := payload.toModel()
	supplier.ID = c.Param("id")
	if current, err := h.store.SupplierByID(supplier.ID); err == nil {
		if supplier.Status == "" {
			supplier.Status = current.Status
		}
		if supplier.Reliability == "" {
			supplier.Reliability = current.Reliability
		}
		if supplier.LastOrderDate.IsZero() {
			supplier.LastOrderDate = current.LastOrderDate
		}
	}
	updated, err := h.store.UpdateSupplier(supplier)
	if err != nil {
		writeStoreError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes the supplier carrying the path id.
func (h *SuppliersHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteSupplier(c.Param("id")); err != nil {
		writeStoreError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Stats returns the suppliers screen header figures.
func (h *SuppliersHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, stats.ComputeSupplierStats(h.store.Suppliers()))
}

// SetQuery replaces the suppliers screen query state.
func (h *SuppliersHandler) SetQuery(c *gin.Context) {
	var params queryParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.queries.SetSuppliers(stockview.SupplierQuery{
		Search: params.Search,
		Filter: models.ParseSupplierFilter(params.Filter),
		Sort:   models.ParseSupplierSort(params.Sort),
	})
	c.Status(http.StatusNoContent)
}
