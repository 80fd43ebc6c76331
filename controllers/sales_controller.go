package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Loanox/urunsatisportali-20241129067/models"
	"github.com/Loanox/urunsatisportali-20241129067/service"
)

// SalesHandler exposes the admin sale endpoints on top of the sale
// orchestrator.
type SalesHandler struct {
	Service service.SaleService
}

type CreateSaleInput struct {
	CustomerID *uint   `json:"customer_id"`
	Tax        float64 `json:"tax" binding:"gte=0,lte=100"`
	Discount   float64 `json:"discount" binding:"gte=0,lte=100"`
	Notes      string  `json:"notes" binding:"omitempty,max=500"`
	ProductIDs []uint  `json:"product_ids" binding:"required"`
	Quantities []int   `json:"quantities" binding:"required"`
}

func (h *SalesHandler) Create(c *gin.Context) {
	var in CreateSaleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized", "error": err.Error()})
		return
	}

	draft := models.Sale{
		CustomerID: in.CustomerID,
		UserID:     &uid,
		Tax:        in.Tax,
		Discount:   in.Discount,
		Notes:      in.Notes,
	}

	sale, err := h.Service.CreateSale(c.Request.Context(), draft, in.ProductIDs, in.Quantities)
	if err != nil {
		renderSaleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Sale completed", "data": sale})
}

func (h *SalesHandler) List(c *gin.Context) {
	sales, err := h.Service.ListSales(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load sales", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sales loaded", "data": sales})
}

func (h *SalesHandler) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return
	}

	sale, err := h.Service.GetSale(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Sale not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load sale", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sale loaded", "data": sale})
}

func (h *SalesHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return
	}

	if err := h.Service.DeleteSale(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Sale not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not delete sale", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sale deleted"})
}

// renderSaleError maps the orchestrator's failure kinds to HTTP
// responses. Infrastructure detail stays out of the client message.
func renderSaleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRequest),
		errors.Is(err, service.ErrEmptySale),
		errors.Is(err, service.ErrInsufficientStock):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, service.ErrProductUnavailable),
		errors.Is(err, service.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "The sale could not be completed", "error": err.Error()})
	}
}
