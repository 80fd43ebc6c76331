package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Loanox/urunsatisportali-20241129067/carts"
	"github.com/Loanox/urunsatisportali-20241129067/models"
	"github.com/Loanox/urunsatisportali-20241129067/service"
)

// CheckoutHandler turns the visitor's cart into a sale. Checkout is
// cash-on-delivery style: no payment gateway, the sale commits
// immediately.
type CheckoutHandler struct {
	Carts   *carts.Store
	Service service.SaleService
}

type PlaceOrderInput struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Address   string `json:"address" binding:"required,max=200"`
	City      string `json:"city" binding:"omitempty,max=50"`
	Country   string `json:"country" binding:"omitempty,max=50"`
}

func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var in PlaceOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized", "error": err.Error()})
		return
	}

	token := cartToken(c)
	cart, err := h.Carts.Get(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load cart", "error": err.Error()})
		return
	}
	if len(cart.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Your cart is empty"})
		return
	}

	productIDs := make([]uint, 0, len(cart.Items))
	quantities := make([]int, 0, len(cart.Items))
	for _, it := range cart.Items {
		productIDs = append(productIDs, it.ProductID)
		quantities = append(quantities, it.Quantity)
	}

	draft := models.Sale{
		UserID: &uid,
		Notes: fmt.Sprintf("Name: %s %s, Address: %s, %s/%s, Email: %s",
			in.FirstName, in.LastName, in.Address, in.City, in.Country, in.Email),
		// Storefront checkout applies no tax or discount.
		Tax:      0,
		Discount: 0,
	}

	sale, err := h.Service.CreateSale(c.Request.Context(), draft, productIDs, quantities)
	if err != nil {
		renderSaleError(c, err)
		return
	}

	// The sale is committed; a failed cart cleanup must not undo it.
	_ = h.Carts.Clear(c.Request.Context(), token)

	c.JSON(http.StatusCreated, gin.H{"message": "Order placed", "data": sale})
}

// OrderConfirmation returns the caller's own committed sale.
func (h *CheckoutHandler) OrderConfirmation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return
	}

	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized", "error": err.Error()})
		return
	}

	sale, err := h.Service.GetSale(c.Request.Context(), uint(id))
	if err != nil || sale.UserID == nil || *sale.UserID != uid {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order loaded", "data": sale})
}
