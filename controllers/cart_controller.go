package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Loanox/urunsatisportali-20241129067/carts"
	"github.com/Loanox/urunsatisportali-20241129067/config"
	"github.com/Loanox/urunsatisportali-20241129067/models"
	"github.com/Loanox/urunsatisportali-20241129067/utils"
)

const cartCookie = "cart_token"

// CartHandler manages the visitor's redis-backed cart. Stock checks
// here are advisory; the sale transaction re-checks under a row lock.
type CartHandler struct {
	Carts *carts.Store
}

// cartToken reads the visitor's cart cookie, minting one on first use.
func cartToken(c *gin.Context) string {
	if token, err := c.Cookie(cartCookie); err == nil && token != "" {
		return token
	}
	token := uuid.NewString()
	c.SetCookie(cartCookie, token, int(carts.TTLCart.Seconds()), "/", "", false, true)
	return token
}

func (h *CartHandler) Get(c *gin.Context) {
	cart, err := h.Carts.Get(c.Request.Context(), cartToken(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load cart", "error": err.Error()})
		return
	}
	utils.Success(c, "Cart loaded", gin.H{
		"items":       cart.Items,
		"count":       cart.Count(),
		"total_cents": cart.TotalCents(),
	})
}

type AddToCartInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"omitempty,gt=0"`
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var in AddToCartInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}

	var product models.Product
	if err := config.DB.Preload("Images").
		Where("record_status = ? AND is_active = true", models.RecordActive).
		First(&product, in.ProductID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	token := cartToken(c)
	cart, err := h.Carts.Get(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load cart", "error": err.Error()})
		return
	}

	inCart := 0
	if existing := cart.Find(product.ID); existing != nil {
		inCart = existing.Quantity
	}
	if inCart+in.Quantity > product.StockQuantity {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": fmt.Sprintf("Not enough stock for %s (available: %d)", product.Name, product.StockQuantity),
		})
		return
	}

	imageURL := ""
	if len(product.Images) > 0 {
		imageURL = utils.CloudinaryThumb256(product.Images[0].ImageURL)
	}
	cart.Add(carts.Item{
		ProductID:      product.ID,
		Name:           product.Name,
		UnitPriceCents: product.PriceCents,
		Quantity:       in.Quantity,
		ImageURL:       imageURL,
	})

	if err := h.Carts.Save(c.Request.Context(), token, cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not save cart", "error": err.Error()})
		return
	}
	utils.Success(c, "Added to cart", gin.H{"count": cart.Count(), "total_cents": cart.TotalCents()})
}

type UpdateCartItemInput struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id"})
		return
	}

	var in UpdateCartItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	token := cartToken(c)
	cart, err := h.Carts.Get(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load cart", "error": err.Error()})
		return
	}

	cart.SetQuantity(uint(productID), in.Quantity)
	if err := h.Carts.Save(c.Request.Context(), token, cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not save cart", "error": err.Error()})
		return
	}
	utils.Success(c, "Cart updated", gin.H{"count": cart.Count(), "total_cents": cart.TotalCents()})
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product id"})
		return
	}

	token := cartToken(c)
	cart, err := h.Carts.Get(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load cart", "error": err.Error()})
		return
	}

	cart.Remove(uint(productID))
	if err := h.Carts.Save(c.Request.Context(), token, cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not save cart", "error": err.Error()})
		return
	}
	utils.Success(c, "Removed from cart", gin.H{"count": cart.Count(), "total_cents": cart.TotalCents()})
}

// Count backs the cart badge in the header.
func (h *CartHandler) Count(c *gin.Context) {
	cart, err := h.Carts.Get(c.Request.Context(), cartToken(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load cart", "error": err.Error()})
		return
	}
	utils.Success(c, "Cart count", gin.H{"count": cart.Count()})
}
