package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Loanox/urunsatisportali-20241129067/config"
	"github.com/Loanox/urunsatisportali-20241129067/models"
	"github.com/Loanox/urunsatisportali-20241129067/utils"
)

const maxProductImages = 4

type ProductInput struct {
	Name          string   `json:"name" binding:"required,max=200"`
	Description   string   `json:"description" binding:"omitempty,max=1000"`
	SKU           string   `json:"sku" binding:"omitempty,max=50"`
	Brand         string   `json:"brand" binding:"omitempty,max=100"`
	Unit          string   `json:"unit" binding:"omitempty,max=50"`
	PriceCents    int64    `json:"price_cents" binding:"required,gt=0"`
	StockQuantity int      `json:"stock_quantity" binding:"gte=0"`
	IsActive      *bool    `json:"is_active"`
	CategoryID    uint     `json:"category_id" binding:"required"`
	Images        []string `json:"images" binding:"omitempty,max=4,dive,url"`
}

func CreateProduct(c *gin.Context) {
	var in ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	var cnt int64
	if err := config.DB.Model(&models.Category{}).
		Where("id = ? AND record_status = ?", in.CategoryID, models.RecordActive).
		Count(&cnt).Error; err != nil || cnt == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Category not found"})
		return
	}

	images := make([]models.ProductImage, 0, len(in.Images))
	for _, u := range in.Images {
		images = append(images, models.ProductImage{ImageURL: u})
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	product := models.Product{
		Name:          in.Name,
		Description:   in.Description,
		SKU:           in.SKU,
		Brand:         in.Brand,
		Unit:          in.Unit,
		PriceCents:    in.PriceCents,
		StockQuantity: in.StockQuantity,
		IsActive:      active,
		CategoryID:    in.CategoryID,
		Images:        images,
		Record:        models.RecordActive,
	}
	if err := config.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create product", "error": err.Error()})
		return
	}

	config.DB.Preload("Category").Preload("Images").First(&product, product.ID)
	utils.Created(c, "Product created", product)
}

func GetAllProducts(c *gin.Context) {
	q := config.DB.Preload("Category").Preload("Images").
		Where("record_status = ?", models.RecordActive)

	if search := c.Query("q"); search != "" {
		like := "%" + search + "%"
		q = q.Where("name ILIKE ? OR sku ILIKE ? OR brand ILIKE ?", like, like, like)
	}
	if categoryID := c.Query("category_id"); categoryID != "" {
		q = q.Where("category_id = ?", categoryID)
	}

	var products []models.Product
	if err := q.Order("id DESC").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load products", "error": err.Error()})
		return
	}
	utils.Success(c, "Products loaded", products)
}

func GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return
	}

	var product models.Product
	if err := config.DB.Preload("Category").Preload("Images").
		Where("record_status = ?", models.RecordActive).
		First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	utils.Success(c, "Product loaded", product)
}

func UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return
	}

	var product models.Product
	if err := config.DB.Preload("Images").
		Where("record_status = ?", models.RecordActive).
		First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	var in ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}
	if len(in.Images) > maxProductImages {
		c.JSON(http.StatusBadRequest, gin.H{"message": "A product can have at most 4 images"})
		return
	}

	var cnt int64
	if err := config.DB.Model(&models.Category{}).
		Where("id = ? AND record_status = ?", in.CategoryID, models.RecordActive).
		Count(&cnt).Error; err != nil || cnt == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Category not found"})
		return
	}

	active := product.IsActive
	if in.IsActive != nil {
		active = *in.IsActive
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"name":           in.Name,
			"description":    in.Description,
			"sku":            in.SKU,
			"brand":          in.Brand,
			"unit":           in.Unit,
			"price_cents":    in.PriceCents,
			"stock_quantity": in.StockQuantity,
			"is_active":      active,
			"category_id":    in.CategoryID,
		}
		if err := tx.Model(&product).Updates(updates).Error; err != nil {
			return err
		}

		// Image list is replaced wholesale.
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		for _, u := range in.Images {
			if err := tx.Create(&models.ProductImage{ProductID: product.ID, ImageURL: u}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update product", "error": err.Error()})
		return
	}

	config.DB.Preload("Category").Preload("Images").First(&product, product.ID)
	utils.Success(c, "Product updated", product)
}

func DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return
	}

	var product models.Product
	if err := config.DB.Where("record_status = ?", models.RecordActive).First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	if err := config.DB.Model(&product).Update("record_status", models.RecordDeleted).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not delete product", "error": err.Error()})
		return
	}
	utils.Success(c, "Product deleted", nil)
}

// ===== Public storefront =====

type ShopProduct struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Brand         string `json:"brand"`
	Unit          string `json:"unit"`
	PriceCents    int64  `json:"price_cents"`
	StockQuantity int    `json:"stock_quantity"`
	CategoryID    uint   `json:"category_id"`
	CategoryName  string `json:"category_name"`
	ThumbnailURL  string `json:"thumbnail_url"`
}

func ShopListProducts(c *gin.Context) {
	q := config.DB.Preload("Category").Preload("Images").
		Where("record_status = ? AND is_active = true", models.RecordActive)

	if search := c.Query("q"); search != "" {
		like := "%" + search + "%"
		q = q.Where("name ILIKE ? OR description ILIKE ? OR brand ILIKE ?", like, like, like)
	}
	if categoryID := c.Query("category_id"); categoryID != "" {
		q = q.Where("category_id = ?", categoryID)
	}

	var products []models.Product
	if err := q.Order("name ASC").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load products", "error": err.Error()})
		return
	}

	out := make([]ShopProduct, 0, len(products))
	for _, p := range products {
		sp := ShopProduct{
			ID:            p.ID,
			Name:          p.Name,
			Description:   p.Description,
			Brand:         p.Brand,
			Unit:          p.Unit,
			PriceCents:    p.PriceCents,
			StockQuantity: p.StockQuantity,
			CategoryID:    p.CategoryID,
		}
		if p.Category != nil {
			sp.CategoryName = p.Category.Name
		}
		if len(p.Images) > 0 {
			sp.ThumbnailURL = utils.CloudinaryThumb256(p.Images[0].ImageURL)
		}
		out = append(out, sp)
	}
	utils.Success(c, "Products loaded", out)
}

func ShopProductDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return
	}

	var product models.Product
	if err := config.DB.Preload("Category").Preload("Images").
		Where("record_status = ? AND is_active = true", models.RecordActive).
		First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	utils.Success(c, "Product loaded", product)
}
