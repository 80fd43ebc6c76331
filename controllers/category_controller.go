package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Loanox/urunsatisportali-20241129067/config"
	"github.com/Loanox/urunsatisportali-20241129067/models"
	"github.com/Loanox/urunsatisportali-20241129067/utils"
)

type CategoryInput struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

func CreateCategory(c *gin.Context) {
	var in CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	var exist models.Category
	if err := config.DB.Where("name = ? AND record_status = ?", in.Name, models.RecordActive).First(&exist).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Category name already in use"})
		return
	}

	category := models.Category{
		Name:        in.Name,
		Description: in.Description,
		Record:      models.RecordActive,
	}
	if err := config.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create category", "error": err.Error()})
		return
	}
	utils.Created(c, "Category created", category)
}

func GetAllCategories(c *gin.Context) {
	var categories []models.Category
	if err := config.DB.Where("record_status = ?", models.RecordActive).Order("name ASC").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load categories", "error": err.Error()})
		return
	}
	utils.Success(c, "Categories loaded", categories)
}

func GetCategoryByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return
	}

	var category models.Category
	if err := config.DB.Where("record_status = ?", models.RecordActive).First(&category, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
		return
	}
	utils.Success(c, "Category loaded", category)
}

func UpdateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return
	}

	var category models.Category
	if err := config.DB.Where("record_status = ?", models.RecordActive).First(&category, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
		return
	}

	var in CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	if in.Name != category.Name {
		var exist models.Category
		if err := config.DB.Where("name = ? AND record_status = ?", in.Name, models.RecordActive).First(&exist).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Category name already in use"})
			return
		}
	}

	updates := models.Category{Name: in.Name, Description: in.Description}
	if err := config.DB.Model(&category).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update category", "error": err.Error()})
		return
	}
	utils.Success(c, "Category updated", category)
}

func DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return
	}

	var category models.Category
	if err := config.DB.Where("record_status = ?", models.RecordActive).First(&category, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
		return
	}

	if err := config.DB.Model(&category).Update("record_status", models.RecordDeleted).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not delete category", "error": err.Error()})
		return
	}
	utils.Success(c, "Category deleted", nil)
}
