package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Loanox/urunsatisportali-20241129067/config"
	"github.com/Loanox/urunsatisportali-20241129067/models"
	"github.com/Loanox/urunsatisportali-20241129067/utils"
)

type CustomerInput struct {
	Name       string `json:"name" binding:"required,max=100"`
	Email      string `json:"email" binding:"omitempty,email,max=100"`
	Phone      string `json:"phone" binding:"omitempty,max=20"`
	Address    string `json:"address" binding:"omitempty,max=200"`
	City       string `json:"city" binding:"omitempty,max=50"`
	PostalCode string `json:"postal_code" binding:"omitempty,max=20"`
	Country    string `json:"country" binding:"omitempty,max=50"`
}

func (in CustomerInput) toModel() models.Customer {
	return models.Customer{
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Address:    in.Address,
		City:       in.City,
		PostalCode: in.PostalCode,
		Country:    in.Country,
	}
}

func CreateCustomer(c *gin.Context) {
	var in CustomerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	customer := in.toModel()
	customer.Record = models.RecordActive
	if err := config.DB.Create(&customer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create customer", "error": err.Error()})
		return
	}
	utils.Created(c, "Customer created", customer)
}

func GetAllCustomers(c *gin.Context) {
	q := config.DB.Where("record_status = ?", models.RecordActive)
	if search := c.Query("q"); search != "" {
		like := "%" + search + "%"
		q = q.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", like, like, like)
	}

	var customers []models.Customer
	if err := q.Order("name ASC").Find(&customers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load customers", "error": err.Error()})
		return
	}
	utils.Success(c, "Customers loaded", customers)
}

func GetCustomerByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return
	}

	var customer models.Customer
	if err := config.DB.Where("record_status = ?", models.RecordActive).First(&customer, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
		return
	}
	utils.Success(c, "Customer loaded", customer)
}

func UpdateCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return
	}

	var customer models.Customer
	if err := config.DB.Where("record_status = ?", models.RecordActive).First(&customer, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
		return
	}

	var in CustomerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	if err := config.DB.Model(&customer).Updates(in.toModel()).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update customer", "error": err.Error()})
		return
	}
	utils.Success(c, "Customer updated", customer)
}

func DeleteCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return
	}

	var customer models.Customer
	if err := config.DB.Where("record_status = ?", models.RecordActive).First(&customer, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
		return
	}

	if err := config.DB.Model(&customer).Update("record_status", models.RecordDeleted).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not delete customer", "error": err.Error()})
		return
	}
	utils.Success(c, "Customer deleted", nil)
}
