package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Loanox/urunsatisportali-20241129067/config"
	"github.com/Loanox/urunsatisportali-20241129067/models"
	"github.com/Loanox/urunsatisportali-20241129067/utils"
)

// Owner-only staff management.

type CreateAdminInput struct {
	Username string `json:"username" binding:"required,min=3,max=120"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required,max=180"`
	Email    string `json:"email" binding:"omitempty,email"`
}

func CreateAdmin(c *gin.Context) {
	var in CreateAdminInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	var exist models.User
	if err := config.DB.Where("username = ?", in.Username).First(&exist).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username already taken"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create admin", "error": err.Error()})
		return
	}

	admin := models.User{
		Username:     in.Username,
		FullName:     in.FullName,
		Email:        in.Email,
		AvatarURL:    utils.DefaultAvatar(in.FullName),
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create admin", "error": err.Error()})
		return
	}
	utils.Created(c, "Admin created", admin)
}

func ListUsers(c *gin.Context) {
	var users []models.User
	q := config.DB.Order("id ASC")
	if role := c.Query("role"); role != "" {
		q = q.Where("role = ?", role)
	}
	if err := q.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not load users", "error": err.Error()})
		return
	}
	utils.Success(c, "Users loaded", users)
}

type SetUserActiveInput struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

func SetUserActive(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return
	}

	var in SetUserActiveInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	if user.Role == models.RoleOwner {
		c.JSON(http.StatusBadRequest, gin.H{"message": "The owner account cannot be deactivated"})
		return
	}

	if err := config.DB.Model(&user).Update("is_active", *in.IsActive).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not update user", "error": err.Error()})
		return
	}
	utils.Success(c, "User updated", user)
}
