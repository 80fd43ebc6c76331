package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Loanox/urunsatisportali-20241129067/carts"
	"github.com/Loanox/urunsatisportali-20241129067/config"
	"github.com/Loanox/urunsatisportali-20241129067/controllers"
	"github.com/Loanox/urunsatisportali-20241129067/models"
	"github.com/Loanox/urunsatisportali-20241129067/notify"
	"github.com/Loanox/urunsatisportali-20241129067/repositories"
	"github.com/Loanox/urunsatisportali-20241129067/routes"
	"github.com/Loanox/urunsatisportali-20241129067/service"
	"github.com/Loanox/urunsatisportali-20241129067/utils"
)

func main() {
	_ = godotenv.Load()

	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.Customer{},
		&models.Sale{},
		&models.SaleItem{},
	)

	config.SeedOwner()

	if s := os.Getenv("JWT_SECRET"); s != "" {
		utils.SecretKey = []byte(s)
	}

	rdb := config.ConnectRedis()
	defer rdb.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := notify.NewHub()
	go hub.Run(ctx, rdb)

	saleService := service.NewSaleService(
		repositories.Products{},
		repositories.Customers{},
		repositories.Sales{},
		repositories.TxManager{DB: config.DB},
		notify.NewPublisher(rdb),
	)
	reportService := service.NewReportService(config.DB)
	cartStore := carts.NewStore(rdb)

	r := gin.Default()
	routes.SetupRoutes(r, routes.Handlers{
		Sales:     &controllers.SalesHandler{Service: saleService},
		Cart:      &controllers.CartHandler{Carts: cartStore},
		Checkout:  &controllers.CheckoutHandler{Carts: cartStore, Service: saleService},
		Dashboard: &controllers.DashboardHandler{Reports: reportService, Hub: hub},
	})

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Product sales portal is running"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	_ = r.Run(":" + port)
}
