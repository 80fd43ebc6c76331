package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Loanox/urunsatisportali-20241129067/controllers"
	"github.com/Loanox/urunsatisportali-20241129067/middlewares"
	"github.com/Loanox/urunsatisportali-20241129067/models"
)

// Handlers bundles the stateful controllers built in main.
type Handlers struct {
	Sales     *controllers.SalesHandler
	Cart      *controllers.CartHandler
	Checkout  *controllers.CheckoutHandler
	Dashboard *controllers.DashboardHandler
}

func SetupRoutes(r *gin.Engine, h Handlers) {

	api := r.Group("/api")
	{
		// ================= AUTH =================
		auth := api.Group("/auth")
		{
			auth.POST("/register", controllers.Register)
			auth.POST("/login", controllers.Login)
			auth.GET("/profile", middlewares.RequireAuth(), controllers.Profile)
		}

		// ================= STOREFRONT =================
		shop := api.Group("/shop")
		{
			shop.GET("/products", controllers.ShopListProducts)
			shop.GET("/products/:id", controllers.ShopProductDetail)
			shop.GET("/categories", controllers.GetAllCategories)
		}

		cart := api.Group("/cart")
		{
			cart.GET("/", h.Cart.Get)
			cart.GET("/count", h.Cart.Count)
			cart.POST("/items", h.Cart.AddItem)
			cart.PUT("/items/:productId", h.Cart.UpdateItem)
			cart.DELETE("/items/:productId", h.Cart.RemoveItem)
		}

		checkout := api.Group("/checkout", middlewares.RequireAuth())
		{
			checkout.POST("/", h.Checkout.PlaceOrder)
			checkout.GET("/orders/:id", h.Checkout.OrderConfirmation)
		}

		// ================= ADMIN =================
		admin := api.Group("/admin",
			middlewares.RequireAuth(),
			middlewares.RequireRole(models.RoleAdmin, models.RoleOwner),
		)
		{
			category := admin.Group("/categories")
			{
				category.GET("/", controllers.GetAllCategories)
				category.GET("/:id", controllers.GetCategoryByID)
				category.POST("/", controllers.CreateCategory)
				category.PUT("/:id", controllers.UpdateCategory)
				category.DELETE("/:id", controllers.DeleteCategory)
			}

			product := admin.Group("/products")
			{
				product.GET("/", controllers.GetAllProducts)
				product.GET("/:id", controllers.GetProductByID)
				product.POST("/", controllers.CreateProduct)
				product.PUT("/:id", controllers.UpdateProduct)
				product.DELETE("/:id", controllers.DeleteProduct)
			}

			customer := admin.Group("/customers")
			{
				customer.GET("/", controllers.GetAllCustomers)
				customer.GET("/:id", controllers.GetCustomerByID)
				customer.POST("/", controllers.CreateCustomer)
				customer.PUT("/:id", controllers.UpdateCustomer)
				customer.DELETE("/:id", controllers.DeleteCustomer)
			}

			sales := admin.Group("/sales")
			{
				sales.GET("/", h.Sales.List)
				sales.GET("/:id", h.Sales.Detail)
				sales.POST("/", h.Sales.Create)
				sales.DELETE("/:id", h.Sales.Delete)
			}

			dashboard := admin.Group("/dashboard")
			{
				dashboard.GET("/", h.Dashboard.Summary)
				dashboard.GET("/stream", h.Dashboard.Stream)
			}

			reports := admin.Group("/reports")
			{
				reports.GET("/sales-by-day", h.Dashboard.SalesByDay)
				reports.GET("/top-products", h.Dashboard.TopProducts)
				reports.GET("/low-stock", h.Dashboard.LowStock)
			}
		}

		// ================= OWNER =================
		owner := api.Group("/owner",
			middlewares.RequireAuth(),
			middlewares.RequireRole(models.RoleOwner),
		)
		{
			owner.POST("/admins", controllers.CreateAdmin)
			owner.GET("/users", controllers.ListUsers)
			owner.PUT("/users/:id/active", controllers.SetUserActive)
		}
	}
}
