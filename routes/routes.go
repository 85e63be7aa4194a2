package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"udoo-web/controllers"
	"udoo-web/models"
	"udoo-web/templates"
)

// Setup mengonfigurasi dan mengembalikan Gin engine.
func Setup(ctrl *controllers.Controller, env string) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.SetHTMLTemplate(templates.Parse())

	// Rute publik
	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusSeeOther, "/home") })
	r.GET("/login", ctrl.ShowLogin)
	r.POST("/login", ctrl.Login)
	r.GET("/register", ctrl.ShowRegister)
	r.POST("/register", ctrl.Register)
	r.GET("/logout", ctrl.Logout)

	// Rute yang membutuhkan sesi valid
	site := r.Group("/", ctrl.RequireSession)
	{
		site.GET("/home", ctrl.Home)
		site.GET("/products/:id", ctrl.ProductDetail)
		site.GET("/profile", ctrl.Profile)
		site.GET("/dashboard", ctrl.Dashboard)

		// Keranjang dan checkout khusus viewer
		viewer := site.Group("/", ctrl.RequireRole("Viewer", models.RoleViewer))
		{
			viewer.GET("/cart", ctrl.ShowCart)
			viewer.POST("/cart", ctrl.AddToCart)
			viewer.POST("/cart/:id/delete", ctrl.RemoveCartItem)
			viewer.GET("/checkout", ctrl.ShowCheckout)
			viewer.POST("/checkout", ctrl.Checkout)
		}

		// Kelola produk untuk admin dan seller
		manage := site.Group("/dashboard/products", ctrl.RequireRole("Admin atau Seller", models.RoleAdmin, models.RoleSeller))
		{
			manage.GET("", ctrl.ManageProducts)
			manage.GET("/new", ctrl.NewProduct)
			manage.POST("", ctrl.CreateProduct)
			manage.GET("/:id/edit", ctrl.EditProduct)
			manage.POST("/:id", ctrl.UpdateProduct)
			manage.POST("/:id/delete", ctrl.DeleteProduct)
		}

		// Pesanan masuk khusus seller
		seller := site.Group("/dashboard/orders", ctrl.RequireRole("Seller", models.RoleSeller))
		{
			seller.GET("", ctrl.SellerOrders)
			seller.POST("/:id/complete", ctrl.CompleteOrder)
		}

		// Kelola pengguna dan laporan khusus admin
		admin := site.Group("/dashboard", ctrl.RequireRole("Admin", models.RoleAdmin))
		{
			admin.GET("/users", ctrl.ManageUsers)
			admin.POST("/users/:id/role", ctrl.UpdateUserRole)
			admin.POST("/users/:id/delete", ctrl.DeleteUser)
			admin.GET("/reports", ctrl.Reports)
		}
	}

	// Permukaan JSON kecil untuk badge dan grafik
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	config.AllowMethods = []string{"GET", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	config.AllowCredentials = true

	api := r.Group("/api", cors.New(config))
	{
		api.GET("/health", ctrl.HealthCheck)
		api.GET("/cart/count", ctrl.RequireSessionJSON, ctrl.CartCount)
		api.GET("/reports/top-products", ctrl.RequireSessionJSON, ctrl.RequireRole("Admin", models.RoleAdmin), ctrl.TopProducts)
	}

	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "error.html", gin.H{
			"Title":   "Tidak Ditemukan",
			"Heading": "404",
			"Message": "Halaman tidak ditemukan.",
		})
	})
	return r
}
