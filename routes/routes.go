package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"maison-decor/config"
	"maison-decor/controllers"
	"maison-decor/middleware"
	"maison-decor/models"
	"maison-decor/repositories"
	"maison-decor/services"
)

func SetupRoutes(router *gin.Engine) {
	cartRepo := repositories.NewCartRepository(models.RedisClient)
	cartSvc := services.NewCartService(cartRepo)
	enquirySvc := services.NewEnquiryService()

	cartCtrl := controllers.NewCartController(cartSvc)
	contactCtrl := controllers.NewContactController(enquirySvc)
	enquiryCtrl := controllers.NewEnquiryController(enquirySvc)
	productCtrl := controllers.NewProductController(repositories.NewProductRepository())
	authCtrl := controllers.NewAuthController(repositories.NewUserRepository())

	window := 60 * time.Second
	max := 3
	if config.AppConfig != nil {
		window = config.AppConfig.RateLimitWindow
		max = config.AppConfig.RateLimitMax
	}
	limiter := middleware.NewRateLimiter(window, max)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := router.Group("/api")
	{
		api.GET("/categories", productCtrl.GetAllCategories)
		api.GET("/products", productCtrl.GetAllProducts)
		api.GET("/products/:id", productCtrl.GetProductByID)

		api.GET("/cart", cartCtrl.GetCart)
		api.POST("/cart", cartCtrl.AddItem)
		api.DELETE("/cart", cartCtrl.ClearCart)
		api.PATCH("/cart/:id", cartCtrl.UpdateQuantity)
		api.DELETE("/cart/:id", cartCtrl.RemoveItem)

		api.GET("/wishlist", cartCtrl.GetWishlist)
		api.POST("/wishlist", cartCtrl.AddWishlistItem)
		api.DELETE("/wishlist", cartCtrl.ClearWishlist)
		api.DELETE("/wishlist/:id", cartCtrl.RemoveWishlistItem)

		api.POST("/contact", middleware.RateLimitMiddleware(limiter), contactCtrl.SubmitContact)
		api.POST("/enquiry", middleware.RateLimitMiddleware(limiter), enquiryCtrl.SubmitEnquiry)

		api.POST("/admin/login", authCtrl.Login)

		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
		{
			admin.GET("/profile", authCtrl.GetProfile)
			admin.POST("/products", productCtrl.CreateProduct)
			admin.PATCH("/products/:id", productCtrl.UpdateProduct)
			admin.DELETE("/products/:id", productCtrl.DeleteProduct)
		}
	}
}
