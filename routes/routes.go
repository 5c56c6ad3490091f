package routes

import (
	"net/http"

	"shopcart-backend/config"
	"shopcart-backend/handlers"
	"shopcart-backend/middleware"
	"shopcart-backend/models"
	"shopcart-backend/services"
	"shopcart-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, source services.CatalogSource, logger *zap.Logger) *middleware.RateLimiter {
	utils.UseJSONFieldNames()

	catalog := services.NewCatalogLoader(db, source, cfg.Catalog, logger)
	ledger := services.NewCartLedger(db, logger)

	productHandler := &handlers.ProductHandler{Catalog: catalog}
	cartHandler := &handlers.CartHandler{Ledger: ledger}
	checkoutHandler := &handlers.CheckoutHandler{Ledger: ledger}

	limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)

	api := r.Group("/api")
	api.Use(middleware.CallerIdentity(db, models.User{
		ID:    cfg.DefaultUser.ID,
		Name:  cfg.DefaultUser.Name,
		Email: cfg.DefaultUser.Email,
	}))
	{
		api.GET("/products", productHandler.GetProducts)
		api.GET("/cart", cartHandler.GetCart)
	}

	// Mutations are rate limited per caller
	mutating := api.Group("")
	mutating.Use(limiter.Middleware())
	{
		mutating.POST("/cart", cartHandler.AddToCart)
		mutating.PATCH("/cart/:id", cartHandler.UpdateCartItem)
		mutating.DELETE("/cart/:id", cartHandler.RemoveFromCart)
		mutating.POST("/checkout", checkoutHandler.Checkout)
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return limiter
}
