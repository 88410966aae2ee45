package api

import (
	"net/http"

	analyticsHandler "marketplace-server/internal/analytics/handler"
	authHandler "marketplace-server/internal/auth/handler"
	productsHandler "marketplace-server/internal/products/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router           *gin.RouterGroup
	authHandler      authHandler.Handler
	analyticsHandler analyticsHandler.Handler
	productsHandler  productsHandler.Handler
}

func New(router *gin.RouterGroup, authHandler authHandler.Handler,
	analyticsHandler analyticsHandler.Handler, productsHandler productsHandler.Handler) API {
	return API{
		router:           router,
		authHandler:      authHandler,
		analyticsHandler: analyticsHandler,
		productsHandler:  productsHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")

	// Click ingestion is called from the public product pages and needs
	// no vendor token.
	apiGroup.POST("/analysis/track-click", a.analyticsHandler.HandleTrackClick)

	analysisGroup := apiGroup.Group("/analysis", a.authHandler.HandleJWTMiddleware)
	{
		analysisGroup.POST("/get-data-for-date", a.analyticsHandler.HandleGetDataForDate)
		analysisGroup.POST("/get-data-for-week", a.analyticsHandler.HandleGetDataForWeek)
		analysisGroup.POST("/get-data-for-month", a.analyticsHandler.HandleGetDataForMonth)
		analysisGroup.POST("/top-products", a.analyticsHandler.HandleTopProducts)
	}

	productsGroup := apiGroup.Group("/products", a.authHandler.HandleJWTMiddleware)
	{
		productsGroup.POST("", a.productsHandler.HandleCreateProduct)
		productsGroup.GET("", a.productsHandler.HandleListProducts)
		productsGroup.GET("/:product_id", a.productsHandler.HandleGetProduct)
		productsGroup.PUT("/:product_id", a.productsHandler.HandleUpdateProduct)
		productsGroup.DELETE("/:product_id", a.productsHandler.HandleDeleteProduct)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
