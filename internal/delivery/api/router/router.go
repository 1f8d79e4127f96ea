// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shop/config"
	"shop/internal/delivery/api/middleware"
	"shop/internal/delivery/api/router/handler"
	"shop/internal/domain/entity"
	"shop/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	CatalogHandler *handler.CatalogHandler
	ProductHandler *handler.ProductHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Metrics `optional:"true"`
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	catalogHandler *handler.CatalogHandler
	productHandler *handler.ProductHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Metrics
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		catalogHandler: params.CatalogHandler,
		productHandler: params.ProductHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.metrics != nil && r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	authenticate := r.authMiddleware.Authenticate
	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)
	catalogManagers := r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleMerchant)

	userGroup := e.Group("/user", authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.GET("", r.userHandler.ListUsers, adminOnly)
		userGroup.PATCH("/:id", r.userHandler.UpdateUser)
		userGroup.DELETE("/:id", r.userHandler.DeleteUser, adminOnly)
	}

	roleGroup := e.Group("/role")
	{
		roleGroup.GET("", r.catalogHandler.ListRoles)
		roleGroup.POST("/assign", r.userHandler.AssignRole, authenticate, adminOnly)
	}

	e.GET("/category", r.catalogHandler.ListCategories)

	productGroup := e.Group("/product")
	{
		// Static segments are matched before /:id.
		productGroup.GET("/search", r.productHandler.SearchProducts, authenticate, catalogManagers)
		productGroup.POST("/create", r.productHandler.CreateProduct, authenticate, catalogManagers)

		productGroup.GET("/:id", r.productHandler.GetProduct)
		productGroup.GET("/:id/qrcode", r.productHandler.GetProductLabel)
		productGroup.POST("/:id/details", r.productHandler.AddProductDetails, authenticate, catalogManagers)
		productGroup.POST("/:id/activate", r.productHandler.ActivateProduct,
			authenticate, catalogManagers,
			middleware.NewRateLimiter(r.config.RateLimit.ActivateRequests, r.config.RateLimit.ActivateWindow))
		productGroup.DELETE("/:id", r.productHandler.DeleteProduct, authenticate, catalogManagers)
	}
}
