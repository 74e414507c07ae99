// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"floradesk/internal/delivery/http/middleware"
	"floradesk/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware the router needs,
// injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	ProductHandler  *handler.ProductHandler
	ServiceHandler  *handler.ServiceHandler
	OrderHandler    *handler.OrderHandler
	ReportHandler   *handler.ReportHandler
	ActivityHandler *handler.ActivityHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.AuthHandler.Register)
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/logout", r.params.AuthHandler.Logout, auth.Authenticate)
	}

	// Back-office routes. Fine-grained ownership rules live in the policy
	// layer; the group only requires a valid token.
	adminGroup := e.Group("/admin", auth.Authenticate)
	{
		userGroup := adminGroup.Group("/users")
		userGroup.GET("", r.params.UserHandler.List)
		userGroup.POST("", r.params.UserHandler.Create)
		userGroup.GET("/:id", r.params.UserHandler.Get)
		userGroup.PUT("/:id", r.params.UserHandler.Update)
		userGroup.DELETE("/:id", r.params.UserHandler.Delete)

		productGroup := adminGroup.Group("/products")
		productGroup.GET("", r.params.ProductHandler.List)
		productGroup.POST("", r.params.ProductHandler.Create)
		productGroup.GET("/:id", r.params.ProductHandler.Get)
		productGroup.PUT("/:id", r.params.ProductHandler.Update)
		productGroup.DELETE("/:id", r.params.ProductHandler.Delete)

		serviceGroup := adminGroup.Group("/services")
		serviceGroup.GET("", r.params.ServiceHandler.List)
		serviceGroup.POST("", r.params.ServiceHandler.Create)
		serviceGroup.GET("/:id", r.params.ServiceHandler.Get)
		serviceGroup.PUT("/:id", r.params.ServiceHandler.Update)
		serviceGroup.DELETE("/:id", r.params.ServiceHandler.Delete)

		orderGroup := adminGroup.Group("/orders")
		orderGroup.GET("", r.params.OrderHandler.List)
		orderGroup.POST("", r.params.OrderHandler.Create)
		orderGroup.GET("/:id", r.params.OrderHandler.Get)
		orderGroup.PUT("/:id", r.params.OrderHandler.Update)
		orderGroup.DELETE("/:id", r.params.OrderHandler.Delete)

		reportGroup := adminGroup.Group("/reports", auth.RequireStaff)
		reportGroup.GET("", r.params.ReportHandler.Dashboard)
		reportGroup.GET("/generate", r.params.ReportHandler.Generate)
		reportGroup.GET("/export", r.params.ReportHandler.Export)

		adminGroup.GET("/activity", r.params.ActivityHandler.List, auth.RequireAdmin)
	}
}
