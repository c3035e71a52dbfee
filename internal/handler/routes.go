package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/iosrepair/board-repair-manager/internal/catalog"
	"github.com/iosrepair/board-repair-manager/internal/middleware"
	"github.com/iosrepair/board-repair-manager/internal/session"
	"github.com/iosrepair/board-repair-manager/pkg/jwtutil"
)

// Dependencies holds what the portal routes need.
type Dependencies struct {
	Sessions *session.Manager
	JWT      *jwtutil.JWTUtil
	Catalog  *catalog.Catalog
}

// RegisterRoutes mounts the public and the session-protected portal routes on e.
func RegisterRoutes(e *echo.Echo, deps Dependencies) {
	auth := &AuthHandler{Sessions: deps.Sessions, JWT: deps.JWT}
	orders := &OrderHandler{}
	cat := &CatalogHandler{Catalog: deps.Catalog}
	requireSession := middleware.SessionAuthMiddleware(deps.JWT, deps.Sessions)

	// Public routes
	e.GET("/health", HealthCheck)
	e.GET("/catalog/devices", cat.ListDeviceModels)
	e.GET("/catalog/repairs", cat.ListRepairTypes)
	e.POST("/auth/login", auth.Login)
	e.POST("/auth/register", auth.Register)

	// Secured routes
	e.POST("/auth/logout", auth.Logout, requireSession)

	api := e.Group("/api")
	api.Use(requireSession)
	api.GET("/profile", auth.GetProfile)
	api.GET("/orders", orders.ListOrders)
	api.POST("/orders", orders.CreateOrder)
	api.GET("/orders/summary", orders.SummarizeOrders)
	api.GET("/orders/:id", orders.GetOrder)
}
