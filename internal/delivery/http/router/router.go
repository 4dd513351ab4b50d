// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"dashboard/internal/delivery/http/middleware"
	"dashboard/internal/delivery/http/router/handler"
	"dashboard/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// adminRoles may dispatch notifications.
var adminRoles = []entity.Role{entity.RoleAdmin, entity.RoleHR, entity.RoleManager, entity.RoleOfficeAdmin}

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	NotificationHandler *handler.NotificationHandler
	DashboardHandler    *handler.DashboardHandler
	AdminHandler        *handler.AdminHandler
	HealthHandler       *handler.HealthHandler
	RouteGuard          *middleware.RouteGuard
	Sections            []entity.Section
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	notificationHandler *handler.NotificationHandler
	dashboardHandler    *handler.DashboardHandler
	adminHandler        *handler.AdminHandler
	healthHandler       *handler.HealthHandler
	guard               *middleware.RouteGuard
	sections            []entity.Section
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		notificationHandler: params.NotificationHandler,
		dashboardHandler:    params.DashboardHandler,
		adminHandler:        params.AdminHandler,
		healthHandler:       params.HealthHandler,
		guard:               params.RouteGuard,
		sections:            params.Sections,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Check)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/session", r.authHandler.AdoptSession)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/state", r.authHandler.State)
	}

	notificationsGroup := e.Group("/notifications")
	notificationsGroup.Use(r.guard.RequireSignedIn())
	{
		notificationsGroup.GET("", r.notificationHandler.List)
		notificationsGroup.GET("/unread-count", r.notificationHandler.UnreadCount)
		notificationsGroup.GET("/health", r.notificationHandler.Health)
		notificationsGroup.GET("/stream", r.notificationHandler.Stream)
		notificationsGroup.POST("/read-all", r.notificationHandler.MarkAllAsRead)
		notificationsGroup.POST("/:id/read", r.notificationHandler.MarkAsRead)
	}

	dashboardGroup := e.Group("/dashboard")
	{
		dashboardGroup.GET("/sections", r.dashboardHandler.Sections, r.guard.RequireSignedIn())
		dashboardGroup.GET("/:section", r.dashboardHandler.Section, r.guard.RequireSection(r.sections, "section"))
	}

	adminGroup := e.Group("/admin")
	adminGroup.Use(r.guard.Require(adminRoles...))
	{
		adminGroup.POST("/notifications", r.adminHandler.DispatchNotification)
	}
}
