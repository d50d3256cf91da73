package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/YairCer/iglesia-app/config"
	"github.com/YairCer/iglesia-app/handlers"
	"github.com/YairCer/iglesia-app/middlewares"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, cfg *config.Config) {
	auth := handlers.NewAuthHandler()
	dash := handlers.NewDashboardHandler()
	ev := handlers.NewEventHandler()
	mem := handlers.NewMemberHandler()
	inv := handlers.NewInviteHandler(cfg)

	// ===== Public =====
	e.GET("/", auth.Index)
	e.GET("/register", auth.Register)
	e.POST("/register", auth.Register)
	e.GET("/login", auth.Login)
	e.POST("/login", auth.Login)
	e.GET("/invite", inv.Show)
	e.GET("/health", handlers.Health)

	// ===== Session-guarded =====
	app := e.Group("", middlewares.RequireLogin)
	app.GET("/logout", auth.Logout)
	app.GET("/dashboard", dash.Show)
	app.GET("/events", ev.List)
	app.GET("/events/new", ev.Create)
	app.POST("/events/new", ev.Create)
	app.GET("/members", mem.List)
	app.GET("/members/new", mem.Create)
	app.POST("/members/new", mem.Create)
	app.GET("/members/:id/edit", mem.Edit)
	app.POST("/members/:id/edit", mem.Edit)
}
