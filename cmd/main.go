package main

import (
	"log"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/YairCer/iglesia-app/config"
	"github.com/YairCer/iglesia-app/database"
	"github.com/YairCer/iglesia-app/routes"
	"github.com/YairCer/iglesia-app/views"
)

func main() {
	cfg := config.Load()

	// connect + migrate; if the DB is unreachable we fail early
	database.Connect(cfg)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(cfg.SecretKey))))
	e.Renderer = views.New()

	routes.Register(e, cfg)

	// bind all interfaces so phones on the same network can reach /invite
	addr := ":" + cfg.AppPort
	log.Printf("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
