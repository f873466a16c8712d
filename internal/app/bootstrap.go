package app

import (
	"fmt"
	"log"
	"strings"

	"smartapplyhub/internal/config"
	"smartapplyhub/internal/delivery/http/middleware"
	"smartapplyhub/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	container, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{})

	registerGlobalMiddleware(f)
	routes.NewRegistry(cfg, container.DB, container.Cache).Register(f)

	cleanup := func() error {
		return container.Close()
	}
	return &App{Fiber: f, Container: container}, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware(log.Default()).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
