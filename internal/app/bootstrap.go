package app

import (
	"fmt"
	"strings"

	"resume-matcher/internal/config"
	"resume-matcher/internal/delivery/http/handler"
	"resume-matcher/internal/delivery/http/middleware"
	"resume-matcher/internal/delivery/http/routes"
	"resume-matcher/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap builds the full service: storage with schema applied, cache,
// embedder, usecases, websocket hub, and the fiber app with routes and
// middleware registered. The returned cleanup closes everything the
// container opened.
func Bootstrap(cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	ctn, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	errMw := middleware.NewErrorMiddleware(logger)
	accessMw := middleware.NewAccessLogMiddleware(logger)
	f.Use(errMw.Middleware())
	f.Use(accessMw.Middleware())

	wsHandler := ws.NewHandler(ctn.Hub, logger)
	go ctn.Hub.Run()

	registry := routes.NewRegistry(
		handler.NewHealthHandler(ctn.DB),
		handler.NewJobsHandler(ctn.Fetch),
		handler.NewResumeHandler(ctn.Resumes),
		handler.NewMatchHandler(ctn.Engine, ctn.MatchList),
		wsHandler,
	)
	registry.Register(f)

	cleanup := func() error { return ctn.Close() }
	return &App{Fiber: f, Container: ctn}, cleanup, nil
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
