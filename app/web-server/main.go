package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agamOrganics/app/echo-server/metrics"
	"agamOrganics/app/web-server/router"
	"agamOrganics/internal/web"
	"agamOrganics/pkg/config"
	"agamOrganics/pkg/logger"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.LoadFrontend()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting "+cfg.App.Name+" web", "version", cfg.App.Version, "backend", cfg.Frontend.BackendURL)

	renderer, err := web.NewRenderer()
	if err != nil {
		logger.Fatal("Failed to load templates", "error", err)
	}

	sessions := web.NewSessionStore(cfg.Frontend.SessionSecret, cfg.App.Environment == "production")
	handler := web.NewHandler(web.NewBackendClient(cfg.Frontend.BackendURL), sessions)

	metrics.Init()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(metrics.Middleware())

	router.SetupPageRoutes(e, handler)
	router.SetupAjaxRoutes(e, handler)
	router.SetupStaticRoutes(e, echo.WrapHandler(promhttp.Handler()))

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Frontend.Port)
		logger.Info("Web server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start web server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down web server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Web server shutdown error", "error", err)
	}
}
