package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"weather-mcp/config"
	v1 "weather-mcp/internal/controllers/http/v1"
	mcpcontroller "weather-mcp/internal/controllers/mcp"
	"weather-mcp/internal/repositories"
	"weather-mcp/internal/services/weather"
	"weather-mcp/pkg/httpserver"
	"weather-mcp/pkg/logger"
)

// @title Weather MCP
// @version 1.0.0
// @description An MCP server exposing weather-lookup operations backed by the Open-Meteo API.
// @description The same operations are reachable over a small HTTP surface for debugging and discovery.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http

// @tag.name Weather
// @tag.description Weather lookup operations
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf := config.NewConfig()

	l := logger.NewZapLogger(cnf.AppName, os.Stderr)

	repo := repositories.NewOpenMeteoRepository(
		cnf.OpenMeteo.BaseURL,
		cnf.OpenMeteo.UserAgent,
		time.Duration(cnf.OpenMeteo.Timeout)*time.Second,
		cnf.TLSVerify(),
		l,
	)

	service := weather.NewWeatherService(repo, l)

	mcpServer := server.NewMCPServer(
		cnf.AppName,
		cnf.AppVersion,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithRecovery(),
	)
	mcpcontroller.Register(mcpServer, service, l)

	app := httpserver.InitFiberServer(cnf.AppName)

	v1.NewRouter(
		app,
		service,
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	go func() {
		// ServeStdio returns when the host closes stdin.
		if err := server.ServeStdio(mcpServer); err != nil {
			l.Error(err)
		}
		cancel()
	}()

	l.Info("application started successfully", map[string]any{
		"port":       cnf.Port,
		"tls_verify": cnf.TLSVerify(),
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Fprintln(os.Stderr, "received shutdown signal")
	case <-ctx.Done():
		fmt.Fprintln(os.Stderr, "stdio transport closed")
	}
}
