package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	httpSwagger "github.com/swaggo/http-swagger"

	"carsales/internal/api"
	"carsales/internal/config"
	_ "carsales/internal/docs"
	"carsales/internal/engine"
)

// @title Car Sales Dashboard API
// @version 1.0
// @description Filtered KPIs, trends, rankings and distributions over the car sales table.
// @BasePath /api
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	level := parseLevel(cfg.Log.Level)
	log.SetLevel(level)

	// 1. Initialize Echo (Starts Instantly)
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(level)
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	// 2. Initialize Handler without data
	// The API is live but answers 503 (Loading) until the store is published
	h := api.NewHandler(api.Defaults{
		GrowthFrom: cfg.Growth.From,
		GrowthTo:   cfg.Growth.To,
	})
	h.RegisterRoutes(e)
	e.GET("/swagger/*", echo.WrapHandler(httpSwagger.WrapHandler))

	// 3. Load the table in the background
	go func() {
		log.Infof("BACKGROUND: Loading %s data from %s...", cfg.Data.Source, cfg.Data.Path)
		t0 := time.Now()

		store, err := engine.Open(context.Background(), cfg.Data.Source, cfg.Data.Path, cfg.Data.Table)
		if err != nil {
			log.Errorf("BACKGROUND: %v", err)
			h.SetLoadError(err)
			return
		}
		h.SetStore(store)

		log.Infof("BACKGROUND: Load complete in %v. API is fully ready.", time.Since(t0))
	}()

	// 4. Start Server
	log.Infof("Server ready on %s (Data loading in background...)", cfg.Server.Addr)
	e.Logger.Fatal(e.Start(cfg.Server.Addr))
}

func parseLevel(s string) log.Lvl {
	switch s {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	}
	return log.INFO
}
