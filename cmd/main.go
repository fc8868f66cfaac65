package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"sales-insight-backend/config"
	_ "sales-insight-backend/docs" // generated by swag init -g cmd/main.go
	"sales-insight-backend/internal/controller"
	"sales-insight-backend/internal/datastore"
	"sales-insight-backend/internal/kafka"
	"sales-insight-backend/internal/repository"
	"sales-insight-backend/internal/router"
	"sales-insight-backend/internal/scheduler"
	"sales-insight-backend/internal/service"
)

// @title           Sales Insight API
// @version         1.0
// @description     Serves static sales data and answers natural-language questions about it through an LLM.

// @host      localhost:8000
// @BasePath  /
// @schemes   http

// @tag.name         sales
// @tag.description  Read-only access to the loaded sales data

// @tag.name         ai
// @tag.description  LLM-backed questions over the sales data

// @tag.name         health
// @tag.description  API health check operations

func main() {
	app := fx.New(
		// Core Dependencies
		fx.Provide(
			NewConfig,
			NewSalesDataStore,
			NewSalesRepository,
		),
		// Infrastructure Dependencies
		fx.Provide(
			router.NewGinEngine,
			kafka.NewAuditProducer,
			service.NewOpenAILLMService,
			service.NewSalesQueryService,
			service.NewInsightService,
			controller.NewSalesController,
			controller.NewAIController,
		),
		fx.Invoke(
			RegisterAPIRoutes,
			RegisterScheduler,
		),
	)

	// A missing or invalid data file fails here, before anything listens.
	startCtx, cancelStart := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}
	<-app.Done()

	stopCtx, cancelStop := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStop()
	log.Info().Msg("Shutting down application...")
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Forced shutdown due to error or timeout")
	}
	log.Info().Msg("Application stopped.")
}

func NewConfig() (*config.Config, error) {
	return config.NewConfig()
}

// --- Factory Functions ---

func NewSalesDataStore(cfg *config.Config) (*datastore.JSONStore, error) {
	return datastore.Load(cfg.Data.FilePath)
}

func NewSalesRepository(store *datastore.JSONStore) repository.SalesRepository {
	return store
}

// --- Invoker Functions ---

func RegisterAPIRoutes(
	lifecycle fx.Lifecycle,
	engine *gin.Engine,
	cfg *config.Config,
	salesController *controller.SalesController,
	aiController *controller.AIController,
) {
	controller.RegisterSalesRoutes(engine, salesController)
	controller.RegisterAIRoutes(engine, aiController)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Starting HTTP server on %s", cfg.Addr())
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error().Err(err).Msg("HTTP server ListenAndServe error")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Shutting down HTTP server...")
			return server.Shutdown(ctx)
		},
	})
}

func RegisterScheduler(lc fx.Lifecycle, cfg *config.Config, store *datastore.JSONStore) error {
	_, err := scheduler.NewScheduler(lc, cfg, store)
	return err
}
