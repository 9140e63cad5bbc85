package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	v1 "github.com/stagebill/stagebill/internal/api/v1"
	"github.com/stagebill/stagebill/internal/config"
	"github.com/stagebill/stagebill/internal/currency"
	"github.com/stagebill/stagebill/internal/logger"
	"github.com/stagebill/stagebill/internal/metrics"
	"github.com/stagebill/stagebill/internal/render"
	"github.com/stagebill/stagebill/internal/repository"
	"github.com/stagebill/stagebill/internal/router"
	"github.com/stagebill/stagebill/internal/service"
	"github.com/stagebill/stagebill/internal/validator"
)

func init() {
	// Keep all timestamps in UTC
	time.Local = time.UTC
}

func main() {
	app := fx.New(
		fx.Provide(
			// Config
			config.NewConfig,

			// Logger
			newLogger,

			// Catalog
			repository.NewPlayRepository,

			// Currency formatting
			currency.NewFormatterFromConfig,

			// Renderers
			render.NewTextRenderer,
			render.NewHTMLRenderer,
			render.NewPDFRenderer,

			// Services
			service.NewStatementService,
			service.NewPlayService,

			// Handlers
			v1.NewStatementHandler,
			v1.NewPlayHandler,

			// Router
			newRouter,
		),
		fx.Invoke(startServer),
	)

	app.Run()
}

func newLogger(cfg *config.Configuration) (*logger.Logger, error) {
	return logger.NewLogger(cfg.Logging.Level)
}

func newRouter(
	statementHandler *v1.StatementHandler,
	playHandler *v1.PlayHandler,
) *gin.Engine {
	return router.SetupRouter(router.Handlers{
		Statement: statementHandler,
		Play:      playHandler,
	})
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
) {
	validator.NewValidator()
	metrics.Init()

	srv := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting server", "address", cfg.Server.Address)
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalf("failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Infow("shutting down server")
			return srv.Shutdown(ctx)
		},
	})
}
