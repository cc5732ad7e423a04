package routes

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "mecanica_rff/docs" // swag-generated
	"mecanica_rff/internal/adapter/http/handlers"
	"mecanica_rff/internal/adapter/http/middleware"
	"mecanica_rff/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 15 * time.Second

// Handlers groups everything the router mounts under /v1.
type Handlers struct {
	Draft   *handlers.DraftHandler
	Editor  *handlers.EditorHandler
	Quote   *handlers.QuoteHandler
	Catalog *handlers.CatalogHandler
	Payment *handlers.QuotePaymentHandler
}

// Run will start the server and block until SIGINT/SIGTERM.
func Run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := newApplication(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.close()

	// Cancelling baseCtx ends the open SSE streams on shutdown.
	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()

	srv := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.App.Port),
		Handler:     NewRouter(app.handlers),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 60 * time.Second,
		BaseContext: func(net.Listener) context.Context { return baseCtx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.App.Port).Msg("[server] listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("[server] shutting down")
	cancelBase()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	log.Info().Msg("[server] exited")
	return nil
}

func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, h.Catalog)
	addDraftRoutes(v1, h.Draft)
	addQuoteRoutes(v1, h.Quote, h.Payment)
	addEditorRoutes(v1, h.Editor)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())
}
