package routes

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "resource_management/docs" // registers the swagger document
	"resource_management/internal/adapter/http/handlers"
	"resource_management/internal/adapter/http/middleware"
	"resource_management/internal/infrastructure/config"
	"resource_management/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	BasePath = "/api"

	shutdownTimeout = 15 * time.Second
)

// Handlers groups the HTTP handlers mounted under BasePath.
type Handlers struct {
	Account   *handlers.AccountHandler
	Demand    *handlers.DemandHandler
	Dashboard *handlers.DashboardHandler
}

// Run opens the configured store, serves the API on cfg.Port and blocks
// until SIGINT/SIGTERM, then drains in-flight requests.
func Run(cfg *config.Config, logger *zap.Logger) error {
	ctx := context.Background()

	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer st.close()

	accountUseCase := usecase.NewAccountUseCase(st.accounts, st.demands, logger)
	demandUseCase := usecase.NewDemandUseCase(st.demands, st.accounts, logger)
	dashboardUseCase := usecase.NewDashboardUseCase(st.accounts, st.demands)

	router := NewRouter(cfg, logger, Handlers{
		Account:   handlers.NewAccountHandler(accountUseCase, demandUseCase),
		Demand:    handlers.NewDemandHandler(demandUseCase),
		Dashboard: handlers.NewDashboardHandler(dashboardUseCase),
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server",
			zap.String("addr", server.Addr),
			zap.String("store", cfg.StoreDriver),
			zap.String("version", cfg.Version),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
			return
		}
		serveErr <- nil
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		return err
	case sig := <-quit:
		logger.Info("Shutdown signal received", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}
	logger.Info("Server exited gracefully")
	return nil
}

// NewRouter builds the gin engine with middlewares, swagger and every API
// route.
func NewRouter(cfg *config.Config, logger *zap.Logger, h Handlers) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	setMiddlewares(router, cfg, logger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group(BasePath)
	api.GET("/health", handlers.Health(cfg.Version))
	addAccountRoutes(api, h.Account)
	addDemandRoutes(api, h.Demand)
	addDashboardRoutes(api, h.Dashboard)

	return router
}

func setMiddlewares(router *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(cors.New(corsConfig(cfg.AllowedOrigins())))
	router.Use(middleware.SetActor(cfg.AuditActor))
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}
