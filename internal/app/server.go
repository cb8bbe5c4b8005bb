// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"lucky-backoffice/internal/config"
	"lucky-backoffice/internal/db"
	activityHandler "lucky-backoffice/internal/handlers/activity"
	addressHandler "lucky-backoffice/internal/handlers/address"
	customerHandler "lucky-backoffice/internal/handlers/customer"
	estimationHandler "lucky-backoffice/internal/handlers/estimation"
	"lucky-backoffice/internal/middleware"
	"lucky-backoffice/internal/migrate"
	"lucky-backoffice/internal/repository/postgres"
	activitysvc "lucky-backoffice/internal/service/activity"
	addresssvc "lucky-backoffice/internal/service/address"
	customersvc "lucky-backoffice/internal/service/customer"
	estimationsvc "lucky-backoffice/internal/service/estimation"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
	pool   *pgxpool.Pool
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- Logger -----
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	s.logger = logger

	// ----- PostgreSQL -----
	pool, err := db.ConnectDB(ctx, s.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	s.pool = pool

	// ----- Migrations -----
	if err := migrate.Apply(ctx, pool); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// ----- Business timezone -----
	loc, err := time.LoadLocation(s.cfg.Timezone)
	if err != nil {
		return fmt.Errorf("failed to load timezone %q: %w", s.cfg.Timezone, err)
	}

	// ----- Repositories -----
	dbWrapper := postgres.NewDB(pool, s.cfg.QueryTimeout)
	customerRepo := postgres.NewCustomerRepository(dbWrapper)
	activityRepo := postgres.NewActivityRepository(dbWrapper)
	estimationRepo := postgres.NewEstimationRepository(dbWrapper)

	// ----- Services -----
	customerService := customersvc.NewCustomerService(customerRepo, logger)
	activityService := activitysvc.NewActivityService(activityRepo, logger, loc)
	estimationService := estimationsvc.NewEstimationService(estimationRepo, logger)
	addressService := addresssvc.NewService(
		s.cfg.AddressSourceURLs,
		&http.Client{Timeout: 30 * time.Second},
		logger,
	)

	// ----- Handlers -----
	customerHandlerInst := customerHandler.NewCustomerHandler(customerService)
	activityHandlerInst := activityHandler.NewActivityHandler(activityService)
	estimationHandlerInst := estimationHandler.NewEstimationHandler(estimationService)
	addressHandlerInst := addressHandler.NewAddressHandler(addressService)

	// ----- Middlewares -----
	s.engine.Use(
		middleware.RequestIDMiddleware(),
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(s.cfg.CORSAllowOrigins),
	)

	// ----- Router -----
	handlers := &Handlers{
		CustomerHandler:   customerHandlerInst,
		ActivityHandler:   activityHandlerInst,
		EstimationHandler: estimationHandlerInst,
		AddressHandler:    addressHandlerInst,
	}
	SetupRouter(s.engine, handlers)

	// ----- Start HTTP -----
	logger.Info("server running", zap.String("addr", s.cfg.HTTPAddr))
	return s.engine.Run(s.cfg.HTTPAddr)
}

// Shutdown releases held resources. Safe to call after a failed Start.
func (s *Server) Shutdown() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.logger != nil {
		s.logger.Sync()
	}
}
