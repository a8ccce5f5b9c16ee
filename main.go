package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/community/api/audit"
	"github.com/dev-mohitbeniwal/community/api/config"
	"github.com/dev-mohitbeniwal/community/api/controller"
	"github.com/dev-mohitbeniwal/community/api/db"
	logger "github.com/dev-mohitbeniwal/community/api/logging"
	"github.com/dev-mohitbeniwal/community/api/messaging"
	pdp_dao "github.com/dev-mohitbeniwal/community/api/pdp/dao"
	"github.com/dev-mohitbeniwal/community/api/pdp/engine"
	"github.com/dev-mohitbeniwal/community/api/router"
	"github.com/dev-mohitbeniwal/community/api/service"
	"github.com/dev-mohitbeniwal/community/api/util"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	// Initialize logger
	logger.InitLogger(config.GetString("log.dir"))
	defer logger.Sync()

	if err := config.ValidateAuth(); err != nil {
		logger.Fatal("Refusing to start with an insecure token secret", zap.Error(err))
	}

	// Initialize the record store
	if err := db.InitDatabase(); err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.CloseDatabase()

	// Redis is optional: statistics are then computed on every request and
	// rate limiting and locks stay in-process.
	checks := map[string]controller.HealthCheck{"database": db.Ping}
	if err := db.InitRedis(); err != nil {
		logger.Warn("Redis unavailable, continuing without it", zap.Error(err))
		db.CloseRedis()
		db.RedisClient = nil
	} else {
		defer db.CloseRedis()
		checks["redis"] = db.PingRedis
	}

	// Audit trail, falling back to the application log
	var auditRepository audit.Repository = audit.LogRepository{}
	esRepository, err := audit.NewElasticsearchRepository(
		config.GetString("elasticsearch.url"),
		config.GetString("elasticsearch.index"),
	)
	if err == nil {
		pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = esRepository.Ping(pingCtx)
		pingCancel()
	}
	if err != nil {
		logger.Warn("Elasticsearch unavailable, audit logs go to the application log", zap.Error(err))
	} else {
		auditRepository = esRepository
		checks["elasticsearch"] = esRepository.Ping
	}
	auditService := audit.NewService(auditRepository)

	// Notification fan-out
	var publisher messaging.Publisher = messaging.LogPublisher{}
	if brokers := config.GetStringSlice("kafka.brokers"); len(brokers) > 0 {
		publisher = messaging.NewKafkaProducer(brokers, config.GetString("kafka.topic"))
	}
	defer publisher.Close()

	// Initialize EventBus
	eventBus := util.NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventBus.Start(ctx)

	services, err := service.InitializeServices(
		db.DB,
		auditService,
		service.AuthConfig{
			Secret:   []byte(config.GetString("auth.jwtSecret")),
			TokenTTL: config.GetDuration("auth.tokenTTL"),
			Issuer:   config.GetString("auth.issuer"),
		},
		util.NewValidationUtil(),
		util.NewCacheService(),
		util.NewLockService(),
		util.NewNotificationService(publisher),
		eventBus,
	)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}

	controllers := controller.InitializeControllers(services, auditService, checks)
	actorResolver := engine.NewActorResolver(pdp_dao.NewRoleRetrievalDAO(db.DB))

	gin.SetMode(config.GetString("server.mode"))
	handler := router.SetupRouter(
		controllers,
		services.Auth,
		actorResolver,
		config.GetInt("rateLimit.requests"),
		config.GetDuration("rateLimit.window"),
	)

	// Set up the server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.GetString("server.port")),
		Handler: handler,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", config.GetString("server.port")))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), config.GetDuration("server.shutdownTimeout"))
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	// Let in-flight notification handlers finish before the stores close.
	eventBus.Wait()
	logger.Info("Server exiting")
}
