package app

import (
	"employee-manager/internal/config"
	"employee-manager/internal/employee"
	"employee-manager/internal/lookup"
	"employee-manager/internal/middleware"
	"employee-manager/internal/shared/filestore"

	"github.com/gin-gonic/gin"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// BuildApp wires storage, services and routes onto the router.
func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger) error {
	storage := employee.NewJSONStorage(cfg.DataFile)
	repo := employee.NewRepository(storage)
	files := filestore.NewDiskStore(cfg.StorageDir)

	options := lookup.DefaultOptions()
	validator := employee.NewValidator(options.Nationalities)

	publisher := employee.NewNoopEventPublisher()
	if cfg.KafkaBroker != "" {
		writer := &kafkago.Writer{
			Addr:     kafkago.TCP(cfg.KafkaBroker),
			Balancer: &kafkago.LeastBytes{},
		}
		publisher = employee.NewKafkaEventPublisher(writer)
		logger.Info("kafka event publishing enabled", zap.String("broker", cfg.KafkaBroker))
	}

	svc := employee.NewService(repo, validator, files, publisher, logger)
	employeeHandler := employee.NewHandler(svc, logger)
	lookupHandler := lookup.NewHandler(options, logger)

	// Uploaded photos are public content.
	router.Static("/storage", cfg.StorageDir)

	perSecond := rate.Limit(float64(cfg.RateLimitPerMinute) / 60.0)
	api := router.Group("/api")
	api.Use(middleware.RequestID())
	api.Use(middleware.ContextLogger(logger))
	api.Use(middleware.RateLimitByIP(perSecond, cfg.RateLimitPerMinute))

	employee.RegisterRoutes(api, employeeHandler)
	lookup.RegisterRoutes(api, lookupHandler)

	return nil
}
