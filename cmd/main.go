package main

import (
	"fmt"
	"os"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/iosrepair/board-repair-manager/internal/catalog"
	"github.com/iosrepair/board-repair-manager/internal/handler"
	"github.com/iosrepair/board-repair-manager/internal/idgen"
	"github.com/iosrepair/board-repair-manager/internal/middleware"
	"github.com/iosrepair/board-repair-manager/internal/order"
	"github.com/iosrepair/board-repair-manager/internal/session"
	"github.com/iosrepair/board-repair-manager/pkg/config"
	"github.com/iosrepair/board-repair-manager/pkg/jwtutil"
	"github.com/iosrepair/board-repair-manager/pkg/logger"
	"github.com/iosrepair/board-repair-manager/pkg/metrics"
	"github.com/iosrepair/board-repair-manager/prometheus"
)

func main() {
	// Load configuration (.env first, then process environment)
	conf, err := config.Load("repair-portal")
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.InitLogger(&logger.LogConfig{
		Level:       conf.Log.Level,
		Environment: conf.Server.Env,
		ServiceName: conf.ServiceName,
	})
	if err != nil {
		fmt.Printf("Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.GetLogger()
	log.Info("Configuration loaded", conf.LogFields()...)

	cat, err := catalog.Load(conf.Portal.CatalogFile)
	if err != nil {
		log.Fatal("Failed to load catalog", zap.String("file", conf.Portal.CatalogFile), zap.Error(err))
	}

	// Order ids stay unique across every session of the process
	orderIDs := idgen.NewTimestamp()
	policy := order.NewPolicy(cat)
	orderGateway := order.NewMockGateway(conf.Portal.OrderDelay)

	sessions := session.NewManager(session.ManagerConfig{
		Gateway: session.NewMockAuthGateway(conf.Portal.LoginDelay, conf.Portal.RegisterDelay),
		NewStore: func() *order.Store {
			return order.NewStore(order.StoreConfig{
				Policy:         policy,
				Gateway:        orderGateway,
				IDs:            orderIDs,
				SeedDemoOrders: conf.Portal.SeedDemoOrders,
			})
		},
		TTL: conf.JWT.TTL(),
	})

	// Initialize JWT utility
	jwt := jwtutil.NewJWTUtil(&jwtutil.JWTConfig{
		SigningKey:      conf.JWT.SigningKey,
		ExpirationHours: conf.JWT.ExpirationHours,
	})

	// Initialize metrics
	prometheus.InitMetrics()
	httpMetrics := metrics.NewHTTPMetrics(conf.Metrics.Prefix)

	// Initialize Echo framework
	e := echo.New()
	e.HideBanner = true

	// Apply middleware
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.Middleware())
	e.Use(httpMetrics.Middleware())

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(metrics.GetPrometheusHandler()))

	handler.RegisterRoutes(e, handler.Dependencies{
		Sessions: sessions,
		JWT:      jwt,
		Catalog:  cat,
	})

	// Start server
	log.Info("Starting repair-portal on port " + conf.Server.Port)
	e.Logger.Fatal(e.Start(":" + conf.Server.Port))
}
