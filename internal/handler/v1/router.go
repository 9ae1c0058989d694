package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/dmehra2102/prod-golang-projects/lifelink/internal/config"
	"github.com/dmehra2102/prod-golang-projects/lifelink/internal/middleware"
	"github.com/dmehra2102/prod-golang-projects/lifelink/pkg/metrics"
)

type Services struct {
	Users   UserService
	Vitals  VitalsService
	Records RecordsService
	System  SystemService
}

type RouterDeps struct {
	Config   *config.Config
	Services Services
	Metrics  *metrics.Collector
	Gatherer prometheus.Gatherer
	Logger   *zap.Logger
}

func NewRouter(d RouterDeps) (*gin.Engine, error) {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	// The rate limiter keys on ClientIP, so forwarding headers are only
	// honoured from configured proxies.
	if err := r.SetTrustedProxies(d.Config.Server.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	r.Use(
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.Metrics(d.Metrics),
		middleware.Recovery(d.Logger),
		middleware.CORS(d.Config.CORS),
		middleware.RateLimit(d.Config.RateLimit, d.Metrics),
	)

	r.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "Not found", c.Request.Method+" "+c.Request.URL.Path)
	})
	r.NoMethod(func(c *gin.Context) {
		respondError(c, http.StatusMethodNotAllowed, "Method not allowed", "")
	})

	r.GET("/health", Health)
	r.GET("/metrics", gin.WrapH(metrics.MetricsHandler(d.Gatherer)))

	api := r.Group("/api")
	NewUserHandler(d.Services.Users).Register(api)
	NewVitalsHandler(d.Services.Vitals).Register(api)
	NewRecordsHandler(d.Services.Records).Register(api)
	NewSystemHandler(d.Services.System).Register(api)

	return r, nil
}
