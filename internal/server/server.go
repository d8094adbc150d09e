// Package server exposes the costing engine over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"

	auditdomain "github.com/capquotelabs/capquote/internal/audit/domain"
	"github.com/capquotelabs/capquote/internal/config"
	costingdomain "github.com/capquotelabs/capquote/internal/costing/domain"
	margindomain "github.com/capquotelabs/capquote/internal/margin/domain"
	"github.com/capquotelabs/capquote/internal/observability"
	pricelistdomain "github.com/capquotelabs/capquote/internal/pricelist/domain"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("server",
	fx.Provide(NewServer),
	fx.Invoke(registerHTTPServer),
)

type Params struct {
	fx.In

	Cfg            config.Config
	Log            *zap.Logger
	DB             *gorm.DB
	CostingSvc     costingdomain.Service
	PriceSvc       pricelistdomain.Service
	MarginSvc      margindomain.Service
	AuditExportSvc auditdomain.ExportService
	Metrics        *observability.Metrics
}

type Server struct {
	cfg            config.Config
	log            *zap.Logger
	db             *gorm.DB
	costingSvc     costingdomain.Service
	priceSvc       pricelistdomain.Service
	marginSvc      margindomain.Service
	auditExportSvc auditdomain.ExportService
	metrics        *observability.Metrics
}

func NewServer(p Params) *Server {
	return &Server{
		cfg:            p.Cfg,
		log:            p.Log.Named("server"),
		db:             p.DB,
		costingSvc:     p.CostingSvc,
		priceSvc:       p.PriceSvc,
		marginSvc:      p.MarginSvc,
		auditExportSvc: p.AuditExportSvc,
		metrics:        p.Metrics,
	}
}

func (s *Server) Router() *gin.Engine {
	if s.cfg.Server.Mode != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), requestLogger(s.log))

	r.GET("/healthz", s.Healthz)
	r.GET("/readyz", s.Readyz)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{})))

	api := r.Group("/api/v1")
	{
		api.POST("/cart/estimate", s.EstimateCart)
		api.POST("/quotes/price", s.PriceQuote)
		api.POST("/invoices/reprice", s.RepriceInvoice)

		api.GET("/price-rows", s.ListPriceRows)
		api.GET("/margin-settings", s.ListMarginSettings)
		api.GET("/audit/export", s.ExportAuditEvents)
	}

	return r
}

func registerHTTPServer(lc fx.Lifecycle, s *Server) {
	srv := &http.Server{
		Addr:    s.cfg.Server.Addr,
		Handler: s.Router(),
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					s.log.Error("http server stopped", zap.Error(err))
				}
			}()
			s.log.Info("http server listening", zap.String("addr", s.cfg.Server.Addr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if c.Writer.Status() >= http.StatusInternalServerError {
			log.Error("request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Int("status", c.Writer.Status()),
				zap.String("request_id", RequestIDFromContext(c)))
		}
	}
}
