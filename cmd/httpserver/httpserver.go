// Package httpserver manages server creation and api routing.
package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/accountdelivery"
	"github.com/go-petr/pet-ledger/internal/accountservice"
	"github.com/go-petr/pet-ledger/internal/ledger"
	"github.com/go-petr/pet-ledger/internal/middleware"
	"github.com/go-petr/pet-ledger/internal/operationdelivery"
	"github.com/go-petr/pet-ledger/internal/operationservice"
	"github.com/go-petr/pet-ledger/pkg/configpkg"
	"github.com/go-petr/pet-ledger/pkg/currencypkg"
)

// Server holds the ledger, handlers router and configuration.
type Server struct {
	Ledger   *ledger.Ledger
	Engine   *gin.Engine
	Config   configpkg.Config
	Registry *prometheus.Registry
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(l *ledger.Ledger, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	registerLedgerGauges(reg, l)

	accountService := accountservice.New(l, reg)
	operationService := operationservice.New(l, reg)

	accountHandler := accountdelivery.NewHandler(accountService)
	operationHandler := operationdelivery.NewHandler(operationService)

	metrics := middleware.NewMetrics(reg)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.HandleMethodNotAllowed = true

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(metrics.RequestMetrics())
	engine.Use(gin.Recovery())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	engine.GET("/account/*id", accountHandler.Get)
	engine.PUT("/account/*id", accountHandler.Create)

	engine.PUT("/operation/*id", operationHandler.Put)

	binding.EnableDecoderDisallowUnknownFields = true

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("currency", currencypkg.ValidCurrency)
		if err != nil {
			return nil, errors.New("cannot register currency validator")
		}
	}

	server := &Server{
		Ledger:   l,
		Engine:   engine,
		Config:   config,
		Registry: reg,
	}

	return server, nil
}

func registerLedgerGauges(reg prometheus.Registerer, l *ledger.Ledger) {
	factory := promauto.With(reg)

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "ledger_accounts",
		Help: "Number of accounts in the ledger",
	}, func() float64 {
		accounts, _ := l.Stats()
		return float64(accounts)
	})

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "ledger_operations",
		Help: "Number of distinct operation ids ever submitted",
	}, func() float64 {
		_, operations := l.Stats()
		return float64(operations)
	})
}
