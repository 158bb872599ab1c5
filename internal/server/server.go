package server

import (
	"context"
	"net/http"
	"time"

	"github.com/ecoride/ecoride/internal/booking"
	bookingdomain "github.com/ecoride/ecoride/internal/booking/domain"
	"github.com/ecoride/ecoride/internal/config"
	"github.com/ecoride/ecoride/internal/customer"
	customerdomain "github.com/ecoride/ecoride/internal/customer/domain"
	"github.com/ecoride/ecoride/internal/driver"
	driverdomain "github.com/ecoride/ecoride/internal/driver/domain"
	"github.com/ecoride/ecoride/internal/invoice"
	invoicedomain "github.com/ecoride/ecoride/internal/invoice/domain"
	"github.com/ecoride/ecoride/internal/rateplan"
	rateplandomain "github.com/ecoride/ecoride/internal/rateplan/domain"
	"github.com/ecoride/ecoride/internal/vehicle"
	vehicledomain "github.com/ecoride/ecoride/internal/vehicle/domain"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	customer.Module,
	vehicle.Module,
	driver.Module,
	rateplan.Module,
	booking.Module,
	invoice.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(metrics *HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(MetricsMiddleware(metrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin() *gin.Engine {
	return NewEngine(NewHTTPMetrics())
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine      *gin.Engine
	cfg         config.Config
	customerSvc customerdomain.Service
	vehicleSvc  vehicledomain.Service
	driverSvc   driverdomain.Service
	ratePlanSvc rateplandomain.Service
	bookingSvc  bookingdomain.Service
	invoiceSvc  invoicedomain.Service
}

type ServerParams struct {
	fx.In

	Gin         *gin.Engine
	Cfg         config.Config
	CustomerSvc customerdomain.Service
	VehicleSvc  vehicledomain.Service
	DriverSvc   driverdomain.Service
	RatePlanSvc rateplandomain.Service
	BookingSvc  bookingdomain.Service
	InvoiceSvc  invoicedomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:      p.Gin,
		cfg:         p.Cfg,
		customerSvc: p.CustomerSvc,
		vehicleSvc:  p.VehicleSvc,
		driverSvc:   p.DriverSvc,
		ratePlanSvc: p.RatePlanSvc,
		bookingSvc:  p.BookingSvc,
		invoiceSvc:  p.InvoiceSvc,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers", s.ListCustomers)
	api.GET("/customers/:id", s.GetCustomer)
	api.PATCH("/customers/:id", s.UpdateCustomer)

	api.POST("/vehicles", s.CreateVehicle)
	api.GET("/vehicles", s.ListVehicles)
	api.GET("/vehicles/:id", s.GetVehicle)
	api.PUT("/vehicles/:id/status", s.SetVehicleStatus)

	api.POST("/drivers", s.CreateDriver)
	api.GET("/drivers", s.ListDrivers)
	api.GET("/drivers/:id", s.GetDriver)
	api.PUT("/drivers/:id/status", s.SetDriverStatus)

	api.GET("/rate-plans", s.ListRatePlans)
	api.GET("/rate-plans/:code", s.GetRatePlan)

	api.POST("/bookings", s.CreateBooking)
	api.GET("/bookings", s.ListBookings)
	api.GET("/bookings/:id", s.GetBooking)
	api.POST("/bookings/:id/complete", s.CompleteBooking)
	api.POST("/bookings/:id/cancel", s.CancelBooking)
	api.GET("/bookings/:id/pricing", s.GetBookingPricing)
	api.GET("/bookings/:id/invoice", s.GetBookingInvoice)
	api.GET("/bookings/:id/invoice.pdf", s.GetBookingInvoicePDF)
}
