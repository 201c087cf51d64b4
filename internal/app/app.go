package app

import (
	"context"
	"log"
	"net/http"
	"nextlevel_lms/internal/catalog"
	"nextlevel_lms/internal/config"
	"nextlevel_lms/internal/controller"
	"nextlevel_lms/internal/repository"
	"nextlevel_lms/internal/service"
	"nextlevel_lms/internal/storage"
	"nextlevel_lms/internal/store"
	"nextlevel_lms/pkg/logger"
	"nextlevel_lms/pkg/monitoring"
	"nextlevel_lms/pkg/security"
	"nextlevel_lms/pkg/tracing"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	Medium storage.Medium
	Store  *store.Store

	services        *services
	policy          *security.Policy
	closeMedium     func() error
	tracer          *sdktrace.TracerProvider
	mu              sync.Mutex
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user       *repository.UserRepository
	enrollment *repository.EnrollmentRepository
	payment    *repository.PaymentRepository
	review     *repository.ReviewRepository
	comment    *repository.CommentRepository
	invoice    *repository.InvoiceRepository
	cart       *repository.CartRepository
}

type services struct {
	auth       *service.AuthService
	enrollment *service.EnrollmentService
	review     *service.ReviewService
	comment    *service.CommentService
	stats      *service.StatsService
	invoice    *service.InvoiceService
	cart       *service.CartService
	checkout   *service.CheckoutService
	payments   *service.PaymentHistoryService
}

type controllers struct {
	auth       *controller.AuthController
	catalog    *controller.CatalogController
	cart       *controller.CartController
	invoice    *controller.InvoiceController
	enrollment *controller.EnrollmentController
	review     *controller.ReviewController
	payment    *controller.PaymentController
	stats      *controller.StatsController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ReloadConfig hands a freshly loaded configuration to every registered callback.
func (a *App) ReloadConfig(cfg *config.Config) {
	a.mu.Lock()
	callbacks := append([]func(*config.Config){}, a.configCallbacks...)
	a.mu.Unlock()

	for _, cb := range callbacks {
		cb(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(st *store.Store, cfg *config.Config) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(st),
		enrollment: repository.NewEnrollmentRepository(st),
		payment:    repository.NewPaymentRepository(st),
		review:     repository.NewReviewRepository(st),
		comment:    repository.NewCommentRepository(st),
		invoice:    repository.NewInvoiceRepository(st, cfg.Invoice.Prefix),
		cart:       repository.NewCartRepository(st),
	}
}

func (a *App) initServices(repos *repositories, st *store.Store, cat *catalog.Catalog, cfg *config.Config) *services {
	auth := service.NewAuthService(repos.user, st, service.NewPasswordPolicy(cfg.Security.HashPasswords))
	auth.Restore()

	enrollment := service.NewEnrollmentService(repos.enrollment, auth)
	invoice := service.NewInvoiceService(repos.invoice)
	cart := service.NewCartService(repos.cart, cat)

	return &services{
		auth:       auth,
		enrollment: enrollment,
		review:     service.NewReviewService(repos.review, enrollment, auth),
		comment:    service.NewCommentService(repos.comment, auth),
		stats:      service.NewStatsService(repos.user, repos.enrollment, repos.review),
		invoice:    invoice,
		cart:       cart,
		checkout:   service.NewCheckoutService(auth, cart, invoice, enrollment, repos.payment),
		payments:   service.NewPaymentHistoryService(repos.payment),
	}
}

func (a *App) initControllers(s *services, cat *catalog.Catalog, medium storage.Medium) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		catalog:    controller.NewCatalogController(cat),
		cart:       controller.NewCartController(s.cart, s.checkout),
		invoice:    controller.NewInvoiceController(s.invoice),
		enrollment: controller.NewEnrollmentController(s.enrollment),
		review:     controller.NewReviewController(s.review, s.comment, s.stats),
		payment:    controller.NewPaymentController(s.payments),
		stats:      controller.NewStatsController(s.stats),
		health:     controller.NewHealthController(medium),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	a.policy = security.NewPolicy(cfg.CORS.AllowedOrigins, cfg.RateLimit.MaxRequests, rateWindow(cfg))
	router.Use(a.policy.CORS())
	router.Use(security.Secure())
	router.Use(a.policy.RateLimiter())

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func rateWindow(cfg *config.Config) time.Duration {
	return time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
}

// New wires the application on top of an already opened medium.
func New(cfg *config.Config, medium storage.Medium) (*App, error) {
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}

	st := store.New(medium)
	app := &App{
		Config:      cfg,
		Medium:      medium,
		Store:       st,
		closeMedium: func() error { return nil },
	}

	repos := app.initRepositories(st, cfg)
	services := app.initServices(repos, st, cat, cfg)
	app.services = services
	controllers := app.initControllers(services, cat, medium)

	monitoring.Init()

	if cfg.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)

	app.RegisterConfigCallback(func(next *config.Config) {
		logger.SetMode(next.Server.Mode)
		app.policy.Update(next.CORS.AllowedOrigins, next.RateLimit.MaxRequests, rateWindow(next))
	})

	return app, nil
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	medium, closeMedium, err := storage.NewMedium(context.Background(), cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize storage", zap.Error(err))
	}

	app, err := New(cfg, medium)
	if err != nil {
		logger.Log.Fatal("Failed to initialize application", zap.Error(err))
	}
	app.closeMedium = closeMedium

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if err := a.closeMedium(); err != nil {
		logger.Log.Error("Failed to close storage", zap.Error(err))
	}

	logger.Log.Info("Server exiting")
}
