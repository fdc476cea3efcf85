package routes

import (
	_ "buscador_cep/docs" // swag generated
	"buscador_cep/internal/adapter/http/handlers"
	"buscador_cep/internal/adapter/http/middleware"
	"buscador_cep/internal/adapter/persistence/memory"
	"buscador_cep/internal/adapter/persistence/repository"
	"buscador_cep/internal/infrastructure/database"
	"buscador_cep/internal/infrastructure/metrics"
	"buscador_cep/internal/infrastructure/viacep"
	"buscador_cep/internal/usecase"
	"buscador_cep/internal/usecase/interfaces"
	"buscador_cep/pkg"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"
)

const PORT = 8080

const shutdownTimeout = 15 * time.Second

// Handlers groups what NewRouter mounts.
type Handlers struct {
	Address *handlers.AddressHandler
	Form    *handlers.FormHandler
	Page    *handlers.PageHandler
	Limiter *middleware.IPRateLimiter
	Metrics http.Handler
}

// Run will start the server and block until SIGINT/SIGTERM.
func Run() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var gateway interfaces.IAddressLookupGateway = viacep.NewViaCEPGateway(
		os.Getenv("VIACEP_BASE_URL"),
		pkg.DurationFromEnv("VIACEP_TIMEOUT", viacep.DefaultTimeout),
	)
	gateway = metrics.NewInstrumentedGateway(gateway, prometheus.DefaultRegisterer)

	sessions := memory.NewFormSessionMemoryRepository(pkg.DurationFromEnv("FORM_SESSION_TTL", 0))
	h := newHandlers(gateway, connectAddressCache(ctx), sessions)
	h.Metrics = promhttp.Handler()

	srv := &http.Server{
		Addr:              ":" + pkg.GetenvDefault("PORT", strconv.Itoa(PORT)),
		Handler:           NewRouter(h),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("[cep][server] listening addr=%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Printf("[cep][server] shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		// In-flight lookups still land in their sessions before exit.
		sessions.Wait()
		return err
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter builds the gin engine with every route mounted.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)
	router.SetHTMLTemplate(handlers.FormPageTemplate())

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if h.Metrics != nil {
		router.GET("/metrics", gin.WrapH(h.Metrics))
	}

	app := router.Group("", middleware.SecurityHeaders())
	addPageRoutes(app, h.Page, h.Limiter)

	v1 := app.Group("/v1")
	addPingRoutes(v1)
	addCEPRoutes(v1, h.Address, h.Limiter)
	addFormRoutes(v1, h.Form, h.Limiter)

	return router
}

func newHandlers(gateway interfaces.IAddressLookupGateway, cache interfaces.IAddressCacheRepository, sessions interfaces.IFormSessionRepository) Handlers {
	lookupUseCase := usecase.NewAddressLookupUseCase(gateway, cache)
	formUseCase := usecase.NewFormSessionUseCase(sessions, gateway, pkg.DurationFromEnv("VIACEP_TIMEOUT", usecase.DefaultLookupTimeout))

	return Handlers{
		Address: handlers.NewAddressHandler(lookupUseCase),
		Form:    handlers.NewFormHandler(formUseCase),
		Page:    handlers.NewPageHandler(formUseCase),
		Limiter: middleware.NewIPRateLimiterFromEnv(),
	}
}

// connectAddressCache returns nil (no cache) unless CEP_CACHE_ENABLED is set
// and the selected backend is reachable.
func connectAddressCache(ctx context.Context) interfaces.IAddressCacheRepository {
	if !database.IsAddressCacheEnabled() {
		log.Printf("[cep][cache] disabled")
		return nil
	}

	ttl := repository.AddressCacheTTLFromEnv()
	switch database.AddressCacheBackend() {
	case database.CacheBackendRedis:
		rdb, err := database.ConnectRedis(ctx)
		if err != nil {
			log.Printf("[cep][cache] redis not configured, running without cache: %v", err)
			return nil
		}
		return repository.NewAddressCacheRedisRepository(rdb, ttl)
	default:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			log.Printf("[cep][cache] dynamodb not configured, running without cache: %v", err)
			return nil
		}
		return repository.NewAddressCacheDynamoRepository(ddb, ttl)
	}
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(middleware.CORS())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
