package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/workoutexplorer/internal/config"
	"github.com/2beens/workoutexplorer/internal/exercises"
	"github.com/2beens/workoutexplorer/internal/explorer"
	"github.com/2beens/workoutexplorer/internal/favorites"
	"github.com/2beens/workoutexplorer/internal/images"
	"github.com/2beens/workoutexplorer/internal/middleware"
	"github.com/2beens/workoutexplorer/internal/reference"
	"github.com/2beens/workoutexplorer/internal/selection"
	"github.com/2beens/workoutexplorer/internal/telemetry/metrics"
	"github.com/2beens/workoutexplorer/internal/telemetry/tracing"
	"github.com/2beens/workoutexplorer/internal/wger"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server

	config       *config.Config
	state        *selection.State
	favorites    *favorites.Store
	referenceErr error

	redisClient *redis.Client

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	RedisPassword           string
	HoneycombTracingEnabled bool
}

// NewServer wires the explorer: reference data is loaded first, then the
// exercises for the empty selection are fetched and the favorites read.
// Remote failures during start are logged, the server starts regardless.
func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("explorer", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "workout-explorer")
	if err != nil {
		return nil, err
	}

	var rdb *redis.Client
	if cfg.RedisHost != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: params.RedisPassword,
			DB:       0, // use default DB
		})
		rdb.AddHook(redisotel.NewTracingHook())

		rdbStatus := rdb.Ping(ctx)
		if err := rdbStatus.Err(); err != nil {
			log.Errorf("--> failed to ping redis: %s", err)
		} else {
			log.Debugf("redis ping: %s", rdbStatus.Val())
		}
	}

	favoritesStorage, err := newFavoritesStorage(cfg, rdb)
	if err != nil {
		otelShutdown()
		return nil, err
	}

	languagePolicy, err := exercises.ParseLanguagePolicy(cfg.LanguagePolicy)
	if err != nil {
		otelShutdown()
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   time.Duration(cfg.WgerTimeoutSeconds) * time.Second,
	}

	wgerApi := wger.NewApi(wger.NewApiParams{
		BaseURL:           cfg.WgerBaseURL,
		HttpClient:        tracedHttpClient,
		CacheSizeMB:       cfg.WgerCacheSizeMB,
		CacheExpire:       cfg.WgerCacheExpireSec,
		RequestsPerSecond: cfg.WgerRequestsPerSecond,
		Burst:             cfg.WgerBurst,
		Metrics:           metricsManager,
	})

	referenceData, referenceErr := reference.NewLoader(wgerApi).Load(ctx)
	if referenceErr != nil {
		log.Errorf("reference data degraded: %s", referenceErr)
	}

	aggregator := exercises.NewAggregator(
		wgerApi,
		images.NewResolver(wgerApi, cfg.PlaceholderImageURL, metricsManager),
		exercises.AggregatorOptions{
			LanguagePolicy:   languagePolicy,
			ImageConcurrency: cfg.ImageConcurrency,
			Metrics:          metricsManager,
		},
	)

	state := selection.NewState(aggregator, referenceData, metricsManager)
	if initial, err := state.Refresh(ctx); err != nil {
		log.Errorf("initial exercises fetch: %s", err)
	} else {
		log.Infof("initial exercises fetched: %d", len(initial))
	}

	favoritesStore := favorites.NewStore(favoritesStorage, metricsManager)
	log.Infof("favorites loaded: %d", len(favoritesStore.Load(ctx)))

	return &Server{
		config:       cfg,
		state:        state,
		favorites:    favoritesStore,
		referenceErr: referenceErr,
		redisClient:  rdb,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func newFavoritesStorage(cfg *config.Config, rdb *redis.Client) (favorites.Storage, error) {
	switch cfg.FavoritesBackend {
	case config.FavoritesBackendRedis:
		if rdb == nil {
			return nil, errors.New("redis favorites backend without redis client")
		}
		log.Debugln("favorites stored in redis")
		return favorites.NewRedisStorage(rdb), nil
	default:
		fileStorage, err := favorites.NewFileStorage(cfg.FavoritesPath)
		if err != nil {
			return nil, fmt.Errorf("new favorites file storage: %w", err)
		}
		log.Debugf("favorites stored in: %s", cfg.FavoritesPath)
		return fileStorage, nil
	}
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("explorer-router"))

	// toggles are rate limited only when there is a redis to keep the counters
	var reqRateLimiter middleware.RequestRateLimiter
	if s.redisClient != nil {
		reqRateLimiter = redis_rate.NewLimiter(s.redisClient)
	}

	explorerHandler := explorer.NewHandler(s.state, s.favorites, s.referenceErr)
	explorerHandler.SetupRoutes(r, reqRateLimiter, s.metricsManager, s.config.ToggleRateLimitAllowedPerMin)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      s.routerSetup(),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests first, a toggle in flight still gets written
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
