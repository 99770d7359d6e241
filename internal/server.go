package internal

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/2beens/trainmetrics/internal/summary"
	"github.com/2beens/trainmetrics/internal/training"
	"github.com/2beens/trainmetrics/internal/wellness"
	"github.com/2beens/trainmetrics/internal/workouts"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis_rate/v10"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/2beens/trainmetrics/internal/auth"
	"github.com/2beens/trainmetrics/internal/config"
	"github.com/2beens/trainmetrics/internal/middleware"
	"github.com/2beens/trainmetrics/internal/misc"
	"github.com/2beens/trainmetrics/internal/telemetry/metrics"
	metricsmiddleware "github.com/2beens/trainmetrics/internal/telemetry/metrics/middleware"
	"github.com/2beens/trainmetrics/internal/telemetry/tracing"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	deviceAppSecret   string // used with the companion device app
	agentSyncSecret   string // used by the decoder agent, when pushing recordings
	versionInfo       string

	config       *config.Config
	workoutsRepo *workouts.Repo
	wellnessRepo *wellness.Repo
	analyzer     *workouts.Analyzer

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	AthleteProfile          training.Profile
	DeviceAppSecret         string
	AgentSyncSecret         string
	VersionInfo             string
	AdminUsername           string
	AdminPasswordHash       string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0) // will be set to 1 when all is set and ran (I think this is probably not needed)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewAuthService(&auth.Admin{
		Username:     params.AdminUsername,
		PasswordHash: params.AdminPasswordHash,
	}, auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "trainmetrics-backend", rdb)
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:          params.Config,
		deviceAppSecret: params.DeviceAppSecret,
		agentSyncSecret: params.AgentSyncSecret,
		versionInfo:     params.VersionInfo,

		workoutsRepo: workouts.NewRepo(),
		wellnessRepo: wellness.NewRepo(),
		analyzer:     workouts.NewAnalyzer(params.AthleteProfile, metricsManager),

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	return s, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("trainmetrics-router"))

	workoutsHandler := workouts.NewHandler(
		s.workoutsRepo,
		s.analyzer,
		s.loginChecker,
		s.metricsManager,
	)
	workoutsHandler.SetupRoutes(r)

	wellnessHandler := wellness.NewHandler(
		s.wellnessRepo,
		s.metricsManager,
	)
	wellnessHandler.SetupRoutes(r)

	summaryHandler := summary.NewHandler(summary.NewService(
		s.workoutsRepo,
		s.wellnessRepo,
		s.redisClient,
		s.config.SummaryCacheExpire(),
		s.metricsManager,
	))
	summaryHandler.SetupRoutes(r)

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	miscHandler := misc.NewHandler(s.versionInfo, s.authService)
	miscHandler.SetupRoutes(r, reqRateLimiter, s.metricsManager, s.config.LoginRateLimitAllowedPerMin)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(
		s.deviceAppSecret,
		s.agentSyncSecret,
		s.loginChecker,
	)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", metricsmiddleware.
		New(s.promRegistry, nil).
		WrapHandler("/metrics", promhttp.HandlerFor(
			s.promRegistry,
			promhttp.HandlerOpts{}),
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

	// recordings ingest unix socket
	s.setRecordingsUnixSocket(ctx)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	// TODO: probably not needed to be set explicitly
	s.metricsManager.GaugeLifeSignal.Set(0)

	// TODO: check if prometheus data has to be flushed before total shutdown

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	log.Debugln("removing recordings unix socket ...")
	if err := os.RemoveAll(s.config.DecoderUnixSocketAddrDir); err != nil {
		log.Errorf("failed to cleanup recordings unix socket dir: %s", err)
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
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

func (s *Server) setRecordingsUnixSocket(ctx context.Context) {
	if err := os.MkdirAll(s.config.DecoderUnixSocketAddrDir, os.ModePerm); err != nil {
		log.Errorf("failed to create recordings unix socket dir: %s", err)
		return
	}

	if addr, err := workouts.RecordingsUnixSocketListenerSetup(
		ctx,
		s.config.DecoderUnixSocketAddrDir,
		s.config.DecoderUnixSocketFileName,
		s.analyzer,
		s.workoutsRepo,
		s.metricsManager,
	); err != nil {
		log.Errorf("failed to create recordings unix socket: %s", err)
	} else {
		log.Debugf("recordings unix socket: %s", addr)
	}
}
