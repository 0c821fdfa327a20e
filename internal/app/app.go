package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/activity"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/adapter/cache"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/adapter/notify"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/adapter/postgres"
	activityrepo "github.com/yonasBSD/klickbee-crm-sub001/internal/adapter/postgres/activitylog"
	companyrepo "github.com/yonasBSD/klickbee-crm-sub001/internal/adapter/postgres/company"
	customerrepo "github.com/yonasBSD/klickbee-crm-sub001/internal/adapter/postgres/customer"
	dealrepo "github.com/yonasBSD/klickbee-crm-sub001/internal/adapter/postgres/deal"
	settingsrepo "github.com/yonasBSD/klickbee-crm-sub001/internal/adapter/postgres/notification"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/adapter/postgres/ownership"
	prospectrepo "github.com/yonasBSD/klickbee-crm-sub001/internal/adapter/postgres/prospect"
	statsrepo "github.com/yonasBSD/klickbee-crm-sub001/internal/adapter/postgres/stats"
	todorepo "github.com/yonasBSD/klickbee-crm-sub001/internal/adapter/postgres/todo"
	userrepo "github.com/yonasBSD/klickbee-crm-sub001/internal/adapter/postgres/user"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/auth"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/config"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/service/activitylog"
	authsvc "github.com/yonasBSD/klickbee-crm-sub001/internal/service/auth"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/service/company"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/service/customer"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/service/deal"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/service/notification"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/service/prospect"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/service/stats"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/service/todo"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/service/user"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/transport/dataloader"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/transport/middleware"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/transport/rest"
	"github.com/yonasBSD/klickbee-crm-sub001/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL (and Redis when configured), wires the services and serves HTTP
// until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.AutoMigrate {
		results, err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", len(results)))
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	var rdb *redis.Client
	if cfg.Redis.Enabled() {
		rdb, err = cache.New(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer rdb.Close()
	} else {
		logger.Info("redis not configured; stats cache disabled, notifications go to the log")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	proxies, err := middleware.ParseTrustedProxies(config.SplitList(cfg.Server.TrustedProxies))
	if err != nil {
		return fmt.Errorf("server.trusted_proxies: %w", err)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := newHandler(cfg, logger, pool, rdb, registry, limiter, proxies)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}

// newHandler builds repositories, services and the HTTP router. rdb may be nil.
func newHandler(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	rdb *redis.Client,
	registry *prometheus.Registry,
	limiter *middleware.RateLimiter,
	proxies middleware.TrustedProxies,
) http.Handler {
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	companies := companyrepo.New(pool)
	customers := customerrepo.New(pool)
	prospects := prospectrepo.New(pool)
	deals := dealrepo.New(pool)
	todos := todorepo.New(pool)
	settings := settingsrepo.New(pool)
	activities := activityrepo.New(pool)

	opts := []activity.ExecutorOption{activity.WithFailureContext(postgres.WithoutTx)}
	if cfg.Activity.Transactional {
		opts = append(opts, activity.Transactional(txm))
	}
	recorder := activity.NewRecorder(logger, activities, activity.NewMetrics(registry))
	exec := activity.NewExecutor(logger, recorder, opts...)

	var pub interface {
		Publish(ctx context.Context, n domain.Notification) error
	}
	if rdb != nil {
		pub = notify.NewRedisPublisher(rdb, cfg.Redis.Namespace, cfg.Redis.NotifyChannel)
	} else {
		pub = notify.NewLogPublisher(logger)
	}
	notifier := notification.NewNotifier(logger, settings, pub)

	var cachePinger rest.Pinger
	if rdb != nil {
		cachePinger = rest.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
	}

	authService := authsvc.NewService(logger, users, settings, txm,
		auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		auth.NewPasswordHasher(cfg.Auth.PasswordHashCost),
		exec)

	return rest.NewRouter(rest.RouterDeps{
		Logger: logger,
		Handlers: rest.Handlers{
			Health: rest.NewHealthHandler(pool, cachePinger, Version),
			Auth:   rest.NewAuthHandler(authService, logger),
			Me: rest.NewMeHandler(
				user.NewService(logger, users, exec),
				notification.NewService(logger, settings, exec),
				logger),
			Companies: rest.NewCompanyHandler(company.NewService(logger, companies, exec), logger),
			Customers: rest.NewCustomerHandler(customer.NewService(logger, customers, companies, exec), logger),
			Prospects: rest.NewProspectHandler(prospect.NewService(logger, prospects, customers, companies, txm, exec), logger),
			Deals:     rest.NewDealHandler(deal.NewService(logger, deals, companies, customers, notifier, exec), logger),
			Todos:     rest.NewTodoHandler(todo.NewService(logger, todos, users, ownership.New(pool), notifier, exec), logger),
			Insights:  rest.NewInsightsHandler(newStatsService(cfg, logger, pool, rdb), activitylog.NewService(logger, activities), logger),
		},
		TokenValidator: authService,
		Loaders:        &dataloader.Repos{Company: companies, Customer: customers},
		CORS:           cfg.CORS,
		TrustedProxies: proxies,
		RateLimit:      cfg.RateLimit,
		RateLimiter:    limiter,
		RequestTimeout: cfg.Server.RequestTimeout,
		Metrics:        promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
	})
}

func newStatsService(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, rdb *redis.Client) *stats.Service {
	repo := statsrepo.New(pool)
	if rdb == nil {
		return stats.NewService(logger, repo, nil, cfg.Stats)
	}
	return stats.NewService(logger, repo, cache.NewStatsCache(rdb, cfg.Redis.Namespace), cfg.Stats)
}
