package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/cheapy/internal/config"
	"github.com/GlebRadaev/cheapy/internal/domain"
	"github.com/GlebRadaev/cheapy/internal/handlers"
	"github.com/GlebRadaev/cheapy/internal/metrics"
	"github.com/GlebRadaev/cheapy/internal/pg"
	"github.com/GlebRadaev/cheapy/internal/repo"
	"github.com/GlebRadaev/cheapy/internal/service"
	"github.com/GlebRadaev/cheapy/internal/workerpool"
	"github.com/GlebRadaev/cheapy/pkg/logger"
)

const (
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 5 * time.Second
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg     *config.Config
	api     *handlers.Handlers
	srv     *service.Services
	repo    *repo.Repositories
	metrics *metrics.Metrics
	kittyID int

	// closers run in reverse order once every component has stopped
	closers []func()

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	a.cfg = config.New()

	if err := logger.InitLogger(a.cfg); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	if err := a.initStorage(ctx); err != nil {
		return err
	}
	a.initServices()

	if err := a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully", zap.Int("kitty_id", a.kittyID))
	return nil
}

// initStorage connects to postgres, migrates the schema and makes sure the
// kitty user exists.
func (a *Application) initStorage(ctx context.Context) error {
	db, err := getPgxpool(ctx, a.cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	a.closers = append(a.closers, db.Close)

	if err := pg.RunMigrations(ctx, db); err != nil {
		zap.L().Error("migrations failed", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}

	a.repo = repo.New(pg.New(db), pg.NewTXManager(db))

	a.kittyID, err = resolveKitty(ctx, a.repo.UserRepo, a.cfg.KittyNickname)
	if err != nil {
		return fmt.Errorf("can't resolve kitty: %w", err)
	}
	return nil
}

func (a *Application) initServices() {
	pool := workerpool.NewWorkerPool(a.cfg.SummaryWorkers)
	a.closers = append(a.closers, pool.Close)

	a.metrics = metrics.New()
	a.srv = service.New(a.repo, a.cfg, pool, a.metrics, a.kittyID)
	a.api = handlers.New(a.srv, a.metrics, a.cfg.CORSOrigins)
}

type kittyEnsurer interface {
	EnsureKitty(ctx context.Context, nickname string) (*domain.User, error)
}

// resolveKitty makes sure the single kitty user exists and returns its id.
func resolveKitty(ctx context.Context, users kittyEnsurer, nickname string) (int, error) {
	if nickname == "" {
		return 0, errors.New("kitty nickname is empty")
	}
	kitty, err := users.EnsureKitty(ctx, nickname)
	if err != nil {
		return 0, err
	}
	if kitty.Nickname != nickname {
		zap.L().Warn("kitty already exists under another nickname",
			zap.String("nickname", kitty.Nickname), zap.String("configured", nickname))
	}
	return kitty.ID, nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	db, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := &http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	a.wg.Add(2)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
	}()
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server", zap.String("address", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

// Wait blocks until ctx is done or a component fails, then releases every
// resource. It returns the last component error.
func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error
	collected := make(chan struct{})

	go func() {
		defer close(collected)
		for err := range a.errCh {
			zap.L().Error("component failed", zap.Error(err))
			appErr = err
			cancel()
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	<-collected

	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
	return appErr
}
