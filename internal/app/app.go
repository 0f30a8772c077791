package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/otpdesk/otpdesk/internal/config"
	"github.com/otpdesk/otpdesk/internal/handlers"
	"github.com/otpdesk/otpdesk/internal/service"
	"github.com/otpdesk/otpdesk/internal/store"
	pkgauth "github.com/otpdesk/otpdesk/pkg/auth"
	"github.com/otpdesk/otpdesk/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg   *config.Config
	api   *handlers.Handlers
	srv   *service.Services
	store *store.Store

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
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	st := store.New()
	if err := bootstrapAdmin(ctx, st, cfg); err != nil {
		zap.L().Error("bootstrap failed: ", zap.Error(err))
		return fmt.Errorf("can't bootstrap administrator: %w", err)
	}

	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)
	a.cfg = cfg
	a.store = st
	a.srv = service.New(st, jwtService)
	a.api = handlers.New(a.srv, jwtService)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// bootstrapAdmin seeds the single privileged account the service starts
// with. The store holds no other admin; every later signup is a regular
// user.
func bootstrapAdmin(ctx context.Context, st *store.Store, cfg *config.Config) error {
	hash, err := (&pkgauth.HashService{}).HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	admin, err := st.CreateAdmin(ctx, cfg.AdminUsername, hash)
	if err != nil {
		return err
	}
	zap.L().Info("bootstrap administrator created", zap.String("username", admin.Username))
	return nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
