package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bierecode/backend/internal/config"
	"github.com/bierecode/backend/internal/handler"
	"github.com/bierecode/backend/internal/logging"
	"github.com/bierecode/backend/internal/repository"
	"github.com/bierecode/backend/internal/service"
	"github.com/bierecode/backend/pkg/auth"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup()
		logging.Fatal("failed to load config", "error", err)
	}
	logging.Setup()

	pool, err := repository.NewPool(context.Background(), cfg.Database.URL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	userRepo := repository.NewPgUserRepository(pool)
	sessionRepo := repository.NewPgSessionRepository(pool)

	authService := service.NewAuthService(userRepo)
	sessionService := service.NewSessionService(sessionRepo, userRepo)
	adminUserService := service.NewAdminUserService(userRepo)

	// The record store is optional. Without it the server still comes
	// up; the update and demo-day endpoints report a config error.
	var updateService service.UpdateService
	var demoService service.DemoService
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logging.Fatal("failed to connect to redis", "addr", cfg.Redis.Addr, "error", err)
		}
		updateService = service.NewUpdateService(repository.NewRedisUpdateRepository(rdb))
		demoService = service.NewDemoService(repository.NewRedisDemoRepository(rdb))
	} else {
		slog.Warn("REDIS_ADDR not set, update and demo-day storage disabled")
	}

	h := handler.New(pool, cfg.HTTP.FrontendURL)
	authHandler := handler.NewAuthHandler(authService, sessionService, cfg.HTTP.SecureCookies)
	updateHandler := handler.NewUpdateHandler(updateService)
	userHandler := handler.NewUserHandler(adminUserService)
	demoHandler := handler.NewDemoHandler(demoService)
	demoLimiter := handler.NewRateLimiter(cfg.Demo.RateLimitPerMinute)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)

	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/auth/logout", authHandler.Logout)
	mux.HandleFunc("GET /api/auth/session", authHandler.Session)

	mux.HandleFunc("GET /api/updates", updateHandler.List)
	mux.HandleFunc("POST /api/updates", updateHandler.Create)
	mux.HandleFunc("PUT /api/updates", updateHandler.Patch)
	mux.HandleFunc("PATCH /api/updates", updateHandler.Patch)
	mux.HandleFunc("DELETE /api/updates", updateHandler.Delete)

	mux.HandleFunc("GET /api/users", userHandler.List)
	mux.HandleFunc("PUT /api/users", userHandler.SetRole)
	mux.HandleFunc("PATCH /api/users", userHandler.SetRole)

	mux.HandleFunc("GET /api/demo-days", demoHandler.List)
	mux.Handle("POST /api/demo-days", demoLimiter.Middleware(http.HandlerFunc(demoHandler.Create)))

	chain := h.CORS(
		handler.SecurityHeaders(
			handler.RequestLogger(
				auth.ResolveSession(sessionService)(mux),
			),
		),
	)

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      chain,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
