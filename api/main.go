package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/jimiolaniyan/signup"
	"github.com/jimiolaniyan/signup/config"
	"github.com/jimiolaniyan/signup/logging"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	logger := logging.NewJSON(slog.LevelInfo)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadFromEnv(*configPath)
	if err != nil {
		logger.Error(ctx, "load config", "error", err.Error())
		os.Exit(1)
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := signup.Connect(connectCtx, cfg.MongoURI, cfg.Database)
	if err != nil {
		logger.Error(ctx, "connect to mongo", "error", err.Error())
		os.Exit(1)
	}
	defer func() {
		if err := db.Disconnect(context.Background()); err != nil {
			logger.Error(ctx, "disconnect from mongo", "error", err.Error())
		}
	}()

	accounts := signup.NewMongoAccountRepository(db.Collection(cfg.Collection))
	svc := signup.NewService(signup.NewBcryptHasher(cfg.BcryptCost), accounts)
	controller := signup.NewSignUpController(signup.NewEmailValidator(), svc, logger.With("component", "signup"))

	router := httprouter.New()
	router.Handler(http.MethodPost, "/api/signup", signup.SignUpHandler(controller))

	srv := &http.Server{Addr: cfg.Addr, Handler: router}

	idle := make(chan struct{})
	go func() {
		defer close(idle)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error(shutdownCtx, "shutdown", "error", err.Error())
		}
	}()

	logger.Info(ctx, "server started", "addr", cfg.Addr)
	if err := srv.ListenAndServe(); errors.Is(err, http.ErrServerClosed) {
		<-idle
	} else {
		logger.Error(ctx, "listen", "error", err.Error())
	}
	logger.Info(ctx, "server stopped")
}
