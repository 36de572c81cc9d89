package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/account"
	"taskboard/internal/application"
	"taskboard/internal/authentication"
	"taskboard/internal/config"
	"taskboard/internal/database"
	"taskboard/internal/handlers"
	"taskboard/internal/logger"
	"taskboard/internal/notification"
	"taskboard/internal/task"
)

func main() {
	cfg, err := config.LoadFromEnvironment()
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New(logger.Options{
		Level:       cfg.StringOr("logger.level", "info"),
		Development: cfg.BoolOr("logger.development", false),
	})
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zlog.Sync() }()

	if err := run(cfg, zlog); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, zlog *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	uri, err := cfg.String("mongodb.uri")
	if err != nil {
		return err
	}
	client, err := database.Connect(ctx, uri, cfg.SecondsOr("mongodb.timeout_seconds", 5*time.Second))
	if err != nil {
		return fmt.Errorf("connect mongodb: %w", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	db := client.Database(cfg.StringOr("mongodb.database", "taskboard"))
	zlog.Info("mongodb connected", zap.String("database", db.Name()))

	if err := database.EnsureIndexes(ctx, db, zlog); err != nil {
		zlog.Warn("index warning", zap.Error(err))
	}

	emailSender, smsSender, err := senders(cfg, zlog)
	if err != nil {
		return err
	}
	notifications := notification.NewService(db, emailSender, smsSender, zlog)

	settings, err := authentication.SettingsFromConfig(cfg)
	if err != nil {
		return err
	}
	auth := authentication.NewService(db, settings, notifications, zlog)
	accounts := account.NewService(db, auth, notifications, zlog)

	workers := application.NewService(application.NewWorkerManager(
		application.TemporalDialer(application.TemporalOptions{
			HostPort:  cfg.StringOr("temporal.host_port", "localhost:7233"),
			Namespace: cfg.StringOr("temporal.namespace", "default"),
		}),
		cfg.StringOr("temporal.task_queue", "taskboard"),
		zlog,
	))
	if cfg.BoolOr("temporal.enabled", false) {
		if err := workers.ConnectWorkflowServer(ctx); err != nil {
			return fmt.Errorf("connect workflow server: %w", err)
		}
		defer workers.Close()
	}

	gin.SetMode(cfg.StringOr("server.mode", gin.ReleaseMode))
	r := gin.New()
	r.Use(logger.GinMiddleware(zlog), gin.Recovery())

	handlers.RegisterRoutes(r.Group("/api"), handlers.Dependencies{
		Accounts: accounts,
		Auth:     auth,
		Tasks:    task.NewTaskService(db, zlog),
		Comments: task.NewCommentService(db, zlog),
		Ping:     func(ctx context.Context) error { return database.Ping(ctx, db) },
		Log:      zlog,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.IntOr("server.port", 8080)),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zlog.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zlog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func senders(cfg *config.Config, zlog *zap.Logger) (notification.EmailSender, notification.SMSSender, error) {
	logSender := notification.NewLogSender(zlog)

	var email notification.EmailSender = logSender
	switch provider := cfg.StringOr("mailer.provider", "log"); provider {
	case "log":
	case "sendgrid":
		key, err := cfg.String("mailer.sendgrid_api_key")
		if err != nil {
			return nil, nil, err
		}
		email = notification.NewSendGridSender(key)
	default:
		return nil, nil, fmt.Errorf("unknown mailer provider %q", provider)
	}

	var sms notification.SMSSender = logSender
	switch provider := cfg.StringOr("sms.provider", "log"); provider {
	case "log":
	case "twilio":
		sid, err := cfg.String("sms.twilio_account_sid")
		if err != nil {
			return nil, nil, err
		}
		token, err := cfg.String("sms.twilio_auth_token")
		if err != nil {
			return nil, nil, err
		}
		sms = notification.NewTwilioSender(sid, token, notification.TwilioOrigin{
			From:                cfg.StringOr("sms.twilio_from", ""),
			MessagingServiceSID: cfg.StringOr("sms.twilio_messaging_service_sid", ""),
		})
	default:
		return nil, nil, fmt.Errorf("unknown sms provider %q", provider)
	}

	return email, sms, nil
}
