package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"payment-reconciler/config"
	apidocs "payment-reconciler/docs/api"
	"payment-reconciler/internal/adapter/billing"
	"payment-reconciler/internal/adapter/email"
	httpHandler "payment-reconciler/internal/adapter/http/handler"
	pgStorage "payment-reconciler/internal/adapter/storage/postgres"
	redisStorage "payment-reconciler/internal/adapter/storage/redis"
	"payment-reconciler/internal/core/domain"
	"payment-reconciler/internal/core/ports"
	"payment-reconciler/internal/service"
	"payment-reconciler/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("starting payment reconciler")

	ctx := context.Background()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgresql")
	}
	defer pool.Close()
	log.Info().Msg("postgresql connected")

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()
	log.Info().Msg("redis connected")

	// Repositories
	eventRepo := pgStorage.NewEventRepo(pool)
	userRepo := pgStorage.NewUserRepo(pool)
	expertRepo := pgStorage.NewExpertRepo(pool)
	subRepo := pgStorage.NewSubscriptionRepo(pool)
	paymentRepo := pgStorage.NewPaymentHistoryRepo(pool)
	txRepo := pgStorage.NewTransactionRepo(pool)
	productRepo := pgStorage.NewProductRepo(pool)
	payoutRepo := pgStorage.NewPayoutRepo(pool)
	transferRepo := pgStorage.NewTransferRepo(pool)
	notificationRepo := pgStorage.NewNotificationRepo(pool)
	auditRepo := pgStorage.NewAuditRepo(pool)

	// Redis stores
	processedCache := redisStorage.NewProcessedCache(rdb)
	sendLock := redisStorage.NewSendLock(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Core services
	recipients, err := service.NewAESRecipientCipher(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize recipient cipher")
	}
	hashSvc := service.NewArgon2HashService(service.DefaultArgon2Params)
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	verifier := service.NewStripeSignatureVerifier(cfg.Stripe.WebhookSecret, cfg.Stripe.SignatureTolerance)

	var lookup ports.BillingLookup
	if cfg.Stripe.SecretKey != "" {
		lookup = billing.NewStripeLookup(cfg.Stripe.SecretKey)
	} else {
		log.Warn().Msg("stripe secret key not set, partial payloads will not be completed")
	}

	var sender ports.EmailSender
	if cfg.Email.BrevoAPIKey != "" {
		sender = email.NewBrevoSender(cfg.Email.BrevoAPIKey, cfg.Email.SenderEmail, cfg.Email.SenderName, logger.Component(log, "email"))
	} else {
		log.Warn().Msg("brevo api key not set, emails will only be logged")
		sender = email.NewLogSender(logger.Component(log, "email"))
	}

	templates := make(map[domain.NotificationKind]int64, len(cfg.Notification.Templates))
	for kind, id := range cfg.Notification.Templates {
		templates[domain.NotificationKind(kind)] = id
	}

	// Reconciliation services
	gate := service.NewNotificationGate(notificationRepo, sendLock, recipients, cfg.Notification.LockTTL, logger.Component(log, "notification_gate"))
	notifier := service.NewNotifier(gate, sender, templates, logger.Component(log, "notifier"))
	resolver := service.NewEntityResolver(userRepo, expertRepo, lookup, logger.Component(log, "resolver"))
	ledger := service.NewEventLedger(eventRepo, processedCache, cfg.Webhook.ClaimLease, cfg.Webhook.ProcessedTTL, logger.Component(log, "event_ledger"))

	subscriptions := service.NewSubscriptionService(
		subRepo,
		paymentRepo,
		resolver,
		lookup,
		notifier,
		cfg.Notification.TrialWindow,
		cfg.Notification.RenewalWindow,
		logger.Component(log, "subscriptions"),
	)
	marketplace := service.NewMarketplaceService(txRepo, productRepo, resolver, notifier, logger.Component(log, "marketplace"))
	accounts := service.NewAccountService(expertRepo, resolver, logger.Component(log, "accounts"))
	payouts := service.NewPayoutService(payoutRepo, transferRepo, resolver, notifier, logger.Component(log, "payouts"))

	dispatcher := service.NewDispatcher(
		ledger,
		subscriptions,
		marketplace,
		accounts,
		payouts,
		cfg.Webhook.HandlerTimeout,
		logger.Component(log, "dispatcher"),
	)

	adminSvc := service.NewAdminService(
		cfg.Admin.Username,
		cfg.Admin.PasswordHash,
		hashSvc,
		tokenSvc,
		eventRepo,
		payoutRepo,
		transferRepo,
		txRepo,
	)
	auditSvc := service.NewAuditService(auditRepo, logger.Component(log, "audit"))

	httpHandler.SetSwaggerSpec(apidocs.OpenAPI)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Verifier:         verifier,
		Dispatcher:       dispatcher,
		AdminSvc:         adminSvc,
		TokenSvc:         tokenSvc,
		RateLimitStore:   rateLimitStore,
		HealthCheckers:   []ports.HealthChecker{pgStorage.NewHealthCheck(pool), redisStorage.NewHealthCheck(rdb)},
		AuditSvc:         auditSvc,
		MaxBodyBytes:     cfg.Webhook.MaxBodyBytes,
		WebhookRateLimit: cfg.Webhook.RateLimit,
		Logger:           log,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}
