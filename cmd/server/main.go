package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/web3-freelance/internal/config"
	"github.com/ignatzorin/web3-freelance/internal/db"
	"github.com/ignatzorin/web3-freelance/internal/goroutine"
	httpRouter "github.com/ignatzorin/web3-freelance/internal/http/router"
	"github.com/ignatzorin/web3-freelance/internal/infrastructure/cache"
	"github.com/ignatzorin/web3-freelance/internal/infrastructure/persistence"
	"github.com/ignatzorin/web3-freelance/internal/interface/http/handler"
	"github.com/ignatzorin/web3-freelance/internal/logger"
	"github.com/ignatzorin/web3-freelance/internal/service"
	"github.com/ignatzorin/web3-freelance/internal/storage"
	"github.com/ignatzorin/web3-freelance/internal/usecase/access"
	"github.com/ignatzorin/web3-freelance/internal/usecase/account"
	"github.com/ignatzorin/web3-freelance/internal/usecase/chat"
	"github.com/ignatzorin/web3-freelance/internal/usecase/dispute"
	"github.com/ignatzorin/web3-freelance/internal/usecase/job"
	"github.com/ignatzorin/web3-freelance/internal/usecase/lifecycle"
	"github.com/ignatzorin/web3-freelance/internal/usecase/pick"
	"github.com/ignatzorin/web3-freelance/internal/usecase/resume"
	"github.com/ignatzorin/web3-freelance/internal/usecase/settings"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Get().Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	logger.Init(cfg.LogLevel)
	if !cfg.IsProduction() {
		logger.SetTextFormatter()
	}
	log := logger.Get()
	if cfg.DefaultJWTSecret {
		log.Warn("main: используется дефолтный JWT_SECRET, измените в production!")
	}

	// Подключение к базе и миграции.
	dbConn, err := db.NewPostgres(ctx, cfg.DatabaseURL, db.DefaultPoolOptions())
	if err != nil {
		log.Fatalf("main: ошибка подключения к базе: %v", err)
	}
	defer safeClose(dbConn)

	applied, err := db.RunMigrations(ctx, dbConn, cfg.MigrationsPath)
	if err != nil {
		log.Fatalf("main: ошибка миграций: %v", err)
	}
	if len(applied) > 0 {
		log.WithField("migrations", applied).Info("main: применены миграции")
	}

	listingCache := newCache(ctx, cfg)

	// Инициализируем вспомогательные сервисы.
	tokenManager := service.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	fileStorage, err := storage.NewFileStorage(cfg.MediaStoragePath, cfg.MaxUploadSizeMB)
	if err != nil {
		log.Fatalf("main: не удалось подготовить файловое хранилище: %v", err)
	}

	// Репозитории.
	userRepo := persistence.NewUserRepositoryAdapter(dbConn)
	jobRepo := persistence.NewJobRepositoryAdapter(dbConn)
	jobTypeRepo := persistence.NewJobTypeRepositoryAdapter(dbConn)
	pickRepo := persistence.NewPickRepositoryAdapter(dbConn)
	chatRepo := persistence.NewChatRepositoryAdapter(dbConn)
	disputeRepo := persistence.NewDisputeRepositoryAdapter(dbConn)
	settingsRepo := persistence.NewSettingsRepositoryAdapter(dbConn)

	guard := access.NewGuard(pickRepo)

	// HTTP хэндлеры.
	handlers := httpRouter.Handlers{
		Account: handler.NewAccountHandler(
			account.NewLoginUseCase(userRepo, tokenManager),
			account.NewGetUserInfoUseCase(userRepo),
			account.NewUpdateProfileUseCase(userRepo),
			resume.NewPublicResumeUseCase(userRepo, jobRepo),
		),
		Job: handler.NewJobHandler(handler.JobUseCases{
			Create:         job.NewCreateJobUseCase(jobRepo, jobTypeRepo, listingCache),
			Get:            job.NewGetJobUseCase(jobRepo),
			Delete:         job.NewDeleteJobUseCase(jobRepo, listingCache),
			List:           job.NewListJobsUseCase(jobRepo),
			ListByClient:   job.NewListClientJobsUseCase(jobRepo),
			ListFreelancer: job.NewListFreelancerJobsUseCase(jobRepo),
			Newest:         job.NewListNewestJobsUseCase(jobRepo, listingCache, cfg.CacheTTL),
			TopFreelancers: job.NewTopFreelancersUseCase(userRepo, listingCache, cfg.CacheTTL),
			JobTypes:       job.NewListJobTypesUseCase(jobTypeRepo),
		}),
		Pick: handler.NewPickHandler(
			pick.NewPickJobUseCase(jobRepo, pickRepo),
			pick.NewListPicksUseCase(jobRepo, pickRepo),
		),
		Chat: handler.NewChatHandler(
			chat.NewSendMessageUseCase(userRepo, jobRepo, chatRepo, guard),
			chat.NewListMessagesUseCase(jobRepo, chatRepo, guard),
		),
		File: handler.NewFileHandler(fileStorage, cfg.PublicFilePrefix),
		Dispute: handler.NewDisputeHandler(
			dispute.NewOpenDisputeUseCase(jobRepo, disputeRepo, listingCache),
			dispute.NewGetDisputeUseCase(jobRepo, disputeRepo),
		),
		Settings: handler.NewSettingsHandler(settings.NewPlatformFeeUseCase(settingsRepo)),
		Operator: handler.NewOperatorHandler(
			lifecycle.NewReportEventUseCase(jobRepo, userRepo, listingCache),
			lifecycle.NewGetCursorUseCase(settingsRepo),
			lifecycle.NewSaveCursorUseCase(settingsRepo),
			dispute.NewResolveDisputeUseCase(jobRepo, disputeRepo, listingCache),
		),
		Health: handler.NewHealthHandler(dbConn),
	}
	if cfg.WorkerAPIKey == "" {
		log.Warn("main: WORKER_API_KEY не задан, служебные маршруты отключены")
	}

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, handlers, httpRouter.Auth{Tokens: tokenManager, Users: userRepo})

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Завершаем сервер при получении сигнала.
	goroutine.SafeGoWithContext(ctx, "http-shutdown", func(ctx context.Context) {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("main: ошибка остановки http сервера")
		}
	})

	log.WithFields(logrus.Fields{"port": cfg.HTTPPort, "env": cfg.Env}).Info("main: HTTP сервер запущен")

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}
}

// newCache выбирает Redis, если он настроен, иначе кэш в памяти процесса.
func newCache(ctx context.Context, cfg *config.Config) cache.Cache {
	if cfg.RedisAddr == "" {
		return cache.NewMemoryCache(ctx)
	}

	client, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Get().WithError(err).Warn("main: Redis недоступен, используем кэш в памяти")
		return cache.NewMemoryCache(ctx)
	}
	goroutine.SafeGoWithContext(ctx, "redis-close", func(ctx context.Context) {
		<-ctx.Done()
		if err := client.Close(); err != nil {
			logger.Get().WithError(err).Warn("main: ошибка закрытия Redis")
		}
	})
	return cache.NewRedisCache(client, "freelance")
}

// safeClose закрывает соединение с базой.
func safeClose(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		logger.Get().WithError(err).Error("main: ошибка закрытия базы")
	}
}
