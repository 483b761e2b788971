package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	listing_api_client "listing-query-service/internal/adapters/listing_api_client"
	logger_adapter "listing-query-service/internal/adapters/logger"
	"listing-query-service/internal/adapters/rest"
	"listing-query-service/internal/adapters/resultstore"
	"listing-query-service/internal/configs"
	"listing-query-service/internal/contextkeys"
	"listing-query-service/internal/core/domain"
	"listing-query-service/internal/core/port"
	"listing-query-service/internal/core/usecase"
	fluentlogger "listing-query-service/pkg/fluent_logger"

	"github.com/fluent/fluent-logger-golang/fluent"
)

type App struct {
	config    *configs.AppConfig
	apiServer *rest.Server

	results        *resultstore.InMemoryResultStore
	loadListingsUC *usecase.LoadListingsUseCase
	loadFeaturedUC *usecase.LoadFeaturedUseCase
	loadSnapshotUC *usecase.LoadCategorySnapshotUseCase

	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false, // текстовый формат
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	// Добавляем Fluent Bit логгер, если он включен в конфигурации
	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName, // Используем имя приложения как префикс
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	// Создаем наш композитный логгер
	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	// --- 2. СОЗДАЕМ БАЗОВЫЙ ЛОГГЕР ПРИЛОЖЕНИЯ С КОНТЕКСТОМ ---
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 3. АДАПТЕРЫ ---
	// Кэш результатов живет ровно одну сессию приложения: создается здесь,
	// умирает вместе с процессом. Никакого глобального состояния.
	results := resultstore.NewInMemoryResultStore()
	results.Subscribe(func(slot domain.Slot) {
		appLogger.Debug("Result slot updated", port.Fields{"slot": slot})
	})

	backendClient := listing_api_client.NewListingAPIClient(
		appConfig.ListingAPI.URL,
		time.Duration(appConfig.ListingAPI.TimeoutSeconds)*time.Second,
	)
	appLogger.Info("All service adapters initialized.", nil)

	// --- 4. ИНИЦИАЛИЗАЦИЯ USE CASES (ядра бизнес-логики) ---
	loadListingsUC := usecase.NewLoadListingsUseCase(backendClient, results)
	loadFeaturedUC := usecase.NewLoadFeaturedUseCase(backendClient, results)
	loadSnapshotUC := usecase.NewLoadCategorySnapshotUseCase(backendClient, results)
	getFiltersUC := usecase.NewGetActiveFiltersUseCase(results)

	// REST API Server
	apiHandlers := rest.NewListingsHandler(loadListingsUC, loadFeaturedUC, loadSnapshotUC, getFiltersUC)
	apiServer := rest.NewServer(appConfig.Rest.PORT, apiHandlers, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	// --- 5. Собираем приложение ---
	application := &App{
		config:         appConfig,
		apiServer:      apiServer,
		results:        results,
		loadListingsUC: loadListingsUC,
		loadFeaturedUC: loadFeaturedUC,
		loadSnapshotUC: loadSnapshotUC,

		fluentClient: fluentClient,
		logger:       appLogger,
	}

	return application, nil
}

// warmup прогревает кэш на старте: подборка, поиск с дефолтными фильтрами
// и снапшоты категорийных страниц. Неудачи здесь не фатальны - первый же
// запрос пользователя повторит загрузку.
func (a *App) warmup(ctx context.Context) {
	warmupLogger := a.logger.WithFields(port.Fields{"component": "warmup"})
	ctx = contextkeys.ContextWithLogger(ctx, warmupLogger)

	warmupLogger.Info("Warming up result cache...", nil)

	a.loadFeaturedUC.Execute(ctx)
	a.loadListingsUC.Execute(ctx, a.results.ActiveFilters())
	a.loadSnapshotUC.Execute(ctx)

	warmupLogger.Info("Result cache warmup finished", nil)
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	// Создаем единый контекст для всего приложения для управления graceful shutdown
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Логируем в stdout, так как fluent может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	// Прогреваем кэш в фоне, не задерживая старт сервера.
	go a.warmup(appCtx)

	// Ожидание сигнала на завершение или ошибки от одного из компонентов
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	case err := <-serverErrors:
		a.logger.Error("Server failed to start, shutting down", err, nil)
	}

	// Инициируем graceful shutdown, отменяя главный контекст
	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		// Возвращаем безопасное значение по умолчанию и логируем предупреждение
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
