package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Gopalakrishna-Kondabolu/smart-health-chatbot/internal/alert"
	"github.com/Gopalakrishna-Kondabolu/smart-health-chatbot/internal/auth"
	"github.com/Gopalakrishna-Kondabolu/smart-health-chatbot/internal/chat"
	"github.com/Gopalakrishna-Kondabolu/smart-health-chatbot/internal/reminder"
	"github.com/Gopalakrishna-Kondabolu/smart-health-chatbot/internal/responder"
	"github.com/Gopalakrishna-Kondabolu/smart-health-chatbot/internal/risk"
	"github.com/Gopalakrishna-Kondabolu/smart-health-chatbot/internal/rules"
	"github.com/Gopalakrishna-Kondabolu/smart-health-chatbot/internal/storage"
	"github.com/Gopalakrishna-Kondabolu/smart-health-chatbot/pkg/config"
)

func main() {
	_ = godotenv.Load()

	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load configuration
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err), zap.String("path", "config.yaml"))
	}

	// Initialize storage
	var store storage.Storage
	if cfg.Database.UseInMemory {
		logger.Info("Using in-memory storage")
		store = storage.NewMemoryStorage()
	} else {
		logger.Info("Using PostgreSQL storage")
		store, err = storage.NewPostgresStorage(storage.DatabaseConfig{
			Host:        cfg.Database.Host,
			Port:        cfg.Database.Port,
			User:        cfg.Database.User,
			Password:    cfg.Database.Password,
			DBName:      cfg.Database.DBName,
			SSLMode:     cfg.Database.SSLMode,
			UseInMemory: cfg.Database.UseInMemory,
		})
		if err != nil {
			logger.Fatal("Failed to initialize storage", zap.Error(err))
		}
	}
	defer store.Close()

	// Alert notifier: Telegram when configured, log-only otherwise
	var notifier alert.Notifier
	if cfg.Alerts.Enabled && cfg.Alerts.TelegramToken != "" {
		notifier, err = alert.NewTelegramNotifier(cfg.Alerts.TelegramToken, cfg.Alerts.CareChatID, logger)
		if err != nil {
			logger.Fatal("Failed to create alert notifier", zap.Error(err))
		}
	} else {
		logger.Info("Alerts disabled, logging only")
		notifier = alert.NewLogNotifier(logger)
	}

	// Reply resolution core
	catalog := rules.NewDefaultCatalog(cfg.Rules.EmergencyKeywords)
	classifier := rules.NewClassifier(catalog)
	analyzer := risk.NewAnalyzer(cfg.Risk.Keywords)
	ai := responder.NewOpenAIResponder(
		cfg.OpenAI.APIKey,
		cfg.OpenAI.Model,
		cfg.OpenAI.MaxTokens,
		cfg.OpenAI.Temperature,
		cfg.OpenAI.Timeout,
		logger,
	)

	chatService := chat.NewService(ai, classifier, store, analyzer, notifier, logger)
	chatHandler := chat.NewHandler(chatService, logger)

	reminderService := reminder.NewService(store, logger)
	reminderHandler := reminder.NewHandler(reminderService, logger)

	scheduler := reminder.NewScheduler(store, notifier, cfg.Reminders.SweepInterval, logger)
	if err := scheduler.Start(); err != nil {
		logger.Fatal("Failed to start reminder scheduler", zap.Error(err))
	}
	defer scheduler.Stop()

	// Identity provider
	verifier := auth.NewStaticVerifier(cfg.Auth.Tokens)

	// Router
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	chat.RegisterRoutes(r, chatHandler, verifier)
	reminder.RegisterRoutes(r, reminderHandler, verifier)

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("Server listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
