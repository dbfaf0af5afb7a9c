package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/fine_teaching/internal/ai"
	"github.com/Vovarama1992/fine_teaching/internal/config"
	"github.com/Vovarama1992/fine_teaching/internal/delivery"
	"github.com/Vovarama1992/fine_teaching/internal/error_notificator"
	"github.com/Vovarama1992/fine_teaching/internal/lecture"
	"github.com/Vovarama1992/fine_teaching/internal/prompts"
	"github.com/Vovarama1992/fine_teaching/internal/speech"
	"github.com/Vovarama1992/fine_teaching/internal/textrules"
	"github.com/Vovarama1992/fine_teaching/internal/upload"

	"github.com/dustin/go-humanize"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const serviceName = "fine_teaching"

func main() {

	// =========================================================================
	// ENV / LOGGER
	// =========================================================================

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var baseLogger *zap.Logger
	if cfg.AppEnv == "dev" {
		baseLogger, err = zap.NewDevelopment()
	} else {
		baseLogger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// ERROR NOTIFICATION
	// =========================================================================

	var errInfra error_notificator.Notificator = error_notificator.NewLogInfra(zl)
	if cfg.AlertsEnabled() {
		tgInfra, err := error_notificator.NewInfra(cfg.Alerts.TelegramToken, cfg.Alerts.ChatIDs)
		if err != nil {
			zl.Log(logger.LogEntry{
				Level:   "warn",
				Message: "telegram alerts disabled, falling back to log",
				Service: serviceName,
				Error:   err,
			})
		} else {
			errInfra = tgInfra
		}
	}
	errService := error_notificator.NewService(errInfra, zl)

	// =========================================================================
	// CLIENTS (STT / LLM)
	// =========================================================================

	var openAIClient *openai.Client
	if cfg.OpenAI.APIKey != "" {
		openAIClient = ai.NewOpenAI(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL)
	}

	var sttClient speech.STTClient
	switch cfg.STTBackend {
	case config.BackendWhisper:
		sttClient = speech.NewWhisperClient(cfg.Whisper.URL, cfg.Whisper.Model)
	case config.BackendDeepgram:
		sttClient = speech.NewDeepgramClient(cfg.Deepgram.APIKey, cfg.Deepgram.Model)
	default:
		sttClient = speech.NewOpenAIClient(openAIClient, cfg.OpenAI.STTModel)
	}

	var llmClient ai.Completer
	var models ai.Models
	switch cfg.LLMBackend {
	case config.BackendOllama:
		llmClient = ai.NewOllamaClient(cfg.Ollama.URL)
		models = ai.Models{Default: cfg.Ollama.Model, Korean: cfg.Ollama.ModelKo}
	default:
		llmClient = ai.NewOpenAIClient(openAIClient)
		models = ai.Models{Default: cfg.OpenAI.Model, Korean: cfg.OpenAI.ModelKo}
	}

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	store, err := upload.NewStore(cfg.TempDir, cfg.MaxUploadBytes)
	if err != nil {
		log.Fatalf("upload store: %v", err)
	}

	promptService, err := prompts.NewService(cfg.PromptsFile)
	if err != nil {
		log.Fatalf("prompts: %v", err)
	}

	speechService := speech.NewService(sttClient, cfg.STTTimeout, zl)

	aiService := ai.NewService(
		llmClient,
		models,
		promptService,
		textrules.NewPreambleService(),
		cfg.BackendTimeout,
		zl,
	)

	lectureService := lecture.NewService(
		store,
		speechService,
		aiService,
		errService,
		zl,
	)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	lectureHandler := delivery.NewLectureHandler(lectureService, cfg.MaxUploadBytes, zl)
	delivery.RegisterRoutes(r, lectureHandler)

	r.With(httputil.RecoverMiddleware).Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("pong"))
	})

	// =========================================================================
	// START SERVER
	// =========================================================================

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		msg := fmt.Sprintf("listening at %s (stt=%s, llm=%s, max upload %s)",
			addr, sttClient.Name(), llmClient.Name(), humanize.IBytes(uint64(cfg.MaxUploadBytes)))
		zl.Log(logger.LogEntry{
			Level:   "info",
			Message: msg,
			Service: serviceName,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Log(logger.LogEntry{
			Level:   "error",
			Message: "graceful shutdown failed",
			Service: serviceName,
			Error:   err,
		})
	}
	zl.Log(logger.LogEntry{Level: "info", Message: "server stopped", Service: serviceName})
}
