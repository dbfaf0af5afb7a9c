package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendOpenAI   = "openai"
	BackendLocal    = "local"
	BackendWhisper  = "whisper"
	BackendDeepgram = "deepgram"
	BackendOllama   = "ollama"
)

type Config struct {
	Port   string
	AppEnv string

	STTBackend string
	LLMBackend string

	OpenAI   OpenAIConfig
	Whisper  WhisperConfig
	Deepgram DeepgramConfig
	Ollama   OllamaConfig

	TempDir        string
	MaxUploadBytes int64
	BackendTimeout time.Duration
	STTTimeout     time.Duration
	AllowedOrigins []string
	PromptsFile    string

	Alerts AlertConfig
}

type OpenAIConfig struct {
	APIKey   string
	BaseURL  string
	Model    string
	ModelKo  string
	STTModel string
}

type WhisperConfig struct {
	URL   string
	Model string
}

type DeepgramConfig struct {
	APIKey string
	Model  string
}

type OllamaConfig struct {
	URL     string
	Model   string
	ModelKo string
}

type AlertConfig struct {
	TelegramToken string
	ChatIDs       []int64
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	c := &Config{
		Port:   getenv("PORT"),
		AppEnv: getenv("APP_ENV"),

		STTBackend: strings.ToLower(strings.TrimSpace(getenv("STT_BACKEND"))),
		LLMBackend: strings.ToLower(strings.TrimSpace(getenv("LLM_BACKEND"))),

		OpenAI: OpenAIConfig{
			APIKey:   getenv("OPENAI_API_KEY"),
			BaseURL:  getenv("OPENAI_BASE_URL"),
			Model:    getenv("OPENAI_MODEL"),
			ModelKo:  getenv("OPENAI_MODEL_KO"),
			STTModel: getenv("OPENAI_STT_MODEL"),
		},
		Whisper: WhisperConfig{
			URL:   getenv("WHISPER_URL"),
			Model: getenv("WHISPER_MODEL"),
		},
		Deepgram: DeepgramConfig{
			APIKey: getenv("DEEPGRAM_API_KEY"),
			Model:  getenv("DEEPGRAM_MODEL"),
		},
		Ollama: OllamaConfig{
			URL:     getenv("OLLAMA_URL"),
			Model:   getenv("OLLAMA_MODEL"),
			ModelKo: getenv("OLLAMA_MODEL_KO"),
		},

		TempDir:     getenv("TEMP_DIR"),
		PromptsFile: getenv("PROMPTS_FILE"),
		Alerts: AlertConfig{
			TelegramToken: getenv("ALERT_TELEGRAM_TOKEN"),
		},
	}

	backend := strings.ToLower(strings.TrimSpace(getenv("BACKEND")))
	if backend == "" {
		backend = BackendOpenAI
	}
	if backend != BackendOpenAI && backend != BackendLocal {
		return nil, fmt.Errorf("BACKEND must be %q or %q, got %q", BackendOpenAI, BackendLocal, backend)
	}
	if c.STTBackend == "" {
		c.STTBackend = BackendOpenAI
		if backend == BackendLocal {
			c.STTBackend = BackendWhisper
		}
	}
	if c.LLMBackend == "" {
		c.LLMBackend = BackendOpenAI
		if backend == BackendLocal {
			c.LLMBackend = BackendOllama
		}
	}

	if v := getenv("MAX_UPLOAD_MB"); v != "" {
		mb, err := strconv.ParseInt(v, 10, 64)
		if err != nil || mb <= 0 {
			return nil, fmt.Errorf("MAX_UPLOAD_MB must be a positive integer, got %q", v)
		}
		c.MaxUploadBytes = mb << 20
	}

	var err error
	if c.BackendTimeout, err = positiveDuration(getenv, "BACKEND_TIMEOUT"); err != nil {
		return nil, err
	}
	if c.STTTimeout, err = positiveDuration(getenv, "STT_TIMEOUT"); err != nil {
		return nil, err
	}

	c.AllowedOrigins = splitList(getenv("CORS_ALLOWED_ORIGINS"))

	for _, s := range splitList(getenv("ALERT_TELEGRAM_CHAT_IDS")) {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ALERT_TELEGRAM_CHAT_IDS: invalid chat id %q", s)
		}
		c.Alerts.ChatIDs = append(c.Alerts.ChatIDs, id)
	}

	c.setDefaults()

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) setDefaults() {
	if c.Port == "" {
		c.Port = "8000"
	}
	if c.AppEnv == "" {
		c.AppEnv = "prod"
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4o-mini"
	}
	if c.OpenAI.STTModel == "" {
		c.OpenAI.STTModel = "whisper-1"
	}
	if c.Whisper.URL == "" {
		c.Whisper.URL = "http://localhost:8387"
	}
	if c.Whisper.Model == "" {
		c.Whisper.Model = "medium"
	}
	if c.Deepgram.Model == "" {
		c.Deepgram.Model = "nova-2"
	}
	if c.Ollama.URL == "" {
		c.Ollama.URL = "http://localhost:11434"
	}
	if c.Ollama.Model == "" {
		c.Ollama.Model = "llama3.1"
	}
	if c.TempDir == "" {
		c.TempDir = filepath.Join(os.TempDir(), "fine_teaching")
	}
	if c.MaxUploadBytes == 0 {
		c.MaxUploadBytes = 200 << 20
	}
	if c.BackendTimeout == 0 {
		c.BackendTimeout = 120 * time.Second
	}
	// Transcribing a lecture-length upload takes far longer than a completion.
	if c.STTTimeout == 0 {
		c.STTTimeout = 30 * time.Minute
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
}

func (c *Config) validate() error {
	switch c.STTBackend {
	case BackendOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is not set (STT_BACKEND=%s)", c.STTBackend)
		}
	case BackendDeepgram:
		if c.Deepgram.APIKey == "" {
			return fmt.Errorf("DEEPGRAM_API_KEY is not set (STT_BACKEND=%s)", c.STTBackend)
		}
	case BackendWhisper:
	default:
		return fmt.Errorf("unknown STT_BACKEND %q", c.STTBackend)
	}

	switch c.LLMBackend {
	case BackendOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is not set (LLM_BACKEND=%s)", c.LLMBackend)
		}
	case BackendOllama:
	default:
		return fmt.Errorf("unknown LLM_BACKEND %q", c.LLMBackend)
	}
	return nil
}

// AlertsEnabled reports whether Telegram alerting is fully configured.
func (c *Config) AlertsEnabled() bool {
	return c.Alerts.TelegramToken != "" && len(c.Alerts.ChatIDs) > 0
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// positiveDuration reads key as a time.Duration; unset yields zero.
func positiveDuration(getenv func(string) string, key string) (time.Duration, error) {
	v := getenv(key)
	if v == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration, got %q", key, v)
	}
	return d, nil
}
