package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs, resolved once at startup.
// Services receive it (or a sub-struct) explicitly; nothing reads the
// process environment after Load returns.
type Config struct {
	Host string
	Port int
	LLM  LLMConfig
	TTS  TTSConfig
	Log  LogConfig
}

// LLMConfig configures the remote chat-completion grader. An empty APIKey
// means the AI path is disabled and every answer is graded heuristically.
type LLMConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	Timeout     time.Duration
	// RequestsPerSecond bounds outbound grading calls across all
	// concurrent quiz submissions.
	RequestsPerSecond float64
}

// TTSConfig configures speech synthesis for the voice channel. An empty
// APIKey disables synthesis; voice sessions then return text-only feedback.
type TTSConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Voice   string
	Timeout time.Duration
}

// LogConfig configures the rotating file logger.
type LogConfig struct {
	Dir        string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Load reads .env (if present) and the process environment into a Config.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Host: getEnv("SERVER_HOST", "0.0.0.0"),
		Port: getEnvInt("SERVER_PORT", 8000),
		LLM: LLMConfig{
			BaseURL:           getEnv("LLM_BASE_URL", "https://openrouter.ai/api/v1"),
			APIKey:            os.Getenv("LLM_API_KEY"),
			Model:             getEnv("LLM_MODEL", "openai/gpt-4o-mini"),
			Temperature:       getEnvFloat("LLM_TEMPERATURE", 0.3),
			Timeout:           time.Duration(getEnvInt("LLM_TIMEOUT_SECONDS", 15)) * time.Second,
			RequestsPerSecond: getEnvFloat("LLM_REQUESTS_PER_SECOND", 5),
		},
		TTS: TTSConfig{
			BaseURL: getEnv("TTS_BASE_URL", "https://api.openai.com/v1"),
			APIKey:  os.Getenv("TTS_API_KEY"),
			Model:   getEnv("TTS_MODEL", "tts-1"),
			Voice:   getEnv("TTS_VOICE", "nova"),
			Timeout: time.Duration(getEnvInt("TTS_TIMEOUT_SECONDS", 20)) * time.Second,
		},
		Log: LogConfig{
			Dir:        getEnv("LOG_DIR", "logs"),
			MaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 20),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
			MaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 30),
		},
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
