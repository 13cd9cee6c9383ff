package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultSessionSecret signs flash cookies when SESSION_SECRET is unset
const DefaultSessionSecret = "dev-secret-key-change-in-production"

// Translation and speech provider names
const (
	ProviderMyMemory = "mymemory"
	ProviderOpenAI   = "openai"
	ProviderNone     = "none"
	ProviderGoogle   = "google"
)

// Config holds all application configuration
type Config struct {
	Port           string
	Debug          bool
	SessionSecret  string
	TrustedProxies []string
	OpenAIAPIKey   string
	MigrationsPath string
	Database       DatabaseConfig
	Dictionary     DictionaryConfig
	Translation    TranslationConfig
	Speech         SpeechConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL      string
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// DictionaryConfig holds dictionary API settings
type DictionaryConfig struct {
	URL     string
	Timeout time.Duration
}

// TranslationConfig holds translation API settings
type TranslationConfig struct {
	Provider    string
	URL         string
	Email       string
	Timeout     time.Duration
	Delay       time.Duration
	MaxPerGroup int
}

// SpeechConfig holds text-to-speech settings
type SpeechConfig struct {
	Provider string
	URL      string
	Timeout  time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "5000"),
		SessionSecret:  getEnv("SESSION_SECRET", DefaultSessionSecret),
		TrustedProxies: splitList(os.Getenv("TRUSTED_PROXIES")),
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "file://migrations"),
		Database: DatabaseConfig{
			URL:      os.Getenv("DATABASE_URL"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "dictko"),
			User:     getEnv("DB_USER", "dictko"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		Dictionary: DictionaryConfig{
			URL: getEnv("DICTIONARY_API_URL", "https://api.dictionaryapi.dev/api/v2/entries/en"),
		},
		Translation: TranslationConfig{
			Provider: strings.ToLower(getEnv("TRANSLATION_PROVIDER", ProviderMyMemory)),
			URL:      getEnv("TRANSLATION_API_URL", "https://api.mymemory.translated.net"),
			Email:    os.Getenv("TRANSLATION_EMAIL"),
		},
		Speech: SpeechConfig{
			Provider: strings.ToLower(getEnv("SPEECH_PROVIDER", ProviderGoogle)),
			URL:      getEnv("SPEECH_API_URL", "https://translate.google.com"),
		},
	}

	var err error
	if cfg.Debug, err = getBool("DEBUG", false); err != nil {
		return nil, err
	}
	if cfg.Dictionary.Timeout, err = getDuration("DICTIONARY_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.Translation.Timeout, err = getDuration("TRANSLATION_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}
	if cfg.Translation.Delay, err = getDuration("TRANSLATION_DELAY", 100*time.Millisecond); err != nil {
		return nil, err
	}
	if cfg.Translation.MaxPerGroup, err = getInt("TRANSLATION_MAX_PER_GROUP", 3); err != nil {
		return nil, err
	}
	if cfg.Speech.Timeout, err = getDuration("SPEECH_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Translation.Provider {
	case ProviderMyMemory, ProviderNone:
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for TRANSLATION_PROVIDER=openai")
		}
	default:
		return fmt.Errorf("unknown TRANSLATION_PROVIDER %q", c.Translation.Provider)
	}

	switch c.Speech.Provider {
	case ProviderGoogle:
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for SPEECH_PROVIDER=openai")
		}
	default:
		return fmt.Errorf("unknown SPEECH_PROVIDER %q", c.Speech.Provider)
	}

	if c.Translation.MaxPerGroup <= 0 {
		return fmt.Errorf("TRANSLATION_MAX_PER_GROUP must be positive")
	}
	return nil
}

// DSN returns PostgreSQL connection string. DATABASE_URL wins; otherwise the
// string is built from DB_* settings when DB_PASSWORD is set. Empty means
// persistence is disabled.
func (c *Config) DSN() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	if c.Database.Password == "" {
		return ""
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

// PersistenceEnabled reports whether a database is configured
func (c *Config) PersistenceEnabled() bool {
	return c.DSN() != ""
}

// Addr returns the HTTP listen address
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
