package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Postgres PostgresConfig

	// External providers
	Clerk          ClerkConfig
	GoogleCalendar GoogleCalendarConfig
	Image          ImageConfig

	// Text-generation backend selection (fixed at startup)
	LLM LLMConfig

	// Planner pipeline behaviour
	Planner PlannerConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN renders the lib/pq connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type ClerkConfig struct {
	APIURL       string
	SecretKey    string
	ProfileCache int // max cached profiles
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// ImageConfig configures the txt2img enrichment backend.
type ImageConfig struct {
	BaseURL        string
	Timeout        time.Duration // hard per-request deadline
	UsePlaceholder bool          // deployment-mode switch, not an error fallback
}

// LLMConfig selects one of the interchangeable text-generation backends.
type LLMConfig struct {
	Provider string // "openai", "gemini" or "ollama"

	OpenAI OpenAIConfig
	Gemini GeminiConfig
	Ollama OllamaConfig
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OllamaConfig struct {
	BaseURL string
	Model   string
}

// PlannerConfig tunes the scheduling pipeline.
type PlannerConfig struct {
	Timezone    string        // IANA label stamped into prompts and events
	PacingDelay time.Duration // minimum gap between per-task iterations
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = expandEnvVar(viper.GetString("postgres.password"))
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")

	// Clerk
	cfg.Clerk.APIURL = viper.GetString("clerk.api_url")
	cfg.Clerk.SecretKey = expandEnvVar(viper.GetString("clerk.secret_key"))
	cfg.Clerk.ProfileCache = viper.GetInt("clerk.profile_cache")
	if clerkKey := viper.GetString("clerk_secret_key"); clerkKey != "" {
		cfg.Clerk.SecretKey = clerkKey
	}

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Image enrichment
	cfg.Image.BaseURL = viper.GetString("image.base_url")
	cfg.Image.UsePlaceholder = viper.GetBool("image.use_placeholder")
	imageTimeout, err := time.ParseDuration(viper.GetString("image.timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid image.timeout: %w", err)
	}
	cfg.Image.Timeout = imageTimeout

	// LLM backend selection
	cfg.LLM.Provider = viper.GetString("llm.provider")
	cfg.LLM.OpenAI.APIKey = expandEnvVar(viper.GetString("llm.openai.api_key"))
	cfg.LLM.OpenAI.Model = viper.GetString("llm.openai.model")
	cfg.LLM.OpenAI.BaseURL = viper.GetString("llm.openai.base_url")
	cfg.LLM.Gemini.APIKey = expandEnvVar(viper.GetString("llm.gemini.api_key"))
	cfg.LLM.Gemini.Model = viper.GetString("llm.gemini.model")
	cfg.LLM.Ollama.BaseURL = viper.GetString("llm.ollama.base_url")
	cfg.LLM.Ollama.Model = viper.GetString("llm.ollama.model")

	// Planner
	cfg.Planner.Timezone = viper.GetString("planner.timezone")
	pacing, err := time.ParseDuration(viper.GetString("planner.pacing_delay"))
	if err != nil {
		return nil, fmt.Errorf("invalid planner.pacing_delay: %w", err)
	}
	cfg.Planner.PacingDelay = pacing

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.dbname", "dayplanner")
	viper.SetDefault("postgres.sslmode", "disable")

	viper.SetDefault("clerk.api_url", "https://api.clerk.com")
	viper.SetDefault("clerk.profile_cache", 256)

	viper.SetDefault("google_calendar.calendar_id", "primary")

	viper.SetDefault("image.base_url", "http://localhost:7860")
	// txt2img can take minutes on CPU-only backends.
	viper.SetDefault("image.timeout", "150s")
	viper.SetDefault("image.use_placeholder", false)

	viper.SetDefault("llm.provider", "gemini")
	viper.SetDefault("llm.openai.model", "gpt-3.5-turbo-1106")
	viper.SetDefault("llm.gemini.model", "gemini-2.0-flash")
	viper.SetDefault("llm.ollama.base_url", "http://localhost:11434")
	viper.SetDefault("llm.ollama.model", "llama3.2")

	viper.SetDefault("planner.timezone", "Asia/Kolkata")
	viper.SetDefault("planner.pacing_delay", "300ms")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
