package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Calendar backends.
const (
	BackendABE    = "abe"
	BackendGoogle = "google"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Calendar sources
	Calendar       CalendarConfig
	ABE            ABEConfig
	GoogleCalendar GoogleCalendarConfig

	// Voice skill
	Skill SkillConfig

	// Webhook
	Webhook WebhookConfig
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

type CalendarConfig struct {
	Backend string
	// Name is the calendar name spoken in answers, e.g. "Olin".
	Name string
}

type ABEConfig struct {
	URL            string
	Timeout        time.Duration
	SourceTimezone string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

type SkillConfig struct {
	Timezone      string
	LookaheadDays int
	Contact       string
	FeaturedLabel string
}

type WebhookConfig struct {
	Path            string
	AllowedIPs      []string
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// A .env file is applied to the environment first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/abe-voice/
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/abe-voice/")

	return load(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Calendar sources
	cfg.Calendar.Backend = strings.ToLower(strings.TrimSpace(v.GetString("calendar.backend")))
	cfg.Calendar.Name = v.GetString("calendar.name")

	cfg.ABE.URL = expandEnvVar(v, v.GetString("abe.url"))
	cfg.ABE.Timeout = v.GetDuration("abe.timeout")
	cfg.ABE.SourceTimezone = v.GetString("abe.source_timezone")

	cfg.GoogleCalendar.CredentialsPath = expandEnvVar(v, v.GetString("google_calendar.credentials_path"))
	cfg.GoogleCalendar.TokenPath = expandEnvVar(v, v.GetString("google_calendar.token_path"))
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")

	// Voice skill
	cfg.Skill.Timezone = v.GetString("skill.timezone")
	cfg.Skill.LookaheadDays = v.GetInt("skill.lookahead_days")
	cfg.Skill.Contact = v.GetString("skill.contact")
	cfg.Skill.FeaturedLabel = v.GetString("skill.featured_label")

	// Webhook
	cfg.Webhook.Path = v.GetString("webhook.path")
	cfg.Webhook.RateLimitPerMin = v.GetInt("webhook.rate_limit_per_min")
	cfg.Webhook.AllowedIPs = splitList(v.Get("webhook.allowed_ips"))

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("calendar.backend", BackendABE)
	v.SetDefault("calendar.name", "Olin")
	v.SetDefault("abe.url", "https://abe-dev.herokuapp.com")
	v.SetDefault("abe.timeout", "5s")
	v.SetDefault("abe.source_timezone", "UTC")
	v.SetDefault("google_calendar.token_path", "token.json")
	v.SetDefault("google_calendar.calendar_id", "primary")

	v.SetDefault("skill.timezone", "America/New_York")
	v.SetDefault("skill.lookahead_days", 7)
	v.SetDefault("skill.contact", "Library Overlord")
	v.SetDefault("skill.featured_label", "featured")

	v.SetDefault("webhook.path", "/webhook/alexa")
	v.SetDefault("webhook.rate_limit_per_min", 60)
}

func (cfg *Config) validate() error {
	switch cfg.Calendar.Backend {
	case BackendABE:
		if cfg.ABE.URL == "" {
			return errors.New("abe.url is required for the abe backend")
		}
		if cfg.ABE.Timeout <= 0 {
			return fmt.Errorf("abe.timeout must be positive, got %s", cfg.ABE.Timeout)
		}
	case BackendGoogle:
		if cfg.GoogleCalendar.CredentialsPath == "" {
			return errors.New("google_calendar.credentials_path is required for the google backend")
		}
	default:
		return fmt.Errorf("unknown calendar.backend %q (want %q or %q)", cfg.Calendar.Backend, BackendABE, BackendGoogle)
	}

	if cfg.Skill.LookaheadDays <= 0 {
		return fmt.Errorf("skill.lookahead_days must be positive, got %d", cfg.Skill.LookaheadDays)
	}
	if _, err := time.LoadLocation(cfg.ABE.SourceTimezone); err != nil {
		return fmt.Errorf("invalid abe.source_timezone: %w", err)
	}
	if _, err := time.LoadLocation(cfg.Skill.Timezone); err != nil {
		return fmt.Errorf("invalid skill.timezone: %w", err)
	}
	if cfg.Webhook.Path == "" || !strings.HasPrefix(cfg.Webhook.Path, "/") {
		return fmt.Errorf("webhook.path must start with /, got %q", cfg.Webhook.Path)
	}

	return nil
}

// expandEnvVar expands values in the format ${VAR_NAME}.
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}

// splitList accepts a YAML list or a comma-separated string (the env form).
func splitList(raw any) []string {
	var items []string
	switch val := raw.(type) {
	case string:
		items = strings.Split(val, ",")
	case []string:
		items = val
	case []any:
		for _, item := range val {
			items = append(items, fmt.Sprint(item))
		}
	}

	var out []string
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
