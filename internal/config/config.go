// Package config loads uibuilder settings from defaults, an optional
// uibuilder.yaml, .env files and the environment.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mj1618/uibuilder/internal/errors"
)

// Config is the full uibuilder configuration.
type Config struct {
	Gemini   GeminiConfig   `mapstructure:"gemini"`
	Figma    FigmaConfig    `mapstructure:"figma"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Generate GenerateConfig `mapstructure:"generate"`
}

// GeminiConfig configures the image analysis backend.
type GeminiConfig struct {
	APIKey            string        `mapstructure:"api_key"`
	Model             string        `mapstructure:"model"               validate:"required"`
	RequestsPerMinute int           `mapstructure:"requests_per_minute" validate:"gte=0"`
	Timeout           time.Duration `mapstructure:"timeout"             validate:"gt=0"`
}

// FigmaConfig configures the Figma file client.
type FigmaConfig struct {
	Token   string `mapstructure:"token"`
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
}

// AnalysisConfig controls caching and fallback of analysis results.
type AnalysisConfig struct {
	CacheSize int  `mapstructure:"cache_size" validate:"gte=0"`
	Fallback  bool `mapstructure:"fallback"`
}

// ServerConfig configures the REST and MCP HTTP listeners.
type ServerConfig struct {
	Port int `mapstructure:"port" validate:"gt=0,lte=65535"`
}

// LogConfig configures the logger.
type LogConfig struct {
	JSON  bool   `mapstructure:"json"`
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
}

// GenerateConfig holds defaults for the generate command.
type GenerateConfig struct {
	Framework string `mapstructure:"framework" validate:"oneof=react angular flutter html"`
	Format    string `mapstructure:"format"    validate:"oneof=json code"`
}

// EnvPrefix is the prefix for uibuilder environment variables.
const EnvPrefix = "UIBUILDER"

// dotenvFiles are loaded in order; earlier files win because godotenv never
// overrides variables that are already set.
var dotenvFiles = []string{".env.local", ".env"}

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("gemini.requests_per_minute", 15)
	v.SetDefault("gemini.timeout", "60s")

	v.SetDefault("figma.base_url", "https://api.figma.com/v1")

	v.SetDefault("analysis.cache_size", 128)
	v.SetDefault("analysis.fallback", false)

	v.SetDefault("server.port", 3001)

	v.SetDefault("log.json", false)
	v.SetDefault("log.level", "warn")

	v.SetDefault("generate.framework", "react")
	v.SetDefault("generate.format", "code")
}

// BindEnvVars binds secrets to the variable names used by the web frontend
// in addition to the UIBUILDER_ prefixed ones.
func BindEnvVars(v *viper.Viper) {
	_ = v.BindEnv("gemini.api_key", "UIBUILDER_GEMINI_API_KEY", "GEMINI_API_KEY", "VITE_GEMINI_API_KEY")
	_ = v.BindEnv("figma.token", "UIBUILDER_FIGMA_TOKEN", "FIGMA_API_KEY", "VITE_FIGMA_API_KEY")
	_ = v.BindEnv("server.port", "UIBUILDER_SERVER_PORT", "PORT")
}

// New builds a Viper instance with defaults, env binding and, when found, a
// config file. An explicit path must exist; otherwise uibuilder.yaml is
// searched in the working directory, $XDG_CONFIG_HOME/uibuilder and
// ~/.config/uibuilder.
func New(path string) (*viper.Viper, error) {
	loadDotenv()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	BindEnvVars(v)
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config file %s", path)
		}
		return v, nil
	}

	v.SetConfigName("uibuilder")
	v.SetConfigType("yaml")
	for _, dir := range searchDirs() {
		v.AddConfigPath(dir)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config file")
		}
	}
	return v, nil
}

// Load reads and validates the configuration.
func Load(path string) (*Config, error) {
	v, err := New(path)
	if err != nil {
		return nil, err
	}
	return FromViper(v)
}

// FromViper unmarshals and validates configuration from v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.WithHint(
			errors.Wrap(err, "config validation failed"),
			"check uibuilder.yaml and UIBUILDER_* environment variables")
	}
	return nil
}

// RequireGemini returns ErrNotConfigured when no Gemini API key is set.
func (c *Config) RequireGemini() error {
	if c.Gemini.APIKey == "" {
		return errors.WithHint(
			errors.Wrap(errors.ErrNotConfigured, "gemini api key is not set"),
			"set GEMINI_API_KEY (or UIBUILDER_GEMINI_API_KEY) in the environment or .env.local")
	}
	return nil
}

// RequireFigma returns ErrNotConfigured when no Figma token is set.
func (c *Config) RequireFigma() error {
	if c.Figma.Token == "" {
		return errors.WithHint(
			errors.Wrap(errors.ErrNotConfigured, "figma token is not set"),
			"set FIGMA_API_KEY (or UIBUILDER_FIGMA_TOKEN) in the environment or .env.local")
	}
	return nil
}

func loadDotenv() {
	for _, f := range dotenvFiles {
		if _, err := os.Stat(f); err == nil {
			_ = godotenv.Load(f)
		}
	}
}

func searchDirs() []string {
	dirs := []string{"."}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "uibuilder"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "uibuilder"))
	}
	return dirs
}
