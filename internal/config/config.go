package config

import (
	"errors"
	"strings"
	"time"
)

// Config is the application configuration root.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Gemini GeminiConfig `mapstructure:"gemini"`
	Log    LogConfig    `mapstructure:"log"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// GeminiConfig holds the model provider settings. The model identifier is
// fixed at startup and not user-selectable per request.
type GeminiConfig struct {
	APIKey  string              `mapstructure:"api_key"`
	Model   string              `mapstructure:"model"`
	Options GeminiOptionsConfig `mapstructure:"options"`
}

// GeminiOptionsConfig holds generation parameters.
type GeminiOptionsConfig struct {
	Temperature     float32 `mapstructure:"temperature"`
	MaxOutputTokens int32   `mapstructure:"max_output_tokens"`
	TopP            float32 `mapstructure:"top_p"`
}

// LogConfig holds the zerolog settings.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	FilePath   string `mapstructure:"file_path"`
	TimeFormat string `mapstructure:"time_format"`
}

// Validate checks the configuration. A missing API key is fatal: the process
// must not come up serving answers it can never produce.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.New("invalid server port")
	}

	validModes := map[string]bool{"debug": true, "release": true, "test": true}
	if !validModes[c.Server.Mode] {
		return errors.New("invalid server mode, must be debug/release/test")
	}

	if strings.TrimSpace(c.Gemini.APIKey) == "" {
		return errors.New("gemini API key is required (set GEMINI_API_KEY)")
	}
	if strings.TrimSpace(c.Gemini.Model) == "" {
		return errors.New("gemini model is required")
	}

	return nil
}
