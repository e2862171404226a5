// Package config loads runtime configuration from a YAML file, with
// secure defaults when the file is absent.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the full runtime configuration.
type Config struct {
	Game    GameConfig   `yaml:"game"`
	Engine  EngineConfig `yaml:"engine"`
	Server  ServerConfig `yaml:"server"`
	Logging LogConfig    `yaml:"logging"`
}

// GameConfig locates the world definition.
type GameConfig struct {
	// Dir is the directory holding the game's .lua files.
	Dir string `yaml:"dir"`
}

// EngineConfig tunes gameplay behavior.
type EngineConfig struct {
	// Seed drives the deterministic RNG. 0 means derive from the clock.
	Seed int64 `yaml:"seed"`
	// Difficulty selects an actor profile: easy, normal, hard.
	Difficulty string `yaml:"difficulty"`
	// Policy is the multi-command failure policy: fail-early or best-effort.
	Policy string `yaml:"policy"`
}

// ServerConfig holds the WebSocket session server settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`

	// AllowedOrigins lists origins allowed to connect. Empty enforces
	// same-origin; "*" allows all.
	AllowedOrigins []string `yaml:"allowed_origins"`

	// MaxMessageSize is the maximum WebSocket message size in bytes.
	MaxMessageSize int64 `yaml:"max_message_size"`

	// IdleTimeoutSeconds closes sessions with no input for this long.
	IdleTimeoutSeconds int `yaml:"idle_timeout_seconds"`
}

// LogConfig controls structured logging output.
type LogConfig struct {
	Level          string `yaml:"level"`
	Format         string `yaml:"format"` // "text" or "json"
	ConsoleEnabled bool   `yaml:"console_enabled"`
	FileEnabled    bool   `yaml:"file_enabled"`
	FilePath       string `yaml:"file_path"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxBackups int    `yaml:"file_max_backups"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Game: GameConfig{Dir: "games/dungeon"},
		Engine: EngineConfig{
			Difficulty: "normal",
			Policy:     "fail-early",
		},
		Server: ServerConfig{
			Addr:               ":8080",
			AllowedOrigins:     []string{},
			MaxMessageSize:     4096,
			IdleTimeoutSeconds: 600,
		},
		Logging: LogConfig{
			Level:          "INFO",
			Format:         "text",
			ConsoleEnabled: true,
			FilePath:       "logs/dungeon.log",
			FileMaxSizeMB:  10,
			FileMaxBackups: 3,
			FileMaxAgeDays: 28,
		},
	}
}

// Load reads configuration from a YAML file. A missing file yields the
// defaults; a malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return Default(), fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// IsOriginAllowed checks a WebSocket origin against the allow list.
// An empty list enforces same-origin.
func (c *ServerConfig) IsOriginAllowed(origin, requestHost string) bool {
	if len(c.AllowedOrigins) == 0 {
		return sameOrigin(origin, requestHost)
	}
	for _, allowed := range c.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}

func sameOrigin(origin, requestHost string) bool {
	origin = strings.TrimPrefix(origin, "http://")
	origin = strings.TrimPrefix(origin, "https://")
	origin = strings.TrimPrefix(origin, "ws://")
	origin = strings.TrimPrefix(origin, "wss://")
	return origin == requestHost
}
