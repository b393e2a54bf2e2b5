// Package config resolves runtime settings from defaults, an optional
// config.yaml, a .env file and ROBO_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Makepad-fr/robo/internal/credentials"
)

const (
	envPrefix = "ROBO"

	defaultModel   = "gemini-2.5-flash"
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	defaultTimeout = 90 * time.Second
	defaultDirName = ".robo"
)

// ModelConfig selects the generation endpoint.
type ModelConfig struct {
	Name        string        `mapstructure:"name"`
	BaseURL     string        `mapstructure:"base_url"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Temperature float64       `mapstructure:"temperature"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Config holds the resolved settings. The API key is not a field; it is
// looked up on every generation through Credential.
type Config struct {
	DataDir string      `mapstructure:"data_dir"`
	Theme   string      `mapstructure:"theme"`
	Model   ModelConfig `mapstructure:"model"`
	Log     LogConfig   `mapstructure:"log"`

	v   *viper.Viper
	log *zap.Logger
}

// Load reads configuration from the process environment and disk.
func Load() (*Config, error) {
	loadEnvFiles()
	return LoadWith(viper.New())
}

// LoadWith resolves configuration on v. Tests pass a fresh viper.
func LoadWith(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("theme", "classic")
	v.SetDefault("model.name", defaultModel)
	v.SetDefault("model.base_url", defaultBaseURL)
	v.SetDefault("model.timeout", defaultTimeout)
	v.SetDefault("model.temperature", 0.7)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	if err := v.BindEnv("api_key", "ROBO_API_KEY", "GEMINI_API_KEY", "API_KEY"); err != nil {
		return nil, fmt.Errorf("bind api key env: %w", err)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(expandHome(v.GetString("data_dir")))
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.DataDir = expandHome(cfg.DataDir)
	cfg.v = v
	cfg.log = zap.NewNop()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.DataDir) == "" {
		return fmt.Errorf("data_dir is empty")
	}
	if strings.TrimSpace(cfg.Model.Name) == "" {
		return fmt.Errorf("model.name is empty")
	}
	if cfg.Model.Timeout < 0 {
		return fmt.Errorf("model.timeout must not be negative")
	}
	return nil
}

// Credential returns the API key, read now: environment / config file
// first, then the saved credentials file. Empty means none is configured.
func (c *Config) Credential() string {
	if c.v != nil {
		if key := strings.TrimSpace(c.v.GetString("api_key")); key != "" {
			return key
		}
	}
	info, err := credentials.Load(c.DataDir)
	if err != nil {
		c.logger().Warn("credentials file unreadable",
			zap.String("path", credentials.Path(c.DataDir)), zap.Error(err))
		return ""
	}
	if info == nil {
		return ""
	}
	return info.APIKey
}

// SetLogger reports credential problems to l. Config is loaded before the
// logger exists, so this is wired afterwards.
func (c *Config) SetLogger(l *zap.Logger) {
	if l != nil {
		c.log = l
	}
}

func (c *Config) logger() *zap.Logger {
	if c.log == nil {
		return zap.NewNop()
	}
	return c.log
}

// CredentialSource names where Credential found the key.
func (c *Config) CredentialSource() string {
	if c.v != nil && strings.TrimSpace(c.v.GetString("api_key")) != "" {
		return "env"
	}
	if info, err := credentials.Load(c.DataDir); err == nil && info != nil && info.APIKey != "" {
		return "file"
	}
	return ""
}

// Temperature as the chat model wants it.
func (c *Config) Temperature() *float32 {
	t := float32(c.Model.Temperature)
	return &t
}

// StoreDir holds the key-value files (history).
func (c *Config) StoreDir() string { return filepath.Join(c.DataDir, "store") }

// LogPath is the log file.
func (c *Config) LogPath() string { return filepath.Join(c.DataDir, "logs", "robo.log") }

// ExportDir is where the TUI writes Markdown and print exports.
func (c *Config) ExportDir() string {
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return c.DataDir
}

func loadEnvFiles() {
	paths := []string{".env"}
	if dir := defaultDataDir(); dir != "" {
		paths = append(paths, filepath.Join(expandHome(dir), ".env"))
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			// existing environment variables win
			_ = godotenv.Load(p)
		}
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultDirName
	}
	return filepath.Join(home, defaultDirName)
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
