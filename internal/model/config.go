package model

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	// Addr is the listen address (e.g., ":4000").
	Addr string `mapstructure:"addr" yaml:"addr"`

	// FrontendOrigin is the browser origin allowed to call the API with
	// credentials.
	FrontendOrigin string `mapstructure:"frontend_origin" yaml:"frontend_origin"`

	ReadTimeout  time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`

	// SecureCookies sets the Secure flag on the auth cookie.
	SecureCookies bool `mapstructure:"secure_cookies" yaml:"secure_cookies"`
}

// DatabaseConfig holds persistence settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// AIConfig holds settings for the suggestion pipeline's two model
// endpoints.
type AIConfig struct {
	// LocalURL is the local inference endpoint that accepts {"prompt": ...}.
	LocalURL     string        `mapstructure:"local_url" yaml:"local_url"`
	LocalTimeout time.Duration `mapstructure:"local_timeout" yaml:"local_timeout"`

	// CloudAPIKey enables the cloud fallback. Empty means the fallback is
	// not configured and fails when reached.
	CloudAPIKey  string        `mapstructure:"cloud_api_key" yaml:"cloud_api_key"`
	CloudModel   string        `mapstructure:"cloud_model" yaml:"cloud_model"`
	CloudTimeout time.Duration `mapstructure:"cloud_timeout" yaml:"cloud_timeout"`
}

// AuthConfig holds token and bootstrap account settings.
type AuthConfig struct {
	JWTSecret     string        `mapstructure:"jwt_secret" yaml:"jwt_secret"`
	TokenTTL      time.Duration `mapstructure:"token_ttl" yaml:"token_ttl"`
	AdminEmail    string        `mapstructure:"admin_email" yaml:"admin_email"`
	AdminPassword string        `mapstructure:"admin_password" yaml:"admin_password"`
}

// LogConfig holds logger settings. An empty File logs to stderr only.
type LogConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	File       string `mapstructure:"file" yaml:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" yaml:"max_age_days"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Server   ServerConfig   `mapstructure:"server" yaml:"server"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	AI       AIConfig       `mapstructure:"ai" yaml:"ai"`
	Auth     AuthConfig     `mapstructure:"auth" yaml:"auth"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
}

// envPrefix is prepended to every environment override, e.g.
// SMARTTASK_AI_LOCAL_URL for ai.local_url.
const envPrefix = "SMARTTASK"

// ConfigDir returns ~/.config/smarttask, or the working directory when the
// home directory cannot be resolved.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "smarttask")
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/smarttask/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Addr:           ":4000",
			FrontendOrigin: "http://localhost:5173",
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   120 * time.Second,
		},
		Database: DatabaseConfig{
			Path: filepath.Join(ConfigDir(), "smarttask.db"),
		},
		AI: AIConfig{
			LocalURL:     "http://localhost:8001/suggest",
			LocalTimeout: 30 * time.Second,
			CloudModel:   "gemini-2.5-flash",
			CloudTimeout: 60 * time.Second,
		},
		Auth: AuthConfig{
			TokenTTL: 7 * 24 * time.Hour,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := defaultAppConfig()

	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.frontend_origin", d.Server.FrontendOrigin)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	v.SetDefault("server.secure_cookies", false)
	v.SetDefault("database.path", d.Database.Path)
	v.SetDefault("ai.local_url", d.AI.LocalURL)
	v.SetDefault("ai.local_timeout", d.AI.LocalTimeout)
	v.SetDefault("ai.cloud_api_key", "")
	v.SetDefault("ai.cloud_model", d.AI.CloudModel)
	v.SetDefault("ai.cloud_timeout", d.AI.CloudTimeout)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", d.Auth.TokenTTL)
	v.SetDefault("auth.admin_email", "")
	v.SetDefault("auth.admin_password", "")
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", d.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age_days", d.Log.MaxAgeDays)
}

// LoadConfig reads configuration from the given YAML file path using Viper
// and applies environment overrides. A missing file is not an error: the
// defaults plus environment are used instead.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unprefixed names used by earlier deployments.
	if err := v.BindEnv("ai.cloud_api_key", envPrefix+"_AI_CLOUD_API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("binding env: %w", err)
	}
	if err := v.BindEnv("auth.jwt_secret", envPrefix+"_AUTH_JWT_SECRET", "JWT_SECRET"); err != nil {
		return nil, fmt.Errorf("binding env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		_, pathErr := err.(*os.PathError)
		if !notFound && !pathErr {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.Database.Path = expandHome(cfg.Database.Path)
	cfg.Log.File = expandHome(cfg.Log.File)

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed. Secrets are not written; they
// belong in the environment or the keyring.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	ai := cfg.AI
	ai.CloudAPIKey = ""
	auth := cfg.Auth
	auth.JWTSecret = ""
	auth.AdminPassword = ""

	v.Set("server", cfg.Server)
	v.Set("database", cfg.Database)
	v.Set("ai", ai)
	v.Set("auth", auth)
	v.Set("log", cfg.Log)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
