package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	Portal    PortalConfig
	Checklist ChecklistConfig
	RateLimit RateLimitConfig
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

// PortalConfig points at the operations portal backend that owns the
// checklist-items store.
type PortalConfig struct {
	BaseURL         string // e.g. "http://portal:8000/api"
	AuthToken       string // portal service-account token
	CafeResource    string // resource segment, default "cafe-checklists"
	MarshalResource string // resource segment, default "marshal-checklists"
}

// ChecklistConfig tunes the synchronization engine.
type ChecklistConfig struct {
	Timezone string // park-local timezone used to resolve "today"
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/jumpnjoy/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/jumpnjoy/")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// A missing file is fine: env vars and defaults carry the config.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")

	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")

	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Portal.BaseURL = viper.GetString("portal.base_url")
	cfg.Portal.AuthToken = viper.GetString("portal.auth_token")
	cfg.Portal.CafeResource = viper.GetString("portal.cafe_resource")
	cfg.Portal.MarshalResource = viper.GetString("portal.marshal_resource")
	if baseURL := viper.GetString("portal_base_url"); baseURL != "" {
		cfg.Portal.BaseURL = baseURL
	}
	if token := viper.GetString("portal_auth_token"); token != "" {
		cfg.Portal.AuthToken = token
	}

	cfg.Checklist.Timezone = viper.GetString("checklist.timezone")

	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	if cfg.Portal.BaseURL == "" {
		return nil, fmt.Errorf("portal.base_url is required")
	}

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
	viper.SetDefault("portal.cafe_resource", "cafe-checklists")
	viper.SetDefault("portal.marshal_resource", "marshal-checklists")
	viper.SetDefault("checklist.timezone", "Europe/London")
	viper.SetDefault("rate_limit.per_min", 60)
}
