package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/heywood8/telegram-downloader-bot/internal/modules/link/domain"
	"github.com/heywood8/telegram-downloader-bot/internal/shared/errors"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

type Config struct {
	TelegramBotToken      string        `koanf:"telegram_bot_token"`
	TelegramAPIURL        string        `koanf:"telegram_api_url"`
	HTTPPort              string        `koanf:"http_port"`
	EnableHTTPServer      bool          `koanf:"-"`
	EnableTelegramPolling bool          `koanf:"-"`
	AppEnv                domain.AppEnv `koanf:"app_env"`
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try to load config file from various formats
	configFiles := []string{
		"config.yaml",
		"config.yml",
		"config.json",
		"config.toml",
	}

	// Use lo.Find to find the first existing config file
	configFile, found := lo.Find(configFiles, func(file string) bool {
		_, err := os.Stat(file)
		return err == nil
	})

	if found {
		var parser koanf.Parser
		ext := filepath.Ext(configFile)

		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		case ".toml":
			parser = toml.Parser()
		default:
			return nil, oops.Errorf("unsupported config file extension: %s", ext)
		}

		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, oops.With("config_file", configFile).Wrap(err)
		}
	}

	// Load environment variables (they override config file values)
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	// Set defaults
	if !k.Exists("telegram_api_url") {
		k.Set("telegram_api_url", "https://api.telegram.org")
	}
	if !k.Exists("http_port") {
		k.Set("http_port", "8080")
	}
	if !k.Exists("app_env") {
		k.Set("app_env", "production")
	}

	// Unmarshal into struct
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("context", "unmarshaling config").Wrap(err)
	}

	// Adapter switches accept true/false/1/0/yes/no from either the
	// config file or the environment; both default to enabled.
	cfg.EnableHTTPServer = ParseSwitch(k.Get("enable_http_server"), true)
	cfg.EnableTelegramPolling = ParseSwitch(k.Get("enable_telegram_polling"), true)

	// Parse AppEnv from string if needed
	if appEnvStr := k.String("app_env"); appEnvStr != "" {
		if env, err := domain.ParseAppEnv(appEnvStr); err == nil {
			cfg.AppEnv = env
		} else {
			cfg.AppEnv = domain.AppEnvProduction
		}
	} else {
		cfg.AppEnv = domain.AppEnvProduction
	}

	// Validate required fields
	if cfg.EnableTelegramPolling && cfg.TelegramBotToken == "" {
		return nil, errors.ErrMissingBotToken
	}

	return &cfg, nil
}

// ParseSwitch coerces a boolean-like config value. Unrecognized values
// fall back to the provided default.
func ParseSwitch(value any, fallback bool) bool {
	switch v := value.(type) {
	case nil:
		return fallback
	case bool:
		return v
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		default:
			return fallback
		}
	default:
		return fallback
	}
}
