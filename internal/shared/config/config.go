package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"resume-matcher/internal/shared/telemetry"
)

const defaultMaxUploadBytes = 10 << 20

// Config holds application configuration.
type Config struct {
	Host            string
	Port            string
	Env             string
	CORSAllowOrigin []string
	MaxUploadBytes  int64
	CatalogFile     string
	AWSRegion       string
	SkillMatchMode  string
	LogJSON         bool
	LogDebug        bool
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	CacheTTL        time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return loadOrWarn("")
}

// loadOrWarn falls back to defaults and env values when path cannot be read.
func loadOrWarn(path string) Config {
	cfg, err := LoadFile(path)
	if err != nil {
		telemetry.Warn("config.load_failed", map[string]any{"path": path, "err": err})
	}
	return cfg
}

// LoadFile reads configuration from the environment and, when path is set,
// from a config file. Environment variables win over file values.
func LoadFile(path string) (Config, error) {
	// Best-effort load of local env files for dev convenience.
	if files := existing(".env", "cmd/.env"); len(files) > 0 {
		_ = godotenv.Load(files...)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var fileErr error
	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			fileErr = fmt.Errorf("read config %s: %w", path, err)
		}
	}

	maxUpload := v.GetInt64("max_upload_bytes")
	if maxUpload <= 0 {
		maxUpload = defaultMaxUploadBytes
	}

	cfg := Config{
		Host:            strings.TrimSpace(v.GetString("host")),
		Port:            strings.TrimSpace(v.GetString("port")),
		Env:             normalizeEnv(v.GetString("env")),
		CORSAllowOrigin: stringList(v.Get("cors_allow_origins")),
		MaxUploadBytes:  maxUpload,
		CatalogFile:     strings.TrimSpace(v.GetString("catalog_file")),
		AWSRegion:       strings.TrimSpace(v.GetString("aws_region")),
		SkillMatchMode:  normalizeMatchMode(v.GetString("skill_match_mode")),
		LogJSON:         v.GetBool("log_json"),
		LogDebug:        v.GetBool("log_debug"),
		RedisAddr:       strings.TrimSpace(v.GetString("redis_addr")),
		RedisPassword:   v.GetString("redis_password"),
		RedisDB:         v.GetInt("redis_db"),
		CacheTTL:        v.GetDuration("cache_ttl"),
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 10 * time.Minute
	}
	return cfg, fileErr
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", "5000")
	v.SetDefault("env", "dev")
	v.SetDefault("cors_allow_origins", "http://localhost:3000,https://your-frontend-domain.com")
	v.SetDefault("max_upload_bytes", defaultMaxUploadBytes)
	v.SetDefault("catalog_file", "")
	v.SetDefault("aws_region", "us-east-1")
	v.SetDefault("skill_match_mode", "substring")
	v.SetDefault("log_json", true)
	v.SetDefault("log_debug", false)
	v.SetDefault("redis_addr", "")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("cache_ttl", "10m")
}

// stringList accepts either a comma separated string (env) or a list (config file).
func stringList(raw any) []string {
	switch val := raw.(type) {
	case string:
		return splitAndTrim(val)
	case []string:
		return trimAll(val)
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			out = append(out, fmt.Sprint(item))
		}
		return trimAll(out)
	default:
		return nil
	}
}

func splitAndTrim(raw string) []string {
	return trimAll(strings.Split(raw, ","))
}

func trimAll(parts []string) []string {
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeMatchMode(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "word", "words", "boundary":
		return "word"
	default:
		return "substring"
	}
}
