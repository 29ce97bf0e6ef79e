package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	defaultPort           = "8080"
	defaultBaseURL        = "https://votre-domaine.com"
	defaultSiteName       = "Votre Agence Web"
	defaultLocale         = "fr-FR"
	defaultPublicDir      = "public"
	defaultLogLevel       = "info"
	defaultEnvFile        = ".env"
	defaultRateLimitRPS   = 25.0
	defaultRateLimitBurst = 50
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	Port                 string
	BaseURL              string
	SiteName             string
	Locale               string
	PublicDir            string
	CatalogFile          string
	LogLevel             string
	ShutdownGracePeriod  time.Duration
	ReadHeaderTimeout    time.Duration
	WriteTimeout         time.Duration
	IdleTimeout          time.Duration
	EnableRequestLogging bool
	RateLimitRPS         float64
	RateLimitBurst       int
}

// yamlConfig represents the YAML configuration file structure. Pointers
// distinguish an absent key from an explicit zero.
type yamlConfig struct {
	Port                 string        `yaml:"port"`
	BaseURL              string        `yaml:"base_url"`
	SiteName             string        `yaml:"site_name"`
	Locale               string        `yaml:"locale"`
	PublicDir            string        `yaml:"public_dir"`
	CatalogFile          string        `yaml:"catalog_file"`
	LogLevel             string        `yaml:"log_level"`
	ShutdownGracePeriod  string        `yaml:"shutdown_grace_period"`
	ReadHeaderTimeout    string        `yaml:"read_header_timeout"`
	WriteTimeout         string        `yaml:"write_timeout"`
	IdleTimeout          string        `yaml:"idle_timeout"`
	EnableRequestLogging *bool         `yaml:"enable_request_logging"`
	RateLimit            yamlRateLimit `yaml:"rate_limit"`
}

// yamlRateLimit represents the rate limit section in YAML.
type yamlRateLimit struct {
	RPS   *float64 `yaml:"rps"`
	Burst *int     `yaml:"burst"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile     string
	EnvFile        string
	Port           *string
	BaseURL        *string
	PublicDir      *string
	CatalogFile    *string
	LogLevel       *string
	RateLimitRPS   *float64
	RateLimitBurst *int
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	envFile := defaultEnvFile
	if overrides != nil && overrides.EnvFile != "" {
		envFile = overrides.EnvFile
	}
	dotEnv, err := readDotEnv(envFile)
	if err != nil {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	applyEnvConfig(&cfg, envLookup(dotEnv))

	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		if err := applyYAMLConfig(&cfg, yamlCfg); err != nil {
			return Config{}, fmt.Errorf("apply YAML config: %w", err)
		}
	}

	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	if err := normalizeConfig(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		Port:                 defaultPort,
		BaseURL:              defaultBaseURL,
		SiteName:             defaultSiteName,
		Locale:               defaultLocale,
		PublicDir:            defaultPublicDir,
		LogLevel:             defaultLogLevel,
		ShutdownGracePeriod:  10 * time.Second,
		ReadHeaderTimeout:    5 * time.Second,
		WriteTimeout:         15 * time.Second,
		IdleTimeout:          60 * time.Second,
		EnableRequestLogging: true,
		RateLimitRPS:         defaultRateLimitRPS,
		RateLimitBurst:       defaultRateLimitBurst,
	}
}

// readDotEnv parses a dotenv file. A missing file yields an empty map.
func readDotEnv(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	return values, nil
}

// envLookup resolves a variable from the process environment first, then
// from the dotenv values.
func envLookup(dotEnv map[string]string) func(string) string {
	return func(key string) string {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
		return dotEnv[key]
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) error {
	setString(&cfg.Port, yamlCfg.Port)
	setString(&cfg.BaseURL, yamlCfg.BaseURL)
	setString(&cfg.SiteName, yamlCfg.SiteName)
	setString(&cfg.Locale, yamlCfg.Locale)
	setString(&cfg.PublicDir, yamlCfg.PublicDir)
	setString(&cfg.CatalogFile, yamlCfg.CatalogFile)
	setString(&cfg.LogLevel, yamlCfg.LogLevel)

	durations := []struct {
		name  string
		raw   string
		value *time.Duration
	}{
		{name: "shutdown_grace_period", raw: yamlCfg.ShutdownGracePeriod, value: &cfg.ShutdownGracePeriod},
		{name: "read_header_timeout", raw: yamlCfg.ReadHeaderTimeout, value: &cfg.ReadHeaderTimeout},
		{name: "write_timeout", raw: yamlCfg.WriteTimeout, value: &cfg.WriteTimeout},
		{name: "idle_timeout", raw: yamlCfg.IdleTimeout, value: &cfg.IdleTimeout},
	}
	for _, d := range durations {
		if d.raw == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.raw)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", d.name, d.raw, err)
		}
		*d.value = parsed
	}

	if yamlCfg.EnableRequestLogging != nil {
		cfg.EnableRequestLogging = *yamlCfg.EnableRequestLogging
	}

	if yamlCfg.RateLimit.RPS != nil {
		cfg.RateLimitRPS = *yamlCfg.RateLimit.RPS
	}

	if yamlCfg.RateLimit.Burst != nil {
		cfg.RateLimitBurst = *yamlCfg.RateLimit.Burst
	}

	return nil
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config, getenv func(string) string) {
	setString(&cfg.Port, getenv("PORT"))
	setString(&cfg.BaseURL, getenv("BASE_URL"))
	setString(&cfg.SiteName, getenv("SITE_NAME"))
	setString(&cfg.Locale, getenv("SITE_LOCALE"))
	setString(&cfg.PublicDir, getenv("PUBLIC_DIR"))
	setString(&cfg.CatalogFile, getenv("CATALOG_FILE"))
	setString(&cfg.LogLevel, getenv("LOG_LEVEL"))

	if raw := strings.TrimSpace(getenv("ENABLE_REQUEST_LOGGING")); raw != "" {
		if value, err := strconv.ParseBool(raw); err == nil {
			cfg.EnableRequestLogging = value
		}
	}

	if rps := strings.TrimSpace(getenv("RATE_LIMIT_RPS")); rps != "" {
		if value, err := strconv.ParseFloat(rps, 64); err == nil && value >= 0 {
			cfg.RateLimitRPS = value
		}
	}

	if burst := strings.TrimSpace(getenv("RATE_LIMIT_BURST")); burst != "" {
		if value, err := strconv.Atoi(burst); err == nil && value >= 0 {
			cfg.RateLimitBurst = value
		}
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.Port != nil {
		setString(&cfg.Port, *overrides.Port)
	}
	if overrides.BaseURL != nil {
		setString(&cfg.BaseURL, *overrides.BaseURL)
	}
	if overrides.PublicDir != nil {
		setString(&cfg.PublicDir, *overrides.PublicDir)
	}
	if overrides.CatalogFile != nil {
		setString(&cfg.CatalogFile, *overrides.CatalogFile)
	}
	if overrides.LogLevel != nil {
		setString(&cfg.LogLevel, *overrides.LogLevel)
	}

	if overrides.RateLimitRPS != nil && *overrides.RateLimitRPS >= 0 {
		cfg.RateLimitRPS = *overrides.RateLimitRPS
	}

	if overrides.RateLimitBurst != nil && *overrides.RateLimitBurst >= 0 {
		cfg.RateLimitBurst = *overrides.RateLimitBurst
	}
}

// normalizeConfig validates the final configuration and canonicalises the
// base URL and locale.
func normalizeConfig(cfg *Config) error {
	if cfg.RateLimitRPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be >= 0")
	}
	if cfg.RateLimitBurst < 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be >= 0")
	}
	if strings.TrimSpace(cfg.Port) == "" {
		return fmt.Errorf("port cannot be empty")
	}

	baseURL, err := parseBaseURL(cfg.BaseURL)
	if err != nil {
		return err
	}
	cfg.BaseURL = baseURL

	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		return fmt.Errorf("invalid locale %q: %w", cfg.Locale, err)
	}
	cfg.Locale = tag.String()

	return nil
}

// parseBaseURL checks that raw is an absolute http(s) URL and strips any
// trailing slash.
func parseBaseURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("base URL must be an absolute http(s) URL, got %q", raw)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return "", fmt.Errorf("base URL must not carry a query or fragment, got %q", raw)
	}
	return strings.TrimRight(u.String(), "/"), nil
}

func setString(dst *string, value string) {
	if value = strings.TrimSpace(value); value != "" {
		*dst = value
	}
}
