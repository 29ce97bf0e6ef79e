package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var configEnvKeys = []string{
	"PORT", "BASE_URL", "SITE_NAME", "SITE_LOCALE", "PUBLIC_DIR", "CATALOG_FILE",
	"LOG_LEVEL", "ENABLE_REQUEST_LOGGING", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvKeys {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func noEnvFile(t *testing.T) *CLIOverrides {
	t.Helper()
	return &CLIOverrides{EnvFile: filepath.Join(t.TempDir(), "missing.env")}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(noEnvFile(t))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.BaseURL != defaultBaseURL {
		t.Fatalf("expected default base URL, got %s", cfg.BaseURL)
	}
	if cfg.Locale != "fr-FR" {
		t.Fatalf("expected fr-FR locale, got %s", cfg.Locale)
	}
	if cfg.PublicDir != defaultPublicDir {
		t.Fatalf("expected public dir %s, got %s", defaultPublicDir, cfg.PublicDir)
	}
	if cfg.CatalogFile != "" {
		t.Fatalf("expected built-in catalog, got %s", cfg.CatalogFile)
	}
	if cfg.ShutdownGracePeriod != 10*time.Second {
		t.Fatalf("unexpected shutdown grace period: %s", cfg.ShutdownGracePeriod)
	}
	if !cfg.EnableRequestLogging {
		t.Fatalf("expected request logging enabled by default")
	}
	if cfg.RateLimitRPS != defaultRateLimitRPS || cfg.RateLimitBurst != defaultRateLimitBurst {
		t.Fatalf("unexpected rate limit defaults: %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadNilOverrides(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != defaultPort {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
}

func TestLoadEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("BASE_URL", "https://agence.example/")
	t.Setenv("SITE_LOCALE", "en-gb")
	t.Setenv("ENABLE_REQUEST_LOGGING", "false")
	t.Setenv("RATE_LIMIT_RPS", "0")

	cfg, err := Load(noEnvFile(t))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "9000" {
		t.Fatalf("expected overridden port, got %s", cfg.Port)
	}
	if cfg.BaseURL != "https://agence.example" {
		t.Fatalf("expected trailing slash trimmed, got %s", cfg.BaseURL)
	}
	if cfg.Locale != "en-GB" {
		t.Fatalf("expected canonical locale en-GB, got %s", cfg.Locale)
	}
	if cfg.EnableRequestLogging {
		t.Fatalf("expected request logging disabled")
	}
	if cfg.RateLimitRPS != 0 {
		t.Fatalf("expected rate limiting disabled, got %v", cfg.RateLimitRPS)
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	envFile := writeFile(t, ".env", "SITE_NAME=Studio Nord\nPORT=7000\n")
	t.Setenv("PORT", "7100")

	cfg, err := Load(&CLIOverrides{EnvFile: envFile})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.SiteName != "Studio Nord" {
		t.Fatalf("expected site name from .env, got %s", cfg.SiteName)
	}
	if cfg.Port != "7100" {
		t.Fatalf("expected process env to win over .env, got %s", cfg.Port)
	}
}

func TestLoadYAML(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	yamlFile := writeFile(t, "config.yaml", `
port: "9100"
base_url: http://localhost:9100
site_name: Atelier
public_dir: ./static-root
catalog_file: ./catalog.yaml
write_timeout: 30s
enable_request_logging: false
rate_limit:
  rps: 0
  burst: 5
`)

	overrides := noEnvFile(t)
	overrides.ConfigFile = yamlFile
	cfg, err := Load(overrides)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "9100" {
		t.Fatalf("expected YAML port to win over env, got %s", cfg.Port)
	}
	if cfg.BaseURL != "http://localhost:9100" || cfg.SiteName != "Atelier" {
		t.Fatalf("unexpected site settings: %+v", cfg)
	}
	if cfg.PublicDir != "./static-root" || cfg.CatalogFile != "./catalog.yaml" {
		t.Fatalf("unexpected paths: %s %s", cfg.PublicDir, cfg.CatalogFile)
	}
	if cfg.WriteTimeout != 30*time.Second {
		t.Fatalf("expected write timeout 30s, got %s", cfg.WriteTimeout)
	}
	if cfg.EnableRequestLogging {
		t.Fatalf("expected explicit false to disable request logging")
	}
	if cfg.RateLimitRPS != 0 || cfg.RateLimitBurst != 5 {
		t.Fatalf("unexpected rate limit: %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadCLIOverrides(t *testing.T) {
	clearEnv(t)
	yamlFile := writeFile(t, "config.yaml", "port: \"9100\"\nbase_url: https://yaml.example\n")

	port := "9200"
	baseURL := "https://cli.example/"
	burst := 3
	overrides := noEnvFile(t)
	overrides.ConfigFile = yamlFile
	overrides.Port = &port
	overrides.BaseURL = &baseURL
	overrides.RateLimitBurst = &burst

	cfg, err := Load(overrides)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "9200" {
		t.Fatalf("expected CLI port, got %s", cfg.Port)
	}
	if cfg.BaseURL != "https://cli.example" {
		t.Fatalf("expected CLI base URL, got %s", cfg.BaseURL)
	}
	if cfg.RateLimitBurst != 3 {
		t.Fatalf("expected CLI burst, got %d", cfg.RateLimitBurst)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		yaml string
	}{
		{name: "relative base url", env: map[string]string{"BASE_URL": "/site"}},
		{name: "ftp base url", env: map[string]string{"BASE_URL": "ftp://agence.example"}},
		{name: "base url with query", env: map[string]string{"BASE_URL": "https://agence.example/?a=1"}},
		{name: "invalid locale", env: map[string]string{"SITE_LOCALE": "not a locale"}},
		{name: "invalid duration", yaml: "idle_timeout: soon\n"},
		{name: "negative rps", yaml: "rate_limit:\n  rps: -1\n"},
		{name: "malformed yaml", yaml: "port: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for key, value := range tt.env {
				t.Setenv(key, value)
			}
			overrides := noEnvFile(t)
			if tt.yaml != "" {
				overrides.ConfigFile = writeFile(t, "config.yaml", tt.yaml)
			}

			if _, err := Load(overrides); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	clearEnv(t)
	overrides := noEnvFile(t)
	overrides.ConfigFile = filepath.Join(t.TempDir(), "absent.yaml")

	if _, err := Load(overrides); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
