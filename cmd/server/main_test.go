package main

import (
	"testing"
)

func TestParseArgsDefaultsToServe(t *testing.T) {
	opts, err := parseArgs(nil)
	if err != nil {
		t.Fatalf("parseArgs returned error: %v", err)
	}

	if opts.command != commandServe {
		t.Fatalf("expected serve command, got %q", opts.command)
	}
	if opts.overrides.EnvFile != ".env" {
		t.Fatalf("expected default env file, got %q", opts.overrides.EnvFile)
	}
	if opts.overrides.Port != nil || opts.overrides.BaseURL != nil || opts.overrides.CatalogFile != nil {
		t.Fatalf("expected no overrides without flags: %+v", opts.overrides)
	}
	if opts.overrides.RateLimitRPS != nil || opts.overrides.RateLimitBurst != nil {
		t.Fatalf("expected rate limit to come from config")
	}
}

func TestParseArgsOverrides(t *testing.T) {
	opts, err := parseArgs([]string{
		"--port", "9000",
		"--base-url", "https://agence.example",
		"--public-dir", "/srv/public",
		"--catalog", "catalog.yaml",
		"--log-level", "debug",
		"--rate-limit-rps", "0",
		"serve",
	})
	if err != nil {
		t.Fatalf("parseArgs returned error: %v", err)
	}

	o := opts.overrides
	if o.Port == nil || *o.Port != "9000" {
		t.Fatalf("expected port override")
	}
	if o.BaseURL == nil || *o.BaseURL != "https://agence.example" {
		t.Fatalf("expected base URL override")
	}
	if o.PublicDir == nil || *o.PublicDir != "/srv/public" {
		t.Fatalf("expected public dir override")
	}
	if o.CatalogFile == nil || *o.CatalogFile != "catalog.yaml" {
		t.Fatalf("expected catalog override")
	}
	if o.LogLevel == nil || *o.LogLevel != "debug" {
		t.Fatalf("expected log level override")
	}
	if o.RateLimitRPS == nil || *o.RateLimitRPS != 0 {
		t.Fatalf("expected rate limit override of 0")
	}
	if o.RateLimitBurst != nil {
		t.Fatalf("expected burst to stay unset")
	}
}

func TestParseArgsExport(t *testing.T) {
	opts, err := parseArgs([]string{"export", "--out", "dist"})
	if err != nil {
		t.Fatalf("parseArgs returned error: %v", err)
	}

	if opts.command != commandExport {
		t.Fatalf("expected export command, got %q", opts.command)
	}
	if opts.outDir != "dist" {
		t.Fatalf("expected output dir dist, got %q", opts.outDir)
	}
}

func TestParseArgsRejectsUnknownFlag(t *testing.T) {
	if _, err := parseArgs([]string{"--pack-sizes", "1,2"}); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}
