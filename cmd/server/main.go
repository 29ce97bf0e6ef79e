package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/agency-site/internal/application"
	"github.com/eugenenazirov/agency-site/internal/config"
	"github.com/eugenenazirov/agency-site/internal/logging"
)

const (
	commandServe  = "serve"
	commandExport = "export"
)

var signalNotify = signal.Notify

// cliOptions is the outcome of command-line parsing.
type cliOptions struct {
	command   string
	outDir    string
	overrides *config.CLIOverrides
}

func parseArgs(args []string) (cliOptions, error) {
	kingpinApp := kingpin.New("agency-site", "Agency catalog site - renders service pages, packs and structured data")
	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	envFile := kingpinApp.Flag("env-file", "Path to a dotenv file").Default(".env").String()
	port := kingpinApp.Flag("port", "HTTP port exposed by the service").String()
	baseURL := kingpinApp.Flag("base-url", "Public URL used in canonical links and structured data").String()
	publicDir := kingpinApp.Flag("public-dir", "Directory holding images and static assets").String()
	catalogFile := kingpinApp.Flag("catalog", "YAML catalog replacing the built-in services").String()
	logLevel := kingpinApp.Flag("log-level", "Minimum log level (debug, info, warn, error)").String()
	rateLimitRPSFlag := kingpinApp.Flag("rate-limit-rps", "Requests per second allowed (set 0 to disable)").Default("-1").Float64()
	rateLimitBurstFlag := kingpinApp.Flag("rate-limit-burst", "Burst capacity for rate limiter (values below 1 are raised to 1)").Default("-1").Int()

	kingpinApp.Command(commandServe, "Serve the site over HTTP").Default()
	exportCmd := kingpinApp.Command(commandExport, "Render every page into a static directory")
	outDir := exportCmd.Flag("out", "Output directory").Short('o').Default("out").String()

	command, err := kingpinApp.Parse(args)
	if err != nil {
		return cliOptions{}, err
	}

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
		EnvFile:    *envFile,
	}

	for _, opt := range []struct {
		value string
		dst   **string
	}{
		{value: *port, dst: &overrides.Port},
		{value: *baseURL, dst: &overrides.BaseURL},
		{value: *publicDir, dst: &overrides.PublicDir},
		{value: *catalogFile, dst: &overrides.CatalogFile},
		{value: *logLevel, dst: &overrides.LogLevel},
	} {
		if opt.value != "" {
			value := opt.value
			*opt.dst = &value
		}
	}

	if *rateLimitRPSFlag >= 0 {
		overrides.RateLimitRPS = rateLimitRPSFlag
	}

	if *rateLimitBurstFlag >= 0 {
		overrides.RateLimitBurst = rateLimitBurstFlag
	}

	return cliOptions{
		command:   command,
		outDir:    *outDir,
		overrides: overrides,
	}, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	kingpin.FatalIfError(err, "invalid arguments")

	cfg, err := config.Load(opts.overrides)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := application.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize application", zap.Error(err))
	}

	if opts.command == commandExport {
		runExport(app, opts.outDir, logger)
		return
	}

	if err := app.Start(); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}

	shutdown(app.Server(), cfg.ShutdownGracePeriod, logger)
}

func runExport(app *application.App, outDir string, logger *zap.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := app.Export(ctx, outDir)
	if err != nil {
		logger.Fatal("static export failed",
			zap.String("output_dir", outDir),
			zap.Int("pages_written", res.Pages),
			zap.Error(err),
		)
	}
}

func shutdown(server *http.Server, timeout time.Duration, logger *zap.Logger) {
	quit := make(chan os.Signal, 1)
	signalNotify(quit, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
		if closeErr := server.Close(); closeErr != nil {
			logger.Error("forced close failed", zap.Error(closeErr))
		}
	}
}
