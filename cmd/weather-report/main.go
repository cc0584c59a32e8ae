package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/i474232898/weather-report/internal/config"
	"github.com/i474232898/weather-report/internal/logging"
	"github.com/i474232898/weather-report/internal/weather"
	"github.com/i474232898/weather-report/internal/weather/sources"
)

const appName = "weather-report"

// Overridden with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stderr, cfg, version, appName)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Args[1:], os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

// run renders the configured summaries for the CSV file named by args[0],
// falling back to cfg.DataFile.
func run(ctx context.Context, cfg *config.AppConfig, args []string, out io.Writer) error {
	path := cfg.DataFile
	if len(args) > 0 && args[0] != "" {
		path = args[0]
	}

	kind, err := weather.ParseReportKind(cfg.Report)
	if err != nil {
		return err
	}

	service := weather.NewService(sources.NewCSVSource(path), kind, slog.Default())
	summary, err := service.Summarize(ctx)
	if err != nil {
		return err
	}

	if summary.Overview != "" {
		if _, err := fmt.Fprintln(out, summary.Overview); err != nil {
			return err
		}
	}
	if summary.Daily != "" {
		if _, err := fmt.Fprint(out, summary.Daily); err != nil {
			return err
		}
	}
	return nil
}
