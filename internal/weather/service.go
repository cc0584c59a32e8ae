package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// ReportKind selects which summaries Summarize renders.
type ReportKind string

const (
	ReportOverview ReportKind = "overview"
	ReportDaily    ReportKind = "daily"
	ReportBoth     ReportKind = "both"
)

// ErrUnknownReport is returned for a ReportKind outside the three known values.
var ErrUnknownReport = errors.New("unknown report kind")

// ParseReportKind maps a config string onto a ReportKind.
func ParseReportKind(s string) (ReportKind, error) {
	switch k := ReportKind(s); k {
	case ReportOverview, ReportDaily, ReportBoth:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownReport, s)
	}
}

// Service loads a dataset from its source and renders the summaries.
type Service struct {
	source Source
	kind   ReportKind
	logger *slog.Logger
}

// NewService creates a new Service. A nil logger falls back to slog.Default().
func NewService(source Source, kind ReportKind, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		source: source,
		kind:   kind,
		logger: logger,
	}
}

// Summarize loads the dataset once and renders the configured reports.
// Failures are returned to the caller, which decides how to report them.
func (s *Service) Summarize(ctx context.Context) (Summary, error) {
	if s.source == nil {
		return Summary{}, errors.New("no record source configured")
	}
	if _, err := ParseReportKind(string(s.kind)); err != nil {
		return Summary{}, err
	}

	log := s.logger.With("run_id", uuid.NewString(), "source", s.source.Name())

	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	start := time.Now()
	ds, err := s.source.Load(ctx)
	if err != nil {
		log.Debug("load dataset failed", "error", err)
		return Summary{}, fmt.Errorf("load %s: %w", s.source.Name(), err)
	}
	log.Debug("dataset loaded", "records", len(ds), "elapsed", time.Since(start))

	if len(ds) == 0 {
		log.Warn("dataset is empty")
	}

	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	summary := Summary{Records: len(ds)}

	if s.kind == ReportOverview || s.kind == ReportBoth {
		summary.Overview, err = GenerateOverview(ds)
		if err != nil {
			log.Debug("overview failed", "error", err)
			return Summary{}, fmt.Errorf("overview: %w", err)
		}
	}

	if s.kind == ReportDaily || s.kind == ReportBoth {
		summary.Daily, err = GenerateDailySummary(ds)
		if err != nil {
			log.Debug("daily summary failed", "error", err)
			return Summary{}, fmt.Errorf("daily summary: %w", err)
		}
	}

	log.Info("summaries rendered",
		"records", summary.Records,
		"report", string(s.kind),
		"elapsed", time.Since(start),
	)
	return summary, nil
}
