package payroll

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"driverpay/internal/domain/timesheet"
	"driverpay/internal/ingest"
	"driverpay/internal/platform/metrics"
)

type ServiceConfig struct {
	Drivers            []string
	Currency           string
	SheetHeaderRow     int
	DelimitedHeaderRow int
}

type Service struct {
	cfg     ServiceConfig
	metrics *metrics.Collector
}

func NewService(cfg ServiceConfig, collector *metrics.Collector) *Service {
	if cfg.Currency == "" {
		cfg.Currency = DefaultCurrency
	}
	return &Service{cfg: cfg, metrics: collector}
}

type Request struct {
	File     io.Reader
	Filename string
	Driver   string
	Salary   float64
	Options  Options
}

func (s *Service) Drivers() []string {
	out := make([]string, len(s.cfg.Drivers))
	copy(out, s.cfg.Drivers)
	return out
}

func (s *Service) Currency() string {
	return s.cfg.Currency
}

// Sheets lists the worksheets of an uploaded workbook.
func (s *Service) Sheets(r io.Reader, filename string) ([]string, error) {
	return ingest.Sheets(r, filename)
}

// Compute reads the driver's sheet, normalizes it and apportions the salary.
func (s *Service) Compute(ctx context.Context, req Request) (Result, error) {
	start := time.Now()
	res, err := s.compute(ctx, req)
	reason := ""
	if err != nil {
		reason = Code(err)
		slog.WarnContext(ctx, "payroll computation failed",
			"driver", req.Driver,
			"file", req.Filename,
			"reason", reason,
			"err", err,
		)
	} else {
		slog.InfoContext(ctx, "payroll computed",
			"driver", res.Driver,
			"rows", res.Rows,
			"skippedRows", res.SkippedRows,
			"totalHours", res.Breakdown.TotalHours,
			"extraHours", res.Breakdown.TotalExtraHours,
			"durationMs", time.Since(start).Milliseconds(),
		)
	}
	s.metrics.RecordComputation(reason)
	return res, err
}

func (s *Service) compute(ctx context.Context, req Request) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	driver := strings.TrimSpace(req.Driver)
	if driver != "" && !s.onRoster(driver) {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}

	table, err := ingest.Read(req.File, req.Filename, ingest.Options{
		Sheet:              driver,
		SheetHeaderRow:     s.cfg.SheetHeaderRow,
		DelimitedHeaderRow: s.cfg.DelimitedHeaderRow,
	})
	if err != nil {
		return Result{}, err
	}

	ts, err := timesheet.Normalize(table)
	if err != nil {
		return Result{}, fmt.Errorf("normalize %s: %w", req.Filename, err)
	}
	if ts.Skipped > 0 {
		slog.DebugContext(ctx, "hours cells excluded", "driver", driver, "count", ts.Skipped)
	}

	breakdown, err := Apportion(ts, req.Salary, req.Options)
	if err != nil {
		return Result{}, fmt.Errorf("apportion %s: %w", req.Filename, err)
	}

	return Result{
		Driver:      driver,
		Currency:    s.cfg.Currency,
		Rows:        ts.Counted(),
		SkippedRows: ts.Skipped,
		Breakdown:   breakdown,
	}, nil
}

func (s *Service) onRoster(driver string) bool {
	if len(s.cfg.Drivers) == 0 {
		return true
	}
	for _, name := range s.cfg.Drivers {
		if strings.EqualFold(strings.TrimSpace(name), driver) {
			return true
		}
	}
	return false
}

// Code classifies a computation error into a stable, machine-readable reason.
func Code(err error) string {
	var schemaErr *timesheet.SchemaError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &schemaErr):
		return "schema_error"
	case errors.Is(err, timesheet.ErrEmptyData):
		return "empty_data"
	case errors.Is(err, ErrDivisionByZero):
		return "division_by_zero"
	case errors.Is(err, ErrNonFinite):
		return "non_finite_result"
	case errors.Is(err, ErrInvalidSalary):
		return "invalid_salary"
	case errors.Is(err, ErrUnknownDriver), errors.Is(err, ingest.ErrSheetNotFound):
		return "sheet_not_found"
	case errors.Is(err, ingest.ErrUnsupportedFormat):
		return "unsupported_format"
	case errors.Is(err, ingest.ErrNoHeader), errors.Is(err, ingest.ErrInvalidFile):
		return "invalid_file"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "internal_error"
	}
}
