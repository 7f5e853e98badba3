package report

import (
	"context"
	"time"

	"github.com/de-tools/wakestate/pkg/models/domain"
	"github.com/rs/zerolog"
)

// Source supplies the collections reports are computed from.
type Source interface {
	GetCheckIns(ctx context.Context) []domain.CheckIn
	GetEvents(ctx context.Context) []domain.TrackingEvent
	GetMedicationAdministrations(ctx context.Context) []domain.MedicationAdministration
}

type Service struct {
	source Source
}

func NewService(source Source) *Service {
	return &Service{source: source}
}

// Data loads and filters every record for the range in opts.
func (s *Service) Data(ctx context.Context, opts Options, now time.Time) Data {
	start, end := GetDateRange(opts.DateRange, opts.CustomStart, opts.CustomEnd, now)
	data := FilterDataByDateRange(s.source.GetCheckIns(ctx), s.source.GetEvents(ctx), start, end)
	if opts.IncludeMedications {
		data = data.WithAdministrations(s.source.GetMedicationAdministrations(ctx))
	}
	return data
}

func (s *Service) Build(ctx context.Context, kind domain.ReportKind, opts Options, now time.Time) (domain.Report, error) {
	if opts.GeneratedAt.IsZero() {
		opts.GeneratedAt = now
	}
	data := s.Data(ctx, opts, now)

	zerolog.Ctx(ctx).Debug().
		Str("kind", string(kind)).
		Int("check_ins", len(data.CheckIns)).
		Int("events", len(data.Events)).
		Int("days", data.TotalDays).
		Msg("building report")

	return Build(kind, data, opts)
}

func (s *Service) Generate(ctx context.Context, kind domain.ReportKind, opts Options, now time.Time) (string, error) {
	r, err := s.Build(ctx, kind, opts, now)
	if err != nil {
		return "", err
	}
	return Render(r)
}

func (s *Service) Trends(ctx context.Context, domains []domain.Domain, days int, now time.Time) []TrendPoint {
	return DailyTrend(s.source.GetCheckIns(ctx), domains, days, now)
}
