package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/de-tools/wakestate/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	rangeStart  = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	rangeEnd    = time.Date(2025, 1, 31, 12, 0, 0, 0, time.UTC)
	generatedAt = time.Date(2025, 1, 31, 15, 4, 0, 0, time.UTC)
)

func emptyData() Data {
	return FilterDataByDateRange(nil, nil, rangeStart, rangeEnd)
}

func busyData() Data {
	checkIns := []domain.CheckIn{
		scored("c1", "2025-01-02", map[domain.Domain]int{domain.DomainSleepPressure: 4, domain.DomainCognitive: 4, domain.DomainMood: 4}),
		scored("c2", "2025-01-03", map[domain.Domain]int{domain.DomainSleepPressure: 4, domain.DomainCognitive: 3, domain.DomainMood: 3}),
		scored("c3", "2025-01-04", map[domain.Domain]int{domain.DomainSleepPressure: 5, domain.DomainCognitive: 4}),
	}
	events := []domain.TrackingEvent{
		nap("n1", "2025-01-02", "13:00", "13:30", false),
		nap("n2", "2025-01-03", "14:00", "14:40", false),
		nap("n3", "2025-01-03", "09:00", "09:20", true),
		{ID: "k1", Type: domain.EventTypeCataplexy, LocalDate: "2025-01-02", SeverityTag: domain.SeverityMild},
		{ID: "k2", Type: domain.EventTypeCataplexy, LocalDate: "2025-01-03", SeverityTag: domain.SeveritySevere},
		{ID: "k3", Type: "major-cataplexy", LocalDate: "2025-01-04", SeverityTag: domain.SeverityMild},
		{ID: "k4", Type: "partial-cataplexy", LocalDate: "2025-01-04"},
		{ID: "k5", Type: domain.EventTypeCataplexy, LocalDate: "2025-01-05"},
	}
	return FilterDataByDateRange(checkIns, events, rangeStart, rangeEnd)
}

func TestRender_Frame(t *testing.T) {
	out, err := GenerateQuickSummary(emptyData(), Options{GeneratedAt: generatedAt})
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	heavy := strings.Repeat("═", 59)
	assert.Equal(t, heavy, lines[0])
	assert.Equal(t, "WAKESTATE SUMMARY", strings.TrimSpace(lines[1]))
	assert.Equal(t, heavy, lines[2])
	assert.Equal(t, "", lines[3])
	assert.Equal(t, "Period: Jan 1, 2025 – Jan 31, 2025 (30 days)", lines[4])
	assert.Equal(t, "Generated: Jan 31, 2025 3:04 PM", lines[5])
	assert.True(t, strings.HasSuffix(out, "Generated by WakeState\n"+heavy+"\n"))
}

func TestGenerateQuickSummary_NoCheckIns(t *testing.T) {
	out, err := GenerateQuickSummary(emptyData(), Options{})
	require.NoError(t, err)

	assert.Contains(t, out, "Check-ins recorded: 0")
	assert.Contains(t, out, "• "+continueTracking)
	assert.Contains(t, out, "DISCLAIMER")
	assert.NotContains(t, out, "Generated: ")
	assert.NotContains(t, out, "OTHER SYMPTOMS")
}

func TestGenerateQuickSummary_ZeroDaySpan(t *testing.T) {
	data := FilterDataByDateRange(nil, []domain.TrackingEvent{nap("n1", "2025-01-31", "13:00", "13:30", true)}, rangeEnd, rangeEnd)
	require.Equal(t, 0, data.TotalDays)

	out, err := GenerateQuickSummary(data, Options{})
	require.NoError(t, err)
	assert.Contains(t, out, "Nap frequency: 0.0 naps/day. 100% were planned.")
	assert.NotContains(t, out, "Inf")
	assert.NotContains(t, out, "NaN")
}

func TestGenerateQuickSummary(t *testing.T) {
	data := busyData()

	t.Run("observations", func(t *testing.T) {
		out, err := GenerateQuickSummary(data, Options{GeneratedAt: generatedAt})
		require.NoError(t, err)

		assert.Contains(t, out, "Excessive Daytime Sleepiness\n  Average: 4.3/5 (significant)")
		assert.Contains(t, out, "Cognitive Fog\n  Average: 3.7/5 (significant)")
		assert.Contains(t, out, "• Tracking frequency: 0.1 check-ins/day on average.")
		assert.Contains(t, out, "• Excessive Daytime Sleepiness was rated as significant on average during this period.")
		assert.Contains(t, out, "• Nap frequency: 0.1 naps/day. 33% were planned.")
		assert.Contains(t, out, "• Average nap duration: 30 minutes.")
		assert.Contains(t, out, "• 5 cataplexy episode(s) recorded during this period.")
		assert.Contains(t, out, "• Cognitive fog was frequently reported at significant levels.")
		assert.NotContains(t, out, continueTracking)
		assert.Contains(t, out, "Mood Tone (Low / Flat / Heavy): 3.5/5\n")
		assert.NotContains(t, out, "QUESTIONS FOR YOUR PROVIDER")
	})

	t.Run("provider questions", func(t *testing.T) {
		out, err := GenerateQuickSummary(data, Options{IncludeProviderQuestions: true})
		require.NoError(t, err)

		assert.Contains(t, out, "QUESTIONS FOR YOUR PROVIDER")
		assert.Contains(t, out, "• My excessive daytime sleepiness remains significant.")
		assert.Contains(t, out, "• I had 5 cataplexy episodes.")
		assert.Contains(t, out, "• Cognitive fog is impacting my daily function.")
		assert.Contains(t, out, "• Most of my naps are unplanned.")
	})

	t.Run("clinician mode", func(t *testing.T) {
		out, err := GenerateQuickSummary(data, Options{ClinicianMode: true})
		require.NoError(t, err)

		assert.Contains(t, out, "Days with check-ins: 3")
		assert.Contains(t, out, "Mood Tone (Low / Flat / Heavy): 3.5/5 (moderate)")
	})

	t.Run("deterministic", func(t *testing.T) {
		opts := Options{IncludeProviderQuestions: true, GeneratedAt: generatedAt}
		a, err := GenerateQuickSummary(data, opts)
		require.NoError(t, err)
		b, err := GenerateQuickSummary(data, opts)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}

func TestGenerateDetailedReport(t *testing.T) {
	out, err := GenerateDetailedReport(busyData(), Options{})
	require.NoError(t, err)

	assert.Contains(t, out, "WAKESTATE DETAILED PATTERNS REPORT")
	assert.Contains(t, out, "Check-ins per day: 0.1")
	assert.Contains(t, out, "Event Breakdown:\n  Naps: 3\n  Cataplexy: 5\n  Other: 0")
	assert.Contains(t, out, "Excessive Daytime Sleepiness\n  Average: 4.3/5\n  Distribution: 1★(0) 2★(0) 3★(0) 4★(2) 5★(1)")
	assert.Contains(t, out, "Date           Naps  Cataplexy  Other\n")
	assert.Contains(t, out, "2025-01-03       2          1      0\n")
	assert.Contains(t, out, "Planned naps: 33%")
	assert.Contains(t, out, "Average duration: 30 minutes")
	assert.Contains(t, out, "Per week average: 1.2")
	assert.Contains(t, out, "  Mild: 2\n  Moderate: 0\n  Severe: 1")
}

func TestGenerateDetailedReport_LastFourteenEventDates(t *testing.T) {
	var events []domain.TrackingEvent
	for day := 1; day <= 20; day++ {
		date := time.Date(2025, 1, day, 0, 0, 0, 0, time.UTC).Format(dateLayout)
		events = append(events, typed(date, "sleep-paralysis", date))
	}
	data := FilterDataByDateRange(nil, events, rangeStart, rangeEnd)

	out, err := GenerateDetailedReport(data, Options{})
	require.NoError(t, err)

	assert.NotContains(t, out, "2025-01-06 ")
	assert.Contains(t, out, "2025-01-07       0          0      1")
	assert.Contains(t, out, "2025-01-20       0          0      1")
	assert.Less(t, strings.Index(out, "2025-01-07 "), strings.Index(out, "2025-01-20 "))
	assert.NotContains(t, out, "NAP ANALYSIS")
	assert.NotContains(t, out, "CATAPLEXY ANALYSIS")
}

func TestGenerateDetailedReport_NoEvents(t *testing.T) {
	out, err := GenerateDetailedReport(emptyData(), Options{})
	require.NoError(t, err)
	assert.Contains(t, out, "No events recorded in this period.")
}

func TestGeneratePersonalReport(t *testing.T) {
	t.Run("highlights", func(t *testing.T) {
		out, err := GeneratePersonalReport(busyData(), Options{})
		require.NoError(t, err)

		assert.Contains(t, out, "MY WAKESTATE PERSONAL REFLECTION")
		assert.Contains(t, out, "Over the past 30 days, you recorded 3 check-ins and 8 events. Even a few data points help you see patterns over time.")
		assert.Contains(t, out, "WHAT STOOD OUT\n──────────────\n")
		assert.Contains(t, out, "• Your sleep pressure was frequently high (avg 4.3/5).")
		assert.Contains(t, out, "• Your nap frequency (0.1/day) was moderate.")
		assert.Contains(t, out, "• You experienced 5 cataplexy episode(s).")
		assert.Contains(t, out, "• Cognitive fog was a noticeable theme (avg 3.7/5).")
		assert.Contains(t, out, "• Your mood was often low (avg 3.5/5).")
		assert.Contains(t, out, "• Are your naps refreshing, or do they leave you groggy?")
		assert.NotContains(t, out, "relatively stable patterns")
	})

	t.Run("fallback highlight", func(t *testing.T) {
		out, err := GeneratePersonalReport(emptyData(), Options{})
		require.NoError(t, err)

		assert.Contains(t, out, "• Your data shows relatively stable patterns.")
		assert.Contains(t, out, "• What was happening on your best days vs. your hardest days?")
		assert.NotContains(t, out, "groggy")
	})

	t.Run("consistent tracking", func(t *testing.T) {
		var checkIns []domain.CheckIn
		for day := 1; day <= 7; day++ {
			date := time.Date(2025, 1, day, 0, 0, 0, 0, time.UTC).Format(dateLayout)
			checkIns = append(checkIns, scored(date, date, map[domain.Domain]int{domain.DomainSleepPressure: 2}))
		}
		start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		data := FilterDataByDateRange(checkIns, nil, start, start.AddDate(0, 0, 7))

		out, err := GeneratePersonalReport(data, Options{})
		require.NoError(t, err)
		assert.Contains(t, out, "That's consistent tracking — well done!")
		assert.Contains(t, out, "stayed relatively manageable (avg 2/5)")
	})
}

func TestMedicationSection(t *testing.T) {
	data := emptyData().WithAdministrations([]domain.MedicationAdministration{
		{ID: "a1", MedicationID: "modafinil", BrandName: "Provigil", LocalDate: "2025-01-02"},
		{ID: "a2", MedicationID: "modafinil", BrandName: "Provigil", LocalDate: "2025-01-02"},
		{ID: "a3", MedicationID: "modafinil", BrandName: "Provigil", LocalDate: "2025-01-03"},
		{ID: "a4", MedicationID: "pitolisant", LocalDate: "2025-01-03"},
		{ID: "old", MedicationID: "pitolisant", LocalDate: "2024-12-01"},
	})
	require.Len(t, data.Administrations, 4)

	out, err := GenerateDetailedReport(data, Options{IncludeMedications: true})
	require.NoError(t, err)
	assert.Contains(t, out, "Doses logged: 4")
	assert.Contains(t, out, "  • Provigil: 3 dose(s) on 2 day(s)")
	assert.Contains(t, out, "  • pitolisant: 1 dose(s) on 1 day(s)")

	out, err = GenerateQuickSummary(data, Options{})
	require.NoError(t, err)
	assert.NotContains(t, out, "MEDICATIONS")
}

func TestBuild(t *testing.T) {
	r, err := Build(domain.ReportDetailed, busyData(), Options{})
	require.NoError(t, err)
	assert.Equal(t, domain.ReportDetailed, r.Kind)
	assert.Equal(t, 30, r.Period.Duration)
	assert.Equal(t, "DATA SUMMARY", r.Sections[0].Title)

	_, err = Build("weekly", busyData(), Options{})
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = ParseKind("weekly")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestFilename(t *testing.T) {
	now := time.Date(2025, 2, 3, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "wakestate-summary-2025-02-03.txt", Filename(domain.ReportQuick, now))
	assert.Equal(t, "wakestate-detailed-2025-02-03.txt", Filename(domain.ReportDetailed, now))
	assert.Equal(t, "wakestate-personal-2025-02-03.txt", Filename(domain.ReportPersonal, now))
}

func TestDailyTrend(t *testing.T) {
	now := time.Date(2025, 1, 5, 20, 0, 0, 0, time.UTC)
	checkIns := []domain.CheckIn{
		scored("c1", "2025-01-05", map[domain.Domain]int{domain.DomainSleepPressure: 2, domain.DomainMood: 5}),
		scored("c2", "2025-01-05", map[domain.Domain]int{domain.DomainSleepPressure: 3}),
		scored("c3", "2025-01-03", map[domain.Domain]int{domain.DomainSleepPressure: 5}),
		scored("c4", "2024-12-01", map[domain.Domain]int{domain.DomainSleepPressure: 1}),
	}

	points := DailyTrend(checkIns, []domain.Domain{domain.DomainSleepPressure}, 3, now)
	require.Len(t, points, 3)
	assert.Equal(t, "2025-01-03", points[0].Date)
	assert.Equal(t, map[domain.Domain]float64{domain.DomainSleepPressure: 5}, points[0].Averages)
	assert.Equal(t, 0, points[1].CheckIns)
	assert.Empty(t, points[1].Averages)
	assert.Equal(t, 2, points[2].CheckIns)
	assert.Equal(t, map[domain.Domain]float64{domain.DomainSleepPressure: 2.5}, points[2].Averages)

	all := DailyTrend(checkIns, nil, 1, now)
	assert.Equal(t, 5.0, all[0].Averages[domain.DomainMood])

	assert.Empty(t, DailyTrend(checkIns, nil, 0, now))
}

type mockSource struct {
	mock.Mock
}

func (m *mockSource) GetCheckIns(ctx context.Context) []domain.CheckIn {
	return m.Called(ctx).Get(0).([]domain.CheckIn)
}

func (m *mockSource) GetEvents(ctx context.Context) []domain.TrackingEvent {
	return m.Called(ctx).Get(0).([]domain.TrackingEvent)
}

func (m *mockSource) GetMedicationAdministrations(ctx context.Context) []domain.MedicationAdministration {
	return m.Called(ctx).Get(0).([]domain.MedicationAdministration)
}

func TestService_Generate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	src := new(mockSource)
	src.On("GetCheckIns", ctx).Return([]domain.CheckIn{
		scored("in", "2025-01-08", map[domain.Domain]int{domain.DomainSleepPressure: 3}),
		scored("out", "2024-12-20", map[domain.Domain]int{domain.DomainSleepPressure: 5}),
	})
	src.On("GetEvents", ctx).Return([]domain.TrackingEvent{})
	src.On("GetMedicationAdministrations", ctx).Return([]domain.MedicationAdministration{
		{ID: "a1", MedicationID: "modafinil", BrandName: "Provigil", LocalDate: "2025-01-09"},
	})

	svc := NewService(src)
	out, err := svc.Generate(ctx, domain.ReportQuick, Options{DateRange: Range7Days, IncludeMedications: true}, now)
	require.NoError(t, err)

	assert.Contains(t, out, "Period: Jan 3, 2025 – Jan 10, 2025 (7 days)")
	assert.Contains(t, out, "Generated: Jan 10, 2025 12:00 PM")
	assert.Contains(t, out, "Check-ins recorded: 1")
	assert.Contains(t, out, "Average: 3/5 (moderate)")
	assert.Contains(t, out, "  • Provigil: 1 dose(s) on 1 day(s)")
	src.AssertExpectations(t)
}
