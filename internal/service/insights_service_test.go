package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/mayankpokhriyal/neuronap/internal/domain"
	"github.com/mayankpokhriyal/neuronap/internal/quality"
)

func markerProfile() *domain.RhythmProfile {
	return &domain.RhythmProfile{
		WakeTime:     "07:00",
		MorningPeak:  "10:00",
		AfternoonDip: "14:00",
		EveningPeak:  "18:00",
		Bedtime:      "23:00",
	}
}

func TestRecommendationsAllConditional(t *testing.T) {
	tips := Recommendations(2, domain.ChronotypeEarlyBird, 5, markerProfile())

	if len(tips) != 8 {
		t.Fatalf("Recommendations() returned %d tips, want 8", len(tips))
	}
	if !strings.Contains(tips[0], "missing 2 hours") {
		t.Errorf("first tip = %q, want the sleep debt warning", tips[0])
	}
	if !strings.Contains(tips[1], "Avoid late naps") {
		t.Errorf("second tip = %q, want the early bird tip", tips[1])
	}
	if !strings.Contains(tips[2], "calm-down routine") {
		t.Errorf("third tip = %q, want the low quality tip", tips[2])
	}
}

func TestRecommendationsMarkersOnly(t *testing.T) {
	// No debt, intermediate chronotype, decent quality: only the five
	// fixed marker lines remain, in order.
	tips := Recommendations(0.5, domain.ChronotypeIntermediate, 7, markerProfile())

	if len(tips) != 5 {
		t.Fatalf("Recommendations() returned %d tips, want 5", len(tips))
	}
	want := []string{
		"Wake Up Time (07:00): Start your day here.",
		"Peak Performance (10:00): Tackle tough tasks now.",
		"Afternoon Dip (14:00): Take a short break or nap.",
		"Evening Boost (18:00): Good for exercise or projects.",
		"Bedtime (23:00): Get to bed to reset your rhythm.",
	}
	for i := range want {
		if tips[i] != want[i] {
			t.Errorf("tip %d = %q, want %q", i, tips[i], want[i])
		}
	}
}

func TestRecommendationsNightOwl(t *testing.T) {
	tips := Recommendations(0, domain.ChronotypeNightOwl, 8, markerProfile())

	if len(tips) != 6 {
		t.Fatalf("Recommendations() returned %d tips, want 6", len(tips))
	}
	if !strings.Contains(tips[0], "Wind down with calm music") {
		t.Errorf("first tip = %q, want the night owl tip", tips[0])
	}
}

func newInsightsFixture(t *testing.T) (InsightsService, *MockSleepLogRepository, *MockUserRepository, uuid.UUID) {
	t.Helper()
	logRepo := NewMockSleepLogRepository()
	userRepo := NewMockUserRepository()
	svc := NewInsightsService(NewMetricsService(logRepo, userRepo), quality.Untrained(), logRepo, userRepo)
	return svc, logRepo, userRepo, registerTestUser(t, userRepo)
}

func TestInsightsService_Report(t *testing.T) {
	svc, logRepo, _, userID := newInsightsFixture(t)
	ctx := context.Background()

	if err := logRepo.Create(ctx, &domain.SleepLog{UserID: userID, SleepTime: "23:00", WakeTime: "07:00", EnergyLevel: 7}); err != nil {
		t.Fatalf("failed to seed log: %v", err)
	}

	report, err := svc.Report(ctx, userID)
	if err != nil {
		t.Fatalf("Report() unexpected error: %v", err)
	}
	if report.SleepDebt != 0 {
		t.Errorf("SleepDebt = %v, want 0", report.SleepDebt)
	}
	if report.Rhythm.Chronotype != domain.ChronotypeEarlyBird {
		t.Errorf("Chronotype = %s, want %s", report.Rhythm.Chronotype, domain.ChronotypeEarlyBird)
	}
	if report.Quality != quality.DefaultQuality {
		t.Errorf("Quality = %d, want untrained default %d", report.Quality, quality.DefaultQuality)
	}
	if len(report.Recommendations) < 5 {
		t.Errorf("Recommendations count = %d, want at least the five markers", len(report.Recommendations))
	}
	if report.Averages.LogCount != 1 {
		t.Errorf("Averages.LogCount = %d, want 1", report.Averages.LogCount)
	}
}

func TestInsightsService_ReportUsesLatestLog(t *testing.T) {
	svc, logRepo, _, userID := newInsightsFixture(t)
	ctx := context.Background()

	if err := logRepo.Create(ctx, &domain.SleepLog{UserID: userID, SleepTime: "23:00", WakeTime: "07:00", EnergyLevel: 7}); err != nil {
		t.Fatalf("failed to seed log: %v", err)
	}
	if err := logRepo.Create(ctx, &domain.SleepLog{UserID: userID, SleepTime: "01:00", WakeTime: "05:00", EnergyLevel: 3}); err != nil {
		t.Fatalf("failed to seed log: %v", err)
	}

	report, err := svc.Report(ctx, userID)
	if err != nil {
		t.Fatalf("Report() unexpected error: %v", err)
	}
	if report.SleepDebt != 4 {
		t.Errorf("SleepDebt = %v, want 4 from the newest log", report.SleepDebt)
	}
	if report.Averages.LogCount != 2 {
		t.Errorf("Averages.LogCount = %d, want 2", report.Averages.LogCount)
	}
}

func TestInsightsService_ReportNoLogs(t *testing.T) {
	svc, _, _, userID := newInsightsFixture(t)

	if _, err := svc.Report(context.Background(), userID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Report() error = %v, want ErrNotFound", err)
	}
}

func TestInsightsService_ReportUnknownUser(t *testing.T) {
	svc, _, _, _ := newInsightsFixture(t)

	if _, err := svc.Report(context.Background(), uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Report() error = %v, want ErrNotFound", err)
	}
}

func TestInsightsService_Export(t *testing.T) {
	svc, logRepo, _, userID := newInsightsFixture(t)
	ctx := context.Background()

	if err := logRepo.Create(ctx, &domain.SleepLog{UserID: userID, SleepTime: "23:00", WakeTime: "07:00", EnergyLevel: 7}); err != nil {
		t.Fatalf("failed to seed log: %v", err)
	}

	doc, err := svc.Export(ctx, userID)
	if err != nil {
		t.Fatalf("Export() unexpected error: %v", err)
	}
	if doc.Filename != "neuronap_report_maya.md" {
		t.Errorf("Filename = %q, want neuronap_report_maya.md", doc.Filename)
	}
	if !strings.Contains(doc.Content, "# Maya's Sleeping Report") {
		t.Error("Content missing the report heading")
	}
	if !strings.Contains(doc.Content, "## Past Logs") {
		t.Error("Content missing the log history section")
	}
}
