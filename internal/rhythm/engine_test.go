package rhythm

import (
	"errors"
	"testing"

	"github.com/mayankpokhriyal/neuronap/internal/domain"
)

func TestSleepDebt(t *testing.T) {
	tests := []struct {
		name        string
		sleep, wake string
		want        float64
	}{
		{"full night", "23:00", "07:00", 0},
		{"four hours", "01:00", "05:00", 4},
		{"over target", "22:00", "08:00", 0},
		{"short nap interval", "23:30", "05:15", 2.25},
		{"equal times are a full day", "08:00", "08:00", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SleepDebt(tt.sleep, tt.wake)
			if err != nil {
				t.Fatalf("SleepDebt() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("SleepDebt(%s, %s) = %v, want %v", tt.sleep, tt.wake, got, tt.want)
			}
			if got < 0 || got > TargetSleepHours {
				t.Errorf("SleepDebt(%s, %s) = %v, outside [0, 8]", tt.sleep, tt.wake, got)
			}
		})
	}
}

func TestSleepDebtInvalidTime(t *testing.T) {
	if _, err := SleepDebt("25:00", "07:00"); !errors.Is(err, domain.ErrInvalidTimeFormat) {
		t.Errorf("expected ErrInvalidTimeFormat, got %v", err)
	}
	if _, err := SleepDebt("23:00", "7am"); !errors.Is(err, domain.ErrInvalidTimeFormat) {
		t.Errorf("expected ErrInvalidTimeFormat, got %v", err)
	}
}

func TestComputeChronotype(t *testing.T) {
	tests := []struct {
		sleep, wake string
		energy      int
		want        domain.Chronotype
	}{
		{"22:00", "06:00", 8, domain.ChronotypeEarlyBird},    // midpoint 02:00
		{"23:30", "08:30", 5, domain.ChronotypeIntermediate}, // midpoint 04:00
		{"02:00", "10:00", 6, domain.ChronotypeNightOwl},     // midpoint 06:00
	}

	for _, tt := range tests {
		profile, err := Compute(tt.sleep, tt.wake, tt.energy)
		if err != nil {
			t.Fatalf("Compute(%s, %s) unexpected error: %v", tt.sleep, tt.wake, err)
		}
		if profile.Chronotype != tt.want {
			t.Errorf("Compute(%s, %s).Chronotype = %s, want %s", tt.sleep, tt.wake, profile.Chronotype, tt.want)
		}
	}
}

func TestComputeMarkers(t *testing.T) {
	profile, err := Compute("23:00", "07:00", 7)
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}

	if profile.Midpoint != "03:00" {
		t.Errorf("Midpoint = %s, want 03:00", profile.Midpoint)
	}
	if profile.WakeTime != "07:00" {
		t.Errorf("WakeTime = %s, want 07:00", profile.WakeTime)
	}
	if profile.MorningPeak != "10:00" {
		t.Errorf("MorningPeak = %s, want 10:00", profile.MorningPeak)
	}
	if profile.AfternoonDip != "14:00" {
		t.Errorf("AfternoonDip = %s, want 14:00", profile.AfternoonDip)
	}
	if profile.EveningPeak != "18:00" {
		t.Errorf("EveningPeak = %s, want 18:00", profile.EveningPeak)
	}
	if profile.Bedtime != "23:00" {
		t.Errorf("Bedtime = %s, want 23:00", profile.Bedtime)
	}
}

func TestComputeCurveShape(t *testing.T) {
	profile, err := Compute("23:00", "07:00", 10)
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}

	if len(profile.Hours) != CurveSamples || len(profile.Energy) != CurveSamples {
		t.Fatalf("curve has %d/%d samples, want %d", len(profile.Hours), len(profile.Energy), CurveSamples)
	}
	if profile.Hours[0] != 0 || profile.Hours[CurveSamples-1] != 24 {
		t.Errorf("hours span [%v, %v], want [0, 24]", profile.Hours[0], profile.Hours[CurveSamples-1])
	}
	for i, v := range profile.Energy {
		if v < 0 || v > 10 {
			t.Fatalf("energy[%d] = %v, outside [0, 10]", i, v)
		}
	}
	for i := 1; i < CurveSamples; i++ {
		if profile.Hours[i] <= profile.Hours[i-1] {
			t.Fatalf("hours not strictly increasing at %d", i)
		}
	}
}

func TestComputeEnergyScaling(t *testing.T) {
	low, err := Compute("23:00", "07:00", 5)
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}
	high, err := Compute("23:00", "07:00", 10)
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}

	if maxOf(high.Energy) <= maxOf(low.Energy) {
		t.Errorf("energy=10 curve max %v not above energy=5 curve max %v", maxOf(high.Energy), maxOf(low.Energy))
	}
}

func TestComputeDuplicateAnchors(t *testing.T) {
	// Waking at 00:00 collides the wake anchor with the midnight anchor;
	// wake+11 lands on 11:00 and the sleep anchor on 16:00.
	profile, err := Compute("16:00", "00:00", 6)
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}
	if len(profile.Energy) != CurveSamples {
		t.Fatalf("curve has %d samples, want %d", len(profile.Energy), CurveSamples)
	}
}

func TestComputeInvalidEnergy(t *testing.T) {
	if _, err := Compute("23:00", "07:00", 11); !errors.Is(err, domain.ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		hour float64
		want domain.Chronotype
	}{
		{0, domain.ChronotypeEarlyBird},
		{3.49, domain.ChronotypeEarlyBird},
		{3.5, domain.ChronotypeIntermediate},
		{4.99, domain.ChronotypeIntermediate},
		{5, domain.ChronotypeNightOwl},
		{23, domain.ChronotypeNightOwl},
	}
	for _, tt := range tests {
		if got := Classify(tt.hour); got != tt.want {
			t.Errorf("Classify(%v) = %s, want %s", tt.hour, got, tt.want)
		}
	}
}

func maxOf(values []float64) float64 {
	max := values[0]
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	return max
}
