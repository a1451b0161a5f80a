package rhythm

import (
	"fmt"
	"math"
	"sort"

	"github.com/mayankpokhriyal/neuronap/internal/domain"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

const (
	// TargetSleepHours is the nightly target the debt is measured against.
	TargetSleepHours = 8.0

	// CurveSamples is the number of points sampled over the 24h wheel.
	CurveSamples = 100

	// Midpoint-hour thresholds for chronotype classification.
	EarlyBirdThresholdHour    = 3.5
	IntermediateThresholdHour = 5.0

	// Marker offsets from wake time, in hours.
	MorningPeakOffset  = 3
	AfternoonDipOffset = 7
	EveningPeakOffset  = 11

	maxEnergy = 10.0
)

// baseEnergy holds the energy weights at the seven curve anchors:
// midnight, wake, wake+3, wake+7, wake+11, sleep, end of day.
var baseEnergy = [7]float64{2, 2, 10, 3, 7, 2, 2}

// SleepDebt returns the shortfall in hours against the 8-hour target,
// rounded to 2 decimals. The interval wraps past midnight when the wake
// clock value is numerically earlier; equal times count as a full 24h.
func SleepDebt(sleepTime, wakeTime string) (float64, error) {
	sleep, err := domain.ParseClock(sleepTime)
	if err != nil {
		return 0, err
	}
	wake, err := domain.ParseClock(wakeTime)
	if err != nil {
		return 0, err
	}
	duration := domain.HoursBetween(sleep, wake)
	return round2(math.Max(TargetSleepHours-duration, 0)), nil
}

// MidpointHour returns the sleep midpoint as a real-valued clock hour in
// [0, 24).
func MidpointHour(sleepTime, wakeTime string) (float64, error) {
	sleep, err := domain.ParseClock(sleepTime)
	if err != nil {
		return 0, err
	}
	wake, err := domain.ParseClock(wakeTime)
	if err != nil {
		return 0, err
	}
	duration := domain.HoursBetween(sleep, wake)
	return sleep.AddHours(duration / 2).Hours(), nil
}

// Classify buckets a midpoint hour into a chronotype. The thresholds are
// fixed and apply regardless of sleep duration.
func Classify(midpointHour float64) domain.Chronotype {
	switch {
	case midpointHour < EarlyBirdThresholdHour:
		return domain.ChronotypeEarlyBird
	case midpointHour < IntermediateThresholdHour:
		return domain.ChronotypeIntermediate
	default:
		return domain.ChronotypeNightOwl
	}
}

// Compute derives the circadian rhythm profile for one sleep interval.
// energy is the 1-10 self-report; 0 means not reported, which leaves the
// anchor weights unscaled.
func Compute(sleepTime, wakeTime string, energy int) (*domain.RhythmProfile, error) {
	if energy < 0 || energy > 10 {
		return nil, fmt.Errorf("%w: energy level %d not in 1-10", domain.ErrInvalidRange, energy)
	}

	sleep, err := domain.ParseClock(sleepTime)
	if err != nil {
		return nil, err
	}
	wake, err := domain.ParseClock(wakeTime)
	if err != nil {
		return nil, err
	}

	duration := domain.HoursBetween(sleep, wake)
	midpoint := sleep.AddHours(duration / 2)
	midpointHour := midpoint.Hours()

	scale := 1.0
	if energy > 0 {
		scale = float64(energy) / maxEnergy
	}

	hours, curve := sampleEnergyCurve(sleep, wake, scale)

	profile := &domain.RhythmProfile{
		Midpoint:     midpoint.String(),
		MidpointHour: midpointHour,
		Chronotype:   Classify(midpointHour),
		WakeTime:     wake.String(),
		MorningPeak:  wake.AddHours(MorningPeakOffset).String(),
		AfternoonDip: wake.AddHours(AfternoonDipOffset).String(),
		EveningPeak:  wake.AddHours(EveningPeakOffset).String(),
		Bedtime:      sleepTime,
		Hours:        hours,
		Energy:       curve,
	}
	return profile, nil
}

// sampleEnergyCurve fits a C1 cubic through the anchor points and samples it
// at CurveSamples evenly spaced hours over [0, 24], clamped to [0, 10].
func sampleEnergyCurve(sleep, wake domain.Clock, scale float64) ([]float64, []float64) {
	wakeHour := wake.Hours()
	anchors := [7]float64{
		0,
		wakeHour,
		math.Mod(wakeHour+MorningPeakOffset, 24),
		math.Mod(wakeHour+AfternoonDipOffset, 24),
		math.Mod(wakeHour+EveningPeakOffset, 24),
		sleep.Hours(),
		24,
	}

	// Deduplicate anchors keeping the first weight per unique hour, then
	// sort ascending so the interpolator sees strictly increasing knots.
	type knot struct{ hour, energy float64 }
	seen := make(map[float64]bool, len(anchors))
	knots := make([]knot, 0, len(anchors))
	for i, h := range anchors {
		if seen[h] {
			continue
		}
		seen[h] = true
		knots = append(knots, knot{hour: h, energy: baseEnergy[i] * scale})
	}
	sort.Slice(knots, func(i, j int) bool { return knots[i].hour < knots[j].hour })

	xs := make([]float64, len(knots))
	ys := make([]float64, len(knots))
	for i, k := range knots {
		xs[i] = k.hour
		ys[i] = k.energy
	}

	var spline interp.FritschButland
	fitted := spline.Fit(xs, ys) == nil

	fill := baseEnergy[0] * scale
	hours := floats.Span(make([]float64, CurveSamples), 0, 24)
	curve := make([]float64, CurveSamples)
	for i, h := range hours {
		v := fill
		if fitted && h >= xs[0] && h <= xs[len(xs)-1] {
			v = spline.Predict(h)
		}
		curve[i] = clamp(v, 0, maxEnergy)
	}
	return hours, curve
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
