package quality

import (
	"fmt"
	"log"
	"math"
	"sort"

	"github.com/mayankpokhriyal/neuronap/internal/domain"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	// DefaultQuality is returned whenever the model is untrained.
	DefaultQuality = 6

	// Population averages imputed for features not collected from users.
	ImputedHeartRate  = 70
	ImputedDailySteps = 8000

	// Fixed training schedule keeps the fit fully deterministic.
	trainEpochs  = 400
	learningRate = 0.1
)

// scaler standardizes features to zero mean and unit variance using the full
// training set's statistics.
type scaler struct {
	mean []float64
	std  []float64
}

func fitScaler(features [][]float64) *scaler {
	n := len(features[0])
	s := &scaler{mean: make([]float64, n), std: make([]float64, n)}
	col := make([]float64, len(features))
	for j := 0; j < n; j++ {
		for i, row := range features {
			col[i] = row[j]
		}
		s.mean[j] = stat.Mean(col, nil)
		s.std[j] = stat.PopStdDev(col, nil)
		if s.std[j] == 0 {
			s.std[j] = 1
		}
	}
	return s
}

func (s *scaler) transform(v []float64) []float64 {
	out := make([]float64, len(v))
	for j := range v {
		out[j] = (v[j] - s.mean[j]) / s.std[j]
	}
	return out
}

// Model predicts a 1-10 sleep quality score from a five-feature lifestyle
// vector. The zero state is the explicit untrained sentinel: Predict then
// returns DefaultQuality. A Model is fitted once at startup and is read-only
// afterwards, so concurrent readers are safe.
type Model struct {
	scaler  *scaler
	classes []int       // sorted distinct quality labels seen in training
	weights [][]float64 // per class: feature weights plus trailing bias
}

// Untrained returns the explicit untrained sentinel.
func Untrained() *Model {
	return &Model{}
}

// Trained reports whether the model has been fitted.
func (m *Model) Trained() bool {
	return len(m.weights) > 0
}

// Train fits a multinomial logistic classifier on the lifestyle dataset at
// path. Training problems are absorbed, never surfaced: a missing or
// malformed dataset yields the untrained sentinel and a logged warning.
func Train(path string) *Model {
	ds, err := loadDataset(path)
	if err != nil {
		log.Printf("Warning: %v; sleep quality predictions fall back to the default", fmt.Errorf("%w: %v", domain.ErrModelUnavailable, err))
		return Untrained()
	}

	sc := fitScaler(ds.features)
	scaled := make([][]float64, len(ds.features))
	for i, row := range ds.features {
		scaled[i] = sc.transform(row)
	}

	classes := distinctSorted(ds.labels)
	m := &Model{
		scaler:  sc,
		classes: classes,
		weights: fit(scaled, ds.labels, classes),
	}
	log.Printf("Quality model trained on %d records (%d classes)", len(ds.labels), len(classes))
	return m
}

// Predict returns the predicted quality for the given inputs. Heart rate and
// daily steps are filled with fixed population averages since they are not
// collected from the user. Output is identical across calls for identical
// inputs.
func (m *Model) Predict(sleepDurationHours float64, activityMinutes, stressLevel int) int {
	if !m.Trained() {
		return DefaultQuality
	}
	x := m.scaler.transform([]float64{
		sleepDurationHours,
		float64(activityMinutes),
		float64(stressLevel),
		ImputedHeartRate,
		ImputedDailySteps,
	})
	scores := make([]float64, len(m.classes))
	for c := range m.classes {
		scores[c] = logit(m.weights[c], x)
	}
	return m.classes[floats.MaxIdx(scores)]
}

// fit runs full-batch gradient descent on the softmax objective with zero
// initialization and a fixed epoch count. No sampling is involved, so the
// resulting weights are deterministic.
func fit(features [][]float64, labels []int, classes []int) [][]float64 {
	nFeat := len(features[0])
	classIdx := make(map[int]int, len(classes))
	for i, c := range classes {
		classIdx[c] = i
	}

	weights := make([][]float64, len(classes))
	grad := make([][]float64, len(classes))
	for c := range classes {
		weights[c] = make([]float64, nFeat+1)
		grad[c] = make([]float64, nFeat+1)
	}

	probs := make([]float64, len(classes))
	for epoch := 0; epoch < trainEpochs; epoch++ {
		for c := range grad {
			for j := range grad[c] {
				grad[c][j] = 0
			}
		}
		for i, x := range features {
			softmax(weights, x, probs)
			for c := range classes {
				g := probs[c]
				if classIdx[labels[i]] == c {
					g -= 1
				}
				for j := 0; j < nFeat; j++ {
					grad[c][j] += g * x[j]
				}
				grad[c][nFeat] += g
			}
		}
		step := learningRate / float64(len(features))
		for c := range weights {
			floats.AddScaled(weights[c], -step, grad[c])
		}
	}
	return weights
}

func softmax(weights [][]float64, x []float64, probs []float64) {
	maxLogit := math.Inf(-1)
	for c := range weights {
		probs[c] = logit(weights[c], x)
		if probs[c] > maxLogit {
			maxLogit = probs[c]
		}
	}
	sum := 0.0
	for c := range probs {
		probs[c] = math.Exp(probs[c] - maxLogit)
		sum += probs[c]
	}
	for c := range probs {
		probs[c] /= sum
	}
}

func logit(w, x []float64) float64 {
	return floats.Dot(w[:len(x)], x) + w[len(x)]
}

func distinctSorted(labels []int) []int {
	seen := make(map[int]bool)
	var out []int
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	sort.Ints(out)
	return out
}
