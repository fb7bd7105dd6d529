package field

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestAtKnownValue(t *testing.T) {
	// I = 1 A at d = 1 m gives B = μ₀/(2π) ≈ 2×10⁻⁷ T.
	got, err := At(1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := 2e-7
	if math.Abs(got-want) > 1e-15 {
		t.Fatalf("expected B ≈ %g, got %g", want, got)
	}
}

func TestComputePreservesInputOrder(t *testing.T) {
	distances := []float64{0.5, 2, 0.1, 1}

	samples, err := Compute(3, distances)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(samples) != len(distances) {
		t.Fatalf("expected %d samples, got %d", len(distances), len(samples))
	}
	for i, s := range samples {
		if s.Distance != distances[i] {
			t.Fatalf("sample %d: expected distance %g, got %g", i, distances[i], s.Distance)
		}
	}
}

func TestComputeDecreasesWithDistance(t *testing.T) {
	samples, err := Compute(5, []float64{0.01, 0.1, 1, 10, 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 1; i < len(samples); i++ {
		if samples[i].Magnitude >= samples[i-1].Magnitude {
			t.Fatalf("expected B to decrease with d: B(%g)=%g >= B(%g)=%g",
				samples[i].Distance, samples[i].Magnitude,
				samples[i-1].Distance, samples[i-1].Magnitude)
		}
	}
}

func TestComputeScalesLinearlyWithCurrent(t *testing.T) {
	base, err := Compute(2, []float64{0.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tripled, err := Compute(6, []float64{0.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ratio := tripled[0].Magnitude / base[0].Magnitude
	if math.Abs(ratio-3) > 1e-12 {
		t.Fatalf("expected B to triple with current, got ratio %g", ratio)
	}
}

func TestComputeRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		current   float64
		distances []float64
	}{
		{name: "zero current", current: 0, distances: []float64{1}},
		{name: "negative current", current: -2, distances: []float64{1}},
		{name: "NaN current", current: math.NaN(), distances: []float64{1}},
		{name: "infinite current", current: math.Inf(1), distances: []float64{1}},
		{name: "empty distances", current: 1, distances: nil},
		{name: "zero distance", current: 1, distances: []float64{1, 0}},
		{name: "negative distance", current: 1, distances: []float64{-0.5}},
		{name: "NaN distance", current: 1, distances: []float64{1, math.NaN()}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			samples, err := Compute(tc.current, tc.distances)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var invalid *InvalidInputError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidInputError, got %T: %v", err, err)
			}
			if samples != nil {
				t.Fatalf("expected no samples on error, got %d", len(samples))
			}
		})
	}
}

func TestComputeErrorNamesOffendingIndex(t *testing.T) {
	_, err := Compute(1, []float64{1, 2, -3})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidInputError, got %T", err)
	}
	if want := "distance at index 2"; !strings.Contains(invalid.Reason, want) {
		t.Fatalf("expected reason to mention %q, got %q", want, invalid.Reason)
	}
}

func TestProfileSweepsRange(t *testing.T) {
	samples, err := Profile(2, 0.1, 1.0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(samples) != 10 {
		t.Fatalf("expected 10 samples, got %d", len(samples))
	}
	if samples[0].Distance != 0.1 {
		t.Fatalf("expected first distance 0.1, got %g", samples[0].Distance)
	}
	if math.Abs(samples[9].Distance-1.0) > 1e-12 {
		t.Fatalf("expected last distance 1.0, got %g", samples[9].Distance)
	}
	for i := 1; i < len(samples); i++ {
		if samples[i].Distance <= samples[i-1].Distance {
			t.Fatalf("expected strictly increasing distances at %d", i)
		}
	}
}

func TestProfileRejectsBadRanges(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		points   int
	}{
		{name: "inverted range", min: 1, max: 0.5, points: 10},
		{name: "empty range", min: 1, max: 1, points: 10},
		{name: "too few points", min: 0.1, max: 1, points: 1},
		{name: "non-positive min", min: 0, max: 1, points: 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Profile(1, tc.min, tc.max, tc.points)
			var invalid *InvalidInputError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidInputError, got %T: %v", err, err)
			}
		})
	}
}
