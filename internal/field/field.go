// Package field computes the magnetic field around an infinite straight
// current-carrying wire using the Biot-Savart law: B = μ₀·I / (2π·d).
package field

import (
	"fmt"
	"math"
)

// Mu0 is the vacuum permeability constant μ₀ in T·m/A.
const Mu0 = 4 * math.Pi * 1e-7

// Sample is one computed field point: the magnitude of B at a perpendicular
// distance from the wire. Samples carry no identity; a new submission
// replaces the previous sequence wholesale.
type Sample struct {
	Distance  float64 // meters from the wire, always > 0
	Magnitude float64 // Tesla, always > 0 for valid inputs
}

// InvalidInputError is the only error kind the calculator produces. It covers
// non-positive current, an empty distance list, and non-positive or
// non-finite distances.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

func invalidInputf(format string, args ...any) error {
	return &InvalidInputError{Reason: fmt.Sprintf(format, args...)}
}

// At returns the field magnitude at a single distance from the wire.
func At(current, distance float64) (float64, error) {
	if err := validateCurrent(current); err != nil {
		return 0, err
	}
	if err := validateDistance(distance, -1); err != nil {
		return 0, err
	}
	return Mu0 * current / (2 * math.Pi * distance), nil
}

// Compute applies the Biot-Savart law to every distance in order. It is
// all-or-nothing: a single invalid distance rejects the whole batch, and the
// returned samples preserve the input order.
func Compute(current float64, distances []float64) ([]Sample, error) {
	if err := validateCurrent(current); err != nil {
		return nil, err
	}
	if len(distances) == 0 {
		return nil, invalidInputf("distance list is empty")
	}

	samples := make([]Sample, 0, len(distances))
	for i, d := range distances {
		if err := validateDistance(d, i); err != nil {
			return nil, err
		}
		samples = append(samples, Sample{
			Distance:  d,
			Magnitude: Mu0 * current / (2 * math.Pi * d),
		})
	}
	return samples, nil
}

// Profile sweeps [min, max] with evenly spaced points and computes the field
// at each. It feeds the smooth B-vs-d curves in the visualizer charts.
func Profile(current, min, max float64, points int) ([]Sample, error) {
	if err := validateCurrent(current); err != nil {
		return nil, err
	}
	if err := validateDistance(min, -1); err != nil {
		return nil, err
	}
	if err := validateDistance(max, -1); err != nil {
		return nil, err
	}
	if min >= max {
		return nil, invalidInputf("profile range is empty: min %g >= max %g", min, max)
	}
	if points < 2 {
		return nil, invalidInputf("profile needs at least 2 points, got %d", points)
	}

	step := (max - min) / float64(points-1)
	samples := make([]Sample, 0, points)
	for i := 0; i < points; i++ {
		d := min + step*float64(i)
		samples = append(samples, Sample{
			Distance:  d,
			Magnitude: Mu0 * current / (2 * math.Pi * d),
		})
	}
	return samples, nil
}

func validateCurrent(current float64) error {
	if math.IsNaN(current) || math.IsInf(current, 0) {
		return invalidInputf("current must be a finite number, got %g", current)
	}
	if current <= 0 {
		return invalidInputf("current must be greater than zero, got %g A", current)
	}
	return nil
}

// validateDistance checks a single distance. index is the position in the
// input list, or -1 when the distance is not part of a batch.
func validateDistance(d float64, index int) error {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		if index >= 0 {
			return invalidInputf("distance at index %d must be a finite number, got %g", index, d)
		}
		return invalidInputf("distance must be a finite number, got %g", d)
	}
	if d <= 0 {
		if index >= 0 {
			return invalidInputf("distance at index %d must be greater than zero, got %g m", index, d)
		}
		return invalidInputf("distance must be greater than zero, got %g m", d)
	}
	return nil
}
