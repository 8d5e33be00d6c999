package randomchoice

import (
	"math"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidWeights is returned when a weight is negative or NaN,
	// or when the weight sum is not finite and positive.
	ErrInvalidWeights = errors.New("invalid weights")
	// ErrLengthMismatch is returned when the weight and sample lengths
	// do not satisfy the selector's pairing requirement.
	ErrLengthMismatch = errors.New("weight/sample length mismatch")
)

// ChooseChecked is ChooseSource with the caller preconditions validated
// eagerly: len(weights) <= len(samples), every weight non-negative and
// finite, weight sum finite and positive. The zero/empty guard still
// applies before validation, so empty weights or n == 0 is a valid
// no-op, not an error.
func ChooseChecked[T any](src Source, samples []T, weights []float64, n int) ([]*T, error) {
	if len(weights) == 0 || n == 0 {
		return nil, nil
	}

	if len(weights) > len(samples) {
		return nil, errors.Wrapf(ErrLengthMismatch,
			"%d weights for %d samples", len(weights), len(samples))
	}

	if err := validateWeights(weights); err != nil {
		return nil, err
	}

	return ChooseSource(src, samples, weights, n), nil
}

// ChooseChecked32 is the single-precision form of ChooseChecked.
func ChooseChecked32[T any](src Source, samples []T, weights []float32, n int) ([]*T, error) {
	if len(weights) == 0 || n == 0 {
		return nil, nil
	}

	if len(weights) > len(samples) {
		return nil, errors.Wrapf(ErrLengthMismatch,
			"%d weights for %d samples", len(weights), len(samples))
	}

	if err := validateWeights(weights); err != nil {
		return nil, err
	}

	return ChooseSource32(src, samples, weights, n), nil
}

// ChooseInPlaceChecked is ChooseInPlaceSource with the caller
// preconditions validated eagerly: len(weights) == len(samples), every
// weight non-negative and finite, weight sum finite and positive.
// Buffers of length < 2 are a valid no-op, not an error.
func ChooseInPlaceChecked[T any](src Source, samples []T, weights []float64) error {
	if len(weights) < 2 {
		return nil
	}

	if len(weights) != len(samples) {
		return errors.Wrapf(ErrLengthMismatch,
			"%d weights for %d samples", len(weights), len(samples))
	}

	if err := validateWeights(weights); err != nil {
		return err
	}

	ChooseInPlaceSource(src, samples, weights)
	return nil
}

// ChooseInPlaceChecked32 is the single-precision form of ChooseInPlaceChecked.
func ChooseInPlaceChecked32[T any](src Source, samples []T, weights []float32) error {
	if len(weights) < 2 {
		return nil
	}

	if len(weights) != len(samples) {
		return errors.Wrapf(ErrLengthMismatch,
			"%d weights for %d samples", len(weights), len(samples))
	}

	if err := validateWeights(weights); err != nil {
		return err
	}

	ChooseInPlaceSource32(src, samples, weights)
	return nil
}

func validateWeights[F Float](weights []F) error {
	var sum F
	for i, w := range weights {
		if w < 0 || math.IsNaN(float64(w)) {
			return errors.Wrapf(ErrInvalidWeights, "weight %d is %v", i, w)
		}
		sum += w
	}

	if sum <= 0 || math.IsInf(float64(sum), 0) {
		return errors.Wrapf(ErrInvalidWeights, "weights sum to %v", sum)
	}

	return nil
}
