// Package randomchoice implements stochastic universal sampling (SUS):
// weighted sampling with replacement that selects n items with a single
// evenly-spaced pass over the cumulative weights, rather than n
// independent draws.
//
// See: https://en.wikipedia.org/wiki/Stochastic_universal_sampling
//
// Runtime is O(n). The allocating selectors use O(n) memory for the
// result; the in-place selectors use O(1) extra memory.
package randomchoice

import (
	"github.com/cloudcalvin/go-randomchoice/internal/floats"
)

// Choose selects n samples by their weights using the process-global
// random source. The greater an item's weight, the more likely it is
// chosen; one weight may be greater than 1. Each returned pointer
// aliases an element of samples.
//
// Weights correspond to samples index-for-index; len(weights) must not
// exceed len(samples). The weights must be non-negative with a finite,
// positive sum: the sum must not overflow float64, and a zero or
// negative total causes the walk to run off the end of the weights and
// panic. ChooseChecked validates these preconditions instead.
func Choose[T any](samples []T, weights []float64, n int) []*T {
	return ChooseSource[T](globalSource, samples, weights, n)
}

// ChooseSource is Choose drawing its spin from src.
func ChooseSource[T any](src Source, samples []T, weights []float64, n int) []*T {
	if len(weights) == 0 || n == 0 {
		return nil
	}

	gap := floats.Sum(weights) / float64(n)
	return wheel(samples, weights, n, src.Float64()*gap, gap)
}

// Choose32 is the single-precision form of Choose.
func Choose32[T any](samples []T, weights []float32, n int) []*T {
	return ChooseSource32[T](globalSource, samples, weights, n)
}

// ChooseSource32 is Choose32 drawing its spin from src.
func ChooseSource32[T any](src Source, samples []T, weights []float32, n int) []*T {
	if len(weights) == 0 || n == 0 {
		return nil
	}

	gap := floats.Sum(weights) / float32(n)
	return wheel(samples, weights, n, src.Float32()*gap, gap)
}

// ChooseInPlace resamples samples according to weights, overwriting the
// buffer element by element: after the call, samples[i] is a copy of
// whichever original element the wheel selected for the i-th spoke. The
// number of selections is len(weights), which must equal len(samples).
// Buffers of length < 2 are returned unmodified.
//
// The same weight preconditions as Choose apply.
func ChooseInPlace[T any](samples []T, weights []float64) {
	ChooseInPlaceSource(globalSource, samples, weights)
}

// ChooseInPlaceSource is ChooseInPlace drawing its spin from src.
func ChooseInPlaceSource[T any](src Source, samples []T, weights []float64) {
	if len(weights) < 2 {
		return
	}

	gap := floats.Sum(weights) / float64(len(weights))
	wheelInPlace(samples, weights, src.Float64()*gap, gap)
}

// ChooseInPlace32 is the single-precision form of ChooseInPlace.
func ChooseInPlace32[T any](samples []T, weights []float32) {
	ChooseInPlaceSource32(globalSource, samples, weights)
}

// ChooseInPlaceSource32 is ChooseInPlace32 drawing its spin from src.
func ChooseInPlaceSource32[T any](src Source, samples []T, weights []float32) {
	if len(weights) < 2 {
		return
	}

	gap := floats.Sum(weights) / float32(len(weights))
	wheelInPlace(samples, weights, src.Float32()*gap, gap)
}

// wheel walks the cumulative weights once, picking the sample under each
// of the n spokes at spin + k*gap. Spokes are strictly increasing, so
// accumulated and i only ever move forward.
func wheel[T any, F Float](samples []T, weights []F, n int, spin, gap F) []*T {
	i := 0
	accumulated := weights[0]
	currentSpoke := spin

	choices := make([]*T, 0, n)
	for k := 0; k < n; k++ {
		for accumulated < currentSpoke {
			i++
			accumulated += weights[i]
		}
		choices = append(choices, &samples[i])
		currentSpoke += gap
	}

	return choices
}

// wheelInPlace is wheel writing into the buffer it reads. The selector
// index j never outruns the destination index i: j advances only while
// the accumulated weight trails the current spoke, and n*gap never
// exceeds the total weight. With j <= i every read at j happens before
// that slot is overwritten, and assignment copies the value, so j == i
// is safe as well.
func wheelInPlace[T any, F Float](samples []T, weights []F, spin, gap F) {
	j := 0
	accumulated := weights[0]
	currentSpoke := spin

	for i := range weights {
		for accumulated < currentSpoke {
			j++
			accumulated += weights[j]
		}
		samples[i] = samples[j]
		currentSpoke += gap
	}
}
