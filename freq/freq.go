// Package freq measures empirical selection frequencies: it repeats
// weighted selections over an index set and tallies how often each index
// comes up, so that observed frequencies can be compared against the
// weights. Tallies accumulate into a pluggable Store; Counts keeps them
// in memory, the ldbstore and rdbstore packages keep them on disk.
package freq

import (
	"github.com/golang/glog"

	randomchoice "github.com/cloudcalvin/go-randomchoice"
)

// logInterval is the number of trials between progress log lines.
const logInterval = 10000

// Store accumulates selection tallies keyed by sample index.
type Store interface {
	// Add adds n selections of the given index.
	Add(index int, n uint64)
	// Get returns the number of selections recorded for the given index.
	Get(index int) uint64
}

// Counts implements Store in memory.
type Counts map[int]uint64

// Add implements Store.
func (c Counts) Add(index int, n uint64) {
	c[index] += n
}

// Get implements Store.
func (c Counts) Get(index int) uint64 {
	return c[index]
}

// Run performs trials selections of n indices from 0..len(weights)-1,
// weighted by weights, recording every selected index into store.
// After a run, store.Get(i) holds the number of times index i was
// selected out of trials*n total selections.
func Run(src randomchoice.Source, weights []float64, n, trials int, store Store) {
	indices := make([]int, len(weights))
	for i := range indices {
		indices[i] = i
	}

	for t := 0; t < trials; t++ {
		for _, idx := range randomchoice.ChooseSource(src, indices, weights, n) {
			store.Add(*idx, 1)
		}

		if (t+1)%logInterval == 0 {
			glog.V(1).Infof("Completed %d/%d trials", t+1, trials)
		}
	}
}

// Frequency returns the fraction of the trials*n selections of a Run
// that landed on index.
func Frequency(store Store, index, trials, n int) float64 {
	total := trials * n
	if total == 0 {
		return 0
	}

	return float64(store.Get(index)) / float64(total)
}
