package randomchoice

// Source provides the single uniform random draw consumed by each
// top-level selection. Implementations must return values in [0, 1)
// at the requested precision.
//
// *math/rand.Rand satisfies Source. Sources returned by NewSource are
// safe for concurrent use; any other Source shared between goroutines
// must provide its own synchronization.
type Source interface {
	// Float64 returns a uniform random value in [0, 1).
	Float64() float64
	// Float32 returns a uniform random value in [0, 1).
	Float32() float32
}

// Float is the constraint on weight precision. All arithmetic within one
// selection (weight sum, spoke gap, spin, cumulative walk) stays in a
// single precision; widths are never mixed mid-call.
type Float interface {
	~float32 | ~float64
}
