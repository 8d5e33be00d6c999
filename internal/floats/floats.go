// Package floats provides the float slice kernels shared by the
// selectors, at either precision.
package floats

// Float is the set of supported element types.
type Float interface {
	~float32 | ~float64
}

// Sum is
//  for _, v := range x {
//  	sum += v
//  }
// The fold is sequential and left-to-right; the result depends on
// element order up to floating-point associativity.
func Sum[F Float](x []F) F {
	var sum F
	for _, v := range x {
		sum += v
	}
	return sum
}
