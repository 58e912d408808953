// Package sequential provides sequential implementations of the
// functions provided by the parfor package. This is useful for testing
// and debugging.
//
// Every function accepts the same parameters as its parfor counterpart
// and honors the same contract, but runs entirely on the calling
// goroutine: callbacks always observe a worker count of 1 and a worker
// id of 0, and indices are processed in strictly increasing order over
// the whole range.
//
// It is not recommended to use the implementations of this package for
// any other purpose, because a plain loop without the callback
// indirection is almost certainly faster for regular sequential
// programs.
package sequential

import (
	"github.com/holzman/qsim"
)

// Run invokes f(1, 0, i) for every index i in [0, size), in increasing
// order. The numWorkers parameter is accepted for signature
// compatibility with parfor; if it is less than 1, Run does nothing.
func Run(numWorkers int, size uint64, f qsim.WorkFunc) {
	if numWorkers < 1 {
		return
	}
	for i := uint64(0); i < size; i++ {
		f(1, 0, i)
	}
}

// RunReducePartial invokes f(1, 0, i) for every index i in [0, size),
// in increasing order, folding the results into one accumulator seeded
// with zero, and returns a slice holding that single partial result.
// If numWorkers < 1, it returns an empty slice and f is never invoked.
func RunReducePartial(
	numWorkers int,
	size uint64,
	f qsim.ReduceFunc,
	pair qsim.PairFunc,
	zero interface{},
) []interface{} {
	if numWorkers < 1 {
		return nil
	}
	acc := zero
	for i := uint64(0); i < size; i++ {
		acc = pair(acc, f(1, 0, i))
	}
	return []interface{}{acc}
}

// RunReduce invokes f(1, 0, i) for every index i in [0, size), in
// increasing order, and folds all results into a single value, starting
// from zero. If numWorkers < 1, it returns zero.
func RunReduce(
	numWorkers int,
	size uint64,
	f qsim.ReduceFunc,
	pair qsim.PairFunc,
	zero interface{},
) interface{} {
	result := zero
	for _, partial := range RunReducePartial(numWorkers, size, f, pair, zero) {
		result = pair(result, partial)
	}
	return result
}

// IntRunReducePartial behaves like RunReducePartial for int values,
// with 0 as the seed.
func IntRunReducePartial(
	numWorkers int,
	size uint64,
	f qsim.IntReduceFunc,
	pair qsim.IntPairFunc,
) []int {
	if numWorkers < 1 {
		return nil
	}
	var acc int
	for i := uint64(0); i < size; i++ {
		acc = pair(acc, f(1, 0, i))
	}
	return []int{acc}
}

// IntRunReduce behaves like RunReduce for int values, with 0 as the
// seed.
func IntRunReduce(
	numWorkers int,
	size uint64,
	f qsim.IntReduceFunc,
	pair qsim.IntPairFunc,
) int {
	var result int
	for _, partial := range IntRunReducePartial(numWorkers, size, f, pair) {
		result = pair(result, partial)
	}
	return result
}

// Float64RunReducePartial behaves like RunReducePartial for float64
// values, with 0 as the seed.
func Float64RunReducePartial(
	numWorkers int,
	size uint64,
	f qsim.Float64ReduceFunc,
	pair qsim.Float64PairFunc,
) []float64 {
	if numWorkers < 1 {
		return nil
	}
	var acc float64
	for i := uint64(0); i < size; i++ {
		acc = pair(acc, f(1, 0, i))
	}
	return []float64{acc}
}

// Float64RunReduce behaves like RunReduce for float64 values, with 0 as
// the seed.
func Float64RunReduce(
	numWorkers int,
	size uint64,
	f qsim.Float64ReduceFunc,
	pair qsim.Float64PairFunc,
) float64 {
	var result float64
	for _, partial := range Float64RunReducePartial(numWorkers, size, f, pair) {
		result = pair(result, partial)
	}
	return result
}

// Complex128RunReducePartial behaves like RunReducePartial for
// complex128 values, with 0 as the seed.
func Complex128RunReducePartial(
	numWorkers int,
	size uint64,
	f qsim.Complex128ReduceFunc,
	pair qsim.Complex128PairFunc,
) []complex128 {
	if numWorkers < 1 {
		return nil
	}
	var acc complex128
	for i := uint64(0); i < size; i++ {
		acc = pair(acc, f(1, 0, i))
	}
	return []complex128{acc}
}

// Complex128RunReduce behaves like RunReduce for complex128 values,
// with 0 as the seed.
func Complex128RunReduce(
	numWorkers int,
	size uint64,
	f qsim.Complex128ReduceFunc,
	pair qsim.Complex128PairFunc,
) complex128 {
	var result complex128
	for _, partial := range Complex128RunReducePartial(numWorkers, size, f, pair) {
		result = pair(result, partial)
	}
	return result
}
