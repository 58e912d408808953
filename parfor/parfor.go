// Package parfor provides a low-overhead parallel for loop and
// reductions over a contiguous index range [0, size).
//
// The range is divided statically into near-equal contiguous slices,
// one per worker. Workers never steal work from each other, and within
// one worker indices are always processed in increasing order. Across
// workers there is no ordering guarantee of any kind; the only
// synchronization point is the join at the end of every loop, which
// completes before any function of this package returns.
package parfor

import (
	"sync"

	"github.com/holzman/qsim"
	"github.com/holzman/qsim/internal"
)

// A ParFor dispatches loops and reductions over index ranges. The zero
// value parallelizes every nonempty range; use New or Default to avoid
// spawning goroutines for ranges too small to amortize the dispatch
// overhead.
//
// ParFor is a plain value and may be copied freely. All of its methods
// are safe for concurrent use.
type ParFor struct {
	// MinSize is the smallest range size for which multiple workers
	// are used. Loops over fewer indices than MinSize run entirely on
	// the calling goroutine.
	MinSize uint64
}

// New returns a ParFor that runs loops of fewer than minSize indices
// sequentially on the calling goroutine, no matter how many workers are
// requested.
func New(minSize uint64) ParFor {
	return ParFor{MinSize: minSize}
}

// Default is a ParFor with the default minimum problem size for
// parallel execution.
var Default = New(qsim.DefaultMinSize)

// IndexRange returns the half-open slice [begin, end) of the range
// [0, size) owned by the given worker, with 0 <= workerID < numWorkers.
// Slices are contiguous, cover [0, size) exactly, and are assigned in
// increasing worker id order, so worker 0 owns the lowest indices. When
// size < numWorkers, some workers own empty slices; that is valid and
// simply means those workers have nothing to do.
//
// If size is below the minimum problem size, the entire range belongs
// to a single worker: begin is 0 and end is size regardless of
// numWorkers and workerID. This mirrors the decision Run makes not to
// engage multiple workers for such ranges.
//
// IndexRange is pure: it has no side effects and always returns the
// same slice for the same inputs.
func (pf ParFor) IndexRange(size uint64, numWorkers, workerID int) (begin, end uint64) {
	if size < pf.MinSize {
		return 0, size
	}
	begin = size * uint64(workerID) / uint64(numWorkers)
	end = size * uint64(workerID+1) / uint64(numWorkers)
	return
}

// Run invokes f once for every index in [0, size), using up to
// numWorkers workers.
//
// If numWorkers > 1 and size is at least the minimum problem size, the
// range is divided among the workers actually granted, which may be
// fewer than requested, and never exceeds runtime.GOMAXPROCS(0). Each
// worker invokes f(granted, workerID, i) for every index i of its own
// slice, in increasing order, with one worker running on the calling
// goroutine and the others in fresh goroutines. Otherwise f(1, 0, i) is
// invoked for every index in increasing order on the calling goroutine.
// If numWorkers < 1, Run does nothing.
//
// Run has no return value; it is useful purely for the side effects of
// f, which must only write to locations determined by its own index.
// Run provides no locking.
//
// If one or more invocations of f panic, the corresponding workers
// recover the panics, and Run panics with the recovered value of the
// lowest worker id, but only after all workers have terminated.
func (pf ParFor) Run(numWorkers int, size uint64, f qsim.WorkFunc) {
	if numWorkers > 1 && size >= pf.MinSize {
		if n := internal.GrantedWorkers(numWorkers); n > 1 {
			panics := make([]interface{}, n)
			var wg sync.WaitGroup
			wg.Add(n - 1)
			for m := 1; m < n; m++ {
				go func(m int) {
					defer func() {
						panics[m] = recover()
						wg.Done()
					}()
					begin, end := pf.IndexRange(size, n, m)
					for i := begin; i < end; i++ {
						f(n, m, i)
					}
				}(m)
			}
			func() {
				defer func() {
					panics[0] = recover()
				}()
				begin, end := pf.IndexRange(size, n, 0)
				for i := begin; i < end; i++ {
					f(n, 0, i)
				}
			}()
			wg.Wait()
			for _, p := range panics {
				if p != nil {
					panic(internal.WrapPanic(p))
				}
			}
			return
		}
	}
	if numWorkers < 1 {
		return
	}
	for i := uint64(0); i < size; i++ {
		f(1, 0, i)
	}
}

// RunReducePartial invokes f once for every index in [0, size) with the
// same dispatch as Run, and returns the per-worker partial results
// without folding them.
//
// Each worker owns one private accumulator, seeded with zero, and folds
// accumulator = pair(accumulator, f(granted, workerID, i)) for every
// index i of its own slice, in increasing order. No accumulator is
// touched by more than one worker, so the accumulation phase needs no
// synchronization. After all workers have joined, the accumulators are
// returned as a slice indexed by worker id. If the sequential path was
// taken, the slice has exactly one element; if numWorkers < 1, it is
// empty and f is never invoked.
//
// pair must be associative with zero as its identity. If pair is also
// commutative, the eventual folded result is independent of the worker
// count.
//
// If one or more invocations of f or pair panic, the corresponding
// workers recover the panics, and RunReducePartial panics with the
// recovered value of the lowest worker id, but only after all workers
// have terminated.
func (pf ParFor) RunReducePartial(
	numWorkers int,
	size uint64,
	f qsim.ReduceFunc,
	pair qsim.PairFunc,
	zero interface{},
) []interface{} {
	if numWorkers > 1 && size >= pf.MinSize {
		if n := internal.GrantedWorkers(numWorkers); n > 1 {
			partials := make([]interface{}, n)
			panics := make([]interface{}, n)
			var wg sync.WaitGroup
			wg.Add(n - 1)
			for m := 1; m < n; m++ {
				go func(m int) {
					defer func() {
						panics[m] = recover()
						wg.Done()
					}()
					begin, end := pf.IndexRange(size, n, m)
					acc := zero
					for i := begin; i < end; i++ {
						acc = pair(acc, f(n, m, i))
					}
					partials[m] = acc
				}(m)
			}
			func() {
				defer func() {
					panics[0] = recover()
				}()
				begin, end := pf.IndexRange(size, n, 0)
				acc := zero
				for i := begin; i < end; i++ {
					acc = pair(acc, f(n, 0, i))
				}
				partials[0] = acc
			}()
			wg.Wait()
			for _, p := range panics {
				if p != nil {
					panic(internal.WrapPanic(p))
				}
			}
			return partials
		}
	}
	if numWorkers < 1 {
		return nil
	}
	acc := zero
	for i := uint64(0); i < size; i++ {
		acc = pair(acc, f(1, 0, i))
	}
	return []interface{}{acc}
}

// RunReduce invokes f once for every index in [0, size) with the same
// dispatch as Run, and folds all per-worker partial results into a
// single value.
//
// The partial results are computed as by RunReducePartial, then folded
// sequentially in increasing worker id order, starting from zero, on
// the calling goroutine. This fold order is part of the contract: for
// an associative and commutative pair the result is independent of the
// worker count, while for a merely associative pair the result is still
// well defined, as the concatenation of the per-worker folds in
// increasing worker id order. If numWorkers < 1, RunReduce returns
// zero.
func (pf ParFor) RunReduce(
	numWorkers int,
	size uint64,
	f qsim.ReduceFunc,
	pair qsim.PairFunc,
	zero interface{},
) interface{} {
	result := zero
	for _, partial := range pf.RunReducePartial(numWorkers, size, f, pair, zero) {
		result = pair(result, partial)
	}
	return result
}

// IntRunReducePartial invokes f once for every index in [0, size) with
// the same dispatch as Run, and returns the per-worker partial results
// without folding them.
//
// It behaves like RunReducePartial for int values, with 0 as the seed
// of every accumulator.
func (pf ParFor) IntRunReducePartial(
	numWorkers int,
	size uint64,
	f qsim.IntReduceFunc,
	pair qsim.IntPairFunc,
) []int {
	if numWorkers > 1 && size >= pf.MinSize {
		if n := internal.GrantedWorkers(numWorkers); n > 1 {
			partials := make([]int, n)
			panics := make([]interface{}, n)
			var wg sync.WaitGroup
			wg.Add(n - 1)
			for m := 1; m < n; m++ {
				go func(m int) {
					defer func() {
						panics[m] = recover()
						wg.Done()
					}()
					begin, end := pf.IndexRange(size, n, m)
					var acc int
					for i := begin; i < end; i++ {
						acc = pair(acc, f(n, m, i))
					}
					partials[m] = acc
				}(m)
			}
			func() {
				defer func() {
					panics[0] = recover()
				}()
				begin, end := pf.IndexRange(size, n, 0)
				var acc int
				for i := begin; i < end; i++ {
					acc = pair(acc, f(n, 0, i))
				}
				partials[0] = acc
			}()
			wg.Wait()
			for _, p := range panics {
				if p != nil {
					panic(internal.WrapPanic(p))
				}
			}
			return partials
		}
	}
	if numWorkers < 1 {
		return nil
	}
	var acc int
	for i := uint64(0); i < size; i++ {
		acc = pair(acc, f(1, 0, i))
	}
	return []int{acc}
}

// IntRunReduce invokes f once for every index in [0, size) with the
// same dispatch as Run, and folds all per-worker partial results into a
// single int.
//
// It behaves like RunReduce for int values, with 0 as the seed; the
// final fold proceeds in increasing worker id order on the calling
// goroutine.
func (pf ParFor) IntRunReduce(
	numWorkers int,
	size uint64,
	f qsim.IntReduceFunc,
	pair qsim.IntPairFunc,
) int {
	var result int
	for _, partial := range pf.IntRunReducePartial(numWorkers, size, f, pair) {
		result = pair(result, partial)
	}
	return result
}

// Float64RunReducePartial invokes f once for every index in [0, size)
// with the same dispatch as Run, and returns the per-worker partial
// results without folding them.
//
// It behaves like RunReducePartial for float64 values, with 0 as the
// seed of every accumulator. Note that floating point addition is not
// associative, so sums computed with different worker counts may differ
// by rounding; the per-worker fold order and the increasing worker id
// fold order of Float64RunReduce make any particular worker count
// reproducible.
func (pf ParFor) Float64RunReducePartial(
	numWorkers int,
	size uint64,
	f qsim.Float64ReduceFunc,
	pair qsim.Float64PairFunc,
) []float64 {
	if numWorkers > 1 && size >= pf.MinSize {
		if n := internal.GrantedWorkers(numWorkers); n > 1 {
			partials := make([]float64, n)
			panics := make([]interface{}, n)
			var wg sync.WaitGroup
			wg.Add(n - 1)
			for m := 1; m < n; m++ {
				go func(m int) {
					defer func() {
						panics[m] = recover()
						wg.Done()
					}()
					begin, end := pf.IndexRange(size, n, m)
					var acc float64
					for i := begin; i < end; i++ {
						acc = pair(acc, f(n, m, i))
					}
					partials[m] = acc
				}(m)
			}
			func() {
				defer func() {
					panics[0] = recover()
				}()
				begin, end := pf.IndexRange(size, n, 0)
				var acc float64
				for i := begin; i < end; i++ {
					acc = pair(acc, f(n, 0, i))
				}
				partials[0] = acc
			}()
			wg.Wait()
			for _, p := range panics {
				if p != nil {
					panic(internal.WrapPanic(p))
				}
			}
			return partials
		}
	}
	if numWorkers < 1 {
		return nil
	}
	var acc float64
	for i := uint64(0); i < size; i++ {
		acc = pair(acc, f(1, 0, i))
	}
	return []float64{acc}
}

// Float64RunReduce invokes f once for every index in [0, size) with the
// same dispatch as Run, and folds all per-worker partial results into a
// single float64.
//
// It behaves like RunReduce for float64 values, with 0 as the seed; the
// final fold proceeds in increasing worker id order on the calling
// goroutine.
func (pf ParFor) Float64RunReduce(
	numWorkers int,
	size uint64,
	f qsim.Float64ReduceFunc,
	pair qsim.Float64PairFunc,
) float64 {
	var result float64
	for _, partial := range pf.Float64RunReducePartial(numWorkers, size, f, pair) {
		result = pair(result, partial)
	}
	return result
}

// Complex128RunReducePartial invokes f once for every index in
// [0, size) with the same dispatch as Run, and returns the per-worker
// partial results without folding them.
//
// It behaves like RunReducePartial for complex128 values, with 0 as the
// seed of every accumulator.
func (pf ParFor) Complex128RunReducePartial(
	numWorkers int,
	size uint64,
	f qsim.Complex128ReduceFunc,
	pair qsim.Complex128PairFunc,
) []complex128 {
	if numWorkers > 1 && size >= pf.MinSize {
		if n := internal.GrantedWorkers(numWorkers); n > 1 {
			partials := make([]complex128, n)
			panics := make([]interface{}, n)
			var wg sync.WaitGroup
			wg.Add(n - 1)
			for m := 1; m < n; m++ {
				go func(m int) {
					defer func() {
						panics[m] = recover()
						wg.Done()
					}()
					begin, end := pf.IndexRange(size, n, m)
					var acc complex128
					for i := begin; i < end; i++ {
						acc = pair(acc, f(n, m, i))
					}
					partials[m] = acc
				}(m)
			}
			func() {
				defer func() {
					panics[0] = recover()
				}()
				begin, end := pf.IndexRange(size, n, 0)
				var acc complex128
				for i := begin; i < end; i++ {
					acc = pair(acc, f(n, 0, i))
				}
				partials[0] = acc
			}()
			wg.Wait()
			for _, p := range panics {
				if p != nil {
					panic(internal.WrapPanic(p))
				}
			}
			return partials
		}
	}
	if numWorkers < 1 {
		return nil
	}
	var acc complex128
	for i := uint64(0); i < size; i++ {
		acc = pair(acc, f(1, 0, i))
	}
	return []complex128{acc}
}

// Complex128RunReduce invokes f once for every index in [0, size) with
// the same dispatch as Run, and folds all per-worker partial results
// into a single complex128.
//
// It behaves like RunReduce for complex128 values, with 0 as the seed;
// the final fold proceeds in increasing worker id order on the calling
// goroutine.
func (pf ParFor) Complex128RunReduce(
	numWorkers int,
	size uint64,
	f qsim.Complex128ReduceFunc,
	pair qsim.Complex128PairFunc,
) complex128 {
	var result complex128
	for _, partial := range pf.Complex128RunReducePartial(numWorkers, size, f, pair) {
		result = pair(result, partial)
	}
	return result
}
