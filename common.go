package qsim

// DefaultMinSize is the default minimum problem size for parallel
// execution. Below this size, the dispatch overhead of spawning worker
// goroutines typically exceeds the cost of just running the loop on the
// calling goroutine, so the functions in qsim/parfor fall back to
// sequential execution for smaller ranges unless configured otherwise.
const DefaultMinSize = 1024

type (
	// A WorkFunc is invoked once per index of a loop, with 0 <= i < size.
	//
	// The numWorkers and workerID parameters report the worker count
	// actually granted for the enclosing loop and the identity of the
	// invoking worker, with 0 <= workerID < numWorkers. They are valid
	// only for the duration of that loop, and can be used to select
	// worker-local scratch space. Any further context must be captured
	// by the closure.
	WorkFunc func(numWorkers, workerID int, i uint64)

	// A ReduceFunc is invoked once per index of a loop, like a WorkFunc,
	// and returns a value to be folded into the invoking worker's
	// accumulator.
	ReduceFunc func(numWorkers, workerID int, i uint64) interface{}

	// An IntReduceFunc is a ReduceFunc that returns an int.
	IntReduceFunc func(numWorkers, workerID int, i uint64) int

	// A Float64ReduceFunc is a ReduceFunc that returns a float64.
	Float64ReduceFunc func(numWorkers, workerID int, i uint64) float64

	// A Complex128ReduceFunc is a ReduceFunc that returns a complex128.
	Complex128ReduceFunc func(numWorkers, workerID int, i uint64) complex128

	// A PairFunc combines two values into one. It must be associative,
	// with the seed value passed alongside it acting as its identity,
	// for reductions to have a single well-defined result.
	PairFunc func(x, y interface{}) interface{}

	// An IntPairFunc is a PairFunc over int values, with 0 as the
	// identity.
	IntPairFunc func(x, y int) int

	// A Float64PairFunc is a PairFunc over float64 values, with 0 as
	// the identity.
	Float64PairFunc func(x, y float64) float64

	// A Complex128PairFunc is a PairFunc over complex128 values, with 0
	// as the identity.
	Complex128PairFunc func(x, y complex128) complex128
)
