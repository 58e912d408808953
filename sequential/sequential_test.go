package sequential_test

import (
	"testing"

	"github.com/holzman/qsim/parfor"
	"github.com/holzman/qsim/sequential"
)

func TestRun(t *testing.T) {
	const size = 1000
	next := uint64(0)
	sequential.Run(8, size, func(numWorkers, workerID int, i uint64) {
		if numWorkers != 1 || workerID != 0 {
			t.Errorf("index %v: got worker %v of %v, want worker 0 of 1", i, workerID, numWorkers)
		}
		if i != next {
			t.Errorf("reached index %v, want %v", i, next)
		}
		next++
	})
	if next != size {
		t.Errorf("visited %v indices, want %v", next, size)
	}
}

func TestRunZeroWorkers(t *testing.T) {
	sequential.Run(0, 1000, func(numWorkers, workerID int, i uint64) {
		t.Errorf("index %v visited with zero workers requested", i)
	})
	if partials := sequential.IntRunReducePartial(0, 1000, func(numWorkers, workerID int, i uint64) int {
		return int(i)
	}, func(x, y int) int { return x + y }); len(partials) != 0 {
		t.Errorf("got %v partial results, want none", len(partials))
	}
}

func TestReduceAgreesWithParfor(t *testing.T) {
	const size = 100000
	intF := func(numWorkers, workerID int, i uint64) int { return int(i % 101) }
	intPair := func(x, y int) int { return x + y }
	if seq, par := sequential.IntRunReduce(4, size, intF, intPair),
		parfor.New(1).IntRunReduce(4, size, intF, intPair); seq != par {
		t.Errorf("sequential %v, parallel %v", seq, par)
	}

	floatF := func(numWorkers, workerID int, i uint64) float64 { return float64(i % 16) }
	floatPair := func(x, y float64) float64 { return x + y }
	if seq, par := sequential.Float64RunReduce(4, size, floatF, floatPair),
		parfor.New(1).Float64RunReduce(4, size, floatF, floatPair); seq != par {
		t.Errorf("sequential %v, parallel %v", seq, par)
	}

	complexF := func(numWorkers, workerID int, i uint64) complex128 {
		return complex(float64(i%7), float64(i%3))
	}
	complexPair := func(x, y complex128) complex128 { return x + y }
	if seq, par := sequential.Complex128RunReduce(4, size, complexF, complexPair),
		parfor.New(1).Complex128RunReduce(4, size, complexF, complexPair); seq != par {
		t.Errorf("sequential %v, parallel %v", seq, par)
	}
}

func TestRunReducePartial(t *testing.T) {
	partials := sequential.RunReducePartial(
		4, 10,
		func(numWorkers, workerID int, i uint64) interface{} { return int(i) },
		func(x, y interface{}) interface{} { return x.(int) + y.(int) },
		0,
	)
	if len(partials) != 1 {
		t.Fatalf("got %v partial results, want 1", len(partials))
	}
	if partials[0].(int) != 45 {
		t.Errorf("got partial %v, want 45", partials[0])
	}
	result := sequential.RunReduce(
		4, 10,
		func(numWorkers, workerID int, i uint64) interface{} { return int(i) },
		func(x, y interface{}) interface{} { return x.(int) + y.(int) },
		0,
	)
	if result.(int) != 45 {
		t.Errorf("got %v, want 45", result)
	}
}
