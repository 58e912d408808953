package parfor_test

// A state vector of q qubits holds 2^q complex amplitudes, and a valid
// state is normalized: the squared magnitudes of its amplitudes sum to
// one. Checking normalization is a typical reduction over a large
// contiguous range where the work per index is tiny.

import (
	"fmt"
	"runtime"

	"gonum.org/v1/gonum/mat"

	"github.com/holzman/qsim/parfor"
)

// uniformState returns the real part of the uniform superposition over
// q qubits, in which every amplitude is 1/sqrt(2^q).
func uniformState(q uint) *mat.VecDense {
	size := 1 << q
	data := make([]float64, size)
	amplitude := 1.0 / float64(uint64(1)<<(q/2))
	for i := range data {
		data[i] = amplitude
	}
	return mat.NewVecDense(size, data)
}

func squaredNorm(state *mat.VecDense) float64 {
	return parfor.Default.Float64RunReduce(
		runtime.GOMAXPROCS(0), uint64(state.Len()),
		func(numWorkers, workerID int, i uint64) float64 {
			a := state.AtVec(int(i))
			return a * a
		},
		func(x, y float64) float64 { return x + y },
	)
}

func Example_stateNorm() {
	// 12 qubits, so every amplitude is exactly 1/64 and the squared
	// norm is exact in floating point for any summation order.
	state := uniformState(12)

	fmt.Println(state.Len())
	fmt.Println(squaredNorm(state))

	// Output:
	// 4096
	// 1
}
