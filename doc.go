// Package qsim provides building blocks for data-parallel loops and
// reductions over contiguous index ranges. A range [0, size) is divided
// into near-equal contiguous slices, one per worker, and a caller-supplied
// function is invoked for every index, either purely for its side effects
// or to produce values that are folded into a single result.
//
// The root package only declares the function types shared by the
// implementation packages, and the default minimum problem size below
// which parallel execution does not pay off.
//
// qsim/parfor provides the parallel implementations: a plain parallel
// for loop, and reductions that give every worker a private accumulator
// and fold the per-worker partial results after all workers have joined.
//
// qsim/sequential provides sequential implementations of all functions
// from qsim/parfor, for testing and debugging purposes.
//
// While Go is primarily designed for concurrent programming, it is also
// usable for parallel programming, and these packages are intended for
// tight numerical kernels where the work per index is small and the
// dispatch overhead must stay low. The approach has been influenced by
// OpenMP-style parallel regions with static scheduling.
package qsim
