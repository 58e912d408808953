package internal

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
)

// GrantedWorkers determines how many workers a loop actually gets for a
// request of n. The request is treated as an upper bound: there is no
// point in using more workers than there are logical CPUs available, as
// determined by runtime.GOMAXPROCS(0), so the request is capped there.
// Callers must partition work against the returned count, never against
// the request.
func GrantedWorkers(n int) int {
	if procs := runtime.GOMAXPROCS(0); n > procs {
		return procs
	}
	return n
}

type runtimeError struct{ error }

func (runtimeError) RuntimeError() {}

// WrapPanic adds stack trace information to a panic value recovered in
// a worker goroutine, so that the stack is not lost when the panic is
// rethrown on the calling goroutine after all workers have joined.
func WrapPanic(p interface{}) interface{} {
	if p != nil {
		s := fmt.Sprintf("%v\n%s\nrethrown at", p, debug.Stack())
		if _, isError := p.(error); isError {
			r := errors.New(s)
			if _, isRuntimeError := p.(runtime.Error); isRuntimeError {
				return runtimeError{r}
			}
			return r
		}
		return s
	}
	return nil
}
