// Package workpool is the single chunked-range parallelism helper shared
// by every data-parallel gate kernel and by qreg.MatrixQureg: an
// OpenMP-style parallel for that splits a loop over independent entries
// into GOMAXPROCS pieces and runs them concurrently, since each
// iteration only ever touches entries disjoint from every other
// iteration's.
//
// Simplified from a channel-fed worker pool draining a task queue down
// to the one shape this core needs: static range chunking with no
// result collection, since gate kernels mutate their register argument
// directly.
package workpool

import (
	"runtime"
	"sync"
)

// MinParallel is the entry count below which ForRange runs sequentially;
// below this, chunking overhead outweighs the benefit.
const MinParallel = 1024

// ForRange calls fn(lo, hi) once per chunk of [0, n), running chunks
// concurrently across runtime.GOMAXPROCS(0) goroutines when n is large
// enough, and sequentially (a single fn(0, n) call) otherwise. It blocks
// until every chunk has completed.
func ForRange(n int, fn func(lo, hi int)) {
	workers := runtime.GOMAXPROCS(0)
	if n < MinParallel || workers <= 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
