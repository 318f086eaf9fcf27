package workpool

import (
	"sync/atomic"
	"testing"
)

func TestForRangeCoversEveryIndexExactlyOnce(t *testing.T) {
	n := 5000
	var hits [5000]int32
	ForRange(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
	})
	for i, h := range hits {
		if h != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, h)
		}
	}
}

func TestForRangeSmallNRunsSequentially(t *testing.T) {
	called := 0
	ForRange(10, func(lo, hi int) {
		called++
		if lo != 0 || hi != 10 {
			t.Errorf("chunk = [%d,%d), want [0,10)", lo, hi)
		}
	})
	if called != 1 {
		t.Errorf("fn called %d times, want 1 for n < MinParallel", called)
	}
}

func TestForRangeZero(t *testing.T) {
	called := false
	ForRange(0, func(lo, hi int) { called = true })
	if !called {
		t.Error("fn should still be called once for n=0 in the sequential path")
	}
}
