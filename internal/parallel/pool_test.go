// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package parallel

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestWorkerPool_CreateDefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -5} {
		pool := NewWorkerPool(n)
		if pool.Workers() != runtime.GOMAXPROCS(0) {
			t.Errorf("NewWorkerPool(%d).Workers() = %d, want GOMAXPROCS", n, pool.Workers())
		}
		pool.Close()
	}
}

func TestWorkerPool_ExecuteAll(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	work := make([]func(), 100)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}
	pool.ExecuteAll(work)

	if counter.Load() != 100 {
		t.Errorf("counter = %d, want 100", counter.Load())
	}
}

func TestWorkerPool_ExecuteAllEmpty(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()
	pool.ExecuteAll(nil)
}

func TestWorkerPool_CloseIdempotent(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close()
	if pool.IsRunning() {
		t.Error("pool still running after Close")
	}
}

func TestWorkerPool_ExecuteAfterClose(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()

	ran := 0
	pool.ExecuteAll([]func(){func() { ran++ }, func() { ran++ }})
	if ran != 2 {
		t.Errorf("ran = %d, want work to run inline after Close", ran)
	}
}

func TestSplitRows(t *testing.T) {
	tests := []struct {
		height, n int
		want      []Band
	}{
		{10, 3, []Band{{0, 4}, {4, 7}, {7, 10}}},
		{4, 4, []Band{{0, 1}, {1, 2}, {2, 3}, {3, 4}}},
		{2, 8, []Band{{0, 1}, {1, 2}}},
		{5, 0, []Band{{0, 5}}},
		{0, 4, nil},
	}
	for _, tt := range tests {
		got := SplitRows(tt.height, tt.n)
		if len(got) != len(tt.want) {
			t.Errorf("SplitRows(%d,%d) = %v, want %v", tt.height, tt.n, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] || got[i].Height() == 0 {
				t.Errorf("SplitRows(%d,%d)[%d] = %v, want %v", tt.height, tt.n, i, got[i], tt.want[i])
			}
		}
	}
}
