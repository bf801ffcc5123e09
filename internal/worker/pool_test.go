package worker_test

import (
	"sort"
	"strconv"
	"testing"

	"github.com/quicktest/backend/internal/worker"
)

func TestPool_RunsEveryJob(t *testing.T) {
	p := worker.NewPool[int](3, 10)

	for i := 0; i < 5; i++ {
		n := i
		if !p.Submit(strconv.Itoa(n), func() int { return n * n }) {
			t.Fatalf("submit %d rejected", n)
		}
	}

	var got []int
	for i := 0; i < 5; i++ {
		got = append(got, (<-p.Results()).Output)
	}
	p.Close()

	sort.Ints(got)
	want := []int{0, 1, 4, 9, 16}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestPool_CloseDrainsQueuedJobs(t *testing.T) {
	p := worker.NewPool[string](1, 4)
	p.Submit("a", func() string { return "a" })
	p.Submit("b", func() string { return "b" })

	done := make(chan []string)
	go func() {
		var ids []string
		for r := range p.Results() {
			ids = append(ids, r.JobID)
		}
		done <- ids
	}()
	p.Close()

	if ids := <-done; len(ids) != 2 {
		t.Errorf("expected 2 results before close, got %v", ids)
	}
}

func TestPool_RejectsAfterClose(t *testing.T) {
	p := worker.NewPool[int](1, 1)
	go func() {
		for range p.Results() {
		}
	}()
	p.Close()

	if p.Submit("x", func() int { return 1 }) {
		t.Error("expected Submit to fail after Close")
	}
	if p.TrySubmit("x", func() int { return 1 }) {
		t.Error("expected TrySubmit to fail after Close")
	}
	// Closing twice is harmless.
	p.Close()
}

func TestPool_TrySubmitFullQueue(t *testing.T) {
	block := make(chan struct{})
	p := worker.NewPool[int](1, 1)

	// First job occupies the worker, second fills the queue.
	p.Submit("busy", func() int { <-block; return 0 })
	accepted := 0
	for i := 0; i < 3; i++ {
		if p.TrySubmit("extra", func() int { return 1 }) {
			accepted++
		}
	}
	close(block)

	if accepted > 2 {
		t.Errorf("expected at most 2 queued jobs, got %d", accepted)
	}
	if accepted == 3 {
		t.Error("expected TrySubmit to reject once the queue is full")
	}

	go func() {
		for range p.Results() {
		}
	}()
	p.Close()
}
