package util

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPoolRunsAllJobs(t *testing.T) {
	p := NewWorkerPool(4, 100)

	var counter int64
	for i := 0; i < 50; i++ {
		ok := p.Submit(func() { atomic.AddInt64(&counter, 1) })
		assert.True(t, ok)
	}
	p.Wait()

	assert.Equal(t, int64(50), counter)
	assert.Equal(t, int64(50), p.Submitted())
	assert.Equal(t, int64(50), p.Completed())
}

func TestWorkerPoolRejectsNilJob(t *testing.T) {
	p := NewWorkerPool(1, 1)
	defer p.Wait()

	assert.False(t, p.Submit(nil))
}

func TestWorkerPoolRejectsWhenQueueFull(t *testing.T) {
	p := NewWorkerPool(1, 1)

	block := make(chan struct{})
	p.Submit(func() { <-block })
	p.Submit(func() {})

	// Worker busy and queue full: the next submit is rejected, not blocked.
	rejected := false
	for i := 0; i < 10; i++ {
		if !p.Submit(func() {}) {
			rejected = true
			break
		}
	}
	assert.True(t, rejected)

	close(block)
	p.Wait()
}

func TestWorkerPoolDefaults(t *testing.T) {
	p := NewWorkerPool(0, 0)
	assert.True(t, p.Submit(func() {}))
	p.Wait()
	assert.Equal(t, int64(1), p.Completed())
}
