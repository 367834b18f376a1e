package queue

import (
	"context"
	"errors"
)

// ErrQueueFull is returned by Push when the in-memory queue is at capacity.
// Callers dispatching best-effort work should log and drop.
var ErrQueueFull = errors.New("queue: memory queue is full")

// MemoryDriver is an in-process, channel-backed queue driver.
// Push never blocks: when the buffer is full the job is rejected with
// ErrQueueFull so a slow consumer can never stall a request handler.
// Not durable across restarts.
type MemoryDriver struct {
	ch chan []byte
}

// NewMemoryDriver creates an in-memory queue with a buffer of 1000 jobs.
func NewMemoryDriver() *MemoryDriver {
	return &MemoryDriver{ch: make(chan []byte, 1000)}
}

func (d *MemoryDriver) Push(payload []byte) error {
	select {
	case d.ch <- payload:
		return nil
	default:
		return ErrQueueFull
	}
}

func (d *MemoryDriver) Pop(ctx context.Context) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case payload := <-d.ch:
		return payload, nil
	}
}
