package queue_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shashiranjanraj/bistro/pkg/queue"
)

var (
	echoCalls    atomic.Int32
	failAttempts atomic.Int32
)

type echoJob struct {
	Val string
}

func (j *echoJob) Handle() error {
	echoCalls.Add(1)
	return nil
}

type failJob struct{}

func (j *failJob) Handle() error {
	failAttempts.Add(1)
	return errors.New("always fails")
}

func init() {
	queue.SetMaxRetry(2)
	queue.Register("*queue_test.echoJob", func() queue.Job { return &echoJob{} })
	queue.Register("*queue_test.failJob", func() queue.Job { return &failJob{} })
	queue.StartWorkers(context.Background(), 2)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestDispatchProcessesJob(t *testing.T) {
	before := echoCalls.Load()
	if err := queue.Dispatch(&echoJob{Val: "order-confirmed"}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	waitFor(t, func() bool { return echoCalls.Load() > before })
}

func TestFailingJobIsRetriedThenRecorded(t *testing.T) {
	if err := queue.Dispatch(&failJob{}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	waitFor(t, func() bool { return failAttempts.Load() >= 2 })
	waitFor(t, func() bool { return len(queue.FailedJobs()) > 0 })
}

func TestMemoryDriverRejectsWhenFull(t *testing.T) {
	d := queue.NewMemoryDriver()
	var err error
	for i := 0; i < 1001; i++ {
		err = d.Push([]byte(`{}`))
		if err != nil {
			break
		}
	}
	if !errors.Is(err, queue.ErrQueueFull) {
		t.Errorf("push on full queue = %v, want ErrQueueFull", err)
	}
}

func TestMemoryDriverPopHonorsContext(t *testing.T) {
	d := queue.NewMemoryDriver()
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := d.Pop(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("pop on empty queue = %v, want deadline exceeded", err)
	}
}
