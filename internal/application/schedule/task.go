package schedule

import (
	"context"
	"sync"
)

// Func runs once per tick. Returning false or an error ends the task.
type Func func(ctx context.Context) (bool, error)

// Task is a running periodic loop.
type Task struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once

	mu  sync.Mutex
	err error
}

// Start runs fn on every tick of t until ctx is cancelled, Cancel is called
// or fn asks to stop. The ticker is stopped when the loop exits.
func Start(ctx context.Context, t Ticker, fn Func) *Task {
	ctx, cancel := context.WithCancel(ctx)
	task := &Task{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(task.done)
		defer t.Stop()
		defer cancel()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C():
				// cancel bisa menang race dengan tick
				if ctx.Err() != nil {
					return
				}
				more, err := fn(ctx)
				if err != nil {
					task.setErr(err)
					return
				}
				if !more {
					return
				}
			}
		}
	}()
	return task
}

// Finished returns a task that has already exited.
func Finished() *Task {
	t := &Task{cancel: func() {}, done: make(chan struct{})}
	close(t.done)
	return t
}

// Cancel stops the loop. Safe to call more than once.
func (t *Task) Cancel() {
	t.once.Do(t.cancel)
}

// Done is closed when the loop has exited. No callback runs after that.
func (t *Task) Done() <-chan struct{} { return t.done }

// Wait blocks until the loop exits and returns the error fn ended it with.
func (t *Task) Wait() error {
	<-t.done
	return t.Err()
}

func (t *Task) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

func (t *Task) setErr(err error) {
	t.mu.Lock()
	t.err = err
	t.mu.Unlock()
}
