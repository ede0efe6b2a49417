package schedule

import "time"

// Ticker is the part of time.Ticker the scheduler needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type realTicker struct{ t *time.Ticker }

// NewTicker wraps time.NewTicker. A non-positive interval falls back to one
// frame at 60fps.
func NewTicker(d time.Duration) Ticker {
	if d <= 0 {
		d = 16 * time.Millisecond
	}
	return realTicker{t: time.NewTicker(d)}
}

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// ManualTicker fires only when Tick is called. Used by tests.
type ManualTicker struct {
	ch      chan time.Time
	stopped chan struct{}
}

func NewManualTicker() *ManualTicker {
	return &ManualTicker{ch: make(chan time.Time), stopped: make(chan struct{})}
}

func (m *ManualTicker) C() <-chan time.Time { return m.ch }

func (m *ManualTicker) Stop() {
	select {
	case <-m.stopped:
	default:
		close(m.stopped)
	}
}

// Tick delivers one tick and reports whether the loop took it. It returns
// false once the ticker is stopped.
func (m *ManualTicker) Tick() bool {
	select {
	case m.ch <- time.Now():
		return true
	case <-m.stopped:
		return false
	}
}

// Stopped is closed after Stop.
func (m *ManualTicker) Stopped() <-chan struct{} { return m.stopped }
