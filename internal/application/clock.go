package application

import "time"

// Clock interface supaya gampang ditest
type Clock interface {
	Now() time.Time
}

// SystemClock implementasi default, pakai time.Now()
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Sleeper blocks for a fixed delay. The simulated auth flows use it so tests
// don't have to wait.
type Sleeper interface {
	Sleep(d time.Duration)
}

type SystemSleeper struct{}

func (SystemSleeper) Sleep(d time.Duration) { time.Sleep(d) }

// NoSleep skips every delay.
type NoSleep struct{}

func (NoSleep) Sleep(time.Duration) {}
