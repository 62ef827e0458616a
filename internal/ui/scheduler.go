package ui

import "time"

type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d. The presenter never calls it while
// expecting f to run synchronously.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type clockScheduler struct{}

func (clockScheduler) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

func stop(t Timer) {
	if t != nil {
		t.Stop()
	}
}
