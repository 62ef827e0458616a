package ui

import (
	"strconv"
	"sync"
	"time"
)

// ControlID names one clickable control: the "+" of a line in the modal
// is a different control from the "+" of the same line on checkout.
type ControlID struct {
	Surface   string
	Action    string
	ProductID int
	Size      string
}

func (id ControlID) String() string {
	return id.Surface + "/" + id.Action + "/" + strconv.Itoa(id.ProductID) + "/" + id.Size
}

type ControlState int

const (
	ControlIdle ControlState = iota
	ControlPending
	ControlSucceeded
	ControlFailed
)

func (s ControlState) String() string {
	switch s {
	case ControlPending:
		return "pending"
	case ControlSucceeded:
		return "settled-success"
	case ControlFailed:
		return "settled-error"
	default:
		return "idle"
	}
}

// Enabled reports whether the control accepts activation.
func (s ControlState) Enabled() bool { return s != ControlPending }

// controls runs idle -> pending -> settled -> idle per control. Only a
// pending control refuses activation.
type controls struct {
	surface func() ControlSurface
	sched   Scheduler
	settle  time.Duration

	mu     sync.Mutex
	states map[ControlID]ControlState
	resets map[ControlID]Timer
	// gens counts begin/end calls per control; a reset only applies to
	// the generation that scheduled it.
	gens map[ControlID]uint64
}

func newControls(surface func() ControlSurface, sched Scheduler, settle time.Duration) *controls {
	return &controls{
		surface: surface,
		sched:   sched,
		settle:  settle,
		states:  make(map[ControlID]ControlState),
		resets:  make(map[ControlID]Timer),
		gens:    make(map[ControlID]uint64),
	}
}

// begin moves id to pending. It returns false if id is already pending.
func (c *controls) begin(id ControlID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.states[id] == ControlPending {
		return false
	}
	if t, ok := c.resets[id]; ok {
		stop(t)
		delete(c.resets, id)
	}
	c.gens[id]++
	c.setLocked(id, ControlPending)
	return true
}

// end settles id. It must run on every exit path of the gesture.
func (c *controls) end(id ControlID, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	settled := ControlFailed
	if ok {
		settled = ControlSucceeded
	}
	if c.settle <= 0 {
		c.setLocked(id, ControlIdle)
		return
	}
	c.setLocked(id, settled)
	c.gens[id]++
	gen := c.gens[id]
	c.resets[id] = c.sched.AfterFunc(c.settle, func() { c.reset(id, gen) })
}

// reset returns id to idle unless a later begin or end superseded the
// timer that called it.
func (c *controls) reset(id ControlID, gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gens[id] != gen {
		return
	}
	delete(c.resets, id)
	c.setLocked(id, ControlIdle)
}

func (c *controls) state(id ControlID) ControlState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.states[id]
}

func (c *controls) setLocked(id ControlID, s ControlState) {
	if s == ControlIdle {
		delete(c.states, id)
	} else {
		c.states[id] = s
	}
	if surf := c.surface(); surf != nil {
		surf.SetControlState(id, s)
	}
}
