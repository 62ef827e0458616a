package ui

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
)

type Notification struct {
	ID      string
	Message string
	Kind    NotificationKind
}

// Notifier keeps at most one notification on screen and dismisses it
// after ttl. A new notification replaces the current one.
type Notifier struct {
	surface func() NotificationSurface
	sched   Scheduler
	ttl     time.Duration
	log     *zap.Logger

	mu      sync.Mutex
	current string
	timer   Timer
}

func newNotifier(surface func() NotificationSurface, sched Scheduler, ttl time.Duration, log *zap.Logger) *Notifier {
	return &Notifier{surface: surface, sched: sched, ttl: ttl, log: log}
}

func (n *Notifier) Show(msg string, kind NotificationKind) Notification {
	note := Notification{ID: uuid.NewString(), Message: msg, Kind: kind}

	n.mu.Lock()
	defer n.mu.Unlock()

	s := n.surface()
	if n.current != "" {
		stop(n.timer)
		if s != nil {
			s.DismissNotification(n.current)
		}
	}
	n.current = note.ID
	if s == nil {
		n.log.Info("notification", zap.String("kind", string(kind)), zap.String("message", msg))
	} else {
		s.ShowNotification(note)
	}
	if n.ttl > 0 {
		id := note.ID
		n.timer = n.sched.AfterFunc(n.ttl, func() { n.expire(id) })
	}
	return note
}

// Current returns the id of the notification on screen, if any.
func (n *Notifier) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

func (n *Notifier) expire(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current != id {
		return
	}
	n.current = ""
	n.timer = nil
	if s := n.surface(); s != nil {
		s.DismissNotification(id)
	}
}
