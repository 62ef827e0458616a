package ui

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/carrito-web/internal/cart"
	"github.com/MikeMC777/carrito-web/internal/checkout"
)

//
// ---------- STORE ----------
//

// fakeStore behaves like the storefront: same (product, size) merges,
// remove decrements. Products listed in gates block until released.
type fakeStore struct {
	mu      sync.Mutex
	cart    cart.Cart
	fail    string // "network" or a rejection message
	calls   map[cart.Key]int
	gates   map[int]chan struct{}
	started chan cart.Key
	panicky bool
}

func newFakeStore(lines ...cart.Line) *fakeStore {
	return &fakeStore{
		cart:    cart.Cart{Items: append([]cart.Line{}, lines...)},
		calls:   make(map[cart.Key]int),
		gates:   make(map[int]chan struct{}),
		started: make(chan cart.Key, 16),
	}
}

func line(id, qty int, price, size string) cart.Line {
	return cart.Line{ProductID: id, Name: "P" + price, Qty: qty, UnitPrice: decimal.RequireFromString(price), Size: size}
}

func (s *fakeStore) gate(productID int) chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := make(chan struct{})
	s.gates[productID] = g
	return g
}

func (s *fakeStore) enter(k cart.Key) {
	s.mu.Lock()
	s.calls[k]++
	g := s.gates[k.ProductID]
	panicky := s.panicky
	s.mu.Unlock()
	select {
	case s.started <- k:
	default:
	}
	if panicky {
		panic("store exploded")
	}
	if g != nil {
		<-g
	}
}

func (s *fakeStore) callCount(k cart.Key) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[k]
}

func (s *fakeStore) failure() (cart.Result, bool) {
	switch s.fail {
	case "":
		return cart.Result{}, false
	case "network":
		return cart.Result{Error: cart.NetworkError, Transport: true}, true
	default:
		return cart.Result{Error: s.fail}, true
	}
}

func (s *fakeStore) AddLine(_ context.Context, productID, qty int, size string) cart.Result {
	k := cart.Key{ProductID: productID, Size: size}
	s.enter(k)
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, failed := s.failure(); failed {
		return r
	}
	next := s.cart.Clone()
	found := false
	for i := range next.Items {
		if next.Items[i].Key() == k {
			next.Items[i].Qty += qty
			found = true
		}
	}
	if !found {
		next.Items = append(next.Items, line(productID, qty, "10", size))
	}
	s.cart = next
	out := next.Clone()
	return cart.Result{OK: true, Cart: &out}
}

func (s *fakeStore) RemoveLine(_ context.Context, productID int, size string) cart.Result {
	k := cart.Key{ProductID: productID, Size: size}
	s.enter(k)
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, failed := s.failure(); failed {
		return r
	}
	next := cart.Cart{Items: []cart.Line{}}
	for _, it := range s.cart.Items {
		if it.Key() == k {
			it.Qty--
			if it.Qty <= 0 {
				continue
			}
		}
		next.Items = append(next.Items, it)
	}
	s.cart = next
	out := next.Clone()
	return cart.Result{OK: true, Cart: &out}
}

func (s *fakeStore) Snapshot() cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Clone()
}

func (s *fakeStore) TotalQty() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalQty()
}

//
// ---------- PAGE ----------
//

type fakeCounter struct {
	mu     sync.Mutex
	last   CounterView
	count  int
	panics bool
}

func (c *fakeCounter) RenderCounter(v CounterView) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.panics {
		panic("counter template failed")
	}
	c.last = v
	c.count++
}

type fakeModal struct {
	mu      sync.Mutex
	last    ModalView
	renders int
	visible bool
	active  bool
}

func (m *fakeModal) RenderModal(v ModalView) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = v
	m.renders++
}

func (m *fakeModal) SetVisible(v bool) { m.mu.Lock(); m.visible = v; m.mu.Unlock() }
func (m *fakeModal) SetActive(a bool)  { m.mu.Lock(); m.active = a; m.mu.Unlock() }

func (m *fakeModal) state() (visible, active bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.visible, m.active
}

func (m *fakeModal) view() ModalView {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

type fakeCheckout struct {
	mu   sync.Mutex
	last CheckoutView
}

func (c *fakeCheckout) RenderCheckout(v CheckoutView) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.last = v
}

func (c *fakeCheckout) view() CheckoutView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

type fakeNotes struct {
	mu      sync.Mutex
	shown   []Notification
	current *Notification
}

func (n *fakeNotes) ShowNotification(note Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.shown = append(n.shown, note)
	n.current = &note
}

func (n *fakeNotes) DismissNotification(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current != nil && n.current.ID == id {
		n.current = nil
	}
}

func (n *fakeNotes) last() (Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return Notification{}, false
	}
	return *n.current, true
}

type fakeControls struct {
	mu     sync.Mutex
	states map[ControlID][]ControlState
}

func (c *fakeControls) SetControlState(id ControlID, s ControlState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.states == nil {
		c.states = make(map[ControlID][]ControlState)
	}
	c.states[id] = append(c.states[id], s)
}

func (c *fakeControls) history(id ControlID) []ControlState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]ControlState(nil), c.states[id]...)
}

// fakePage returns nil for any surface left unset.
type fakePage struct {
	counter  *fakeCounter
	modal    *fakeModal
	checkout *fakeCheckout
	notes    *fakeNotes
	controls *fakeControls
}

func fullPage() *fakePage {
	return &fakePage{
		counter:  &fakeCounter{},
		modal:    &fakeModal{},
		checkout: &fakeCheckout{},
		notes:    &fakeNotes{},
		controls: &fakeControls{},
	}
}

func (p *fakePage) Counter() CounterSurface {
	if p.counter == nil {
		return nil
	}
	return p.counter
}

func (p *fakePage) Modal() ModalSurface {
	if p.modal == nil {
		return nil
	}
	return p.modal
}

func (p *fakePage) Checkout() CheckoutSurface {
	if p.checkout == nil {
		return nil
	}
	return p.checkout
}

func (p *fakePage) Notifications() NotificationSurface {
	if p.notes == nil {
		return nil
	}
	return p.notes
}

func (p *fakePage) Controls() ControlSurface {
	if p.controls == nil {
		return nil
	}
	return p.controls
}

//
// ---------- SCHEDULER ----------
//

type manualTimer struct {
	s       *manualScheduler
	at      time.Duration
	seq     int
	f       func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	was := !t.stopped && !t.fired
	t.stopped = true
	return was
}

// manualScheduler only runs timers when Advance is called.
type manualScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*manualTimer
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	t := &manualTimer{s: s, at: s.now + d, seq: s.seq, f: f}
	s.timers = append(s.timers, t)
	return t
}

func (s *manualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	var due []*manualTimer
	for _, t := range s.timers {
		if !t.stopped && !t.fired && t.at <= s.now {
			t.fired = true
			due = append(due, t)
		}
	}
	s.mu.Unlock()
	sort.Slice(due, func(i, j int) bool {
		if due[i].at == due[j].at {
			return due[i].seq < due[j].seq
		}
		return due[i].at < due[j].at
	})
	for _, t := range due {
		t.f()
	}
}

//
// ---------- ORDERS ----------
//

type fakeOrders struct {
	mu      sync.Mutex
	forms   []checkout.Form
	receipt checkout.Receipt
	err     error
}

func (o *fakeOrders) Submit(_ context.Context, f checkout.Form) (checkout.Receipt, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.forms = append(o.forms, f)
	return o.receipt, o.err
}

//
// ---------- HELPERS ----------
//

func testOptions(s *manualScheduler) Options {
	return Options{
		NotifyTTL:        2700 * time.Millisecond,
		OpenDelay:        10 * time.Millisecond,
		CloseDelay:       300 * time.Millisecond,
		SettleDelay:      2 * time.Second,
		PlaceholderImage: "/static/placeholder.jpg",
		Currency:         "EGP",
		CheckoutURL:      "checkout/",
		ShopURL:          "/#products",
		Scheduler:        s,
	}
}
