// Package htmlview renders the cart surfaces as HTML fragments. Every
// interactive element carries data-action and data-* attributes so a single
// delegated listener can turn clicks into ui.Event values.
package htmlview

import (
	"bytes"
	"html/template"
	"io"
	"strings"
	"sync"

	"github.com/MikeMC777/carrito-web/internal/ui"
)

const (
	RegionCounter      = "counter"
	RegionModal        = "modal"
	RegionCheckout     = "checkout"
	RegionNotification = "notification"
)

type Option func(*Page)

func WithCounter() Option       { return func(p *Page) { p.present[RegionCounter] = true } }
func WithModal() Option         { return func(p *Page) { p.present[RegionModal] = true } }
func WithCheckout() Option      { return func(p *Page) { p.present[RegionCheckout] = true } }
func WithNotifications() Option { return func(p *Page) { p.present[RegionNotification] = true } }

// Page is an in-memory page holding the rendered markup of each region.
// It implements ui.Page and all of the surface interfaces.
type Page struct {
	tmpl *template.Template

	mu           sync.Mutex
	present      map[string]bool
	html         map[string]string
	modalView    *ui.ModalView
	checkoutView *ui.CheckoutView
	visible      bool
	active       bool
	note         *ui.Notification
	controls     map[ui.ControlID]ui.ControlState
}

func NewPage(opts ...Option) *Page {
	p := &Page{
		present:  make(map[string]bool),
		html:     make(map[string]string),
		controls: make(map[ui.ControlID]ui.ControlState),
	}
	for _, o := range opts {
		o(p)
	}
	// the funcs below run during Execute, with p.mu already held
	p.tmpl = template.Must(template.New("page").Funcs(template.FuncMap{
		"pending": func(surface, action string, productID int, size string) bool {
			id := ui.ControlID{Surface: surface, Action: action, ProductID: productID, Size: size}
			return p.controls[id] == ui.ControlPending
		},
		"visible": func() bool { return p.visible },
		"active":  func() bool { return p.active },
	}).Parse(counterTmpl + modalTmpl + checkoutTmpl + notificationTmpl))
	return p
}

// Detach removes a region, as if its node were taken out of the DOM.
func (p *Page) Detach(region string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.present, region)
	delete(p.html, region)
}

// Region returns the last markup rendered into region.
func (p *Page) Region(region string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.html[region]
}

func (p *Page) ModalVisible() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visible
}

func (p *Page) ModalActive() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

// Notification returns the notification on screen, if any.
func (p *Page) Notification() (ui.Notification, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.note == nil {
		return ui.Notification{}, false
	}
	return *p.note, true
}

// AddButtonLabel is the text of a product's "add to cart" button.
func (p *Page) AddButtonLabel(productID int) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := ui.ControlID{Surface: ui.SurfaceGrid, Action: ui.ActionAddToCart, ProductID: productID}
	switch p.controls[id] {
	case ui.ControlPending:
		return "Adding..."
	case ui.ControlSucceeded:
		return "Added to Cart ✓"
	default:
		return "+ Add to Cart"
	}
}

// WriteTo writes every present region in page order.
func (p *Page) WriteTo(w io.Writer) (int64, error) {
	p.mu.Lock()
	var b strings.Builder
	for _, r := range []string{RegionCounter, RegionNotification, RegionModal, RegionCheckout} {
		if s := p.html[r]; s != "" {
			b.WriteString(s)
			b.WriteByte('\n')
		}
	}
	p.mu.Unlock()
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

func (p *Page) Counter() ui.CounterSurface {
	if !p.has(RegionCounter) {
		return nil
	}
	return p
}

func (p *Page) Modal() ui.ModalSurface {
	if !p.has(RegionModal) {
		return nil
	}
	return p
}

func (p *Page) Checkout() ui.CheckoutSurface {
	if !p.has(RegionCheckout) {
		return nil
	}
	return p
}

func (p *Page) Notifications() ui.NotificationSurface {
	if !p.has(RegionNotification) {
		return nil
	}
	return p
}

// Controls is always available: control state is tracked even for regions
// this page doesn't render, such as the product grid.
func (p *Page) Controls() ui.ControlSurface { return p }

func (p *Page) has(region string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.present[region]
}

func (p *Page) RenderCounter(v ui.CounterView) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.renderLocked(RegionCounter, v)
}

func (p *Page) RenderModal(v ui.ModalView) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.modalView = &v
	p.renderLocked(RegionModal, v)
}

func (p *Page) SetVisible(v bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.visible = v
	p.rerenderModalLocked()
}

func (p *Page) SetActive(a bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.active = a
	p.rerenderModalLocked()
}

func (p *Page) RenderCheckout(v ui.CheckoutView) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.checkoutView = &v
	p.renderLocked(RegionCheckout, v)
}

func (p *Page) ShowNotification(n ui.Notification) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.note = &n
	p.renderLocked(RegionNotification, n)
}

func (p *Page) DismissNotification(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.note == nil || p.note.ID != id {
		return
	}
	p.note = nil
	delete(p.html, RegionNotification)
}

func (p *Page) SetControlState(id ui.ControlID, s ui.ControlState) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if s == ui.ControlIdle {
		delete(p.controls, id)
	} else {
		p.controls[id] = s
	}
	p.rerenderModalLocked()
	if p.checkoutView != nil && p.present[RegionCheckout] {
		p.renderLocked(RegionCheckout, *p.checkoutView)
	}
}

func (p *Page) rerenderModalLocked() {
	if p.modalView != nil && p.present[RegionModal] {
		p.renderLocked(RegionModal, *p.modalView)
	}
}

func (p *Page) renderLocked(region string, data any) {
	if !p.present[region] {
		return
	}
	var buf bytes.Buffer
	if err := p.tmpl.ExecuteTemplate(&buf, region, data); err != nil {
		// templates are fixed at compile time; a failure here is a programming error
		panic(err)
	}
	p.html[region] = buf.String()
}

// EventFromAttrs builds a ui.Event from a clicked element's attributes,
// e.g. {"data-action": "qty-inc", "data-product-id": "7", "data-size": "M"}.
func EventFromAttrs(attrs map[string]string) ui.Event {
	ev := ui.Event{Data: make(map[string]string)}
	for k, v := range attrs {
		name, ok := strings.CutPrefix(k, "data-")
		if !ok {
			continue
		}
		if name == "action" {
			ev.Action = v
			continue
		}
		ev.Data[name] = v
	}
	return ev
}
