package ui

type ModalState int

const (
	ModalClosed ModalState = iota
	ModalOpen
	ModalClosing
)

func (s ModalState) String() string {
	switch s {
	case ModalOpen:
		return "open"
	case ModalClosing:
		return "closing"
	default:
		return "closed"
	}
}

func (p *Presenter) ModalState() ModalState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.modal
}

// OpenModal renders the current items and shows the modal. Opening while
// the close transition is still running cancels the pending hide.
func (p *Presenter) OpenModal() {
	snap := p.store.Snapshot()
	p.mu.Lock()
	defer p.mu.Unlock()

	m := p.page.Modal()
	if m == nil {
		return
	}
	m.RenderModal(buildViews(snap, p.opts).modal)

	switch p.modal {
	case ModalOpen:
		return
	case ModalClosing:
		stop(p.hideTimer)
		p.hideTimer = nil
		p.modalGen++
		p.modal = ModalOpen
		m.SetActive(true)
		return
	}

	m.SetVisible(true)
	p.modal = ModalOpen
	p.modalGen++
	if p.opts.OpenDelay <= 0 {
		m.SetActive(true)
		return
	}
	gen := p.modalGen
	p.showTimer = p.sched.AfterFunc(p.opts.OpenDelay, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.modalGen != gen || p.modal != ModalOpen {
			return
		}
		p.showTimer = nil
		if m := p.page.Modal(); m != nil {
			m.SetActive(true)
		}
	})
}

// CloseModal starts the close transition; the modal is hidden once the
// close delay elapses unless it was reopened in between.
func (p *Presenter) CloseModal() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.modal != ModalOpen {
		return
	}
	stop(p.showTimer)
	p.showTimer = nil
	m := p.page.Modal()
	if m != nil {
		m.SetActive(false)
	}
	p.modal = ModalClosing
	p.modalGen++
	if p.opts.CloseDelay <= 0 {
		p.hideLocked()
		return
	}
	gen := p.modalGen
	p.hideTimer = p.sched.AfterFunc(p.opts.CloseDelay, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.modalGen != gen || p.modal != ModalClosing {
			return
		}
		p.hideLocked()
	})
}

func (p *Presenter) hideLocked() {
	p.hideTimer = nil
	p.modal = ModalClosed
	if m := p.page.Modal(); m != nil {
		m.SetVisible(false)
	}
}

// HandleKey closes an open modal on Escape.
func (p *Presenter) HandleKey(key string) {
	if key != "Escape" || p.ModalState() != ModalOpen {
		return
	}
	p.CloseModal()
}
