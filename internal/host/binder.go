package host

import (
	"fmt"
	"time"

	"github.com/atomicstack/slashpad/internal/editor"
	"github.com/atomicstack/slashpad/internal/logging"
	"github.com/atomicstack/slashpad/internal/logging/events"
	"github.com/atomicstack/slashpad/internal/settings"
	tea "github.com/charmbracelet/bubbletea"
)

// Attacher wires the slash menu into an editor. It must tolerate being
// handed an editor it already serves.
type Attacher interface {
	Attach(*editor.Editor) bool
}

// Binder finds editor elements on the current page and attaches each one
// exactly once.
type Binder struct {
	page        *Page
	target      Attacher
	tag         string
	placeholder string
	timing      settings.Timing

	retries   map[int]*Retry
	waiting   map[*Element]int
	nextRetry int
}

// NewBinder returns a binder scanning page for elements tagged
// cfg.Selectors.Editor.
func NewBinder(page *Page, target Attacher, cfg settings.Settings, placeholder string) *Binder {
	return &Binder{
		page:        page,
		target:      target,
		tag:         cfg.Selectors.Editor,
		placeholder: placeholder,
		timing:      cfg.Timing,
		retries:     make(map[int]*Retry),
		waiting:     make(map[*Element]int),
	}
}

// Page returns the page currently scanned.
func (b *Binder) Page() *Page { return b.page }

// Pending reports how many retries are still waiting on an element.
func (b *Binder) Pending() int { return len(b.retries) }

// Scan attaches every ready element that is not bound yet and returns how
// many were attached.
func (b *Binder) Scan() int {
	if b.page == nil {
		return 0
	}
	found := b.page.QuerySelectorAll(b.tag)
	bound := 0
	for _, el := range found {
		if el.Ready() && !el.Bound() {
			b.bind(el)
			bound++
		}
	}
	events.Host.Scan(len(found), bound)
	return bound
}

func (b *Binder) bind(el *Element) {
	b.target.Attach(el.Editor())
	el.MarkBound()
	events.Host.Bind(el.ID())
}

// Update reacts to host lifecycle messages. It reports whether msg was one
// of them.
func (b *Binder) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case BeforeInitializeMsg:
		if msg.Element != nil {
			msg.Element.Options().Placeholder = b.placeholder
			events.Host.Configure(msg.Element.ID(), b.placeholder)
		}
		return nil, true
	case InitializeMsg:
		el := msg.Element
		if el == nil || el.Bound() || b.isWaiting(el) {
			return nil, true
		}
		return tea.Tick(b.timing.InitialDelay.Duration(), func(time.Time) tea.Msg {
			return initialDelayMsg{element: el}
		}), true
	case initialDelayMsg:
		return b.settle(msg.element), true
	case RetryMsg:
		r, ok := b.retries[msg.ID]
		if !ok {
			return nil, true
		}
		cmd := r.Update(msg)
		if r.Done() {
			b.finish(msg.ID)
		}
		return cmd, true
	case ContentLoadedMsg:
		b.Scan()
		return nil, true
	case NavigateMsg:
		if msg.Page != nil {
			b.page = msg.Page
		}
		delay := b.timing.TurboDelay.Duration()
		events.Host.Rescan(delay)
		return tea.Tick(delay, func(time.Time) tea.Msg { return rescanMsg{} }), true
	case rescanMsg:
		b.Scan()
		return nil, true
	}
	return nil, false
}

func (b *Binder) isWaiting(el *Element) bool {
	_, ok := b.waiting[el]
	return ok
}

func (b *Binder) finish(id int) {
	delete(b.retries, id)
	for el, rid := range b.waiting {
		if rid == id {
			delete(b.waiting, el)
		}
	}
}

// settle binds el or starts polling for its editor. An element already
// being polled keeps its running retry.
func (b *Binder) settle(el *Element) tea.Cmd {
	if el.Bound() || b.isWaiting(el) {
		return nil
	}
	if el.Ready() {
		b.bind(el)
		return nil
	}
	b.nextRetry++
	attempt := 0
	r := NewRetry(b.nextRetry, b.timing.RetryInterval.Duration(), b.timing.MaxRetries,
		func() bool {
			attempt++
			events.Host.Retry(el.ID(), attempt)
			return el.Ready() || el.Bound()
		},
		func() {
			if !el.Bound() {
				b.bind(el)
			}
		},
		func(attempts int) {
			events.Host.Exhausted(el.ID(), attempts)
			logging.Warn("editor setup", fmt.Errorf("element %s not ready after %d attempts", el.ID(), attempts))
		},
	)
	b.retries[r.ID()] = r
	b.waiting[el] = r.ID()
	return r.Start()
}
