package ui

import (
	"github.com/atomicstack/slashpad/internal/editor"
	"github.com/atomicstack/slashpad/internal/host"
	"github.com/atomicstack/slashpad/internal/layout"
	"github.com/atomicstack/slashpad/internal/logging/events"
	"github.com/atomicstack/slashpad/internal/menu"
	"github.com/atomicstack/slashpad/internal/settings"
	"github.com/atomicstack/slashpad/internal/theme"
	"github.com/atomicstack/slashpad/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultPlaceholder is shown in empty paragraphs of editors configured by
// the controller.
const DefaultPlaceholder = "Write something or type / for options"

var styles = theme.Default()

// Options configures a Controller. Zero values fall back to defaults.
type Options struct {
	Commands    []menu.Command
	Placeholder string
	Settings    *settings.Settings
	Root        layout.Container
	Page        *host.Page
}

// Controller owns the shared popup, the command registry and one Session per
// attached editor.
type Controller struct {
	cfg         settings.Settings
	placeholder string
	registry    *menu.Registry
	bus         *command.Bus
	popup       *Popup
	router      *Router
	binder      *host.Binder

	sessions    map[*editor.Editor]*Session
	order       []*Session
	initialized bool
}

// New builds a controller. Nothing is attached until Init.
func New(opts Options) *Controller {
	cfg := settings.Default()
	if opts.Settings != nil {
		cfg = *opts.Settings
	}
	cmds := opts.Commands
	if cmds == nil {
		cmds = menu.DefaultCommandsFor(cfg.Selectors.FileInput)
	}
	placeholder := opts.Placeholder
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	c := &Controller{
		cfg:         cfg,
		placeholder: placeholder,
		registry:    menu.NewRegistry(cmds),
		bus:         command.New(),
		popup:       NewPopup(opts.Root, cfg.Dropdown),
		router:      NewRouter(NewKeyMap(cfg.Keys)),
		sessions:    make(map[*editor.Editor]*Session),
	}
	c.binder = host.NewBinder(opts.Page, c, cfg, placeholder)
	return c
}

// Init attaches every editor already present on the page and starts
// listening for host lifecycle messages. Later calls do nothing.
func (c *Controller) Init() {
	if c.initialized {
		return
	}
	c.initialized = true
	c.binder.Scan()
}

func (c *Controller) Initialized() bool { return c.initialized }

// AddCommand appends cmd to the registry.
func (c *Controller) AddCommand(cmd menu.Command) {
	c.registry.Add(cmd)
}

// RemoveCommand drops every command titled title and returns how many were
// removed.
func (c *Controller) RemoveCommand(title string) int {
	return c.registry.Remove(title)
}

// Commands returns the registered commands in order.
func (c *Controller) Commands() []menu.Command { return c.registry.Commands() }

func (c *Controller) Popup() *Popup { return c.popup }

func (c *Controller) Keys() KeyMap { return c.router.Keys() }

func (c *Controller) Settings() settings.Settings { return c.cfg }

func (c *Controller) Placeholder() string { return c.placeholder }

func (c *Controller) Binder() *host.Binder { return c.binder }

// Session returns the session serving ed.
func (c *Controller) Session(ed *editor.Editor) (*Session, bool) {
	s, ok := c.sessions[ed]
	return s, ok
}

// Sessions returns every session in attach order.
func (c *Controller) Sessions() []*Session {
	dup := make([]*Session, len(c.order))
	copy(dup, c.order)
	return dup
}

// Attach wires the slash menu into ed. An editor is attached at most once;
// later calls report false.
func (c *Controller) Attach(ed *editor.Editor) bool {
	if ed == nil {
		return false
	}
	if _, ok := c.sessions[ed]; ok {
		events.Session.AlreadyAttached(ed.ID())
		return false
	}
	s := newSession(c, ed)
	c.sessions[ed] = s
	c.order = append(c.order, s)
	events.Session.Attach(s.id, ed.ID())
	c.bus.Safe("initial empty refresh", func() error {
		s.refreshEmpty()
		return nil
	})
	return true
}

// Update forwards host lifecycle messages to the binder. It reports whether
// msg was consumed.
func (c *Controller) Update(msg tea.Msg) (tea.Cmd, bool) {
	if !c.initialized {
		return nil, false
	}
	return c.binder.Update(msg)
}

func (c *Controller) owner() *Session {
	id := c.popup.BoundTo()
	if id == "" {
		return nil
	}
	for _, s := range c.order {
		if s.id == id {
			return s
		}
	}
	return nil
}

func (c *Controller) overEditor(x, y int) bool {
	for _, s := range c.order {
		if s.ed.Contains(x, y) {
			return true
		}
	}
	return false
}

// HandleMouse applies pointer events to the popup. It reports whether msg was
// consumed; a press inside an editor is left for the editor to handle.
func (c *Controller) HandleMouse(msg tea.MouseMsg) bool {
	if !c.popup.Visible() {
		return false
	}
	switch msg.Action {
	case tea.MouseActionMotion:
		if idx, ok := c.popup.ItemAt(msg.X, msg.Y); ok {
			c.popup.SetHighlight(idx)
			return true
		}
		return false
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return c.popup.Contains(msg.X, msg.Y)
		}
		if idx, ok := c.popup.ItemAt(msg.X, msg.Y); ok {
			c.popup.SetHighlight(idx)
			if s := c.owner(); s != nil {
				s.executeSelected()
			} else {
				c.popup.Hide()
			}
			return true
		}
		if c.popup.Contains(msg.X, msg.Y) {
			return true
		}
		if !c.overEditor(msg.X, msg.Y) {
			c.popup.Hide()
		}
		return false
	}
	return false
}
