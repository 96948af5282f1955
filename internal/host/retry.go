package host

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// RetryMsg is one tick of a Retry.
type RetryMsg struct {
	ID      int
	Attempt int
}

// Retry polls a readiness check on a fixed interval until it passes or the
// attempt budget runs out. Ticks arrive as RetryMsg values through the
// Bubble Tea loop; there is no way to stop a retry other than success or
// exhaustion.
type Retry struct {
	id          int
	interval    time.Duration
	maxAttempts int
	attempts    int
	done        bool

	ready       func() bool
	onSuccess   func()
	onExhausted func(attempts int)
}

// NewRetry configures a retry. It does nothing until Start.
func NewRetry(id int, interval time.Duration, maxAttempts int, ready func() bool, onSuccess func(), onExhausted func(int)) *Retry {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Retry{
		id:          id,
		interval:    interval,
		maxAttempts: maxAttempts,
		ready:       ready,
		onSuccess:   onSuccess,
		onExhausted: onExhausted,
	}
}

func (r *Retry) ID() int { return r.id }

// Attempts reports how many ticks have been processed.
func (r *Retry) Attempts() int { return r.attempts }

// Done reports whether the retry has finished either way.
func (r *Retry) Done() bool { return r.done }

// Start schedules the first tick.
func (r *Retry) Start() tea.Cmd {
	if r.done {
		return nil
	}
	return r.tick()
}

func (r *Retry) tick() tea.Cmd {
	id, attempt := r.id, r.attempts+1
	return tea.Tick(r.interval, func(time.Time) tea.Msg {
		return RetryMsg{ID: id, Attempt: attempt}
	})
}

// Update processes a tick and returns the next one, if any.
func (r *Retry) Update(msg RetryMsg) tea.Cmd {
	if r.done || msg.ID != r.id {
		return nil
	}
	r.attempts++
	if r.ready() {
		r.done = true
		if r.onSuccess != nil {
			r.onSuccess()
		}
		return nil
	}
	if r.attempts >= r.maxAttempts {
		r.done = true
		if r.onExhausted != nil {
			r.onExhausted(r.attempts)
		}
		return nil
	}
	return r.tick()
}
