package engine

import (
	"context"
	"sync"
)

// Mailbox serialises work onto the goroutine that owns a session. Any
// goroutine may Post; only the owner runs Run or Drain.
type Mailbox struct {
	mu     sync.Mutex
	queue  []func()
	signal chan struct{}
	closed bool
}

// NewMailbox creates an open mailbox
func NewMailbox() *Mailbox {
	return &Mailbox{signal: make(chan struct{}, 1)}
}

// Post queues fn. It reports false once the mailbox is closed.
func (m *Mailbox) Post(fn func()) bool {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return false
	}
	m.queue = append(m.queue, fn)
	m.mu.Unlock()

	select {
	case m.signal <- struct{}{}:
	default:
	}
	return true
}

func (m *Mailbox) take() []func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	q := m.queue
	m.queue = nil
	return q
}

// Drain runs everything queued so far and returns how many ran
func (m *Mailbox) Drain() int {
	q := m.take()
	for _, fn := range q {
		fn()
	}
	return len(q)
}

// Run executes posted work until ctx is done or the mailbox is closed.
// Work queued before Close still runs.
func (m *Mailbox) Run(ctx context.Context) error {
	for {
		m.Drain()

		m.mu.Lock()
		closed := m.closed && len(m.queue) == 0
		m.mu.Unlock()
		if closed {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-m.signal:
		}
	}
}

// Close stops accepting work and wakes Run
func (m *Mailbox) Close() {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()

	select {
	case m.signal <- struct{}{}:
	default:
	}
}
