package speech

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// DefaultTimeout stops a session that has not finished on its own.
const DefaultTimeout = 8 * time.Second

// Controller runs at most one recognition session at a time. Every session
// completes exactly once, whichever of result, error, Stop or timeout comes
// first.
type Controller struct {
	rec     Recognizer
	timeout time.Duration
	log     *slog.Logger

	mu     sync.Mutex
	active *session
}

type session struct {
	completed bool
	timer     *time.Timer
	cancel    context.CancelFunc
	onDone    func(Result)
}

// NewController returns a Controller for rec. A zero timeout means
// DefaultTimeout and a nil logger means slog.Default().
func NewController(rec Recognizer, timeout time.Duration, log *slog.Logger) *Controller {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = slog.Default()
	}
	return &Controller{rec: rec, timeout: timeout, log: log}
}

// Available reports whether a recognizer is configured.
func (c *Controller) Available() bool {
	return c.rec != nil
}

// Active reports whether a session is running.
func (c *Controller) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active != nil
}

// Start begins a session that reports to onDone. It returns false without
// error when a session is already running.
func (c *Controller) Start(ctx context.Context, onDone func(Result)) (bool, error) {
	if c.rec == nil {
		return false, ErrUnavailable
	}

	c.mu.Lock()
	if c.active != nil {
		c.mu.Unlock()
		return false, nil
	}
	sctx, cancel := context.WithCancel(ctx)
	s := &session{cancel: cancel, onDone: onDone}
	s.timer = time.AfterFunc(c.timeout, func() {
		c.log.Debug("recognition timed out", "timeout", c.timeout)
		c.complete(s, Result{Err: ErrTimeout})
		c.rec.Stop()
	})
	c.active = s
	c.mu.Unlock()

	if err := c.rec.Start(sctx, func(r Result) { c.complete(s, r) }); err != nil {
		c.abandon(s)
		return false, fmt.Errorf("failed to start recognition: %w", err)
	}
	return true, nil
}

// Stop ends the running session. A recognizer that delivers while stopping
// wins; otherwise the session completes as aborted.
func (c *Controller) Stop() {
	c.mu.Lock()
	s := c.active
	c.mu.Unlock()
	if s == nil {
		return
	}
	c.rec.Stop()
	c.complete(s, Result{Err: ErrAborted})
}

func (c *Controller) complete(s *session, r Result) {
	c.mu.Lock()
	if s.completed {
		c.mu.Unlock()
		c.log.Debug("ignoring late recognition result", "err", string(r.Err))
		return
	}
	s.completed = true
	s.timer.Stop()
	s.cancel()
	if c.active == s {
		c.active = nil
	}
	onDone := s.onDone
	c.mu.Unlock()

	if r.Err != "" {
		c.log.Info("recognition failed", "kind", string(r.Err))
	}
	if onDone != nil {
		onDone(r)
	}
}

func (c *Controller) abandon(s *session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s.completed = true
	s.timer.Stop()
	s.cancel()
	if c.active == s {
		c.active = nil
	}
}
