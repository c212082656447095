package speech

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// AlternativeSeparator splits a typed transcript into ranked alternatives.
const AlternativeSeparator = "|"

var errTypedBusy = errors.New("typed recognizer already listening")

// TypedRecognizer treats text entered by the learner as the recognizer
// output. It serves terminals without microphone access.
type TypedRecognizer struct {
	mu      sync.Mutex
	ctx     context.Context
	deliver func(Result)
}

// NewTypedRecognizer returns an idle TypedRecognizer.
func NewTypedRecognizer() *TypedRecognizer {
	return &TypedRecognizer{}
}

// Start arms the recognizer for one transcript.
func (t *TypedRecognizer) Start(ctx context.Context, deliver func(Result)) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.deliver != nil && t.ctx.Err() == nil {
		return errTypedBusy
	}
	t.ctx = ctx
	t.deliver = deliver
	return nil
}

// Submit delivers text as the transcript. Blank text is reported as no
// speech. It does nothing when the recognizer is not listening.
func (t *TypedRecognizer) Submit(text string) {
	var alts []string
	for _, alt := range strings.Split(text, AlternativeSeparator) {
		if alt = strings.TrimSpace(alt); alt != "" {
			alts = append(alts, alt)
		}
	}
	if len(alts) == 0 {
		t.finish(Result{Err: ErrNoSpeech})
		return
	}
	t.finish(Result{Alternatives: alts})
}

// Stop reports the pending transcript as aborted.
func (t *TypedRecognizer) Stop() {
	t.finish(Result{Err: ErrAborted})
}

func (t *TypedRecognizer) finish(r Result) {
	t.mu.Lock()
	deliver := t.deliver
	ctx := t.ctx
	t.deliver = nil
	t.ctx = nil
	t.mu.Unlock()
	if deliver == nil || ctx.Err() != nil {
		return
	}
	deliver(r)
}
