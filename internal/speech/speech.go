// Package speech drives a speech recognizer for speaking questions.
package speech

import (
	"context"
	"errors"
	"strings"

	"github.com/verte-zerg/jyutquiz/internal/model"
)

// ErrUnavailable is returned when no recognizer is configured.
var ErrUnavailable = errors.New("speech recognition unavailable")

// ErrorKind classifies a failed recognition.
type ErrorKind string

const (
	ErrNoSpeech   ErrorKind = "no-speech"
	ErrNetwork    ErrorKind = "network"
	ErrNotAllowed ErrorKind = "not-allowed"
	ErrAborted    ErrorKind = "aborted"
	ErrTimeout    ErrorKind = "timeout"
)

// Result is the outcome of one recognition session. Alternatives are ranked
// best first.
type Result struct {
	Alternatives []string
	Err          ErrorKind
}

// Failed reports whether the session produced no transcript.
func (r Result) Failed() bool {
	return r.Err != "" || len(r.Alternatives) == 0
}

// Recognizer is a speech recognition capability. Start begins listening and
// must eventually call deliver at most once; Stop asks it to finish early.
type Recognizer interface {
	Start(ctx context.Context, deliver func(Result)) error
	Stop()
}

// Matcher reports whether a transcript is an acceptable reading of an item.
type Matcher interface {
	Matches(recognized string, item model.VocabularyItem) bool
}

// NoSpeech is the transcript recorded when recognition fails.
const NoSpeech = "(no speech)"

// Evaluate grades r against item. It returns the first alternative the
// matcher accepts, or the top alternative when none match.
func Evaluate(m Matcher, item model.VocabularyItem, r Result) (string, bool) {
	if r.Failed() {
		return "", false
	}
	for _, alt := range r.Alternatives {
		alt = strings.TrimSpace(alt)
		if m.Matches(alt, item) {
			return alt, true
		}
	}
	return strings.TrimSpace(r.Alternatives[0]), false
}
