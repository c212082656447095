package speech

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecognizer struct {
	mu       sync.Mutex
	starts   int
	stops    int
	deliver  func(Result)
	startErr error
	onStop   *Result
}

func (f *fakeRecognizer) Start(_ context.Context, deliver func(Result)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.starts++
	if f.startErr != nil {
		return f.startErr
	}
	f.deliver = deliver
	return nil
}

func (f *fakeRecognizer) Stop() {
	f.mu.Lock()
	f.stops++
	deliver, res := f.deliver, f.onStop
	f.mu.Unlock()
	if deliver != nil && res != nil {
		deliver(*res)
	}
}

func (f *fakeRecognizer) stopCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stops
}

func (f *fakeRecognizer) emit(r Result) {
	f.mu.Lock()
	deliver := f.deliver
	f.mu.Unlock()
	deliver(r)
}

type collector struct {
	mu      sync.Mutex
	results []Result
	done    chan struct{}
}

func newCollector() *collector {
	return &collector{done: make(chan struct{}, 8)}
}

func (c *collector) add(r Result) {
	c.mu.Lock()
	c.results = append(c.results, r)
	c.mu.Unlock()
	c.done <- struct{}{}
}

func (c *collector) all() []Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Result(nil), c.results...)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestControllerDeliversResultOnce(t *testing.T) {
	t.Parallel()

	rec := &fakeRecognizer{}
	ctrl := NewController(rec, time.Minute, quietLogger())
	got := newCollector()

	started, err := ctrl.Start(context.Background(), got.add)
	require.NoError(t, err)
	require.True(t, started)
	assert.True(t, ctrl.Active())

	rec.emit(Result{Alternatives: []string{"maau1"}})
	rec.emit(Result{Err: ErrNetwork})
	ctrl.Stop()

	results := got.all()
	require.Len(t, results, 1)
	assert.Equal(t, []string{"maau1"}, results[0].Alternatives)
	assert.False(t, ctrl.Active())
}

func TestControllerSecondStartIsNoop(t *testing.T) {
	t.Parallel()

	rec := &fakeRecognizer{}
	ctrl := NewController(rec, time.Minute, quietLogger())

	started, err := ctrl.Start(context.Background(), nil)
	require.NoError(t, err)
	require.True(t, started)

	started, err = ctrl.Start(context.Background(), nil)
	require.NoError(t, err)
	assert.False(t, started)
	assert.Equal(t, 1, rec.starts)
}

func TestControllerTimeout(t *testing.T) {
	t.Parallel()

	rec := &fakeRecognizer{}
	ctrl := NewController(rec, 20*time.Millisecond, quietLogger())
	got := newCollector()

	_, err := ctrl.Start(context.Background(), got.add)
	require.NoError(t, err)

	select {
	case <-got.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timeout never fired")
	}
	results := got.all()
	require.Len(t, results, 1)
	assert.Equal(t, ErrTimeout, results[0].Err)
	assert.Eventually(t, func() bool { return rec.stopCount() == 1 }, time.Second, 5*time.Millisecond)
	assert.False(t, ctrl.Active())

	rec.emit(Result{Alternatives: []string{"late"}})
	assert.Len(t, got.all(), 1)
}

func TestControllerTimeoutWithTypedRecognizer(t *testing.T) {
	t.Parallel()

	typed := NewTypedRecognizer()
	ctrl := NewController(typed, 20*time.Millisecond, quietLogger())
	got := newCollector()

	_, err := ctrl.Start(context.Background(), got.add)
	require.NoError(t, err)

	select {
	case <-got.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timeout never fired")
	}
	results := got.all()
	require.Len(t, results, 1)
	assert.Equal(t, ErrTimeout, results[0].Err)

	typed.Submit("maau1")
	assert.Len(t, got.all(), 1)
	assert.False(t, ctrl.Active())
}

func TestControllerStopPrefersRecognizerResult(t *testing.T) {
	t.Parallel()

	rec := &fakeRecognizer{onStop: &Result{Alternatives: []string{"gau2"}}}
	ctrl := NewController(rec, time.Minute, quietLogger())
	got := newCollector()

	_, err := ctrl.Start(context.Background(), got.add)
	require.NoError(t, err)
	ctrl.Stop()

	results := got.all()
	require.Len(t, results, 1)
	assert.Equal(t, []string{"gau2"}, results[0].Alternatives)
}

func TestControllerStopWithoutResult(t *testing.T) {
	t.Parallel()

	rec := &fakeRecognizer{}
	ctrl := NewController(rec, time.Minute, quietLogger())
	got := newCollector()

	_, err := ctrl.Start(context.Background(), got.add)
	require.NoError(t, err)
	ctrl.Stop()
	ctrl.Stop()

	results := got.all()
	require.Len(t, results, 1)
	assert.Equal(t, ErrAborted, results[0].Err)
	assert.True(t, results[0].Failed())
}

func TestControllerStartFailure(t *testing.T) {
	t.Parallel()

	rec := &fakeRecognizer{startErr: assert.AnError}
	ctrl := NewController(rec, time.Minute, quietLogger())

	started, err := ctrl.Start(context.Background(), nil)
	require.ErrorIs(t, err, assert.AnError)
	assert.False(t, started)
	assert.False(t, ctrl.Active())

	rec.startErr = nil
	started, err = ctrl.Start(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, started)
}

func TestControllerUnavailable(t *testing.T) {
	t.Parallel()

	ctrl := NewController(nil, 0, nil)
	assert.False(t, ctrl.Available())
	_, err := ctrl.Start(context.Background(), nil)
	assert.ErrorIs(t, err, ErrUnavailable)
	ctrl.Stop()
}
