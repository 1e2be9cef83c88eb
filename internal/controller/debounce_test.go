package controller

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/coach-admin/internal/cache"
	"github.com/heartmarshall/coach-admin/internal/domain"
)

type recorder struct {
	mu    sync.Mutex
	calls []map[string]any
}

func (r *recorder) fn(p map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, p)
}

func (r *recorder) snapshot() []map[string]any {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]map[string]any(nil), r.calls...)
}

func TestDebouncer_CoalescesEdits(t *testing.T) {
	t.Parallel()

	var rec recorder
	d := NewDebouncer(20*time.Millisecond, rec.fn)

	d.Push(map[string]any{"search": "i"})
	d.Push(map[string]any{"search": "ir"})
	d.Push(map[string]any{"status": "active"})
	d.Push(map[string]any{"search": "iron"})

	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	calls := rec.snapshot()
	require.Len(t, calls, 1)
	assert.Equal(t, map[string]any{"search": "iron", "status": "active"}, calls[0])
}

func TestDebouncer_Flush(t *testing.T) {
	t.Parallel()

	var rec recorder
	d := NewDebouncer(time.Hour, rec.fn)

	assert.False(t, d.Flush())

	d.Push(map[string]any{"search": "iron"})
	assert.True(t, d.Flush())
	assert.Len(t, rec.snapshot(), 1)

	assert.False(t, d.Flush())
	assert.Len(t, rec.snapshot(), 1)
}

func TestDebouncer_Stop(t *testing.T) {
	t.Parallel()

	var rec recorder
	d := NewDebouncer(10*time.Millisecond, rec.fn)

	d.Push(map[string]any{"search": "iron"})
	d.Stop()
	d.Push(map[string]any{"search": "pump"})

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, rec.snapshot())
	assert.False(t, d.Flush())
}

func TestNewDebouncer_DefaultDelay(t *testing.T) {
	t.Parallel()

	d := NewDebouncer(0, func(map[string]any) {})
	assert.Equal(t, DefaultDebounce, d.delay)
}

func TestController_Debounced(t *testing.T) {
	t.Parallel()

	remote := &remoteMock[domain.Gym]{ListFunc: listGyms()}
	ctrl := newGymController(remote, cache.New())

	errs := make(chan error, 4)
	d := ctrl.Debounced(context.Background(), 20*time.Millisecond, func(err error) { errs <- err })
	defer d.Stop()

	for _, s := range []string{"i", "ir", "iro", "iron"} {
		d.Push(map[string]any{"search": s})
	}

	select {
	case err := <-errs:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("debounced load never ran")
	}

	calls := remote.ListCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "iron", calls[0].Filter.Fields["search"])
}
