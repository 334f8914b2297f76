package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/Zachkp/portfolio/internal/orbit"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func snapshot(t *testing.T, r *Registry, id string) orbit.State {
	t.Helper()
	var st orbit.State
	_, err := r.Do(id, func(s *orbit.System) error {
		st = s.Snapshot()
		return nil
	})
	require.NoError(t, err)
	return st
}

func TestMountIssuesIDForUnknownVisitor(t *testing.T) {
	r := NewRegistry(time.Minute, 0, nil, nil)

	id, err := r.Mount("", nil)
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	require.NoError(t, err)

	again, err := r.Mount(id, nil)
	require.NoError(t, err)
	assert.Equal(t, id, again)

	other, err := r.Mount("not-a-uuid", nil)
	require.NoError(t, err)
	assert.NotEqual(t, "not-a-uuid", other)
	assert.Equal(t, 2, r.Len())
}

func TestDoKeepsStateAcrossEvents(t *testing.T) {
	r := NewRegistry(time.Minute, 0, nil, nil)
	id, err := r.Mount("", nil)
	require.NoError(t, err)

	_, err = r.Do(id, func(s *orbit.System) error { return s.Click("react") })
	require.NoError(t, err)
	assert.Equal(t, orbit.State{Paused: true, Focused: "react"}, snapshot(t, r, id))

	_, err = r.Do(id, func(s *orbit.System) error { return s.Click("missing") })
	assert.ErrorIs(t, err, orbit.ErrUnknownItem)
}

func TestMountResetsState(t *testing.T) {
	r := NewRegistry(time.Minute, 0, nil, nil)
	id, _ := r.Mount("", nil)
	_, _ = r.Do(id, func(s *orbit.System) error { s.ToggleCenter(); return nil })
	require.True(t, snapshot(t, r, id).Paused)

	_, err := r.Mount(id, nil)
	require.NoError(t, err)
	assert.Equal(t, orbit.State{}, snapshot(t, r, id))
}

func TestSweepExpiresIdleSystems(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)}
	r := NewRegistry(10*time.Minute, 0, clock, nil)

	idle, _ := r.Mount("", nil)
	clock.Advance(6 * time.Minute)
	busy, _ := r.Mount("", nil)
	clock.Advance(6 * time.Minute)

	assert.Equal(t, 1, r.Sweep())
	assert.Equal(t, 1, r.Len())

	// The expired visitor comes back to a freshly mounted system.
	_, _ = r.Do(busy, func(s *orbit.System) error { s.ToggleCenter(); return nil })
	assert.Equal(t, orbit.State{}, snapshot(t, r, idle))
	assert.Equal(t, 2, r.Len())
}

func live(r *Registry, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.sessions[id]
	return ok
}

func TestLimitEvictsLeastRecentlySeen(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)}
	r := NewRegistry(time.Hour, 2, clock, nil)

	first, _ := r.Mount("", nil)
	_, _ = r.Do(first, func(s *orbit.System) error { s.ToggleCenter(); return nil })
	clock.Advance(time.Second)
	second, _ := r.Mount("", nil)
	clock.Advance(time.Second)
	_, _ = r.Do(first, nil)
	clock.Advance(time.Second)

	third, _ := r.Mount("", nil)
	assert.Equal(t, 2, r.Len())
	assert.True(t, live(r, first))
	assert.False(t, live(r, second))
	assert.True(t, live(r, third))
	assert.True(t, snapshot(t, r, first).Paused)

	// Remounting a live id does not count against the limit.
	_, err := r.Mount(third, nil)
	require.NoError(t, err)
	assert.True(t, live(r, first))
	assert.Equal(t, 2, r.Len())
}

func TestFreshIDsStayBounded(t *testing.T) {
	r := NewRegistry(time.Hour, 5, nil, nil)
	for range 50 {
		_, err := r.Do("", nil)
		require.NoError(t, err)
	}
	assert.Equal(t, 5, r.Len())
}

func TestConcurrentEventsAreSerialized(t *testing.T) {
	r := NewRegistry(time.Minute, 0, nil, nil)
	id, _ := r.Mount("", nil)

	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = r.Do(id, func(s *orbit.System) error { s.ToggleCenter(); return nil })
		}()
	}
	wg.Wait()
	assert.False(t, snapshot(t, r, id).Paused)
}

func TestRunStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := NewRegistry(time.Second, 0, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
