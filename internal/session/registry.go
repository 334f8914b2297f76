// Package session keeps one orbit.System per visitor.
//
// A visitor is identified by a random id stored in a cookie. Events for the
// same visitor are applied one at a time; idle systems are dropped by the
// janitor started with Run.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/orbit"
)

// CookieName is the cookie carrying the visitor id.
const CookieName = "orbit_session"

// DefaultTTL is how long an untouched system survives.
const DefaultTTL = 30 * time.Minute

// DefaultLimit caps the number of live systems. Mounting past it drops the
// least recently used one.
const DefaultLimit = 10000

type entry struct {
	mu       sync.Mutex
	system   *orbit.System
	lastSeen time.Time
}

// Registry maps visitor ids to their mounted systems.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
	limit    int
	clock    orbit.Clock
	logger   *zap.Logger
}

// NewRegistry returns an empty registry. Zero ttl means DefaultTTL, zero
// limit means DefaultLimit, nil clock means orbit.SystemClock and nil logger
// discards output.
func NewRegistry(ttl time.Duration, limit int, clock orbit.Clock, logger *zap.Logger) *Registry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if clock == nil {
		clock = orbit.SystemClock
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		limit:    limit,
		clock:    clock,
		logger:   logger,
	}
}

// Mount replaces the visitor's system with a freshly mounted one and runs
// fn on it. It returns the id to store in the cookie, which is a new one
// when id is not a valid visitor id.
func (r *Registry) Mount(id string, fn func(*orbit.System) error) (string, error) {
	id = normalizeID(id)
	e := &entry{system: orbit.Mount(r.clock)}

	r.mu.Lock()
	e.lastSeen = r.clock.Now()
	r.insertLocked(id, e)
	r.mu.Unlock()

	r.logger.Debug("orbit mounted", zap.String("session", id))
	return id, r.apply(e, fn)
}

// Do runs fn against the visitor's system. A visitor without a live system
// (expired or never mounted) gets a fresh one first.
func (r *Registry) Do(id string, fn func(*orbit.System) error) (string, error) {
	id = normalizeID(id)

	r.mu.Lock()
	e, ok := r.sessions[id]
	if !ok {
		e = &entry{system: orbit.Mount(r.clock)}
		r.insertLocked(id, e)
	}
	e.lastSeen = r.clock.Now()
	r.mu.Unlock()

	if !ok {
		r.logger.Debug("orbit remounted", zap.String("session", id))
	}
	return id, r.apply(e, fn)
}

// insertLocked stores e under id, evicting the least recently seen system
// when a new id would exceed the limit. r.mu must be held.
func (r *Registry) insertLocked(id string, e *entry) {
	if _, ok := r.sessions[id]; !ok {
		for len(r.sessions) >= r.limit {
			r.evictOldestLocked()
		}
	}
	r.sessions[id] = e
}

func (r *Registry) evictOldestLocked() {
	var (
		oldestID string
		oldest   *entry
	)
	for id, e := range r.sessions {
		if oldest == nil || e.lastSeen.Before(oldest.lastSeen) {
			oldestID, oldest = id, e
		}
	}
	delete(r.sessions, oldestID)
	r.logger.Debug("orbit session evicted", zap.String("session", oldestID))
}

func (r *Registry) apply(e *entry, fn func(*orbit.System) error) error {
	if fn == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.system)
}

// Len returns the number of live systems.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep drops systems idle for longer than the TTL and returns how many
// were dropped.
func (r *Registry) Sweep() int {
	cutoff := r.clock.Now().Add(-r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, e := range r.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			n++
		}
	}
	return n
}

// Run sweeps periodically until ctx is done.
func (r *Registry) Run(ctx context.Context) error {
	interval := r.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.logger.Info("orbit sessions expired", zap.Int("count", n), zap.Int("live", r.Len()))
			}
		}
	}
}

func normalizeID(id string) string {
	if _, err := uuid.Parse(id); err != nil {
		return uuid.NewString()
	}
	return id
}
