package orbit

import (
	"fmt"
	"math"
	"slices"
	"time"
)

// Clock supplies the current time to a System.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// State is a snapshot of the widget state. Empty strings mean "none".
//
// Hovered holds the display name of the item under the pointer, not its id.
type State struct {
	Paused  bool
	Focused string
	Hovered string
}

// phase accumulates the running time of one item so a frozen item resumes
// from the angle it stopped at.
type phase struct {
	elapsed time.Duration
	since   time.Time
	running bool
}

// System is the orbit orchestrator. It is not safe for concurrent use.
type System struct {
	items  []Item
	byID   map[string]int
	names  map[string]bool
	phases []phase
	state  State
	clock  Clock
}

// NewSystem mounts a system over items. A nil clock means SystemClock.
// Every item starts running at its initial angle.
func NewSystem(items []Item, clock Clock) (*System, error) {
	if clock == nil {
		clock = SystemClock
	}
	s := &System{
		items:  make([]Item, len(items)),
		byID:   make(map[string]int, len(items)),
		names:  make(map[string]bool, len(items)),
		phases: make([]phase, len(items)),
		clock:  clock,
	}
	copy(s.items, items)
	now := clock.Now()
	for i, it := range s.items {
		if err := it.validate(); err != nil {
			return nil, err
		}
		if _, dup := s.byID[it.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidItem, it.ID)
		}
		s.byID[it.ID] = i
		s.names[it.Name] = true
		s.phases[i] = phase{since: now, running: true}
	}
	return s, nil
}

// Mount is NewSystem over the built-in catalog.
func Mount(clock Clock) *System {
	s, err := NewSystem(catalog, clock)
	if err != nil {
		panic(err) // catalog is fixed at build time
	}
	return s
}

// Snapshot returns the current state.
func (s *System) Snapshot() State { return s.state }

// Items returns a copy of the items in catalog order.
func (s *System) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Item looks up an item by id.
func (s *System) Item(id string) (Item, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Item{}, false
	}
	return s.items[i], true
}

// Focused returns the focused item, if any.
func (s *System) Focused() (Item, bool) {
	if s.state.Focused == "" {
		return Item{}, false
	}
	return s.Item(s.state.Focused)
}

// ToggleCenter flips the pause flag and clears focus.
func (s *System) ToggleCenter() {
	s.transition(func() {
		s.state.Paused = !s.state.Paused
		s.state.Focused = ""
	})
}

// Click focuses id, or clears focus when id is already focused. Focusing
// pauses the system and clearing focus resumes it, whatever the pause flag
// was before the item was focused.
func (s *System) Click(id string) error {
	if _, ok := s.byID[id]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	s.transition(func() {
		if s.state.Focused == id {
			s.state.Focused = ""
			s.state.Paused = false
			return
		}
		s.state.Focused = id
		s.state.Paused = true
	})
	return nil
}

// Close clears focus and resumes the system.
func (s *System) Close() {
	s.transition(func() {
		s.state.Focused = ""
		s.state.Paused = false
	})
}

// Hover records the label under the pointer. An empty name clears it;
// a name that matches no item is rejected and leaves the state unchanged.
func (s *System) Hover(name string) error {
	if name != "" && !s.names[name] {
		return fmt.Errorf("%w: name %q", ErrUnknownItem, truncate(name, 64))
	}
	s.state.Hovered = name
	return nil
}

// Tooltip returns the hovered label and whether the tooltip is shown.
// A focused item suppresses the tooltip.
func (s *System) Tooltip() (string, bool) {
	if s.state.Hovered == "" || s.state.Focused != "" {
		return "", false
	}
	return s.state.Hovered, true
}

// Suspended reports whether id is frozen: the system is paused or id is
// the focused item.
func (s *System) Suspended(id string) bool {
	return s.state.Paused || s.state.Focused == id
}

// Rings returns the distinct orbit radii in ascending order.
func (s *System) Rings() []float64 {
	radii := make([]float64, 0, len(s.items))
	for _, it := range s.items {
		radii = append(radii, it.Radius)
	}
	slices.Sort(radii)
	return slices.Compact(radii)
}

// Elapsed returns how long id has been revolving since mount, excluding
// the time it spent suspended.
func (s *System) Elapsed(id string) (time.Duration, error) {
	i, ok := s.byID[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	return s.elapsed(i, s.clock.Now()), nil
}

// Angle returns the current angular position of id in degrees, [0, 360).
func (s *System) Angle(id string) (float64, error) {
	i, ok := s.byID[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	it := s.items[i]
	turns := s.elapsed(i, s.clock.Now()).Seconds() / it.Period.Seconds()
	return normalizeDegrees(it.InitialAngle + it.Direction.sign()*360*turns), nil
}

func (s *System) elapsed(i int, now time.Time) time.Duration {
	p := s.phases[i]
	if p.running {
		return p.elapsed + now.Sub(p.since)
	}
	return p.elapsed
}

// transition applies mutate and then folds running time for every item
// whose suspension changed, all at a single instant.
func (s *System) transition(mutate func()) {
	now := s.clock.Now()
	mutate()
	for i, it := range s.items {
		run := !s.Suspended(it.ID)
		p := &s.phases[i]
		switch {
		case p.running && !run:
			p.elapsed += now.Sub(p.since)
			p.running = false
		case !p.running && run:
			p.since = now
			p.running = true
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func normalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}
