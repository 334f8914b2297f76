// Package orbit models the interactive tech-stack "solar system" in the hero.
//
// A System owns the fixed list of orbiting items together with the pause
// flag, the focused item and the hovered label. Callers mutate it only
// through its event methods and read it through value snapshots.
package orbit

import (
	"errors"
	"fmt"
	"time"
)

// Direction is the sense of revolution of an item.
type Direction string

const (
	Clockwise        Direction = "clockwise"
	CounterClockwise Direction = "counter-clockwise"
)

// Valid reports whether d is one of the two known directions.
func (d Direction) Valid() bool {
	return d == Clockwise || d == CounterClockwise
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Clockwise {
		return CounterClockwise
	}
	return Clockwise
}

// sign is +1 for clockwise, -1 otherwise. CSS rotate() grows clockwise.
func (d Direction) sign() float64 {
	if d == Clockwise {
		return 1
	}
	return -1
}

// Item is one technology revolving around the center.
type Item struct {
	ID           string
	Name         string
	Label        string
	Color        string
	Radius       float64
	Period       time.Duration
	Direction    Direction
	Size         float64
	InitialAngle float64
}

var (
	ErrUnknownItem = errors.New("orbit: unknown item")
	ErrInvalidItem = errors.New("orbit: invalid item")
)

func (it Item) validate() error {
	switch {
	case it.ID == "":
		return fmt.Errorf("%w: empty id", ErrInvalidItem)
	case it.Radius <= 0:
		return fmt.Errorf("%w: %s: radius must be positive", ErrInvalidItem, it.ID)
	case it.Period <= 0:
		return fmt.Errorf("%w: %s: period must be positive", ErrInvalidItem, it.ID)
	case !it.Direction.Valid():
		return fmt.Errorf("%w: %s: direction %q", ErrInvalidItem, it.ID, it.Direction)
	case it.Size <= 0:
		return fmt.Errorf("%w: %s: size must be positive", ErrInvalidItem, it.ID)
	}
	return nil
}

// Four rings with two items each, every item counter-clockwise. Items that
// share a ring start half a turn apart.
var catalog = []Item{
	{ID: "react", Name: "React", Label: "UI Library", Color: "#61DAFB", Radius: 120, Period: 20 * time.Second, Direction: CounterClockwise, Size: 64, InitialAngle: 0},
	{ID: "postgresql", Name: "PostgreSQL", Label: "Relational Database", Color: "#4169E1", Radius: 120, Period: 20 * time.Second, Direction: CounterClockwise, Size: 64, InitialAngle: 180},
	{ID: "typescript", Name: "TypeScript", Label: "Typed JavaScript", Color: "#3178C6", Radius: 220, Period: 30 * time.Second, Direction: CounterClockwise, Size: 64, InitialAngle: 45},
	{ID: "figma", Name: "Figma", Label: "Design Tool", Color: "#F24E1E", Radius: 220, Period: 30 * time.Second, Direction: CounterClockwise, Size: 64, InitialAngle: 225},
	{ID: "git", Name: "Git", Label: "Version Control", Color: "#F05032", Radius: 320, Period: 45 * time.Second, Direction: CounterClockwise, Size: 64, InitialAngle: 90},
	{ID: "javascript", Name: "JavaScript", Label: "Programming Language", Color: "#F7DF1E", Radius: 320, Period: 45 * time.Second, Direction: CounterClockwise, Size: 64, InitialAngle: 270},
	{ID: "flutter", Name: "Flutter", Label: "Cross-platform UI", Color: "#02569B", Radius: 420, Period: 60 * time.Second, Direction: CounterClockwise, Size: 64, InitialAngle: 135},
	{ID: "mongodb", Name: "MongoDB", Label: "NoSQL Database", Color: "#47A248", Radius: 420, Period: 60 * time.Second, Direction: CounterClockwise, Size: 64, InitialAngle: 315},
}

// Catalog returns a copy of the built-in item list.
func Catalog() []Item {
	out := make([]Item, len(catalog))
	copy(out, catalog)
	return out
}
