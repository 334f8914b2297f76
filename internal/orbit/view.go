package orbit

import "time"

// Ring is one decorative orbit path.
type Ring struct {
	Radius  float64
	Opacity float64
}

// ItemView carries what the template needs to draw one item. The rotation
// itself is a CSS animation; Offset is the phase in seconds the animation
// should start from and PlayState freezes it in place.
type ItemView struct {
	Item
	Focused            bool
	PlayState          string
	AnimationDirection string
	IconDirection      string
	PeriodSeconds      float64
	Offset             float64
}

// View is an immutable render model of the whole widget.
type View struct {
	State       State
	Rings       []Ring
	Items       []ItemView
	Tooltip     string
	ShowTooltip bool
	Detail      *Detail
}

// View renders the current state.
func (s *System) View() View {
	now := s.clock.Now()
	v := View{State: s.state}

	for i, r := range s.Rings() {
		v.Rings = append(v.Rings, Ring{Radius: r, Opacity: 0.08 + float64(i)*0.01})
	}

	for i, it := range s.items {
		period := it.Period
		offset := s.elapsed(i, now) % period
		v.Items = append(v.Items, ItemView{
			Item:               it,
			Focused:            s.state.Focused == it.ID,
			PlayState:          playState(s.Suspended(it.ID)),
			AnimationDirection: cssDirection(it.Direction),
			IconDirection:      cssDirection(it.Direction.Reverse()),
			PeriodSeconds:      period.Seconds(),
			Offset:             roundMillis(offset),
		})
	}

	v.Tooltip, v.ShowTooltip = s.Tooltip()
	if it, ok := s.Focused(); ok {
		d := DetailFor(it)
		v.Detail = &d
	}
	return v
}

func playState(suspended bool) string {
	if suspended {
		return "paused"
	}
	return "running"
}

// cssDirection maps a revolution sense onto animation-direction for a
// 0deg→360deg keyframe, which turns clockwise.
func cssDirection(d Direction) string {
	if d == Clockwise {
		return "normal"
	}
	return "reverse"
}

func roundMillis(d time.Duration) float64 {
	return float64(d.Round(time.Millisecond).Milliseconds()) / 1000
}
