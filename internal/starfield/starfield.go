// Package starfield generates the decorative star field behind the hero.
//
// Every attribute is derived from the star's index only, so the markup is
// byte-for-byte identical on every render.
package starfield

// Star is one twinkling dot. X and Y are percentages of the container,
// Size is in pixels, Duration and Delay are in seconds.
type Star struct {
	ID       int     `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Size     float64 `json:"size"`
	Opacity  float64 `json:"opacity"`
	Duration float64 `json:"duration"`
	Delay    float64 `json:"delay"`
}

// Bounds of the generated attributes. Upper bounds are exclusive.
const (
	MinSize     = 0.5
	MaxSize     = 2.5
	MinOpacity  = 0.2
	MaxOpacity  = 0.8
	MinDuration = 2.0
	MaxDuration = 6.0
	MaxDelay    = 3.0
)

// DefaultCount is the number of stars rendered when no count is configured.
const DefaultCount = 150

// Generate returns n stars. n <= 0 yields an empty slice.
func Generate(n int) []Star {
	if n <= 0 {
		return []Star{}
	}
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = At(i)
	}
	return stars
}

// At returns the star for index i.
func At(i int) Star {
	return Star{
		ID:       i,
		X:        float64(hash(i, 1234567)),
		Y:        float64(hash(i, 7654321)),
		Size:     unit(i+1, 2468)*(MaxSize-MinSize) + MinSize,
		Opacity:  unit(i+1, 8642)*(MaxOpacity-MinOpacity) + MinOpacity,
		Duration: unit(i+1, 1357)*(MaxDuration-MinDuration) + MinDuration,
		Delay:    unit(i+1, 9753) * MaxDelay,
	}
}

// hash folds i*k into [0, 100).
func hash(i, k int) int {
	v := (i * k) % 100
	if v < 0 {
		v += 100
	}
	return v
}

func unit(i, k int) float64 {
	return float64(hash(i, k)) / 100
}
