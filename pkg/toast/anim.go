package toast

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Spring tuning shared by the fade and offset animations. The low
// damping ratio leaves a little bounce in stack reflows.
const (
	springFrequency = 8.0
	springDamping   = 0.65
)

// spring animates a single value toward a target using damped spring
// physics. One instance drives the fade level of a toast, another its
// stacking offset.
type spring struct {
	s      harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

func newSpring(fps int, initial float64) spring {
	return spring{
		s:      harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping),
		pos:    initial,
		target: initial,
	}
}

// retarget points the spring at a new rest value. Motion toward it
// starts on the next step.
func (sp *spring) retarget(v float64) {
	sp.target = v
}

// step advances the animation by one frame.
func (sp *spring) step() {
	sp.pos, sp.vel = sp.s.Update(sp.pos, sp.vel, sp.target)
}

// value returns the current position.
func (sp *spring) value() float64 {
	return sp.pos
}

// settled reports whether the spring has effectively come to rest.
func (sp *spring) settled() bool {
	return math.Abs(sp.pos-sp.target) < 0.005 && math.Abs(sp.vel) < 0.005
}

// snap jumps straight to v with no residual motion.
func (sp *spring) snap(v float64) {
	sp.pos = v
	sp.vel = 0
	sp.target = v
}
