package frame

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/arbor"
	"github.com/phanxgames/arbor/linear"
)

// Tween animates the translation of a transform group. Each frame the
// manager advances it inside the bounds-changed phase and writes the
// new transform, so the group's bounds follow the animation. If the
// target node is destroyed, or rejects the write, the tween stops.
type Tween struct {
	target arbor.NodeID
	tweens [3]*gween.Tween
	// Done is set once every component reached its end value.
	Done bool
}

// TweenTranslation starts animating the transform group id from one
// position to another over duration seconds using the easing function.
// The group's transform is replaced by a pure translation.
func (m *Manager) TweenTranslation(id arbor.NodeID, from, to linear.V3, duration float32, fn ease.TweenFunc) *Tween {
	tw := &Tween{target: id}
	for i := range tw.tweens {
		tw.tweens[i] = gween.New(from[i], to[i], duration, fn)
	}
	m.tweens = append(m.tweens, tw)
	return tw
}

// Stop ends the tween where it is.
func (tw *Tween) Stop() { tw.Done = true }

// Target returns the animated node.
func (tw *Tween) Target() arbor.NodeID { return tw.target }

// apply returns the callback advancing tw by dt seconds.
func (tw *Tween) apply(dt float32) Callback {
	return func(g *arbor.Graph, id arbor.NodeID) error {
		var pos linear.V3
		done := true
		for i, t := range tw.tweens {
			v, finished := t.Update(dt)
			pos[i] = v
			if !finished {
				done = false
			}
		}
		tw.Done = done
		return g.SetTransform(id, linear.Translate(pos[0], pos[1], pos[2]))
	}
}
