// Package motion describes declarative animations attached to rendered
// elements. A Spec is encoded into a data-motion attribute and played back
// by the browser runtime served from /static/motion.js; Go code never
// observes animation progress.
package motion

import (
	"encoding/json"

	g "maragu.dev/gomponents"
)

// Trigger selects when an animation starts
type Trigger string

const (
	OnMount Trigger = "mount"
	InView  Trigger = "inview"
	OnHover Trigger = "hover"
)

// Infinite repeats a transition forever
const Infinite = -1

// State maps an animatable property (opacity, x, y, scale, rotate,
// pathLength) to a value or a keyframe list.
type State map[string]any

// Transition controls timing. Durations and delays are seconds.
type Transition struct {
	Type            string  `json:"type,omitempty"`
	Duration        float64 `json:"duration,omitempty"`
	Delay           float64 `json:"delay,omitempty"`
	Repeat          int     `json:"repeat,omitempty"`
	RepeatType      string  `json:"repeatType,omitempty"`
	RepeatDelay     float64 `json:"repeatDelay,omitempty"`
	Ease            string  `json:"ease,omitempty"`
	Stiffness       float64 `json:"stiffness,omitempty"`
	Damping         float64 `json:"damping,omitempty"`
	StaggerChildren float64 `json:"staggerChildren,omitempty"`
	DelayChildren   float64 `json:"delayChildren,omitempty"`
}

// Spec is a complete animation descriptor for one element.
// Once and Amount only apply to InView. Children, when set, is played on
// every Item descendant using the StaggerChildren and DelayChildren timing.
type Spec struct {
	Trigger    Trigger    `json:"trigger"`
	Initial    State      `json:"initial,omitempty"`
	Animate    State      `json:"animate"`
	Transition Transition `json:"transition"`
	Once       bool       `json:"once,omitempty"`
	Amount     float64    `json:"amount,omitempty"`
	Children   *Spec      `json:"children,omitempty"`
}

// Attr encodes the spec as a data-motion attribute. Stagger containers are
// additionally flagged with data-motion-stagger so the runtime can pair
// items with their nearest container.
func (s Spec) Attr() g.Node {
	if s.Children != nil {
		return g.Group([]g.Node{
			g.Attr("data-motion", s.String()),
			g.Attr("data-motion-stagger", ""),
		})
	}
	return g.Attr("data-motion", s.String())
}

// String returns the JSON form of the spec. A State holding a value JSON
// cannot represent yields an empty object so rendering never fails.
func (s Spec) String() string {
	b, err := json.Marshal(s)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// Delayed returns a copy of s starting d seconds later
func (s Spec) Delayed(d float64) Spec {
	s.Transition.Delay += d
	return s
}

// WhenInView returns a copy of s triggered on viewport entry
func (s Spec) WhenInView(once bool, amount float64) Spec {
	s.Trigger = InView
	s.Once = once
	s.Amount = amount
	return s
}

// Item marks an element as a child of the nearest enclosing Stagger
// container; the runtime plays the container's Children spec on it.
func Item() g.Node {
	return g.Attr("data-motion-item", "")
}
