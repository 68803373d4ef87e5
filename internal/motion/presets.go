package motion

// FadeUp slides an element up by offset pixels while fading it in
func FadeUp(offset, duration float64) Spec {
	return Spec{
		Trigger:    OnMount,
		Initial:    State{"opacity": 0, "y": offset},
		Animate:    State{"opacity": 1, "y": 0},
		Transition: Transition{Duration: duration},
	}
}

// SpringItem is the entrance used by children of a Stagger container
func SpringItem(stiffness, damping float64) Spec {
	return Spec{
		Trigger:    OnMount,
		Initial:    State{"opacity": 0, "y": 20},
		Animate:    State{"opacity": 1, "y": 0},
		Transition: Transition{Type: "spring", Stiffness: stiffness, Damping: damping},
	}
}

// Stagger fades a container in and plays item on each Item child, stagger
// seconds after the previous one.
func Stagger(stagger, delayChildren float64, item Spec) Spec {
	return Spec{
		Trigger: OnMount,
		Initial: State{"opacity": 0},
		Animate: State{"opacity": 1},
		Transition: Transition{
			StaggerChildren: stagger,
			DelayChildren:   delayChildren,
		},
		Children: &item,
	}
}

// Pulse loops scale and opacity keyframes back and forth forever
func Pulse(scale, opacity []float64, duration float64) Spec {
	return Spec{
		Trigger:    OnMount,
		Animate:    State{"scale": scale, "opacity": opacity},
		Transition: Transition{Duration: duration, Repeat: Infinite, RepeatType: "reverse"},
	}
}

// Float drifts an element through the given keyframes forever
func Float(animate State, duration float64) Spec {
	return Spec{
		Trigger:    OnMount,
		Animate:    animate,
		Transition: Transition{Duration: duration, Repeat: Infinite, RepeatType: "reverse"},
	}
}

// DrawPath strokes an SVG path from nothing to full length, looping with
// repeatDelay seconds between runs.
func DrawPath(duration, repeatDelay float64) Spec {
	return Spec{
		Trigger: OnMount,
		Initial: State{"pathLength": 0},
		Animate: State{"pathLength": 1},
		Transition: Transition{
			Duration:    duration,
			Repeat:      Infinite,
			RepeatType:  "loop",
			RepeatDelay: repeatDelay,
		},
	}
}

// Pop springs a sticker from nothing to full size at the given rotation
func Pop(rotate, delay float64) Spec {
	return Spec{
		Trigger:    OnMount,
		Initial:    State{"scale": 0},
		Animate:    State{"scale": 1, "rotate": rotate},
		Transition: Transition{Type: "spring", Delay: delay},
	}
}

// HoverScale grows an element while the pointer is over it
func HoverScale(scale float64) Spec {
	return Spec{
		Trigger: OnHover,
		Animate: State{"scale": scale},
	}
}
