package motion

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	h "maragu.dev/gomponents/html"
)

func decode(t *testing.T, s Spec) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(s.String()), &out))
	return out
}

func TestFadeUp(t *testing.T) {
	got := decode(t, FadeUp(20, 0.6).Delayed(0.2))

	assert.Equal(t, "mount", got["trigger"])
	assert.Equal(t, map[string]any{"opacity": 0.0, "y": 20.0}, got["initial"])
	assert.Equal(t, map[string]any{"opacity": 1.0, "y": 0.0}, got["animate"])
	assert.Equal(t, map[string]any{"duration": 0.6, "delay": 0.2}, got["transition"])
}

func TestDelayedDoesNotMutate(t *testing.T) {
	base := FadeUp(30, 0.5)
	_ = base.Delayed(0.3)
	assert.Zero(t, base.Transition.Delay)
}

func TestWhenInView(t *testing.T) {
	got := decode(t, Stagger(0.2, 0, SpringItem(100, 0)).WhenInView(true, 0.2))

	assert.Equal(t, "inview", got["trigger"])
	assert.Equal(t, true, got["once"])
	assert.Equal(t, 0.2, got["amount"])
	assert.Equal(t, map[string]any{"staggerChildren": 0.2}, got["transition"])

	children, ok := got["children"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"type": "spring", "stiffness": 100.0}, children["transition"])
}

func TestLoopingPresets(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want map[string]any
	}{
		{
			name: "pulse",
			spec: Pulse([]float64{1, 1.2, 1}, []float64{0.2, 0.3, 0.2}, 5),
			want: map[string]any{"duration": 5.0, "repeat": -1.0, "repeatType": "reverse"},
		},
		{
			name: "draw path",
			spec: DrawPath(2, 1),
			want: map[string]any{"duration": 2.0, "repeat": -1.0, "repeatType": "loop", "repeatDelay": 1.0},
		},
		{
			name: "float",
			spec: Float(State{"y": []float64{0, -15, 0}}, 4),
			want: map[string]any{"duration": 4.0, "repeat": -1.0, "repeatType": "reverse"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decode(t, tt.spec)["transition"])
		})
	}
}

func TestSpringPresets(t *testing.T) {
	item := decode(t, SpringItem(100, 15))
	assert.Equal(t, map[string]any{"type": "spring", "stiffness": 100.0, "damping": 15.0}, item["transition"])

	pop := decode(t, Pop(12, 0.5))
	assert.Equal(t, map[string]any{"scale": 1.0, "rotate": 12.0}, pop["animate"])
	assert.Equal(t, map[string]any{"type": "spring", "delay": 0.5}, pop["transition"])
}

func TestHoverScale(t *testing.T) {
	got := decode(t, HoverScale(1.05))
	assert.Equal(t, "hover", got["trigger"])
	assert.Equal(t, map[string]any{"scale": 1.05}, got["animate"])
}

func TestUnencodableStateFallsBack(t *testing.T) {
	s := Spec{Animate: State{"x": make(chan int)}}
	assert.Equal(t, "{}", s.String())
}

func TestAttr(t *testing.T) {
	var b strings.Builder
	require.NoError(t, h.Div(HoverScale(1.05).Attr()).Render(&b))
	assert.True(t, strings.HasPrefix(b.String(), `<div data-motion="`))
	assert.NotContains(t, b.String(), "data-motion-stagger")

	b.Reset()
	require.NoError(t, h.Div(Stagger(0.1, 0, SpringItem(100, 0)).Attr()).Render(&b))
	assert.Contains(t, b.String(), ` data-motion-stagger`)

	b.Reset()
	require.NoError(t, h.Div(Item()).Render(&b))
	assert.Contains(t, b.String(), "data-motion-item")
}
