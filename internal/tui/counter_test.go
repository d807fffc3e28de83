package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Makepad-fr/tada/internal/harness"
)

var h = harness.New(harness.Config{Width: 80, Height: 24})

func TestCounterInitialCount(t *testing.T) {
	for seed, want := range map[int]string{0: "Count: 0", 1: "Count: 1"} {
		s := h.Render(t, NewCounter(seed, nil))
		assert.True(t, s.Contains(want), "seed %d:\n%s", seed, s.Screen())
	}
}

func TestCounterIncrement(t *testing.T) {
	s := h.Render(t, NewCounter(0, nil))
	s.Press("+")
	assert.True(t, s.Contains("Count: 1"))
	assert.Equal(t, 1, s.Model().(CounterModel).Value())
}

func TestCounterDecrementGoesNegative(t *testing.T) {
	s := h.Render(t, NewCounter(0, nil))
	s.Press("-")
	assert.True(t, s.Contains("Count: -1"))
}

func TestCounterControlsByFocus(t *testing.T) {
	s := h.Render(t, NewCounter(1, nil))
	assert.True(t, s.Contains("Increment"))
	assert.True(t, s.Contains("Decrement"))

	s.Press("enter")
	assert.Equal(t, 2, s.Model().(CounterModel).Value())

	s.Press("tab", "enter", "space")
	assert.Equal(t, 0, s.Model().(CounterModel).Value())

	s.Press("shift+tab", "enter")
	assert.Equal(t, 1, s.Model().(CounterModel).Value())
}

func TestCounterNetClicks(t *testing.T) {
	s := h.Render(t, NewCounter(1, nil))
	s.Press("+", "+", "-", "+", "-", "-", "-")
	assert.True(t, s.Contains("Count: 0"))
}

func TestCounterQuit(t *testing.T) {
	s := h.Render(t, NewCounter(0, nil))
	s.Press("q")
	assert.True(t, s.Quit())
}
