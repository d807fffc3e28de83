package tui

import (
	"regexp"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/Makepad-fr/tada/internal/model"
)

var crossOut = regexp.MustCompile(`\x1b\[(?:[0-9]+;)*9(?:;[0-9]+)*m`)

func TestItemViewShowsText(t *testing.T) {
	it := Item{Todo: model.Todo{ID: 1, Text: "테스트 할일"}}
	out := ansi.Strip(it.View(false, "삭제"))
	assert.Contains(t, out, "테스트 할일")
	assert.Contains(t, out, boxUnchecked)
	assert.Contains(t, out, "삭제")
}

func TestItemViewCompletedIsStruckThrough(t *testing.T) {
	old := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.ANSI)
	t.Cleanup(func() { lipgloss.SetColorProfile(old) })

	pending := Item{Todo: model.Todo{ID: 1, Text: "buy milk"}}
	done := Item{Todo: model.Todo{ID: 1, Text: "buy milk", Completed: true}}

	assert.NotRegexp(t, crossOut, pending.View(false, "삭제"))
	assert.Regexp(t, crossOut, done.View(false, "삭제"))
	assert.Contains(t, ansi.Strip(done.View(false, "삭제")), boxChecked)
}

func TestItemForwardsIntents(t *testing.T) {
	it := Item{Todo: model.Todo{ID: 1, Text: "테스트 할일"}}
	assert.Equal(t, IntentMsg{Intent: model.Toggle(1)}, it.Toggle()())
	assert.Equal(t, IntentMsg{Intent: model.Delete(1)}, it.Delete()())
}

func TestItemSelectedMarker(t *testing.T) {
	it := Item{Todo: model.Todo{ID: 1, Text: "a"}}
	assert.Regexp(t, `^> `, ansi.Strip(it.View(true, "x")))
	assert.Regexp(t, `^  `, ansi.Strip(it.View(false, "x")))
}
