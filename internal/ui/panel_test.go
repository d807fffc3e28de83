package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░  50%", ProgressBar(1, 2, 10))
	assert.Equal(t, "░░░░░   0%", ProgressBar(0, 0, 1))
	assert.Equal(t, "█████ 100%", ProgressBar(9, 3, 5))
}

func TestPanelAlignsWideGlyphs(t *testing.T) {
	require.NoError(t, SetTheme("mono"))
	t.Cleanup(func() { _ = SetTheme("classic") })

	var buf bytes.Buffer
	Panel(&buf, []string{"할 일이 없습니다.", "ok"})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	w := ansi.StringWidth(lines[0])
	for _, ln := range lines {
		assert.Equal(t, w, ansi.StringWidth(ln), "line %q", ln)
	}
	assert.Equal(t, "| ok"+strings.Repeat(" ", 16)+"|", lines[2])
}

func TestSetThemeRejectsUnknown(t *testing.T) {
	err := SetTheme("sepia")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "classic")
	assert.Equal(t, "classic", Current().Name)
}

func TestCPlainWhenNotATerminal(t *testing.T) {
	var buf bytes.Buffer
	old := Stdout
	Stdout = &buf
	t.Cleanup(func() { Stdout = old })
	assert.Equal(t, "x", C(fgRed, "x"))
}

func TestCForcedColorUsesSGR(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("CLICOLOR", "")
	SetColorForcing(true, false)
	t.Cleanup(func() { SetColorForcing(false, false) })

	assert.Equal(t, "\x1b[32mok\x1b[0m", C(fgGreen, "ok"))
	assert.Equal(t, "\x1b[1mTodos\x1b[0m", C(Current().Title, "Todos"))
	assert.Equal(t, "plain", C(nil, "plain"))
}
