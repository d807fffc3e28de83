package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Color styles one span of output. A nil Color leaves the text alone.
type Color func(termenv.Style) termenv.Style

func fg(c termenv.ANSIColor) Color {
	return func(s termenv.Style) termenv.Style { return s.Foreground(c) }
}

var (
	bold Color = termenv.Style.Bold
	dim  Color = termenv.Style.Faint

	fgGray          = fg(termenv.ANSIBrightBlack)
	fgGreen         = fg(termenv.ANSIGreen)
	fgYellow        = fg(termenv.ANSIYellow)
	fgBlue          = fg(termenv.ANSIBlue)
	fgRed           = fg(termenv.ANSIRed)
	fgBrightMagenta = fg(termenv.ANSIBrightMagenta)
	fgBrightCyan    = fg(termenv.ANSIBrightCyan)
	fgBrightYellow  = fg(termenv.ANSIBrightYellow)

	symCheck = "✔"
	symCross = "✖"
)

var (
	forceColor   bool
	disableColor bool

	// Stdout and Stderr are swapped out by tests and the script driver.
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
}

func isTTY() bool {
	f, ok := Stdout.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// C wraps s in color when the output is a terminal and NO_COLOR is unset.
func C(color Color, s string) string {
	if disableColor || color == nil || termenv.EnvNoColor() {
		return s
	}
	if forceColor || isTTY() {
		return color(termenv.String(s)).String()
	}
	return s
}

func OK(msg string)   { fmt.Fprintln(Stdout, C(fgGreen, symCheck+" "+msg)) }
func Fail(msg string) { fmt.Fprintln(Stderr, C(fgRed, symCross+" "+msg)) }

// Dim is for secondary columns such as ids.
func Dim(s string) string { return C(dim, s) }

// Note prints a muted line for no-op outcomes.
func Note(msg string) { fmt.Fprintln(Stdout, C(Current().Muted, msg)) }
