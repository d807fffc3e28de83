package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Makepad-fr/tada/internal/ui"
)

// exitCode lets a command pick the process status without printing anything more.
type exitCode int

func (e exitCode) Error() string { return fmt.Sprintf("exit status %d", int(e)) }

func main() {
	if err := rootCmd.Execute(); err != nil {
		var code exitCode
		if errors.As(err, &code) {
			os.Exit(int(code))
		}
		ui.Fail(err.Error())
		os.Exit(1)
	}
}
