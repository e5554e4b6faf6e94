package ui

import (
	"github.com/pterm/pterm"
	"os"
)

func ExamplePrintfln() {
	pterm.SetDefaultOutput(os.Stdout)
	pterm.DisableStyling()

	msg := "avg = %d"
	a := 170
	Printfln(msg, a)
	// Output:
	// avg = 170
}

func ExampleDebug() {
	pterm.SetDefaultOutput(os.Stdout)
	pterm.DisableStyling()
	SetDebugEnabled(true)

	msg := "duty: %d"
	a := 9514
	Debug(msg, a)
	// Output:
	// DEBUG: duty: 9514
}

func ExampleInfo() {
	pterm.SetDefaultOutput(os.Stdout)
	pterm.DisableStyling()

	msg := "Starting control loop with rate %s"
	a := "1ms"
	Info(msg, a)
	// Output:
	// INFO: Starting control loop with rate 1ms
}

func ExampleWarning() {
	pterm.SetDefaultOutput(os.Stdout)
	pterm.DisableStyling()

	msg := "Unable to read sensor: %d"
	a := 5
	Warning(msg, a)
	// Output:
	// WARNING: Unable to read sensor: 5
}

func ExampleError() {
	pterm.SetDefaultOutput(os.Stdout)
	pterm.DisableStyling()

	msg := "Error writing duty: %v"
	a := os.ErrClosed
	Error(msg, a)
	// Output:
	// ERROR: Error writing duty: file already closed
}
