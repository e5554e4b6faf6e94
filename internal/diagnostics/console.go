package diagnostics

import (
	"github.com/markusressel/dim2go/internal/ui"
)

// ConsoleReporter prints the values of every n-th cycle
type ConsoleReporter struct {
	every int
	count int
}

func NewConsoleReporter(every int) *ConsoleReporter {
	if every < 1 {
		every = 1
	}
	return &ConsoleReporter{every: every}
}

func (r *ConsoleReporter) Report(d Diagnostics) {
	r.count++
	if r.count < r.every {
		return
	}
	r.count = 0

	ui.Printfln("avg: %d", d.Average)
	ui.Printfln("constr_avg: %d", d.Clamped)
	ui.Printfln("8_bit_value: %d", d.Brightness)
	ui.Printfln("16_bit_gc_value: %d", d.Duty)
}
