// Package diagnostics carries the intermediate values of one control cycle
// to the console, the REST API and the prometheus exporter.
package diagnostics

// Diagnostics are the values of every stage of a single control cycle
type Diagnostics struct {
	// Raw is the unfiltered sensor value
	Raw int `json:"raw"`
	// Average is the mean of the sample window
	Average int `json:"average"`
	// Clamped is Average limited to the configured range
	Clamped int `json:"clamped"`
	// Brightness is the perceptual 8-bit brightness
	Brightness uint8 `json:"brightness"`
	// Duty is the gamma corrected 16-bit duty cycle written to the output
	Duty uint16 `json:"duty"`
}

type Reporter interface {
	Report(d Diagnostics)
}

// MultiReporter passes every report to all of its reporters, in order
type MultiReporter []Reporter

func (m MultiReporter) Report(d Diagnostics) {
	for _, r := range m {
		r.Report(d)
	}
}

// ErrorReporter is implemented by reporters that count failed cycles
type ErrorReporter interface {
	ReportReadError()
	ReportWriteError()
}

func (m MultiReporter) ReportReadError() {
	for _, r := range m {
		if e, ok := r.(ErrorReporter); ok {
			e.ReportReadError()
		}
	}
}

func (m MultiReporter) ReportWriteError() {
	for _, r := range m {
		if e, ok := r.(ErrorReporter); ok {
			e.ReportWriteError()
		}
	}
}
