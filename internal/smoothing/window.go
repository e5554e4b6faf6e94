// Package smoothing contains the sliding window used to smooth raw sensor samples.
package smoothing

import (
	"fmt"

	"github.com/asecurityteam/rolling"
)

// Prefill defines the content of the window slots before the first N samples arrived.
type Prefill string

const (
	// PrefillFirst writes the first pushed sample into every slot of the window,
	// so the average is meaningful from the very first cycle.
	PrefillFirst Prefill = "first"
	// PrefillZero starts with all slots at zero. The first N-1 averages are biased
	// towards zero.
	PrefillZero Prefill = "zero"
)

// ParsePrefill converts the textual name of a prefill policy
func ParsePrefill(name string) (Prefill, error) {
	switch Prefill(name) {
	case PrefillFirst, PrefillZero:
		return Prefill(name), nil
	}
	return "", fmt.Errorf("unknown prefill policy '%s', use one of: %s | %s", name, PrefillFirst, PrefillZero)
}

// SampleWindow is a fixed capacity window over the most recent raw samples.
// It is not safe for concurrent use.
type SampleWindow struct {
	size    int
	prefill Prefill
	points  *rolling.PointPolicy
	count   int
}

// NewSampleWindow creates a window holding exactly size samples.
// It panics if size < 1.
func NewSampleWindow(size int, prefill Prefill) *SampleWindow {
	if size < 1 {
		panic(fmt.Sprintf("sample window size must be >= 1, was %d", size))
	}
	return &SampleWindow{
		size:    size,
		prefill: prefill,
		points:  rolling.NewPointPolicy(rolling.NewWindow(size)),
	}
}

// Push inserts a new raw sample, evicting the oldest one.
// Values are not validated.
func (w *SampleWindow) Push(raw int) {
	if w.count == 0 && w.prefill == PrefillFirst {
		for i := 0; i < w.size; i++ {
			w.points.Append(float64(raw))
		}
	} else {
		w.points.Append(float64(raw))
	}
	w.count++
}

// Average returns the truncating integer mean of all slots of the window.
func (w *SampleWindow) Average() int {
	sum := w.points.Reduce(rolling.Sum)
	return int(sum) / w.size
}

// Size returns the capacity N of the window
func (w *SampleWindow) Size() int {
	return w.size
}

// Count returns the number of samples pushed so far
func (w *SampleWindow) Count() int {
	return w.count
}

// WarmedUp indicates whether the window has seen at least N samples,
// i.e. no slot holds a prefill value anymore.
func (w *SampleWindow) WarmedUp() bool {
	return w.count >= w.size
}
