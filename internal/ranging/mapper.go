// Package ranging maps a smoothed distance onto the 8-bit brightness domain.
package ranging

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

const (
	MaxBrightness = 255
	MinBrightness = 0
)

// Clamp limits v to [lo, hi]
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Mapper clamps a distance to its operating range and remaps it, inverted,
// to [255..0]: the closer the object, the brighter the light.
type Mapper struct {
	min int
	max int
}

func NewMapper(min int, max int) (*Mapper, error) {
	if min >= max {
		return nil, fmt.Errorf("invalid distance range [%d, %d]: min must be lower than max", min, max)
	}
	return &Mapper{
		min: min,
		max: max,
	}, nil
}

func (m *Mapper) Min() int {
	return m.min
}

func (m *Mapper) Max() int {
	return m.max
}

// Clamp limits the given distance to the operating range of this mapper
func (m *Mapper) Clamp(distance int) int {
	return Clamp(distance, m.min, m.max)
}

// Map returns the brightness for the given distance.
// The result is 255 - (clamped-min)*255/(max-min), using truncating division.
func (m *Mapper) Map(distance int) uint8 {
	clamped := m.Clamp(distance)
	scaled := (clamped - m.min) * MaxBrightness / (m.max - m.min)
	return uint8(MaxBrightness - scaled)
}
