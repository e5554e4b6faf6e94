package pwm

import (
	"fmt"
	"strings"
)

// Channel identifies one of the two outputs of a PWM timer
type Channel uint8

const (
	ChannelA Channel = iota
	ChannelB
)

const (
	// MaxTop is the largest supported top count (16-bit resolution)
	MaxTop uint16 = 0xFFFF
)

func ParseChannel(name string) (Channel, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "A":
		return ChannelA, nil
	case "B":
		return ChannelB, nil
	}
	return 0, fmt.Errorf("unknown pwm channel '%s', use one of: A | B", name)
}

// Valid reports whether c names an existing channel
func (c Channel) Valid() bool {
	return c == ChannelA || c == ChannelB
}

// Index returns the zero based hardware index of the channel
func (c Channel) Index() int {
	return int(c)
}

func (c Channel) String() string {
	switch c {
	case ChannelA:
		return "A"
	case ChannelB:
		return "B"
	}
	return fmt.Sprintf("Channel(%d)", uint8(c))
}

type Polarity string

const (
	PolarityNormal   Polarity = "normal"
	PolarityInversed Polarity = "inversed"
)

// Mode is the hardware configuration applied once by Driver.Configure
type Mode struct {
	// Top is the counter value of a full period, a duty of Top means 100%
	Top      uint16
	Polarity Polarity
	// Channel is the channel driven by this mode
	Channel Channel
}

// DefaultMode is a 16-bit, non-inverted mode on channel A
func DefaultMode() Mode {
	return Mode{
		Top:      MaxTop,
		Polarity: PolarityNormal,
		Channel:  ChannelA,
	}
}

// Scale converts a full-scale 16-bit duty (0..MaxTop) to the top count of this mode
func (m Mode) Scale(duty uint16) uint16 {
	return uint16(uint32(duty) * uint32(m.Top) / uint32(MaxTop))
}

func (m Mode) validate() error {
	if m.Top == 0 {
		return fmt.Errorf("top count must be > 0")
	}
	if !m.Channel.Valid() {
		return fmt.Errorf("invalid channel: %s", m.Channel)
	}
	if m.Polarity != PolarityNormal && m.Polarity != PolarityInversed {
		return fmt.Errorf("invalid polarity: '%s'", m.Polarity)
	}
	return nil
}
