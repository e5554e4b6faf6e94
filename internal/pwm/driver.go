// Package pwm owns the PWM output the LED is driven with.
//
// A Driver starts Unconfigured. Configure applies its Mode to the Output exactly
// once and moves it to Configured, which lasts for the lifetime of the Driver.
// SetDuty is only valid in the Configured state.
package pwm

import (
	"errors"
	"fmt"
)

var ErrAlreadyConfigured = errors.New("pwm driver is already configured")

// Output is the hardware capability behind a Driver
type Output interface {
	// Setup applies the given mode, it is called exactly once
	Setup(mode Mode) error
	// Write sets the duty cycle register of the given channel
	Write(channel Channel, duty uint16) error
	Close() error
}

type state int

const (
	stateUnconfigured state = iota
	stateConfigured
)

type Driver struct {
	output Output
	mode   Mode
	state  state
}

func NewDriver(output Output, mode Mode) *Driver {
	return &Driver{
		output: output,
		mode:   mode,
		state:  stateUnconfigured,
	}
}

// Configure applies the mode of this driver to its output.
// A second call returns ErrAlreadyConfigured and does not touch the output.
func (d *Driver) Configure() error {
	if d.state == stateConfigured {
		return ErrAlreadyConfigured
	}
	if err := d.mode.validate(); err != nil {
		return fmt.Errorf("invalid pwm mode: %w", err)
	}
	if err := d.output.Setup(d.mode); err != nil {
		return fmt.Errorf("unable to setup pwm output: %w", err)
	}
	d.state = stateConfigured
	return nil
}

func (d *Driver) Configured() bool {
	return d.state == stateConfigured
}

// Mode returns the mode of this driver, it never changes
func (d *Driver) Mode() Mode {
	return d.mode
}

// SetDuty writes the duty cycle of the given channel.
// Values above the top count are limited to it. Calling SetDuty before Configure,
// or for a channel that is not driven by the configured mode, is a programming
// error and panics.
func (d *Driver) SetDuty(channel Channel, duty uint16) error {
	if d.state != stateConfigured {
		panic("pwm: SetDuty called before Configure")
	}
	if !channel.Valid() {
		panic(fmt.Sprintf("pwm: invalid channel %s", channel))
	}
	if channel != d.mode.Channel {
		panic(fmt.Sprintf("pwm: channel %s is not configured, driven channel is %s", channel, d.mode.Channel))
	}
	if duty > d.mode.Top {
		duty = d.mode.Top
	}
	return d.output.Write(channel, duty)
}

// Close releases the underlying output
func (d *Driver) Close() error {
	return d.output.Close()
}
