//go:build tinygo

package main

import (
	"machine"
	"time"

	"github.com/markusressel/dim2go/internal/pwm"
)

// pwmGroup is a single PWM slice of the RP2040, driving two channels
type pwmGroup interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
	SetInverting(channel uint8, inverting bool)
}

// slicePwm is the pwm.Output of a PWM slice, channel A and B map to its two pins
type slicePwm struct {
	group    pwmGroup
	pins     [2]machine.Pin
	channels [2]uint8
	top      uint16
}

func (o *slicePwm) Setup(mode pwm.Mode) error {
	// the counter wraps at 65535 with a 125MHz clock and no divider
	err := o.group.Configure(machine.PWMConfig{
		Period: uint64(time.Second) / 1907,
	})
	if err != nil {
		return err
	}
	for i, pin := range o.pins {
		ch, err := o.group.Channel(pin)
		if err != nil {
			return err
		}
		o.channels[i] = ch
		o.group.SetInverting(ch, mode.Polarity == pwm.PolarityInversed)
	}
	o.top = mode.Top
	return nil
}

func (o *slicePwm) Write(channel pwm.Channel, duty uint16) error {
	value := uint64(duty) * uint64(o.group.Top()) / uint64(o.top)
	o.group.Set(o.channels[channel.Index()], uint32(value))
	return nil
}

func (o *slicePwm) Close() error {
	for _, ch := range o.channels {
		o.group.Set(ch, 0)
	}
	return nil
}
