//go:build tinygo

// Command pico runs the distance to brightness pipeline on an RP2040 board,
// with the distance sensor on ADC0 and the LED driver on GP15.
//
//	tinygo flash -target=pico ./firmware/pico
package main

import (
	"machine"
	"time"

	"github.com/markusressel/dim2go/internal/gamma"
	"github.com/markusressel/dim2go/internal/pwm"
	"github.com/markusressel/dim2go/internal/ranging"
	"github.com/markusressel/dim2go/internal/smoothing"
)

const (
	windowSize  = 10
	rangeMin    = 100
	rangeMax    = 240
	loopRate    = time.Millisecond
	reportEvery = 1000
)

func main() {
	machine.InitADC()
	sensor := machine.ADC{Pin: machine.ADC0}
	sensor.Configure(machine.ADCConfig{})

	mode := pwm.DefaultMode()
	mode.Channel = pwm.ChannelB
	driver := pwm.NewDriver(&slicePwm{
		group: machine.PWM7,
		pins:  [2]machine.Pin{machine.GP14, machine.GP15},
	}, mode)
	if err := driver.Configure(); err != nil {
		println("could not configure PWM:", err.Error())
		return
	}

	mapper, err := ranging.NewMapper(rangeMin, rangeMax)
	if err != nil {
		println("invalid range:", err.Error())
		return
	}
	window := smoothing.NewSampleWindow(windowSize, smoothing.PrefillFirst)

	cycle := 0
	for {
		window.Push(readDistance(sensor))
		average := window.Average()
		brightness := mapper.Map(average)
		duty := mode.Scale(gamma.Lookup(brightness))
		_ = driver.SetDuty(mode.Channel, duty)

		cycle++
		if cycle >= reportEvery {
			cycle = 0
			println("avg:", average)
			println("constr_avg:", mapper.Clamp(average))
			println("8_bit_value:", brightness)
			println("16_bit_gc_value:", duty)
		}
		time.Sleep(loopRate)
	}
}

// readDistance returns a 10-bit reading, the unit the range limits are given in
func readDistance(sensor machine.ADC) int {
	return int(sensor.Get() >> 6)
}
