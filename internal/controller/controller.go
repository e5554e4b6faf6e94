package controller

import (
	"context"
	"fmt"
	"github.com/markusressel/dim2go/internal/diagnostics"
	"github.com/markusressel/dim2go/internal/gamma"
	"github.com/markusressel/dim2go/internal/pwm"
	"github.com/markusressel/dim2go/internal/ranging"
	"github.com/markusressel/dim2go/internal/sensors"
	"github.com/markusressel/dim2go/internal/smoothing"
	"github.com/markusressel/dim2go/internal/ui"
	"time"
)

// Controller runs the distance to brightness pipeline:
// sensor -> window -> mapper -> gamma table -> pwm driver
type Controller struct {
	sensor   sensors.Sensor
	window   *smoothing.SampleWindow
	mapper   *ranging.Mapper
	driver   *pwm.Driver
	reporter diagnostics.Reporter
	loopRate time.Duration

	lastRaw int
	hasRaw  bool
	lastErr string
}

func NewController(
	sensor sensors.Sensor,
	window *smoothing.SampleWindow,
	mapper *ranging.Mapper,
	driver *pwm.Driver,
	reporter diagnostics.Reporter,
	loopRate time.Duration,
) *Controller {
	if reporter == nil {
		reporter = diagnostics.MultiReporter{}
	}
	return &Controller{
		sensor:   sensor,
		window:   window,
		mapper:   mapper,
		driver:   driver,
		reporter: reporter,
		loopRate: loopRate,
	}
}

// Run configures the driver and runs a Cycle on every tick until ctx is done.
// Failing cycles are logged, they never stop the loop.
func (c *Controller) Run(ctx context.Context) error {
	if err := c.driver.Configure(); err != nil {
		return err
	}
	defer func() {
		if err := c.driver.Close(); err != nil {
			ui.Warning("Unable to close pwm output: %v", err)
		}
	}()

	mode := c.driver.Mode()
	ui.Info("Starting control loop for sensor '%s' on channel %s (top: %d, loop rate: %s)", c.sensor.GetId(), mode.Channel, mode.Top, c.loopRate)

	ticker := time.NewTicker(c.loopRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			ui.Info("Stopping control loop...")
			return nil
		case <-ticker.C:
			_, err := c.Cycle()
			c.logCycleError(err)
		}
	}
}

// Cycle runs the pipeline exactly once.
// When the sensor cannot be read, the previous raw value is used instead.
func (c *Controller) Cycle() (diagnostics.Diagnostics, error) {
	raw, err := c.sensor.GetValue()
	if err != nil {
		c.reportReadError()
		if !c.hasRaw {
			return diagnostics.Diagnostics{}, fmt.Errorf("unable to read sensor %s: %w", c.sensor.GetId(), err)
		}
		raw = c.lastRaw
	}
	c.lastRaw = raw
	c.hasRaw = true

	c.window.Push(raw)
	average := c.window.Average()
	brightness := c.mapper.Map(average)
	duty := c.driver.Mode().Scale(gamma.Lookup(brightness))

	d := diagnostics.Diagnostics{
		Raw:        raw,
		Average:    average,
		Clamped:    c.mapper.Clamp(average),
		Brightness: brightness,
		Duty:       duty,
	}

	writeErr := c.driver.SetDuty(c.driver.Mode().Channel, duty)
	c.reporter.Report(d)
	if writeErr != nil {
		c.reportWriteError()
		return d, fmt.Errorf("unable to set duty cycle: %w", writeErr)
	}
	return d, nil
}

func (c *Controller) reportReadError() {
	if r, ok := c.reporter.(diagnostics.ErrorReporter); ok {
		r.ReportReadError()
	}
}

func (c *Controller) reportWriteError() {
	if r, ok := c.reporter.(diagnostics.ErrorReporter); ok {
		r.ReportWriteError()
	}
}

// logCycleError only logs changes, the loop runs far too often to log every failure
func (c *Controller) logCycleError(err error) {
	if err == nil {
		if len(c.lastErr) > 0 {
			ui.Info("Control loop recovered")
			c.lastErr = ""
		}
		return
	}
	if err.Error() != c.lastErr {
		ui.Warning("Error in control loop: %v", err)
		c.lastErr = err.Error()
	}
}
