package controller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/markusressel/dim2go/internal/diagnostics"
	"github.com/markusressel/dim2go/internal/pwm"
	"github.com/markusressel/dim2go/internal/ranging"
	"github.com/markusressel/dim2go/internal/smoothing"
	"github.com/markusressel/dim2go/internal/testingutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createController(t *testing.T, sensor *testingutils.MockSensor, output *testingutils.MockOutput, windowSize int, prefill smoothing.Prefill, reporter diagnostics.Reporter) *Controller {
	mapper, err := ranging.NewMapper(100, 240)
	require.NoError(t, err)
	driver := pwm.NewDriver(output, pwm.DefaultMode())
	window := smoothing.NewSampleWindow(windowSize, prefill)
	return NewController(sensor, window, mapper, driver, reporter, time.Millisecond)
}

func configuredController(t *testing.T, sensor *testingutils.MockSensor, output *testingutils.MockOutput, windowSize int, prefill smoothing.Prefill, reporter diagnostics.Reporter) *Controller {
	c := createController(t, sensor, output, windowSize, prefill, reporter)
	require.NoError(t, c.driver.Configure())
	return c
}

func TestCycle_EndToEnd(t *testing.T) {
	var tests = []struct {
		tn       string
		distance int
		want     diagnostics.Diagnostics
	}{
		{
			tn:       "near end is full brightness",
			distance: 100,
			want:     diagnostics.Diagnostics{Raw: 100, Average: 100, Clamped: 100, Brightness: 255, Duty: 65535},
		},
		{
			tn:       "far end is off",
			distance: 240,
			want:     diagnostics.Diagnostics{Raw: 240, Average: 240, Clamped: 240, Brightness: 0, Duty: 0},
		},
		{
			tn:       "midpoint",
			distance: 170,
			want:     diagnostics.Diagnostics{Raw: 170, Average: 170, Clamped: 170, Brightness: 128, Duty: 9514},
		},
		{
			tn:       "below range saturates",
			distance: 10,
			want:     diagnostics.Diagnostics{Raw: 10, Average: 10, Clamped: 100, Brightness: 255, Duty: 65535},
		},
		{
			tn:       "above range saturates",
			distance: 4000,
			want:     diagnostics.Diagnostics{Raw: 4000, Average: 4000, Clamped: 240, Brightness: 0, Duty: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.tn, func(t *testing.T) {
			// GIVEN
			sensor := &testingutils.MockSensor{ID: "distance", Values: []int{tt.distance}}
			output := &testingutils.MockOutput{}
			reporter := &diagnostics.MultiReporter{}
			c := configuredController(t, sensor, output, 10, smoothing.PrefillFirst, reporter)

			// WHEN
			var d diagnostics.Diagnostics
			var err error
			for i := 0; i < 10; i++ {
				d, err = c.Cycle()
				require.NoError(t, err)
			}

			// THEN
			assert.Equal(t, tt.want, d)
			assert.Len(t, output.Duties, 10)
			assert.Equal(t, tt.want.Duty, output.Duties[9])
		})
	}
}

func TestCycle_ZeroPrefillIsBiasedTowardsFullBrightness(t *testing.T) {
	// GIVEN
	sensor := &testingutils.MockSensor{ID: "distance", Values: []int{240}}
	output := &testingutils.MockOutput{}
	c := configuredController(t, sensor, output, 10, smoothing.PrefillZero, nil)

	// WHEN
	first, err := c.Cycle()
	require.NoError(t, err)
	for i := 0; i < 9; i++ {
		_, err = c.Cycle()
		require.NoError(t, err)
	}
	last, err := c.Cycle()
	require.NoError(t, err)

	// THEN
	assert.Equal(t, 24, first.Average)
	assert.Equal(t, uint16(65535), first.Duty)
	assert.Equal(t, 240, last.Average)
	assert.Equal(t, uint16(0), last.Duty)
}

func TestCycle_FirstPrefillIsNotBiased(t *testing.T) {
	// GIVEN
	sensor := &testingutils.MockSensor{ID: "distance", Values: []int{240}}
	output := &testingutils.MockOutput{}
	c := configuredController(t, sensor, output, 10, smoothing.PrefillFirst, nil)

	// WHEN
	d, err := c.Cycle()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 240, d.Average)
	assert.Equal(t, uint16(0), d.Duty)
}

func TestCycle_ReportsDiagnostics(t *testing.T) {
	// GIVEN
	sensor := &testingutils.MockSensor{ID: "distance", Values: []int{100, 240}}
	output := &testingutils.MockOutput{}
	store := diagnostics.NewStore()
	c := configuredController(t, sensor, output, 2, smoothing.PrefillFirst, store)

	// WHEN
	_, err := c.Cycle()
	require.NoError(t, err)
	_, err = c.Cycle()
	require.NoError(t, err)

	// THEN
	snapshot, ok := store.Latest()
	assert.True(t, ok)
	assert.Equal(t, uint64(2), snapshot.Cycles)
	assert.Equal(t, diagnostics.Diagnostics{Raw: 240, Average: 170, Clamped: 170, Brightness: 128, Duty: 9514}, snapshot.Diagnostics)
}

func TestCycle_SensorErrorWithoutPreviousValue(t *testing.T) {
	// GIVEN
	sensor := &testingutils.MockSensor{ID: "distance", Err: errors.New("i2c timeout")}
	output := &testingutils.MockOutput{}
	store := diagnostics.NewStore()
	c := configuredController(t, sensor, output, 10, smoothing.PrefillFirst, store)

	// WHEN
	_, err := c.Cycle()

	// THEN
	assert.EqualError(t, err, "unable to read sensor distance: i2c timeout")
	assert.Empty(t, output.Duties)
	snapshot, ok := store.Latest()
	assert.False(t, ok)
	assert.Equal(t, uint64(1), snapshot.ReadErrors)
	assert.Equal(t, diagnostics.Diagnostics{}, snapshot.Diagnostics)
}

func TestCycle_SensorErrorReusesPreviousValue(t *testing.T) {
	// GIVEN
	sensor := &testingutils.MockSensor{ID: "distance", Values: []int{170}}
	output := &testingutils.MockOutput{}
	store := diagnostics.NewStore()
	c := configuredController(t, sensor, output, 10, smoothing.PrefillFirst, store)
	_, err := c.Cycle()
	require.NoError(t, err)

	// WHEN
	sensor.Err = errors.New("i2c timeout")
	d, err := c.Cycle()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 170, d.Raw)
	assert.Equal(t, uint16(9514), d.Duty)
	assert.Len(t, output.Duties, 2)
	snapshot, _ := store.Latest()
	assert.Equal(t, uint64(1), snapshot.ReadErrors)
	assert.Equal(t, uint64(2), snapshot.Cycles)
}

func TestCycle_WriteError(t *testing.T) {
	// GIVEN
	sensor := &testingutils.MockSensor{ID: "distance", Values: []int{170}}
	output := &testingutils.MockOutput{}
	store := diagnostics.NewStore()
	c := configuredController(t, sensor, output, 10, smoothing.PrefillFirst, store)
	output.WriteErr = errors.New("device busy")

	// WHEN
	d, err := c.Cycle()

	// THEN
	assert.EqualError(t, err, "unable to set duty cycle: device busy")
	assert.Equal(t, uint16(9514), d.Duty)
	snapshot, _ := store.Latest()
	assert.Equal(t, uint64(1), snapshot.WriteErrors)
}

func TestCycle_BeforeConfigurePanics(t *testing.T) {
	// GIVEN
	sensor := &testingutils.MockSensor{ID: "distance", Values: []int{170}}
	output := &testingutils.MockOutput{}
	c := createController(t, sensor, output, 10, smoothing.PrefillFirst, nil)

	// WHEN / THEN
	assert.Panics(t, func() {
		_, _ = c.Cycle()
	})
}

func TestRun_ConfiguresCyclesAndCloses(t *testing.T) {
	// GIVEN
	sensor := &testingutils.MockSensor{ID: "distance", Values: []int{170}}
	output := &testingutils.MockOutput{}
	c := createController(t, sensor, output, 10, smoothing.PrefillFirst, nil)
	ctx, cancel := context.WithCancel(context.Background())

	// WHEN
	done := make(chan error)
	go func() {
		done <- c.Run(ctx)
	}()
	assert.Eventually(t, func() bool {
		return output.Writes() >= 3
	}, 2*time.Second, time.Millisecond)
	cancel()
	err := <-done

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, pwm.DefaultMode(), *output.Mode)
	assert.True(t, output.Closed)
	assert.Equal(t, uint16(9514), output.Duties[0])
}

func TestRun_AlreadyConfigured(t *testing.T) {
	// GIVEN
	sensor := &testingutils.MockSensor{ID: "distance", Values: []int{170}}
	output := &testingutils.MockOutput{}
	c := configuredController(t, sensor, output, 10, smoothing.PrefillFirst, nil)

	// WHEN
	err := c.Run(context.Background())

	// THEN
	assert.ErrorIs(t, err, pwm.ErrAlreadyConfigured)
	assert.False(t, output.Closed)
}

func TestCycle_ReferencePoints(t *testing.T) {
	for _, point := range testingutils.ReferencePoints {
		// GIVEN
		sensor := &testingutils.MockSensor{ID: "distance", Values: []int{point.Distance}}
		output := &testingutils.MockOutput{}
		c := configuredController(t, sensor, output, 1, smoothing.PrefillZero, nil)

		// WHEN
		d, err := c.Cycle()

		// THEN
		assert.NoError(t, err)
		assert.Equal(t, point.Brightness, d.Brightness)
		assert.Equal(t, point.Duty, d.Duty)
		assert.Equal(t, []uint16{point.Duty}, output.Duties)
	}
}

func TestCycle_ScalesDutyToTop(t *testing.T) {
	// GIVEN
	sensor := &testingutils.MockSensor{ID: "distance", Values: []int{170, 100}}
	output := &testingutils.MockOutput{}
	mapper, err := ranging.NewMapper(100, 240)
	require.NoError(t, err)
	mode := pwm.DefaultMode()
	mode.Top = 1000
	driver := pwm.NewDriver(output, mode)
	require.NoError(t, driver.Configure())
	c := NewController(sensor, smoothing.NewSampleWindow(1, smoothing.PrefillFirst), mapper, driver, nil, time.Millisecond)

	// WHEN
	first, err1 := c.Cycle()
	second, err2 := c.Cycle()

	// THEN
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t, uint8(128), first.Brightness)
	assert.Equal(t, uint16(145), first.Duty)
	assert.Equal(t, uint16(1000), second.Duty)
	assert.Equal(t, []uint16{145, 1000}, output.Duties)
}
