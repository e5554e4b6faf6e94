package pwm

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"testing"
)

type write struct {
	channel Channel
	duty    uint16
}

type MockOutput struct {
	setups   []Mode
	writes   []write
	setupErr error
	writeErr error
	closed   bool
}

func (o *MockOutput) Setup(mode Mode) error {
	if o.setupErr != nil {
		return o.setupErr
	}
	o.setups = append(o.setups, mode)
	return nil
}

func (o *MockOutput) Write(channel Channel, duty uint16) error {
	if o.writeErr != nil {
		return o.writeErr
	}
	o.writes = append(o.writes, write{channel: channel, duty: duty})
	return nil
}

func (o *MockOutput) Close() error {
	o.closed = true
	return nil
}

func TestDriver_Configure(t *testing.T) {
	// GIVEN
	output := &MockOutput{}
	driver := NewDriver(output, DefaultMode())
	assert.False(t, driver.Configured())

	// WHEN
	err := driver.Configure()

	// THEN
	assert.NoError(t, err)
	assert.True(t, driver.Configured())
	assert.Equal(t, []Mode{{Top: 0xFFFF, Polarity: PolarityNormal, Channel: ChannelA}}, output.setups)
}

func TestDriver_ConfigureTwice(t *testing.T) {
	// GIVEN
	output := &MockOutput{}
	driver := NewDriver(output, DefaultMode())
	err := driver.Configure()
	assert.NoError(t, err)

	// WHEN
	err = driver.Configure()

	// THEN
	assert.True(t, errors.Is(err, ErrAlreadyConfigured))
	assert.Len(t, output.setups, 1)
	assert.True(t, driver.Configured())
}

func TestDriver_ConfigureSetupFails(t *testing.T) {
	// GIVEN
	output := &MockOutput{setupErr: errors.New("permission denied")}
	driver := NewDriver(output, DefaultMode())

	// WHEN
	err := driver.Configure()

	// THEN
	assert.Error(t, err)
	assert.False(t, driver.Configured())
}

func TestDriver_ConfigureInvalidMode(t *testing.T) {
	// GIVEN
	output := &MockOutput{}
	mode := DefaultMode()
	mode.Top = 0
	driver := NewDriver(output, mode)

	// WHEN
	err := driver.Configure()

	// THEN
	assert.Error(t, err)
	assert.Empty(t, output.setups)
}

func TestDriver_SetDutyBeforeConfigure(t *testing.T) {
	// GIVEN
	driver := NewDriver(&MockOutput{}, DefaultMode())

	// THEN
	assert.Panics(t, func() {
		_ = driver.SetDuty(ChannelA, 100)
	})
}

func TestDriver_SetDutyInvalidChannel(t *testing.T) {
	// GIVEN
	driver := NewDriver(&MockOutput{}, DefaultMode())
	assert.NoError(t, driver.Configure())

	// THEN
	assert.Panics(t, func() {
		_ = driver.SetDuty(Channel(7), 100)
	})
	assert.Panics(t, func() {
		_ = driver.SetDuty(ChannelB, 100)
	})
}

func TestDriver_SetDuty(t *testing.T) {
	// GIVEN
	output := &MockOutput{}
	driver := NewDriver(output, DefaultMode())
	assert.NoError(t, driver.Configure())

	// WHEN
	err1 := driver.SetDuty(ChannelA, 0)
	err2 := driver.SetDuty(ChannelA, 9514)
	err3 := driver.SetDuty(ChannelA, 65535)

	// THEN
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.NoError(t, err3)
	assert.Equal(t, []write{
		{ChannelA, 0},
		{ChannelA, 9514},
		{ChannelA, 65535},
	}, output.writes)
}

func TestDriver_SetDutyLimitedToTop(t *testing.T) {
	// GIVEN
	output := &MockOutput{}
	mode := DefaultMode()
	mode.Top = 1000
	driver := NewDriver(output, mode)
	assert.NoError(t, driver.Configure())

	// WHEN
	err := driver.SetDuty(ChannelA, 5000)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, uint16(1000), output.writes[0].duty)
}

func TestMode_Scale(t *testing.T) {
	// GIVEN
	full := DefaultMode()
	reduced := DefaultMode()
	reduced.Top = 1000

	// THEN
	assert.Equal(t, uint16(9514), full.Scale(9514))
	assert.Equal(t, MaxTop, full.Scale(MaxTop))
	assert.Equal(t, uint16(0), reduced.Scale(0))
	assert.Equal(t, uint16(145), reduced.Scale(9514))
	assert.Equal(t, uint16(1000), reduced.Scale(MaxTop))
}

func TestDriver_SetDutyWriteError(t *testing.T) {
	// GIVEN
	output := &MockOutput{}
	driver := NewDriver(output, DefaultMode())
	assert.NoError(t, driver.Configure())
	output.writeErr = errors.New("device busy")

	// WHEN
	err := driver.SetDuty(ChannelA, 1)

	// THEN
	assert.Error(t, err)
}

func TestDriver_ModeIsImmutable(t *testing.T) {
	// GIVEN
	mode := Mode{Top: 0xFFFF, Polarity: PolarityNormal, Channel: ChannelB}
	driver := NewDriver(&MockOutput{}, mode)
	assert.NoError(t, driver.Configure())

	// WHEN
	for duty := 0; duty <= 0xFFFF; duty += 257 {
		assert.NoError(t, driver.SetDuty(ChannelB, uint16(duty)))
	}
	_ = driver.Configure()

	// THEN
	assert.Equal(t, mode, driver.Mode())
}

func TestDriver_Close(t *testing.T) {
	// GIVEN
	output := &MockOutput{}
	driver := NewDriver(output, DefaultMode())

	// WHEN
	err := driver.Close()

	// THEN
	assert.NoError(t, err)
	assert.True(t, output.closed)
}

func TestParseChannel(t *testing.T) {
	a, errA := ParseChannel("A")
	b, errB := ParseChannel(" b ")
	_, errC := ParseChannel("C")

	assert.NoError(t, errA)
	assert.Equal(t, ChannelA, a)
	assert.NoError(t, errB)
	assert.Equal(t, ChannelB, b)
	assert.Error(t, errC)
	assert.Equal(t, "B", ChannelB.String())
	assert.Equal(t, 1, ChannelB.Index())
}
