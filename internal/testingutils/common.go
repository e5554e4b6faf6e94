package testingutils

import (
	"sync"

	"github.com/markusressel/dim2go/internal/configuration"
	"github.com/markusressel/dim2go/internal/pwm"
)

// ReferencePoints are distances with their expected brightness and duty,
// for the default range of [100..240]
var ReferencePoints = []struct {
	Distance   int
	Brightness uint8
	Duty       uint16
}{
	{Distance: 100, Brightness: 255, Duty: 65535},
	{Distance: 170, Brightness: 128, Duty: 9514},
	{Distance: 240, Brightness: 0, Duty: 0},
}

// MockSensor returns its Values in a loop, or Err if set
type MockSensor struct {
	ID     string
	Values []int
	Err    error
	calls  int
}

func (sensor *MockSensor) GetId() string {
	return sensor.ID
}

func (sensor *MockSensor) GetLabel() string {
	return sensor.ID
}

func (sensor *MockSensor) GetConfig() configuration.SensorConfig {
	return configuration.SensorConfig{ID: sensor.ID}
}

func (sensor *MockSensor) GetValue() (int, error) {
	if sensor.Err != nil {
		return 0, sensor.Err
	}
	value := sensor.Values[sensor.calls%len(sensor.Values)]
	sensor.calls++
	return value, nil
}

// MockOutput records everything written to it
type MockOutput struct {
	mu       sync.Mutex
	Mode     *pwm.Mode
	Duties   []uint16
	WriteErr error
	Closed   bool
}

func (o *MockOutput) Setup(mode pwm.Mode) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Mode = &mode
	return nil
}

func (o *MockOutput) Write(channel pwm.Channel, duty uint16) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.WriteErr != nil {
		return o.WriteErr
	}
	o.Duties = append(o.Duties, duty)
	return nil
}

func (o *MockOutput) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Closed = true
	return nil
}

// Writes returns the number of successful writes
func (o *MockOutput) Writes() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.Duties)
}
