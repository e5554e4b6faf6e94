package sensors

import (
	"fmt"
	"github.com/markusressel/dim2go/internal/configuration"
)

// Sensor provides the latest raw sample of a distance sensor
type Sensor interface {
	GetId() string

	GetLabel() string

	GetConfig() configuration.SensorConfig

	// GetValue returns the current raw value of this sensor in its native units
	GetValue() (int, error)
}

func NewSensor(config configuration.SensorConfig) (Sensor, error) {
	if config.File != nil {
		return &FileSensor{
			Config: config,
		}, nil
	}

	if config.Iio != nil {
		return &IioSensor{
			Config: config,
			Input:  IioChannelPath(IioDevicesPath, config.Iio.Device, config.Iio.Channel),
		}, nil
	}

	if config.HwMon != nil {
		if len(config.HwMon.Input) <= 0 {
			return nil, fmt.Errorf("sensor %s: hwmon input has not been resolved", config.ID)
		}
		return &HwmonSensor{
			Config: config,
			Index:  config.HwMon.Index,
			Input:  config.HwMon.Input,
		}, nil
	}

	if config.Cmd != nil {
		return &CmdSensor{
			Config: config,
		}, nil
	}

	return nil, fmt.Errorf("no matching sensor type for sensor: %s", config.ID)
}
