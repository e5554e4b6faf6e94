package sensors

import (
	"fmt"
	"github.com/markusressel/dim2go/internal/configuration"
	"github.com/markusressel/dim2go/internal/util"
)

// HwmonSensor reads a voltage input (in millivolts) of an hwmon chip,
// e.g. an ADC like the ads1015 with a distance sensor attached to it
type HwmonSensor struct {
	Label  string                     `json:"label"`
	Index  int                        `json:"index"`
	Input  string                     `json:"input"`
	Config configuration.SensorConfig `json:"configuration"`
}

func (sensor HwmonSensor) GetId() string {
	return sensor.Config.ID
}

func (sensor HwmonSensor) GetLabel() string {
	return sensor.Label
}

func (sensor HwmonSensor) GetConfig() configuration.SensorConfig {
	return sensor.Config
}

func (sensor HwmonSensor) GetValue() (int, error) {
	value, err := util.ReadIntFromFile(sensor.Input)
	if err != nil {
		return 0, fmt.Errorf("sensor %s: %w", sensor.GetId(), err)
	}
	return value, nil
}
