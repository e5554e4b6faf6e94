package sensors

import (
	"fmt"
	"github.com/markusressel/dim2go/internal/configuration"
	"github.com/markusressel/dim2go/internal/util"
)

type FileSensor struct {
	Config configuration.SensorConfig `json:"configuration"`
}

func (sensor FileSensor) GetId() string {
	return sensor.Config.ID
}

func (sensor FileSensor) GetLabel() string {
	return "File " + sensor.Config.File.Path
}

func (sensor FileSensor) GetConfig() configuration.SensorConfig {
	return sensor.Config
}

func (sensor FileSensor) GetValue() (int, error) {
	filePath, err := util.ExpandHomeDir(sensor.Config.File.Path)
	if err != nil {
		return 0, err
	}

	value, err := util.ReadIntFromFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("sensor %s: unable to read int from file %s: %w", sensor.GetId(), filePath, err)
	}
	return value, nil
}
