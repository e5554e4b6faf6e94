package configuration

// SensorConfig describes the distance sensor, exactly one of the
// sub-configurations must be set
type SensorConfig struct {
	ID    string             `json:"id"`
	File  *FileSensorConfig  `json:"file,omitempty"`
	Iio   *IioSensorConfig   `json:"iio,omitempty"`
	HwMon *HwMonSensorConfig `json:"hwmon,omitempty"`
	Cmd   *CmdSensorConfig   `json:"cmd,omitempty"`
}

type FileSensorConfig struct {
	Path string `json:"path"`
}

// IioSensorConfig points to a raw ADC channel of the Linux IIO subsystem
type IioSensorConfig struct {
	Device  int `json:"device"`
	Channel int `json:"channel"`
}

type HwMonSensorConfig struct {
	Platform string `json:"platform"`
	Index    int    `json:"index"`
	// Input is resolved at runtime from Platform and Index
	Input string `json:"input,omitempty"`
}

type CmdSensorConfig struct {
	Exec string   `json:"exec"`
	Args []string `json:"args"`
}
