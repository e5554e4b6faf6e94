package configuration

import "github.com/markusressel/dim2go/internal/pwm"

// OutputConfig describes the PWM output the LED is connected to,
// exactly one of the sub-configurations must be set
type OutputConfig struct {
	ID      string      `json:"id"`
	Channel pwm.Channel `json:"channel"`
	Top     uint16      `json:"top"`

	Sysfs *SysfsOutputConfig `json:"sysfs,omitempty"`
	File  *FileOutputConfig  `json:"file,omitempty"`
	Cmd   *CmdOutputConfig   `json:"cmd,omitempty"`
}

// SysfsOutputConfig points to a chip of the Linux PWM class (/sys/class/pwm/pwmchipN)
type SysfsOutputConfig struct {
	Chip int `json:"chip"`
	// PeriodNs is the length of a full PWM period in nanoseconds, defaults to Top
	PeriodNs int `json:"periodNs"`
}

type FileOutputConfig struct {
	Path string `json:"path"`
}

type CmdOutputConfig struct {
	Exec string   `json:"exec"`
	Args []string `json:"args"`
}
