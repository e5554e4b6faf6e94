package outputs

import (
	"fmt"
	"github.com/markusressel/dim2go/internal/configuration"
	"github.com/markusressel/dim2go/internal/pwm"
)

// NewOutput creates the pwm.Output described by the given config
func NewOutput(config configuration.OutputConfig) (pwm.Output, error) {
	if config.Sysfs != nil {
		return &SysfsOutput{
			Chip:     config.Sysfs.Chip,
			PeriodNs: config.Sysfs.PeriodNs,
			Config:   config,
		}, nil
	}

	if config.File != nil {
		return &FileOutput{
			Config: config,
		}, nil
	}

	if config.Cmd != nil {
		return &CmdOutput{
			Config: config,
		}, nil
	}

	return nil, fmt.Errorf("no matching output type for output: %s", config.ID)
}

// ModeOf returns the pwm.Mode an output config asks for
func ModeOf(config configuration.OutputConfig) pwm.Mode {
	mode := pwm.DefaultMode()
	mode.Channel = config.Channel
	if config.Top > 0 {
		mode.Top = config.Top
	}
	return mode
}
