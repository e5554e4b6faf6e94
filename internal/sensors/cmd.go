package sensors

import (
	"fmt"
	"github.com/markusressel/dim2go/internal/configuration"
	"github.com/markusressel/dim2go/internal/util"
	"strconv"
	"strings"
	"time"
)

const cmdTimeout = 2 * time.Second

type CmdSensor struct {
	Config configuration.SensorConfig `json:"configuration"`

	// exec is used instead of util.SafeCmdExecution when set
	exec util.CommandFunc
}

func (sensor CmdSensor) GetId() string {
	return sensor.Config.ID
}

func (sensor CmdSensor) GetLabel() string {
	return "Command " + sensor.Config.Cmd.Exec
}

func (sensor CmdSensor) GetConfig() configuration.SensorConfig {
	return sensor.Config
}

func (sensor CmdSensor) GetValue() (int, error) {
	execFn := sensor.exec
	if execFn == nil {
		execFn = util.SafeCmdExecution
	}

	conf := sensor.Config.Cmd
	result, err := execFn(conf.Exec, conf.Args, cmdTimeout)
	if err != nil {
		return 0, fmt.Errorf("sensor %s: %w", sensor.GetId(), err)
	}

	value, err := strconv.Atoi(strings.TrimSpace(result))
	if err != nil {
		return 0, fmt.Errorf("sensor %s: unable to read int from command output of %s: %w", sensor.GetId(), conf.Exec, err)
	}

	return value, nil
}
