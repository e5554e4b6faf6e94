package outputs

import (
	"github.com/markusressel/dim2go/internal/configuration"
	"github.com/markusressel/dim2go/internal/pwm"
	"github.com/markusressel/dim2go/internal/util"
	"strconv"
	"time"
)

const cmdTimeout = 2 * time.Second

// CmdOutput passes the channel and duty value as the last two arguments to an executable
type CmdOutput struct {
	Config configuration.OutputConfig `json:"configuration"`

	exec util.CommandFunc
}

func (o *CmdOutput) Setup(mode pwm.Mode) error {
	return nil
}

func (o *CmdOutput) Write(channel pwm.Channel, duty uint16) error {
	execFn := o.exec
	if execFn == nil {
		execFn = util.SafeCmdExecution
	}

	conf := o.Config.Cmd
	args := append(append([]string{}, conf.Args...), channel.String(), strconv.Itoa(int(duty)))
	_, err := execFn(conf.Exec, args, cmdTimeout)
	return err
}

func (o *CmdOutput) Close() error {
	return nil
}
