package outputs

import (
	"github.com/markusressel/dim2go/internal/configuration"
	"github.com/markusressel/dim2go/internal/pwm"
	"github.com/markusressel/dim2go/internal/util"
)

// FileOutput writes the raw duty value to a regular file, which is
// useful for testing a setup or to feed another program
type FileOutput struct {
	Config configuration.OutputConfig `json:"configuration"`
}

func (o *FileOutput) path() (string, error) {
	return util.ExpandHomeDir(o.Config.File.Path)
}

func (o *FileOutput) Setup(mode pwm.Mode) error {
	return o.Write(mode.Channel, 0)
}

func (o *FileOutput) Write(channel pwm.Channel, duty uint16) error {
	path, err := o.path()
	if err != nil {
		return err
	}
	return util.WriteIntToFileAtomic(int(duty), path)
}

func (o *FileOutput) Close() error {
	return nil
}
