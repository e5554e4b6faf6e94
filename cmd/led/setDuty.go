package led

import (
	"fmt"
	"github.com/markusressel/dim2go/internal"
	"github.com/markusressel/dim2go/internal/configuration"
	"github.com/markusressel/dim2go/internal/ui"
	"github.com/spf13/cobra"
	"strconv"
)

var setDutyCmd = &cobra.Command{
	Use:   "setDuty",
	Short: "Set the duty cycle of the LED output to the given value ([0..65535])",
	Long:  ``,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		duty, err := strconv.ParseUint(args[0], 10, 16)
		if err != nil {
			return fmt.Errorf("duty must be a number in 0..65535: %w", err)
		}

		configuration.ReadConfigFile()
		driver, err := internal.CreateDriver(configuration.CurrentConfig.Output)
		if err != nil {
			return err
		}
		if err = driver.Configure(); err != nil {
			return err
		}

		mode := driver.Mode()
		if uint16(duty) > mode.Top {
			ui.Warning("Duty %d exceeds top count %d, it will be limited", duty, mode.Top)
		}
		if err = driver.SetDuty(mode.Channel, uint16(duty)); err != nil {
			return err
		}
		ui.Success("Set duty of channel %s to %d", mode.Channel, duty)
		return nil
	},
}

func init() {
	Command.AddCommand(setDutyCmd)
}
