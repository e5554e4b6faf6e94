package sensor

import (
	"fmt"
	"github.com/markusressel/dim2go/internal"
	"github.com/markusressel/dim2go/internal/configuration"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var sensorId string

var Command = &cobra.Command{
	Use:              "sensor",
	Short:            "Print the current raw value of the distance sensor",
	Long:             ``,
	TraverseChildren: true,
	Args:             cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		configuration.ReadConfigFile()
		config := configuration.CurrentConfig.Sensor
		if len(sensorId) > 0 && sensorId != config.ID {
			return fmt.Errorf("no sensor with id found: %s, options: [%s]", sensorId, config.ID)
		}

		sensor, err := internal.CreateSensor(&config)
		if err != nil {
			return err
		}

		value, err := sensor.GetValue()
		if err != nil {
			return err
		}
		fmt.Printf("%d", value)
		return nil
	},
}

func init() {
	Command.PersistentFlags().StringVarP(
		&sensorId,
		"id", "i",
		"",
		"Sensor ID as specified in the config",
	)
}
