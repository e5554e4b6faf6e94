package config

import (
	"fmt"
	"github.com/markusressel/dim2go/internal/configuration"
	"github.com/markusressel/dim2go/internal/outputs"
	"github.com/markusressel/dim2go/internal/ui"
	"github.com/spf13/cobra"
	"os"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validates the current configuration and prints the resulting pipeline",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// the config file path comes from the root command (-c)
		configPath := configuration.DetectAndReadConfigFile()
		ui.Info("Validating %s", configPath)
		configuration.LoadConfig()

		if err := configuration.Validate(configPath); err != nil {
			ui.Error("Validation failed: %v", err)
			os.Exit(1)
		}

		for _, line := range describePipeline(configuration.CurrentConfig) {
			ui.Printfln(line)
		}
		ui.Success("Config looks good! :)")
		return nil
	},
}

func describePipeline(config configuration.Configuration) []string {
	mode := outputs.ModeOf(config.Output)
	return []string{
		fmt.Sprintf("sensor:  %s (%s)", config.Sensor.ID, sensorKind(config.Sensor)),
		fmt.Sprintf("window:  %d samples, prefill %s", config.Window.Size, config.Window.Prefill),
		fmt.Sprintf("range:   %d (full) .. %d (off)", config.Range.Min, config.Range.Max),
		fmt.Sprintf("output:  %s (%s), channel %s, top %d", config.Output.ID, outputKind(config.Output), mode.Channel, mode.Top),
		fmt.Sprintf("loop:    every %v", config.Controller.LoopRate),
	}
}

func sensorKind(config configuration.SensorConfig) string {
	switch {
	case config.File != nil:
		return "file"
	case config.Iio != nil:
		return "iio"
	case config.HwMon != nil:
		return "hwmon"
	case config.Cmd != nil:
		return "cmd"
	}
	return "unknown"
}

func outputKind(config configuration.OutputConfig) string {
	switch {
	case config.Sysfs != nil:
		return "sysfs"
	case config.File != nil:
		return "file"
	case config.Cmd != nil:
		return "cmd"
	}
	return "unknown"
}

func init() {
	Command.AddCommand(validateCmd)
}
