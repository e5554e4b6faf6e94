package led

import (
	"fmt"
	"github.com/markusressel/dim2go/internal/configuration"
	"github.com/markusressel/dim2go/internal/gamma"
	"github.com/markusressel/dim2go/internal/outputs"
	"github.com/markusressel/dim2go/internal/pwm"
	"github.com/markusressel/dim2go/internal/ranging"
	"github.com/markusressel/dim2go/internal/ui"
	"github.com/spf13/cobra"
	"strconv"
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Print all pipeline stages for the given (smoothed) distance, without touching the LED",
	Long:  ``,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		distance, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("distance must be a number: %w", err)
		}

		configuration.ReadConfigFile()
		rangeConfig := configuration.CurrentConfig.Range
		mode := outputs.ModeOf(configuration.CurrentConfig.Output)
		mapper, err := ranging.NewMapper(rangeConfig.Min, rangeConfig.Max)
		if err != nil {
			return err
		}

		for _, line := range mapDistance(mapper, mode, distance) {
			ui.Printfln(line)
		}
		return nil
	},
}

func mapDistance(mapper *ranging.Mapper, mode pwm.Mode, distance int) []string {
	brightness := mapper.Map(distance)
	value := gamma.Lookup(brightness)
	result := []string{
		fmt.Sprintf("avg: %d", distance),
		fmt.Sprintf("constr_avg: %d", mapper.Clamp(distance)),
		fmt.Sprintf("8_bit_value: %d", brightness),
		fmt.Sprintf("16_bit_gc_value: %d", value),
	}
	if mode.Top != pwm.MaxTop {
		result = append(result, fmt.Sprintf("duty (top %d): %d", mode.Top, mode.Scale(value)))
	}
	return result
}

func init() {
	Command.AddCommand(mapCmd)
}
