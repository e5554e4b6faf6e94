package cmd

import (
	"fmt"
	"github.com/guptarohit/asciigraph"
	"github.com/markusressel/dim2go/internal/gamma"
	"github.com/markusressel/dim2go/internal/ui"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
	"strconv"
)

var gammaStep int

var gammaCmd = &cobra.Command{
	Use:   "gamma",
	Short: "Print the gamma correction table to console",
	Long:  `Prints the brightness to duty cycle table used for every LED update, together with a plot of it`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if gammaStep < 1 || gammaStep > 255 {
			return fmt.Errorf("step must be in 1..255, was %d", gammaStep)
		}

		values := gamma.Table()

		tableString, err := renderTable(gammaTable(values, gammaStep))
		if err != nil {
			return err
		}
		ui.Printfln(tableString)

		plotValues := make([]float64, 0, len(values))
		for _, v := range values {
			plotValues = append(plotValues, float64(v))
		}
		caption := "Duty / Brightness"
		graph := asciigraph.Plot(plotValues, asciigraph.Height(15), asciigraph.Width(100), asciigraph.Caption(caption))
		ui.Printfln(graph)
		return nil
	},
}

func gammaTable(values [256]uint16, step int) table.Table {
	var rows [][]string
	for i := 0; i < len(values); i += step {
		rows = append(rows, gammaRow(i, values[i]))
	}
	if (len(values)-1)%step != 0 {
		rows = append(rows, gammaRow(len(values)-1, values[len(values)-1]))
	}
	return table.Table{
		Headers: []string{"Brightness", "Duty", "Duty %"},
		Rows:    rows,
	}
}

func gammaRow(brightness int, duty uint16) []string {
	percent := float64(duty) * 100 / float64(gamma.Max)
	return []string{strconv.Itoa(brightness), strconv.Itoa(int(duty)), fmt.Sprintf("%.2f", percent)}
}

func init() {
	gammaCmd.Flags().IntVarP(&gammaStep, "step", "s", 16, "Only print every n-th entry of the table")
	rootCmd.AddCommand(gammaCmd)
}
