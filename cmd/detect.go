package cmd

import (
	"fmt"
	"github.com/markusressel/dim2go/internal/hwmon"
	"github.com/markusressel/dim2go/internal/outputs"
	"github.com/markusressel/dim2go/internal/sensors"
	"github.com/markusressel/dim2go/internal/ui"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
	"path/filepath"
	"strconv"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect devices",
	Long:  `Detects all PWM chips, IIO ADC channels and hwmon voltage inputs and prints them as a list`,
	Run: func(cmd *cobra.Command, args []string) {
		printTable("PWM chips", detectPwmChips())
		printTable("IIO ADC channels", detectIioChannels())

		for _, controller := range hwmon.GetChips() {
			printTable(fmt.Sprintf("hwmon: %s (platform: %s)", controller.Name, controller.Platform), hwmonTable(controller))
		}
	},
}

func printTable(title string, tab *table.Table) {
	if tab == nil || tab.Rows == nil {
		return
	}
	ui.Printfln("> %s", title)
	tableString, err := renderTable(*tab)
	if err != nil {
		ui.Fatal("Error printing table: %v", err)
	}
	ui.Printfln(tableString)
}

func detectPwmChips() *table.Table {
	chips, err := outputs.FindPwmChips(outputs.PwmClassPath)
	if err != nil {
		ui.Debug("No pwm chips found: %v", err)
		return nil
	}

	var rows [][]string
	for _, chip := range chips {
		rows = append(rows, []string{
			strconv.Itoa(chip.Chip), strconv.Itoa(chip.Channels), chip.Path,
		})
	}
	return &table.Table{
		Headers: []string{"Chip", "Channels", "Path"},
		Rows:    rows,
	}
}

func detectIioChannels() *table.Table {
	channels, err := sensors.FindIioChannels(sensors.IioDevicesPath)
	if err != nil {
		ui.Debug("No iio devices found: %v", err)
		return nil
	}

	var rows [][]string
	for _, channel := range channels {
		sensor := sensors.IioSensor{Input: channel.Input}
		valueText := "N/A"
		if value, err := sensor.GetValue(); err == nil {
			valueText = strconv.Itoa(value)
		}
		rows = append(rows, []string{
			strconv.Itoa(channel.Device), channel.DeviceName, strconv.Itoa(channel.Channel), valueText,
		})
	}
	return &table.Table{
		Headers: []string{"Device", "Name", "Channel", "Raw"},
		Rows:    rows,
	}
}

func hwmonTable(controller *hwmon.HwMonController) *table.Table {
	var rows [][]string
	for _, sensor := range controller.Sensors {
		valueText := "N/A"
		if value, err := sensor.GetValue(); err == nil {
			valueText = strconv.Itoa(value)
		}

		_, file := filepath.Split(sensor.Input)
		labelAndFile := fmt.Sprintf("%s (%s)", sensor.Label, file)

		rows = append(rows, []string{
			strconv.Itoa(sensor.Index), labelAndFile, valueText,
		})
	}
	return &table.Table{
		Headers: []string{"Index", "Label", "Value (mV)"},
		Rows:    rows,
	}
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
