package configuration

import (
	"errors"
	"fmt"
	"github.com/markusressel/dim2go/internal/smoothing"
	"github.com/markusressel/dim2go/internal/util"
)

func Validate(configPath string) error {
	return validateConfig(&CurrentConfig, configPath)
}

func validateConfig(config *Configuration, path string) error {
	err := validateSensor(config)
	if err != nil {
		return err
	}
	err = validatePipeline(config)
	if err != nil {
		return err
	}
	err = validateOutput(config)
	if err != nil {
		return err
	}
	err = validateServices(config)
	if err != nil {
		return err
	}

	if containsCmd(config) {
		if _, err := util.CheckFilePermissionsForExecution(path); err != nil {
			return fmt.Errorf("config file '%s' has invalid permissions: %w", path, err)
		}
	}

	return nil
}

func containsCmd(config *Configuration) bool {
	return config.Sensor.Cmd != nil || config.Output.Cmd != nil
}

func validateSensor(config *Configuration) error {
	sensorConfig := config.Sensor

	subConfigs := 0
	if sensorConfig.File != nil {
		subConfigs++
	}
	if sensorConfig.Iio != nil {
		subConfigs++
	}
	if sensorConfig.HwMon != nil {
		subConfigs++
	}
	if sensorConfig.Cmd != nil {
		subConfigs++
	}
	if subConfigs > 1 {
		return fmt.Errorf("sensor %s: only one sensor type can be used per sensor definition block", sensorConfig.ID)
	}
	if subConfigs <= 0 {
		return fmt.Errorf("sensor %s: sub-configuration for sensor is missing, use one of: file | iio | hwmon | cmd", sensorConfig.ID)
	}

	if sensorConfig.File != nil && len(sensorConfig.File.Path) <= 0 {
		return fmt.Errorf("sensor %s: no file path provided", sensorConfig.ID)
	}

	if sensorConfig.Iio != nil {
		if sensorConfig.Iio.Device < 0 || sensorConfig.Iio.Channel < 0 {
			return fmt.Errorf("sensor %s: invalid iio device or channel, must be >= 0", sensorConfig.ID)
		}
	}

	if sensorConfig.HwMon != nil {
		if len(sensorConfig.HwMon.Platform) <= 0 {
			return fmt.Errorf("sensor %s: missing hwmon platform", sensorConfig.ID)
		}
		if sensorConfig.HwMon.Index <= 0 {
			return fmt.Errorf("sensor %s: invalid index, must be >= 1", sensorConfig.ID)
		}
	}

	if sensorConfig.Cmd != nil && len(sensorConfig.Cmd.Exec) <= 0 {
		return fmt.Errorf("sensor %s: executable is missing", sensorConfig.ID)
	}

	return nil
}

func validatePipeline(config *Configuration) error {
	if config.Window.Size < 1 {
		return fmt.Errorf("window: invalid size %d, must be >= 1", config.Window.Size)
	}
	if _, err := smoothing.ParsePrefill(string(config.Window.Prefill)); err != nil {
		return fmt.Errorf("window: %w", err)
	}

	if config.Range.Min >= config.Range.Max {
		return fmt.Errorf("range: min (%d) must be lower than max (%d)", config.Range.Min, config.Range.Max)
	}

	if config.Controller.LoopRate <= 0 {
		return errors.New("controller: loopRate must be > 0")
	}

	return nil
}

func validateOutput(config *Configuration) error {
	outputConfig := config.Output

	subConfigs := 0
	if outputConfig.Sysfs != nil {
		subConfigs++
	}
	if outputConfig.File != nil {
		subConfigs++
	}
	if outputConfig.Cmd != nil {
		subConfigs++
	}
	if subConfigs > 1 {
		return fmt.Errorf("output %s: only one output type can be used per output definition block", outputConfig.ID)
	}
	if subConfigs <= 0 {
		return fmt.Errorf("output %s: sub-configuration for output is missing, use one of: sysfs | file | cmd", outputConfig.ID)
	}

	if !outputConfig.Channel.Valid() {
		return fmt.Errorf("output %s: invalid channel %s, use one of: A | B", outputConfig.ID, outputConfig.Channel)
	}
	if outputConfig.Top == 0 {
		return fmt.Errorf("output %s: top must be in [1..65535]", outputConfig.ID)
	}

	if outputConfig.Sysfs != nil {
		if outputConfig.Sysfs.Chip < 0 {
			return fmt.Errorf("output %s: invalid chip, must be >= 0", outputConfig.ID)
		}
		if outputConfig.Sysfs.PeriodNs < 0 {
			return fmt.Errorf("output %s: invalid periodNs, must be >= 0", outputConfig.ID)
		}
	}

	if outputConfig.File != nil && len(outputConfig.File.Path) <= 0 {
		return fmt.Errorf("output %s: no file path provided", outputConfig.ID)
	}

	if outputConfig.Cmd != nil && len(outputConfig.Cmd.Exec) <= 0 {
		return fmt.Errorf("output %s: executable is missing", outputConfig.ID)
	}

	return nil
}

func validateServices(config *Configuration) error {
	if config.Diagnostics.Console.Enabled && config.Diagnostics.Console.Every < 1 {
		return errors.New("diagnostics: console.every must be >= 1")
	}
	if config.Statistics.Enabled && !isValidPort(config.Statistics.Port) {
		return fmt.Errorf("statistics: invalid port %d", config.Statistics.Port)
	}
	if config.Api.Enabled && !isValidPort(config.Api.Port) {
		return fmt.Errorf("api: invalid port %d", config.Api.Port)
	}
	if config.Profiling.Enabled && !isValidPort(config.Profiling.Port) {
		return fmt.Errorf("profiling: invalid port %d", config.Profiling.Port)
	}
	return nil
}

func isValidPort(port int) bool {
	return port > 0 && port <= 65535
}
