package configuration

import (
	"github.com/markusressel/dim2go/internal/ui"
	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"os"
	"time"
)

type Configuration struct {
	Sensor SensorConfig `json:"sensor"`
	Window WindowConfig `json:"window"`
	Range  RangeConfig  `json:"range"`
	Output OutputConfig `json:"output"`

	Controller ControllerConfig `json:"controller"`

	Diagnostics DiagnosticsConfig `json:"diagnostics"`
	Statistics  StatisticsConfig  `json:"statistics"`
	Api         ApiConfig         `json:"api"`
	Profiling   ProfilingConfig   `json:"profiling"`
}

var CurrentConfig Configuration

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName("dim2go")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Error("Couldn't detect home directory: %v", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/dim2go/")
	}

	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
}

func setDefaultValues() {
	viper.SetDefault("window.size", 10)
	viper.SetDefault("window.prefill", "first")

	viper.SetDefault("range.min", 100)
	viper.SetDefault("range.max", 240)

	viper.SetDefault("output.channel", "A")
	viper.SetDefault("output.top", 0xFFFF)

	viper.SetDefault("controller.loopRate", 1*time.Millisecond)

	viper.SetDefault("diagnostics.console.enabled", false)
	viper.SetDefault("diagnostics.console.every", 1000)

	viper.SetDefault("statistics.enabled", false)
	viper.SetDefault("statistics.port", 9000)

	viper.SetDefault("api.enabled", false)
	viper.SetDefault("api.host", "localhost")
	viper.SetDefault("api.port", 9001)

	viper.SetDefault("profiling.enabled", false)
	viper.SetDefault("profiling.host", "localhost")
	viper.SetDefault("profiling.port", 6060)
}

// DetectAndReadConfigFile detects the path of the first existing config file
// and reads it, returning the path that was used
func DetectAndReadConfigFile() string {
	err := viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			ui.Fatal("Config file not found, see dim2go.yaml for an example")
		}
		ui.Fatal("Error reading config file, %s", err)
	}
	return viper.ConfigFileUsed()
}

// ReadConfigFile reads, loads and validates the config file, exiting on any error
func ReadConfigFile() {
	configPath := DetectAndReadConfigFile()
	ui.Info("Using configuration file at: %s", configPath)
	LoadConfig()
	if err := Validate(configPath); err != nil {
		ui.Fatal("Config validation error: %v", err)
	}
}

func LoadConfig() {
	err := viper.Unmarshal(&CurrentConfig, viper.DecodeHook(decodeHook()))
	if err != nil {
		ui.Fatal("unable to decode into struct, %v", err)
	}
}

func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		channelHookFunc(),
		prefillHookFunc(),
	)
}
