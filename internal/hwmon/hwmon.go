package hwmon

import (
	"errors"
	"fmt"
	"github.com/markusressel/dim2go/internal/configuration"
	"github.com/markusressel/dim2go/internal/sensors"
	"github.com/markusressel/dim2go/internal/util"
	"github.com/md14454/gosensors"
	"path/filepath"
	"regexp"
)

// bus types as reported by libsensors
const (
	BusTypeI2c  = 0
	BusTypeIsa  = 1
	BusTypePci  = 2
	BusTypeAcpi = 5
)

var platformPattern = regexp.MustCompile(`/platform/([^/]+)/`)

// HwMonController is a chip of the Linux hwmon class with at least one voltage input,
// e.g. an external ADC a distance sensor is wired to
type HwMonController struct {
	Name     string
	DType    string
	Modalias string
	Platform string
	Path     string

	Sensors []*sensors.HwmonSensor
}

func GetChips() []*HwMonController {
	gosensors.Init()
	defer gosensors.Cleanup()
	chips := gosensors.GetDetectedChips()

	var list []*HwMonController

	for i := 0; i < len(chips); i++ {
		chip := chips[i]

		identifier := computeIdentifier(chip)
		platform := findPlatform(chip.Path)
		if len(platform) <= 0 {
			platform = identifier
		}

		sensorList := GetVoltageSensors(chip)
		if len(sensorList) <= 0 {
			continue
		}

		list = append(list, &HwMonController{
			Name:     identifier,
			DType:    util.GetDeviceType(chip.Path),
			Modalias: util.GetDeviceModalias(chip.Path),
			Platform: platform,
			Path:     chip.Path,
			Sensors:  sensorList,
		})
	}

	return list
}

// GetVoltageSensors returns all voltage inputs of a chip, indexed starting at 1
func GetVoltageSensors(chip gosensors.Chip) []*sensors.HwmonSensor {
	var sensorList []*sensors.HwmonSensor

	features := chip.GetFeatures()
	for j := 0; j < len(features); j++ {
		feature := features[j]

		if feature.Type != gosensors.FeatureTypeIn {
			continue
		}

		subfeatures := feature.GetSubFeatures()
		inputSubFeature, ok := findSubFeature(subfeatures, gosensors.SubFeatureTypeInInput)
		if !ok {
			continue
		}

		sensorList = append(sensorList, &sensors.HwmonSensor{
			Label: util.GetLabel(chip.Path, inputSubFeature.Name),
			Index: len(sensorList) + 1,
			Input: filepath.Join(chip.Path, inputSubFeature.Name),
		})
	}

	return sensorList
}

// UpdateSensorConfigFromHwMonControllers resolves the input file of the given
// sensor config using its platform regex and index
func UpdateSensorConfigFromHwMonControllers(controllers []*HwMonController, config *configuration.HwMonSensorConfig) error {
	platformMatcher, err := regexp.Compile("(?i)" + config.Platform)
	if err != nil {
		return fmt.Errorf("invalid platform regex '%s': %w", config.Platform, err)
	}

	for _, c := range controllers {
		if !platformMatcher.MatchString(c.Platform) {
			continue
		}
		for _, sensor := range c.Sensors {
			if sensor.Index == config.Index {
				config.Input = sensor.Input
				return nil
			}
		}
	}

	return errors.New("no hwmon sensor matched sensor config")
}

func findSubFeature(subfeatures []gosensors.SubFeature, input gosensors.SubFeatureType) (gosensors.SubFeature, bool) {
	for _, a := range subfeatures {
		if a.Type == input {
			return a, true
		}
	}
	return gosensors.SubFeature{}, false
}

func computeIdentifier(chip gosensors.Chip) (name string) {
	name = chip.Prefix

	devicePath := chip.Path
	if len(name) <= 0 {
		name = util.GetDeviceName(devicePath)
	}

	if len(name) <= 0 {
		_, name = filepath.Split(devicePath)
	}

	identifier := name
	switch chip.Bus.Type {
	case BusTypeI2c:
		identifier = fmt.Sprintf("%s-i2c-%d-%02x", identifier, chip.Bus.Nr, chip.Addr)
	case BusTypeIsa:
		identifier = fmt.Sprintf("%s-isa-%04x", identifier, chip.Addr)
	case BusTypePci:
		identifier = fmt.Sprintf("%s-pci-%04x", identifier, chip.Addr)
	case BusTypeAcpi:
		identifier = fmt.Sprintf("%s-acpi-%d", identifier, chip.Bus.Nr)
	}

	return identifier
}

func findPlatform(devicePath string) string {
	match := platformPattern.FindStringSubmatch(devicePath)
	if len(match) < 2 {
		return ""
	}
	return match[1]
}
