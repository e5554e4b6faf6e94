package sensors

import (
	"fmt"
	"github.com/markusressel/dim2go/internal/configuration"
	"github.com/markusressel/dim2go/internal/util"
	"path/filepath"
	"regexp"
	"strconv"
)

// IioDevicesPath is the sysfs directory of the Linux Industrial I/O subsystem
var IioDevicesPath = "/sys/bus/iio/devices"

var (
	iioDevicePattern  = regexp.MustCompile(`^iio:device(\d+)$`)
	iioChannelPattern = regexp.MustCompile(`^in_voltage(\d+)_raw$`)
)

// IioSensor reads raw ADC counts of a single voltage channel
type IioSensor struct {
	Config configuration.SensorConfig `json:"configuration"`
	Input  string                     `json:"input"`
}

func IioChannelPath(root string, device int, channel int) string {
	return filepath.Join(root, fmt.Sprintf("iio:device%d", device), fmt.Sprintf("in_voltage%d_raw", channel))
}

func (sensor IioSensor) GetId() string {
	return sensor.Config.ID
}

func (sensor IioSensor) GetLabel() string {
	return fmt.Sprintf("IIO device %d channel %d", sensor.Config.Iio.Device, sensor.Config.Iio.Channel)
}

func (sensor IioSensor) GetConfig() configuration.SensorConfig {
	return sensor.Config
}

func (sensor IioSensor) GetValue() (int, error) {
	value, err := util.ReadIntFromFile(sensor.Input)
	if err != nil {
		return 0, fmt.Errorf("sensor %s: %w", sensor.GetId(), err)
	}
	return value, nil
}

// IioChannel is a raw voltage channel found on an IIO device
type IioChannel struct {
	Device     int
	DeviceName string
	Channel    int
	Input      string
}

// FindIioChannels lists all raw voltage channels of all IIO devices below root
func FindIioChannels(root string) ([]IioChannel, error) {
	devices, err := util.FindFilesMatching(root, iioDevicePattern)
	if err != nil {
		return nil, err
	}

	var result []IioChannel
	for _, devicePath := range devices {
		device, _ := strconv.Atoi(iioDevicePattern.FindStringSubmatch(filepath.Base(devicePath))[1])
		name, err := util.ReadStringFromFile(filepath.Join(devicePath, "name"))
		if err != nil {
			name = "unknown"
		}

		inputs, err := util.FindFilesMatching(devicePath, iioChannelPattern)
		if err != nil {
			return nil, err
		}
		channels := map[int]string{}
		for _, input := range inputs {
			channel, _ := strconv.Atoi(iioChannelPattern.FindStringSubmatch(filepath.Base(input))[1])
			channels[channel] = input
		}

		for _, channel := range util.SortedKeys(channels) {
			result = append(result, IioChannel{
				Device:     device,
				DeviceName: name,
				Channel:    channel,
				Input:      channels[channel],
			})
		}
	}

	return result, nil
}
