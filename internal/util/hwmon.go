package util

import (
	"path/filepath"
	"strings"
)

// GetDeviceName read the name of a device
func GetDeviceName(devicePath string) string {
	name, _ := ReadStringFromFile(filepath.Join(devicePath, "name"))
	return name
}

// GetLabel read the label of a in/output of a device
func GetLabel(devicePath string, input string) string {
	labelPath := strings.TrimSuffix(filepath.Join(devicePath, input), "input") + "label"

	label, _ := ReadStringFromFile(labelPath)
	if len(label) <= 0 {
		_, label = filepath.Split(devicePath)
	}
	return label
}

// GetDeviceModalias read the modalias of a device
func GetDeviceModalias(devicePath string) string {
	modalias, _ := ReadStringFromFile(filepath.Join(devicePath, "device", "modalias"))
	return modalias
}

// GetDeviceType read the type of a device
func GetDeviceType(devicePath string) string {
	dType, _ := ReadStringFromFile(filepath.Join(devicePath, "device", "type"))
	return dType
}
