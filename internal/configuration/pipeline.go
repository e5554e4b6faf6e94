package configuration

import "github.com/markusressel/dim2go/internal/smoothing"

type WindowConfig struct {
	Size    int               `json:"size"`
	Prefill smoothing.Prefill `json:"prefill"`
}

// RangeConfig is the operating distance range in sensor units,
// Min maps to full and Max to zero brightness
type RangeConfig struct {
	Min int `json:"min"`
	Max int `json:"max"`
}
