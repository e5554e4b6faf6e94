package configuration

import "time"

type ControllerConfig struct {
	// Time interval between two cycles of the control loop.
	LoopRate time.Duration `json:"loopRate"`
}
