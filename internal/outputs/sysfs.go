package outputs

import (
	"errors"
	"fmt"
	"github.com/markusressel/dim2go/internal/configuration"
	"github.com/markusressel/dim2go/internal/pwm"
	"github.com/markusressel/dim2go/internal/util"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
)

// PwmClassPath is the sysfs directory of the Linux PWM class
var PwmClassPath = "/sys/class/pwm"

var pwmChipPattern = regexp.MustCompile(`^pwmchip(\d+)$`)

// SysfsOutput drives a channel of a Linux PWM chip.
// The duty cycle register is expressed in nanoseconds, so duty values are scaled from
// [0..top] to [0..period].
type SysfsOutput struct {
	Chip     int                        `json:"chip"`
	PeriodNs int                        `json:"periodNs"`
	Config   configuration.OutputConfig `json:"configuration"`

	mode pwm.Mode
}

func (o *SysfsOutput) chipPath() string {
	return filepath.Join(PwmClassPath, fmt.Sprintf("pwmchip%d", o.Chip))
}

func (o *SysfsOutput) channelPath(channel pwm.Channel) string {
	return filepath.Join(o.chipPath(), fmt.Sprintf("pwm%d", channel.Index()))
}

func (o *SysfsOutput) Setup(mode pwm.Mode) error {
	o.mode = mode
	if o.PeriodNs <= 0 {
		o.PeriodNs = int(mode.Top)
	}

	channelPath := o.channelPath(mode.Channel)
	if _, err := os.Stat(channelPath); errors.Is(err, os.ErrNotExist) {
		err = util.WriteIntToFile(mode.Channel.Index(), filepath.Join(o.chipPath(), "export"))
		if err != nil {
			return fmt.Errorf("unable to export pwm channel %s of chip %d: %w", mode.Channel, o.Chip, err)
		}
		if _, err = os.Stat(channelPath); err != nil {
			return fmt.Errorf("pwm channel %s of chip %d not available after export: %w", mode.Channel, o.Chip, err)
		}
	}

	// duty_cycle must never exceed period, so it is reset first
	steps := []struct {
		attribute string
		value     string
	}{
		{"enable", "0"},
		{"duty_cycle", "0"},
		{"period", strconv.Itoa(o.PeriodNs)},
		{"polarity", string(mode.Polarity)},
		{"enable", "1"},
	}
	for _, step := range steps {
		err := util.WriteStringToFile(step.value, filepath.Join(channelPath, step.attribute))
		if err != nil {
			return fmt.Errorf("unable to write %s of pwm channel %s: %w", step.attribute, mode.Channel, err)
		}
	}
	return nil
}

func (o *SysfsOutput) Write(channel pwm.Channel, duty uint16) error {
	dutyNs := DutyToNanoseconds(duty, o.mode.Top, o.PeriodNs)
	return util.WriteIntToFile(dutyNs, filepath.Join(o.channelPath(channel), "duty_cycle"))
}

// Close disables the channel, leaving it exported
func (o *SysfsOutput) Close() error {
	return util.WriteStringToFile("0", filepath.Join(o.channelPath(o.mode.Channel), "enable"))
}

// DutyToNanoseconds scales a duty value in [0..top] to the given period
func DutyToNanoseconds(duty uint16, top uint16, periodNs int) int {
	if top == 0 {
		return 0
	}
	return int(uint64(duty) * uint64(periodNs) / uint64(top))
}

// PwmChip is a chip of the Linux PWM class
type PwmChip struct {
	Chip     int
	Path     string
	Channels int
}

// FindPwmChips lists all PWM chips below root
func FindPwmChips(root string) ([]PwmChip, error) {
	paths, err := util.FindFilesMatching(root, pwmChipPattern)
	if err != nil {
		return nil, err
	}

	var result []PwmChip
	for _, path := range paths {
		chip, _ := strconv.Atoi(pwmChipPattern.FindStringSubmatch(filepath.Base(path))[1])
		channels, err := util.ReadIntFromFile(filepath.Join(path, "npwm"))
		if err != nil {
			channels = 0
		}
		result = append(result, PwmChip{
			Chip:     chip,
			Path:     path,
			Channels: channels,
		})
	}
	return result, nil
}
