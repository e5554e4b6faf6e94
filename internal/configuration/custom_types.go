package configuration

import (
	"fmt"
	"reflect"

	"github.com/markusressel/dim2go/internal/pwm"
	"github.com/markusressel/dim2go/internal/smoothing"
	"github.com/mitchellh/mapstructure"
)

// channelHookFunc returns a mapstructure decode hook that parses the
// textual channel name ("A" | "B") into a pwm.Channel.
// Plain integers are accepted as channel index.
func channelHookFunc() mapstructure.DecodeHookFuncType {
	channelType := reflect.TypeOf(pwm.Channel(0))

	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if t != channelType {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			return pwm.ParseChannel(v)
		case int:
			channel := pwm.Channel(v)
			if v < 0 || !channel.Valid() {
				return nil, fmt.Errorf("invalid pwm channel index: %d", v)
			}
			return channel, nil
		}
		return data, nil
	}
}

// prefillHookFunc returns a mapstructure decode hook that validates
// the name of a window prefill policy.
func prefillHookFunc() mapstructure.DecodeHookFuncType {
	prefillType := reflect.TypeOf(smoothing.Prefill(""))

	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if t != prefillType {
			return data, nil
		}
		if v, ok := data.(string); ok {
			return smoothing.ParsePrefill(v)
		}
		return data, nil
	}
}
