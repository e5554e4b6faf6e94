package led

import (
	"testing"

	"github.com/markusressel/dim2go/internal/pwm"
	"github.com/markusressel/dim2go/internal/ranging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapDistance(t *testing.T) {
	// GIVEN
	mapper, err := ranging.NewMapper(100, 240)
	require.NoError(t, err)

	// WHEN
	result := mapDistance(mapper, pwm.DefaultMode(), 170)

	// THEN
	assert.Equal(t, []string{
		"avg: 170",
		"constr_avg: 170",
		"8_bit_value: 128",
		"16_bit_gc_value: 9514",
	}, result)
}

func TestMapDistance_Saturates(t *testing.T) {
	// GIVEN
	mapper, err := ranging.NewMapper(100, 240)
	require.NoError(t, err)

	// WHEN
	result := mapDistance(mapper, pwm.DefaultMode(), 20)

	// THEN
	assert.Equal(t, []string{
		"avg: 20",
		"constr_avg: 100",
		"8_bit_value: 255",
		"16_bit_gc_value: 65535",
	}, result)
}

func TestMapDistance_ReducedTop(t *testing.T) {
	// GIVEN
	mapper, err := ranging.NewMapper(100, 240)
	require.NoError(t, err)
	mode := pwm.DefaultMode()
	mode.Top = 1000

	// WHEN
	result := mapDistance(mapper, mode, 170)

	// THEN
	assert.Equal(t, []string{
		"avg: 170",
		"constr_avg: 170",
		"8_bit_value: 128",
		"16_bit_gc_value: 9514",
		"duty (top 1000): 145",
	}, result)
}
