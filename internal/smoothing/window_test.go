package smoothing

import (
	"github.com/stretchr/testify/assert"
	"math/rand"
	"testing"
)

func truncatingMean(values []int) int {
	sum := 0
	for _, v := range values {
		sum += v
	}
	return sum / len(values)
}

func TestSampleWindow_AverageOfLastN(t *testing.T) {
	// GIVEN
	size := 10
	window := NewSampleWindow(size, PrefillZero)
	rng := rand.New(rand.NewSource(42))

	var pushed []int
	for i := 0; i < 250; i++ {
		value := rng.Intn(1024)
		pushed = append(pushed, value)

		// WHEN
		window.Push(value)

		// THEN
		if len(pushed) >= size {
			expected := truncatingMean(pushed[len(pushed)-size:])
			assert.Equal(t, expected, window.Average(), "after %d samples", len(pushed))
		}
	}
}

func TestSampleWindow_OlderValuesDoNotInfluence(t *testing.T) {
	// GIVEN
	window := NewSampleWindow(3, PrefillZero)
	window.Push(1000)
	window.Push(1000)
	window.Push(1000)

	// WHEN
	window.Push(10)
	window.Push(20)
	window.Push(30)

	// THEN
	assert.Equal(t, 20, window.Average())
}

func TestSampleWindow_Truncates(t *testing.T) {
	// GIVEN
	window := NewSampleWindow(3, PrefillZero)

	// WHEN
	window.Push(1)
	window.Push(1)
	window.Push(2)

	// THEN
	assert.Equal(t, 1, window.Average())
}

func TestSampleWindow_TruncatesTowardZero(t *testing.T) {
	// GIVEN
	window := NewSampleWindow(2, PrefillZero)

	// WHEN
	window.Push(-1)
	window.Push(-2)

	// THEN
	assert.Equal(t, -1, window.Average())
}

func TestSampleWindow_Idempotence(t *testing.T) {
	// GIVEN
	size := 10
	window := NewSampleWindow(size, PrefillZero)
	for i := 0; i < size; i++ {
		window.Push(170)
	}

	for i := 0; i < 3*size; i++ {
		// WHEN
		window.Push(170)

		// THEN
		assert.Equal(t, 170, window.Average())
	}
}

func TestSampleWindow_PrefillZeroBiasesFirstAverages(t *testing.T) {
	// GIVEN
	window := NewSampleWindow(10, PrefillZero)

	// WHEN
	window.Push(100)

	// THEN
	assert.Equal(t, 10, window.Average())
	assert.False(t, window.WarmedUp())
}

func TestSampleWindow_PrefillFirst(t *testing.T) {
	// GIVEN
	window := NewSampleWindow(10, PrefillFirst)

	// WHEN
	window.Push(100)

	// THEN
	assert.Equal(t, 100, window.Average())
	assert.Equal(t, 1, window.Count())
	assert.False(t, window.WarmedUp())

	// WHEN
	window.Push(200)

	// THEN
	// nine slots still hold the first sample
	assert.Equal(t, 110, window.Average())
}

func TestSampleWindow_PrefillFirstLastN(t *testing.T) {
	// GIVEN
	window := NewSampleWindow(4, PrefillFirst)
	window.Push(0)

	// WHEN
	window.Push(4)
	window.Push(8)
	window.Push(12)
	window.Push(16)

	// THEN
	assert.True(t, window.WarmedUp())
	assert.Equal(t, 10, window.Average())
}

func TestSampleWindow_SizeOne(t *testing.T) {
	// GIVEN
	window := NewSampleWindow(1, PrefillZero)

	// WHEN
	window.Push(5)
	window.Push(7)

	// THEN
	assert.Equal(t, 7, window.Average())
	assert.Equal(t, 1, window.Size())
	assert.True(t, window.WarmedUp())
}

func TestSampleWindow_InvalidSize(t *testing.T) {
	assert.Panics(t, func() {
		NewSampleWindow(0, PrefillFirst)
	})
}

func TestParsePrefill(t *testing.T) {
	// WHEN
	first, err1 := ParsePrefill("first")
	zero, err2 := ParsePrefill("zero")
	_, err3 := ParsePrefill("garbage")

	// THEN
	assert.NoError(t, err1)
	assert.Equal(t, PrefillFirst, first)
	assert.NoError(t, err2)
	assert.Equal(t, PrefillZero, zero)
	assert.Error(t, err3)
}
