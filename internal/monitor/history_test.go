package monitor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRing(t *testing.T) {
	tests := []struct {
		name         string
		capacity     int
		divisor      int
		wantCapacity int
		wantDivisor  int
	}{
		{"defaults", 0, 0, DefaultRingCapacity, DefaultHistoryDivisor},
		{"negative falls back", -1, -1, DefaultRingCapacity, DefaultHistoryDivisor},
		{"custom", 64, 2, 64, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRing(tt.capacity, tt.divisor)
			assert.Equal(t, tt.wantCapacity, r.Capacity())
			assert.Equal(t, tt.wantDivisor, r.divisor)
			assert.Equal(t, 0, r.Count())
		})
	}
}

func TestRingAgesEveryDivisorTicks(t *testing.T) {
	r := NewRing(8, 4)

	// Three ticks go by without touching the stored history.
	for i := 0; i < 3; i++ {
		assert.False(t, r.Record(float64(10*i), 5))
		assert.Equal(t, 0, r.Count())
	}

	// The fourth tick ages the ring with that tick's values.
	assert.True(t, r.Record(77, 33))
	require.Equal(t, 1, r.Count())

	cpu, mem := r.Window(1)
	assert.Equal(t, []float64{77}, cpu)
	assert.Equal(t, []float64{33}, mem)

	// Next aging happens exactly four ticks later.
	assert.False(t, r.Record(1, 1))
	assert.False(t, r.Record(2, 2))
	assert.False(t, r.Record(3, 3))
	assert.Equal(t, 1, r.Count())
	assert.True(t, r.Record(4, 4))
	assert.Equal(t, 2, r.Count())
}

func TestRingWindowZeroPadsShortHistory(t *testing.T) {
	r := NewRing(8, 1)
	r.Record(50, 25)

	cpu, mem := r.Window(4)
	assert.Equal(t, []float64{0, 0, 0, 50}, cpu)
	assert.Equal(t, []float64{0, 0, 0, 25}, mem)
}

func TestRingWindowWiderThanCapacity(t *testing.T) {
	r := NewRing(3, 1)
	for i := 1; i <= 3; i++ {
		r.Record(float64(i), float64(i*10))
	}

	cpu, mem := r.Window(5)
	assert.Equal(t, []float64{0, 0, 1, 2, 3}, cpu)
	assert.Equal(t, []float64{0, 0, 10, 20, 30}, mem)
}

func TestRingEvictsOldestAtCapacity(t *testing.T) {
	r := NewRing(3, 1)
	for i := 1; i <= 5; i++ {
		r.Record(float64(i), float64(i))
	}

	assert.Equal(t, 3, r.Count())
	cpu, _ := r.Window(3)
	assert.Equal(t, []float64{3, 4, 5}, cpu)
}

func TestRingWindowNarrowerThanHistory(t *testing.T) {
	r := NewRing(8, 1)
	for i := 1; i <= 6; i++ {
		r.Record(float64(i), 0)
	}

	cpu, _ := r.Window(2)
	assert.Equal(t, []float64{5, 6}, cpu)
}

func TestRingClampsRecordedValues(t *testing.T) {
	r := NewRing(4, 1)
	r.Record(150, -20)
	r.Record(math.NaN(), math.NaN())

	cpu, mem := r.Window(2)
	assert.Equal(t, []float64{100, 0}, cpu)
	assert.Equal(t, []float64{0, 0}, mem)
}

func TestRingWindowZeroWidth(t *testing.T) {
	r := NewRing(4, 1)
	r.Record(10, 10)

	cpu, mem := r.Window(0)
	assert.Nil(t, cpu)
	assert.Nil(t, mem)
}

func TestRingLongRun(t *testing.T) {
	// A few thousand ticks must neither drift nor shift anything.
	r := NewRing(4, 4)
	for i := 1; i <= 4000; i++ {
		r.Record(float64(i%100), float64(i%50))
	}

	// 1000 agings into a 4-slot ring: last entries are from ticks
	// 3988, 3992, 3996, 4000.
	cpu, _ := r.Window(4)
	assert.Equal(t, []float64{88, 92, 96, 0}, cpu)
	assert.Equal(t, 4, r.Count())
}
