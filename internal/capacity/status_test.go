package capacity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JENIELPUSA/DisasterAppServer-sub000/pkg/e"
)

func TestClassify_Boundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		occupancy, capacity int
		want                Status
	}{
		{0, 100, StatusAvailable},
		{69, 100, StatusAvailable},
		{70, 100, StatusHigh},
		{89, 100, StatusHigh},
		{90, 100, StatusFull},
		{100, 100, StatusFull},
		{150, 100, StatusFull},
		{0, 0, StatusNoCapacity},
		{25, 0, StatusNoCapacity},
		{7, 10, StatusHigh},
		{9, 10, StatusFull},
		{1, 1, StatusFull},
		{0, 1, StatusAvailable},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.occupancy, tc.capacity), "Classify(%d, %d)", tc.occupancy, tc.capacity)
	}
}

func TestClassify_FullAtExactCapacity(t *testing.T) {
	t.Parallel()

	for capacity := 1; capacity <= 5000; capacity++ {
		if got := Classify(capacity, capacity); got != StatusFull {
			t.Fatalf("Classify(%d, %d) = %s, want full", capacity, capacity, got)
		}
	}
}

func TestClassify_ZeroCapacityIgnoresOccupancy(t *testing.T) {
	t.Parallel()

	for _, occ := range []int{0, 1, 10, 999999} {
		assert.Equal(t, StatusNoCapacity, Classify(occ, 0))
	}
}

func TestClassify_Deterministic(t *testing.T) {
	t.Parallel()

	first := Classify(71, 100)
	for i := 0; i < 100; i++ {
		require.Equal(t, first, Classify(71, 100))
	}
}

func TestAvailable_NeverNegative(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 10, Available(0, 10))
	assert.Equal(t, 0, Available(10, 10))
	assert.Equal(t, 0, Available(12, 10))
	assert.Equal(t, 0, Available(5, 0))
}

func TestPercentage(t *testing.T) {
	t.Parallel()

	pct, ok := Percentage(50, 200)
	assert.True(t, ok)
	assert.InDelta(t, 25.0, pct, 1e-9)

	_, ok = Percentage(10, 0)
	assert.False(t, ok)
}

func TestParseStatus(t *testing.T) {
	t.Parallel()

	for _, s := range []Status{StatusNoCapacity, StatusFull, StatusHigh, StatusAvailable} {
		got, err := ParseStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseStatus("overflowing")
	assert.True(t, errors.Is(err, e.ErrInvalidInput))
}
