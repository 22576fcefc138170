package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryPercent(t *testing.T) {
	assert.InDelta(t, 50.0, memoryPercent(8, 16), 1e-9)
	assert.InDelta(t, 100.0, memoryPercent(16, 16), 1e-9)
	assert.InDelta(t, 0.0, memoryPercent(0, 16), 1e-9)

	// A zero total reports 0 rather than NaN.
	assert.Equal(t, 0.0, memoryPercent(8, 0))
}

func TestFormatUptime(t *testing.T) {
	assert.Equal(t, "0h 0m 0s", formatUptime(0))
	assert.Equal(t, "0h 1m 5s", formatUptime(65))
	assert.Equal(t, "1h 0m 0s", formatUptime(3600))
	assert.Equal(t, "27h 46m 39s", formatUptime(99999))
}

func TestGetSystemSnapshot(t *testing.T) {
	snap := GetSystemSnapshot()
	require.NotNil(t, snap)

	assert.GreaterOrEqual(t, snap.CPUPercent, 0.0)
	assert.LessOrEqual(t, snap.CPUPercent, 100.0)

	if snap.MemoryTotalGB > 0 {
		expected := snap.MemoryUsedGB / snap.MemoryTotalGB * 100
		assert.InDelta(t, expected, snap.MemoryPercent, 0.01)
	}
}
