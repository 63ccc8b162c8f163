package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthKey(t *testing.T) {
	d := time.Date(2024, 3, 31, 23, 30, 0, 0, Manila)
	assert.Equal(t, "2024-03", MonthKey(d))

	// A UTC instant late on the 31st is already April in Manila (UTC+8)
	utc := time.Date(2024, 3, 31, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-04", MonthKey(utc))
}

func TestParseMonthKey(t *testing.T) {
	got, err := ParseMonthKey("2024-03")
	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 1, got.Day())

	_, err = ParseMonthKey("March 2024")
	assert.Error(t, err)
}

func TestPreviousMonthKey(t *testing.T) {
	prev, err := PreviousMonthKey("2024-03")
	require.NoError(t, err)
	assert.Equal(t, "2024-02", prev)

	prev, err = PreviousMonthKey("2024-01")
	require.NoError(t, err)
	assert.Equal(t, "2023-12", prev)
}
