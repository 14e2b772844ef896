package dates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("2024-01-01"))
	assert.True(t, IsValid("2024-12-31"))

	assert.False(t, IsValid(""))
	assert.False(t, IsValid("01-01-2024"))
	assert.False(t, IsValid("2024-13-01"))
	assert.False(t, IsValid("2024-02-30"))
	assert.False(t, IsValid("tomorrow"))
}

func TestLocationFallsBack(t *testing.T) {
	assert.NotNil(t, Location("definitely/not-a-zone"))
	assert.Equal(t, Location(DefaultTimezone), Location(""))
}

func TestTodayFormat(t *testing.T) {
	assert.True(t, IsValid(Today(DefaultTimezone)))
}
