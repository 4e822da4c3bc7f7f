package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2024-03-04 is a Monday.
func monday(hour, minute int) time.Time {
	return time.Date(2024, 3, 4, hour, minute, 0, 0, time.Local)
}

func TestOpenAtWithinWindow(t *testing.T) {
	hours := BusinessHours{
		"monday": {Open: "08:00", Close: "22:00"},
	}

	assert.True(t, hours.OpenAt(monday(9, 0)))
	assert.True(t, hours.OpenAt(monday(8, 0)), "opening minute counts as open")
	assert.True(t, hours.OpenAt(monday(22, 0)), "closing minute counts as open")
	assert.False(t, hours.OpenAt(monday(23, 0)))
	assert.False(t, hours.OpenAt(monday(7, 59)))
}

func TestOpenAtClosedDay(t *testing.T) {
	hours := BusinessHours{
		"monday": {Open: "08:00", Close: "22:00", Closed: true},
	}

	// closed=true wins regardless of the open/close times
	assert.False(t, hours.OpenAt(monday(9, 0)))
}

func TestOpenAtMissingDay(t *testing.T) {
	hours := BusinessHours{
		"tuesday": {Open: "08:00", Close: "22:00"},
	}

	assert.False(t, hours.OpenAt(monday(9, 0)))
}

func TestOpenAtEmptyWindow(t *testing.T) {
	hours := BusinessHours{
		"monday": {},
	}

	assert.False(t, hours.OpenAt(monday(9, 0)))
}

func TestOpenAtSpansMidnight(t *testing.T) {
	hours := BusinessHours{
		"monday": {Open: "22:00", Close: "02:00"},
	}

	assert.True(t, hours.OpenAt(monday(23, 0)))
	assert.True(t, hours.OpenAt(monday(1, 0)))
	assert.False(t, hours.OpenAt(monday(12, 0)))
	assert.False(t, hours.OpenAt(monday(2, 1)))
}
