package models

import (
	"strings"
	"time"
)

// DayHours is the opening window for a single weekday. Times are zero-padded
// 24h "HH:MM" strings so they compare correctly as strings.
type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed,omitempty"`
}

// BusinessHours maps lowercase weekday names ("monday" ... "sunday") to the
// opening window for that day. Days missing from the map count as closed.
type BusinessHours map[string]DayHours

// OpenAt reports whether the store is open at the given local time.
// Windows with open > close span midnight (e.g. 22:00-02:00) and are treated
// as open from the opening time through midnight into the next morning.
func (h BusinessHours) OpenAt(t time.Time) bool {
	day := strings.ToLower(t.Weekday().String())
	today, ok := h[day]
	if !ok || today.Closed {
		return false
	}
	if today.Open == "" || today.Close == "" {
		return false
	}

	now := t.Format("15:04")
	if today.Open > today.Close {
		// Spans midnight
		return now >= today.Open || now <= today.Close
	}
	return now >= today.Open && now <= today.Close
}

// OpenNow reports whether the store is open at the current local time.
func (h BusinessHours) OpenNow() bool {
	return h.OpenAt(time.Now())
}
