// Package normalize rewrites heterogeneous date and time input into the
// single canonical representation stored with an event: dates as YYYY-MM-DD,
// times as 24-hour HH:MM.
package normalize

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrInvalidDate is returned when a date value matches no accepted form.
	ErrInvalidDate = errors.New("unparseable date")
	// ErrInvalidTime is returned when a time value matches no accepted form.
	ErrInvalidTime = errors.New("unparseable time")
)

// Canonical output layouts.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// dateLayouts are the accepted input forms for dates, canonical form first so
// already-normalized stored values pass through unchanged.
var dateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// timeLayouts accept both 24-hour and 12-hour textual forms.
var timeLayouts = []string{
	TimeLayout,
	"15:04:05",
	"3:04 PM",
	"3:04PM",
	"03:04 PM",
	"3 PM",
	"3PM",
}

// Date returns the canonical YYYY-MM-DD representation of raw, or
// ErrInvalidDate if raw matches no accepted form.
func Date(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(DateLayout), nil
		}
	}
	return "", ErrInvalidDate
}

// Time interprets raw as a time of day and returns the canonical 24-hour
// HH:MM representation, or ErrInvalidTime if raw matches no accepted form.
func Time(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidTime
	}
	upper := strings.ToUpper(raw)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, upper); err == nil {
			return t.Format(TimeLayout), nil
		}
	}
	return "", ErrInvalidTime
}

// Instant combines already-raw date and time values into a single local
// instant. It accepts the same forms as Date and Time.
func Instant(rawDate, rawTime string) (time.Time, error) {
	d, err := Date(rawDate)
	if err != nil {
		return time.Time{}, err
	}
	tm, err := Time(rawTime)
	if err != nil {
		return time.Time{}, err
	}
	return time.ParseInLocation(DateLayout+" "+TimeLayout, d+" "+tm, time.Local)
}
