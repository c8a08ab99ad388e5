package timetricks

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const clockFmt = "3:04 PM"

var (
	ErrNoSeparator = errors.New("no hour separator")
	ErrClockFormat = errors.New("not a 12-hour clock time")

	// H:MM followed by AM or PM, with at most one space between.
	clockPattern = regexp.MustCompile(`^(1[0-2]|0?[1-9]):([0-5][0-9]) ?([AaPp][Mm])$`)
)

// Clock is a wall clock time of day with no date attached, counted in minutes
// since midnight. Clocks order naturally with <, <= and ==.
type Clock int

// NormalizeHour rewrites an hour field of "00" to "12". Some tide tables
// print the first hour after midnight and noon as "00:15 AM", which no
// 12-hour grammar accepts. Everything after the first ':' is left alone.
func NormalizeHour(text string) (string, error) {
	hour, rest, ok := strings.Cut(text, ":")
	if !ok {
		return "", ErrNoSeparator
	}
	if hour == "00" {
		hour = "12"
	}
	return hour + ":" + rest, nil
}

// ParseClock reads a time like "3:48 PM" or "6:12AM".
func ParseClock(text string) (Clock, error) {
	m := clockPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, ErrClockFormat
	}
	// The pattern guarantees both fields are in range.
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])

	hour %= 12
	if strings.EqualFold(m[3], "PM") {
		hour += 12
	}
	return Clock(hour*60 + minute), nil
}

func (c Clock) Hour() int {
	return int(c) / 60
}

func (c Clock) Minute() int {
	return int(c) % 60
}

// On places the clock on the calendar day of t, in t's location.
func (c Clock) On(t time.Time) time.Time {
	return SetClock(t, time.Duration(c.Hour()), time.Duration(c.Minute()))
}

func (c Clock) String() string {
	return time.Date(0, time.January, 1, c.Hour(), c.Minute(), 0, 0, time.UTC).Format(clockFmt)
}

// MarshalText writes the clock the way String does, so JSON carries
// "6:12 AM" rather than a count of minutes.
func (c Clock) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
