package weather

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

var errNotISODate = errors.New("not an ISO-8601 date")

// Clock forms after the date separator: hh, hh:mm, hh:mm:ss[.f] and the basic
// hhmm, hhmmss[.f]. Offsets reuse the same shapes after the sign.
var (
	extendedClock = regexp.MustCompile(`^(\d{2})(?::(\d{2})(?::(\d{2})(?:[.,]\d+)?)?)?$`)
	basicClock    = regexp.MustCompile(`^(\d{2})(?:(\d{2})(?:(\d{2})(?:[.,]\d+)?)?)?$`)
)

// parseISODate returns the calendar date an ISO-8601 date or date-time string
// starts with. Calendar (2021-07-06, 20210706) and week (2021-W27-2, 2021W272)
// dates are accepted. A time of day and UTC offset may follow after any single
// separator character; they are validated but never shift the date.
func parseISODate(s string) (time.Time, error) {
	datePart, rest, ok := splitISODate(s)
	if !ok {
		return time.Time{}, errNotISODate
	}

	var (
		t   time.Time
		err error
	)
	if datePart[4] == 'W' || (datePart[4] == '-' && datePart[5] == 'W') {
		t, err = parseWeekDate(datePart)
	} else {
		t, err = parseCalendarDate(datePart)
	}
	if err != nil {
		return time.Time{}, err
	}

	if rest != "" {
		_, size := utf8.DecodeRuneInString(rest)
		if err := checkISOTime(rest[size:]); err != nil {
			return time.Time{}, err
		}
	}
	return t, nil
}

// splitISODate cuts s after its date portion.
func splitISODate(s string) (datePart, rest string, ok bool) {
	n := 0
	switch {
	case len(s) >= 8 && s[4] == '-' && s[5] == 'W':
		n = 8
		if len(s) >= 10 && s[8] == '-' {
			n = 10
		}
	case len(s) >= 7 && s[4] == 'W':
		n = 7
		if len(s) >= 8 && isDigit(s[7]) {
			n = 8
		}
	case len(s) >= 10 && s[4] == '-':
		n = 10
	case len(s) >= 8:
		n = 8
	default:
		return "", "", false
	}
	return s[:n], s[n:], true
}

func parseCalendarDate(p string) (time.Time, error) {
	layout := "20060102"
	if len(p) == len(time.DateOnly) {
		layout = time.DateOnly
	}
	t, err := time.Parse(layout, p)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", errNotISODate, err)
	}
	if t.Year() < 1 {
		return time.Time{}, fmt.Errorf("%w: year %d out of range", errNotISODate, t.Year())
	}
	return t, nil
}

// parseWeekDate handles YYYY-Www[-D] and YYYYWww[D]. A missing weekday means Monday.
func parseWeekDate(p string) (time.Time, error) {
	var week, day string
	switch {
	case p[4] == 'W':
		week, day = p[5:7], p[7:]
	case len(p) == 10:
		week, day = p[6:8], p[9:]
	default:
		week = p[6:8]
	}
	if day == "" {
		day = "1"
	}
	if !allDigits(p[:4]) || !allDigits(week) || !allDigits(day) {
		return time.Time{}, errNotISODate
	}

	y, _ := strconv.Atoi(p[:4])
	w, _ := strconv.Atoi(week)
	d, _ := strconv.Atoi(day)
	if y < 1 || d < 1 || d > 7 || w < 1 || w > isoWeeksIn(y) {
		return time.Time{}, fmt.Errorf("%w: week date %s out of range", errNotISODate, p)
	}

	// Week 1 is the week containing 4 January.
	jan4 := time.Date(y, time.January, 4, 0, 0, 0, 0, time.UTC)
	sinceMonday := (int(jan4.Weekday()) + 6) % 7
	return jan4.AddDate(0, 0, (w-1)*7+(d-1)-sinceMonday), nil
}

func isoWeeksIn(year int) int {
	_, w := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return w
}

// checkISOTime validates a time of day with an optional Z or ±hh[:mm[:ss]] offset.
func checkISOTime(s string) error {
	clock, offset := s, ""
	if i := strings.IndexAny(s, "Z+-"); i >= 0 {
		clock, offset = s[:i], s[i:]
	}
	if !validClock(clock) {
		return fmt.Errorf("%w: bad time %q", errNotISODate, s)
	}
	if offset != "" && offset != "Z" && (offset[0] == 'Z' || !validClock(offset[1:])) {
		return fmt.Errorf("%w: bad offset %q", errNotISODate, offset)
	}
	return nil
}

func validClock(c string) bool {
	m := extendedClock.FindStringSubmatch(c)
	if m == nil {
		m = basicClock.FindStringSubmatch(c)
	}
	if m == nil {
		return false
	}
	return atMost(m[1], 23) && atMost(m[2], 59) && atMost(m[3], 59)
}

func atMost(digits string, limit int) bool {
	if digits == "" {
		return true
	}
	n, _ := strconv.Atoi(digits)
	return n <= limit
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return s != ""
}
