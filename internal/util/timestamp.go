package util

import (
	"errors"
	"time"
)

var errBadTimestamp = errors.New("malformed event timestamp")

// ParseEventTimestamp parses the fixed ISO-8601 shape the CLI writes:
// YYYY-MM-DDTHH:MM:SS followed by an optional fraction and a mandatory
// Z or +HH:MM/-HH:MM suffix. It decodes digits directly instead of going
// through time.Parse, which dominates the profile when re-decoding tens of
// thousands of log lines every cycle. The result is always UTC.
func ParseEventTimestamp(s string) (time.Time, error) {
	if len(s) < 20 {
		return time.Time{}, errBadTimestamp
	}
	if s[4] != '-' || s[7] != '-' || (s[10] != 'T' && s[10] != 't') ||
		s[13] != ':' || s[16] != ':' {
		return time.Time{}, errBadTimestamp
	}

	year, ok1 := parseDigits(s[0:4])
	month, ok2 := parseDigits(s[5:7])
	day, ok3 := parseDigits(s[8:10])
	hour, ok4 := parseDigits(s[11:13])
	minute, ok5 := parseDigits(s[14:16])
	second, ok6 := parseDigits(s[17:19])
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 {
		return time.Time{}, errBadTimestamp
	}
	if month < 1 || month > 12 || day < 1 || day > 31 ||
		hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, errBadTimestamp
	}

	i := 19
	nsec := 0
	if s[i] == '.' {
		i++
		start := i
		mult := 100000000
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			// Digits past nanosecond precision are dropped
			if mult > 0 {
				nsec += int(s[i]-'0') * mult
				mult /= 10
			}
			i++
		}
		if i == start {
			return time.Time{}, errBadTimestamp
		}
	}

	if i >= len(s) {
		return time.Time{}, errBadTimestamp
	}

	offsetSeconds := 0
	switch s[i] {
	case 'Z', 'z':
		if i != len(s)-1 {
			return time.Time{}, errBadTimestamp
		}
	case '+', '-':
		if len(s)-i != 6 || s[i+3] != ':' {
			return time.Time{}, errBadTimestamp
		}
		oh, okh := parseDigits(s[i+1 : i+3])
		om, okm := parseDigits(s[i+4 : i+6])
		if !okh || !okm || oh > 23 || om > 59 {
			return time.Time{}, errBadTimestamp
		}
		offsetSeconds = (oh*60 + om) * 60
		if s[i] == '-' {
			offsetSeconds = -offsetSeconds
		}
	default:
		return time.Time{}, errBadTimestamp
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, nsec, time.UTC)
	if offsetSeconds != 0 {
		t = t.Add(-time.Duration(offsetSeconds) * time.Second)
	}
	return t, nil
}

// parseDigits converts an all-ASCII-digit substring to an int.
func parseDigits(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// TruncateToHour rounds a time down to the top of its UTC hour. Session
// windows always open on an hour boundary.
func TruncateToHour(t time.Time) time.Time {
	return t.UTC().Truncate(time.Hour)
}
