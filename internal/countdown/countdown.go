// Package countdown derives the "time left" string shown next to a task.
package countdown

import (
	"errors"
	"fmt"
	"time"
)

// Result strings for deadlines that cannot be counted down.
const (
	InvalidDate    = "Invalid date"
	DeadlinePassed = "Deadline passed"
)

const (
	secondsPerDay  = 24 * 60 * 60
	secondsPerHour = 60 * 60
)

// ErrInvalidDate is returned by ParseDeadline when the text is not year-month-day.
var ErrInvalidDate = errors.New("invalid date")

// Clock returns the current instant.
type Clock func() time.Time

// Format returns the countdown from now to midnight of deadline, in now's
// location: "Invalid date", "Deadline passed" or "<N> days, <M> hours".
// N and M come from integer division of the whole seconds remaining, so
// exactly 24*N+M whole hours remain.
func Format(deadline string, now time.Time) string {
	due, err := ParseDeadline(deadline, now.Location())
	if err != nil {
		return InvalidDate
	}

	remaining := due.Sub(now)
	if remaining < 0 {
		return DeadlinePassed
	}

	seconds := int64(remaining / time.Second)
	days := seconds / secondsPerDay
	hours := (seconds - days*secondsPerDay) / secondsPerHour
	return fmt.Sprintf("%d days, %d hours", days, hours)
}

// ParseDeadline reads "<year>-<month>-<day>" as midnight in loc.
// Each number may carry leading blanks and a sign; text after the day is
// ignored. Out-of-range months and days normalize the way time.Date does.
// Stricter validation belongs here and nowhere else.
func ParseDeadline(s string, loc *time.Location) (time.Time, error) {
	var parts [3]int
	rest := s
	for i := range parts {
		if i > 0 {
			if len(rest) == 0 || rest[0] != '-' {
				return time.Time{}, ErrInvalidDate
			}
			rest = rest[1:]
		}
		n, tail, ok := scanInt(rest)
		if !ok {
			return time.Time{}, ErrInvalidDate
		}
		parts[i] = n
		rest = tail
	}
	return time.Date(parts[0], time.Month(parts[1]), parts[2], 0, 0, 0, 0, loc), nil
}

// scanInt consumes optional leading whitespace, an optional sign and at
// least one decimal digit.
func scanInt(s string) (int, string, bool) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	start := i
	n := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		if i-start >= 9 {
			return 0, s, false
		}
		n = n*10 + int(s[i]-'0')
		i++
	}
	if i == start {
		return 0, s, false
	}
	if neg {
		n = -n
	}
	return n, s[i:], true
}
