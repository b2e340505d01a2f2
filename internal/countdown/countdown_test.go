package countdown

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var utc = time.UTC

func fixedNow() time.Time {
	return time.Date(2025, time.January, 10, 9, 30, 0, 0, utc)
}

func TestFormat_Yesterday(t *testing.T) {
	assert.Equal(t, DeadlinePassed, Format("2025-01-09", fixedNow()))
}

func TestFormat_TodayIsPassedAfterMidnight(t *testing.T) {
	// Midnight of today is already behind a 09:30 clock.
	assert.Equal(t, DeadlinePassed, Format("2025-01-10", fixedNow()))
}

func TestFormat_TodayAtMidnight(t *testing.T) {
	now := time.Date(2025, time.January, 10, 0, 0, 0, 0, utc)
	assert.Equal(t, "0 days, 0 hours", Format("2025-01-10", now))
}

func TestFormat_Tomorrow(t *testing.T) {
	// 14h30m remain; partial hours are truncated.
	assert.Equal(t, "0 days, 14 hours", Format("2025-01-11", fixedNow()))
}

func TestFormat_SeveralDays(t *testing.T) {
	assert.Equal(t, "20 days, 14 hours", Format("2025-01-31", fixedNow()))
}

func TestFormat_InvalidDate(t *testing.T) {
	for _, in := range []string{"not-a-date", "", "2025", "2025-01", "2025/01/10", "abc-01-10"} {
		assert.Equal(t, InvalidDate, Format(in, fixedNow()), "input %q", in)
	}
}

func TestFormat_HoursNeverReachADay(t *testing.T) {
	now := fixedNow()
	for d := 1; d < 400; d++ {
		deadline := now.AddDate(0, 0, d).Format("2006-01-02")
		var days, hours int
		_, err := fmt.Sscanf(Format(deadline, now), "%d days, %d hours", &days, &hours)
		require.NoError(t, err, deadline)
		assert.GreaterOrEqual(t, hours, 0)
		assert.Less(t, hours, 24)
	}
}

func TestParseDeadline_Lenient(t *testing.T) {
	got, err := ParseDeadline("2025-1-5", utc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 5, 0, 0, 0, 0, utc), got)

	got, err = ParseDeadline(" 2025-01-10 trailing", utc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, utc), got)

	// Month 13 rolls over like mktime does.
	got, err = ParseDeadline("2024-13-01", utc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, utc), got)
}

func TestParseDeadline_Errors(t *testing.T) {
	_, err := ParseDeadline("2025-01-", utc)
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseDeadline("99999999999-01-01", utc)
	assert.ErrorIs(t, err, ErrInvalidDate)
}
