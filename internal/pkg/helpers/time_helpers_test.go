package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDayStart(t *testing.T) {
	t.Run("parses DD-MM-YYYY to UTC day start", func(t *testing.T) {
		got, err := ParseDayStart("05-03-2024")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("rejects other layouts", func(t *testing.T) {
		for _, value := range []string{"2024-03-05", "5-3-2024", "05/03/2024", "32-01-2024", ""} {
			_, err := ParseDayStart(value)
			assert.Error(t, err, "value %q", value)
		}
	})
}

func TestParseDayEnd(t *testing.T) {
	got, err := ParseDayEnd("05-03-2024")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, time.March, 5, 23, 59, 59, 999000000, time.UTC), got)

	start, err := ParseDayStart("05-03-2024")
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour-time.Millisecond, got.Sub(start))
}

func TestDayStart(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	in := time.Date(2024, time.March, 5, 2, 15, 0, 0, loc) // 20:45 on 04-03 UTC

	assert.Equal(t, time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC), DayStart(in))
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 90*time.Second, ParseDuration("90s", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("not-a-duration", time.Minute))
}
