package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocalDate(t *testing.T) {
	t.Run("parses into local midnight", func(t *testing.T) {
		d, err := ParseLocalDate("2025-06-11")
		require.NoError(t, err)
		assert.Equal(t, 2025, d.Year())
		assert.Equal(t, time.June, d.Month())
		assert.Equal(t, 11, d.Day())
		assert.Equal(t, 0, d.Hour())
		assert.Equal(t, time.Local, d.Location())
	})

	t.Run("round trips through FormatLocalDate", func(t *testing.T) {
		d, err := ParseLocalDate("2024-02-29")
		require.NoError(t, err)
		assert.Equal(t, "2024-02-29", FormatLocalDate(d))
	})

	t.Run("accepts leap day in leap year only", func(t *testing.T) {
		_, err := ParseLocalDate("2024-02-29")
		assert.NoError(t, err)
		_, err = ParseLocalDate("2025-02-29")
		assert.Error(t, err)
	})

	t.Run("rejects rollover dates", func(t *testing.T) {
		_, err := ParseLocalDate("2025-02-30")
		assert.Error(t, err)
		_, err = ParseLocalDate("2025-04-31")
		assert.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		for _, bad := range []string{"", "2025", "2025-06", "06-11-2025", "2025-13-01", "2025-00-10", "2025-06-00", "25-06-11", "yyyy-mm-dd"} {
			_, err := ParseLocalDate(bad)
			assert.Error(t, err, "input %q", bad)
		}
	})

	t.Run("tolerates surrounding whitespace", func(t *testing.T) {
		d, err := ParseLocalDate("  2025-06-11 ")
		require.NoError(t, err)
		assert.Equal(t, "2025-06-11", FormatLocalDate(d))
	})
}

func TestDateOnly(t *testing.T) {
	stamp := time.Date(2025, time.June, 11, 17, 45, 12, 999, time.Local)
	day := DateOnly(stamp)
	assert.Equal(t, "2025-06-11", FormatLocalDate(day))
	assert.Equal(t, 0, day.Hour())
	assert.Equal(t, 0, day.Minute())
}
