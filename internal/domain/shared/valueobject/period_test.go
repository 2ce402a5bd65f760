package valueobject

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, Location)
}

func TestNewMonthPeriod(t *testing.T) {
	t.Run("valid period", func(t *testing.T) {
		p, err := NewMonthPeriod(2026, 2)
		require.NoError(t, err)
		assert.Equal(t, "2026-02", p.String())
	})

	t.Run("rejects month out of range", func(t *testing.T) {
		_, err := NewMonthPeriod(2026, 13)
		assert.Error(t, err)
		_, err = NewMonthPeriod(2026, 0)
		assert.Error(t, err)
	})
}

func TestMonthPeriod_Days(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		last  int
	}{
		{"january", 2026, 1, 31},
		{"leap february", 2024, 2, 29},
		{"february", 2026, 2, 28},
		{"april", 2026, 4, 30},
		{"december", 2026, 12, 31},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := MonthPeriod{Year: tt.year, Month: tt.month}
			assert.Equal(t, 1, p.FirstDay().Day())
			assert.Equal(t, tt.last, p.LastDay().Day())
			assert.Equal(t, time.Month(tt.month), p.LastDay().Month())
		})
	}
}

func TestMonthPeriod_NextAndBefore(t *testing.T) {
	p := MonthPeriod{Year: 2025, Month: 12}
	next := p.Next()
	assert.Equal(t, MonthPeriod{Year: 2026, Month: 1}, next)
	assert.True(t, p.Before(next))
	assert.False(t, next.Before(p))
	assert.False(t, p.Before(p))
}

func TestParseAndFormatDate(t *testing.T) {
	d, err := ParseDate("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-15", FormatDate(d))

	_, err = ParseDate("15/03/2026")
	assert.Error(t, err)
	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestDateWindow(t *testing.T) {
	end := date(2026, 6, 30)
	closed := DateWindow{Start: date(2026, 1, 1), End: &end}
	open := DateWindow{Start: date(2026, 7, 1)}

	t.Run("contains is inclusive on both ends", func(t *testing.T) {
		assert.True(t, closed.Contains(date(2026, 1, 1)))
		assert.True(t, closed.Contains(date(2026, 6, 30).Add(20*time.Hour)))
		assert.False(t, closed.Contains(date(2026, 7, 1)))
		assert.False(t, closed.Contains(date(2025, 12, 31)))
	})

	t.Run("open window extends forever", func(t *testing.T) {
		assert.True(t, open.Contains(date(2099, 1, 1)))
	})

	t.Run("adjacent windows do not overlap", func(t *testing.T) {
		assert.False(t, closed.Overlaps(open))
		assert.False(t, open.Overlaps(closed))
	})

	t.Run("shared day overlaps", func(t *testing.T) {
		touching := DateWindow{Start: date(2026, 6, 30)}
		assert.True(t, closed.Overlaps(touching))
		assert.True(t, touching.Overlaps(closed))
	})

	t.Run("two open windows always overlap", func(t *testing.T) {
		other := DateWindow{Start: date(2030, 1, 1)}
		assert.True(t, open.Overlaps(other))
	})
}
