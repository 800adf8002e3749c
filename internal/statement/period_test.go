package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodRange(t *testing.T) {
	tests := []struct {
		period string
		from   string
		to     string
	}{
		{"202403", "2024-03-06", "2024-04-06"},
		{"202412", "2024-12-06", "2025-01-06"}, // year rollover
		{"202401", "2024-01-06", "2024-02-06"},
		{"199912", "1999-12-06", "2000-01-06"},
	}

	for _, tc := range tests {
		t.Run(tc.period, func(t *testing.T) {
			from, to, err := PeriodRange(tc.period)
			require.NoError(t, err)
			assert.Equal(t, tc.from, from)
			assert.Equal(t, tc.to, to)
		})
	}
}

func TestPeriodRangeInvalid(t *testing.T) {
	for _, period := range []string{"", "2024", "2024031", "2024ab", "202400", "202413"} {
		t.Run(period, func(t *testing.T) {
			_, _, err := PeriodRange(period)
			assert.Error(t, err)
		})
	}
}
