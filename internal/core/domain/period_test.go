package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePeriod(t *testing.T) {
	now := time.Date(2024, time.July, 15, 13, 45, 0, 0, time.UTC)

	tests := []struct {
		name     string
		token    string
		expected domain.DateRange
	}{
		{
			name:  "month selects the current calendar month",
			token: "month",
			expected: domain.DateRange{
				From: time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
				To:   time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name:  "year selects the current calendar year",
			token: "year",
			expected: domain.DateRange{
				From: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
				To:   time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		{name: "week falls back to all-time", token: "week"},
		{name: "quarter falls back to all-time", token: "quarter"},
		{name: "custom falls back to all-time", token: "custom"},
		{name: "empty is all-time", token: ""},
		{name: "unknown falls back to all-time", token: "fortnight"},
		{name: "explicit all", token: "all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ResolvePeriod(tt.token, now, false)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolvePeriod_StrictRejectsUnsupportedTokens(t *testing.T) {
	now := time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC)

	for _, token := range []string{"week", "quarter", "custom", "bogus"} {
		_, err := domain.ResolvePeriod(token, now, true)
		assert.ErrorIs(t, err, domain.ErrUnsupportedPeriod, token)
	}
	for _, token := range []string{"", "all", "month", "year"} {
		_, err := domain.ResolvePeriod(token, now, true)
		assert.NoError(t, err, token)
	}
}

func TestResolvePeriod_UsesUTCMonthBoundaries(t *testing.T) {
	// 23:30 on Dec 31 at UTC-5 is already January in UTC.
	loc := time.FixedZone("EST", -5*60*60)
	now := time.Date(2023, time.December, 31, 23, 30, 0, 0, loc)

	got, err := domain.ResolvePeriod("month", now, false)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), got.From)
}

func TestDateRange_Contains(t *testing.T) {
	r := domain.MonthRange(2024, time.March)

	assert.True(t, r.Contains(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2024, time.March, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, domain.DateRange{}.Contains(time.Time{}))
}
