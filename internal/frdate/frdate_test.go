package frdate

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValidDates(t *testing.T) {
	year := time.Now().Year()

	tests := []struct {
		input string
		want  string
	}{
		{"11 février", fmt.Sprintf("%d-02-11", year)},
		{"1 janvier 2025", "2025-01-01"},
		{"3 mars", fmt.Sprintf("%d-03-03", year)},
		{"15 août", fmt.Sprintf("%d-08-15", year)},
		{"25 décembre", fmt.Sprintf("%d-12-25", year)},
		{"11 fév", fmt.Sprintf("%d-02-11", year)},
		{"11 fevrier", fmt.Sprintf("%d-02-11", year)},
		{"11 fév.", fmt.Sprintf("%d-02-11", year)},
		{"  11 février  ", fmt.Sprintf("%d-02-11", year)},
		{"5 mai", fmt.Sprintf("%d-05-05", year)},
		{"15 AOÛT", fmt.Sprintf("%d-08-15", year)},
		{"29 février 2024", "2024-02-29"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Parse(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRejectsNonDates(t *testing.T) {
	inputs := []string{
		"",
		"Jean Dupont",
		"11",
		"11 flurp",
		"février",
		"0 mars",
		"32 mars",
		"31 novembre",  // november has 30 days
		"29 février 2025", // not a leap year
		"11 février extra",
	}
	for _, in := range inputs {
		t.Run(fmt.Sprintf("%q", in), func(t *testing.T) {
			_, ok := Parse(in)
			assert.False(t, ok)
		})
	}
}

func TestParseYearDefaultsToCurrent(t *testing.T) {
	got, ok := parseAt("11 février", time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, "2023-02-11", got)
}
