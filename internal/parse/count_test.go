package parse

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCount(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"950", 950},
		{"12K", 12000},
		{"12.3K", 12300},
		{"1.5M", 1500000},
		{"2B", 2000000000},
		{"1,234", 1234},
		{"0", 0},
		{"3.4k", 3400},
		{" 89 ", 89},
		// Decimals whose float product lands just under the integer.
		{"2.01M", 2010000},
		{"2.03M", 2030000},
		{"2.07M", 2070000},
		{"8.2K", 8200},
		{"4.29M", 4290000},
	}
	for _, tc := range cases {
		got, err := ParseCount(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseCount_DecimalSuffixSweep(t *testing.T) {
	// Every d.dd × 1e6 input must round to a whole number of thousands.
	for whole := int64(1); whole <= 9; whole++ {
		for frac := int64(0); frac < 100; frac++ {
			in := fmt.Sprintf("%d.%02dM", whole, frac)
			want := whole*1_000_000 + frac*10_000
			got, err := ParseCount(in)
			require.NoError(t, err, in)
			assert.Equal(t, want, got, in)
		}
	}
}

func TestParseCount_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "K", "-12K", "12KK"} {
		_, err := ParseCount(in)
		assert.Error(t, err, in)
	}
}

func TestParseCountDefault(t *testing.T) {
	assert.Equal(t, int64(12000), ParseCountDefault("12K"))
	assert.Equal(t, int64(0), ParseCountDefault("not a number"))
}
