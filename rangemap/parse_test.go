package rangemap_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benvansleen/almanac/rangemap"
)

// TestParse_SampleBlock parses a well-formed block.
func TestParse_SampleBlock(t *testing.T) {
	m, err := rangemap.Parse("soil-to-fertilizer map:\n0 15 37\n37 52 2\n39 0 15\n")
	require.NoError(t, err)
	assert.Equal(t, "soil", m.From())
	assert.Equal(t, "fertilizer", m.To())
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, int64(53), m.Resolve(14))
	assert.Equal(t, int64(38), m.Resolve(53))
}

// TestParse_HeaderOnly yields an identity map.
func TestParse_HeaderOnly(t *testing.T) {
	m, err := rangemap.Parse("light-to-temperature map:")
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, int64(7), m.Resolve(7))
}

// TestParse_ToleratesSpacing accepts extra blanks and CRLF line ends.
func TestParse_ToleratesSpacing(t *testing.T) {
	m, err := rangemap.Parse("\n  water-to-light   map:\r\n 88  18 7 \r\n18 25\t70\r\n\n")
	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, int64(74), m.Resolve(81))
}

// TestParse_Errors covers malformed headers and rule lines.
func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		block    string
		wantErr  error
		wantLine int
	}{
		{"empty", "   \n", rangemap.ErrMalformedHeader, 1},
		{"missing map keyword", "seed-to-soil:\n1 2 3", rangemap.ErrMalformedHeader, 1},
		{"missing to", "seed-soil map:\n1 2 3", rangemap.ErrMalformedHeader, 1},
		{"rule without header", "1 2 3\n4 5 6", rangemap.ErrMalformedHeader, 1},
		{"non-numeric token", "seed-to-soil map:\n50 98 2\n52 fifty 48", rangemap.ErrMalformedRule, 3},
		{"short rule", "seed-to-soil map:\n50 98", rangemap.ErrMalformedRule, 2},
		{"long rule", "seed-to-soil map:\n50 98 2 7", rangemap.ErrMalformedRule, 2},
		{"stray character", "seed-to-soil map:\n50 9.8 2", rangemap.ErrMalformedRule, 2},
		{"negative length", "seed-to-soil map:\n50 98 2\n1 2 -3", rangemap.ErrNegativeLength, 3},
		{"overflow", "seed-to-soil map:\n1 99999999999999999999 1", rangemap.ErrOverflow, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := rangemap.Parse(tc.block)
			require.Error(t, err)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, tc.wantErr)

			var pe *rangemap.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.wantLine, pe.Line)
		})
	}
}

// TestParseAt_OffsetsLines reports document-absolute line numbers.
func TestParseAt_OffsetsLines(t *testing.T) {
	_, err := rangemap.ParseAt("\nseed-to-soil map:\n50 98 2\nx y z", 10)

	var pe *rangemap.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 13, pe.Line)
	assert.Contains(t, pe.Error(), "line 13")
}
