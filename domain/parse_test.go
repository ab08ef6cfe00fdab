package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benvansleen/almanac/domain"
)

// TestParseSeeds reads both forms from the reference seed line.
func TestParseSeeds(t *testing.T) {
	d, err := domain.ParseSeeds("seeds: 79 14 55 13", domain.List)
	require.NoError(t, err)
	assert.Equal(t, []int64{79, 14, 55, 13}, d.Values())

	d, err = domain.ParseSeeds("seeds: 79 14 55 13", domain.Ranges)
	require.NoError(t, err)
	assert.Equal(t, []domain.Range{{Start: 79, End: 93}, {Start: 55, End: 68}}, d.Ranges())
}

// TestParseSeeds_Spacing tolerates irregular whitespace and no values.
func TestParseSeeds_Spacing(t *testing.T) {
	d, err := domain.ParseSeeds("  seeds:79   14\t55 13  ", domain.List)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), d.Len())

	d, err = domain.ParseSeeds("seeds:", domain.Ranges)
	require.NoError(t, err)
	assert.Zero(t, d.Len())
}

// TestParseSeeds_Errors covers every DomainError path.
func TestParseSeeds_Errors(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		form    domain.Form
		wantErr error
		token   string
	}{
		{"odd range count", "seeds: 79 14 55", domain.Ranges, domain.ErrOddCount, "55"},
		{"non-numeric", "seeds: 79 abc 55 13", domain.List, domain.ErrInvalidToken, "abc"},
		{"trailing garbage", "seeds: 79 14x", domain.Ranges, domain.ErrInvalidToken, "14x"},
		{"overflow", "seeds: 99999999999999999999", domain.List, domain.ErrOverflow, "99999999999999999999"},
		{"missing label", "79 14 55 13", domain.List, domain.ErrMissingLabel, ""},
		{"wrong label", "soils: 1 2", domain.List, domain.ErrMissingLabel, ""},
		{"empty", "", domain.List, domain.ErrMissingLabel, ""},
		{"stray colon", "seeds: 1 : 2", domain.List, domain.ErrInvalidToken, ":"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := domain.ParseSeeds(tc.line, tc.form)
			assert.Nil(t, d)
			require.ErrorIs(t, err, tc.wantErr)

			var de *domain.DomainError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tc.token, de.Token)
		})
	}
}
