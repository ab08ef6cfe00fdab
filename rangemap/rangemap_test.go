package rangemap_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benvansleen/almanac/rangemap"
)

// seedToSoil is the first table of the sample almanac.
func seedToSoil(t *testing.T) *rangemap.Map {
	t.Helper()
	m, err := rangemap.New("seed", "soil",
		rangemap.Triple{Dest: 50, Source: 98, Length: 2},
		rangemap.Triple{Dest: 52, Source: 50, Length: 48},
	)
	require.NoError(t, err)

	return m
}

// TestNew_SortsRulesBySource verifies rules are ordered by source start
// regardless of input order.
func TestNew_SortsRulesBySource(t *testing.T) {
	m := seedToSoil(t)
	assert.Equal(t, "seed", m.From())
	assert.Equal(t, "soil", m.To())
	assert.Equal(t, []rangemap.Rule{
		{SourceStart: 50, SourceEnd: 98, DestStart: 52},
		{SourceStart: 98, SourceEnd: 100, DestStart: 50},
	}, m.Rules())
}

// TestNew_DropsZeroLengthRules ensures empty rules never shadow a real one.
func TestNew_DropsZeroLengthRules(t *testing.T) {
	m, err := rangemap.New("a", "b",
		rangemap.Triple{Dest: 100, Source: 10, Length: 5},
		rangemap.Triple{Dest: 900, Source: 10, Length: 0},
	)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, int64(102), m.Resolve(12))
}

// TestNew_Errors covers invalid construction input.
func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		triple  rangemap.Triple
		wantErr error
	}{
		{"empty from", "", "b", rangemap.Triple{Length: 1}, rangemap.ErrEmptyCategory},
		{"empty to", "a", "", rangemap.Triple{Length: 1}, rangemap.ErrEmptyCategory},
		{"negative length", "a", "b", rangemap.Triple{Length: -1}, rangemap.ErrNegativeLength},
		{"source overflow", "a", "b", rangemap.Triple{Source: math.MaxInt64, Length: 1}, rangemap.ErrOverflow},
		{"dest overflow", "a", "b", rangemap.Triple{Dest: math.MaxInt64 - 1, Length: 2}, rangemap.ErrOverflow},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := rangemap.New(tc.from, tc.to, tc.triple)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, m)
		})
	}
}

// TestResolve_IdentityFallback checks values outside every rule pass through.
func TestResolve_IdentityFallback(t *testing.T) {
	m := seedToSoil(t)
	for _, v := range []int64{math.MinInt64, -1, 0, 13, 14, 49, 100, 101, math.MaxInt64} {
		assert.Equal(t, v, m.Resolve(v), "value %d should be unmapped", v)
	}
}

// TestResolve_OffsetInsideRules walks every covered value of every rule.
func TestResolve_OffsetInsideRules(t *testing.T) {
	m := seedToSoil(t)
	for _, r := range m.Rules() {
		for v := r.SourceStart; v < r.SourceEnd; v++ {
			require.True(t, r.Contains(v))
			require.Equal(t, r.DestStart+(v-r.SourceStart), m.Resolve(v))
		}
	}
	assert.Equal(t, int64(81), m.Resolve(79))
	assert.Equal(t, int64(57), m.Resolve(55))
	assert.Equal(t, int64(50), m.Resolve(98))
	assert.Equal(t, int64(51), m.Resolve(99))
}

// TestResolve_EmptyMap is the identity function.
func TestResolve_EmptyMap(t *testing.T) {
	m, err := rangemap.New("a", "b")
	require.NoError(t, err)
	assert.Equal(t, int64(42), m.Resolve(42))
}

// TestOverlaps reports the first intersecting pair only when one exists.
func TestOverlaps(t *testing.T) {
	_, _, ok := seedToSoil(t).Overlaps()
	assert.False(t, ok)

	m, err := rangemap.New("a", "b",
		rangemap.Triple{Dest: 0, Source: 0, Length: 10},
		rangemap.Triple{Dest: 100, Source: 5, Length: 10},
	)
	require.NoError(t, err)
	a, b, ok := m.Overlaps()
	require.True(t, ok)
	assert.Equal(t, int64(0), a.SourceStart)
	assert.Equal(t, int64(5), b.SourceStart)
}

// TestString renders the block in source order.
func TestString(t *testing.T) {
	assert.Equal(t, "seed-to-soil map:\n52 50 48\n50 98 2", seedToSoil(t).String())
}
