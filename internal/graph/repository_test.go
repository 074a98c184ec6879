package graph

import (
	"testing"

	"gocircle/internal/common"

	"github.com/stretchr/testify/require"
)

func TestCanonicalPair(t *testing.T) {
	tests := []struct {
		name     string
		from, to uint64
		kind     common.RelationshipKind
		wantLow  uint64
		wantHigh uint64
	}{
		{"connection already ordered", 1, 2, common.KindConnection, 1, 2},
		{"connection reversed collapses", 2, 1, common.KindConnection, 1, 2},
		{"follow keeps direction", 2, 1, common.KindFollow, 2, 1},
		{"block keeps direction", 9, 4, common.KindBlock, 9, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			low, high := canonicalPair(tc.from, tc.to, tc.kind)
			require.Equal(t, tc.wantLow, low)
			require.Equal(t, tc.wantHigh, high)
		})
	}
}

// The same unordered connection pair must yield the same index key no matter
// which side requested; reciprocal follow edges must not.
func TestCanonicalPairSymmetry(t *testing.T) {
	abLow, abHigh := canonicalPair(7, 3, common.KindConnection)
	baLow, baHigh := canonicalPair(3, 7, common.KindConnection)
	require.Equal(t, abLow, baLow)
	require.Equal(t, abHigh, baHigh)

	fLow, fHigh := canonicalPair(7, 3, common.KindFollow)
	rLow, rHigh := canonicalPair(3, 7, common.KindFollow)
	require.False(t, fLow == rLow && fHigh == rHigh)
}
