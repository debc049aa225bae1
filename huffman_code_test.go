package jpegenc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssignCanonicalCodesScenarioS5(t *testing.T) {
	lengths := []SymbolCodeLength{
		{Symbol: 'A', Length: 3},
		{Symbol: 'B', Length: 3},
		{Symbol: 'C', Length: 2},
		{Symbol: 'D', Length: 1},
	}
	codes := AssignCanonicalCodes(lengths)
	table := BuildCodeTable(codes)

	require.Equal(t, uint16(0b0), table['D'].Code)
	require.Equal(t, uint8(1), table['D'].Length)

	require.Equal(t, uint16(0b10), table['C'].Code)
	require.Equal(t, uint8(2), table['C'].Length)

	require.Equal(t, uint16(0b110), table['A'].Code)
	require.Equal(t, uint8(3), table['A'].Length)

	require.Equal(t, uint16(0b111), table['B'].Code)
	require.Equal(t, uint8(3), table['B'].Length)
}

func TestAssignCanonicalCodesIsPrefixFree(t *testing.T) {
	lengths := []SymbolCodeLength{
		{Symbol: 0, Length: 2},
		{Symbol: 1, Length: 2},
		{Symbol: 2, Length: 2},
		{Symbol: 3, Length: 2},
	}
	codes := AssignCanonicalCodes(lengths)
	for i := range codes {
		for j := range codes {
			if i == j {
				continue
			}
			require.False(t, isPrefixOf(codes[i], codes[j]), "%v is a prefix of %v", codes[i], codes[j])
		}
	}
}

func isPrefixOf(a, b CanonicalCode) bool {
	if a.Length > b.Length {
		return false
	}
	shift := b.Length - a.Length
	return uint16(b.Code>>shift) == a.Code
}
