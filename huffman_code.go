package jpegenc

import "sort"

// CanonicalCode is one symbol's assigned canonical Huffman code: Length
// bits, with Code holding the right-aligned bit pattern (the low Length
// bits are significant).
type CanonicalCode struct {
	Symbol uint8
	Length uint8
	Code   uint16
}

// AssignCanonicalCodes turns a set of code lengths into canonical codes
// using the left-justified-increment construction: symbols are ordered by
// (length, symbol value), and each next code is the previous left-justified
// pattern plus 1<<(16-prevLength), right-shifted back down to its own
// length when read out.
func AssignCanonicalCodes(lengths []SymbolCodeLength) []CanonicalCode {
	sorted := make([]SymbolCodeLength, len(lengths))
	copy(sorted, lengths)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Length != sorted[j].Length {
			return sorted[i].Length < sorted[j].Length
		}
		return sorted[i].Symbol < sorted[j].Symbol
	})

	out := make([]CanonicalCode, len(sorted))
	var leftJustified uint32
	var prevLength uint8
	for i, sl := range sorted {
		if i > 0 {
			leftJustified += 1 << (16 - prevLength)
		}
		code := uint16(leftJustified >> (16 - uint32(sl.Length)))
		out[i] = CanonicalCode{Symbol: sl.Symbol, Length: sl.Length, Code: code}
		prevLength = sl.Length
	}
	return out
}

// BuildCodeTable indexes a set of canonical codes by symbol for fast
// lookup during Huffman writing.
func BuildCodeTable(codes []CanonicalCode) map[uint8]CanonicalCode {
	m := make(map[uint8]CanonicalCode, len(codes))
	for _, c := range codes {
		m[c.Symbol] = c
	}
	return m
}
