package jpegenc

// CountDCFrequencies tabulates DC category frequencies across a component's
// categorized blocks, as input to GenerateLengthLimitedCodeLengths.
func CountDCFrequencies(blocks []CategorizedBlock) []SymbolFrequency {
	counts := make(map[uint8]uint64)
	for _, b := range blocks {
		counts[b.DCCategory]++
	}
	return toFrequencies(counts)
}

// CountACFrequencies tabulates AC (run<<4|category) symbol frequencies
// across a component's categorized blocks.
func CountACFrequencies(blocks []CategorizedBlock) []SymbolFrequency {
	counts := make(map[uint8]uint64)
	for _, b := range blocks {
		for _, tok := range b.AC {
			counts[tok.Run<<4|tok.Category]++
		}
	}
	return toFrequencies(counts)
}

func toFrequencies(counts map[uint8]uint64) []SymbolFrequency {
	out := make([]SymbolFrequency, 0, len(counts))
	for sym, freq := range counts {
		out = append(out, SymbolFrequency{Symbol: sym, Frequency: freq})
	}
	return out
}
