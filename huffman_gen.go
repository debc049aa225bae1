package jpegenc

import "sort"

// SymbolFrequency is one input to the length-limited Huffman generator.
type SymbolFrequency struct {
	Symbol    uint8
	Frequency uint64
}

// SymbolCodeLength is one output of the generator: the code length assigned
// to a symbol.
type SymbolCodeLength struct {
	Symbol uint8
	Length uint8
}

// package merge node: either a leaf (one original symbol) or a package of
// two lower-level entries, tracked only by summed frequency and the set of
// leaf symbols it ultimately resolves to.
type pmNode struct {
	freq    uint64
	symbols []uint8 // leaves folded into this node, for propagation counting
}

// GenerateLengthLimitedCodeLengths runs the package-merge algorithm (§4.7)
// to produce code lengths no longer than limit for each symbol. Frequencies
// must be > 0 and symbols distinct; the caller (Encode) guarantees this by
// building the input with CountDCFrequencies/CountACFrequencies.
func GenerateLengthLimitedCodeLengths(freqs []SymbolFrequency, limit int) []SymbolCodeLength {
	n := len(freqs)
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []SymbolCodeLength{{Symbol: freqs[0].Symbol, Length: 1}}
	}

	sorted := make([]SymbolFrequency, n)
	copy(sorted, freqs)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Frequency != sorted[j].Frequency {
			return sorted[i].Frequency < sorted[j].Frequency
		}
		return sorted[i].Symbol < sorted[j].Symbol
	})

	leaves := make([]pmNode, n)
	for i, sf := range sorted {
		leaves[i] = pmNode{freq: sf.Frequency, symbols: []uint8{sf.Symbol}}
	}

	// list[0] = the leaves themselves, already sorted.
	lists := make([][]pmNode, limit)
	lists[0] = leaves

	for l := 1; l < limit; l++ {
		prev := lists[l-1]
		packages := make([]pmNode, 0, len(prev)/2)
		for i := 0; i+1 < len(prev); i += 2 {
			sym := append(append([]uint8{}, prev[i].symbols...), prev[i+1].symbols...)
			packages = append(packages, pmNode{freq: prev[i].freq + prev[i+1].freq, symbols: sym})
		}
		merged := make([]pmNode, 0, len(packages)+n)
		merged = append(merged, packages...)
		merged = append(merged, leaves...)
		sort.SliceStable(merged, func(i, j int) bool { return merged[i].freq < merged[j].freq })
		lists[l] = merged
	}

	keep := 2*n - 2
	counts := make(map[uint8]int)
	top := lists[limit-1]
	if keep > len(top) {
		keep = len(top)
	}
	retained := top[:keep]
	for l := limit - 1; l >= 0; l-- {
		numPackages := 0
		for _, node := range retained {
			if len(node.symbols) > 1 {
				numPackages++
			} else {
				counts[node.symbols[0]]++
			}
		}
		if l == 0 {
			break
		}
		p := 2 * numPackages
		cur := lists[l-1]
		if p > len(cur) {
			p = len(cur)
		}
		retained = cur[:p]
	}

	out := make([]SymbolCodeLength, 0, n)
	for _, sf := range sorted {
		out = append(out, SymbolCodeLength{Symbol: sf.Symbol, Length: uint8(counts[sf.Symbol])})
	}
	return out
}
