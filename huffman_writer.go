package jpegenc

import "fmt"

// HuffmanWriter writes categorized DC/AC tokens to a BitWriter using a
// canonical code table, per §4.7-§4.8. One writer is built per DHT table
// (one DC, one AC, per component class).
type HuffmanWriter struct {
	bw    *BitWriter
	table map[uint8]CanonicalCode
	name  string
}

// NewHuffmanWriter builds a writer over codes, identified by name for error
// reporting (e.g. "luma-dc", "chroma-ac").
func NewHuffmanWriter(bw *BitWriter, codes []CanonicalCode, name string) *HuffmanWriter {
	return &HuffmanWriter{bw: bw, table: BuildCodeTable(codes), name: name}
}

// WriteSymbol emits the canonical code for symbol, followed by n extra
// magnitude bits (n=0 is valid, e.g. category 0). ErrHuffmanUnknownSymbol is
// returned if symbol has no entry in the table — an internal invariant
// violation, since the table is built from exactly the symbols the
// categorizer can emit.
func (hw *HuffmanWriter) WriteSymbol(symbol uint8, extra uint16, extraBits uint8) error {
	code, ok := hw.table[symbol]
	if !ok {
		return NewError(ErrHuffmanUnknownSymbol, fmt.Sprintf("symbol=%d table=%s", symbol, hw.name))
	}
	if err := hw.bw.WriteBits(uint32(code.Code), uint(code.Length)); err != nil {
		return Wrap(err, ErrSegmentWriteFailed, "SOS")
	}
	if extraBits > 0 {
		if err := hw.bw.WriteBits(uint32(extra), uint(extraBits)); err != nil {
			return Wrap(err, ErrSegmentWriteFailed, "SOS")
		}
	}
	return nil
}

// WriteBlock writes one categorized block's DC symbol+magnitude then its AC
// token stream, using acWriter for the AC symbols (run<<4|category, per the
// standard JPEG AC symbol packing).
func (hw *HuffmanWriter) WriteBlock(cb CategorizedBlock, acWriter *HuffmanWriter) error {
	if err := hw.WriteSymbol(cb.DCCategory, cb.DCMag, cb.DCCategory); err != nil {
		return err
	}
	for _, tok := range cb.AC {
		sym := tok.Run<<4 | tok.Category
		if err := acWriter.WriteSymbol(sym, tok.Mag, tok.Category); err != nil {
			return err
		}
	}
	return nil
}
