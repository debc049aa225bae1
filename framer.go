package jpegenc

import (
	"encoding/binary"
	"io"

	"github.com/rs/zerolog"
)

// Marker values used by the framer. Only the subset a baseline JFIF encoder
// emits; decoding markers are out of scope.
const (
	markerSOI  = 0xFFD8
	markerEOI  = 0xFFD9
	markerAPP0 = 0xFFE0
	markerDQT  = 0xFFDB
	markerSOF0 = 0xFFC0
	markerDHT  = 0xFFC4
	markerSOS  = 0xFFDA
)

// ComponentID identifies one of the three JFIF color components.
type ComponentID uint8

const (
	ComponentY  ComponentID = 1
	ComponentCb ComponentID = 2
	ComponentCr ComponentID = 3
)

// HuffmanTableSpec is one DHT table's canonical codes, ready to serialize:
// counts[l] is the number of symbols with code length l+1, and symbols is
// the concatenation of those symbols length-major then code-major (the
// canonical order AssignCanonicalCodes already produces).
type HuffmanTableSpec struct {
	Class   uint8 // 0 = DC, 1 = AC
	ID      uint8
	Symbols []uint8
	Counts  [16]uint8
}

// BuildHuffmanTableSpec derives a DHT table body from canonical codes.
func BuildHuffmanTableSpec(class, id uint8, codes []CanonicalCode) HuffmanTableSpec {
	spec := HuffmanTableSpec{Class: class, ID: id}
	sorted := make([]CanonicalCode, len(codes))
	copy(sorted, codes)
	// codes are already canonically ordered by (length, code) from
	// AssignCanonicalCodes' construction, which is (length, symbol) input
	// order producing monotonically increasing codes within a length.
	for _, c := range sorted {
		spec.Counts[c.Length-1]++
		spec.Symbols = append(spec.Symbols, c.Symbol)
	}
	return spec
}

// Framer writes the JFIF/JPEG segment sequence: SOI, APP0, DQT×2, SOF0,
// DHT×4, SOS header, entropy-coded scan data, EOI. States progress linearly
// (Idle→Header→EntropyBody→Trailer→Done); any write error is fatal and
// propagates immediately (§4.10/§7).
type Framer struct {
	w   io.Writer
	log zerolog.Logger
}

// NewFramer builds a Framer writing segments to w.
func NewFramer(w io.Writer, log zerolog.Logger) *Framer {
	return &Framer{w: w, log: log}
}

func (f *Framer) write(name string, p []byte) error {
	n, err := f.w.Write(p)
	if err != nil {
		return Wrap(err, ErrSegmentWriteFailed, name)
	}
	if n != len(p) {
		return NewError(ErrSegmentWriteFailed, name)
	}
	f.log.Debug().Str("segment", name).Int("length", len(p)).Msg("wrote segment")
	return nil
}

func be16(v uint16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, v)
	return b
}

// WriteSOI emits the start-of-image marker.
func (f *Framer) WriteSOI() error {
	return f.write("SOI", be16(markerSOI))
}

// WriteEOI emits the end-of-image marker.
func (f *Framer) WriteEOI() error {
	return f.write("EOI", be16(markerEOI))
}

// WriteAPP0 emits the fixed JFIF application segment: version 1.2, no
// density units, 72×72 "density" (arbitrary, matching the common JFIF
// default), no embedded thumbnail.
func (f *Framer) WriteAPP0() error {
	body := []byte{
		'J', 'F', 'I', 'F', 0x00,
		0x01, 0x02, // version 1.2
		0x00,       // density units: none
		0x00, 0x48, // Xdensity = 72
		0x00, 0x48, // Ydensity = 72
		0x00, 0x00, // no thumbnail
	}
	return f.writeSegment("APP0", markerAPP0, body)
}

func (f *Framer) writeSegment(name string, marker uint16, body []byte) error {
	if err := f.write(name, be16(marker)); err != nil {
		return err
	}
	length := uint16(len(body) + 2)
	buf := make([]byte, 0, 2+len(body))
	buf = append(buf, be16(length)...)
	buf = append(buf, body...)
	return f.write(name, buf)
}

// WriteDQT emits one quantization table segment (precision always 8-bit, so
// precision_id's high nibble is always 0), with entries reordered to
// zig-zag scan order as the JFIF format requires.
func (f *Framer) WriteDQT(id uint8, table *QuantTable) error {
	body := make([]byte, 0, 1+blockSize)
	body = append(body, id&0x0F)
	for _, pos := range zigZag {
		body = append(body, byte(table[pos]))
	}
	return f.writeSegment("DQT", markerDQT, body)
}

// SOFComponent describes one component's entry in the SOF0 frame header.
type SOFComponent struct {
	ID      ComponentID
	H, V    uint8
	QuantID uint8
}

// WriteSOF0 emits the baseline frame header.
func (f *Framer) WriteSOF0(width, height int, components []SOFComponent) error {
	body := make([]byte, 0, 6+3*len(components))
	body = append(body, 8) // sample precision
	body = append(body, be16(uint16(height))...)
	body = append(body, be16(uint16(width))...)
	body = append(body, byte(len(components)))
	for _, c := range components {
		body = append(body, byte(c.ID), c.H<<4|c.V, c.QuantID)
	}
	return f.writeSegment("SOF0", markerSOF0, body)
}

// WriteDHT emits one Huffman table definition segment.
func (f *Framer) WriteDHT(spec HuffmanTableSpec) error {
	body := make([]byte, 0, 1+16+len(spec.Symbols))
	body = append(body, spec.Class<<4|spec.ID)
	body = append(body, spec.Counts[:]...)
	body = append(body, spec.Symbols...)
	return f.writeSegment("DHT", markerDHT, body)
}

// SOSComponent maps a scan component to its DC/AC table selectors.
type SOSComponent struct {
	ID           ComponentID
	DCTable      uint8
	ACTable      uint8
}

// WriteSOSHeader emits the start-of-scan header. The caller writes the
// entropy-coded bits immediately afterward via a BitWriter in entropy mode,
// then this Framer writes EOI once the scan is flushed.
func (f *Framer) WriteSOSHeader(components []SOSComponent) error {
	body := make([]byte, 0, 4+2*len(components))
	body = append(body, byte(len(components)))
	for _, c := range components {
		body = append(body, byte(c.ID), c.DCTable<<4|c.ACTable)
	}
	body = append(body, 0, 63, 0) // spectral selection 0..63, Ah/Al=0 (baseline, single scan)
	return f.writeSegment("SOS", markerSOS, body)
}
