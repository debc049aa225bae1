package jpegenc

// blockDim is the side length of one DCT block.
const blockDim = 8

// blockSize is the sample count of one DCT block (8×8).
const blockSize = blockDim * blockDim

// Block is one 8×8 pixel or coefficient block, stored row-major.
type Block [blockSize]float32

// FrequencyBlock is one quantized 8×8 coefficient block, stored row-major
// (not zig-zag — zig-zag traversal happens downstream, in the categorizer).
type FrequencyBlock [blockSize]int16

// zigZag maps a zig-zag scan position (0..63) to the row-major index it
// reads, i.e. zigZag[k] is the row-major index of the k-th coefficient in
// the scan order used by the categorizer and the JFIF DQT segment.
var zigZag = [blockSize]int{
	0, 1, 8, 16, 9, 2, 3, 10,
	17, 24, 32, 25, 18, 11, 4, 5,
	12, 19, 26, 33, 40, 48, 41, 34,
	27, 20, 13, 6, 7, 14, 21, 28,
	35, 42, 49, 56, 57, 50, 43, 36,
	29, 22, 15, 23, 30, 37, 44, 51,
	58, 59, 52, 45, 38, 31, 39, 46,
	53, 60, 61, 54, 47, 55, 62, 63,
}

// ZigZag returns the coefficients of b in zig-zag scan order.
func (b *FrequencyBlock) ZigZag() [blockSize]int16 {
	var out [blockSize]int16
	for i, pos := range zigZag {
		out[i] = b[pos]
	}
	return out
}

// Plane is a single-channel, row-major sample plane with arbitrary
// dimensions (not necessarily a multiple of the block size; callers pad
// before block extraction, see §4.3's padding policy).
type Plane struct {
	Width, Height int
	Data          []float32
}

// ExtractBlocks splits p into row-major 8×8 blocks. Width and Height must
// both be multiples of 8; callers are responsible for padding (see
// ppm.go's PadToMCU, which Encode calls to pad to the MCU boundary before
// this is called).
func (p *Plane) ExtractBlocks() []Block {
	bw, bh := p.Width/blockDim, p.Height/blockDim
	blocks := make([]Block, bw*bh)
	for by := 0; by < bh; by++ {
		for bx := 0; bx < bw; bx++ {
			var blk Block
			for y := 0; y < blockDim; y++ {
				srcRow := (by*blockDim+y)*p.Width + bx*blockDim
				copy(blk[y*blockDim:y*blockDim+blockDim], p.Data[srcRow:srcRow+blockDim])
			}
			blocks[by*bw+bx] = blk
		}
	}
	return blocks
}
