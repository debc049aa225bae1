package jpegenc

import "math"

// AAN forward-DCT constants (Arai-Agui-Nakajima fast 8-point DCT).
const (
	aanA1 = 0.70710678 // 1/sqrt(2)
	aanA2 = 0.5411961
	aanA3 = aanA1
	aanA4 = 1.3065629
	aanA5 = 0.3826834
)

// Post-scale factors applied after the AAN butterfly network: s0 = 1/(2√2),
// sk = 1/(4·cos(kπ/16)) for k≥1.
var aanScale = [blockDim]float64{
	0.3535533,
	0.2548978,
	0.27059805,
	0.30067244,
	0.35355338,
	0.4499881,
	0.6532815,
	1.2814577,
}

// aan1D runs the 8-point AAN butterfly network over 8 values read/written
// with the given stride, starting at off within data.
func aan1D(data *[blockSize]float64, off, stride int) {
	at := func(i int) float64 { return data[off+i*stride] }
	set := func(i int, v float64) { data[off+i*stride] = v }

	v0, v1, v2, v3 := at(0)+at(7), at(1)+at(6), at(2)+at(5), at(3)+at(4)
	v4, v5, v6, v7 := at(3)-at(4), at(2)-at(5), at(1)-at(6), at(0)-at(7)

	v00 := v0 + v3
	v01 := v1 + v2
	v02 := v1 - v2
	v03 := v0 - v3

	v10 := v00 + v01
	v11 := v00 - v01
	v12 := v02 + v03

	z1 := (v12) * aanA1

	set(0, v10)
	set(4, v11)

	v13 := v03 + z1
	v14 := v03 - z1
	set(2, v13)
	set(6, v14)

	v20 := v4 + v5
	v21 := v5 + v6
	v22 := v6 + v7

	z5 := (v20 - v22) * aanA5
	z2 := v20*aanA2 + z5
	z4 := v22*aanA4 + z5
	z3 := v21 * aanA3

	v30 := v7 + z3
	v31 := v7 - z3

	set(1, v30+z4)
	set(7, v30-z4)
	set(5, v31+z2)
	set(3, v31-z2)
}

// ForwardDCTFast computes the AAN fast forward DCT of b in place: 8 rows
// then 8 columns. Input samples are expected already level-shifted (see
// LevelShift).
func ForwardDCTFast(b *Block) {
	var tmp [blockSize]float64
	for i, v := range b {
		tmp[i] = float64(v)
	}
	for row := 0; row < blockDim; row++ {
		aan1D(&tmp, row*blockDim, 1)
	}
	for col := 0; col < blockDim; col++ {
		aan1D(&tmp, col, blockDim)
	}
	for y := 0; y < blockDim; y++ {
		for x := 0; x < blockDim; x++ {
			i := y*blockDim + x
			b[i] = float32(tmp[i] * aanScale[y] * aanScale[x])
		}
	}
}

// ForwardDCTReference computes the textbook separable DCT-II of b in place.
// O(n²) per axis; used only as a correctness oracle for ForwardDCTFast, not
// in the production encode path.
func ForwardDCTReference(b *Block) {
	var tmp [blockSize]float64
	in := make([]float64, blockSize)
	for i, v := range b {
		in[i] = float64(v)
	}
	// rows
	for y := 0; y < blockDim; y++ {
		dct1D(in[y*blockDim:y*blockDim+blockDim], tmp[y*blockDim:y*blockDim+blockDim])
	}
	copy(in, tmp[:])
	// columns
	col := make([]float64, blockDim)
	colOut := make([]float64, blockDim)
	for x := 0; x < blockDim; x++ {
		for y := 0; y < blockDim; y++ {
			col[y] = in[y*blockDim+x]
		}
		dct1D(col, colOut)
		for y := 0; y < blockDim; y++ {
			tmp[y*blockDim+x] = colOut[y]
		}
	}
	for i := range b {
		b[i] = float32(tmp[i])
	}
}

func dct1D(in, out []float64) {
	const n = blockDim
	for u := 0; u < n; u++ {
		var sum float64
		for x := 0; x < n; x++ {
			sum += in[x] * math.Cos(math.Pi/float64(n)*(float64(x)+0.5)*float64(u))
		}
		cu := 1.0
		if u == 0 {
			cu = 1.0 / math.Sqrt2
		}
		out[u] = 0.5 * cu * sum
	}
}

// InverseDCTReference computes the textbook separable inverse DCT-II
// (DCT-III) of b in place. Used only by round-trip invertibility tests.
func InverseDCTReference(b *Block) {
	var tmp [blockSize]float64
	in := make([]float64, blockSize)
	for i, v := range b {
		in[i] = float64(v)
	}
	for y := 0; y < blockDim; y++ {
		idct1D(in[y*blockDim:y*blockDim+blockDim], tmp[y*blockDim:y*blockDim+blockDim])
	}
	copy(in, tmp[:])
	col := make([]float64, blockDim)
	colOut := make([]float64, blockDim)
	for x := 0; x < blockDim; x++ {
		for y := 0; y < blockDim; y++ {
			col[y] = in[y*blockDim+x]
		}
		idct1D(col, colOut)
		for y := 0; y < blockDim; y++ {
			tmp[y*blockDim+x] = colOut[y]
		}
	}
	for i := range b {
		b[i] = float32(tmp[i])
	}
}

func idct1D(in, out []float64) {
	const n = blockDim
	for x := 0; x < n; x++ {
		var sum float64
		for u := 0; u < n; u++ {
			cu := 1.0
			if u == 0 {
				cu = 1.0 / math.Sqrt2
			}
			sum += cu * in[u] * math.Cos(math.Pi/float64(n)*(float64(x)+0.5)*float64(u))
		}
		out[x] = 0.5 * sum
	}
}

// LevelShift subtracts 128 from every sample of b in place, per §4.4's sign
// convention, before either DCT implementation runs.
func LevelShift(b *Block) {
	for i := range b {
		b[i] -= 128
	}
}
