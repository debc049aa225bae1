package jpegenc

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForwardDCTFastAgreesWithReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 20; trial++ {
		var fast, ref Block
		for i := range fast {
			v := float32(rng.Intn(256)) - 128
			fast[i] = v
			ref[i] = v
		}
		ForwardDCTFast(&fast)
		ForwardDCTReference(&ref)
		for i := range fast {
			require.InDelta(t, ref[i], fast[i], 1e-2, "coefficient %d", i)
		}
	}
}

func TestDCTReferenceInvertible(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	var b, orig Block
	for i := range b {
		v := float32(rng.Intn(256)) - 128
		b[i] = v
		orig[i] = v
	}
	ForwardDCTReference(&b)
	InverseDCTReference(&b)
	for i := range b {
		require.InDelta(t, float64(orig[i]), float64(b[i]), 1e-5)
	}
}

func TestLevelShift(t *testing.T) {
	b := Block{0, 128, 255}
	LevelShift(&b)
	require.Equal(t, float32(-128), b[0])
	require.Equal(t, float32(0), b[1])
	require.Equal(t, float32(127), b[2])
}

func TestAANScaleFactorsMatchFormula(t *testing.T) {
	require.InDelta(t, 1.0/(2*math.Sqrt2), aanScale[0], 1e-6)
	for k := 1; k < blockDim; k++ {
		want := 1.0 / (4 * math.Cos(float64(k)*math.Pi/16))
		require.InDelta(t, want, aanScale[k], 1e-6)
	}
}
