package jpegenc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubsampleSkipP444IsIdentity(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6}
	out, w, h := Subsample(data, 3, 2, 1, 1, MethodSkip)
	require.Equal(t, 3, w)
	require.Equal(t, 2, h)
	require.Equal(t, data, out)
}

func TestSubsampleAverageP420(t *testing.T) {
	// 4x2 plane, values chosen so each 2x2 cell averages cleanly.
	data := []float32{
		1, 3, 5, 7,
		1, 3, 5, 7,
	}
	out, w, h := Subsample(data, 4, 2, 2, 2, MethodAverage)
	require.Equal(t, 2, w)
	require.Equal(t, 1, h)
	require.InDeltaSlice(t, []float32{2, 6}, out, 1e-6)
}

func TestSubsampleEdgeClampAverage(t *testing.T) {
	// 3-wide plane with hc=2: last output cell's window runs past the edge
	// and should repeat the last column instead of going out of bounds.
	data := []float32{10, 20, 30}
	out, w, _ := Subsample(data, 3, 1, 2, 1, MethodAverage)
	require.Equal(t, 2, w)
	require.InDeltaSlice(t, []float32{15, 30}, out, 1e-6)
}

func TestSubsamplePresetRates(t *testing.T) {
	hc, vc, m := P422.ChromaRates()
	require.Equal(t, 2, hc)
	require.Equal(t, 1, vc)
	require.Equal(t, MethodAverage, m)

	hc, vc, m = P420.ChromaRates()
	require.Equal(t, 2, hc)
	require.Equal(t, 2, vc)
	require.Equal(t, MethodAverage, m)

	hc, vc, m = P444.ChromaRates()
	require.Equal(t, 1, hc)
	require.Equal(t, 1, vc)
	require.Equal(t, MethodSkip, m)
}

func TestParseSubsamplingPreset(t *testing.T) {
	p, err := ParseSubsamplingPreset("P420")
	require.NoError(t, err)
	require.Equal(t, P420, p)

	_, err = ParseSubsamplingPreset("bogus")
	require.Error(t, err)
	kind, ok := Kind(err)
	require.True(t, ok)
	require.Equal(t, ErrConfigInvalid, kind)
}
