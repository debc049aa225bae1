package jpegenc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToYCbCrBlack(t *testing.T) {
	p := &RGBPlane{Width: 1, Height: 1, R: []float32{0}, G: []float32{0}, B: []float32{0}}
	out := ToYCbCr(p)
	require.InDelta(t, 0, out.Y[0], 1e-4)
	require.InDelta(t, 128, out.Cb[0], 1e-4)
	require.InDelta(t, 128, out.Cr[0], 1e-4)
}

func TestToYCbCrWhite(t *testing.T) {
	p := &RGBPlane{Width: 1, Height: 1, R: []float32{255}, G: []float32{255}, B: []float32{255}}
	out := ToYCbCr(p)
	require.InDelta(t, 255, out.Y[0], 1e-2)
	require.InDelta(t, 128, out.Cb[0], 1e-2)
	require.InDelta(t, 128, out.Cr[0], 1e-2)
}

func TestToYCbCrRed(t *testing.T) {
	p := &RGBPlane{Width: 1, Height: 1, R: []float32{255}, G: []float32{0}, B: []float32{0}}
	out := ToYCbCr(p)
	require.InDelta(t, 0.2990*255, out.Y[0], 1e-2)
	require.InDelta(t, -0.1687*255+128, out.Cb[0], 1e-2)
	require.InDelta(t, 0.5000*255+128, out.Cr[0], 1e-2)
}
