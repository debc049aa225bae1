package jpegenc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadPPMScenarioS6(t *testing.T) {
	src := `P3
3 2
255
255 0 0   0 255 0   0 0 255
255 255 0 255 0 255 0 255 255
`
	plane, err := ReadPPM(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 3, plane.Width)
	require.Equal(t, 2, plane.Height)
	require.Equal(t, []float32{255, 0, 0, 255, 0, 255}, plane.R)
	require.Equal(t, []float32{0, 255, 0, 255, 0, 255}, plane.G)
	require.Equal(t, []float32{0, 0, 255, 0, 255, 255}, plane.B)
}

func TestReadPPMMidLineComment(t *testing.T) {
	src := "P3\n2 1 # two pixels\n255\n255 0 0 #red\n0 255 0\n"
	plane, err := ReadPPM(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, []float32{255, 0}, plane.R)
}

func TestReadPPMMissingToken(t *testing.T) {
	_, err := ReadPPM(strings.NewReader("P3\n3 2\n"))
	require.Error(t, err)
	kind, _ := Kind(err)
	require.Equal(t, ErrPPMMissingToken, kind)
}

func TestReadPPMBadMagic(t *testing.T) {
	_, err := ReadPPM(strings.NewReader("P6\n1 1\n255\n0 0 0\n"))
	require.Error(t, err)
	kind, _ := Kind(err)
	require.Equal(t, ErrPPMTokenUnparseable, kind)
}

func TestReadPPMIncompletePixel(t *testing.T) {
	_, err := ReadPPM(strings.NewReader("P3\n1 1\n255\n255 0\n"))
	require.Error(t, err)
	kind, _ := Kind(err)
	require.Equal(t, ErrPPMIncompletePixel, kind)
}

func TestReadPPMSizeMismatch(t *testing.T) {
	_, err := ReadPPM(strings.NewReader("P3\n1 1\n255\n255 0 0 10 10 10\n"))
	require.Error(t, err)
	kind, _ := Kind(err)
	require.Equal(t, ErrPPMSizeMismatch, kind)
}

func TestPadToMCUNoOpWhenAligned(t *testing.T) {
	p := &RGBPlane{Width: 8, Height: 8, R: make([]float32, 64), G: make([]float32, 64), B: make([]float32, 64)}
	out := PadToMCU(p, 8, 8)
	require.Same(t, p, out)
}

func TestPadToMCUPadsWithBlack(t *testing.T) {
	p := &RGBPlane{Width: 3, Height: 2, R: []float32{1, 2, 3, 4, 5, 6}, G: make([]float32, 6), B: make([]float32, 6)}
	out := PadToMCU(p, 8, 8)
	require.Equal(t, 8, out.Width)
	require.Equal(t, 8, out.Height)
	require.Equal(t, float32(1), out.R[0])
	require.Equal(t, float32(2), out.R[1])
	require.Equal(t, float32(3), out.R[2])
	require.Equal(t, float32(0), out.R[3])
	require.Equal(t, float32(4), out.R[8])
}
