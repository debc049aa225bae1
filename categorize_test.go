package jpegenc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategoryScenarioS3(t *testing.T) {
	cat, mag := Category(57)
	require.Equal(t, uint8(6), cat)
	require.Equal(t, uint16(0b111001), mag)

	cat, mag = Category(-30)
	require.Equal(t, uint8(5), cat)
	require.Equal(t, uint16(0b00001), mag)

	cat, mag = Category(0)
	require.Equal(t, uint8(0), cat)
	require.Equal(t, uint16(0), mag)
}

func TestCategoryBijection(t *testing.T) {
	for _, v := range []int32{1, -1, 2, -2, 57, -30, 16, -16, 32767, -32767, 1000, -1000} {
		cat, mag := Category(v)
		got := Uncategorize(cat, mag)
		require.Equal(t, v, got, "v=%d", v)
	}
}

func TestCategoryBijectionExhaustiveSmallRange(t *testing.T) {
	for v := int32(-2000); v <= 2000; v++ {
		cat, mag := Category(v)
		require.Equal(t, v, Uncategorize(cat, mag), "v=%d", v)
	}
}

func TestACRunLengthScenarioS4(t *testing.T) {
	coeffs := make([]int16, 0, 63)
	vals := []int16{57, 45, 0, 0, 0, 0, 23, 0, -30, -16}
	coeffs = append(coeffs, vals...)
	for i := 0; i < 19; i++ {
		coeffs = append(coeffs, 0)
	}
	coeffs = append(coeffs, 1, 0)

	got := CategorizeACRun(coeffs)

	cat57, mag57 := Category(57)
	cat45, mag45 := Category(45)
	cat23, mag23 := Category(23)
	catNeg30, magNeg30 := Category(-30)
	catNeg16, magNeg16 := Category(-16)
	cat1, mag1 := Category(1)

	want := []ACToken{
		{Run: 0, Category: cat57, Mag: mag57},
		{Run: 0, Category: cat45, Mag: mag45},
		{Run: 4, Category: cat23, Mag: mag23},
		{Run: 1, Category: catNeg30, Mag: magNeg30},
		{Run: 0, Category: catNeg16, Mag: magNeg16},
		{Run: 15, Category: 0, Mag: 0},
		{Run: 3, Category: cat1, Mag: mag1},
		{Run: 0, Category: 0, Mag: 0},
	}
	require.Equal(t, want, got)
}

func TestCategorizeBlockDCDifferential(t *testing.T) {
	var fb FrequencyBlock
	fb[0] = 10
	cb, dc := CategorizeBlock(&fb, 4)
	require.Equal(t, int16(10), dc)
	wantCat, wantMag := Category(6) // 10 - 4
	require.Equal(t, wantCat, cb.DCCategory)
	require.Equal(t, wantMag, cb.DCMag)
}

func TestCategorizeComponentThreadsDC(t *testing.T) {
	var fb1, fb2 FrequencyBlock
	fb1[0] = 5
	fb2[0] = 8
	out := CategorizeComponent([]*FrequencyBlock{&fb1, &fb2})
	require.Len(t, out, 2)
	cat0, _ := Category(5) // first block's previous DC is 0
	cat1, _ := Category(3) // 8 - 5
	require.Equal(t, cat0, out[0].DCCategory)
	require.Equal(t, cat1, out[1].DCCategory)
}

func TestCategoryAllZeroBlockEmitsOnlyEOB(t *testing.T) {
	coeffs := make([]int16, 63)
	got := CategorizeACRun(coeffs)
	require.Equal(t, []ACToken{{Run: 0, Category: 0, Mag: 0}}, got)
}

func TestCategoryBitLengthMatchesLog2(t *testing.T) {
	for v := int32(1); v < 1<<14; v *= 3 {
		cat, _ := Category(v)
		require.Equal(t, int(math.Floor(math.Log2(float64(v))))+1, int(cat))
	}
}
