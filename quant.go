package jpegenc

import "fmt"

// QuantTable is one 8×8 quantization table in natural (row-major) order —
// the order the table is applied in, before the categorizer's zig-zag scan.
type QuantTable [blockSize]uint16

// QuantPreset names one of the seven built-in (luma, chroma) table pairs.
type QuantPreset int

const (
	QuantSpecification QuantPreset = iota
	QuantFlat
	QuantMSSIMKodakTuned
	QuantPSNRHVSNKodakTuned
	QuantDCTunePerceptualOptimization
	QuantAVisualDetectionModel
	QuantAnImprovedDetectionModel
)

// ParseQuantPreset accepts the CLI spellings for each preset, including the
// short numeric/"spec"/"default" aliases used by the reference CLI this
// table layout is grounded on.
func ParseQuantPreset(s string) (QuantPreset, error) {
	switch s {
	case "specification", "spec", "default", "0":
		return QuantSpecification, nil
	case "flat", "1":
		return QuantFlat, nil
	case "mssim-kodak-tuned", "2":
		return QuantMSSIMKodakTuned, nil
	case "psnr-hvs-n-kodak-tuned", "3":
		return QuantPSNRHVSNKodakTuned, nil
	case "dctune-perceptual-optimization", "4":
		return QuantDCTunePerceptualOptimization, nil
	case "a-visual-detection-model", "5":
		return QuantAVisualDetectionModel, nil
	case "an-improved-detection-model", "6":
		return QuantAnImprovedDetectionModel, nil
	default:
		return 0, NewError(ErrConfigInvalid, fmt.Sprintf("unknown quantization table preset %q", s))
	}
}

// Tables returns the (luma, chroma) quantization table pair for the preset.
func (p QuantPreset) Tables() (luma, chroma QuantTable) {
	switch p {
	case QuantSpecification:
		return specLuma, specChroma
	case QuantFlat:
		return flatTable, flatTable
	case QuantMSSIMKodakTuned:
		return mssimLuma, mssimChroma
	case QuantPSNRHVSNKodakTuned:
		return psnrHvsNLuma, psnrHvsNChroma
	case QuantDCTunePerceptualOptimization:
		return dcTuneLuma, dcTuneChroma
	case QuantAVisualDetectionModel:
		return visualDetectionLuma, visualDetectionChroma
	case QuantAnImprovedDetectionModel:
		return improvedDetectionLuma, improvedDetectionChroma
	default:
		return specLuma, specChroma
	}
}

var specLuma = QuantTable{
	16, 11, 10, 16, 24, 40, 51, 61,
	12, 12, 14, 19, 26, 58, 60, 55,
	14, 13, 16, 24, 40, 57, 69, 56,
	14, 17, 22, 29, 51, 87, 80, 62,
	18, 22, 37, 56, 68, 109, 103, 77,
	24, 35, 55, 64, 81, 104, 113, 92,
	49, 64, 78, 87, 103, 121, 120, 101,
	72, 92, 95, 98, 112, 100, 103, 99,
}

var specChroma = QuantTable{
	17, 18, 24, 47, 99, 99, 99, 99,
	18, 21, 26, 66, 99, 99, 99, 99,
	24, 26, 56, 99, 99, 99, 99, 99,
	47, 66, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
}

var flatTable = QuantTable{
	16, 16, 16, 16, 16, 16, 16, 16,
	16, 16, 16, 16, 16, 16, 16, 16,
	16, 16, 16, 16, 16, 16, 16, 16,
	16, 16, 16, 16, 16, 16, 16, 16,
	16, 16, 16, 16, 16, 16, 16, 16,
	16, 16, 16, 16, 16, 16, 16, 16,
	16, 16, 16, 16, 16, 16, 16, 16,
	16, 16, 16, 16, 16, 16, 16, 16,
}

var mssimLuma = QuantTable{
	12, 17, 20, 21, 30, 34, 56, 63,
	18, 20, 20, 26, 28, 51, 61, 55,
	19, 20, 21, 26, 33, 58, 69, 55,
	26, 26, 26, 30, 46, 87, 86, 66,
	31, 33, 36, 40, 46, 96, 100, 73,
	40, 35, 46, 62, 81, 100, 111, 91,
	46, 66, 76, 86, 102, 121, 120, 101,
	68, 90, 90, 96, 113, 102, 105, 103,
}

var mssimChroma = QuantTable{
	8, 12, 15, 15, 86, 96, 96, 98,
	13, 13, 15, 26, 90, 96, 99, 98,
	12, 15, 18, 96, 99, 99, 99, 99,
	17, 16, 90, 96, 99, 99, 99, 99,
	96, 96, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
}

var psnrHvsNLuma = QuantTable{
	9, 10, 12, 14, 27, 32, 51, 62,
	11, 12, 14, 19, 27, 44, 59, 73,
	12, 14, 18, 25, 42, 59, 79, 78,
	17, 18, 25, 42, 61, 92, 87, 92,
	23, 28, 42, 75, 79, 112, 112, 99,
	40, 42, 59, 84, 88, 124, 132, 111,
	42, 64, 78, 95, 105, 126, 125, 99,
	70, 75, 100, 102, 116, 100, 107, 98,
}

var psnrHvsNChroma = QuantTable{
	9, 10, 17, 19, 62, 89, 91, 97,
	12, 13, 18, 29, 84, 91, 88, 98,
	14, 19, 29, 93, 95, 95, 98, 97,
	20, 26, 84, 88, 95, 95, 98, 94,
	26, 86, 91, 93, 97, 99, 98, 99,
	99, 100, 98, 99, 99, 99, 99, 99,
	99, 99, 99, 99, 99, 99, 99, 99,
	97, 97, 99, 99, 99, 99, 97, 99,
}

var dcTuneLuma = QuantTable{
	7, 8, 10, 14, 23, 44, 95, 241,
	8, 8, 11, 15, 25, 47, 102, 255,
	10, 11, 13, 19, 31, 58, 127, 255,
	14, 15, 19, 27, 44, 83, 181, 255,
	23, 25, 31, 44, 72, 136, 255, 255,
	44, 47, 58, 83, 136, 255, 255, 255,
	95, 102, 127, 181, 255, 255, 255, 255,
	241, 255, 255, 255, 255, 255, 255, 255,
}

var dcTuneChroma = dcTuneLuma

var visualDetectionLuma = QuantTable{
	15, 11, 11, 12, 15, 19, 25, 32,
	11, 13, 10, 10, 12, 15, 19, 24,
	11, 10, 14, 14, 16, 18, 22, 27,
	12, 10, 14, 18, 21, 24, 28, 33,
	15, 12, 16, 21, 26, 31, 36, 42,
	19, 15, 18, 24, 31, 38, 45, 53,
	25, 19, 22, 28, 36, 45, 55, 65,
	32, 24, 27, 33, 42, 53, 65, 77,
}

var visualDetectionChroma = visualDetectionLuma

var improvedDetectionLuma = QuantTable{
	14, 10, 11, 14, 19, 25, 34, 45,
	10, 11, 11, 12, 15, 20, 26, 33,
	11, 11, 15, 18, 21, 25, 31, 38,
	14, 12, 18, 24, 28, 33, 39, 47,
	19, 15, 21, 28, 36, 43, 51, 59,
	25, 20, 25, 33, 43, 54, 64, 74,
	34, 26, 31, 39, 51, 64, 77, 91,
	45, 33, 38, 47, 59, 74, 91, 108,
}

var improvedDetectionChroma = improvedDetectionLuma

// Quantize divides each DCT coefficient by its table entry, rounding to the
// nearest integer with ties away from zero, and returns the result as a
// FrequencyBlock.
func Quantize(b *Block, table *QuantTable) *FrequencyBlock {
	var out FrequencyBlock
	for i, v := range b {
		q := float64(table[i])
		out[i] = int16(roundHalfAwayFromZero(float64(v) / q))
	}
	return &out
}

func roundHalfAwayFromZero(v float64) float64 {
	if v >= 0 {
		return float64(int64(v + 0.5))
	}
	return float64(int64(v - 0.5))
}
