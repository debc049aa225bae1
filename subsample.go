package jpegenc

import "fmt"

// SubsamplingMethod selects how a chroma decimation cell collapses to one
// output sample.
type SubsamplingMethod int

const (
	MethodSkip SubsamplingMethod = iota
	MethodAverage
)

// SubsamplingPreset is one of the three chroma layouts the encoder supports.
type SubsamplingPreset int

const (
	P444 SubsamplingPreset = iota
	P422
	P420
)

// ParseSubsamplingPreset accepts the CLI spellings for each preset.
func ParseSubsamplingPreset(s string) (SubsamplingPreset, error) {
	switch s {
	case "P444", "444":
		return P444, nil
	case "P422", "422":
		return P422, nil
	case "P420", "420":
		return P420, nil
	default:
		return 0, NewError(ErrConfigInvalid, fmt.Sprintf("unknown chroma subsampling preset %q", s))
	}
}

func (p SubsamplingPreset) String() string {
	switch p {
	case P444:
		return "P444"
	case P422:
		return "P422"
	case P420:
		return "P420"
	default:
		return "unknown"
	}
}

// ChromaRates returns (Hc, Vc), the horizontal/vertical chroma decimation
// factors, and the method used to collapse each decimation cell.
func (p SubsamplingPreset) ChromaRates() (hc, vc int, method SubsamplingMethod) {
	switch p {
	case P444:
		return 1, 1, MethodSkip
	case P422:
		return 2, 1, MethodAverage
	case P420:
		return 2, 2, MethodAverage
	default:
		return 1, 1, MethodSkip
	}
}

// MCUBlockDimensions returns the pixel width/height of one MCU: 8·Hc by
// 8·Vc, since the luma sampling factor equals the chroma decimation factor.
func (p SubsamplingPreset) MCUBlockDimensions() (w, h int) {
	hc, vc, _ := p.ChromaRates()
	return 8 * hc, 8 * vc
}

// LumaBlocksPerMCU returns Hy·Vy, the count of luma blocks in one MCU.
func (p SubsamplingPreset) LumaBlocksPerMCU() int {
	hc, vc, _ := p.ChromaRates()
	return hc * vc
}

func clampIndex(i, last int) int {
	if i > last {
		return last
	}
	return i
}

// Subsample resamples a width×height plane by the given decimation rates and
// method, returning a new plane of ceil(width/hc)×ceil(height/vc) samples.
// Average cells whose rate window runs past the source edge repeat
// (edge-clamp) the last in-range row/column rather than wrapping or
// shrinking the window — the simplest well-defined policy given the JPEG
// standard does not mandate one.
func Subsample(data []float32, width, height, hc, vc int, method SubsamplingMethod) (out []float32, outWidth, outHeight int) {
	outWidth = (width + hc - 1) / hc
	outHeight = (height + vc - 1) / vc
	out = make([]float32, outWidth*outHeight)
	lastX, lastY := width-1, height-1
	for j := 0; j < outHeight; j++ {
		for i := 0; i < outWidth; i++ {
			var v float32
			switch method {
			case MethodSkip:
				x := clampIndex(i*hc, lastX)
				y := clampIndex(j*vc, lastY)
				v = data[y*width+x]
			case MethodAverage:
				var sum float32
				count := 0
				for dy := 0; dy < vc; dy++ {
					y := clampIndex(j*vc+dy, lastY)
					for dx := 0; dx < hc; dx++ {
						x := clampIndex(i*hc+dx, lastX)
						sum += data[y*width+x]
						count++
					}
				}
				v = sum / float32(count)
			}
			out[j*outWidth+i] = v
		}
	}
	return out, outWidth, outHeight
}
