package jpegenc

// MCU is one minimum-coded-unit's worth of blocks: Hc·Vc luma blocks (in
// row-major order within the MCU) followed by one Cb block and one Cr
// block.
type MCU struct {
	Luma   []Block
	Cb, Cr Block
}

// InterleaveMCUs regroups independently-extracted luma/Cb/Cr block grids
// into MCU order. lumaBW/lumaBH are the luma block grid dimensions; hc/vc
// are the chroma decimation factors (P444: 1,1; P422: 2,1; P420: 2,2). The
// Cb/Cr grids must have dimensions lumaBW/hc by lumaBH/vc.
//
// For hc=vc=1 (P444) this degenerates to one luma block per MCU, i.e. a
// pass-through of the row-major grid. P422 groups two horizontally adjacent
// luma blocks per MCU, which still leaves the luma sequence in row-major
// order; only P420 (hc=vc=2) changes the luma block order.
func InterleaveMCUs(luma, cb, cr []Block, lumaBW, lumaBH, hc, vc int) []MCU {
	mcuW, mcuH := lumaBW/hc, lumaBH/vc
	mcus := make([]MCU, 0, mcuW*mcuH)
	for my := 0; my < mcuH; my++ {
		for mx := 0; mx < mcuW; mx++ {
			group := make([]Block, 0, hc*vc)
			for dy := 0; dy < vc; dy++ {
				for dx := 0; dx < hc; dx++ {
					bx, by := mx*hc+dx, my*vc+dy
					group = append(group, luma[by*lumaBW+bx])
				}
			}
			mcus = append(mcus, MCU{
				Luma: group,
				Cb:   cb[my*mcuW+mx],
				Cr:   cr[my*mcuW+mx],
			})
		}
	}
	return mcus
}
