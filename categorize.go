package jpegenc

// Category returns the JPEG category (bit length) of v and its magnitude
// bits: for v>0 the low `category` bits of v itself; for v<0 the low
// `category` bits of v-1 (equivalently, the one's complement of |v|).
// category(0) is 0 with no magnitude bits.
func Category(v int32) (category uint8, magnitude uint16) {
	av := v
	if av < 0 {
		av = -av
	}
	for av != 0 {
		category++
		av >>= 1
	}
	if category == 0 {
		return 0, 0
	}
	if v >= 0 {
		magnitude = uint16(v) & uint16(1<<category-1)
	} else {
		magnitude = uint16(v-1) & uint16(1<<category-1)
	}
	return category, magnitude
}

// Uncategorize inverts Category: given a category and its magnitude bits,
// recovers the signed coefficient. Used only by bijection tests.
func Uncategorize(category uint8, magnitude uint16) int32 {
	if category == 0 {
		return 0
	}
	half := int32(1) << (category - 1)
	m := int32(magnitude)
	if m < half {
		return m - (int32(1)<<category - 1)
	}
	return m
}

// ACToken is one run-length/category pair in a block's AC coefficient
// stream: (count of preceding zeros, category of the non-zero value that
// follows), or (0,0) for end-of-block, or (15,0) for a 16-zero run (ZRL).
type ACToken struct {
	Run      uint8
	Category uint8
	Mag      uint16
}

// CategorizedBlock is one block's categorizer output: the DC symbol (a
// category) and magnitude bits, plus the AC token stream.
type CategorizedBlock struct {
	DCCategory uint8
	DCMag      uint16
	AC         []ACToken
}

// CategorizeBlock implements §4.6: DC differential against prevDC, then a
// zig-zag AC scan emitting (run,category) pairs with ZRL for runs ≥16 and a
// trailing EOB whenever nonzero coefficients don't reach position 63.
func CategorizeBlock(b *FrequencyBlock, prevDC int16) (cb CategorizedBlock, dc int16) {
	dc = b[0]
	diff := int32(dc) - int32(prevDC)
	cb.DCCategory, cb.DCMag = Category(diff)

	zz := b.ZigZag()
	cb.AC = CategorizeACRun(zz[1:])
	return cb, dc
}

// CategorizeACRun implements the AC half of §4.6 directly over a zig-zag
// ordered coefficient stream (positions 1..63, DC excluded): ZRL for zero
// runs ≥16, (run,category) for each non-zero value, and a trailing EOB
// unless the run count lands exactly on the last position.
func CategorizeACRun(coeffs []int16) []ACToken {
	var ac []ACToken
	zeros := 0
	for _, v := range coeffs {
		if v == 0 {
			zeros++
			continue
		}
		for zeros >= 16 {
			ac = append(ac, ACToken{Run: 15, Category: 0})
			zeros -= 16
		}
		cat, mag := Category(int32(v))
		ac = append(ac, ACToken{Run: uint8(zeros), Category: cat, Mag: mag})
		zeros = 0
	}
	if zeros > 0 {
		ac = append(ac, ACToken{Run: 0, Category: 0})
	}
	if len(ac) == 0 {
		ac = append(ac, ACToken{Run: 0, Category: 0})
	}
	return ac
}

// CategorizeComponent runs CategorizeBlock over a whole per-component block
// stream in MCU-consumption order, threading the DC differential between
// blocks (first block's previous DC is 0, per §4.6).
func CategorizeComponent(blocks []*FrequencyBlock) []CategorizedBlock {
	out := make([]CategorizedBlock, len(blocks))
	var prevDC int16
	for i, b := range blocks {
		var cb CategorizedBlock
		cb, prevDC = CategorizeBlock(b, prevDC)
		out[i] = cb
	}
	return out
}
