// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jpegenc

// RGBPlane holds one decoded image as three same-sized row-major planes of
// samples in [0,255].
type RGBPlane struct {
	Width, Height int
	R, G, B       []float32
}

// YCbCrPlane holds the BT.601 color-transformed result, still row-major,
// still width×height per channel. Luma is not yet level-shifted; that
// happens immediately before the DCT (see dct.go).
type YCbCrPlane struct {
	Width, Height int
	Y, Cb, Cr     []float32
}

// ToYCbCr converts an RGB plane to YCbCr using the BT.601 coefficients from
// the JPEG specification:
//
//	Y  =  0.2990·R + 0.5870·G + 0.1140·B
//	Cb = −0.1687·R − 0.3313·G + 0.5000·B + 128
//	Cr =  0.5000·R − 0.4187·G − 0.0813·B + 128
func ToYCbCr(p *RGBPlane) *YCbCrPlane {
	n := p.Width * p.Height
	out := &YCbCrPlane{
		Width:  p.Width,
		Height: p.Height,
		Y:      make([]float32, n),
		Cb:     make([]float32, n),
		Cr:     make([]float32, n),
	}
	for i := 0; i < n; i++ {
		r, g, b := p.R[i], p.G[i], p.B[i]
		out.Y[i] = 0.2990*r + 0.5870*g + 0.1140*b
		out.Cb[i] = -0.1687*r - 0.3313*g + 0.5000*b + 128
		out.Cr[i] = 0.5000*r - 0.4187*g - 0.0813*b + 128
	}
	return out
}
