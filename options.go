package jpegenc

import (
	"fmt"
	"runtime"
)

// Options configures one encode run. Built from CLI flags (see
// cmd/jpegenc) and validated once before the pipeline starts.
type Options struct {
	BitsPerChannel int
	Subsampling    SubsamplingPreset
	Quantization   QuantPreset
	Threads        int
}

// DefaultOptions returns the CLI's documented defaults: 8 bits/channel,
// P420 chroma subsampling, the Specification quantization tables, and one
// worker per available core.
func DefaultOptions() Options {
	return Options{
		BitsPerChannel: 8,
		Subsampling:    P420,
		Quantization:   QuantSpecification,
		Threads:        runtime.GOMAXPROCS(0),
	}
}

// Validate rejects unsupported combinations. Only 8 bits/channel is
// implemented; 16 and 32 are accepted by the flag parser but rejected here.
func (o Options) Validate() error {
	if o.BitsPerChannel != 8 {
		return NewError(ErrConfigInvalid, fmt.Sprintf("bits-per-channel=%d not implemented (only 8)", o.BitsPerChannel))
	}
	if o.Threads < 1 {
		return NewError(ErrConfigInvalid, fmt.Sprintf("threads=%d must be >= 1", o.Threads))
	}
	return nil
}
