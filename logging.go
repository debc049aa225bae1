package jpegenc

import (
	"io"

	"github.com/rs/zerolog"
)

// NewLogger builds a zerolog.Logger writing to w. Callers inject the
// returned logger into Encode rather than relying on package-level
// global state (see Design Notes on replacing global logger construction
// with DI).
func NewLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}
