package jpegenc

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrKind identifies one of the fatal error categories the encoder can
// raise. All are terminal: there is no retry and no partial output is
// committed beyond whatever bytes already reached the sink.
type ErrKind int

const (
	ErrInputNotFound ErrKind = iota
	ErrInputUnreadable
	ErrOutputUnwritable
	ErrPPMMissingToken
	ErrPPMTokenUnparseable
	ErrPPMIncompletePixel
	ErrPPMSizeMismatch
	ErrHuffmanUnknownSymbol
	ErrSegmentWriteFailed
	ErrConfigInvalid
)

func (k ErrKind) String() string {
	switch k {
	case ErrInputNotFound:
		return "InputNotFound"
	case ErrInputUnreadable:
		return "InputUnreadable"
	case ErrOutputUnwritable:
		return "OutputUnwritable"
	case ErrPPMMissingToken:
		return "PPMMissingToken"
	case ErrPPMTokenUnparseable:
		return "PPMTokenUnparseable"
	case ErrPPMIncompletePixel:
		return "PPMIncompletePixel"
	case ErrPPMSizeMismatch:
		return "PPMSizeMismatch"
	case ErrHuffmanUnknownSymbol:
		return "HuffmanUnknownSymbol"
	case ErrSegmentWriteFailed:
		return "SegmentWriteFailed"
	case ErrConfigInvalid:
		return "ConfigInvalid"
	default:
		return "Unknown"
	}
}

// Error is the single error type the encoder raises. Kind identifies the
// stable, user-visible category; Detail names the failing segment or token.
type Error struct {
	Kind   ErrKind
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// NewError builds an *Error with the given kind and detail string.
func NewError(kind ErrKind, detail string) error {
	return &Error{Kind: kind, Detail: detail}
}

// Wrap attaches a stack trace to err at an I/O boundary while preserving the
// *Error kind for callers that inspect it with As.
func Wrap(err error, kind ErrKind, detail string) error {
	if err == nil {
		return nil
	}
	return errors.WithStack(&Error{Kind: kind, Detail: fmt.Sprintf("%s: %v", detail, err)})
}

// Kind reports the ErrKind carried by err, walking wrapped causes, or false
// if err does not originate from this package.
func Kind(err error) (ErrKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
