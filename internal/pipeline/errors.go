package pipeline

import (
	"errors"
	"fmt"

	"golang.org/x/text/transform"

	"github.com/talgya/logos-dual/internal/align"
)

// Kind classifies a pipeline failure.
type Kind int

const (
	// KindIO covers opening, reading, writing and closing files.
	KindIO Kind = iota
	// KindEncoding covers failures inside the text decoding stage. The
	// decoders drop invalid bytes and never hold back more than a partial
	// rune or a trailing "\r", so real input does not produce this kind.
	KindEncoding
	// KindDomain covers arithmetic that left the real domain.
	KindDomain
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindEncoding:
		return "encoding"
	case KindDomain:
		return "domain"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a failure that aborted a pipeline run.
type Error struct {
	Kind  Kind
	Op    string
	Chunk int // 0-based chunk index, -1 when no chunk was involved
	Err   error
}

func (e *Error) Error() string {
	if e.Chunk >= 0 {
		return fmt.Sprintf("%s error: %s chunk %d: %v", e.Kind, e.Op, e.Chunk, e.Err)
	}
	return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func ioError(op string, chunk int, err error) *Error {
	return &Error{Kind: KindIO, Op: op, Chunk: chunk, Err: err}
}

// classify picks the kind for an error raised while computing a chunk.
func classify(op string, chunk int, err error) *Error {
	var de *align.DomainError
	if errors.As(err, &de) {
		return &Error{Kind: KindDomain, Op: op, Chunk: chunk, Err: err}
	}
	return ioError(op, chunk, err)
}

// readError picks the kind for an error raised while filling a chunk.
func readError(chunk int, err error) *Error {
	if errors.Is(err, transform.ErrShortSrc) || errors.Is(err, transform.ErrShortDst) {
		return &Error{Kind: KindEncoding, Op: "decode", Chunk: chunk, Err: err}
	}
	return ioError("read", chunk, err)
}

// IsKind reports whether err is a pipeline Error of kind k.
func IsKind(err error, k Kind) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.Kind == k
}
