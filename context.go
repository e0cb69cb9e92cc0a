// Package stage1json implements Stage 1 of a two-stage JSON parser:
// chunk classification, escape analysis, string-region masking and
// structural extraction over a byte buffer, without materializing any
// JSON values. Stage 2 (value decoding) is out of scope for this
// module.
package stage1json

import (
	"github.com/aeroniemi/stage1json/internal/gpu"
	"github.com/aeroniemi/stage1json/internal/scanner"
)

// Context is a reusable Stage-1 backend handle. It is not safe for
// concurrent use by multiple goroutines; callers needing concurrency
// should use one Context per goroutine.
type Context struct {
	cfg config
	cpu *scanner.Context
	gpu *gpu.Context
}

// NewContext constructs a Context. With no options it uses the CPU
// backend; WithBackend(BackendGPU) additionally initializes the
// goroutine-pool GPU-style backend, returning ErrGPUUnavailable if that
// fails (it does not fail in this implementation, but the option is
// wired the way a real accelerator would require).
func NewContext(opts ...Option) (*Context, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	c := &Context{cfg: cfg, cpu: scanner.NewContext()}
	if cfg.backend == BackendGPU {
		g, err := gpu.New()
		if err != nil {
			return nil, ErrGPUUnavailable
		}
		c.gpu = g
	}
	return c, nil
}

// Close releases c's resources. Safe to call once.
func (c *Context) Close() {
	c.cpu.Close()
	if c.gpu != nil {
		c.gpu.Close()
		c.gpu = nil
	}
}

// FindStructural writes the structural byte positions and characters of
// input into positions/characters (which must have equal, sufficient
// length) and returns the number written. If the buffers are too small
// to hold every structural byte, it returns the partial count and a
// *TruncationError.
func (c *Context) FindStructural(input []byte, positions []uint32, characters []byte) (int, error) {
	if c.gpu != nil {
		n, err := c.gpu.FullStage1(input, positions, characters)
		if err != nil {
			return n, translateGPUErr(err)
		}
		return n, nil
	}

	n, truncated, err := c.cpu.FindStructural(input, positions, characters)
	if err != nil {
		return 0, translateScannerErr(err)
	}
	if truncated {
		return n, &TruncationError{Count: n}
	}
	return n, nil
}

// FindStructuralPooled behaves like FindStructural but allocates no
// output buffers itself: it borrows a pooled Scratch pair sized to
// len(input), runs the pipeline, and returns freshly sized copies of
// just the entries written. Useful for callers issuing many short-lived
// calls who would otherwise allocate a full input-sized pair each time.
func (c *Context) FindStructuralPooled(input []byte) (positions []uint32, characters []byte, err error) {
	scratch := scanner.GetScratch(len(input))
	defer scanner.PutScratch(scratch)

	n, err := c.FindStructural(input, scratch.Positions, scratch.Characters)
	if err != nil {
		if _, truncated := err.(*TruncationError); !truncated {
			return nil, nil, err
		}
	}

	positions = make([]uint32, n)
	characters = make([]byte, n)
	copy(positions, scratch.Positions[:n])
	copy(characters, scratch.Characters[:n])
	return positions, characters, err
}

// Backend reports a short diagnostic string identifying the backend
// this context resolved to.
func (c *Context) Backend() string {
	if c.gpu != nil {
		return c.gpu.DeviceName()
	}
	return c.cpu.Backend()
}

// Classify writes one classification code per input byte into out.
func Classify(input []byte, out []byte) error {
	return translateScannerErr(scanner.Classify(input, out))
}

// Classification codes returned by Classify, re-exported from the
// internal scanner package.
const (
	CodeWhitespace   = scanner.CodeWhitespace
	CodeBraceOpen    = scanner.CodeBraceOpen
	CodeBraceClose   = scanner.CodeBraceClose
	CodeBracketOpen  = scanner.CodeBracketOpen
	CodeBracketClose = scanner.CodeBracketClose
	CodeQuote        = scanner.CodeQuote
	CodeColon        = scanner.CodeColon
	CodeComma        = scanner.CodeComma
	CodeBackslash    = scanner.CodeBackslash
	CodeOther        = scanner.CodeOther
)

// ClassifyVariant selects between the scalar and windowed classification
// strategies.
type ClassifyVariant = scanner.ClassifyVariant

const (
	ClassifyScalar   = scanner.ClassifyScalar
	ClassifyWindowed = scanner.ClassifyWindowed
)

// ClassifyWithVariant is the explicit-kernel-selection counterpart of
// Classify.
func ClassifyWithVariant(input []byte, out []byte, variant ClassifyVariant) error {
	return translateScannerErr(scanner.ClassifyWithVariant(input, out, variant))
}

// IsAvailable reports whether the CPU backend can run. It always
// returns true.
func IsAvailable() bool {
	return scanner.IsAvailable()
}

func translateScannerErr(err error) error {
	switch err {
	case nil:
		return nil
	case scanner.ErrNilArgument:
		return ErrNilInput
	case scanner.ErrEmptyInput:
		return ErrEmptyInput
	case scanner.ErrOutputTooSmall:
		return ErrNilOutput
	default:
		return err
	}
}

func translateGPUErr(err error) error {
	switch err {
	case nil:
		return nil
	case gpu.ErrNilInput:
		return ErrNilInput
	case gpu.ErrEmptyInput:
		return ErrEmptyInput
	}
	if tErr, ok := err.(*gpu.TruncationError); ok {
		return &TruncationError{Count: tErr.Count}
	}
	return err
}
