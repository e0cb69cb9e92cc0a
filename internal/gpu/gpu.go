// Package gpu implements a "GPU-style" backend on a bounded goroutine
// pool, split into the kernels a compute-shader backend would dispatch:
// classify (into a quote bitmap), string-mask, extract, and newline
// finding. Classification and string masking run one goroutine per
// 64-byte chunk; escape-carry resolution and structural extraction walk
// the chunks in index order on the calling goroutine.
package gpu

import (
	"context"
	"math/bits"

	"golang.org/x/sync/errgroup"

	"github.com/aeroniemi/stage1json/internal/scanner"
)

const chunkSize = 64

// maxWorkers bounds the goroutine pool to avoid unbounded scheduling
// overhead on very large inputs.
const maxWorkers = 32

// Context is the GPU-style backend handle, an opaque device handle
// standing in for a real accelerator's.
type Context struct {
	deviceName string
}

// New constructs a GPU-style context. It cannot fail in this
// implementation (there is no real device to initialize), but returns
// an error so callers write the same fallback-to-CPU code they would
// need for a real accelerator.
func New() (*Context, error) {
	return &Context{deviceName: "goroutine-pool"}, nil
}

// Close releases g. No resources are held in this implementation.
func (g *Context) Close() {}

// DeviceName reports the backend identity.
func (g *Context) DeviceName() string {
	return g.deviceName
}

// HasPipeline reports whether the accelerated string-mask pipeline is
// available. It always returns true here: the goroutine backend has no
// partial-capability mode.
func (g *Context) HasPipeline() bool {
	return true
}

func numChunks(n int) int {
	return (n + chunkSize - 1) / chunkSize
}

func chunkBounds(input []byte, i int) (start, end int) {
	start = i * chunkSize
	end = start + chunkSize
	if end > len(input) {
		end = len(input)
	}
	return start, end
}

// chunkMasks holds one chunk's classification result. The last chunk
// may be short; bits at or beyond its length are always zero.
type chunkMasks struct {
	structural uint64
	quote      uint64
	backslash  uint64
}

func classifyAll(input []byte) []chunkMasks {
	n := numChunks(len(input))
	out := make([]chunkMasks, n)

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(maxWorkers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			start, end := chunkBounds(input, i)
			var window [chunkSize]byte
			copy(window[:], input[start:end])
			s, q, b := scanner.ClassifyChunk64(&window)
			out[i] = chunkMasks{structural: s, quote: q, backslash: b}
			return nil
		})
	}
	_ = g.Wait() // no fallible step in this kernel
	return out
}

// CreateQuoteBitmap classifies input and resolves escape carries,
// producing one unescaped-quote bitmap per chunk (quoteBits) and, for
// each chunk, the string-mask carry-in parity needed to turn that
// bitmap into an in-string mask (quoteCarry). The backslash-run carry
// between chunks is inherently sequential, so this phase classifies in
// parallel (phase A) then resolves carries with a single sequential
// pass (phase B).
func (g *Context) CreateQuoteBitmap(input []byte) (quoteBits []uint64, quoteCarry []uint8, err error) {
	if input == nil {
		return nil, nil, ErrNilInput
	}
	if len(input) == 0 {
		return nil, nil, ErrEmptyInput
	}

	masks := classifyAll(input)
	n := len(masks)
	quoteBits = make([]uint64, n)
	quoteCarry = make([]uint8, n)

	var bsCarry, strCarryIn bool
	for i := 0; i < n; i++ {
		escaped, newBsCarry := scanner.EscapeCarry(masks[i].backslash, bsCarry)
		unescaped := masks[i].quote &^ escaped
		bsCarry = newBsCarry

		quoteBits[i] = unescaped
		if strCarryIn {
			quoteCarry[i] = 1
		}
		strCarryIn = nextParity(strCarryIn, unescaped)
	}
	return quoteBits, quoteCarry, nil
}

func nextParity(carry bool, mask uint64) bool {
	if bits.OnesCount64(mask)%2 == 1 {
		return !carry
	}
	return carry
}

// CreateStringMask converts quoteBits in place into an in-string mask
// per chunk, using quoteCarry as each chunk's carry-in. Each chunk's
// carry-in is already known, so this phase runs fully in parallel.
func (g *Context) CreateStringMask(quoteBits []uint64, quoteCarry []uint8) error {
	if quoteBits == nil || quoteCarry == nil {
		return ErrNilInput
	}
	if len(quoteBits) != len(quoteCarry) {
		return ErrMismatchedLength
	}

	eg, _ := errgroup.WithContext(context.Background())
	eg.SetLimit(maxWorkers)
	for i := range quoteBits {
		i := i
		eg.Go(func() error {
			inStr, _ := scanner.MaskStrings(quoteBits[i], quoteCarry[i] != 0)
			quoteBits[i] = inStr
			return nil
		})
	}
	return eg.Wait()
}

// ExtractStructural writes the structural positions/characters of
// input given its already-computed string mask. CreateStringMask
// overwrites its input array in place with the mask, so the original
// unescaped-quote bits are gone by the time this runs; it re-derives
// them by re-running the classify and escape-carry phases.
func (g *Context) ExtractStructural(input []byte, stringMask []uint64, positions []uint32, characters []byte) (int, error) {
	if input == nil || stringMask == nil || positions == nil || characters == nil {
		return 0, ErrNilInput
	}
	if len(input) == 0 {
		return 0, ErrEmptyInput
	}
	quoteBits, _, err := g.CreateQuoteBitmap(input)
	if err != nil {
		return 0, err
	}
	if len(quoteBits) != len(stringMask) {
		return 0, ErrMismatchedLength
	}

	masks := classifyAll(input)
	written := 0
	for i, m := range masks {
		start, _ := chunkBounds(input, i)
		filtered := (m.structural &^ stringMask[i]) | quoteBits[i]
		for filtered != 0 {
			k := bits.TrailingZeros64(filtered)
			filtered &= filtered - 1
			if written >= len(positions) || written >= len(characters) {
				return written, &TruncationError{Count: written}
			}
			pos := start + k
			positions[written] = uint32(pos)
			characters[written] = input[pos]
			written++
		}
	}
	return written, nil
}

// FindNewlines returns one bitmask per chunk with bits set at '\n'
// positions.
func (g *Context) FindNewlines(input []byte) ([]uint64, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}
	return scanner.FindNewlineBits(input), nil
}

// FullStage1 runs the complete pipeline without exposing the
// intermediate arrays, keeping the unescaped-quote bitmap in memory
// across phases instead of recomputing it the way the standalone
// ExtractStructural above must.
func (g *Context) FullStage1(input []byte, positions []uint32, characters []byte) (int, error) {
	if input == nil || positions == nil || characters == nil {
		return 0, ErrNilInput
	}
	if len(input) == 0 {
		return 0, ErrEmptyInput
	}

	quoteBits, quoteCarry, err := g.CreateQuoteBitmap(input)
	if err != nil {
		return 0, err
	}
	masks := classifyAll(input)

	stringMask := make([]uint64, len(quoteBits))
	eg, _ := errgroup.WithContext(context.Background())
	eg.SetLimit(maxWorkers)
	for i := range quoteBits {
		i := i
		eg.Go(func() error {
			inStr, _ := scanner.MaskStrings(quoteBits[i], quoteCarry[i] != 0)
			stringMask[i] = inStr
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	written := 0
	for i, m := range masks {
		start, _ := chunkBounds(input, i)
		filtered := (m.structural &^ stringMask[i]) | quoteBits[i]
		for filtered != 0 {
			k := bits.TrailingZeros64(filtered)
			filtered &= filtered - 1
			if written >= len(positions) || written >= len(characters) {
				return written, &TruncationError{Count: written}
			}
			pos := start + k
			positions[written] = uint32(pos)
			characters[written] = input[pos]
			written++
		}
	}
	return written, nil
}
