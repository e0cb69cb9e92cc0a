package stage1json

import "github.com/aeroniemi/stage1json/internal/gpu"

// GPUContext exposes the goroutine-pool GPU-style backend's individual
// kernels directly, for callers that want to pipeline the phases
// themselves (for example, to reuse a quote bitmap across a
// string-mask recomputation) rather than calling FullStage1 through a
// Context.
type GPUContext struct {
	inner *gpu.Context
}

// NewGPUContext constructs a GPUContext, returning ErrGPUUnavailable on
// failure.
func NewGPUContext() (*GPUContext, error) {
	inner, err := gpu.New()
	if err != nil {
		return nil, ErrGPUUnavailable
	}
	return &GPUContext{inner: inner}, nil
}

// Close releases g's resources.
func (g *GPUContext) Close() {
	g.inner.Close()
}

// DeviceName reports the backend identity.
func (g *GPUContext) DeviceName() string {
	return g.inner.DeviceName()
}

// HasPipeline reports whether the accelerated string-mask pipeline is
// available.
func (g *GPUContext) HasPipeline() bool {
	return g.inner.HasPipeline()
}

// CreateQuoteBitmap classifies input and resolves escape carries into
// one unescaped-quote bitmap per chunk, plus each chunk's string-mask
// carry-in parity.
func (g *GPUContext) CreateQuoteBitmap(input []byte) ([]uint64, []uint8, error) {
	quoteBits, quoteCarry, err := g.inner.CreateQuoteBitmap(input)
	return quoteBits, quoteCarry, translateGPUErr(err)
}

// CreateStringMask converts quoteBits in place into an in-string mask
// per chunk using quoteCarry.
func (g *GPUContext) CreateStringMask(quoteBits []uint64, quoteCarry []uint8) error {
	return translateGPUErr(g.inner.CreateStringMask(quoteBits, quoteCarry))
}

// ExtractStructural writes the structural positions/characters of
// input given its string mask.
func (g *GPUContext) ExtractStructural(input []byte, stringMask []uint64, positions []uint32, characters []byte) (int, error) {
	n, err := g.inner.ExtractStructural(input, stringMask, positions, characters)
	return n, translateGPUErr(err)
}

// FindNewlines returns one bitmask per chunk with bits set at '\n'
// positions.
func (g *GPUContext) FindNewlines(input []byte) ([]uint64, error) {
	bitsPerChunk, err := g.inner.FindNewlines(input)
	return bitsPerChunk, translateGPUErr(err)
}

// FullStage1 runs the complete pipeline in one call.
func (g *GPUContext) FullStage1(input []byte, positions []uint32, characters []byte) (int, error) {
	n, err := g.inner.FullStage1(input, positions, characters)
	return n, translateGPUErr(err)
}
