package scanner

// FindStructural runs the full Stage-1 pipeline over input: classify,
// escape-analyze, string-mask and extract, chunk by chunk, threading
// backslash-run and in-string carry state across 64-byte windows, then
// finishing with a scalar tail pass for input whose length is not a
// multiple of 64. It writes into positions/characters in input order
// and returns the number of structural bytes found. If the outputs are
// too small to hold every structural byte, it stops at the point of
// exhaustion and returns that partial count together with truncated=true.
func FindStructural(input []byte, positions []uint32, characters []byte) (count int, truncated bool, err error) {
	if input == nil || positions == nil || characters == nil {
		return 0, false, ErrNilArgument
	}
	if len(input) == 0 {
		return 0, false, ErrEmptyInput
	}

	n := len(input)
	full := n / 64

	var bsCarry, strCarry bool
	written := 0

	for i := 0; i < full; i++ {
		base := i * 64
		window := (*[64]byte)(input[base : base+64])
		structural, quote, backslash := classifyChunk64(window)

		escaped, newBsCarry := escapeCarry(backslash, bsCarry)
		unescapedQuotes := quote &^ escaped
		inStr, newStrCarry := maskStrings(unescapedQuotes, strCarry)
		bsCarry, strCarry = newBsCarry, newStrCarry

		filtered := filterStructural(structural, inStr, unescapedQuotes)

		n, ok := emitPositions(filtered, base, input, positions, characters, written)
		written += n
		if !ok {
			return written, true, nil
		}
	}

	tailWritten, tailTruncated := scalarTail(input, full*64, bsCarry, strCarry, positions, characters, written)
	written += tailWritten
	return written, tailTruncated, nil
}

// Context is a reusable CPU-backend handle. It owns no OS resources, but
// gives callers one long-lived handle per goroutine, matching the shape
// a GPU-style backend requires. Not safe for concurrent use.
type Context struct {
	aligned *AlignedBuffer
}

// NewContext returns a ready-to-use CPU backend context.
func NewContext() *Context {
	return &Context{}
}

// Close releases the context's scratch buffers. Safe to call once; the
// context must not be used afterwards.
func (c *Context) Close() {
	c.aligned = nil
}

// FindStructural runs the Stage-1 pipeline using c's context, matching
// the package-level function of the same name.
func (c *Context) FindStructural(input []byte, positions []uint32, characters []byte) (int, bool, error) {
	return FindStructural(input, positions, characters)
}

// FindStructuralAligned behaves like FindStructural but first copies
// input into a reusable cache-line-aligned scratch buffer, for callers
// making many repeated calls against freshly allocated (and therefore
// arbitrarily aligned) byte slices.
func (c *Context) FindStructuralAligned(input []byte, positions []uint32, characters []byte) (int, bool, error) {
	if c.aligned == nil || len(c.aligned.Bytes()) < len(input) {
		c.aligned = NewAlignedScratch(len(input))
	} else {
		c.aligned.Resize(len(input), DefaultAlignment())
	}
	copy(c.aligned.Bytes(), input)
	return FindStructural(c.aligned.Bytes(), positions, characters)
}

// Backend reports a short diagnostic string identifying this backend
// and the CPU features detected for it, the CPU-side analogue of the
// GPU backend's DeviceName.
func (c *Context) Backend() string {
	return backendString()
}

// IsAvailable reports whether the CPU backend can run. It always
// returns true: the classifier is pure Go with no hardware dependency,
// so unlike the GPU-style backend there is no failure mode to report.
func IsAvailable() bool {
	return true
}
