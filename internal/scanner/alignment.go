package scanner

import "unsafe"

// AlignedBuffer is a cache-line-aligned byte buffer, used for scratch
// storage that the classifier reads 8 bytes at a time; alignment avoids
// crossing a cache line on every other read on architectures that
// penalize unaligned loads.
type AlignedBuffer struct {
	data     []byte
	aligned  []byte
	capacity int
}

// NewAlignedBuffer allocates size bytes aligned to alignment, which
// should normally be the value klauspost/cpuid/v2 reports for the
// running CPU's cache line (see cacheLineSize below).
func NewAlignedBuffer(size int, alignment int) *AlignedBuffer {
	totalSize := size + alignment - 1
	data := make([]byte, totalSize)

	addr := uintptr(unsafe.Pointer(&data[0]))
	alignedAddr := (addr + uintptr(alignment-1)) &^ uintptr(alignment-1)
	offset := alignedAddr - addr

	return &AlignedBuffer{
		data:     data,
		aligned:  data[offset : uintptr(offset)+uintptr(size)],
		capacity: size,
	}
}

// Bytes returns the aligned byte slice.
func (ab *AlignedBuffer) Bytes() []byte {
	return ab.aligned
}

// Resize grows or shrinks the aligned view. Growing beyond the
// original capacity reallocates.
func (ab *AlignedBuffer) Resize(newSize int, alignment int) {
	if newSize <= ab.capacity {
		ab.aligned = ab.aligned[:newSize]
		return
	}
	*ab = *NewAlignedBuffer(newSize, alignment)
}

// cacheLineSize returns the running CPU's reported cache line size via
// klauspost/cpuid/v2, falling back to 64 (the common case, and the
// chunk width the classifier already uses) when the probe reports 0 on
// an unrecognized CPU.
func cacheLineSize() int {
	if n := cpuidCacheLine(); n > 0 {
		return n
	}
	return 64
}

// DefaultAlignment exposes cacheLineSize for callers that want to size
// their own AlignedBuffer to this machine's cache line.
func DefaultAlignment() int {
	return cacheLineSize()
}

// NewAlignedScratch allocates an input-sized AlignedBuffer using
// DefaultAlignment, for high-throughput callers who want to copy their
// input into cache-line-aligned storage before repeated FindStructural
// calls over overlapping windows.
func NewAlignedScratch(size int) *AlignedBuffer {
	return NewAlignedBuffer(size, DefaultAlignment())
}
