package scanner

import "sync"

// scratchPool recycles the position/character output pairs that
// FindStructural callers typically allocate per call.
var scratchPool = sync.Pool{
	New: func() interface{} {
		return &Scratch{
			Positions:  make([]uint32, 0, 4096),
			Characters: make([]byte, 0, 4096),
		}
	},
}

// Scratch bundles the two output buffers FindStructural writes into. It
// is not tied to Context; the root package's FindStructuralPooled
// borrows one per call.
type Scratch struct {
	Positions  []uint32
	Characters []byte
}

// GetScratch returns a pooled Scratch sized to at least capacity
// entries in both buffers.
func GetScratch(capacity int) *Scratch {
	s := scratchPool.Get().(*Scratch)
	if cap(s.Positions) < capacity {
		s.Positions = make([]uint32, capacity)
	} else {
		s.Positions = s.Positions[:capacity]
	}
	if cap(s.Characters) < capacity {
		s.Characters = make([]byte, capacity)
	} else {
		s.Characters = s.Characters[:capacity]
	}
	return s
}

// PutScratch returns s to the pool. Very large scratch buffers are
// dropped rather than pooled, to avoid holding onto abnormally sized
// slices indefinitely.
func PutScratch(s *Scratch) {
	if cap(s.Positions) > 1<<20 || cap(s.Characters) > 1<<20 {
		return
	}
	scratchPool.Put(s)
}
