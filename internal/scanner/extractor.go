package scanner

import "math/bits"

// filterStructural keeps a bit if it is a structural byte outside a
// string, or an unescaped quote (a string boundary, always reported).
func filterStructural(structural, inString, unescapedQuotes uint64) uint64 {
	return (structural &^ inString) | unescapedQuotes
}

// emitPositions appends the absolute byte offsets of set bits in mask
// (relative to base) and their corresponding input bytes to positions/
// characters, stopping and returning ok=false the moment either output
// slice would overflow. It returns the number of entries written.
func emitPositions(mask uint64, base int, input []byte, positions []uint32, characters []byte, offset int) (written int, ok bool) {
	for mask != 0 {
		if offset+written >= len(positions) || offset+written >= len(characters) {
			return written, false
		}
		k := bits.TrailingZeros64(mask)
		mask &= mask - 1
		pos := base + k
		positions[offset+written] = uint32(pos)
		characters[offset+written] = input[pos]
		written++
	}
	return written, true
}

// scalarTail runs a byte-at-a-time reference walk over input[start:],
// for the final remainder shorter than one full 64-byte chunk.
// oddBackslash and inStr carry the classifier/masker state across the
// chunk/tail boundary exactly as the chunked path would.
func scalarTail(input []byte, start int, oddBackslash, inStr bool, positions []uint32, characters []byte, offset int) (written int, truncated bool) {
	for i := start; i < len(input); i++ {
		c := input[i]
		switch {
		case c == '\\':
			oddBackslash = !oddBackslash
			continue
		case c == '"':
			if oddBackslash {
				oddBackslash = false
				continue
			}
			// Quote delimiter: always structural, never itself "inside".
			if offset+written >= len(positions) || offset+written >= len(characters) {
				return written, true
			}
			positions[offset+written] = uint32(i)
			characters[offset+written] = c
			written++
			inStr = !inStr
			oddBackslash = false
			continue
		default:
			oddBackslash = false
		}

		if inStr {
			continue
		}
		switch c {
		case '{', '}', '[', ']', ':', ',':
			if offset+written >= len(positions) || offset+written >= len(characters) {
				return written, true
			}
			positions[offset+written] = uint32(i)
			characters[offset+written] = c
			written++
		}
	}
	return written, false
}
