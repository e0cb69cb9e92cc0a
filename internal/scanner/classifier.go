package scanner

import "encoding/binary"

// lsb/msb are the broadcast constants behind the classic "does this word
// contain byte n" SWAR trick (Bit Twiddling Hacks, "Determine if a word
// has a byte equal to n"), the same technique grafana's internal
// jsonlite package uses for its escapeIndex fast path. We reuse it here
// as the portable stand-in for the lane-wise byte comparisons the NEON
// and Metal backends perform with vceqq_u8 / SIMD intrinsics.
const (
	lsb = 0x0101010101010101
	msb = 0x8080808080808080
)

// byteEqMask returns, for each of the 8 bytes packed in w (byte i in
// bits [8i+7:8i]), 0x80 in that byte's lane if the byte equals c, 0
// otherwise. It uses the exact per-byte form of the zero-byte test:
// adding 0x7F to each lane's low seven bits never carries into the next
// lane, so a match in one lane never flags its neighbour. Exact for all
// c and all byte values.
func byteEqMask(w uint64, c byte) uint64 {
	x := w ^ (lsb * uint64(c))
	return ^(((x &^ msb) + (msb - lsb)) | x) & msb
}

// gatherLaneMSBs packs the 8 lane-MSB flags of w (each 0x80 or 0x00)
// into a contiguous 8-bit value, bit i holding lane i's flag — a
// movemask over 8 lanes, done with a direct per-lane bit extraction
// since Go has no vector pairwise-add primitive to build one from.
func gatherLaneMSBs(w uint64) uint64 {
	var out uint64
	for i := uint(0); i < 8; i++ {
		out |= ((w >> (i*8 + 7)) & 1) << i
	}
	return out
}

// structuralChars are the JSON structural characters plus the string
// delimiter. Backslash is classified separately below.
var structuralChars = [...]byte{'{', '}', '[', ']', ':', ',', '"'}

// classifyChunk64 classifies a full 64-byte window into three masks:
// structural is the OR of {}[]:," the quote mask is '"' alone, and
// backslash is '\' alone. Bit k of each mask corresponds to window[k].
func classifyChunk64(window *[64]byte) (structural, quote, backslash uint64) {
	for w := 0; w < 8; w++ {
		word := binary.LittleEndian.Uint64(window[w*8 : w*8+8])

		var wordStruct, wordQuote uint64
		for _, c := range structuralChars {
			laneHits := gatherLaneMSBs(byteEqMask(word, c))
			wordStruct |= laneHits
			if c == '"' {
				wordQuote = laneHits
			}
		}
		wordBackslash := gatherLaneMSBs(byteEqMask(word, '\\'))

		shift := uint(w * 8)
		structural |= wordStruct << shift
		quote |= wordQuote << shift
		backslash |= wordBackslash << shift
	}
	return structural, quote, backslash
}
