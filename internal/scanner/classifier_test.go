package scanner

import "testing"

func TestClassifyBasic(t *testing.T) {
	input := []byte(`{"a":[1,2]}`)
	out := make([]byte, len(input))
	if err := Classify(input, out); err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}

	want := []byte{
		CodeBraceOpen, CodeQuote, CodeOther, CodeQuote, CodeColon,
		CodeBracketOpen, CodeOther, CodeComma, CodeOther, CodeBracketClose,
		CodeBraceClose,
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("byte %d (%q): got code %d, want %d", i, input[i], out[i], want[i])
		}
	}
}

func TestClassifyArgumentErrors(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		out   []byte
		want  error
	}{
		{"nil input", nil, make([]byte, 4), ErrNilArgument},
		{"nil output", []byte("ab"), nil, ErrNilArgument},
		{"empty input", []byte{}, make([]byte, 4), ErrEmptyInput},
		{"output too small", []byte("abcd"), make([]byte, 2), ErrOutputTooSmall},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Classify(tt.input, tt.out); err != tt.want {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestClassifyChunk64MatchesScalar(t *testing.T) {
	sizes := []int{64, 128, 4096}
	for _, size := range sizes {
		t.Run(sizeName(size), func(t *testing.T) {
			input := pseudoJSON(size)
			var window [64]byte
			for base := 0; base+64 <= len(input); base += 64 {
				copy(window[:], input[base:base+64])
				structural, quote, backslash := classifyChunk64(&window)
				for k := 0; k < 64; k++ {
					c := window[k]
					bit := uint64(1) << uint(k)
					wantQuote := c == '"'
					wantBackslash := c == '\\'
					wantStructural := wantQuote || isStructuralByte(c)

					if (quote&bit != 0) != wantQuote {
						t.Fatalf("base %d bit %d: quote mismatch for %q", base, k, c)
					}
					if (backslash&bit != 0) != wantBackslash {
						t.Fatalf("base %d bit %d: backslash mismatch for %q", base, k, c)
					}
					if (structural&bit != 0) != wantStructural {
						t.Fatalf("base %d bit %d: structural mismatch for %q", base, k, c)
					}
				}
			}
		})
	}
}

func TestClassifyWithVariantMatchesScalar(t *testing.T) {
	input := pseudoJSON(300)
	scalarOut := make([]byte, len(input))
	windowedOut := make([]byte, len(input))

	if err := ClassifyWithVariant(input, scalarOut, ClassifyScalar); err != nil {
		t.Fatalf("scalar variant error: %v", err)
	}
	if err := ClassifyWithVariant(input, windowedOut, ClassifyWindowed); err != nil {
		t.Fatalf("windowed variant error: %v", err)
	}
	for i := range scalarOut {
		if scalarOut[i] != windowedOut[i] {
			t.Fatalf("byte %d (%q): scalar=%d windowed=%d", i, input[i], scalarOut[i], windowedOut[i])
		}
	}
}

func isStructuralByte(c byte) bool {
	switch c {
	case '{', '}', '[', ']', ':', ',', '"':
		return true
	}
	return false
}

func sizeName(n int) string {
	switch n {
	case 64:
		return "one_chunk"
	case 128:
		return "two_chunks"
	default:
		return "many_chunks"
	}
}

// pseudoJSON deterministically fills n bytes with a repeating mix of
// structural, quote, backslash and ordinary characters, enough to
// exercise every classification code without depending on math/rand.
func pseudoJSON(n int) []byte {
	alphabet := []byte(`{}[]:,\"x `)
	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[i%len(alphabet)]
	}
	return out
}
