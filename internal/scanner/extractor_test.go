package scanner

import "testing"

func TestFilterStructuralExcludesInteriorAndEscapedQuotes(t *testing.T) {
	structural := uint64(0b111111) // bits 0-5 all structural
	inString := uint64(0b011110)   // bits 1-4 interior (inside a string)
	unescapedQuotes := uint64(0b100001)

	got := filterStructural(structural, inString, unescapedQuotes)
	want := uint64(0b100001) // only bits 0 and 5 (the delimiters) survive
	if got != want {
		t.Errorf("filterStructural = %#b, want %#b", got, want)
	}
}

func TestEmitPositionsStopsOnOverflow(t *testing.T) {
	input := []byte("{},{},{},")
	positions := make([]uint32, 2)
	characters := make([]byte, 2)

	mask := uint64(0b1001001) // bits 0, 3, 6 set -> 3 structural bytes in a 2-slot buffer
	written, ok := emitPositions(mask, 0, input, positions, characters, 0)
	if ok {
		t.Fatalf("expected overflow (ok=false), got ok=true written=%d", written)
	}
	if written != 2 {
		t.Fatalf("written = %d, want 2", written)
	}
	if positions[0] != 0 || positions[1] != 3 {
		t.Errorf("positions = %v, want [0 3]", positions)
	}
}

func TestScalarTailEscapedClosingQuote(t *testing.T) {
	// {"x":"\""}  -- a value that is a single escaped quote character.
	input := []byte(`{"x":"\""}`)
	positions := make([]uint32, len(input))
	characters := make([]byte, len(input))

	written, truncated := scalarTail(input, 0, false, false, positions, characters, 0)
	if truncated {
		t.Fatalf("unexpected truncation")
	}

	wantPositions := []uint32{0, 1, 3, 4, 5, 8, 9}
	if written != len(wantPositions) {
		t.Fatalf("written = %d, want %d", written, len(wantPositions))
	}
	for i, want := range wantPositions {
		if positions[i] != want {
			t.Errorf("positions[%d] = %d, want %d", i, positions[i], want)
		}
	}
	wantChars := []byte{'{', '"', '"', ':', '"', '"', '}'}
	for i, want := range wantChars {
		if characters[i] != want {
			t.Errorf("characters[%d] = %q, want %q", i, characters[i], want)
		}
	}
}

func TestScalarTailCarriesOpenStringState(t *testing.T) {
	// Tail continuing an already-open string from a previous chunk:
	// "abc" are trailing string content, then the string closes and a
	// key-value separator and closing brace follow.
	input := []byte(`abc":1}`)
	positions := make([]uint32, len(input))
	characters := make([]byte, len(input))

	written, truncated := scalarTail(input, 0, false, true, positions, characters, 0)
	if truncated {
		t.Fatalf("unexpected truncation")
	}

	wantPositions := []uint32{3, 4, 6}
	wantChars := []byte{'"', ':', '}'}
	if written != len(wantPositions) {
		t.Fatalf("written = %d, want %d", written, len(wantPositions))
	}
	for i := range wantPositions {
		if positions[i] != wantPositions[i] || characters[i] != wantChars[i] {
			t.Errorf("entry %d: got (%d,%q), want (%d,%q)", i, positions[i], characters[i], wantPositions[i], wantChars[i])
		}
	}
}
