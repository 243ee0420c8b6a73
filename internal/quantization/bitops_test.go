package quantization

import (
	"math"
	"testing"
)

func TestQuantizeChunksOfSixteen(t *testing.T) {
	floats := make([]float32, 20)
	chunks := Quantize(floats)
	if len(chunks) != 2 {
		t.Fatalf("chunk count = %d, want 2", len(chunks))
	}
	if len(chunks[0]) != 16 || len(chunks[1]) != 4 {
		t.Fatalf("chunk sizes = %d, %d, want 16, 4", len(chunks[0]), len(chunks[1]))
	}
}

func TestCosineCoalesceIdentical(t *testing.T) {
	v := []float32{1, -1, 2, -2, 3, -3, 4, -4, 1, -1, 2, -2, 3, -3, 4, -4}
	chunks := Quantize(v)
	got := CosineCoalesce(chunks, chunks)
	if math.Abs(got-1) > 1e-9 {
		t.Errorf("CosineCoalesce(v, v) = %v, want 1", got)
	}
}

func TestCosineCoalesceHalfOverlap(t *testing.T) {
	// 32 sign bits in two chunks: x is positive on indices 0-15, y on
	// indices 8-23, so each operand's own popcount is 16 and the
	// AND-popcount is the 8-bit overlap at indices 8-15. Similarity is
	// 8 / sqrt(16*16) = 0.5.
	x := make([]float32, 32)
	y := make([]float32, 32)
	for i := range x {
		if i < 16 {
			x[i] = 1
		} else {
			x[i] = -1
		}
		if i >= 8 && i < 24 {
			y[i] = 1
		} else {
			y[i] = -1
		}
	}
	got := CosineCoalesce(Quantize(x), Quantize(y))
	if math.Abs(got-0.5) > 1e-9 {
		t.Errorf("CosineCoalesce = %v, want 0.5", got)
	}
}

func TestCosineCoalesceLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for mismatched chunk counts")
		}
	}()
	CosineCoalesce(Quantize(make([]float32, 16)), Quantize(make([]float32, 32)))
}

func TestFloatsToBitsSignPacking(t *testing.T) {
	got := FloatsToBits([]float32{1, -1, 2, -2})
	want := uint32(0b0101)
	if got[0] != want {
		t.Errorf("FloatsToBits = %04b, want %04b", got[0], want)
	}
}
