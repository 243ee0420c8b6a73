package quantization

import "testing"

func TestQuantizeUnsignedByteMagnitude(t *testing.T) {
	v := []float32{3, 4, 0, 0}
	s := QuantizeUnsignedByte(v)
	if s.Tag() != TagUnsignedByte {
		t.Fatalf("Tag() = %v, want TagUnsignedByte", s.Tag())
	}
	if s.Mag != 5 {
		t.Errorf("Mag = %d, want 5", s.Mag)
	}
	want := []uint8{3, 4, 0, 0}
	for i, x := range want {
		if s.QuantVec[i] != x {
			t.Errorf("QuantVec[%d] = %d, want %d", i, s.QuantVec[i], x)
		}
	}
}

func TestQuantizeUnsignedByteClamps(t *testing.T) {
	s := QuantizeUnsignedByte([]float32{-10, 300})
	if s.QuantVec[0] != 0 {
		t.Errorf("negative input should clamp to 0, got %d", s.QuantVec[0])
	}
	if s.QuantVec[1] != 255 {
		t.Errorf("overflow input should clamp to 255, got %d", s.QuantVec[1])
	}
}

func TestQuantizeHalfPrecisionRoundTrip(t *testing.T) {
	s := QuantizeHalfPrecision([]float32{1.5, -2.25, 0})
	for i, want := range []float32{1.5, -2.25, 0} {
		got := s.QuantVec[i].Float32()
		if got != want {
			t.Errorf("QuantVec[%d].Float32() = %v, want %v", i, got, want)
		}
	}
}

func TestQuantizeSubByteChunking(t *testing.T) {
	v := make([]float32, 130)
	for i := range v {
		v[i] = float32(i % 8)
	}
	s := QuantizeSubByte(v, 3)
	if s.Resolution != 3 {
		t.Fatalf("Resolution = %d, want 3", s.Resolution)
	}
	// 130 dims at 64 per chunk -> 3 chunks
	if len(s.QuantVec) != 3 {
		t.Fatalf("chunk count = %d, want 3", len(s.QuantVec))
	}
}

func TestQuantizeSubByteClampsToResolution(t *testing.T) {
	s := QuantizeSubByte([]float32{1, 100}, 3) // max code = 7
	if s.QuantVec[0][0] != 1 {
		t.Errorf("QuantVec[0][0] = %d, want 1", s.QuantVec[0][0])
	}
	if s.QuantVec[0][1] != 7 {
		t.Errorf("QuantVec[0][1] = %d, want 7 (clamped)", s.QuantVec[0][1])
	}
}
