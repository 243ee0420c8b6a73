package quantization

import (
	"math"

	"github.com/viterin/vek/vek32"
	"github.com/x448/float16"
)

// Calculate computes the Euclidean distance between two quantized storage
// values. Only like-variant pairs are defined: UnsignedByte x UnsignedByte
// and HalfPrecisionFP x HalfPrecisionFP are computed; SubByte x SubByte is
// intentionally unimplemented (ErrCalculationError); any other pairing is
// a caller bug (ErrStorageMismatch).
func Calculate(x, y Storage) (float32, error) {
	switch a := x.(type) {
	case UnsignedByteStorage:
		b, ok := y.(UnsignedByteStorage)
		if !ok {
			return 0, ErrStorageMismatch
		}
		return euclideanU8(a.QuantVec, b.QuantVec), nil

	case HalfPrecisionStorage:
		b, ok := y.(HalfPrecisionStorage)
		if !ok {
			return 0, ErrStorageMismatch
		}
		return euclideanF16(a.QuantVec, b.QuantVec), nil

	case SubByteStorage:
		if _, ok := y.(SubByteStorage); !ok {
			return 0, ErrStorageMismatch
		}
		return 0, ErrCalculationError

	default:
		return 0, ErrStorageMismatch
	}
}

// euclideanU8 widens each byte pair to int16 before squaring so
// differences never overflow.
func euclideanU8(a, b []uint8) float32 {
	var sum int64
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		d := int16(a[i]) - int16(b[i])
		sum += int64(d) * int64(d)
	}
	return float32(math.Sqrt(float64(sum)))
}

// euclideanF16 widens each half-precision pair to float32 before squaring.
func euclideanF16(a, b []float16.Float16) float32 {
	var sum float64
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		d := float64(a[i].Float32()) - float64(b[i].Float32())
		sum += d * d
	}
	return float32(math.Sqrt(sum))
}

// CosineSimilarity returns the raw cosine similarity between two float32
// vectors (not a distance: callers that need 1-cos must subtract it
// themselves). Used by the proximity graph walk, which ranks candidates by
// similarity directly. Dot products and norms go through vek32, the same
// SIMD-backed routine used elsewhere in this codebase's vector paths.
func CosineSimilarity(a, b []float32) float32 {
	dot := vek32.Dot(a, b)
	normA := float32(math.Sqrt(float64(vek32.Dot(a, a))))
	normB := float32(math.Sqrt(float64(vek32.Dot(b, b))))
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (normA * normB)
}
