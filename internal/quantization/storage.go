package quantization

import "github.com/x448/float16"

// StorageTag discriminates the quantized storage variants. Values are part
// of the on-disk wire format (internal/serialize) and must not be
// renumbered.
type StorageTag uint8

const (
	TagUnsignedByte StorageTag = iota
	TagSubByte
	TagHalfPrecisionFP
)

// Storage is the tagged union a raw embedding is reduced to before it is
// attached to a graph node. Exactly one of the three concrete types below
// satisfies it at a time; Calculate (kernels.go) dispatches with a type
// switch on the concrete type.
type Storage interface {
	Tag() StorageTag
}

// UnsignedByteStorage holds a vector quantized to one byte per dimension
// plus the magnitude needed to reconstruct approximate distances.
type UnsignedByteStorage struct {
	Mag      uint32
	QuantVec []uint8
}

func (UnsignedByteStorage) Tag() StorageTag { return TagUnsignedByte }

// SubByteStorage holds a vector quantized below one byte per dimension.
// QuantVec is a list of chunks, each chunk a run of Resolution-bit codes
// stored one byte per code (codes are not bit-packed); chunking exists so
// long vectors can be (de)serialized incrementally.
type SubByteStorage struct {
	Resolution uint8
	Mag        float32
	QuantVec   [][]uint8
}

func (SubByteStorage) Tag() StorageTag { return TagSubByte }

// HalfPrecisionStorage holds a vector stored as IEEE-754 binary16 values.
type HalfPrecisionStorage struct {
	Mag      float32
	QuantVec []float16.Float16
}

func (HalfPrecisionStorage) Tag() StorageTag { return TagHalfPrecisionFP }

// magnitude returns the L2 norm of v, the Mag field every variant carries
// alongside its compressed values.
func magnitude(v []float32) float32 {
	return NormL2(v)
}

// QuantizeUnsignedByte maps each dimension of v, assumed already scaled into
// [0, 255], to a single byte.
func QuantizeUnsignedByte(v []float32) UnsignedByteStorage {
	out := make([]uint8, len(v))
	for i, x := range v {
		if x < 0 {
			x = 0
		} else if x > 255 {
			x = 255
		}
		out[i] = uint8(x)
	}
	return UnsignedByteStorage{Mag: uint32(magnitude(v)), QuantVec: out}
}

// QuantizeHalfPrecision converts v to binary16 values with no further
// scaling; magnitude is computed over the original float32 values.
func QuantizeHalfPrecision(v []float32) HalfPrecisionStorage {
	out := make([]float16.Float16, len(v))
	for i, x := range v {
		out[i] = float16.Fromfloat32(x)
	}
	return HalfPrecisionStorage{Mag: magnitude(v), QuantVec: out}
}

// subByteChunkSize bounds how many packed codes live in one chunk of a
// SubByteStorage; it only affects (de)serialization granularity, not the
// quantized values themselves.
const subByteChunkSize = 64

// QuantizeSubByte clamps v, each dimension assumed already scaled into
// [0, 2^resolution - 1], into resolution-bit codes (resolution in [1,7])
// and groups them into chunks. Each code still occupies one whole byte in
// QuantVec: the resolution only constrains the value range a code may take,
// it does not change how codes are packed on the wire. This mirrors the
// source, which defines the Euclidean kernel over this variant as
// unimplemented (see Calculate) rather than ever bit-packing it.
func QuantizeSubByte(v []float32, resolution uint8) SubByteStorage {
	maxCode := uint32(1)<<resolution - 1
	codes := make([]uint8, len(v))
	for i, x := range v {
		c := uint32(0)
		if x > 0 {
			c = uint32(x)
		}
		if c > maxCode {
			c = maxCode
		}
		codes[i] = uint8(c)
	}

	var chunks [][]uint8
	for start := 0; start < len(codes); start += subByteChunkSize {
		end := start + subByteChunkSize
		if end > len(codes) {
			end = len(codes)
		}
		chunk := make([]uint8, end-start)
		copy(chunk, codes[start:end])
		chunks = append(chunks, chunk)
	}

	return SubByteStorage{Resolution: resolution, Mag: magnitude(v), QuantVec: chunks}
}

// Dequantize reconstructs an approximate float32 vector from a quantized
// Storage value. It is the inverse a caller reaches for when it only has a
// node's persisted payload and no resident raw vector to compare against —
// e.g. the proximity graph walk, after a neighbor was lazy-loaded from disk
// and only its quantized payload is available to compare against the probe.
// Reconstruction is lossy by construction; callers only need it to rank
// candidates, not to recover the original vector exactly.
func Dequantize(s Storage) []float32 {
	switch v := s.(type) {
	case UnsignedByteStorage:
		out := make([]float32, len(v.QuantVec))
		for i, b := range v.QuantVec {
			out[i] = float32(b)
		}
		return out

	case SubByteStorage:
		total := 0
		for _, chunk := range v.QuantVec {
			total += len(chunk)
		}
		out := make([]float32, 0, total)
		for _, chunk := range v.QuantVec {
			for _, b := range chunk {
				out = append(out, float32(b))
			}
		}
		return out

	case HalfPrecisionStorage:
		out := make([]float32, len(v.QuantVec))
		for i, h := range v.QuantVec {
			out[i] = h.Float32()
		}
		return out

	default:
		return nil
	}
}
