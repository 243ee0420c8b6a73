// Package serialize implements the byte-exact bidirectional mapping between
// in-memory entities (quantized storage, graph nodes) and file offsets
// managed by internal/bufferio.
package serialize

import (
	"errors"
	"fmt"

	"github.com/therealutkarshpriyadarshi/vector/internal/bufferio"
	"github.com/therealutkarshpriyadarshi/vector/internal/quantization"
	"github.com/x448/float16"
)

// ErrInvalidInput is returned when deserialization is asked to resolve an
// invalid (never-persisted) FileIndex.
var ErrInvalidInput = errors.New("serialize: invalid file index")

// ErrInvalidData is returned when a record's discriminator byte does not
// match any known Storage variant.
var ErrInvalidData = errors.New("serialize: unknown storage variant")

// SerializeStorage writes s to bufmans' version file through cursor and
// returns the offset the record started at.
func SerializeStorage(bufmans *bufferio.BufferManagerFactory, version bufferio.Version, cursor uint64, s quantization.Storage) (bufferio.FileOffset, error) {
	bufman, err := bufmans.Get(version)
	if err != nil {
		return 0, err
	}
	start, err := bufman.CursorPosition(cursor)
	if err != nil {
		return 0, err
	}

	switch v := s.(type) {
	case quantization.UnsignedByteStorage:
		if err := writeAll(
			func() error { return bufman.WriteU8WithCursor(cursor, uint8(quantization.TagUnsignedByte)) },
			func() error { return bufman.WriteU32WithCursor(cursor, v.Mag) },
			func() error { return bufman.WriteU32WithCursor(cursor, uint32(len(v.QuantVec))) },
		); err != nil {
			return 0, err
		}
		for _, el := range v.QuantVec {
			if err := bufman.WriteU8WithCursor(cursor, el); err != nil {
				return 0, err
			}
		}

	case quantization.SubByteStorage:
		if err := writeAll(
			func() error { return bufman.WriteU8WithCursor(cursor, uint8(quantization.TagSubByte)) },
			func() error { return bufman.WriteU8WithCursor(cursor, v.Resolution) },
			func() error { return bufman.WriteF32WithCursor(cursor, v.Mag) },
			func() error { return bufman.WriteU32WithCursor(cursor, uint32(len(v.QuantVec))) },
		); err != nil {
			return 0, err
		}
		for _, chunk := range v.QuantVec {
			if err := bufman.WriteU32WithCursor(cursor, uint32(len(chunk))); err != nil {
				return 0, err
			}
			for _, el := range chunk {
				if err := bufman.WriteU8WithCursor(cursor, el); err != nil {
					return 0, err
				}
			}
		}

	case quantization.HalfPrecisionStorage:
		if err := writeAll(
			func() error { return bufman.WriteU8WithCursor(cursor, uint8(quantization.TagHalfPrecisionFP)) },
			func() error { return bufman.WriteF32WithCursor(cursor, v.Mag) },
			func() error { return bufman.WriteU32WithCursor(cursor, uint32(len(v.QuantVec))) },
		); err != nil {
			return 0, err
		}
		for _, el := range v.QuantVec {
			lo := uint8(el.Bits() & 0xff)
			hi := uint8(el.Bits() >> 8)
			if err := bufman.WriteU8WithCursor(cursor, lo); err != nil {
				return 0, err
			}
			if err := bufman.WriteU8WithCursor(cursor, hi); err != nil {
				return 0, err
			}
		}

	default:
		return 0, fmt.Errorf("serialize: unsupported storage type %T", s)
	}

	return start, nil
}

// DeserializeStorage reads a Storage value back from the location fileIndex
// points at.
func DeserializeStorage(bufmans *bufferio.BufferManagerFactory, fileIndex bufferio.FileIndex) (quantization.Storage, error) {
	if !fileIndex.Valid {
		return nil, ErrInvalidInput
	}

	bufman, err := bufmans.Get(fileIndex.Version)
	if err != nil {
		return nil, err
	}
	cursor := bufman.OpenCursor()
	defer bufman.CloseCursor(cursor)

	if err := bufman.SeekWithCursor(cursor, fileIndex.Offset); err != nil {
		return nil, err
	}

	return deserializeStorageWithCursor(bufman, cursor)
}

// deserializeStorageWithCursor reads one Storage record starting at
// cursor's current position, using the caller's cursor rather than opening
// its own — the shape SerializeNode/DeserializeNode need to interleave a
// Storage record with the rest of a node record on one cursor.
func deserializeStorageWithCursor(bufman *bufferio.BufferManager, cursor uint64) (quantization.Storage, error) {
	tag, err := bufman.ReadU8WithCursor(cursor)
	if err != nil {
		return nil, err
	}

	switch quantization.StorageTag(tag) {
	case quantization.TagUnsignedByte:
		mag, err := bufman.ReadU32WithCursor(cursor)
		if err != nil {
			return nil, err
		}
		n, err := bufman.ReadU32WithCursor(cursor)
		if err != nil {
			return nil, err
		}
		quantVec := make([]uint8, n)
		for i := range quantVec {
			b, err := bufman.ReadU8WithCursor(cursor)
			if err != nil {
				return nil, err
			}
			quantVec[i] = b
		}
		return quantization.UnsignedByteStorage{Mag: mag, QuantVec: quantVec}, nil

	case quantization.TagSubByte:
		resolution, err := bufman.ReadU8WithCursor(cursor)
		if err != nil {
			return nil, err
		}
		mag, err := bufman.ReadF32WithCursor(cursor)
		if err != nil {
			return nil, err
		}
		n, err := bufman.ReadU32WithCursor(cursor)
		if err != nil {
			return nil, err
		}
		quantVec := make([][]uint8, n)
		for i := range quantVec {
			innerLen, err := bufman.ReadU32WithCursor(cursor)
			if err != nil {
				return nil, err
			}
			chunk := make([]uint8, innerLen)
			for j := range chunk {
				b, err := bufman.ReadU8WithCursor(cursor)
				if err != nil {
					return nil, err
				}
				chunk[j] = b
			}
			quantVec[i] = chunk
		}
		return quantization.SubByteStorage{Resolution: resolution, Mag: mag, QuantVec: quantVec}, nil

	case quantization.TagHalfPrecisionFP:
		mag, err := bufman.ReadF32WithCursor(cursor)
		if err != nil {
			return nil, err
		}
		n, err := bufman.ReadU32WithCursor(cursor)
		if err != nil {
			return nil, err
		}
		quantVec := make([]float16.Float16, n)
		for i := range quantVec {
			lo, err := bufman.ReadU8WithCursor(cursor)
			if err != nil {
				return nil, err
			}
			hi, err := bufman.ReadU8WithCursor(cursor)
			if err != nil {
				return nil, err
			}
			quantVec[i] = float16.Frombits(uint16(hi)<<8 | uint16(lo))
		}
		return quantization.HalfPrecisionStorage{Mag: mag, QuantVec: quantVec}, nil

	default:
		return nil, ErrInvalidData
	}
}

func writeAll(fns ...func() error) error {
	for _, fn := range fns {
		if err := fn(); err != nil {
			return err
		}
	}
	return nil
}
