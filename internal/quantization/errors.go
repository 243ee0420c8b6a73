package quantization

import "errors"

// ErrStorageMismatch is returned when Calculate is given two Storage values
// of different variants.
var ErrStorageMismatch = errors.New("quantization: storage variant mismatch")

// ErrCalculationError is returned when a distance kernel has no defined
// implementation for the given variant pair (SubByte x SubByte Euclidean).
var ErrCalculationError = errors.New("quantization: distance not implemented for this variant")
