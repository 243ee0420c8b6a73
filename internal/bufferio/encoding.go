package bufferio

import (
	"encoding/binary"
	"math"
)

func putUint32LE(buf []byte, v uint32) {
	binary.LittleEndian.PutUint32(buf, v)
}

func uint32LE(buf []byte) uint32 {
	return binary.LittleEndian.Uint32(buf)
}

func float32ToBits(v float32) uint32 {
	return math.Float32bits(v)
}

func bitsToFloat32(bits uint32) float32 {
	return math.Float32frombits(bits)
}
