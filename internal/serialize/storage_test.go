package serialize

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/therealutkarshpriyadarshi/vector/internal/bufferio"
	"github.com/therealutkarshpriyadarshi/vector/internal/quantization"
)

func TestSerializeUnsignedByteWireFormat(t *testing.T) {
	dir := t.TempDir()
	bufmans, err := bufferio.NewBufferManagerFactory(dir)
	if err != nil {
		t.Fatalf("NewBufferManagerFactory: %v", err)
	}
	defer bufmans.Close()

	bufman, _ := bufmans.Get(1)
	cursor := bufman.OpenCursor()
	defer bufman.CloseCursor(cursor)

	s := quantization.UnsignedByteStorage{Mag: 42, QuantVec: []uint8{1, 2, 3}}
	if _, err := SerializeStorage(bufmans, 1, cursor, s); err != nil {
		t.Fatalf("SerializeStorage: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "1.buf"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := []byte{
		0x00,                   // discriminator
		0x2a, 0x00, 0x00, 0x00, // mag = 42, little-endian
		0x03, 0x00, 0x00, 0x00, // len = 3
		0x01, 0x02, 0x03,
	}
	if !bytes.Equal(raw, want) {
		t.Errorf("wire bytes = % x, want % x", raw, want)
	}
}

func TestSerializeHalfPrecisionWireFormat(t *testing.T) {
	dir := t.TempDir()
	bufmans, err := bufferio.NewBufferManagerFactory(dir)
	if err != nil {
		t.Fatalf("NewBufferManagerFactory: %v", err)
	}
	defer bufmans.Close()

	bufman, _ := bufmans.Get(1)
	cursor := bufman.OpenCursor()
	defer bufman.CloseCursor(cursor)

	s := quantization.QuantizeHalfPrecision([]float32{0.0, 1.0})
	s.Mag = 1.0
	if _, err := SerializeStorage(bufmans, 1, cursor, s); err != nil {
		t.Fatalf("SerializeStorage: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "1.buf"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := []byte{
		0x02,                   // discriminator
		0x00, 0x00, 0x80, 0x3f, // mag = 1.0f32, little-endian
		0x02, 0x00, 0x00, 0x00, // len = 2
		0x00, 0x00, // f16(0.0)
		0x00, 0x3c, // f16(1.0)
	}
	if !bytes.Equal(raw, want) {
		t.Errorf("wire bytes = % x, want % x", raw, want)
	}
}

func TestSerializeDeserializeUnsignedByteRoundTrip(t *testing.T) {
	bufmans, err := bufferio.NewBufferManagerFactory(t.TempDir())
	if err != nil {
		t.Fatalf("NewBufferManagerFactory: %v", err)
	}
	defer bufmans.Close()

	bufman, err := bufmans.Get(1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	cursor := bufman.OpenCursor()
	defer bufman.CloseCursor(cursor)

	s := quantization.UnsignedByteStorage{Mag: 5, QuantVec: []uint8{3, 4, 0}}
	offset, err := SerializeStorage(bufmans, 1, cursor, s)
	if err != nil {
		t.Fatalf("SerializeStorage: %v", err)
	}

	got, err := DeserializeStorage(bufmans, bufferio.NewFileIndex(offset, 1))
	if err != nil {
		t.Fatalf("DeserializeStorage: %v", err)
	}
	us, ok := got.(quantization.UnsignedByteStorage)
	if !ok {
		t.Fatalf("got %T, want UnsignedByteStorage", got)
	}
	if us.Mag != 5 || len(us.QuantVec) != 3 || us.QuantVec[0] != 3 {
		t.Errorf("round-tripped value mismatch: %+v", us)
	}
}

func TestSerializeDeserializeHalfPrecisionRoundTrip(t *testing.T) {
	bufmans, err := bufferio.NewBufferManagerFactory(t.TempDir())
	if err != nil {
		t.Fatalf("NewBufferManagerFactory: %v", err)
	}
	defer bufmans.Close()

	bufman, _ := bufmans.Get(1)
	cursor := bufman.OpenCursor()
	defer bufman.CloseCursor(cursor)

	s := quantization.QuantizeHalfPrecision([]float32{1.5, -2.5})
	offset, err := SerializeStorage(bufmans, 1, cursor, s)
	if err != nil {
		t.Fatalf("SerializeStorage: %v", err)
	}

	got, err := DeserializeStorage(bufmans, bufferio.NewFileIndex(offset, 1))
	if err != nil {
		t.Fatalf("DeserializeStorage: %v", err)
	}
	hs, ok := got.(quantization.HalfPrecisionStorage)
	if !ok {
		t.Fatalf("got %T, want HalfPrecisionStorage", got)
	}
	if hs.QuantVec[0].Float32() != 1.5 || hs.QuantVec[1].Float32() != -2.5 {
		t.Errorf("round-tripped values mismatch: %+v", hs.QuantVec)
	}
}

func TestDeserializeInvalidFileIndex(t *testing.T) {
	bufmans, err := bufferio.NewBufferManagerFactory(t.TempDir())
	if err != nil {
		t.Fatalf("NewBufferManagerFactory: %v", err)
	}
	defer bufmans.Close()

	_, err = DeserializeStorage(bufmans, bufferio.InvalidFileIndex())
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestDeserializeUnknownDiscriminator(t *testing.T) {
	bufmans, err := bufferio.NewBufferManagerFactory(t.TempDir())
	if err != nil {
		t.Fatalf("NewBufferManagerFactory: %v", err)
	}
	defer bufmans.Close()

	bufman, _ := bufmans.Get(1)
	cursor := bufman.OpenCursor()
	defer bufman.CloseCursor(cursor)
	if err := bufman.WriteU8WithCursor(cursor, 99); err != nil {
		t.Fatalf("WriteU8WithCursor: %v", err)
	}

	_, err = DeserializeStorage(bufmans, bufferio.NewFileIndex(0, 1))
	if !errors.Is(err, ErrInvalidData) {
		t.Fatalf("err = %v, want ErrInvalidData", err)
	}
}

func TestSerializeDeserializeNodeRoundTrip(t *testing.T) {
	bufmans, err := bufferio.NewBufferManagerFactory(t.TempDir())
	if err != nil {
		t.Fatalf("NewBufferManagerFactory: %v", err)
	}
	defer bufmans.Close()

	bufman, _ := bufmans.Get(1)
	cursor := bufman.OpenCursor()
	defer bufman.CloseCursor(cursor)

	node := Node{
		ID:      "vec-a",
		Payload: quantization.UnsignedByteStorage{Mag: 1, QuantVec: []uint8{1, 2}},
		Neighbors: []Neighbor{
			{ID: "vec-b", Similarity: 0.9},
			{ID: "vec-c", Similarity: 0.5},
		},
	}
	offset, err := SerializeNode(bufmans, 1, cursor, node)
	if err != nil {
		t.Fatalf("SerializeNode: %v", err)
	}

	got, err := DeserializeNode(bufmans, bufferio.NewFileIndex(offset, 1))
	if err != nil {
		t.Fatalf("DeserializeNode: %v", err)
	}
	if got.ID != "vec-a" || len(got.Neighbors) != 2 {
		t.Fatalf("round-tripped node mismatch: %+v", got)
	}
	if got.Neighbors[0].ID != "vec-b" || got.Neighbors[0].Similarity != 0.9 {
		t.Errorf("neighbor[0] mismatch: %+v", got.Neighbors[0])
	}
}
