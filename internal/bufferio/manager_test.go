package bufferio

import (
	"testing"
)

func TestFactoryGetIsIdempotent(t *testing.T) {
	f, err := NewBufferManagerFactory(t.TempDir())
	if err != nil {
		t.Fatalf("NewBufferManagerFactory: %v", err)
	}
	defer f.Close()

	bm1, err := f.Get(1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	bm2, err := f.Get(1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if bm1 != bm2 {
		t.Error("Get(1) returned two different managers for the same version")
	}
}

func TestCursorWriteReadRoundTrip(t *testing.T) {
	f, err := NewBufferManagerFactory(t.TempDir())
	if err != nil {
		t.Fatalf("NewBufferManagerFactory: %v", err)
	}
	defer f.Close()

	bm, err := f.Get(1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	writeCur := bm.OpenCursor()
	defer bm.CloseCursor(writeCur)

	if err := bm.WriteU8WithCursor(writeCur, 0x2a); err != nil {
		t.Fatalf("WriteU8WithCursor: %v", err)
	}
	if err := bm.WriteU32WithCursor(writeCur, 0xdeadbeef); err != nil {
		t.Fatalf("WriteU32WithCursor: %v", err)
	}
	if err := bm.WriteF32WithCursor(writeCur, 3.5); err != nil {
		t.Fatalf("WriteF32WithCursor: %v", err)
	}

	readCur := bm.OpenCursor()
	defer bm.CloseCursor(readCur)

	b, err := bm.ReadU8WithCursor(readCur)
	if err != nil || b != 0x2a {
		t.Fatalf("ReadU8WithCursor = %v, %v; want 0x2a, nil", b, err)
	}
	u, err := bm.ReadU32WithCursor(readCur)
	if err != nil || u != 0xdeadbeef {
		t.Fatalf("ReadU32WithCursor = %v, %v; want 0xdeadbeef, nil", u, err)
	}
	fv, err := bm.ReadF32WithCursor(readCur)
	if err != nil || fv != 3.5 {
		t.Fatalf("ReadF32WithCursor = %v, %v; want 3.5, nil", fv, err)
	}
}

func TestSeekWithCursor(t *testing.T) {
	f, err := NewBufferManagerFactory(t.TempDir())
	if err != nil {
		t.Fatalf("NewBufferManagerFactory: %v", err)
	}
	defer f.Close()

	bm, _ := f.Get(1)
	cur := bm.OpenCursor()
	defer bm.CloseCursor(cur)

	if err := bm.WriteU32WithCursor(cur, 111); err != nil {
		t.Fatalf("WriteU32WithCursor: %v", err)
	}
	if err := bm.WriteU32WithCursor(cur, 222); err != nil {
		t.Fatalf("WriteU32WithCursor: %v", err)
	}

	if err := bm.SeekWithCursor(cur, 0); err != nil {
		t.Fatalf("SeekWithCursor: %v", err)
	}
	pos, err := bm.CursorPosition(cur)
	if err != nil || pos != 0 {
		t.Fatalf("CursorPosition = %v, %v; want 0, nil", pos, err)
	}
	v, err := bm.ReadU32WithCursor(cur)
	if err != nil || v != 111 {
		t.Fatalf("ReadU32WithCursor after seek = %v, %v; want 111, nil", v, err)
	}
}

func TestCloseCursorRejectsFurtherUse(t *testing.T) {
	f, err := NewBufferManagerFactory(t.TempDir())
	if err != nil {
		t.Fatalf("NewBufferManagerFactory: %v", err)
	}
	defer f.Close()

	bm, _ := f.Get(1)
	cur := bm.OpenCursor()
	if err := bm.CloseCursor(cur); err != nil {
		t.Fatalf("CloseCursor: %v", err)
	}
	if _, err := bm.CursorPosition(cur); err == nil {
		t.Error("expected error using a closed cursor")
	}
}
