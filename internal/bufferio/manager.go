package bufferio

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// cursor is a position into a BufferManager's file plus the write-through
// buffer idiom the original cursor API exposes: writes go straight to the
// file (append-style files are never rewritten in place), the in-memory
// side only tracks position.
type cursor struct {
	mu  sync.Mutex
	pos int64
}

// BufferManager owns one version's append-only file and a pool of
// independent cursors over it. All cursor operations are safe for
// concurrent use. Each cursor has its own lock for its position, but the
// file's read and write syscalls are serialized by one mutex per file, so
// distinct cursors wait for each other while IO is in progress.
type BufferManager struct {
	version Version
	file    *os.File
	fileMu  sync.Mutex // serializes actual *os.File syscalls

	cursorMu sync.Mutex
	cursors  map[uint64]*cursor
	nextID   uint64
}

func newBufferManager(version Version, path string) (*BufferManager, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("bufferio: failed to open buffer file: %w", err)
	}
	return &BufferManager{
		version: version,
		file:    f,
		cursors: make(map[uint64]*cursor),
	}, nil
}

// OpenCursor allocates a new cursor positioned at the start of the file.
func (bm *BufferManager) OpenCursor() uint64 {
	bm.cursorMu.Lock()
	defer bm.cursorMu.Unlock()
	id := bm.nextID
	bm.nextID++
	bm.cursors[id] = &cursor{}
	return id
}

// CloseCursor releases a cursor. It does not touch the underlying file.
func (bm *BufferManager) CloseCursor(id uint64) error {
	bm.cursorMu.Lock()
	defer bm.cursorMu.Unlock()
	if _, ok := bm.cursors[id]; !ok {
		return fmt.Errorf("bufferio: unknown cursor %d", id)
	}
	delete(bm.cursors, id)
	return nil
}

func (bm *BufferManager) getCursor(id uint64) (*cursor, error) {
	bm.cursorMu.Lock()
	c, ok := bm.cursors[id]
	bm.cursorMu.Unlock()
	if !ok {
		return nil, fmt.Errorf("bufferio: unknown cursor %d", id)
	}
	return c, nil
}

// CursorPosition reports a cursor's current offset.
func (bm *BufferManager) CursorPosition(id uint64) (FileOffset, error) {
	c, err := bm.getCursor(id)
	if err != nil {
		return 0, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return FileOffset(c.pos), nil
}

// SeekWithCursor repositions a cursor to an absolute offset.
func (bm *BufferManager) SeekWithCursor(id uint64, offset FileOffset) error {
	c, err := bm.getCursor(id)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pos = int64(offset)
	return nil
}

// EndOffset returns the current length of the file, the offset a new
// append-only record will land at.
func (bm *BufferManager) EndOffset() (FileOffset, error) {
	bm.fileMu.Lock()
	defer bm.fileMu.Unlock()
	off, err := bm.file.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, fmt.Errorf("bufferio: failed to seek to end: %w", err)
	}
	return FileOffset(off), nil
}

// WriteWithCursor writes raw bytes at the cursor's position and advances it.
func (bm *BufferManager) WriteWithCursor(id uint64, p []byte) error {
	c, err := bm.getCursor(id)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	bm.fileMu.Lock()
	defer bm.fileMu.Unlock()
	if _, err := bm.file.WriteAt(p, c.pos); err != nil {
		return fmt.Errorf("bufferio: write failed: %w", err)
	}
	c.pos += int64(len(p))
	return nil
}

// ReadWithCursor reads len(p) bytes from the cursor's position and advances it.
func (bm *BufferManager) ReadWithCursor(id uint64, p []byte) error {
	c, err := bm.getCursor(id)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	bm.fileMu.Lock()
	defer bm.fileMu.Unlock()
	if _, err := bm.file.ReadAt(p, c.pos); err != nil {
		return fmt.Errorf("bufferio: read failed: %w", err)
	}
	c.pos += int64(len(p))
	return nil
}

func (bm *BufferManager) WriteU8WithCursor(id uint64, v uint8) error {
	return bm.WriteWithCursor(id, []byte{v})
}

func (bm *BufferManager) ReadU8WithCursor(id uint64) (uint8, error) {
	var buf [1]byte
	if err := bm.ReadWithCursor(id, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (bm *BufferManager) WriteU32WithCursor(id uint64, v uint32) error {
	var buf [4]byte
	putUint32LE(buf[:], v)
	return bm.WriteWithCursor(id, buf[:])
}

func (bm *BufferManager) ReadU32WithCursor(id uint64) (uint32, error) {
	var buf [4]byte
	if err := bm.ReadWithCursor(id, buf[:]); err != nil {
		return 0, err
	}
	return uint32LE(buf[:]), nil
}

func (bm *BufferManager) WriteF32WithCursor(id uint64, v float32) error {
	return bm.WriteU32WithCursor(id, float32ToBits(v))
}

func (bm *BufferManager) ReadF32WithCursor(id uint64) (float32, error) {
	bits, err := bm.ReadU32WithCursor(id)
	if err != nil {
		return 0, err
	}
	return bitsToFloat32(bits), nil
}

// Sync flushes the file to stable storage.
func (bm *BufferManager) Sync() error {
	bm.fileMu.Lock()
	defer bm.fileMu.Unlock()
	return bm.file.Sync()
}

// Close releases the underlying file handle.
func (bm *BufferManager) Close() error {
	bm.fileMu.Lock()
	defer bm.fileMu.Unlock()
	return bm.file.Close()
}
