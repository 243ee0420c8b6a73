package serialize

import (
	"github.com/therealutkarshpriyadarshi/vector/internal/bufferio"
	"github.com/therealutkarshpriyadarshi/vector/internal/quantization"
)

// Neighbor is one edge out of a graph node: the neighbor's id and the
// cosine similarity the edge was created with.
type Neighbor struct {
	ID         string
	Similarity float32
}

// Node is the on-disk shape of a graph node: its id, its quantized payload,
// and its neighbor list. This extends the Storage record format the same
// way the control flow extends C4 to graph nodes: id length-prefix + bytes,
// a nested Storage record, then neighbor count and each neighbor's id +
// similarity.
type Node struct {
	ID        string
	Payload   quantization.Storage
	Neighbors []Neighbor
}

// SerializeNode writes a node record and returns its start offset.
func SerializeNode(bufmans *bufferio.BufferManagerFactory, version bufferio.Version, cursor uint64, n Node) (bufferio.FileOffset, error) {
	bufman, err := bufmans.Get(version)
	if err != nil {
		return 0, err
	}
	start, err := bufman.CursorPosition(cursor)
	if err != nil {
		return 0, err
	}

	idBytes := []byte(n.ID)
	if err := bufman.WriteU32WithCursor(cursor, uint32(len(idBytes))); err != nil {
		return 0, err
	}
	for _, b := range idBytes {
		if err := bufman.WriteU8WithCursor(cursor, b); err != nil {
			return 0, err
		}
	}

	if _, err := SerializeStorage(bufmans, version, cursor, n.Payload); err != nil {
		return 0, err
	}

	if err := bufman.WriteU32WithCursor(cursor, uint32(len(n.Neighbors))); err != nil {
		return 0, err
	}
	for _, nb := range n.Neighbors {
		nbBytes := []byte(nb.ID)
		if err := bufman.WriteU32WithCursor(cursor, uint32(len(nbBytes))); err != nil {
			return 0, err
		}
		for _, b := range nbBytes {
			if err := bufman.WriteU8WithCursor(cursor, b); err != nil {
				return 0, err
			}
		}
		if err := bufman.WriteF32WithCursor(cursor, nb.Similarity); err != nil {
			return 0, err
		}
	}

	return start, nil
}

// DeserializeNode reads a node record back from fileIndex.
func DeserializeNode(bufmans *bufferio.BufferManagerFactory, fileIndex bufferio.FileIndex) (Node, error) {
	if !fileIndex.Valid {
		return Node{}, ErrInvalidInput
	}

	bufman, err := bufmans.Get(fileIndex.Version)
	if err != nil {
		return Node{}, err
	}
	cursor := bufman.OpenCursor()
	defer bufman.CloseCursor(cursor)

	if err := bufman.SeekWithCursor(cursor, fileIndex.Offset); err != nil {
		return Node{}, err
	}

	idLen, err := bufman.ReadU32WithCursor(cursor)
	if err != nil {
		return Node{}, err
	}
	idBytes := make([]byte, idLen)
	for i := range idBytes {
		b, err := bufman.ReadU8WithCursor(cursor)
		if err != nil {
			return Node{}, err
		}
		idBytes[i] = b
	}

	payload, err := deserializeStorageWithCursor(bufman, cursor)
	if err != nil {
		return Node{}, err
	}

	neighborCount, err := bufman.ReadU32WithCursor(cursor)
	if err != nil {
		return Node{}, err
	}
	neighbors := make([]Neighbor, neighborCount)
	for i := range neighbors {
		nbLen, err := bufman.ReadU32WithCursor(cursor)
		if err != nil {
			return Node{}, err
		}
		nbBytes := make([]byte, nbLen)
		for j := range nbBytes {
			b, err := bufman.ReadU8WithCursor(cursor)
			if err != nil {
				return Node{}, err
			}
			nbBytes[j] = b
		}
		sim, err := bufman.ReadF32WithCursor(cursor)
		if err != nil {
			return Node{}, err
		}
		neighbors[i] = Neighbor{ID: string(nbBytes), Similarity: sim}
	}

	return Node{ID: string(idBytes), Payload: payload, Neighbors: neighbors}, nil
}
