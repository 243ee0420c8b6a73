package denseindex

import "errors"

// ErrNotFound is returned when an operation references a collection or
// entry point that does not exist.
var ErrNotFound = errors.New("denseindex: not found")

// ErrDimensionMismatch is returned when an inserted embedding's length
// does not match the index's fixed dimension.
var ErrDimensionMismatch = errors.New("denseindex: dimension mismatch")

// ErrZeroVector is returned when an inserted embedding has zero magnitude.
// Cosine similarity against such a vector is undefined, so it is rejected
// before quantization.
var ErrZeroVector = errors.New("denseindex: zero-magnitude vector")

// ErrAlreadyExists is returned by CreateDenseIndex when DataPath already
// holds a collection's metadata file, and by Registry.Create when a
// collection with the same name is already open.
var ErrAlreadyExists = errors.New("denseindex: collection already exists")

// ErrFailedToCreateCollection is returned by CreateDenseIndex when the
// requested configuration cannot produce a valid collection, e.g. a
// non-positive dimension.
var ErrFailedToCreateCollection = errors.New("denseindex: failed to create collection")

// ErrTransactionClosed is returned by Transaction.Insert/Commit when the
// transaction has already been committed or aborted.
var ErrTransactionClosed = errors.New("denseindex: transaction already closed")
