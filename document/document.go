package document

import (
	"os"
	"sync"

	"github.com/pkg/errors"
)

// Document is an in-memory byte buffer supporting bounds-checked random
// reads and fixed-width in-place overwrites. Overwrites never change the
// buffer's length.
type Document struct {
	mu   sync.RWMutex
	data []byte
}

// New wraps data in a Document. The buffer is owned by the document
// afterwards.
func New(data []byte) *Document {
	return &Document{data: data}
}

// Load reads an entire file into a new Document.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "loading document")
	}
	return New(data), nil
}

// Read returns a copy of length bytes starting at offset.
func (document *Document) Read(offset int64, length int) ([]byte, error) {
	document.mu.RLock()
	defer document.mu.RUnlock()

	if offset < 0 || length < 0 || offset+int64(length) > int64(len(document.data)) {
		return nil, errors.Errorf("read of %d bytes at offset %d outside document of %d bytes", length, offset, len(document.data))
	}

	out := make([]byte, length)
	copy(out, document.data[offset:])
	return out, nil
}

// Overwrite replaces len(data) bytes at offset in place.
func (document *Document) Overwrite(offset int64, data []byte) error {
	document.mu.Lock()
	defer document.mu.Unlock()

	if offset < 0 || offset+int64(len(data)) > int64(len(document.data)) {
		return errors.Errorf("overwrite of %d bytes at offset %d outside document of %d bytes", len(data), offset, len(document.data))
	}

	copy(document.data[offset:], data)
	return nil
}

// Len returns the document size in bytes.
func (document *Document) Len() int64 {
	document.mu.RLock()
	defer document.mu.RUnlock()

	return int64(len(document.data))
}
