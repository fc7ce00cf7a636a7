package datatypes

import (
	"github.com/PyroSamurai/rehex"
	"github.com/pkg/errors"
)

// Region binds a numeric type to a fixed-width span of a document. It is
// the in-place edit surface: read the current value as text, or overwrite
// it from text.
type Region struct {
	doc         rehex.Document
	numericType NumericType
	offset      int64
}

// NewRegion validates that the typed span fits inside the document.
func NewRegion(doc rehex.Document, numericType NumericType, offset int64) (*Region, error) {
	if offset < 0 || offset+int64(numericType.Size) > doc.Len() {
		return nil, errors.Errorf("%s region at offset %d does not fit document of %d bytes", numericType.Name, offset, doc.Len())
	}
	return &Region{doc: doc, numericType: numericType, offset: offset}, nil
}

// Type returns the region's numeric type.
func (region *Region) Type() NumericType {
	return region.numericType
}

// Offset returns the region's byte offset within the document.
func (region *Region) Offset() int64 {
	return region.offset
}

// FormatValue reads the region's bytes and renders them as text.
func (region *Region) FormatValue() (string, error) {
	raw, err := region.doc.Read(region.offset, region.numericType.Size)
	if err != nil {
		return "", err
	}
	return region.numericType.Format(raw)
}

// WriteStringValue parses value and overwrites the region in place. On a
// parse failure nothing is written and the document is left untouched.
func (region *Region) WriteStringValue(value string) error {
	raw, err := region.numericType.Parse(value)
	if err != nil {
		return err
	}
	return region.doc.Overwrite(region.offset, raw)
}
