// nolint
package dto

import (
	"fmt"
	"net/http"
)

// TypeDescription describes one registered numeric data type.
type TypeDescription struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Size  int    `json:"size"`
}

// TypeDescriptionList is the full data type registry.
type TypeDescriptionList struct {
	List []TypeDescription `json:"list"`
}

func (*TypeDescriptionList) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// DocumentValue is a numeric value at a document offset, read or written
// through a named data type.
type DocumentValue struct {
	Type   string `json:"type"`
	Offset int64  `json:"offset"`
	Value  string `json:"value"`
}

func (*DocumentValue) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func (value *DocumentValue) Bind(r *http.Request) error {
	if value.Type == "" {
		return fmt.Errorf("type can not be empty")
	}
	if value.Offset < 0 {
		return fmt.Errorf("offset can not be negative")
	}
	if value.Value == "" {
		return fmt.Errorf("value can not be empty")
	}
	return nil
}
