// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"
)

// DocumentIDField is the property that identifies a document in a collection.
const DocumentIDField = "id"

// Document is a schemaless JSON object stored in a mock backend collection.
type Document map[string]any

// ID returns the document identifier in its path form. ok is false when the
// document has no usable id.
func (d Document) ID() (string, bool) {
	raw, ok := d[DocumentIDField]
	if !ok || raw == nil {
		return "", false
	}

	id := FormatValue(raw)
	return id, id != ""
}

// Clone returns a shallow copy of the document.
func (d Document) Clone() Document {
	c := make(Document, len(d))
	for k, v := range d {
		c[k] = v
	}
	return c
}

// FormatValue renders a decoded JSON scalar the way it appears in a URL path or
// query string. Integral numbers lose their fractional part.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}

// Page selects a window of a listing. Zero values disable paging.
type Page struct {
	// Limit is the page size.
	Limit int `validate:"gte=0"`

	// PageNumber is 1-based.
	PageNumber int `validate:"gte=0"`
}

// Filter narrows a collection listing.
type Filter struct {
	// Query is matched case-insensitively against string properties.
	Query string

	// Keywords match when any keyword is contained in a string property.
	Keywords []string

	// Fields require exact equality of the formatted property value.
	Fields map[string]string
}

// Empty reports whether the filter matches every document.
func (f Filter) Empty() bool {
	return f.Query == "" && len(f.Keywords) == 0 && len(f.Fields) == 0
}
