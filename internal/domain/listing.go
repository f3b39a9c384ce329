// internal/domain/listing.go
package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

var (
	// ErrListingsNotFound means the data file does not exist.
	ErrListingsNotFound = errors.New("apartments.json file not found")
	// ErrListingsMalformed means the data file exists but is not JSON.
	ErrListingsMalformed = errors.New("apartments.json is not valid JSON")
)

// Document is the listings document as decoded from disk. Its shape is
// owned by whoever writes the file; nothing here looks inside it.
type Document struct {
	Value interface{}
}

// ParseDocument decodes exactly one JSON value from data. Numbers are kept
// as json.Number so re-encoding does not lose precision.
func ParseDocument(data []byte) (Document, error) {
	if !utf8.Valid(data) {
		// not a JSON syntax problem, the caller treats it as an I/O failure
		return Document{}, errors.New("apartments.json is not valid UTF-8")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrListingsMalformed, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return Document{}, fmt.Errorf("%w: trailing data after top-level value", ErrListingsMalformed)
	}
	return Document{Value: v}, nil
}

// Encode writes the document as JSON followed by a newline. Object keys
// come out sorted and HTML characters are left alone.
func (d Document) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(d.Value)
}

// LoadStatus tags the outcome of loading the listings document.
type LoadStatus int

const (
	LoadOK LoadStatus = iota
	LoadMissing
	LoadMalformed
)

func (s LoadStatus) String() string {
	switch s {
	case LoadOK:
		return "ok"
	case LoadMissing:
		return "missing"
	case LoadMalformed:
		return "malformed"
	default:
		return fmt.Sprintf("LoadStatus(%d)", int(s))
	}
}

// LoadResult is the tagged result of one load. Document is only set when
// Status is LoadOK.
type LoadResult struct {
	Status   LoadStatus
	Document Document
}
