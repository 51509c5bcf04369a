// Package json is a thin abstraction over sonic providing an API compatible
// with the standard library. The ConfigStd profile keeps encoding semantics
// identical to encoding/json, which matters here: absent optional fields must
// stay absent from serialized bodies, never appear as null.
package json

import (
	stdjson "encoding/json"

	"github.com/bytedance/sonic"
)

var (
	api = sonic.ConfigStd

	// Marshal encodes a Go value as JSON.
	Marshal = api.Marshal

	// MarshalIndent encodes a Go value as indented JSON.
	MarshalIndent = api.MarshalIndent

	// Unmarshal decodes JSON into a Go value.
	Unmarshal = api.Unmarshal

	// NewEncoder returns an encoder writing to w.
	NewEncoder = api.NewEncoder

	// NewDecoder returns a decoder reading from r.
	NewDecoder = api.NewDecoder

	// Valid reports whether data is valid JSON.
	Valid = api.Valid
)

// Encoder writes JSON values to an output stream.
type Encoder = sonic.Encoder

// Decoder reads and decodes JSON values from an input stream.
type Decoder = sonic.Decoder

// RawMessage is a raw encoded JSON value.
type RawMessage = stdjson.RawMessage

// Number represents a JSON number literal.
type Number = stdjson.Number

// Marshaler is implemented by types that can marshal themselves into JSON.
type Marshaler = stdjson.Marshaler

// Unmarshaler is implemented by types that can unmarshal a JSON description
// of themselves.
type Unmarshaler = stdjson.Unmarshaler
