// Package envelope unwraps the response envelopes of the book-exchange API.
//
// A collection may come back as {"data": [...]}, {"<plural>": [...]} or a bare
// array; a single record always sits under a fixed field such as "book".
package envelope

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

const DataField = "data"

var (
	ErrNotArray     = errors.New("envelope: no array in response")
	ErrMissingField = errors.New("envelope: field is missing")
)

// List returns the first array found by the rules, in order:
// the "data" field, each of the plural fields, the body itself.
// An object picked by those rules is searched once more with the same field rules.
func List(body []byte, plurals ...string) (json.RawMessage, error) {
	fields := append([]string{DataField}, plurals...)

	picked := pick(body, fields)
	if isArray(picked) {
		return picked, nil
	}
	if isObject(picked) {
		if nested := pickField(picked, fields); isArray(nested) {
			return nested, nil
		}
	}
	return nil, ErrNotArray
}

// Field returns the named field of an object body.
func Field(body []byte, name string) (json.RawMessage, error) {
	obj, ok := object(body)
	if !ok {
		return nil, errors.Wrapf(ErrMissingField, "%q: body is not an object", name)
	}
	v, ok := obj[name]
	if !ok || isNull(v) {
		return nil, errors.Wrapf(ErrMissingField, "%q", name)
	}
	return v, nil
}

// DecodeList is List followed by decoding into a slice of T.
func DecodeList[T any](body []byte, plurals ...string) ([]T, error) {
	raw, err := List(body, plurals...)
	if err != nil {
		return nil, err
	}
	items := make([]T, 0)
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errors.Wrap(err, "envelope: decode list")
	}
	return items, nil
}

// DecodeField is Field followed by decoding into T.
func DecodeField[T any](body []byte, name string) (T, error) {
	var v T
	raw, err := Field(body, name)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, errors.Wrapf(err, "envelope: decode %q", name)
	}
	return v, nil
}

func pick(body []byte, fields []string) json.RawMessage {
	if v := pickField(body, fields); v != nil {
		return v
	}
	return bytes.TrimSpace(body)
}

func pickField(body []byte, fields []string) json.RawMessage {
	obj, ok := object(body)
	if !ok {
		return nil
	}
	for _, f := range fields {
		if v, ok := obj[f]; ok && truthy(v) {
			return v
		}
	}
	return nil
}

func object(body []byte) (map[string]json.RawMessage, bool) {
	if !isObject(body) {
		return nil, false
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, false
	}
	return obj, true
}

// truthy follows the API's loose semantics: null, false, 0 and "" are empty.
func truthy(v json.RawMessage) bool {
	v = bytes.TrimSpace(v)
	switch {
	case len(v) == 0, isNull(v):
		return false
	case bytes.Equal(v, []byte("false")), bytes.Equal(v, []byte(`""`)):
		return false
	case v[0] == '-' || (v[0] >= '0' && v[0] <= '9'):
		var f float64
		if err := json.Unmarshal(v, &f); err != nil {
			return false
		}
		return f != 0
	}
	return true
}

func isNull(v []byte) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

func isArray(v []byte) bool {
	v = bytes.TrimSpace(v)
	return len(v) > 0 && v[0] == '['
}

func isObject(v []byte) bool {
	v = bytes.TrimSpace(v)
	return len(v) > 0 && v[0] == '{'
}
