package model

import (
	"bytes"
	"encoding/json"
)

type Owner struct {
	ID       string          `json:"_id"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Location json.RawMessage `json:"location,omitempty"`
}

type OwnerKind uint8

const (
	OwnerNone OwnerKind = iota
	OwnerID
	OwnerInline
)

// OwnerRef holds either a bare owner identifier or an inline Owner, never both.
type OwnerRef struct {
	id     string
	isID   bool
	inline *Owner
}

func OwnerByID(id string) OwnerRef {
	return OwnerRef{id: id, isID: true}
}

func InlineOwner(o Owner) OwnerRef {
	return OwnerRef{inline: &o}
}

func (r OwnerRef) Kind() OwnerKind {
	switch {
	case r.inline != nil:
		return OwnerInline
	case r.isID:
		return OwnerID
	default:
		return OwnerNone
	}
}

// ID returns the bare identifier; ok is false unless Kind is OwnerID.
func (r OwnerRef) ID() (string, bool) {
	return r.id, r.Kind() == OwnerID
}

// Inline returns the embedded owner; ok is false unless Kind is OwnerInline.
func (r OwnerRef) Inline() (Owner, bool) {
	if r.inline == nil {
		return Owner{}, false
	}
	return *r.inline, true
}

func (r *OwnerRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*r = OwnerRef{}
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	switch b[0] {
	case '"':
		r.isID = true
		return json.Unmarshal(b, &r.id)
	case '{':
		var o Owner
		if err := json.Unmarshal(b, &o); err != nil {
			return err
		}
		r.inline = &o
		return nil
	default:
		// numbers, booleans and arrays carry no owner
		return nil
	}
}

func (r OwnerRef) MarshalJSON() ([]byte, error) {
	switch r.Kind() {
	case OwnerInline:
		return json.Marshal(r.inline)
	case OwnerID:
		return json.Marshal(r.id)
	default:
		return []byte("null"), nil
	}
}
