// ABOUTME: Request/response identifiers for JSON-RPC 2.0
// ABOUTME: ID covers string/int/null; ReqID adds the absent-id notification state

package jrpc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

type idKind uint8

const (
	idNull idKind = iota
	idString
	idInt
)

// ID correlates a Response with the Request that caused it. It is a
// string, a 64-bit integer, or null. Comparison is structural: two IDs
// are == iff they have the same kind and value, and IDs are usable as
// map keys. The zero value is the null ID.
//
// Numbers with a fractional part are not identifiers. They are rejected
// during decoding rather than truncated.
type ID struct {
	kind idKind
	str  string
	num  int64
}

// NewStringID returns the ID for the string s.
func NewStringID(s string) ID { return ID{kind: idString, str: s} }

// NewIntID returns the ID for the integer n.
func NewIntID(n int64) ID { return ID{kind: idInt, num: n} }

// NewRandomID returns a fresh, collision-resistant string ID backed by a
// random UUID. Convenience for clients that do not number their calls.
func NewRandomID() ID { return NewStringID(uuid.NewString()) }

// IsNull reports whether the ID is null.
func (id ID) IsNull() bool { return id.kind == idNull }

// StringValue returns the string value and whether the ID is a string.
func (id ID) StringValue() (string, bool) { return id.str, id.kind == idString }

// IntValue returns the integer value and whether the ID is an integer.
func (id ID) IntValue() (int64, bool) { return id.num, id.kind == idInt }

// Req wraps the ID for use on the request side.
func (id ID) Req() ReqID { return ReqID{id: id, present: true} }

// String renders the ID as it appears on the wire.
func (id ID) String() string {
	switch id.kind {
	case idString:
		return strconv.Quote(id.str)
	case idInt:
		return strconv.FormatInt(id.num, 10)
	default:
		return "null"
	}
}

func (id ID) MarshalJSON() ([]byte, error) {
	switch id.kind {
	case idString:
		return json.Marshal(id.str)
	case idInt:
		return strconv.AppendInt(nil, id.num, 10), nil
	default:
		return []byte("null"), nil
	}
}

func (id *ID) UnmarshalJSON(data []byte) error {
	v, err := idFromJSON(data)
	if err != nil {
		return err
	}
	*id = v
	return nil
}

func idFromJSON(data []byte) (ID, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ID{}, fmt.Errorf("id is empty")
	}
	switch {
	case bytes.Equal(data, []byte("null")):
		return ID{}, nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return ID{}, err
		}
		return NewStringID(s), nil
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return ID{}, err
		}
		i, err := n.Int64()
		if err != nil {
			return ID{}, fmt.Errorf("id is a non-i64 number: %s", n)
		}
		return NewIntID(i), nil
	default:
		return ID{}, fmt.Errorf("id is not a valid type: %s", data)
	}
}

// ReqID is the identifier of a Request. Unlike an ID it has a fourth
// state, notification, meaning the id field is absent from the wire
// entirely. Absent is not the same thing as null: {"id":null} decodes to
// the null ID while a missing id key decodes to a notification, and the
// two states signal different protocol behavior (a notification gets no
// response at all).
//
// The zero value is the notification state.
type ReqID struct {
	id      ID
	present bool
}

// IsNotification reports whether the id field is absent.
func (r ReqID) IsNotification() bool { return !r.present }

// ID returns the underlying ID. The second result is false when the
// ReqID is a notification, in which case there is no ID to return.
func (r ReqID) ID() (ID, bool) { return r.id, r.present }

// String renders the ReqID for diagnostics.
func (r ReqID) String() string {
	if !r.present {
		return "<notification>"
	}
	return r.id.String()
}

// MarshalJSON encodes the underlying ID. A notification has no wire
// representation of its own; the Request codec omits the field instead,
// so marshaling one directly is an error.
func (r ReqID) MarshalJSON() ([]byte, error) {
	if !r.present {
		return nil, fmt.Errorf("a notification id has no wire representation; omit the field")
	}
	return r.id.MarshalJSON()
}

func (r *ReqID) UnmarshalJSON(data []byte) error {
	var id ID
	if err := id.UnmarshalJSON(data); err != nil {
		return err
	}
	*r = id.Req()
	return nil
}
