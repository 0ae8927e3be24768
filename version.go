// ABOUTME: Protocol version marker pinned to the literal "2.0"
// ABOUTME: Encodes to exactly "2.0" and refuses to decode anything else

package jrpc

import (
	"encoding/json"
	"fmt"
)

// Version is the jsonrpc member of every envelope. It carries no data;
// its whole contract is that it serializes to the exact string "2.0" and
// deserializes only from it. "2", "2.0.0", and the number 2.0 all fail.
type Version struct{}

func (Version) MarshalJSON() ([]byte, error) {
	return []byte(`"2.0"`), nil
}

func (*Version) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf(`expected exactly "2.0", found %s`, data)
	}
	if s != "2.0" {
		return fmt.Errorf(`expected exactly "2.0", found %q`, s)
	}
	return nil
}
