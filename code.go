// ABOUTME: JSON-RPC 2.0 error codes and their classification
// ABOUTME: Five named codes plus an open server-error range, with advisory validity

package jrpc

import (
	"encoding/json"
	"fmt"
)

// ErrorCode is the code member of an ErrorObject. The five named
// constants cover the protocol's pre-defined errors; every other integer
// is an implementation-defined server error. The mapping between codes
// and integers is total and lossless in both directions.
//
// Decoding deliberately accepts any integer, including server errors
// outside the reserved -32099..-32000 band, because real servers emit
// them. Use IsValid to detect non-compliance.
type ErrorCode int64

// Standard JSON-RPC 2.0 error codes.
const (
	CodeParseError     ErrorCode = -32700
	CodeInvalidRequest ErrorCode = -32600
	CodeMethodNotFound ErrorCode = -32601
	CodeInvalidParams  ErrorCode = -32602
	CodeInternalError  ErrorCode = -32603
)

// Bounds of the band reserved for implementation-defined server errors.
const (
	ServerErrorMin ErrorCode = -32099
	ServerErrorMax ErrorCode = -32000
)

// IsServerError reports whether c is not one of the named codes, i.e. it
// falls in the open implementation-defined bucket.
func (c ErrorCode) IsServerError() bool {
	switch c {
	case CodeParseError, CodeInvalidRequest, CodeMethodNotFound, CodeInvalidParams, CodeInternalError:
		return false
	}
	return true
}

// IsValid reports whether c complies with the specification: the named
// codes always do, and a server error does iff it lies within
// ServerErrorMin..ServerErrorMax.
func (c ErrorCode) IsValid() bool {
	if !c.IsServerError() {
		return true
	}
	return c >= ServerErrorMin && c <= ServerErrorMax
}

// Message returns the canonical short description for c, suitable as the
// message member of an ErrorObject.
func (c ErrorCode) Message() string {
	switch c {
	case CodeParseError:
		return "Parse error"
	case CodeInvalidRequest:
		return "Invalid Request"
	case CodeMethodNotFound:
		return "Method not found"
	case CodeInvalidParams:
		return "Invalid params"
	case CodeInternalError:
		return "Internal error"
	}
	return "Server error"
}

func (c ErrorCode) String() string {
	if c.IsServerError() {
		return fmt.Sprintf("server error (%d)", int64(c))
	}
	return fmt.Sprintf("%s (%d)", c.Message(), int64(c))
}

// UnmarshalJSON reads a signed 64-bit integer. Anything else, including
// numbers with a fractional part, is rejected.
func (c *ErrorCode) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("error code must be an integer: %s", data)
	}
	i, err := n.Int64()
	if err != nil {
		return fmt.Errorf("error code must be an integer: %s", n)
	}
	*c = ErrorCode(i)
	return nil
}
