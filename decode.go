// ABOUTME: Lenient response decoder with staged, specific diagnostics
// ABOUTME: Explains why text failed to become any known response shape

package jrpc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// DecodeError explains why a blob of text could not become any known
// response envelope. It is a local diagnostic meant for logs and
// debugging, not a protocol error to send back to a peer.
type DecodeError struct {
	// Hint is a human-readable, single-purpose explanation: invalid
	// JSON, not an object, a bad or missing jsonrpc or id member,
	// conflicting result/error members, or extra keys.
	Hint string

	cause error
}

func (e *DecodeError) Error() string { return e.Hint }

// Unwrap exposes the underlying structural cause, when one exists.
func (e *DecodeError) Unwrap() error { return e.cause }

// DecodeResponse turns raw text into a Response[T] or a *DecodeError
// saying exactly why it could not.
//
// The happy path is a single typed decode. When that fails, the text is
// retried strictly as an error response (so structured errors are still
// recovered when T does not match the declared result type), and only
// then inspected field by field to produce the most specific diagnostic
// available instead of an opaque parse failure.
func DecodeResponse[T any](data []byte) (Response[T], error) {
	var resp Response[T]
	unionErr := json.Unmarshal(data, &resp)
	if unionErr == nil {
		return resp, nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(data, &errResp); err == nil {
		return Response[T]{Error: &errResp}, nil
	}

	var zero Response[T]

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return zero, &DecodeError{Hint: fmt.Sprintf("Invalid JSON: %v", err), cause: err}
	}
	if _, err := dec.Token(); err != io.EOF {
		return zero, &DecodeError{Hint: "Invalid JSON: unexpected data after the top-level value"}
	}

	object, ok := value.(map[string]any)
	if !ok {
		return zero, &DecodeError{Hint: fmt.Sprintf("Not an object: %s", bytes.TrimSpace(data))}
	}

	jsonrpc, ok := object["jsonrpc"]
	if !ok {
		return zero, &DecodeError{Hint: "jsonrpc attribute does not exist"}
	}
	if s, isString := jsonrpc.(string); !isString || s != "2.0" {
		return zero, &DecodeError{Hint: fmt.Sprintf("jsonrpc attribute is the incorrect value: %v", jsonrpc)}
	}
	delete(object, "jsonrpc")

	id, ok := object["id"]
	if !ok {
		return zero, &DecodeError{Hint: "id does not exist"}
	}
	switch v := id.(type) {
	case nil, string:
	case json.Number:
		if _, err := v.Int64(); err != nil {
			return zero, &DecodeError{Hint: fmt.Sprintf("id is a non-i64 number: %s", v)}
		}
	default:
		return zero, &DecodeError{Hint: fmt.Sprintf("id is not a valid type: %v", v)}
	}
	delete(object, "id")

	_, hasResult := object["result"]
	_, hasError := object["error"]
	if hasResult && hasError {
		return zero, &DecodeError{Hint: "both `result` and `error` fields are present"}
	}
	delete(object, "result")
	delete(object, "error")

	if len(object) > 0 {
		keys := make([]string, 0, len(object))
		for k := range object {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return zero, &DecodeError{Hint: fmt.Sprintf("Extra keys are present: %q", keys)}
	}

	// Every structural check passed, so the failure came from decoding
	// the payload itself. Surface the original error as the best hint.
	return zero, &DecodeError{
		Hint:  fmt.Sprintf("Could not deserialize into either Response or Error. Possible cause:\n%v", unionErr),
		cause: unionErr,
	}
}
