// ABOUTME: The JSON-RPC 2.0 envelopes: Request, Success, ErrorResponse
// ABOUTME: Handles notification-aware id omission and strict response decoding

package jrpc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Request is a single rpc call. M is the method type: use string for a
// permissive request, or a named string type with its own UnmarshalJSON
// when the method set should be validated during decode (see
// ParseRequest).
//
// The id is a ReqID. When it is a notification the id key is omitted
// from the serialized object entirely, never emitted as null, and the
// codec is symmetric: a missing id key decodes back to a notification.
type Request[M ~string] struct {
	Method M

	// Params holds the raw params value. nil means the field was absent
	// from the source; the literal "null" means it was present and null.
	// The two are preserved as different wire states.
	Params json.RawMessage

	ID ReqID
}

// NewRequest returns a Request for method with the given id and no params.
func NewRequest[M ~string](id ID, method M) Request[M] {
	return Request[M]{Method: method, ID: id.Req()}
}

// NewNotification returns a Request with an absent id, signaling that no
// response is expected.
func NewNotification[M ~string](method M) Request[M] {
	return Request[M]{Method: method}
}

// SetParams marshals v into the request's params field.
func (r *Request[M]) SetParams(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	r.Params = data
	return nil
}

// IsReserved reports whether the method name sits in the reserved "rpc."
// namespace.
func (r Request[M]) IsReserved() bool {
	return IsReserved(string(r.Method))
}

// MarshalJSON writes the wire form with keys in the order
// jsonrpc, method, params, id, omitting params when absent and id when
// the request is a notification.
func (r Request[M]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"jsonrpc":"2.0","method":`)
	method, err := json.Marshal(r.Method)
	if err != nil {
		return nil, err
	}
	buf.Write(method)
	if r.Params != nil {
		buf.WriteString(`,"params":`)
		buf.Write(r.Params)
	}
	if id, ok := r.ID.ID(); ok {
		buf.WriteString(`,"id":`)
		idJSON, err := id.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(idJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (r *Request[M]) UnmarshalJSON(data []byte) error {
	w, err := decodeRequestWire(data)
	if err != nil {
		return err
	}
	var method M
	if err := json.Unmarshal(w.Method, &method); err != nil {
		return err
	}
	var id ReqID
	if w.ID != nil {
		var v ID
		if err := json.Unmarshal(w.ID, &v); err != nil {
			return err
		}
		id = v.Req()
	}
	*r = Request[M]{Method: method, Params: w.Params, ID: id}
	return nil
}

// requestWire is the half-decoded request envelope. Raw members let the
// caller distinguish absent fields (nil) from present ones, and let
// ParseRequest decode the method twice: once permissively, once into the
// caller's method type.
type requestWire struct {
	Version json.RawMessage `json:"jsonrpc"`
	Method  json.RawMessage `json:"method"`
	Params  json.RawMessage `json:"params"`
	ID      json.RawMessage `json:"id"`
}

// decodeRequestWire validates the parts of a request envelope that do not
// depend on the method type: the version literal and the presence and
// string-ness of method. Unknown keys are tolerated, matching the
// request side of the protocol.
func decodeRequestWire(data []byte) (*requestWire, error) {
	var w requestWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	if w.Version == nil {
		return nil, errors.New("jsonrpc attribute does not exist")
	}
	var v Version
	if err := json.Unmarshal(w.Version, &v); err != nil {
		return nil, err
	}
	if w.Method == nil {
		return nil, errors.New("method attribute does not exist")
	}
	var method string
	if err := json.Unmarshal(w.Method, &method); err != nil {
		return nil, fmt.Errorf("method is not a string: %s", w.Method)
	}
	return &w, nil
}

// Success is a response carrying a result. Decoding is strict: the only
// object it accepts has exactly the members jsonrpc, result, and id.
type Success[T any] struct {
	Version Version `json:"jsonrpc"`
	Result  T       `json:"result"`
	ID      ID      `json:"id"`
}

// NewSuccess returns a Success for the given id and result.
func NewSuccess[T any](id ID, result T) Success[T] {
	return Success[T]{Result: result, ID: id}
}

func (s *Success[T]) UnmarshalJSON(data []byte) error {
	var w struct {
		Version json.RawMessage `json:"jsonrpc"`
		Result  json.RawMessage `json:"result"`
		ID      json.RawMessage `json:"id"`
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&w); err != nil {
		return err
	}
	if w.Version == nil {
		return errors.New("jsonrpc attribute does not exist")
	}
	var v Version
	if err := json.Unmarshal(w.Version, &v); err != nil {
		return err
	}
	if w.Result == nil {
		return errors.New("result attribute does not exist")
	}
	var result T
	if err := json.Unmarshal(w.Result, &result); err != nil {
		return err
	}
	if w.ID == nil {
		return errors.New("id does not exist")
	}
	var id ID
	if err := json.Unmarshal(w.ID, &id); err != nil {
		return err
	}
	*s = Success[T]{Result: result, ID: id}
	return nil
}

// ErrorObject is the error member of an error response: a code, a short
// message, and optional data defined by the server. Data is nil when the
// field was absent. Unlike the envelopes, the object itself tolerates
// extra keys.
type ErrorObject struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Data    any       `json:"data,omitempty"`
}

// Error implements the error interface so protocol errors can flow
// through ordinary Go error handling.
func (e *ErrorObject) Error() string {
	return e.Message
}

func (e *ErrorObject) UnmarshalJSON(data []byte) error {
	var w struct {
		Code    json.RawMessage `json:"code"`
		Message *string         `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Code == nil {
		return errors.New("error code does not exist")
	}
	var code ErrorCode
	if err := json.Unmarshal(w.Code, &code); err != nil {
		return err
	}
	if w.Message == nil {
		return errors.New("error message does not exist")
	}
	var payload any
	if w.Data != nil {
		// UseNumber keeps numeric data byte-identical on re-encode.
		dec := json.NewDecoder(bytes.NewReader(w.Data))
		dec.UseNumber()
		if err := dec.Decode(&payload); err != nil {
			return err
		}
	}
	*e = ErrorObject{Code: code, Message: *w.Message, Data: payload}
	return nil
}

// ErrorResponse is a response carrying an ErrorObject instead of a
// result. Decoding is strict: exactly the members jsonrpc, error, id.
//
// Responses always carry a plain ID, never a notification: a server that
// could not read the request's id replies with the null ID.
type ErrorResponse struct {
	Version Version     `json:"jsonrpc"`
	Error   ErrorObject `json:"error"`
	ID      ID          `json:"id"`
}

// NewErrorResponse wraps err in a response envelope for the given id.
func NewErrorResponse(id ID, err ErrorObject) ErrorResponse {
	return ErrorResponse{Error: err, ID: id}
}

func (e *ErrorResponse) UnmarshalJSON(data []byte) error {
	var w struct {
		Version json.RawMessage `json:"jsonrpc"`
		Error   json.RawMessage `json:"error"`
		ID      json.RawMessage `json:"id"`
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&w); err != nil {
		return err
	}
	if w.Version == nil {
		return errors.New("jsonrpc attribute does not exist")
	}
	var v Version
	if err := json.Unmarshal(w.Version, &v); err != nil {
		return err
	}
	if w.Error == nil {
		return errors.New("error attribute does not exist")
	}
	var obj ErrorObject
	if err := json.Unmarshal(w.Error, &obj); err != nil {
		return err
	}
	if w.ID == nil {
		return errors.New("id does not exist")
	}
	var id ID
	if err := json.Unmarshal(w.ID, &id); err != nil {
		return err
	}
	*e = ErrorResponse{Error: obj, ID: id}
	return nil
}
