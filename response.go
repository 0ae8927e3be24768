// ABOUTME: The Response union over Success and ErrorResponse
// ABOUTME: Resolved structurally since the wire format carries no discriminant

package jrpc

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Response is the untagged union of a Success[T] and an ErrorResponse.
// Exactly one of the two fields is non-nil.
//
// The wire format has no discriminant, so decoding tries each shape in a
// fixed order, Success first, with each branch rejecting unknown fields.
// An object satisfying neither shape, or mixing result and error, fails;
// DecodeResponse explains such failures in detail.
type Response[T any] struct {
	Success *Success[T]
	Error   *ErrorResponse
}

// NewResponse returns the success response for id.
func NewResponse[T any](id ID, result T) Response[T] {
	s := NewSuccess(id, result)
	return Response[T]{Success: &s}
}

// NewResponseError returns the error response for id.
func NewResponseError[T any](id ID, err ErrorObject) Response[T] {
	e := NewErrorResponse(id, err)
	return Response[T]{Error: &e}
}

// IsError reports whether the response is the error arm.
func (r Response[T]) IsError() bool { return r.Error != nil }

// ID returns the response's id regardless of which arm it is.
func (r Response[T]) ID() ID {
	switch {
	case r.Success != nil:
		return r.Success.ID
	case r.Error != nil:
		return r.Error.ID
	}
	return ID{}
}

func (r Response[T]) MarshalJSON() ([]byte, error) {
	switch {
	case r.Success != nil && r.Error != nil:
		return nil, errors.New("response has both the success and error arms set")
	case r.Success != nil:
		return json.Marshal(*r.Success)
	case r.Error != nil:
		return json.Marshal(*r.Error)
	}
	return nil, errors.New("response has neither arm set")
}

func (r *Response[T]) UnmarshalJSON(data []byte) error {
	var s Success[T]
	sErr := json.Unmarshal(data, &s)
	if sErr == nil {
		*r = Response[T]{Success: &s}
		return nil
	}
	var e ErrorResponse
	eErr := json.Unmarshal(data, &e)
	if eErr == nil {
		*r = Response[T]{Error: &e}
		return nil
	}
	return fmt.Errorf("matches neither a success response (%v) nor an error response (%v)", sErr, eErr)
}
