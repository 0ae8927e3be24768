// ABOUTME: Request classification: text in, Request or ready-to-send error out
// ABOUTME: Maps the three decode failure classes onto ParseError/InvalidRequest/MethodNotFound

package jrpc

import "encoding/json"

// ParseRequest classifies raw text as a Request[M] or as a fully formed
// error response, ready to serialize back to the client, so callers never
// build protocol-compliant rejections for these failure classes by hand:
//
//   - text that is not JSON at all yields a ParseError,
//   - a JSON value that is not a valid request envelope yields an
//     InvalidRequest with the null id, since a malformed envelope cannot
//     be trusted to carry a real one,
//   - a valid envelope whose method does not decode into M yields a
//     MethodNotFound carrying the envelope's own id.
//
// M is typically a named string type whose UnmarshalJSON accepts only the
// methods the caller serves; with plain string the third stage never
// fails.
func ParseRequest[M ~string](data []byte) (*Request[M], *ErrorResponse) {
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		e := NewErrorResponse(ID{}, NewParseError(err.Error()))
		return nil, &e
	}

	w, err := decodeRequestWire(data)
	if err != nil {
		e := NewErrorResponse(ID{}, NewInvalidRequestError(err.Error()))
		return nil, &e
	}
	var reqID ReqID
	if w.ID != nil {
		var id ID
		if err := json.Unmarshal(w.ID, &id); err != nil {
			e := NewErrorResponse(ID{}, NewInvalidRequestError(err.Error()))
			return nil, &e
		}
		reqID = id.Req()
	}

	var method M
	if err := json.Unmarshal(w.Method, &method); err != nil {
		// The envelope itself was valid, so its id can be echoed. A
		// notification still maps to the null id: responses are never
		// notifications.
		id, _ := reqID.ID()
		e := NewErrorResponse(id, NewMethodNotFoundError(err.Error()))
		return nil, &e
	}

	return &Request[M]{Method: method, Params: w.Params, ID: reqID}, nil
}
