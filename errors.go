// ABOUTME: Constructors for protocol-level errors
// ABOUTME: Each standard code gets a helper carrying its canonical message

package jrpc

// NewError builds an ErrorObject with an explicit code and message. data
// may be nil for no data member.
func NewError(code ErrorCode, message string, data any) ErrorObject {
	return ErrorObject{Code: code, Message: message, Data: data}
}

// NewParseError reports that invalid JSON was received.
func NewParseError(data any) ErrorObject {
	return NewError(CodeParseError, CodeParseError.Message(), data)
}

// NewInvalidRequestError reports that the JSON sent is not a valid
// Request object.
func NewInvalidRequestError(data any) ErrorObject {
	return NewError(CodeInvalidRequest, CodeInvalidRequest.Message(), data)
}

// NewMethodNotFoundError reports that the method does not exist or is not
// available.
func NewMethodNotFoundError(data any) ErrorObject {
	return NewError(CodeMethodNotFound, CodeMethodNotFound.Message(), data)
}

// NewInvalidParamsError reports invalid method parameters.
func NewInvalidParamsError(data any) ErrorObject {
	return NewError(CodeInvalidParams, CodeInvalidParams.Message(), data)
}

// NewInternalError reports an internal JSON-RPC error.
func NewInternalError(data any) ErrorObject {
	return NewError(CodeInternalError, CodeInternalError.Message(), data)
}
