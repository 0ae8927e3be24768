// Package jrpc models JSON-RPC 2.0 messages: the Request, Success and
// ErrorResponse envelopes, the Response union over the latter two, the
// identifier and error-code types, and decoders that turn raw text into
// typed envelopes or into specific, actionable diagnostics.
//
// The package never touches the network. It is the data-model half of a
// JSON-RPC implementation; transports, dispatch, and batching live with
// the caller. Every operation is a pure function of its input, so all
// types are safe for concurrent use without coordination.
package jrpc

import "strings"

// IsReserved reports whether method begins with "rpc.", the namespace the
// protocol sets aside for rpc-internal methods and extensions. Reserved
// names are detectable, not rejected; policy belongs to the caller.
func IsReserved(method string) bool {
	return strings.HasPrefix(method, "rpc.")
}
