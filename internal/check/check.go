// ABOUTME: Message classification for the jrpccheck CLI
// ABOUTME: Wraps the jrpc decoders into verdicts and YAML conformance cases

package check

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vitiral/jrpc"
)

// Kind is the classification of a single message.
type Kind string

const (
	KindRequest      Kind = "request"
	KindNotification Kind = "notification"
	KindSuccess      Kind = "success"
	KindError        Kind = "error"
	KindInvalid      Kind = "invalid"
)

type Options struct {
	// Expect narrows classification: "request", "response", or "auto".
	Expect string
	// StrictBand fails error responses whose implementation-defined
	// code lies outside the reserved -32099..-32000 band.
	StrictBand bool
}

// Verdict is the outcome of classifying one message.
type Verdict struct {
	Kind   Kind
	Detail string
	// Code carries the protocol error code: the classification failure
	// for invalid requests, or an error response's own code.
	Code jrpc.ErrorCode
	// OK is false for invalid messages and for strict-band violations.
	OK bool
}

// Message classifies a single raw message.
func Message(data []byte, opts Options) Verdict {
	switch opts.Expect {
	case "request":
		return request(data)
	case "response":
		return response(data, opts.StrictBand)
	default:
		reqV := request(data)
		if reqV.OK {
			return reqV
		}
		respV := response(data, opts.StrictBand)
		if respV.OK {
			return respV
		}
		// Neither side matched. The response decoder produces the most
		// specific diagnostics, so its detail wins, but the request-side
		// protocol code still names the failure class.
		if respV.Code == 0 {
			respV.Code = reqV.Code
		}
		return respV
	}
}

func request(data []byte) Verdict {
	req, errResp := jrpc.ParseRequest[string](data)
	if errResp != nil {
		return Verdict{
			Kind:   KindInvalid,
			Code:   errResp.Error.Code,
			Detail: fmt.Sprintf("%s: %v", errResp.Error.Message, errResp.Error.Data),
		}
	}
	if req.ID.IsNotification() {
		return Verdict{Kind: KindNotification, OK: true, Detail: fmt.Sprintf("method %q", req.Method)}
	}
	return Verdict{Kind: KindRequest, OK: true, Detail: fmt.Sprintf("method %q, id %s", req.Method, req.ID)}
}

func response(data []byte, strictBand bool) Verdict {
	resp, err := jrpc.DecodeResponse[json.RawMessage](data)
	if err != nil {
		return Verdict{Kind: KindInvalid, Detail: err.Error()}
	}
	if resp.IsError() {
		code := resp.Error.Error.Code
		v := Verdict{Kind: KindError, Code: code, OK: true, Detail: fmt.Sprintf("%s, id %s", code, resp.Error.ID)}
		if strictBand && !code.IsValid() {
			v.OK = false
			v.Detail = fmt.Sprintf("error code %d is outside the reserved server-error band", int64(code))
		}
		return v
	}
	return Verdict{Kind: KindSuccess, OK: true, Detail: fmt.Sprintf("id %s", resp.ID())}
}

// Case is one entry of a YAML conformance file.
type Case struct {
	Name   string `yaml:"name"`
	Input  string `yaml:"input"`
	Expect Kind   `yaml:"expect"`
	// Code, when set, additionally requires the verdict's protocol code
	// to match.
	Code *int64 `yaml:"code"`
}

// Result pairs a case with its verdict.
type Result struct {
	Case    Case
	Verdict Verdict
	Pass    bool
	Reason  string
}

// LoadCases reads a YAML conformance file: a list of {name, input,
// expect, code} entries.
func LoadCases(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cases []Case
	if err := yaml.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	for i, c := range cases {
		if c.Name == "" {
			return nil, fmt.Errorf("%s: case %d has no name", path, i)
		}
		if c.Input == "" {
			return nil, fmt.Errorf("%s: case %q has no input", path, c.Name)
		}
		switch c.Expect {
		case KindRequest, KindNotification, KindSuccess, KindError, KindInvalid:
		default:
			return nil, fmt.Errorf("%s: case %q has unknown expect %q", path, c.Name, c.Expect)
		}
	}
	return cases, nil
}

// Run classifies every case and compares against its expectation.
func Run(cases []Case, opts Options) []Result {
	results := make([]Result, 0, len(cases))
	for _, c := range cases {
		v := Message([]byte(c.Input), opts)
		r := Result{Case: c, Verdict: v, Pass: v.Kind == c.Expect}
		if r.Pass && c.Code != nil && v.Code != jrpc.ErrorCode(*c.Code) {
			r.Pass = false
			r.Reason = fmt.Sprintf("expected code %d, got %d", *c.Code, int64(v.Code))
		}
		if !r.Pass && r.Reason == "" {
			r.Reason = fmt.Sprintf("expected %s, classified as %s (%s)", c.Expect, v.Kind, v.Detail)
		}
		results = append(results, r)
	}
	return results
}
