// ABOUTME: Tests for jrpccheck message classification
// ABOUTME: Covers every verdict kind, strict-band mode, and YAML case files

package check

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitiral/jrpc"
)

func TestMessageClassifiesRequest(t *testing.T) {
	v := Message([]byte(`{"jsonrpc":"2.0","method":"sum","params":[1,2],"id":1}`), Options{})
	assert.Equal(t, KindRequest, v.Kind)
	assert.True(t, v.OK)
}

func TestMessageClassifiesNotification(t *testing.T) {
	v := Message([]byte(`{"jsonrpc":"2.0","method":"ping"}`), Options{})
	assert.Equal(t, KindNotification, v.Kind)
	assert.True(t, v.OK)
}

func TestMessageClassifiesSuccess(t *testing.T) {
	v := Message([]byte(`{"jsonrpc":"2.0","result":3,"id":1}`), Options{})
	assert.Equal(t, KindSuccess, v.Kind)
	assert.True(t, v.OK)
}

func TestMessageClassifiesError(t *testing.T) {
	v := Message([]byte(`{"jsonrpc":"2.0","error":{"code":-32050,"message":"busy"},"id":1}`), Options{})
	assert.Equal(t, KindError, v.Kind)
	assert.True(t, v.OK)
	assert.Equal(t, jrpc.ErrorCode(-32050), v.Code)
}

func TestMessageClassifiesInvalid(t *testing.T) {
	v := Message([]byte(`{"valid":"json","but":"nothing else"}`), Options{})
	assert.Equal(t, KindInvalid, v.Kind)
	assert.False(t, v.OK)
	assert.NotEmpty(t, v.Detail)
}

func TestMessageExpectRequestRejectsResponse(t *testing.T) {
	v := Message([]byte(`{"jsonrpc":"2.0","result":3,"id":1}`), Options{Expect: "request"})
	assert.Equal(t, KindInvalid, v.Kind)
	assert.Equal(t, jrpc.CodeInvalidRequest, v.Code)
}

func TestMessageStrictBand(t *testing.T) {
	in := []byte(`{"jsonrpc":"2.0","error":{"code":-31999,"message":"x"},"id":1}`)

	v := Message(in, Options{Expect: "response"})
	assert.True(t, v.OK)

	v = Message(in, Options{Expect: "response", StrictBand: true})
	assert.Equal(t, KindError, v.Kind)
	assert.False(t, v.OK)
	assert.Contains(t, v.Detail, "reserved server-error band")
}

func TestLoadAndRunCases(t *testing.T) {
	content := `
- name: simple call
  input: '{"jsonrpc":"2.0","method":"sum","id":1}'
  expect: request
- name: fire and forget
  input: '{"jsonrpc":"2.0","method":"log"}'
  expect: notification
- name: parse error classified
  input: 'garbage'
  expect: invalid
  code: -32700
- name: server error code
  input: '{"jsonrpc":"2.0","error":{"code":-32000,"message":"boom"},"id":4}'
  expect: error
  code: -32000
`
	path := filepath.Join(t.TempDir(), "cases.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cases, err := LoadCases(path)
	require.NoError(t, err)
	require.Len(t, cases, 4)

	results := Run(cases, Options{})
	for _, r := range results {
		assert.True(t, r.Pass, "case %q failed: %s", r.Case.Name, r.Reason)
	}
}

func TestRunReportsFailure(t *testing.T) {
	cases := []Case{{
		Name:   "wrong expectation",
		Input:  `{"jsonrpc":"2.0","result":1,"id":1}`,
		Expect: KindError,
	}}
	results := Run(cases, Options{})
	require.Len(t, results, 1)
	assert.False(t, results[0].Pass)
	assert.Contains(t, results[0].Reason, "classified as success")
}

func TestLoadCasesValidation(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("- name: x\n  input: '{}'\n  expect: sideways\n"), 0600))
	_, err := LoadCases(bad)
	require.Error(t, err)

	missing := filepath.Join(dir, "missing.yaml")
	_, err = LoadCases(missing)
	require.Error(t, err)
}
