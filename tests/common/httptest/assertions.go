//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errorBody mirrors httperr.Response on the wire.
type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail map[string]any `json:"detail"`
}

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "response: %s", w.Body.String()) {
		return
	}
	if target != nil && w.Body.Len() > 0 {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "failed to decode %s", w.Body.String())
	}
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, msgContains string) {
	t.Helper()

	body := decodeError(t, w, expectedStatus)
	if msgContains != "" {
		assert.Contains(t, body.Error.Message, msgContains, "unexpected error message")
	}
}

// AssertLoginRedirect checks a 401 that tells the client where to sign in again.
func AssertLoginRedirect(t *testing.T, w *httptest.ResponseRecorder, loginPath string) {
	t.Helper()

	body := decodeError(t, w, 401)
	assert.Equal(t, loginPath, body.Detail["redirect"])
}

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int) errorBody {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "response: %s", w.Body.String())
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "failed to decode error %s", w.Body.String())
	return body
}
