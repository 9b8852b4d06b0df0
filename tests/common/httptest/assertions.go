//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"sauna-booking/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
)

// AssertSuccessResponse checks the status and decodes a 2xx body into target
// when one is given.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equalf(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if target == nil || w.Code >= 300 {
		return
	}
	assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), target), "failed to decode response JSON: %s", w.Body.String())
}

// ErrorMessage decodes the {"error":{"message":...}} body.
func ErrorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body httperr.Response
	assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), &body), "failed to decode error JSON: %s", w.Body.String())
	return body.Error.Message
}

// AssertErrorResponse checks the status and, when given, the exact user-facing message.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) {
	t.Helper()

	assert.Equalf(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())
	msg := ErrorMessage(t, w)
	if expectedMsg != "" {
		assert.Equal(t, expectedMsg, msg, "response error message mismatch")
	}
}
