package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessWithMeta(t *testing.T) {
	rec := httptest.NewRecorder()

	SuccessWithMeta(rec, http.StatusOK, "ok", []string{"a"}, &Meta{Found: 1, Total: 3, Query: "search=a"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, map[string]any{"found": float64(1), "total": float64(3), "query": "search=a"}, body["meta"])
}

func TestServiceUnavailable(t *testing.T) {
	rec := httptest.NewRecorder()

	ServiceUnavailable(rec, "", map[string]any{"status": "loading"})

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Service unavailable","error":{"status":"loading"}}`, rec.Body.String())
}

func TestErrorDefaults(t *testing.T) {
	for _, tc := range []struct {
		write   func(http.ResponseWriter)
		code    int
		message string
	}{
		{func(w http.ResponseWriter) { NotFound(w, "") }, http.StatusNotFound, "Resource not found"},
		{func(w http.ResponseWriter) { BadRequest(w, "") }, http.StatusBadRequest, "Bad request"},
		{func(w http.ResponseWriter) { InternalServerError(w, "") }, http.StatusInternalServerError, "Internal server error"},
	} {
		rec := httptest.NewRecorder()
		tc.write(rec)

		var body Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, tc.code, rec.Code)
		assert.False(t, body.Success)
		assert.Equal(t, tc.message, body.Message)
	}
}
