package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusCreated, "created", map[string]string{"name": "x"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "created", body["message"])
	assert.NotNil(t, body["data"])
	assert.NotContains(t, body, "count")
	assert.NotContains(t, body, "date")
}

func TestSuccessWithCount(t *testing.T) {
	rec := httptest.NewRecorder()
	SuccessWithCount(rec, http.StatusOK, "counted", nil, 0)

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	// A zero count must still be serialized.
	assert.Equal(t, float64(0), body["count"])
}

func TestSuccessWithDate(t *testing.T) {
	rec := httptest.NewRecorder()
	SuccessWithDate(rec, []string{}, 2, "05-JAN-24")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "05-JAN-24", body["date"])
	assert.Equal(t, float64(2), body["count"])
	assert.NotContains(t, body, "message")
}

func TestErrorAndHelpers(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, http.StatusBadRequest, "bad input", nil)
	body := decode(t, rec)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "bad input", body["message"])

	rec = httptest.NewRecorder()
	Conflict(rec, "")
	body = decode(t, rec)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Duplicate value exists!", body["message"])

	rec = httptest.NewRecorder()
	NotFound(rec, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	InternalServerError(rec, "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{"Name": "Name is required"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Validation failed", body["message"])
	assert.NotNil(t, body["error"])
}
