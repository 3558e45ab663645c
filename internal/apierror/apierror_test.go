package apierror

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteToUserFacing(t *testing.T) {
	rec := httptest.NewRecorder()
	New(http.StatusBadRequest, "failed to decode image").WriteTo(rec)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "failed to decode image", body["message"])
}

func TestWriteToOpaque(t *testing.T) {
	rec := httptest.NewRecorder()
	Opaque(http.StatusInternalServerError).WriteTo(rec)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "missing Content-Type header", New(400, "missing Content-Type header").Error())
	assert.Equal(t, "Internal Server Error", Opaque(500).Error())
}
