package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteText_Success(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteText(w, "203.0.113.7", http.StatusOK)

	require.NoError(t, err)
	assert.Equal(t, len("203.0.113.7"), n)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "203.0.113.7", w.Body.String())
}

func TestWriteText_EmptyBody(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteText(w, "", http.StatusOK)

	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestWriteText_CustomStatusCode(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteText(w, "not found", http.StatusNotFound)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewHTTPClient_Independent(t *testing.T) {
	c1 := NewHTTPClient()
	c2 := NewHTTPClient()

	require.NotNil(t, c1.Client)
	assert.NotSame(t, c1.Client, c2.Client)
}

func TestNewTraceID_IsUUIDv7(t *testing.T) {
	id := NewTraceID()

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, id, NewTraceID())
}
