package health

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping() error { return s.err }

func TestHandleGet(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		handler := NewHealthHandler(stubPinger{}, "test")

		req := httptest.NewRequest("GET", "/health", nil)
		rec := httptest.NewRecorder()
		handler.HandleGet(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var status Status
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
		assert.Equal(t, "healthy", status.Status)
		assert.Equal(t, "test", status.Environment)
		assert.True(t, status.Database)
		assert.NotEmpty(t, status.Timestamp)
	})

	t.Run("Database unreachable", func(t *testing.T) {
		handler := NewHealthHandler(stubPinger{err: errors.New("connection refused")}, "test")

		req := httptest.NewRequest("GET", "/health", nil)
		rec := httptest.NewRecorder()
		handler.HandleGet(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		var status Status
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
		assert.Equal(t, "unhealthy", status.Status)
		assert.False(t, status.Database)
	})
}
