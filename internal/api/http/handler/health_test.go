package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Rahimov97/Another-Knowelege-Base/internal/mocks"
	"github.com/Rahimov97/Another-Knowelege-Base/internal/testutil"
)

func TestHealth_Check(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantBody   string
	}{
		{name: "ok", wantStatus: http.StatusOK, wantBody: `{"status":"ok"}`},
		{name: "store down", pingErr: assert.AnError, wantStatus: http.StatusServiceUnavailable, wantBody: `{"status":"unavailable"}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pinger := mocks.NewPinger(t)
			pinger.On("Ping", mock.Anything).Return(tt.pingErr).Once()

			h := NewHealth(pinger, testutil.MakeNoopLogger())
			w := do(t, newTestRouter(func(r chi.Router) { r.Get("/health", h.Check) }), http.MethodGet, "/health", "")

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestHealth_Root(t *testing.T) {
	t.Parallel()

	h := NewHealth(mocks.NewPinger(t), testutil.MakeNoopLogger())

	w := httptest.NewRecorder()
	h.Root(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, Greeting, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}
