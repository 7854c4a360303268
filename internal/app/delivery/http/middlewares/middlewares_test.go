package middlewares

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"patient-service/internal/app/config"
	"patient-service/internal/pkg/constvars"
	"patient-service/internal/pkg/utils"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMiddlewares() *Middlewares {
	return NewMiddlewares(zap.NewNop(), &config.InternalConfig{
		App: config.App{
			MaxRequests:                 100,
			RequestBodyLimitInMegabyte:  1,
			PredictMaxRequestsPerMinute: 2,
			PredictBlockTimeInSeconds:   60,
		},
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares()

	var seen string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	}))

	t.Run("Generated", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Kept from client", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-id-1")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-id-1", seen)
		assert.Equal(t, "client-id-1", rr.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), constvars.ErrClientCannotProcessRequest)
}

func TestErrorHandler_RepanicsAbort(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestBodyLimit(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.BodyLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var dst map[string]interface{}
		if err := utils.ParseJSONBody(r, &dst); err != nil {
			utils.BuildErrorResponse(zap.NewNop(), w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("Within limit", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ravi"}`)))
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("Too large", func(t *testing.T) {
		body := `{"name":"` + strings.Repeat("a", 2<<20) + `"}`
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body)))
		assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
		assert.Contains(t, rr.Body.String(), constvars.ErrClientRequestBodyTooLarge)
	})
}

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	limiter := newTestMiddlewares().PredictRateLimiter()
	current := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return current }

	handler := limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	call := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodPost, "/predict", nil)
		req.RemoteAddr = remoteAddr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1:5000"))
	assert.Equal(t, http.StatusOK, call("10.0.0.1:5001"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:5002"))

	// other clients keep their own bucket
	assert.Equal(t, http.StatusOK, call("10.0.0.2:5000"))

	// still blocked once tokens have refilled
	current = current.Add(40 * time.Second)
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:5003"))

	current = current.Add(21 * time.Second)
	assert.Equal(t, http.StatusOK, call("10.0.0.1:5004"))
}
