package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-stock-dashboard/internal/config"
	"github.com/MKhiriev/go-stock-dashboard/internal/devserver"
	"github.com/MKhiriev/go-stock-dashboard/internal/logger"
	"github.com/MKhiriev/go-stock-dashboard/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// newTestHandler создаёт Handler с nop-логгером (без вывода в stdout).
func newTestHandler() *Handler {
	backend := devserver.NewBackend(&config.ServerConfig{
		TokenSignKey:  "test-key",
		TokenIssuer:   "go-stock-dashboard",
		TokenDuration: time.Hour,
	}, logger.Nop(), devserver.WithBcryptCost(bcrypt.MinCost))
	return NewHandler(backend, "test", logger.Nop())
}

// ---- withTraceID ----

func TestWithTraceID_TableTest(t *testing.T) {
	tests := []struct {
		name            string
		requestTraceID  string
		wantSameTraceID bool // ответный header совпадает с requestTraceID
	}{
		{name: "trace ID from request header is reused", requestTraceID: "my-custom-trace-id", wantSameTraceID: true},
		{name: "no trace ID in request generates UUID"},
		{name: "UUID as incoming trace ID", requestTraceID: "550e8400-e29b-41d4-a716-446655440000", wantSameTraceID: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler()

			var ctxTraceID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxTraceID, _ = utils.GetTraceIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.requestTraceID != "" {
				req.Header.Set(traceIDHeader, tt.requestTraceID)
			}
			rr := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rr, req)

			got := rr.Header().Get(traceIDHeader)
			assert.Equal(t, got, ctxTraceID)
			if tt.wantSameTraceID {
				assert.Equal(t, tt.requestTraceID, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
		})
	}
}

// ---- auth ----

func TestAuth(t *testing.T) {
	h := newTestHandler()
	_, err := h.backend.Register(t.Context(), registerRequest("ana@example.com"))
	require.NoError(t, err)
	token, err := h.backend.Login(t.Context(), "ana@example.com", "segredo123")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantUserID int64
	}{
		{name: "valid bearer token", header: "Bearer " + token.AccessToken, wantStatus: http.StatusOK, wantUserID: token.User.ID},
		{name: "lower-case scheme", header: "bearer " + token.AccessToken, wantStatus: http.StatusOK, wantUserID: token.User.ID},
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "no scheme", header: token.AccessToken, wantStatus: http.StatusUnauthorized},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantStatus: http.StatusUnauthorized},
		{name: "tampered token", header: "Bearer " + token.AccessToken + "x", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID int64
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = utils.GetUserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantUserID, gotUserID)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
				assert.JSONEq(t, `{"detail":"Could not validate credentials"}`, rr.Body.String())
			}
		})
	}
}

// ---- withLogging / responseWriter ----

func TestWithLogging_PassesResponseThrough(t *testing.T) {
	h := newTestHandler()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("abc"))
	})

	rr := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "abc", rr.Body.String())
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	n, err := w.Write([]byte("hello"))
	require.NoError(t, err)

	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 5, w.size)
}

// ---- errors mapper ----

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{devserver.ErrEmailTaken, http.StatusBadRequest},
		{devserver.ErrWrongCredentials, http.StatusUnauthorized},
		{fmt.Errorf("wrapped: %w", devserver.ErrCalculationNotFound), http.StatusNotFound},
		{devserver.ErrUserNotFound, http.StatusNotFound},
		{devserver.ErrNotCSV, http.StatusBadRequest},
		{ErrInvalidCalculationID, http.StatusUnprocessableEntity},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFromError(tt.err), "%v", tt.err)
	}
}

func TestDetailFromError(t *testing.T) {
	err := fmt.Errorf("%w: lead time", devserver.ErrInvalidParameters)
	assert.Equal(t, "Erro de validação: "+err.Error(), detailFromError(err, http.StatusBadRequest))

	assert.Equal(t, devserver.ErrNotCSV.Error(), detailFromError(devserver.ErrNotCSV, http.StatusBadRequest))
	assert.Equal(t, "Internal Server Error", detailFromError(errors.New("db down"), http.StatusInternalServerError))
}
