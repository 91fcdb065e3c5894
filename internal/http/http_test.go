package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestErrBadRequest(t *testing.T) {
	t.Parallel()

	type params struct {
		PageSize int `validate:"min=1"`
	}
	valerr := validator.New().Struct(params{PageSize: 0})
	require.NotNil(t, valerr)

	tests := map[string]struct {
		err      error
		contains string
	}{
		"validation error": {err: valerr, contains: `"PageSize" failed "min" validator`},
		"other error":      {err: errors.New("bad"), contains: "An unknown field is invalid"},
	}

	for name, test := range tests {
		test := test

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			rr := httptest.NewRecorder()
			ErrBadRequest(zap.NewNop(), rr, test.err)

			require.Equal(t, http.StatusBadRequest, rr.Code)
			require.Contains(t, rr.Body.String(), test.contains)
		})
	}
}

func TestErrBadGateway(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	ErrBadGateway(zap.NewNop(), rr, "Something went wrong!", errors.New("dial tcp: refused"))

	require.Equal(t, http.StatusBadGateway, rr.Code)
	require.Equal(t, "Something went wrong!\n", rr.Body.String())
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Parallel()

	var (
		seen   uuid.UUID
		exists bool
	)
	handler := RequestIDMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, exists = RequestIDFromContext(r.Context())
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/launches", nil))

	require.True(t, exists)
	require.Equal(t, seen.String(), rr.Header().Get(RequestIDHeader))

	fields := ContextFields(WithRequestID(httptest.NewRequest(http.MethodGet, "/", nil).Context(), seen))
	require.Len(t, fields, 1)
	require.Equal(t, "request_id", fields[0].Key)
}

func TestZapLogFormatter(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)

	handler := RequestIDMiddleware()(
		middleware.RequestLogger(NewZapLogFormatter(zap.New(core)))(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			}),
		),
	)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/launches", nil))

	entries := logs.FilterMessage("[HTTP Request]").All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.ErrorLevel, entries[0].Level)

	fields := entries[0].ContextMap()
	require.Equal(t, "/v1/launches", fields["path"])
	require.Equal(t, int64(http.StatusBadGateway), fields["status"])
	require.Equal(t, rr.Header().Get(RequestIDHeader), fields["request_id"])
}
