// Package http provides the HTTP response helpers and middleware shared by
// the spacex REST surface.
package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

func ErrInternal(logger *zap.Logger, w http.ResponseWriter, err error) {
	logger.Error("internal server error", zap.Error(err))
	http.Error(
		w,
		"An unexpected internal server error occurred, please try again. If the issue persists, please contact support",
		http.StatusInternalServerError,
	)
}

func ErrBadRequest(logger *zap.Logger, w http.ResponseWriter, err error) {
	logger.Warn("bad request", zap.Error(err))

	var valerrors validator.ValidationErrors
	if !errors.As(err, &valerrors) {
		http.Error(
			w,
			"An unknown field is invalid. Please update your request and retry.",
			http.StatusBadRequest,
		)
		return
	}

	errormsgs := make([]string, len(valerrors))
	for i, err := range valerrors {
		errormsgs[i] = fmt.Sprintf("\"%s\" failed \"%s\" validator", err.Field(), err.Tag())
	}

	http.Error(
		w,
		fmt.Sprintf("Field(s) validation failure: %s. Please update your request and retry.", strings.Join(errormsgs, ", ")),
		http.StatusBadRequest,
	)
}

func ErrNotFound(w http.ResponseWriter) {
	http.Error(
		w,
		"Resource not found. If this is unexpected, please contact support.",
		http.StatusNotFound,
	)
}

// ErrBadGateway responds with msg when an upstream dependency failed. msg
// must be safe to show to clients; err is only logged.
func ErrBadGateway(logger *zap.Logger, w http.ResponseWriter, msg string, err error) {
	logger.Warn("bad gateway", zap.Error(err))
	http.Error(w, msg, http.StatusBadGateway)
}

// ErrServiceUnavailable responds when the request was abandoned before it
// could be served, typically because the client went away.
func ErrServiceUnavailable(logger *zap.Logger, w http.ResponseWriter, err error) {
	logger.Info("service unavailable", zap.Error(err))
	http.Error(
		w,
		"Service unavailable; the request was interrupted. Please retry.",
		http.StatusServiceUnavailable,
	)
}
