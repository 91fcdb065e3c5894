package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	ihttp "github.com/tjper/spacex/internal/http"
	"github.com/tjper/spacex/internal/spacex"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

var errNotPersisted = errors.New("saved launches not persisted")

const launchIDParam = "launchID"

// requestLogger returns the API logger annotated with r's request scoped
// fields.
func (api API) requestLogger(r *http.Request) *zap.Logger {
	return api.logger.With(ihttp.ContextFields(r.Context())...)
}

// launchID retrieves and validates the launchID URL parameter. On failure a
// response has been written and the bool return is false.
func (api API) launchID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, launchIDParam)
	if err := api.valid.Var(id, "required,launchid"); err != nil {
		ihttp.ErrBadRequest(api.requestLogger(r), w, err)
		return "", false
	}
	return id, true
}

// fetchError writes the response matching a launch client failure.
func (api API) fetchError(w http.ResponseWriter, r *http.Request, err error) {
	logger := api.requestLogger(r)

	var reqErr *spacex.RequestError
	switch {
	case errors.Is(err, spacex.ErrFetchDetails):
		ihttp.ErrNotFound(w)
	case errors.Is(err, spacex.ErrInterrupted):
		ihttp.ErrServiceUnavailable(logger, w, err)
	case errors.As(err, &reqErr):
		ihttp.ErrBadGateway(logger, w, reqErr.Message, err)
	default:
		ihttp.ErrInternal(logger, w, err)
	}
}

func (api API) encode(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		api.requestLogger(r).Error("while encoding json response", zap.Error(err))
	}
}
