package rest

import (
	"net/http"

	ihttp "github.com/tjper/spacex/internal/http"
	"github.com/tjper/spacex/internal/launch"
)

type Launches struct{ API }

func (ep Launches) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params := struct {
		Refresh string `validate:"omitempty,oneof=true false"`
	}{
		Refresh: r.URL.Query().Get("refresh"),
	}
	if err := ep.valid.Struct(params); err != nil {
		ihttp.ErrBadRequest(ep.requestLogger(r), w, err)
		return
	}

	if params.Refresh == "true" || ep.list.State() != launch.Success {
		if err := ep.list.Fetch(r.Context()); err != nil {
			ep.fetchError(w, r, err)
			return
		}
	}

	ep.encode(w, r, http.StatusOK, LaunchSummariesFromModel(ep.list.Launches()))
}

type Launch struct{ API }

func (ep Launch) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := ep.launchID(w, r)
	if !ok {
		return
	}

	detail := launch.NewDetail(ep.requestLogger(r), ep.client, ep.favorites)
	if err := detail.Fetch(r.Context(), id); err != nil {
		ep.fetchError(w, r, err)
		return
	}

	ep.encode(
		w,
		r,
		http.StatusOK,
		LaunchDetailFromModel(*detail.Launch(), detail.IsSaved(r.Context())),
	)
}
