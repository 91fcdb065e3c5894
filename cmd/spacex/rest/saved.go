package rest

import (
	"net/http"

	ihttp "github.com/tjper/spacex/internal/http"
	"github.com/tjper/spacex/internal/launch"
)

type Saved struct{ API }

func (ep Saved) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	saved := launch.NewSaved(ep.favorites)
	ep.encode(w, r, http.StatusOK, SavedFromModel(saved.Load(r.Context())))
}

type SaveLaunch struct{ API }

func (ep SaveLaunch) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := ep.launchID(w, r)
	if !ok {
		return
	}

	detail := launch.NewDetail(ep.requestLogger(r), ep.client, ep.favorites)
	if err := detail.Fetch(r.Context(), id); err != nil {
		ep.fetchError(w, r, err)
		return
	}

	ep.favorites.Save(r.Context(), *detail.Launch())
	if !detail.IsSaved(r.Context()) {
		ihttp.ErrInternal(ep.requestLogger(r), w, errNotPersisted)
		return
	}

	ep.encode(w, r, http.StatusOK, LaunchDetailFromModel(*detail.Launch(), true))
}

type UnsaveLaunch struct{ API }

func (ep UnsaveLaunch) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, ok := ep.launchID(w, r)
	if !ok {
		return
	}

	ep.favorites.Unsave(r.Context(), id)
	if ep.favorites.IsSaved(r.Context(), id) {
		ihttp.ErrInternal(ep.requestLogger(r), w, errNotPersisted)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
