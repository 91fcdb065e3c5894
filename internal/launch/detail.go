package launch

import (
	"context"
	"errors"
	"sync"

	"github.com/tjper/spacex/internal/spacex"

	"go.uber.org/zap"
)

// ErrNotLoaded indicates an operation required a loaded launch and none was.
var ErrNotLoaded = errors.New("launch detail not loaded")

// DetailFetcher fetches a single launch by id.
type DetailFetcher interface {
	FetchLaunchDetail(context.Context, string) (*spacex.LaunchDetail, error)
}

// Favorites is the saved launches collection a Detail toggles membership in.
type Favorites interface {
	IsSaved(context.Context, string) bool
	Save(context.Context, spacex.LaunchDetail)
	Unsave(context.Context, string)
}

// NewDetail creates a new Detail instance.
func NewDetail(logger *zap.Logger, fetcher DetailFetcher, favorites Favorites) *Detail {
	return &Detail{
		logger:    logger,
		fetcher:   fetcher,
		favorites: favorites,
		mutex:     new(sync.RWMutex),
		state:     Idle,
	}
}

// Detail is a single launch and its saved status.
type Detail struct {
	logger    *zap.Logger
	fetcher   DetailFetcher
	favorites Favorites

	mutex  *sync.RWMutex
	state  State
	launch *spacex.LaunchDetail
	err    error
}

// Fetch loads the launch identified by id. A failed fetch leaves no launch
// loaded.
func (d *Detail) Fetch(ctx context.Context, id string) error {
	d.mutex.Lock()
	d.state = Pending
	d.mutex.Unlock()

	launch, err := d.fetcher.FetchLaunchDetail(ctx, id)

	d.mutex.Lock()
	defer d.mutex.Unlock()

	if err != nil {
		d.state = Failure
		d.launch = nil
		d.err = err
		logFetchFailure(d.logger.With(zap.String("launch_id", id)), "fetch launch detail", err)
		return err
	}

	d.state = Success
	d.launch = launch
	d.err = nil
	return nil
}

// Launch retrieves the loaded launch, or nil if none is loaded.
func (d *Detail) Launch() *spacex.LaunchDetail {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return d.launch
}

// State retrieves the Detail's State.
func (d *Detail) State() State {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return d.state
}

// Err retrieves the error of the most recent fetch, if it failed.
func (d *Detail) Err() error {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return d.err
}

// IsSaved indicates if the loaded launch is saved. False when nothing is
// loaded.
func (d *Detail) IsSaved(ctx context.Context) bool {
	launch := d.Launch()
	if launch == nil {
		return false
	}
	return d.favorites.IsSaved(ctx, launch.ID)
}

// ToggleSave saves the loaded launch if it is not saved, and unsaves it if it
// is. The returned bool is the launch's saved status afterwards, as read back
// from the favorites; a failed write therefore reports the unchanged status.
func (d *Detail) ToggleSave(ctx context.Context) (bool, error) {
	launch := d.Launch()
	if launch == nil {
		return false, ErrNotLoaded
	}

	if d.favorites.IsSaved(ctx, launch.ID) {
		d.favorites.Unsave(ctx, launch.ID)
	} else {
		d.favorites.Save(ctx, *launch)
	}

	return d.favorites.IsSaved(ctx, launch.ID), nil
}
