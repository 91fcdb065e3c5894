package launch

import (
	"context"
	"errors"
	"sync"

	"github.com/tjper/spacex/internal/spacex"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Lister fetches the most recent launches.
type Lister interface {
	FetchLaunches(context.Context, int) ([]spacex.LaunchSummary, error)
}

// NewList creates a new List instance.
func NewList(logger *zap.Logger, lister Lister, pageSize int) *List {
	return &List{
		logger:   logger,
		lister:   lister,
		pageSize: pageSize,
		group:    new(singleflight.Group),
		mutex:    new(sync.RWMutex),
		state:    Idle,
		launches: make([]spacex.LaunchSummary, 0),
	}
}

// List is the collection of recent launches. Callers of Fetch that arrive
// while a fetch is in flight wait for that fetch instead of starting another.
type List struct {
	logger   *zap.Logger
	lister   Lister
	pageSize int
	group    *singleflight.Group

	mutex    *sync.RWMutex
	state    State
	launches []spacex.LaunchSummary
	err      error

	// flight is the fetch callers join. latest is the most recently started
	// fetch and is the only one whose result is applied.
	flight *flight
	latest *flight
}

// flight is the context shared by the callers of an in-flight fetch. It is
// cancelled once every caller has returned.
type flight struct {
	ctx     context.Context
	cancel  context.CancelFunc
	callers int
}

const fetchKey = "launches"

// Fetch retrieves up to the List's page size of launches. The collection is
// replaced only when the fetch succeeds. If ctx is cancelled while waiting,
// spacex.ErrInterrupted is returned. Callers that arrive while a fetch is in
// flight share it, and the fetch itself is cancelled only once all of them
// have been cancelled.
func (l *List) Fetch(ctx context.Context) error {
	f := l.join(ctx)
	defer l.leave(f)

	ch := l.group.DoChan(fetchKey, func() (interface{}, error) {
		l.setState(Pending)

		launches, err := l.lister.FetchLaunches(f.ctx, l.pageSize)
		l.complete(f, launches, err)
		return nil, err
	})

	select {
	case <-ctx.Done():
		return spacex.ErrInterrupted
	case res := <-ch:
		return res.Err
	}
}

// Launches retrieves the most recently fetched launches.
func (l *List) Launches() []spacex.LaunchSummary {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	launches := make([]spacex.LaunchSummary, len(l.launches))
	copy(launches, l.launches)
	return launches
}

// State retrieves the List's State.
func (l *List) State() State {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.state
}

// Err retrieves the error of the most recent fetch, if it failed.
func (l *List) Err() error {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.err
}

// --- helpers ---

func (l *List) join(ctx context.Context) *flight {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if l.flight == nil {
		fctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		l.flight = &flight{ctx: fctx, cancel: cancel}
		l.latest = l.flight
	}
	l.flight.callers++
	return l.flight
}

func (l *List) leave(f *flight) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	f.callers--
	if f.callers > 0 {
		return
	}
	// Callers arriving from here on must not join the cancelled fetch.
	f.cancel()
	l.group.Forget(fetchKey)
	l.flight = nil
}

func (l *List) setState(state State) {
	l.mutex.Lock()
	l.state = state
	l.mutex.Unlock()
}

func (l *List) complete(f *flight, launches []spacex.LaunchSummary, err error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if l.latest != f {
		if err != nil {
			logFetchFailure(l.logger, "fetch launches", err)
		}
		return
	}

	if err != nil {
		l.state = Failure
		l.err = err
		logFetchFailure(l.logger, "fetch launches", err)
		return
	}

	l.state = Success
	l.err = nil
	l.launches = launches
}

func logFetchFailure(logger *zap.Logger, msg string, err error) {
	if errors.Is(err, spacex.ErrInterrupted) {
		logger.Info(msg+" interrupted")
		return
	}
	logger.Warn(msg, zap.Error(err))
}
