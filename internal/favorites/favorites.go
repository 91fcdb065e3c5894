// Package favorites persists the set of saved launches. The set is stored as
// one serialized collection under a single namespaced key of a preference
// store and is keyed by launch id.
//
// Persistence is best-effort: read, decode, and write failures are logged
// and absorbed. Callers never receive an error; a failure is observable only
// as the saved set not changing.
package favorites

import (
	"context"
	"errors"
	"sync"

	"github.com/tjper/spacex/internal/prefs"
	"github.com/tjper/spacex/internal/spacex"

	"go.uber.org/zap"
)

// DefaultKey is the preference key the saved launches collection is stored
// under.
const DefaultKey = "com.marber.SpaceX.saved-launches"

// ErrPersistenceDecode indicates a stored collection or entry could not be
// deserialized. It is only ever logged.
var ErrPersistenceDecode = errors.New("saved launch decode failure")

// NewStore creates a new Store instance persisting to store.
func NewStore(logger *zap.Logger, store prefs.Store, options ...Option) *Store {
	s := &Store{
		logger: logger,
		prefs:  store,
		key:    DefaultKey,
		mutex:  new(sync.Mutex),
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// Option is a function that configures a Store. This is typically used with
// NewStore.
type Option func(*Store)

// WithKey configures the Store to persist under key instead of DefaultKey.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// Store is the saved launches collection. Read-modify-write cycles within a
// process are serialized; writers in different processes race and the last
// write wins.
type Store struct {
	logger *zap.Logger
	prefs  prefs.Store
	key    string

	mutex *sync.Mutex
}

// LoadAll retrieves every saved launch that can be decoded. An absent
// collection yields an empty slice.
func (s *Store) LoadAll(ctx context.Context) []spacex.LaunchDetail {
	s.mutex.Lock()
	blobs, _ := s.load(ctx)
	s.mutex.Unlock()

	details := make([]spacex.LaunchDetail, 0, len(blobs))
	for i, blob := range blobs {
		detail, err := decodeDetail(blob)
		if err != nil {
			s.logger.Warn("skipping saved launch", zap.Int("index", i), zap.Error(err))
			continue
		}
		details = append(details, *detail)
	}

	return details
}

// IsSaved indicates if a launch with id is in the saved collection.
func (s *Store) IsSaved(ctx context.Context, id string) bool {
	for _, detail := range s.LoadAll(ctx) {
		if detail.ID == id {
			return true
		}
	}
	return false
}

// Save upserts detail: any entry sharing detail.ID is removed and detail is
// appended, then the collection is written back in a single Set.
func (s *Store) Save(ctx context.Context, detail spacex.LaunchDetail) {
	logger := s.logger.With(zap.String("launch_id", detail.ID))
	if detail.ID == "" {
		logger.Warn("refusing to save launch without id")
		return
	}

	entry, err := encodeDetail(detail)
	if err != nil {
		logger.Error("encode saved launch", zap.Error(err))
		return
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	blobs, ok := s.load(ctx)
	if !ok {
		return
	}

	blobs, _ = without(blobs, detail.ID)
	blobs = append(blobs, entry)

	s.write(ctx, logger, blobs)
}

// Unsave removes every entry with id. Unsaving an id that is not saved does
// not write.
func (s *Store) Unsave(ctx context.Context, id string) {
	logger := s.logger.With(zap.String("launch_id", id))

	s.mutex.Lock()
	defer s.mutex.Unlock()

	blobs, ok := s.load(ctx)
	if !ok {
		return
	}

	blobs, removed := without(blobs, id)
	if removed == 0 {
		return
	}

	s.write(ctx, logger, blobs)
}

// Clear removes the saved collection, including entries that cannot be
// decoded.
func (s *Store) Clear(ctx context.Context) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := s.prefs.Delete(ctx, s.key); err != nil {
		s.logger.Error("clear saved launches", zap.String("key", s.key), zap.Error(err))
	}
}

// --- helpers ---

// load reads the raw collection. The bool return is false when the
// collection could not be read or decoded, in which case it must not be
// overwritten.
func (s *Store) load(ctx context.Context) ([][]byte, bool) {
	b, err := s.prefs.Get(ctx, s.key)
	if errors.Is(err, prefs.ErrKeyDNE) {
		return nil, true
	}
	if err != nil {
		s.logger.Error("read saved launches", zap.String("key", s.key), zap.Error(err))
		return nil, false
	}

	blobs, err := decodeCollection(b)
	if err != nil {
		s.logger.Error("decode saved launches", zap.String("key", s.key), zap.Error(err))
		return nil, false
	}

	return blobs, true
}

func (s *Store) write(ctx context.Context, logger *zap.Logger, blobs [][]byte) {
	b, err := encodeCollection(blobs)
	if err != nil {
		logger.Error("encode saved launches", zap.Error(err))
		return
	}

	if err := s.prefs.Set(ctx, s.key, b); err != nil {
		logger.Error("write saved launches", zap.String("key", s.key), zap.Error(err))
	}
}

// without returns blobs minus every entry whose id is id, and the number of
// entries removed. Entries that cannot be decoded are kept untouched.
func without(blobs [][]byte, id string) ([][]byte, int) {
	kept := make([][]byte, 0, len(blobs))
	for _, blob := range blobs {
		detail, err := decodeDetail(blob)
		if err == nil && detail.ID == id {
			continue
		}
		kept = append(kept, blob)
	}
	return kept, len(blobs) - len(kept)
}
