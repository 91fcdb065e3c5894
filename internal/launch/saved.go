package launch

import (
	"context"

	"github.com/tjper/spacex/internal/spacex"
)

// SavedLoader loads every saved launch.
type SavedLoader interface {
	LoadAll(context.Context) []spacex.LaunchDetail
}

// NewSaved creates a new Saved instance.
func NewSaved(loader SavedLoader) *Saved {
	return &Saved{loader: loader}
}

// Saved is the list of saved launches.
type Saved struct {
	loader SavedLoader
}

// Load retrieves the saved launches. The result is never nil.
func (s *Saved) Load(ctx context.Context) []spacex.LaunchDetail {
	items := s.loader.LoadAll(ctx)
	if items == nil {
		return make([]spacex.LaunchDetail, 0)
	}
	return items
}
