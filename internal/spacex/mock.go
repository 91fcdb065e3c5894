package spacex

import (
	"context"
	"errors"
)

var errUnconfigured = errors.New("unconfigured mock call")

// NewClientMock creates a new ClientMock instance.
func NewClientMock(options ...ClientMockOption) *ClientMock {
	mock := &ClientMock{}

	for _, option := range options {
		option(mock)
	}

	return mock
}

// ClientMockOption is a function type that may configure a ClientMock
// instance.
type ClientMockOption func(*ClientMock)

// WithFetchLaunches returns a ClientMockOption that configures a ClientMock to
// call fn when FetchLaunches is called.
func WithFetchLaunches(fn fetchLaunchesFunc) ClientMockOption {
	return func(mock *ClientMock) { mock.fetchLaunches = fn }
}

// WithFetchLaunchDetail returns a ClientMockOption that configures a
// ClientMock to call fn when FetchLaunchDetail is called.
func WithFetchLaunchDetail(fn fetchLaunchDetailFunc) ClientMockOption {
	return func(mock *ClientMock) { mock.fetchLaunchDetail = fn }
}

type (
	fetchLaunchesFunc     func(context.Context, int) ([]LaunchSummary, error)
	fetchLaunchDetailFunc func(context.Context, string) (*LaunchDetail, error)
)

// ClientMock provides an implementation for mocking Client interactions. This
// is typically utilized for unit-testing.
type ClientMock struct {
	fetchLaunches     fetchLaunchesFunc
	fetchLaunchDetail fetchLaunchDetailFunc
}

// FetchLaunches calls the function configured with WithFetchLaunches.
func (mock ClientMock) FetchLaunches(ctx context.Context, pageSize int) ([]LaunchSummary, error) {
	if mock.fetchLaunches == nil {
		return nil, errUnconfigured
	}
	return mock.fetchLaunches(ctx, pageSize)
}

// FetchLaunchDetail calls the function configured with WithFetchLaunchDetail.
func (mock ClientMock) FetchLaunchDetail(ctx context.Context, id string) (*LaunchDetail, error) {
	if mock.fetchLaunchDetail == nil {
		return nil, errUnconfigured
	}
	return mock.fetchLaunchDetail(ctx, id)
}
