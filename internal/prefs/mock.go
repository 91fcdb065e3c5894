package prefs

import (
	"context"
	"errors"
)

var errUnconfigured = errors.New("unconfigured mock call")

// NewStoreMock creates a new StoreMock instance.
func NewStoreMock(options ...StoreMockOption) *StoreMock {
	mock := &StoreMock{}

	for _, option := range options {
		option(mock)
	}

	return mock
}

// StoreMockOption is a function type that may configure a StoreMock instance.
type StoreMockOption func(*StoreMock)

// WithGet returns a StoreMockOption that configures a StoreMock to call fn
// when Get is called.
func WithGet(fn getFunc) StoreMockOption {
	return func(mock *StoreMock) { mock.get = fn }
}

// WithSet returns a StoreMockOption that configures a StoreMock to call fn
// when Set is called.
func WithSet(fn setFunc) StoreMockOption {
	return func(mock *StoreMock) { mock.set = fn }
}

// WithDelete returns a StoreMockOption that configures a StoreMock to call fn
// when Delete is called.
func WithDelete(fn deleteFunc) StoreMockOption {
	return func(mock *StoreMock) { mock.delete = fn }
}

type (
	getFunc    func(context.Context, string) ([]byte, error)
	setFunc    func(context.Context, string, []byte) error
	deleteFunc func(context.Context, string) error
)

// StoreMock provides an implementation for mocking Store interactions. This is
// typically utilized for unit-testing.
type StoreMock struct {
	get    getFunc
	set    setFunc
	delete deleteFunc
}

// Get calls the function configured with WithGet.
func (mock StoreMock) Get(ctx context.Context, key string) ([]byte, error) {
	if mock.get == nil {
		return nil, errUnconfigured
	}
	return mock.get(ctx, key)
}

// Set calls the function configured with WithSet.
func (mock StoreMock) Set(ctx context.Context, key string, value []byte) error {
	if mock.set == nil {
		return errUnconfigured
	}
	return mock.set(ctx, key, value)
}

// Delete calls the function configured with WithDelete.
func (mock StoreMock) Delete(ctx context.Context, key string) error {
	if mock.delete == nil {
		return errUnconfigured
	}
	return mock.delete(ctx, key)
}

// Ping always succeeds.
func (mock StoreMock) Ping(context.Context) error { return nil }

// Close always succeeds.
func (mock StoreMock) Close() error { return nil }
