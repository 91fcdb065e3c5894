package context

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

// SignalError is the cancellation cause of a context created by WithSignal
// that was cancelled by a signal.
type SignalError struct {
	Signal os.Signal
}

func (e SignalError) Error() string {
	return fmt.Sprintf("received signal %s", e.Signal)
}

// WithSignal creates a new context that may be cancelled by signalling to one
// of the passed signals. The cancel return value should be called to release
// this function's resources once it is no longer in use.
func WithSignal(ctx context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(ctx)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, signals...)
	go func() {
		defer signal.Stop(ch)

		select {
		case <-ctx.Done():
			return
		case sig := <-ch:
			cancel(SignalError{Signal: sig})
		}
	}()
	return ctx, func() { cancel(context.Canceled) }
}

// Signal retrieves the signal that cancelled ctx, if ctx was cancelled by
// one.
func Signal(ctx context.Context) (os.Signal, bool) {
	var sigErr SignalError
	if !errors.As(context.Cause(ctx), &sigErr) {
		return nil, false
	}
	return sigErr.Signal, true
}
