package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"

	ictx "github.com/tjper/spacex/context"
	"github.com/tjper/spacex/internal/spacex"
)

func main() {
	os.Exit(run())
}

const (
	ecExit        = 0
	ecFailure     = 1
	ecInterrupted = 130
)

func run() int {
	ctx, cancel := ictx.WithSignal(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, spacex.ErrInterrupted) {
			fmt.Fprintln(os.Stderr, "interrupted")
			return ecInterrupted
		}
		fmt.Fprintln(os.Stderr, err)
		return ecFailure
	}
	return ecExit
}
