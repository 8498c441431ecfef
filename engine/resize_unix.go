//go:build !windows

package engine

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// watchResize invokes notify on every SIGWINCH until the context is
// canceled.
func watchResize(ctx context.Context, notify func()) error {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGWINCH)
	defer signal.Stop(ch)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ch:
			notify()
		}
	}
}
