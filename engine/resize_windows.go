//go:build windows

package engine

import "context"

// Windows has no SIGWINCH; resizes are picked up on the next session
// size poll instead.
func watchResize(ctx context.Context, notify func()) error {
	<-ctx.Done()
	return nil
}
