package system

import (
	"context"
)

// Executes a shutdown operation with context awareness. The operation
// runs on an independent context so it can finish critical work even
// when the parent context is cancelled, while the parent still bounds
// how long the caller waits.
//
// Returns:
//   - nil if the operation completes successfully.
//   - the operation's error if it fails.
//   - the operation's eventual result if the parent context is
//     cancelled while it runs.
func RunWithContext(ctx context.Context, operation func(context.Context) error) error {
	// Fast feedback if the caller was cancelled before we started.
	if err := ctx.Err(); err != nil {
		return err
	}

	// The operation gets its own lifecycle, detached from the parent.
	opCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Buffered so the goroutine can exit even if nobody reads the result.
	done := make(chan error, 1)

	go func() {
		done <- operation(opCtx)
		close(done)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		// Signal the operation to stop, then wait for it to wind down so
		// resources are not left in an inconsistent state.
		cancel()
		return <-done
	}
}
