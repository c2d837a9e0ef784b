package service

import (
	"context"
	"errors"
)

// wasCancelled reports whether err is the caller's own cancellation. It is
// true only when the supplied context actually fired; an error that merely
// looks like a cancellation (or arrives without a live context) is a real
// fault and must be propagated. Lookups without a caller token pass
// context.Background(), whose Err is always nil.
func wasCancelled(ctx context.Context, err error) bool {
	if ctx == nil || ctx.Err() == nil {
		return false
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
