package ports

import "context"

// StudioNotifier delivers best-effort admin notifications. Implementations
// must never fail the calling operation.
type StudioNotifier interface {
	NotifyEnrollment(ctx context.Context, courseName, memberName string)
	NotifyPaymentConfirmed(ctx context.Context, memberID string, credits int)
	NotifyPaymentFailed(ctx context.Context, memberID, reason string)
}
