package error_notificator

import "context"

type Notificator interface {
	// Notify sends an error report to the administrators.
	Notify(ctx context.Context, source string, err error, details string) error
}
