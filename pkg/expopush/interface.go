package expopush

import "context"

// IPush is the push delivery surface the notifier depends on.
type IPush interface {
	SendBatch(ctx context.Context, messages []Message) ([]Ticket, error)
}
