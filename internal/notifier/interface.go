package notifier

import "context"

// UseCase is the due-task notifier: a stateless batch procedure invoked on a
// schedule. It takes no input beyond the clock — everything else is injected.
type UseCase interface {
	// Run queries due, unnotified todos, fans out one push per registered
	// device and marks the todos notified. Returns how many notifications
	// were sent (0 when nothing was due).
	Run(ctx context.Context) (RunOutput, error)
}
