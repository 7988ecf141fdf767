package notifier

// RunOutput is the summary of one notifier run — the whole contract at the
// batch job's boundary.
type RunOutput struct {
	Sent int
}
