package expopush

// Message is a single push notification addressed to one Expo push token.
type Message struct {
	To    string         `json:"to"`
	Sound string         `json:"sound,omitempty"`
	Title string         `json:"title"`
	Body  string         `json:"body"`
	Data  map[string]any `json:"data,omitempty"`
}

// Ticket is the per-message acceptance receipt returned by the Expo push API.
// Status "error" means the message was rejected up front (e.g. an invalid or
// unregistered token); actual device delivery is reported later and not
// tracked here.
type Ticket struct {
	Status  string         `json:"status"` // "ok" | "error"
	ID      string         `json:"id,omitempty"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// sendBatchResponse is the envelope of POST /--/api/v2/push/send.
type sendBatchResponse struct {
	Data []Ticket `json:"data"`
}
