package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// HTTPError carries an HTTP status alongside a user-facing message.
// Delivery layers build these in mapError so handlers stay status-agnostic.
type HTTPError struct {
	Status  int
	Message string
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(status int, message string) HTTPError {
	return HTTPError{Status: status, Message: message}
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Message
}
