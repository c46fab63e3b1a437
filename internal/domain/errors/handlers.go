package errors

// ErrorBody is the wire shape of every error response: an error field and,
// where applicable, a details field. Internal messages never appear here.
type ErrorBody struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}
