package errors

// ActionResponse is the envelope of every mutating back-office call: the caller
// branches on Success and shows Error verbatim.
type ActionResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// SuccessResponse wraps the result of a read.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse is returned by reads and by the HTTP error handler.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo carries the stable error code (e.g. "LOCATION_IN_USE"), a message
// safe to show to admins, and optional field-level details.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// MetaInfo lets support trace a response back to its request log lines.
type MetaInfo struct {
	RequestID string `json:"request_id"`
}
