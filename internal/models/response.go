package models

// Response is the uniform API envelope returned by auth and risk endpoints.
// Successful calls carry the payload in Data; failures carry a nil Data and
// the error text in Message.
// swagger:model Response
type Response struct {
	// Whether the call succeeded
	// default: true
	Success bool `json:"success"`

	// Payload, nil on failure
	Data any `json:"data"`

	// Human-readable status message
	// default: Risk calculated successfully
	Message string `json:"message"`
}

// NewSuccessResponse wraps a payload in a successful envelope.
func NewSuccessResponse(data any, message string) Response {
	return Response{Success: true, Data: data, Message: message}
}

// NewErrorResponse builds a failure envelope with a nil payload.
func NewErrorResponse(message string) Response {
	return Response{Success: false, Data: nil, Message: message}
}
