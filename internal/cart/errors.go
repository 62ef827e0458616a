package cart

import "errors"

var (
	// ErrTransport marks a request that never produced a readable response.
	ErrTransport = errors.New("cart transport failure")
	// ErrValidation marks input rejected before any request is issued.
	ErrValidation = errors.New("invalid cart request")
)

// NetworkError is the message every transport failure is reported with.
const NetworkError = "Network error"
