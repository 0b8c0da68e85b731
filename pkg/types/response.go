package types

// SuccessEnvelope wraps every 2xx body. Warnings carries non-fatal outcomes,
// such as completing an order that never shipped.
type SuccessEnvelope struct {
	Data     any      `json:"data"`
	Warnings []string `json:"warnings,omitempty"`
}

// APIError is the client-facing error shape. Details are only present for
// codes that allow them.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
