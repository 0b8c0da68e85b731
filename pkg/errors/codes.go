package errors

import "net/http"

// Code is the stable machine-readable error class sent to API clients.
type Code string

const (
	// CodeValidation covers malformed input: unknown actions, periods,
	// agents or workflows, and missing identifiers.
	CodeValidation Code = "VALIDATION_ERROR"
	// CodeNotFound is an unknown sku, order or customer.
	CodeNotFound Code = "NOT_FOUND"
	// CodeConflict is a lost compare-and-set race on an order status.
	CodeConflict Code = "CONFLICT"
	// CodeStateConflict is an order action the current status forbids.
	CodeStateConflict Code = "STATE_CONFLICT"
	// CodeEmptyResult is an aggregate over an empty table.
	CodeEmptyResult Code = "EMPTY_RESULT"
	CodeIdempotency Code = "IDEMPOTENCY_KEY_REUSED"
	CodeRateLimit   Code = "RATE_LIMITED"
	CodeInternal    Code = "INTERNAL_ERROR"
	// CodeDependency is a failing store, cache or text generator.
	CodeDependency Code = "DEPENDENCY_ERROR"
)

// Metadata describes how a Code is rendered over HTTP.
type Metadata struct {
	HTTPStatus     int
	Retryable      bool
	PublicMessage  string
	DetailsAllowed bool
}

var metadataByCode = map[Code]Metadata{
	CodeValidation:    {HTTPStatus: http.StatusBadRequest, PublicMessage: "validation failed", DetailsAllowed: true},
	CodeNotFound:      {HTTPStatus: http.StatusNotFound, PublicMessage: "resource not found"},
	CodeConflict:      {HTTPStatus: http.StatusConflict, Retryable: true, PublicMessage: "order changed concurrently", DetailsAllowed: true},
	CodeStateConflict: {HTTPStatus: http.StatusUnprocessableEntity, PublicMessage: "state transition disallowed", DetailsAllowed: true},
	CodeEmptyResult:   {HTTPStatus: http.StatusNotFound, PublicMessage: "no results", DetailsAllowed: true},
	CodeIdempotency:   {HTTPStatus: http.StatusConflict, PublicMessage: "idempotency key reused", DetailsAllowed: true},
	CodeRateLimit:     {HTTPStatus: http.StatusTooManyRequests, Retryable: true, PublicMessage: "rate limit exceeded"},
	CodeInternal:      {HTTPStatus: http.StatusInternalServerError, Retryable: true, PublicMessage: "internal server error"},
	CodeDependency:    {HTTPStatus: http.StatusServiceUnavailable, Retryable: true, PublicMessage: "dependency unavailable", DetailsAllowed: true},
}

// MetadataFor returns the rendering rules of code. Unknown codes render as
// CodeInternal.
func MetadataFor(code Code) Metadata {
	if meta, ok := metadataByCode[code]; ok {
		return meta
	}
	return metadataByCode[CodeInternal]
}

// HTTPStatus is the status err renders with. Untyped errors are internal.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if typed := As(err); typed != nil {
		return MetadataFor(typed.Code()).HTTPStatus
	}
	return http.StatusInternalServerError
}

// IsRetryable reports whether repeating the request may succeed.
func IsRetryable(err error) bool {
	if typed := As(err); typed != nil {
		return MetadataFor(typed.Code()).Retryable
	}
	return err != nil
}
