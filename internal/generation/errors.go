package generation

import "errors"

// Common errors returned by card generators. The API layer maps these to
// HTTP statuses: busy and unavailable are retryable by the caller, the rest
// are not. Raw upstream payloads attached via wrapping are for server logs
// only and must never reach an end user.
var (
	// ErrNotConfigured is returned when the upstream API credential is not
	// configured. This is a deployment problem, not a client error.
	ErrNotConfigured = errors.New("generation service is not configured")

	// ErrUpstreamAuth is returned when the upstream model rejects the
	// service's credential.
	ErrUpstreamAuth = errors.New("upstream model rejected credentials")

	// ErrUpstreamBusy is returned when the upstream model is rate limiting.
	// Retryable by the caller.
	ErrUpstreamBusy = errors.New("upstream model is rate limited")

	// ErrUpstreamUnavailable is returned for upstream server-side failures
	// and timeouts. Retryable by the caller.
	ErrUpstreamUnavailable = errors.New("upstream model is unavailable")

	// ErrUpstream is returned for unclassified upstream failures. The
	// wrapped detail carries the upstream status and body for logs.
	ErrUpstream = errors.New("upstream model request failed")

	// ErrMalformedResponse is returned when the upstream response is missing
	// the expected candidates/content/parts structure or carries empty text.
	ErrMalformedResponse = errors.New("upstream model returned a malformed response")

	// ErrInvalidFormat is returned when the model's text payload cannot be
	// parsed as a JSON array.
	ErrInvalidFormat = errors.New("upstream model returned invalid format")

	// ErrInvalidCards is returned when the parsed payload is not a non-empty
	// array of cards with non-empty questions and answers.
	ErrInvalidCards = errors.New("upstream model generated invalid cards")
)
