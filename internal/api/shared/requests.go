package shared

import (
	"encoding/json"
	"net/http"
)

// DecodeJSON decodes the request body into v. Type mismatches (for example
// a fractional value for an integer field) surface as decode errors, which
// handlers report as a generic bad-request.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
