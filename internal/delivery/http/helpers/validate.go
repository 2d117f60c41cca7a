package helpers

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Validator lets request DTOs report field-level problems after decoding.
// A nil or empty slice means the DTO is valid.
type Validator interface {
	Validate() []string
}

// DecodeAndValidate unmarshals the JSON request body into dest, rejecting
// unknown fields, and runs the DTO's Validate hook when it has one. On any
// failure it answers the request with a 400 and returns false; the caller
// should return immediately in that case.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return false
	}
	v, ok := dest.(Validator)
	if !ok {
		return true
	}
	if problems := v.Validate(); len(problems) > 0 {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, strings.Join(problems, "; "))
		return false
	}
	return true
}
