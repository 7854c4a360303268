package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"patient-service/internal/pkg/exceptions"
)

// ParseJSONBody decodes the request body into dst. An oversized body (see the
// body limit middleware) is reported as such instead of as a parse failure.
func ParseJSONBody(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return nil
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return exceptions.ErrRequestBodyTooLarge(err)
	}
	if errors.Is(err, io.EOF) {
		return exceptions.ErrCannotParseJSON(errors.New("request body is empty"))
	}
	return exceptions.ErrCannotParseJSON(err)
}
