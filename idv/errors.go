package idv

import (
	"fmt"
	"strings"
)

// APIError is the structured error envelope the identity verification service returns
// on a non 2xx response, plus the HTTP status the envelope arrived with. Wire-level
// failures that never produced a response are wrapped as plain errors by the client.
type APIError struct {
	ErrorType      string `json:"error_type"`
	ErrorCode      string `json:"error_code"`
	ErrorMessage   string `json:"error_message"`
	DisplayMessage string `json:"display_message"`
	RequestID      string `json:"request_id"`
	StatusCode     int
}

func (e *APIError) Error() string {
	b := strings.Builder{}

	b.WriteString(fmt.Sprintf("identity verification API error [%s]", e.ErrorMessage))
	if e.ErrorCode != "" {
		b.WriteString(fmt.Sprintf(" [code: %s]", e.ErrorCode))
	}
	b.WriteString(fmt.Sprintf(" [http status: %d]", e.StatusCode))
	if e.RequestID != "" {
		b.WriteString(fmt.Sprintf(" [request id: %s]", e.RequestID))
	}

	return b.String()
}

// DecodeError reports a response body that could not be parsed as JSON at all.
// Type mismatches on individual fields are tolerated and never produce a DecodeError;
// the offending field is left absent instead.
type DecodeError struct {
	StatusCode int
	Cause      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unable to decode identity verification response [%v], request status [%d]", e.Cause, e.StatusCode)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
