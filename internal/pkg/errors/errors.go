package errors

import (
	"fmt"
)

// Kind classifies where a GeocoderError originated.
type Kind string

const (
	KindMissingRequiredField  Kind = "MissingRequiredField"
	KindInvalidParameterShape Kind = "InvalidParameterShape"
	KindTransportFailure      Kind = "TransportFailure"
	KindRemoteAPI             Kind = "RemoteApiError"
	KindInternal              Kind = "Internal"
)

// GeocoderError is the structured error returned by the request builder and the
// what3words client. Code carries the remote API code (e.g. "InvalidKey") for
// remote errors and the kind name for local validation failures.
type GeocoderError struct {
	Kind       Kind   `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	Field      string `json:"field,omitempty"`
	StatusCode int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *GeocoderError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *GeocoderError) Unwrap() error {
	return e.Err
}

// Is matches on Kind, and on Code when the target sets one.
func (e *GeocoderError) Is(target error) bool {
	t, ok := target.(*GeocoderError)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Code == "" || t.Code == e.Code
}

func New(kind Kind, code, message string, statusCode int) *GeocoderError {
	return &GeocoderError{
		Kind:       kind,
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// WithField returns a copy of e bound to the offending parameter name.
func (e *GeocoderError) WithField(field string) *GeocoderError {
	c := *e
	c.Field = field
	return &c
}
