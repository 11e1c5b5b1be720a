package errors

import (
	"fmt"
	"net/http"
)

const (
	CodeBadConnection = "BadConnection"
	CodeBadResponse   = "BadResponse"
)

// Sentinels for errors.Is. They carry no code, so they match any error of their kind.
var (
	ErrMissingRequiredField  = &GeocoderError{Kind: KindMissingRequiredField}
	ErrInvalidParameterShape = &GeocoderError{Kind: KindInvalidParameterShape}
	ErrTransportFailure      = &GeocoderError{Kind: KindTransportFailure}
	ErrRemoteAPI             = &GeocoderError{Kind: KindRemoteAPI}
)

var (
	ErrInvalidRequest = New(
		KindInvalidParameterShape,
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		KindInternal,
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)

// MissingField reports a mandatory parameter that was not supplied.
func MissingField(field string) *GeocoderError {
	return New(
		KindMissingRequiredField,
		string(KindMissingRequiredField),
		"required parameter is missing",
		http.StatusBadRequest,
	).WithField(field)
}

// InvalidShape reports a parameter whose value or structure is malformed.
func InvalidShape(field, format string, args ...any) *GeocoderError {
	return New(
		KindInvalidParameterShape,
		string(KindInvalidParameterShape),
		fmt.Sprintf(format, args...),
		http.StatusBadRequest,
	).WithField(field)
}

// Transport wraps a failure of the HTTP round trip itself.
func Transport(err error) *GeocoderError {
	e := New(KindTransportFailure, CodeBadConnection, err.Error(), http.StatusBadGateway)
	e.Err = err
	return e
}

// BadResponse reports a body that could not be decoded.
func BadResponse(statusCode int, err error) *GeocoderError {
	e := New(
		KindRemoteAPI,
		CodeBadResponse,
		fmt.Sprintf("undecodable response (status %d): %v", statusCode, err),
		http.StatusBadGateway,
	)
	e.Err = err
	return e
}

// Remote carries the error object returned by the what3words API.
func Remote(code, message string, statusCode int) *GeocoderError {
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusBadGateway
	}
	return New(KindRemoteAPI, code, message, statusCode)
}
