package domain

import "errors"

// Request errors, recovered locally before any outbound call.
var (
	ErrInputMissing    = errors.New("required input missing")
	ErrUnauthenticated = errors.New("not authenticated")
)

// Remote call errors.
var (
	ErrRemoteAuthRejected  = errors.New("remote authentication rejected")
	ErrRemoteUnreachable   = errors.New("remote service unreachable")
	ErrRemoteProtocolFault = errors.New("remote protocol fault")
)

// Document extraction errors.
var (
	ErrDocumentMissing = errors.New("document content missing in remote response")
)

// Session store errors.
var (
	ErrSessionNotFound = errors.New("session not found")
)
