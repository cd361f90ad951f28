package handler

import "portal-gateway/internal/soap"

// Status indicators shared with the calling UI. A single character mirrors
// the remote service's own success/failure codes.
const (
	StatusSuccess = "S"
	StatusFailure = "F"
)

// StatusResponse is the uniform status/message body for login and failures.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// recordsResponse wraps a normalized record collection.
type recordsResponse struct {
	Status string        `json:"status"`
	Data   []soap.Record `json:"data"`
}

// profileResponse wraps the single customer profile record.
type profileResponse struct {
	Status  string      `json:"status"`
	Profile soap.Record `json:"profile"`
}
