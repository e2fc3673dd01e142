// Pitlane - Formula 1 Schedule, Drivers and Race Replay Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pitlane

package api

import (
	"github.com/tomtom215/pitlane/internal/validation"
)

// LocationsRequest carries the path parameters of the locations API.
// The window bounds must be RFC 3339 timestamps because they are handed
// verbatim to the fetch script, which forwards them as OpenF1 query
// filters.
type LocationsRequest struct {
	SessionKey string `validate:"required,numeric"`
	StartTime  string `validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	EndTime    string `validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

// validateRequest validates a request struct using go-playground/validator.
// Returns nil if validation passes, or an APIError carrying the translated
// field errors.
func validateRequest(v interface{}) *APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}
