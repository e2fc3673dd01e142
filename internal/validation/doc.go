// Pitlane - Formula 1 Schedule, Drivers and Race Replay Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pitlane

// Package validation provides struct validation using go-playground/validator v10.
//
// This package wraps the go-playground/validator library to provide a thread-safe
// singleton validator instance with user-friendly error messages. It integrates
// with the API response envelope for consistent error responses.
//
// # Overview
//
// The package provides:
//   - Thread-safe singleton validator (initialized once, cached struct info)
//   - Error translation to human-readable messages
//   - APIError conversion matching the application's error format
//   - Future v11 compatibility with WithRequiredStructEnabled
//
// # Quick Start
//
// The dashboard's only mutating surface is the locations API, whose path
// parameters feed a subprocess invocation. Validation runs before anything
// is spawned:
//
//	type LocationsRequest struct {
//	    SessionKey string `validate:"required,numeric"`
//	    StartTime  string `validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
//	    EndTime    string `validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
//	}
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    req := LocationsRequest{
//	        SessionKey: pathValue(r, "session_key"),
//	        StartTime:  pathValue(r, "startTime"),
//	        EndTime:    pathValue(r, "endTime"),
//	    }
//
//	    if verr := validation.ValidateStruct(&req); verr != nil {
//	        apiErr := verr.ToAPIError()
//	        respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message)
//	        return
//	    }
//
//	    // proceed with valid request
//	}
//
// # Common Validation Tags
//
// String validations:
//   - required: Field must not be empty
//   - numeric: Digits only (session keys)
//   - datetime=layout: Must parse with the given Go time layout
//   - min=n, max=n: Length bounds in characters
//
// Numeric validations:
//   - gte=n, lte=n, gt=n, lt=n: Range bounds
//
// Enum validations:
//   - oneof=a b c: Must be one of the specified values
//
// # Error Types
//
// ValidationError represents a single field validation failure:
//
//	type ValidationError struct {
//	    Field()   string      // Struct field name
//	    Tag()     string      // Validation tag that failed
//	    Param()   string      // Tag parameter (e.g., "100" for max=100)
//	    Value()   interface{} // Actual value that failed
//	    Error()   string      // Human-readable message
//	}
//
// RequestValidationError aggregates multiple field errors:
//
//	type RequestValidationError struct {
//	    Errors() []ValidationError
//	    Error()  string           // Combined message
//	    ToAPIError() *APIError    // Convert to API error format
//	}
//
// # API Error Integration
//
// The ToAPIError method produces errors matching the application format:
//
//	// Single field error
//	{
//	    "code": "VALIDATION_ERROR",
//	    "message": "StartTime must be a valid date/time in RFC3339 format",
//	    "details": {"field": "StartTime", "tag": "datetime", "value": "not-a-date"}
//	}
//
//	// Multiple field errors
//	{
//	    "code": "VALIDATION_ERROR",
//	    "message": "SessionKey: must be numeric; StartTime: is required",
//	    "details": {
//	        "fields": [
//	            {"field": "SessionKey", "tag": "numeric", "message": "..."},
//	            {"field": "StartTime", "tag": "required", "message": "..."}
//	        ]
//	    }
//	}
//
// # Thread Safety
//
// The singleton validator is initialized once and safe for concurrent use:
//
//	validate := validation.GetValidator()  // Thread-safe
//	err := validation.ValidateStruct(&req) // Thread-safe
//
// # Performance
//
// The validator caches struct reflection information:
//   - First validation of a struct type: ~1ms (reflection + caching)
//   - Subsequent validations: ~10us (cached)
//
// # See Also
//
//   - internal/api: Request handlers using validation
//   - github.com/go-playground/validator/v10: Underlying library
package validation
