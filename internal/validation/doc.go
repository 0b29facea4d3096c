// CreatorMatch - Creator Recommendation API for FixUrFeed
// Copyright 2026 FixUrFeed
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fixurfeed/creatormatch

/*
Package validation provides struct validation using go-playground/validator v10.

The package wraps go-playground/validator to provide a thread-safe
singleton validator instance with user-friendly error messages. It
integrates with the API error format for consistent error responses.

# Overview

The package provides:
  - Thread-safe singleton validator (initialized once, cached struct info)
  - Error translation to human-readable messages
  - APIError conversion matching the application's error format

# Quick Start

	type FeedbackRequest struct {
	    Rating       int      `validate:"required,min=1,max=5"`
	    Feedback     string   `validate:"max=5000"`
	    Improvements string   `validate:"max=5000"`
	}

	func handler(w http.ResponseWriter, r *http.Request) {
	    var req FeedbackRequest
	    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
	        // handle decode error
	    }

	    if verr := validation.ValidateStruct(&req); verr != nil {
	        apiErr := verr.ToAPIError()
	        respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
	        return
	    }

	    // proceed with valid request
	}

# Common Validation Tags

String validations:
  - required: Field must not be empty
  - min=n / max=n: Length bounds in characters
  - oneof=a b c: Must be one of the specified values

Numeric validations:
  - min=n / max=n: Value bounds
  - gte / lte / gt / lt: Comparisons with a constant

Slice validations:
  - max=n: At most n elements (the quiz caps content preferences at 6)
*/
package validation
