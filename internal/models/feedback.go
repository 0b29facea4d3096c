// CreatorMatch - Creator Recommendation API for FixUrFeed
// Copyright 2026 FixUrFeed
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fixurfeed/creatormatch

package models

import "time"

// Feedback is one feedback submission about a match session.
type Feedback struct {
	// ID is assigned by the store on submission.
	ID string `json:"id,omitempty"`

	// Rating is the overall satisfaction rating, 1-5 stars.
	Rating int `json:"rating" validate:"min=1,max=5"`

	// Feedback is the free-text feedback body.
	Feedback string `json:"feedback,omitempty" validate:"max=4000"`

	// Improvements is free-text improvement suggestions.
	Improvements string `json:"improvements,omitempty" validate:"max=4000"`

	// SelectedToggles holds the quick-feedback toggle labels the user picked.
	SelectedToggles []string `json:"selectedToggles,omitempty" validate:"max=20"`

	// Timestamp is assigned by the store on submission.
	Timestamp time.Time `json:"timestamp,omitempty"`
}
