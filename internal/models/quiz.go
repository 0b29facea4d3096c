// CreatorMatch - Creator Recommendation API for FixUrFeed
// Copyright 2026 FixUrFeed
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fixurfeed/creatormatch

package models

// QuizAnswers is one finalized quiz completion.
//
// Every multi-select field is a set: insertion order never influences
// scoring. Empty fields mean the question was skipped and the related
// scoring terms simply contribute nothing.
type QuizAnswers struct {
	// Age is the optional age band ("18" through "25", or "26+").
	Age string `json:"age,omitempty"`

	// Gender is the single-select gender ("Woman", "Man", "Other"), empty
	// when skipped. A skipped gender is resolved once per match invocation.
	Gender string `json:"gender,omitempty"`

	// Ethnicity holds zero or more ethnicity selections.
	Ethnicity []string `json:"ethnicity,omitempty"`

	// CareerJourney holds the selected career-journey stages.
	CareerJourney []string `json:"careerJourney,omitempty"`

	// Goals holds the selected career goals, the dominant scoring signal.
	Goals []string `json:"goals,omitempty"`

	// ContentCare holds content-care preferences such as
	// "Someone who looks like me".
	ContentCare []string `json:"contentCare,omitempty"`

	// ContentPreference holds content-style preferences, bounded to six
	// selections by the quiz UI and re-checked at the API edge.
	ContentPreference []string `json:"contentPreference,omitempty" validate:"max=6"`
}
