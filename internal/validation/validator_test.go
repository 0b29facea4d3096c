// CreatorMatch - Creator Recommendation API for FixUrFeed
// Copyright 2026 FixUrFeed
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fixurfeed/creatormatch

package validation

import (
	"strings"
	"testing"
)

// ===================================================================================================
// Singleton Validator Tests
// ===================================================================================================

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}

	if v1 == nil {
		t.Error("GetValidator() should not return nil")
	}
}

// ===================================================================================================
// ValidateStruct Tests
// ===================================================================================================

// feedbackRequest mirrors the feedback submission payload shape.
type feedbackRequest struct {
	Rating       int    `validate:"required,min=1,max=5"`
	Feedback     string `validate:"max=5000"`
	Improvements string `validate:"max=5000"`
}

func TestValidateStruct_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input feedbackRequest
	}{
		{
			name:  "all fields set",
			input: feedbackRequest{Rating: 4, Feedback: "Loved the matches", Improvements: "More creators"},
		},
		{
			name:  "minimum rating",
			input: feedbackRequest{Rating: 1},
		},
		{
			name:  "maximum rating",
			input: feedbackRequest{Rating: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateStruct(&tt.input); err != nil {
				t.Errorf("ValidateStruct() returned unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		input     feedbackRequest
		wantField string
	}{
		{
			name:      "missing rating",
			input:     feedbackRequest{Feedback: "no stars"},
			wantField: "Rating",
		},
		{
			name:      "rating too high",
			input:     feedbackRequest{Rating: 6},
			wantField: "Rating",
		},
		{
			name:      "feedback too long",
			input:     feedbackRequest{Rating: 3, Feedback: strings.Repeat("x", 5001)},
			wantField: "Feedback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if err == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			if len(err.Errors()) == 0 {
				t.Fatal("Errors() is empty")
			}
			if err.Errors()[0].Field() != tt.wantField {
				t.Errorf("failed field = %q, want %q", err.Errors()[0].Field(), tt.wantField)
			}
		})
	}
}

// ===================================================================================================
// Multi-select Limit Tests
// ===================================================================================================

// quizAnswers mirrors the quiz payload: content preferences are capped at six.
type quizAnswers struct {
	ContentPreference []string `validate:"max=6"`
}

func TestContentPreferenceCap(t *testing.T) {
	six := []string{"a", "b", "c", "d", "e", "f"}
	if err := ValidateStruct(&quizAnswers{ContentPreference: six}); err != nil {
		t.Errorf("ValidateStruct() rejected six preferences: %v", err)
	}

	seven := append([]string{"g"}, six...)
	err := ValidateStruct(&quizAnswers{ContentPreference: seven})
	if err == nil {
		t.Fatal("ValidateStruct() accepted seven preferences, want error")
	}
	if err.Errors()[0].Tag() != "max" {
		t.Errorf("failed tag = %q, want max", err.Errors()[0].Tag())
	}
}

// ===================================================================================================
// Oneof Validation Tests
// ===================================================================================================

type platformFilter struct {
	Platform string `validate:"omitempty,oneof=TikTok Instagram LinkedIn YouTube"`
}

func TestOneofValidation_Valid(t *testing.T) {
	tests := []struct {
		name     string
		platform string
	}{
		{"empty", ""},
		{"tiktok", "TikTok"},
		{"linkedin", "LinkedIn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := platformFilter{Platform: tt.platform}
			if err := ValidateStruct(&input); err != nil {
				t.Errorf("ValidateStruct() returned unexpected error for platform %q: %v", tt.platform, err)
			}
		})
	}
}

func TestOneofValidation_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		platform string
	}{
		{"unknown platform", "MySpace"},
		{"partial match", "TikTokk"},
		{"case sensitive", "tiktok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := platformFilter{Platform: tt.platform}
			if err := ValidateStruct(&input); err == nil {
				t.Errorf("ValidateStruct() should have returned error for platform %q", tt.platform)
			}
		})
	}
}

// ===================================================================================================
// WithRequiredStructEnabled Tests
// ===================================================================================================

type nestedStruct struct {
	Inner innerStruct `validate:"required"`
}

type innerStruct struct {
	Value string `validate:"required"`
}

func TestNestedStructValidation(t *testing.T) {
	valid := nestedStruct{
		Inner: innerStruct{Value: "test"},
	}
	if err := ValidateStruct(&valid); err != nil {
		t.Errorf("ValidateStruct() returned unexpected error for valid nested struct: %v", err)
	}

	invalid := nestedStruct{
		Inner: innerStruct{Value: ""},
	}
	if err := ValidateStruct(&invalid); err == nil {
		t.Error("ValidateStruct() should have returned error for invalid nested struct")
	}
}

// ===================================================================================================
// APIError Conversion Tests
// ===================================================================================================

func TestToAPIError_SingleError(t *testing.T) {
	err := ValidateStruct(&feedbackRequest{Rating: 0})
	if err == nil {
		t.Fatal("expected validation error")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if apiErr.Details["field"] != "Rating" {
		t.Errorf("Details[field] = %v, want Rating", apiErr.Details["field"])
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	input := feedbackRequest{
		Rating:   9,
		Feedback: strings.Repeat("x", 5001),
	}
	err := ValidateStruct(&input)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(err.Errors()) != 2 {
		t.Fatalf("Errors() len = %d, want 2", len(err.Errors()))
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok {
		t.Fatalf("Details[fields] is %T, want field list", apiErr.Details["fields"])
	}
	if len(fields) != 2 {
		t.Errorf("fields len = %d, want 2", len(fields))
	}
}

// ===================================================================================================
// Error Message Translation Tests
// ===================================================================================================

func TestErrorMessages(t *testing.T) {
	err := ValidateStruct(&feedbackRequest{Rating: 0})
	if err == nil {
		t.Fatal("Expected validation error")
	}

	msg := err.Error()
	if msg == "" {
		t.Error("Error message should not be empty")
	}
	if !strings.Contains(msg, "Rating") {
		t.Errorf("Error message should reference failed field: %s", msg)
	}
	if !strings.Contains(msg, "required") {
		t.Errorf("Error message should be human-readable: %s", msg)
	}
}

func TestUntranslatedTagFallsBack(t *testing.T) {
	type contact struct {
		Email string `validate:"email"`
	}

	err := ValidateStruct(&contact{Email: "not-an-address"})
	if err == nil {
		t.Fatal("Expected validation error")
	}

	// Tags outside the translation maps get the generic message.
	msg := err.Error()
	if !strings.Contains(msg, "failed email validation") {
		t.Errorf("Error message = %q, want generic fallback", msg)
	}
}
