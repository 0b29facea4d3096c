// CreatorMatch - Creator Recommendation API for FixUrFeed
// Copyright 2026 FixUrFeed
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fixurfeed/creatormatch

package models

// Creator is one cataloged content producer available for recommendation.
//
// Creators are loaded once from the catalog file and treated as immutable
// for the duration of a match computation. Optional fields unmarshal to
// their zero values; the matching core treats absent tag sets and strings
// as empty rather than failing.
type Creator struct {
	// ID is the unique, stable creator identifier.
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Role is the free-text professional title (e.g., "Senior Product Manager").
	Role string `json:"role"`

	// Avatar is the small profile image path, rewritten by the catalog
	// loader to the /api/v1/images/ endpoint.
	Avatar string `json:"avatar,omitempty"`

	// Tagline is a short self-description shown on cards.
	Tagline string `json:"tagline,omitempty"`

	// Followers is the total follower count on the primary platform.
	Followers int `json:"followers"`

	// Platform is the primary platform name (e.g., "TikTok", "LinkedIn").
	Platform string `json:"platform"`

	// Topics is the topical tag set.
	Topics []string `json:"topics,omitempty"`

	// Style is a single free-text style descriptor.
	Style string `json:"style,omitempty"`

	// ProfilePhoto is the full-size profile image path, rewritten like Avatar.
	ProfilePhoto string `json:"profilePhoto,omitempty"`

	// Gender is the creator's gender label (e.g., "Female", "Non-binary").
	Gender string `json:"gender,omitempty"`

	// AgeGroup classifies the creator's age band (e.g., "18-25", "20s", "30+").
	AgeGroup string `json:"ageGroup,omitempty"`

	// Ethnicity is the creator's ethnicity as a single free-text label.
	Ethnicity string `json:"ethnicity,omitempty"`

	// CareerStage classifies career progression (e.g., "Early", "Mid", "Senior").
	CareerStage string `json:"careerStage,omitempty"`

	// HasRecruitingExperience is the explicit recruiting-background flag.
	// Recruiting experience is also inferred from KnownFor and Topics.
	HasRecruitingExperience bool `json:"hasRecruitingExperience,omitempty"`

	// ContentStyle is the content-style tag set (e.g., "Educational", "Inspiring").
	ContentStyle []string `json:"contentStyle,omitempty"`

	// KnownFor is a free-text summary of what the creator is known for.
	KnownFor string `json:"knownFor,omitempty"`

	// SubCategory is the subcategory tag set used for exact-match goal scoring.
	SubCategory []string `json:"subCategory,omitempty"`

	// TargetAudience describes the audiences the creator produces for.
	TargetAudience []string `json:"targetAudience,omitempty"`

	// Tags is an optional display tag set checked by the personal-brand and
	// fashion-tech scoring bonuses.
	Tags []string `json:"tags,omitempty"`

	// FollowersDetail is the optional per-platform follower breakdown.
	// Display-only: selection never reads it.
	FollowersDetail map[string]int `json:"followers_detail,omitempty"`

	// Per-platform profile URLs (display-only).
	LinkedinURL  string `json:"linkedinUrl,omitempty"`
	InstagramURL string `json:"instagramUrl,omitempty"`
	TiktokURL    string `json:"tiktokUrl,omitempty"`
	Website      string `json:"website,omitempty"`
}

// MatchedCreator is a Creator selected for the final recommendation list,
// annotated with the reason it was chosen.
type MatchedCreator struct {
	Creator

	// MatchReason is the human-readable justification for this pick.
	// Exactly one, chosen by the first selection rule that included it.
	MatchReason string `json:"matchReason"`

	// CTA is the call-to-action string derived from the primary platform.
	CTA string `json:"cta"`

	// DisplayTags is the creator's content-style tags concatenated with up
	// to three topic tags.
	DisplayTags []string `json:"tags"`
}
