// CreatorMatch - Creator Recommendation API for FixUrFeed
// Copyright 2026 FixUrFeed
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fixurfeed/creatormatch

package match

import "github.com/fixurfeed/creatormatch/internal/models"

// Score computes the additive compatibility score for one creator against
// one set of quiz answers. Terms accumulate in a fixed order:
//
//  1. per-goal weight at the best matching tier (exact 100%, role 80%,
//     partial 40%, integer-floored)
//  2. flat identity bonus
//  3. flat content-care bonus
//  4. per-content-preference keyword bonus, plus the stacking display-tag
//     bonus for personal-brand and fashion-tech preferences
//  5. flat career-journey bonus
//  6. hidden-gem bonus for small creators
//
// The result is non-negative and unbounded above. Ties are resolved later
// by catalog order (stable sort, first seen wins).
func Score(c models.Creator, answers models.QuizAnswers, resolvedGender string) int {
	score := 0

	for _, goal := range answers.Goals {
		rule, ok := goalScoring[goal]
		if !ok {
			// Unknown goal strings match nothing.
			continue
		}
		_, pts := matchGoalTier(c, rule)
		score += pts
	}

	if IdentityMatch(c, resolvedGender, answers.Ethnicity) {
		score += identityBonus
	}

	if ContentCareMatch(c, answers.ContentCare, resolvedGender, answers.Ethnicity) {
		score += contentCareBonus
	}

	for _, pref := range answers.ContentPreference {
		if _, ok := brandTagPrefs[pref]; ok && hasBrandTag(c) {
			score += brandTagBonus
		}

		for _, kw := range contentPrefKeywords[pref] {
			if anyContainsFold(c.SubCategory, kw) ||
				containsFold(c.KnownFor, kw) ||
				anyContainsFold(c.Topics, kw) ||
				anyContainsFold(c.ContentStyle, kw) {
				score += contentPrefBonus
				break
			}
		}
	}

	if CareerJourneyMatch(c, answers.CareerJourney) {
		score += careerJourneyBonus
	}

	if c.Followers > 0 && c.Followers < hiddenGemThreshold {
		score += hiddenGemBonus
	}

	return score
}

// hasBrandTag reports whether the creator's display tags carry a
// personal-brand, fashion or style marker.
func hasBrandTag(c models.Creator) bool {
	for _, tag := range c.Tags {
		for _, kw := range brandTagKeywords {
			if containsFold(tag, kw) {
				return true
			}
		}
	}
	return false
}
