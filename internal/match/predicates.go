// CreatorMatch - Creator Recommendation API for FixUrFeed
// Copyright 2026 FixUrFeed
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fixurfeed/creatormatch

package match

import (
	"strings"

	"github.com/fixurfeed/creatormatch/internal/models"
)

// Boolean classifiers over a single creator, shared by scoring and
// selection. All are total: missing fields behave as empty and no
// predicate ever fails hard on a malformed record.

// IdentityMatch reports whether the creator matches the user's identity.
//
// resolvedGender must be a concrete value ("Woman", "Man" or "Other");
// callers resolve a skipped gender once per match invocation so every
// creator in that invocation sees the same value. The gender check wins
// outright; ethnicity is only consulted when the gender labels miss.
func IdentityMatch(c models.Creator, resolvedGender string, ethnicities []string) bool {
	for _, label := range genderLabels[resolvedGender] {
		if containsFold(c.Gender, label) {
			return true
		}
	}

	if len(ethnicities) == 0 {
		return false
	}

	for _, selected := range ethnicities {
		synonyms, ok := ethnicitySynonyms[selected]
		if !ok {
			// Unknown selections fall back to a literal comparison.
			synonyms = []string{selected}
		}
		for _, syn := range synonyms {
			if containsFold(c.Ethnicity, syn) || containsFold(syn, c.Ethnicity) {
				return true
			}
		}
	}
	return false
}

// GoalMatch reports whether the creator matches any selected career goal
// via the three-tier table: exact subcategory, role keyword, or partial
// keyword in topics, subcategories or the knownFor summary.
func GoalMatch(c models.Creator, goals []string) bool {
	for _, goal := range goals {
		rule, ok := goalMatching[goal]
		if !ok {
			continue
		}
		if tier, _ := matchGoalTier(c, rule); tier != tierNone {
			return true
		}
	}
	return false
}

// ContentCareMatch reports whether any selected content-care preference
// resolves true for the creator.
func ContentCareMatch(c models.Creator, cares []string, resolvedGender string, ethnicities []string) bool {
	for _, care := range cares {
		switch care {
		case careLooksLikeMe:
			if IdentityMatch(c, resolvedGender, ethnicities) {
				return true
			}
		case careFirstGen:
			if anyContainsFold(c.Topics, "first gen") ||
				containsFold(c.KnownFor, "first gen") ||
				anyContainsFold(c.SubCategory, "first gen") {
				return true
			}
		case careCompanyAcquired:
			if containsFold(c.KnownFor, "acquired") ||
				containsFold(c.KnownFor, "exit") ||
				containsFold(c.Role, "acquired") {
				return true
			}
		case careSenior:
			if containsFold(c.CareerStage, "senior") ||
				containsFold(c.Role, "senior") ||
				containsFold(c.Role, "director") ||
				containsFold(c.Role, "vp") {
				return true
			}
		}
	}
	return false
}

// CareerJourneyMatch reports whether any selected journey stage's keywords
// appear in the creator's role, knownFor summary or subcategory set.
func CareerJourneyMatch(c models.Creator, journeys []string) bool {
	for _, journey := range journeys {
		for _, kw := range careerJourneyKeywords[journey] {
			if containsFold(c.Role, kw) ||
				containsFold(c.KnownFor, kw) ||
				anyContainsFold(c.SubCategory, kw) {
				return true
			}
		}
	}
	return false
}

// IsSeniorExperience reports whether the creator qualifies for the
// seniority coverage slot.
func IsSeniorExperience(c models.Creator) bool {
	if containsFold(c.CareerStage, "senior") {
		return true
	}
	for _, kw := range seniorRoleKeywords {
		if containsFold(c.Role, kw) {
			return true
		}
	}
	return c.AgeGroup == "30+"
}

// HasRecruitingExperience reports whether the creator qualifies for the
// recruiting coverage slot, by explicit flag or inference.
func HasRecruitingExperience(c models.Creator) bool {
	return c.HasRecruitingExperience ||
		containsFold(c.KnownFor, "recruiting") ||
		containsFold(c.KnownFor, "interview") ||
		containsFold(c.KnownFor, "hiring") ||
		anyContainsFold(c.Topics, "recruiting")
}

// goalTier identifies which tier of a goal rule matched.
type goalTier int

const (
	tierNone goalTier = iota
	tierPartial
	tierRole
	tierExact
)

// matchGoalTier returns the best matching tier for one goal rule and the
// score that tier awards. Exact beats role beats partial; a goal never
// awards more than one tier.
func matchGoalTier(c models.Creator, rule goalRule) (goalTier, int) {
	for _, exact := range rule.exact {
		for _, cat := range c.SubCategory {
			if cat == exact {
				return tierExact, rule.weight
			}
		}
	}

	for _, kw := range rule.role {
		if containsFold(c.Role, kw) {
			return tierRole, int(float64(rule.weight) * roleTierFactor)
		}
	}

	for _, kw := range rule.partial {
		if anyContainsFold(c.Topics, kw) ||
			anyContainsFold(c.SubCategory, kw) ||
			containsFold(c.KnownFor, kw) {
			return tierPartial, int(float64(rule.weight) * partialTierFactor)
		}
	}

	return tierNone, 0
}

// containsFold reports whether s contains sub, case-insensitively.
func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// anyContainsFold reports whether any element of list contains sub,
// case-insensitively.
func anyContainsFold(list []string, sub string) bool {
	for _, s := range list {
		if containsFold(s, sub) {
			return true
		}
	}
	return false
}
