// CreatorMatch - Creator Recommendation API for FixUrFeed
// Copyright 2026 FixUrFeed
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fixurfeed/creatormatch

package match

import (
	"math/rand"
	"sort"
	"time"

	"github.com/fixurfeed/creatormatch/internal/models"
)

// MaxMatches is the size of the final recommendation list. Fewer entries
// are returned when fewer creators have positive relevance; the list is
// never padded with irrelevant creators.
const MaxMatches = 5

// Match reasons attached to selected creators, one per selection rule.
const (
	ReasonCareerGoals   = "Perfect match for your career goals"
	ReasonSenior        = "Senior experience and expertise"
	ReasonRecruiting    = "Recruiting and hiring experience"
	ReasonIdentity      = "Matches your identity and representation"
	ReasonContentPrefs  = "Matches your content preferences"
	ReasonCareerJourney = "Aligns with your career journey"
	ReasonHighScore     = "High compatibility score"
)

// Matcher computes creator recommendations for one quiz completion.
//
// A Matcher is a pure function of (catalog, answers) apart from one
// deliberate random draw: when the gender question was skipped, a gender
// is resolved once per Match invocation and reused for every creator in
// that invocation. Inject a fixed rand.Source for deterministic tests.
// A Matcher is safe for concurrent use only when each goroutine uses its
// own instance; the zero-cost construction makes per-request instances
// the normal pattern.
type Matcher struct {
	rng *rand.Rand
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithRandSource sets the random source used to resolve a skipped gender.
func WithRandSource(src rand.Source) Option {
	return func(m *Matcher) {
		m.rng = rand.New(src)
	}
}

// New creates a Matcher. Without options the gender draw is seeded from
// the wall clock.
func New(opts ...Option) *Matcher {
	m := &Matcher{}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return m
}

// scoredCreator pairs a creator with its computed score.
type scoredCreator struct {
	creator models.Creator
	score   int
}

// Match scores the catalog against the answers and assembles the final
// recommendation list using ordered coverage slots.
//
// An empty catalog yields an empty (non-nil) result. The input slice is
// never mutated.
func (m *Matcher) Match(answers models.QuizAnswers, creators []models.Creator) []models.MatchedCreator {
	resolvedGender := m.resolveGender(answers.Gender)

	candidates := filterByAge(creators, answers.Age)

	scored := make([]scoredCreator, 0, len(candidates))
	for _, c := range candidates {
		scored = append(scored, scoredCreator{
			creator: c,
			score:   Score(c, answers, resolvedGender),
		})
	}

	// Stable sort keeps catalog order on ties (documented tie-break).
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	// Predicate partitions, each already score-ordered.
	var goalPart, seniorPart, recruitingPart, identityPart []scoredCreator
	for _, sc := range scored {
		if GoalMatch(sc.creator, answers.Goals) {
			goalPart = append(goalPart, sc)
		}
		if IsSeniorExperience(sc.creator) {
			seniorPart = append(seniorPart, sc)
		}
		if HasRecruitingExperience(sc.creator) {
			recruitingPart = append(recruitingPart, sc)
		}
		if IdentityMatch(sc.creator, resolvedGender, answers.Ethnicity) {
			identityPart = append(identityPart, sc)
		}
	}

	selected := make(map[string]struct{}, MaxMatches)
	matches := make([]models.MatchedCreator, 0, MaxMatches)

	take := func(part []scoredCreator, reason string) {
		if len(matches) >= MaxMatches {
			return
		}
		for _, sc := range part {
			if _, dup := selected[sc.creator.ID]; dup {
				continue
			}
			selected[sc.creator.ID] = struct{}{}
			matches = append(matches, annotate(sc.creator, reason))
			return
		}
	}

	// Ordered coverage slots.
	take(goalPart, ReasonCareerGoals)
	take(seniorPart, ReasonSenior)
	take(recruitingPart, ReasonRecruiting)
	if wantsIdentityMatch(answers.ContentCare) {
		take(identityPart, ReasonIdentity)
	}

	// Fill the remainder from the score-ordered list, positive scores only.
	for _, sc := range scored {
		if len(matches) >= MaxMatches {
			break
		}
		if sc.score <= 0 {
			continue
		}
		if _, dup := selected[sc.creator.ID]; dup {
			continue
		}

		reason := ReasonHighScore
		if ContentCareMatch(sc.creator, answers.ContentCare, resolvedGender, answers.Ethnicity) {
			reason = ReasonContentPrefs
		} else if CareerJourneyMatch(sc.creator, answers.CareerJourney) {
			reason = ReasonCareerJourney
		}

		selected[sc.creator.ID] = struct{}{}
		matches = append(matches, annotate(sc.creator, reason))
	}

	return matches
}

// resolveGender returns the user's gender, drawing one uniformly at random
// when the question was skipped. Called exactly once per Match invocation.
func (m *Matcher) resolveGender(gender string) string {
	if gender != "" {
		return gender
	}
	return resolvableGenders[m.rng.Intn(len(resolvableGenders))]
}

// wantsIdentityMatch reports whether the identity coverage slot applies:
// only when the user explicitly asked for someone who looks like them.
func wantsIdentityMatch(cares []string) bool {
	for _, care := range cares {
		if care == careLooksLikeMe {
			return true
		}
	}
	return false
}

// annotate builds the output entry: reason, platform call-to-action and
// display tags (content styles plus the first three topics).
func annotate(c models.Creator, reason string) models.MatchedCreator {
	topics := c.Topics
	if len(topics) > 3 {
		topics = topics[:3]
	}

	tags := make([]string, 0, len(c.ContentStyle)+len(topics))
	tags = append(tags, c.ContentStyle...)
	tags = append(tags, topics...)

	return models.MatchedCreator{
		Creator:     c,
		MatchReason: reason,
		CTA:         "Follow on " + c.Platform,
		DisplayTags: tags,
	}
}

// youthAges are the age bands that select the younger-audience pre-filter.
var youthAges = map[string]struct{}{
	"18": {}, "19": {}, "20": {}, "21": {}, "22": {}, "23": {}, "24": {}, "25": {},
}

// filterByAge restricts the candidate pool to creators compatible with the
// supplied age band, before scoring and partitioning. An empty or
// unrecognized band keeps the full pool.
func filterByAge(creators []models.Creator, age string) []models.Creator {
	if age == "" {
		return creators
	}

	_, youth := youthAges[age]
	if !youth && age != "26+" {
		return creators
	}

	filtered := make([]models.Creator, 0, len(creators))
	for _, c := range creators {
		if youth {
			if c.AgeGroup == "18-25" || c.AgeGroup == "20s" || audienceHasAny(c, youthAudienceKeywords) {
				filtered = append(filtered, c)
			}
			continue
		}
		if c.AgeGroup == "30+" || c.AgeGroup == "26+" ||
			containsFold(c.CareerStage, "senior") ||
			containsFold(c.CareerStage, "mid") ||
			audienceHasAny(c, professionalAudienceKeywords) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// audienceHasAny reports whether any target-audience entry contains any of
// the given keywords.
func audienceHasAny(c models.Creator, keywords []string) bool {
	for _, kw := range keywords {
		if anyContainsFold(c.TargetAudience, kw) {
			return true
		}
	}
	return false
}
