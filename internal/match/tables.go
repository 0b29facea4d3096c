// CreatorMatch - Creator Recommendation API for FixUrFeed
// Copyright 2026 FixUrFeed
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fixurfeed/creatormatch

package match

// Hand-authored keyword tables driving the fuzzy matching heuristics.
// These are tuned business parameters, not derived data: changing a keyword
// changes product behavior. Keep them in sync with the catalog's actual
// subCategory and role vocabulary.

// Flat score weights applied on top of the per-goal weights.
const (
	identityBonus      = 20
	contentCareBonus   = 20
	contentPrefBonus   = 10
	brandTagBonus      = 15
	careerJourneyBonus = 15
	hiddenGemBonus     = 5

	// hiddenGemThreshold is the follower count below which a creator earns
	// the small-creator bonus.
	hiddenGemThreshold = 50000

	// roleTierFactor and partialTierFactor scale a goal's weight for the
	// lower match tiers. Applied with integer flooring.
	roleTierFactor    = 0.8
	partialTierFactor = 0.4
)

// genderLabels maps a resolved user gender to acceptable creator gender
// labels (matched case-insensitively by substring).
var genderLabels = map[string][]string{
	"Woman": {"Female"},
	"Man":   {"Male"},
	"Other": {"Other", "Transgender", "Genderfluid", "Non-binary", "Nonbinary"},
}

// resolvableGenders is the pool drawn from when the gender question was
// skipped. Drawn once per match invocation, never per creator.
var resolvableGenders = []string{"Woman", "Man", "Other"}

// ethnicitySynonyms normalizes each quiz ethnicity option to the labels
// that may appear in creator records. Cross-containment is checked in both
// directions, so "Black" matches a creator labeled "Black / British".
var ethnicitySynonyms = map[string][]string{
	"Latino / Hispanic":              {"Latino", "Hispanic", "Latine"},
	"Asian":                          {"Asian"},
	"Black / African American":       {"Black", "African American"},
	"White / Caucasian":              {"White", "Caucasian"},
	"Middle Eastern / North African": {"Middle Eastern", "North African", "MENA"},
	"Native American / Indigenous":   {"Native American", "Indigenous"},
	"Pacific Islander":               {"Pacific Islander"},
	"Mixed / Multiracial":            {"Mixed", "Multiracial", "Biracial"},
	"Other":                          {"Other"},
}

// goalRule is one goal category's three-tier keyword table.
//
// Tier preference is always exact > role > partial:
//   - exact entries must equal a creator subCategory verbatim
//   - role entries are substring-matched against the role title
//   - partial entries are substring-matched against topics, subcategories
//     and the knownFor summary
type goalRule struct {
	exact   []string
	role    []string
	partial []string
	weight  int
}

// goalScoring drives the scoring engine. Weights are per-goal: an exact
// subcategory hit awards the full weight, a role hit 80% (floored), a
// partial hit 40% (floored). Only the best tier counts per goal.
var goalScoring = map[string]goalRule{
	"Marketing in tech": {
		exact:   []string{"Digital Marketing", "Content strategy"},
		role:    []string{"marketing", "marketer", "brand"},
		partial: []string{"marketing", "brand", "growth"},
		weight:  50,
	},
	"Product management": {
		exact:   []string{"Product Management"},
		role:    []string{"product manager", "product", "pm"},
		partial: []string{"product"},
		weight:  50,
	},
	"Entrepreneurship": {
		exact:   []string{"Founders, startup advice", "fundraising and pitching"},
		role:    []string{"founder", "entrepreneur", "ceo"},
		partial: []string{"startup", "venture"},
		weight:  45,
	},
	"Data science": {
		exact:   []string{"Data Science", "AI/ML"},
		role:    []string{"data scientist", "data", "ai"},
		partial: []string{"analytics", "machine learning"},
		weight:  50,
	},
	"Software engineering": {
		exact:   []string{"Software Engineering"},
		role:    []string{"software engineer", "engineer", "developer"},
		partial: []string{"coding", "programming"},
		weight:  50,
	},
	"AI / Machine learning": {
		exact:   []string{"AI/ML"},
		role:    []string{"ai engineer", "ml engineer", "machine learning", "ai researcher"},
		partial: []string{"ai", "artificial intelligence", "ml"},
		weight:  50,
	},
	"Cybersecurity": {
		exact:   []string{"Cybersecurity"},
		role:    []string{"cybersecurity", "security engineer", "security analyst"},
		partial: []string{"security", "cyber", "infosec"},
		weight:  50,
	},
}

// goalMatching drives the goal-slot predicate. It deliberately casts a
// slightly wider net than goalScoring (broader partial lists) so the goal
// slot can be filled even when only a loose topical hit scored.
var goalMatching = map[string]goalRule{
	"Marketing in tech": {
		exact:   []string{"Digital Marketing", "Content strategy"},
		role:    []string{"marketing", "brand", "marketer"},
		partial: []string{"marketing", "brand", "growth"},
	},
	"Product management": {
		exact:   []string{"Product Management"},
		role:    []string{"product manager", "product", "pm"},
		partial: []string{"product manager", "pm", "product"},
	},
	"Entrepreneurship": {
		exact:   []string{"Founders, startup advice", "fundraising and pitching"},
		role:    []string{"founder", "entrepreneur", "ceo"},
		partial: []string{"entrepreneur", "founder", "startup", "ceo"},
	},
	"Data science": {
		exact:   []string{"Data Science", "AI/ML"},
		role:    []string{"data scientist", "data", "ai", "ml"},
		partial: []string{"data science", "machine learning", "ai", "analytics"},
	},
	"Software engineering": {
		exact:   []string{"Software Engineering"},
		role:    []string{"software engineer", "engineer", "developer"},
		partial: []string{"software engineer", "engineer", "developer", "coding"},
	},
	"AI / Machine learning": {
		exact:   []string{"AI/ML"},
		role:    []string{"ai", "machine learning", "ml engineer"},
		partial: []string{"ai", "machine learning", "artificial intelligence", "ml"},
	},
	"Cybersecurity": {
		exact:   []string{"Cybersecurity"},
		role:    []string{"cybersecurity", "security", "cyber"},
		partial: []string{"security", "cyber", "infosec"},
	},
}

// contentPrefKeywords maps each content-style preference to the keywords
// searched across subcategories, knownFor, topics and content styles.
var contentPrefKeywords = map[string][]string{
	"Personal brand":         {"personal branding", "brand", "branding", "personal brand", "influence", "creator economy"},
	"Getting an internship":  {"internship", "intern", "recruiting", "job search", "interview"},
	"First gen":              {"first gen", "first generation", "first-gen", "underrepresented"},
	"Mental health":          {"mental health", "wellness", "mindfulness", "wellbeing"},
	"Tech skills & coding":   {"coding", "programming", "tech", "software", "development", "technical", "engineering"},
	"Salary negotiation":     {"salary", "negotiation", "compensation", "pay", "money", "finance", "benefits"},
	"Salary transparent":     {"salary", "compensation", "pay", "transparent", "transparency"},
	"Straight to the point":  {"tactical", "concise", "direct", "straightforward"},
	"Humor & memes":          {"humor", "funny", "memes", "comedy", "entertaining", "relatable"},
	"Aesthetics & design":    {"aesthetic", "design", "visual", "creative", "art", "beautiful", "style"},
	"Fashion tech":           {"fashion", "style", "outfit", "wardrobe", "personal style", "fashion tech", "tech fashion"},
}

// brandTagPrefs are the content preferences that additionally earn the
// display-tag bonus when the creator carries a personal-brand/fashion tag.
var brandTagPrefs = map[string]struct{}{
	"Personal brand": {},
	"Fashion tech":   {},
}

// brandTagKeywords are matched against the creator's display tag set for
// the stacking brandTagBonus.
var brandTagKeywords = []string{"personal brand", "fashion", "style"}

// careerJourneyKeywords maps each journey stage to keywords searched in the
// role title, knownFor summary and subcategory set.
var careerJourneyKeywords = map[string][]string{
	"Still in school":             {"student", "intern", "university", "college"},
	"Recent graduate":             {"new grad", "entry level", "junior", "recent graduate"},
	"Entry-level professional":    {"entry level", "junior", "associate"},
	"Career changer":              {"career change", "transition", "pivot", "switching"},
	"Entrepreneur / Founder":      {"founder", "startup", "entrepreneur", "ceo"},
	"Looking for my first job":    {"job search", "recruiting", "interview"},
	"Between jobs":                {"job search", "recruiting", "career"},
	"Exploring new opportunities": {"opportunities", "growth", "development"},
}

// Content-care option labels, as emitted by the quiz UI.
const (
	careLooksLikeMe     = "Someone who looks like me"
	careFirstGen        = "Has first gen experience"
	careCompanyAcquired = "Someone whose company was acquired"
	careSenior          = "Someone with more experience (senior)"
)

// seniorRoleKeywords mark a role title as senior for the seniority slot.
var seniorRoleKeywords = []string{"senior", "director", "vp", "head of", "chief"}

// Age pre-filter signal keywords (target audience matching).
var (
	youthAudienceKeywords        = []string{"student", "young", "entry", "college", "university"}
	professionalAudienceKeywords = []string{"professional", "senior", "experienced", "manager"}
)
