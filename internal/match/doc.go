// CreatorMatch - Creator Recommendation API for FixUrFeed
// Copyright 2026 FixUrFeed
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fixurfeed/creatormatch

/*
Package match implements the deterministic rule-based recommender that
turns one quiz completion and a creator catalog into up to five annotated
recommendations.

The pipeline runs in one direction with no I/O and no shared state:

	answers + catalog -> predicates -> scoring -> slot assembly -> matches

Scoring is an additive integer model over hand-authored keyword tables
(see tables.go). Selection is ordered slot-filling that guarantees
coverage: the top goal match first, then at least one senior creator, one
creator with recruiting experience, an identity match when the user asked
for one, and finally the highest-scoring remainder. Duplicates are
excluded by creator ID and the list is never padded with zero-score
entries.

The only nondeterminism is the gender draw when the quiz gender question
was skipped; it happens exactly once per Match invocation and the resolved
value is reused for every creator evaluated in that invocation. Tests
inject a fixed rand.Source through WithRandSource.

The substring heuristics against the keyword tables are intentional fuzzy
matching over a small curated catalog, not a search engine: keep them as
literal tables.
*/
package match
