// CreatorMatch - Creator Recommendation API for FixUrFeed
// Copyright 2026 FixUrFeed
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/fixurfeed/creatormatch

/*
Package models defines the data structures shared across CreatorMatch.

Key Components:

  - Creator: one catalog entry (role, platform, subcategories, topics,
    identity attributes)
  - MatchedCreator: a Creator annotated with the match reason, platform
    call-to-action and display tags
  - QuizAnswers: one finalized quiz completion
  - Feedback: one user feedback submission

The structs carry the JSON tags used both for the catalog file on disk
and for the API wire format, and validator tags for the fields checked
at the API edge.
*/
package models
