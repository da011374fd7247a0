// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scoring is the scoring and aggregation engine of the Tippspiel.

Everything here is a pure function over values passed in by the caller:
nothing is read from storage and no input is modified, so the functions are
safe to call from concurrent requests.

# Scoring

Score compares one submission's picks with the official results:

	b := scoring.Score(sub.Picks, results)
	// b.Winner, b.OverUnder, ... b.BadBunny, b.Total (0-6)

Matching is exact string equality. The fun-only category is never compared.

# Distributions

Aggregate counts how often each declared option was picked:

	items := scoring.Aggregate(cat.Options(catalog.MVP), picks, catalog.MVP)

Items keep catalog order, include options nobody picked, and carry a
percentage of all submissions rounded to one decimal place. Rounded
percentages are not forced to add up to 100. In JSON the distributions
object lists categories in catalog order.

# Overview

BuildOverview is the read model behind the live page and the exports:

	ov := scoring.BuildOverview(cat, submissions, resultSet)

When the result set is missing or incomplete the overview is unscored:
Results and TopScore are nil and no submission carries a score. Otherwise
every submission is scored and IsLeader marks all submissions tied on the
top score.
*/
package scoring
