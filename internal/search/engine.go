// Package search implements deterministic fuzzy matching of person names.
// A query matches a name either in its native script or through its pinyin
// romanization; a fixed rule table assigns scores so results are explainable
// and reproducible. The package holds no state and performs no I/O.
package search

import (
	"errors"
	"sort"
	"strings"
	"unicode/utf8"
)

// MinQueryRunes is the minimum number of characters a query must contain
// after trimming surrounding whitespace.
const MinQueryRunes = 2

// ErrInvalidQuery indicates the query is too short to search.
var ErrInvalidQuery = errors.New("query must be at least 2 characters")

// Result is a single ranked match.
type Result struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Rule  Rule   `json:"matched_rule"`
}

// Search ranks names against the query. Names that score zero are dropped;
// the rest come back sorted by score descending, with ties keeping the input
// order. No matches is an empty result, not an error.
//
// The names slice is a snapshot owned by the caller; Search never modifies it.
func Search(query string, names []string) ([]Result, error) {
	q := strings.TrimSpace(query)
	if utf8.RuneCountInString(q) < MinQueryRunes {
		return nil, ErrInvalidQuery
	}

	results := make([]Result, 0, len(names))
	for _, name := range names {
		score, rule := Score(q, name, Romanize(name))
		if score > 0 {
			results = append(results, Result{Name: name, Score: score, Rule: rule})
		}
	}

	// Stable: equal scores keep snapshot order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results, nil
}
