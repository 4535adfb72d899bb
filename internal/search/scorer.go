package search

import "strings"

// Rule identifies which scoring rule matched a name.
type Rule string

// Match rules in priority order. Native rules compare the query and name
// as given (case-sensitive); romanized rules compare the lower-cased query
// against the romanized name.
const (
	RuleNativePrefix      Rule = "native-prefix"
	RuleRomanizedPrefix   Rule = "romanized-prefix"
	RuleNativeSuffix      Rule = "native-suffix"
	RuleRomanizedSuffix   Rule = "romanized-suffix"
	RuleNativeContains    Rule = "native-contains"
	RuleRomanizedContains Rule = "romanized-contains"
	RuleNone              Rule = "none"
)

// Base scores per rule. Rules are checked in priority order and the first
// match wins; base scores never combine.
const (
	scoreNativePrefix      = 100
	scoreRomanizedPrefix   = 95
	scoreNativeSuffix      = 80
	scoreRomanizedSuffix   = 75
	scoreNativeContains    = 60
	scoreRomanizedContains = 55
)

// Bonuses stack on top of any non-zero base score.
const (
	bonusExactMatch  = 20
	bonusLengthMatch = 10
)

// edgeRunes is how many leading or trailing runes the native prefix and
// suffix rules compare. Both the name and the query need at least this many.
const edgeRunes = 2

// Score rates how well a name matches a query. It returns the total score
// (base + bonuses) and the rule that produced it, or (0, RuleNone) when
// nothing matched. The romanized argument is the output of Romanize(name);
// callers romanize once per name and pass it in.
//
// Score is a pure function and is total over its inputs: empty strings and
// short names simply fail to match.
func Score(query, name, romanized string) (int, Rule) {
	base, rule := baseScore(query, name, romanized)
	if base == 0 {
		return 0, RuleNone
	}

	score := base
	if name == query {
		score += bonusExactMatch
	}
	if len(name) == len(query) {
		score += bonusLengthMatch
	}
	return score, rule
}

// baseScore finds the highest-priority matching rule.
func baseScore(query, name, romanized string) (int, Rule) {
	if query == "" {
		return 0, RuleNone
	}

	qRunes := []rune(query)
	nRunes := []rune(name)
	lowered := strings.ToLower(query)

	if headEqual(nRunes, qRunes) {
		return scoreNativePrefix, RuleNativePrefix
	}
	if strings.HasPrefix(romanized, lowered) {
		return scoreRomanizedPrefix, RuleRomanizedPrefix
	}
	if tailEqual(nRunes, qRunes) {
		return scoreNativeSuffix, RuleNativeSuffix
	}
	if strings.HasSuffix(romanized, lowered) {
		return scoreRomanizedSuffix, RuleRomanizedSuffix
	}
	if strings.Contains(name, query) {
		return scoreNativeContains, RuleNativeContains
	}
	if strings.Contains(romanized, lowered) {
		return scoreRomanizedContains, RuleRomanizedContains
	}
	return 0, RuleNone
}

// headEqual reports whether the first edgeRunes runes of name and query match.
func headEqual(name, query []rune) bool {
	if len(name) < edgeRunes || len(query) < edgeRunes {
		return false
	}
	return string(name[:edgeRunes]) == string(query[:edgeRunes])
}

// tailEqual reports whether the last edgeRunes runes of name and query match.
func tailEqual(name, query []rune) bool {
	if len(name) < edgeRunes || len(query) < edgeRunes {
		return false
	}
	return string(name[len(name)-edgeRunes:]) == string(query[len(query)-edgeRunes:])
}
