package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Matches reports whether every word of query fuzzily matches the window's
// title, view, theme or id. An empty query matches everything.
func (i Item) Matches(query string) bool {
	terms := i.terms()
	for _, word := range strings.Fields(query) {
		if !matchesAny(word, terms) {
			return false
		}
	}
	return true
}

func matchesAny(word string, terms []string) bool {
	for _, term := range terms {
		if fuzzy.MatchNormalizedFold(word, term) {
			return true
		}
	}
	return false
}

// Filter keeps the items matching query, in their original order.
func Filter(items []Item, query string) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if item.Matches(query) {
			out = append(out, item)
		}
	}
	return out
}
