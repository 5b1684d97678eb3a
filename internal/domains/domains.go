// Package domains infers coarse topic labels from free text via keyword
// matching. The labels feed memory tagging at write time and domain-coherence
// filtering during recall.
package domains

import (
	"sort"
	"strings"
)

// Keywords maps each domain label to its trigger keywords and phrases.
// Triggers containing a space are matched as literal substrings of the
// normalized text; single words are matched against the token set only,
// so "fund" never fires inside "fundamental".
var Keywords = map[string][]string{
	"poetry": {
		"poem", "poetry", "verse", "stanza", "line", "couplet", "sonnet",
		"metaphor", "imagery", "languid moon",
	},
	"finance": {
		"finance", "invest", "investing", "investment", "stock", "stocks",
		"market", "fund", "funds", "etf", "etfs", "index fund",
		"mutual fund", "portfolio", "capital",
	},
	"gnome": {
		"gnome", "garden gnome", "waistcoat", "green waistcoat",
		"horticultural", "paving stones", "wandering gnome",
	},
	"weather": {
		"weather", "forecast", "rain", "sunny", "cloudy", "wind",
		"temperature", "cold", "warm",
	},
	"schedule": {
		"plan", "schedule", "agenda", "appointment",
		"calendar", "daily plan", "itinerary",
	},
	"drafting": {
		"email", "letter", "draft", "compose", "correspondence",
		"write", "rewrite", "note",
	},
	"research": {
		"research", "investigate", "investigation", "analysis",
		"summary", "report",
	},
	"history": {
		"history", "historical", "estate", "westmarch", "archive", "timeline",
	},
	"parlour": {
		"parlour", "chat", "conversation", "talk", "discuss",
	},
	"critique": {
		"critique", "appraisal", "assessment",
	},
	"sports": {
		"sport", "sports", "tennis", "match", "tournament",
		"score", "set", "athlete", "competition",
	},
}

// Infer returns the set of domain labels whose triggers appear in text.
// A domain is included as soon as one of its triggers matches.
func Infer(text string) map[string]struct{} {
	found := make(map[string]struct{})
	if strings.TrimSpace(text) == "" {
		return found
	}

	t := strings.ToLower(text)
	tokens := tokenSet(t)

	for domain, triggers := range Keywords {
		for _, trigger := range triggers {
			if strings.Contains(trigger, " ") {
				if strings.Contains(t, trigger) {
					found[domain] = struct{}{}
					break
				}
			} else if _, ok := tokens[trigger]; ok {
				found[domain] = struct{}{}
				break
			}
		}
	}
	return found
}

// InferSorted returns Infer's result as a sorted slice for deterministic
// rendering.
func InferSorted(text string) []string {
	set := Infer(text)
	labels := make([]string, 0, len(set))
	for d := range set {
		labels = append(labels, d)
	}
	sort.Strings(labels)
	return labels
}

// Tags renders the inferred domains as domain:<label> tags, sorted.
// Returns nil when nothing matches.
func Tags(text string) []string {
	labels := InferSorted(text)
	if len(labels) == 0 {
		return nil
	}
	tags := make([]string, len(labels))
	for i, d := range labels {
		tags[i] = "domain:" + d
	}
	return tags
}

// Intersects reports whether the two domain sets share a label.
func Intersects(a, b map[string]struct{}) bool {
	for d := range a {
		if _, ok := b[d]; ok {
			return true
		}
	}
	return false
}

// tokenSet builds a whitespace/punctuation-normalized token set for
// whole-word matching.
func tokenSet(lowered string) map[string]struct{} {
	fields := strings.FieldsFunc(lowered, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\r', ',', '.', ';', ':', '!', '?', '(', ')', '"', '\'':
			return true
		}
		return false
	})
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}
