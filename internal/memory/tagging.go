package memory

import (
	"regexp"
	"strings"

	"github.com/nextlevelbuilder/westmarch/internal/domains"
)

// AutoTag marks entries tagged by the ledger itself rather than a caller.
const AutoTag = "auto"

// yearPattern matches historical years 1000-1999; notes that mention one and
// match no workflow preamble are filed as archive material.
var yearPattern = regexp.MustCompile(`\b1[0-9]{3}\b`)

// typeRule pairs a content prefix with the type tag it implies. Rules are
// checked in order; the first match wins.
type typeRule struct {
	prefix string
	tag    string
}

var typeRules = []typeRule{
	{"parlour discussion entry", "type:parlour"},
	{"daily plan created", "type:daily-plan"},
	{"daily plan finalized", "type:daily-plan"},
	{"research performed", "type:research"},
	{"drafted text based", "type:draft"},
	{"critique requested", "type:critique"},
	{"[whole household]", "type:investigation"},
}

// ClassifyType returns exactly one type tag for content. Workflow preambles
// take priority over the year heuristic, which beats the generic fallback.
func ClassifyType(content string) string {
	lower := strings.ToLower(content)
	for _, rule := range typeRules {
		if strings.HasPrefix(lower, rule.prefix) {
			return rule.tag
		}
	}
	if yearPattern.MatchString(content) {
		return "type:archive"
	}
	return "type:note"
}

// ComposeTags builds the final tag list for a new entry: the auto marker,
// the type tag, inferred domain tags, then explicit tags, deduplicated
// preserving first-seen order.
func ComposeTags(content string, explicit []string) []string {
	tags := []string{AutoTag, ClassifyType(content)}
	tags = append(tags, domains.Tags(content)...)
	tags = append(tags, explicit...)

	seen := make(map[string]struct{}, len(tags))
	out := tags[:0]
	for _, t := range tags {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
