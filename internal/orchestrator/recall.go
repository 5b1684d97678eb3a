package orchestrator

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/nextlevelbuilder/westmarch/internal/domains"
	"github.com/nextlevelbuilder/westmarch/internal/memory"
)

// recallTopN bounds the candidate pool the domain filter runs over. Keeping
// it small intentionally discards weak keyword matches even when they would
// have passed the domain filter.
const recallTopN = 10

const recallNothingFoundReply = "I have consulted Miss Pennington's meticulously kept ledger, sir, " +
	"but I fear no relevant recollection appears recorded under that description. " +
	"If you recall even a fragment more, I should be delighted to search again."

// recallMemory finds the one past note most relevant to the query. Two-stage
// filter: naive token-overlap scoring selects the candidate pool, then domain
// coherence picks within it. Score first, domain second, never the reverse:
// the domain filter is a precision booster, not a retrieval mechanism.
func (o *Orchestrator) recallMemory(input string) (string, error) {
	if matchesClosure(input, recallClosures) {
		return recallClosureReply, nil
	}

	queryDomains := domains.Infer(input)
	entries := o.staff().Scribe.LoadAllNotes()

	type scored struct {
		entry memory.Entry
		score int
	}
	var ranked []scored
	words := strings.Fields(strings.ToLower(input))
	for _, e := range entries {
		content := strings.ToLower(e.Content)
		score := 0
		for _, w := range words {
			if strings.Contains(content, w) {
				score++
			}
		}
		ranked = append(ranked, scored{entry: e, score: score})
	}

	// Ties keep stored order.
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	if len(ranked) == 0 || ranked[0].score == 0 {
		slog.Debug("orchestrator: recall found no scoring entries")
		return recallNothingFoundReply, nil
	}

	candidates := ranked
	if len(candidates) > recallTopN {
		candidates = candidates[:recallTopN]
	}

	// Within the pool, a genuine domain intersection beats everything, even
	// an earlier-stored candidate at the same score. A domain-less candidate
	// is merely compatible, so it serves as the fallback when nothing in the
	// pool shares a domain with the query; failing that, the top scorer wins.
	chosen := candidates[0].entry
	if len(queryDomains) > 0 {
		matched := false
		for _, c := range candidates {
			if domains.Intersects(queryDomains, domains.Infer(c.entry.Content)) {
				chosen = c.entry
				matched = true
				break
			}
		}
		if !matched {
			for _, c := range candidates {
				if len(domains.Infer(c.entry.Content)) == 0 {
					chosen = c.entry
					break
				}
			}
		}
	}

	slog.Debug("orchestrator: recall selected entry", "id", chosen.ID)
	return fmt.Sprintf(
		"Indeed, sir. Upon consulting the household's memory ledger, "+
			"I find the following relevant recollection:\n\n%s\n\n"+
			"If you desire a fuller account or further inquiry, I remain entirely at your disposal.",
		strings.TrimSpace(chosen.Content)), nil
}
