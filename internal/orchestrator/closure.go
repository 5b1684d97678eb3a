package orchestrator

import "strings"

// Closure detection. Every conversational workflow first tests the raw input
// against its list of approval and farewell phrases; on a match it returns a
// canned, in-persona acknowledgement with no model call and no archival
// write. Matching is case-insensitive substring.

var parlourClosures = []string{
	"thank you",
	"that will do",
	"that will be all",
	"that will suffice",
	"you may go",
	"very good",
	"excellent, thank you",
	"splendid, thank you",
	"most helpful",
	"quite helpful",
	"much obliged",
	"carry on",
	"as you were",
	"that's all jeeves",
	"thank you jeeves",
	"dismissed",
}

const parlourClosureReply = "Certainly, sir. I shall retire to the wing, " +
	"but will attend instantly if called."

var planningApprovals = []string{
	"thank you",
	"that will be all",
	"this will do nicely",
	"that will do nicely",
	"this looks good",
	"that looks good",
	"perfect",
	"excellent",
	"very good",
	"that will do",
	"this will do",
	"thank you, jeeves",
}

const planningApprovalReply = "Very good, sir. I shall see that everything is arranged accordingly. " +
	"Do let me know if you require any further adjustments."

var researchClosures = []string{
	"thank you",
	"that will do",
	"that will be all",
	"that will suffice",
	"you may go",
	"very good",
	"excellent, thank you",
	"splendid, thank you",
	"most helpful",
	"quite helpful",
	"much obliged",
	"carry on",
	"as you were",
	"that's all perkins",
	"thank you, perkins",
	"dismissed",
}

const researchClosureReply = "At once, sir. I shall retire this matter in the household ledger. " +
	"If ever you desire supplementary findings, I am wholly at your disposal."

var draftingClosures = []string{
	"thank you",
	"that will do",
	"that will be all",
	"that will suffice",
	"you may go",
	"very good",
	"excellent, thank you",
	"splendid, thank you",
	"most helpful",
	"quite helpful",
	"much obliged",
	"carry on",
	"as you were",
	"that's all miss pennington",
	"thank you, miss pennington",
	"dismissed",
}

const draftingClosureReply = "Certainly, sir. I will set this matter gently to rest within the ledger. " +
	"Whenever fresh words or tidy records are needed, I shall attend at once."

var archiveClosures = []string{
	"that will suffice",
	"that will do nicely",
	"this will do nicely",
	"splendid",
	"excellent, thank you",
	"my compliments",
	"that will be all",
}

const archiveClosureReply = "Very good, sir. The archives shall remain at your disposal. " +
	"Do let me know if you require anything further."

var critiqueClosures = []string{
	"thank you",
	"that will do",
	"that will suffice",
	"very well",
	"fine, thank you",
	"fine thank you",
	"excellent, thank you",
	"alright then",
	"okay then",
	"appreciated",
	"much obliged",
}

const critiqueClosureReply = "As you wish, sir. Should further literary agonies ever require my lantern, " +
	"I shall of course remain available."

var wholeHouseholdClosures = []string{
	"thank you",
	"my thanks",
	"that will do",
	"that will suffice",
	"very well",
	"fine, thank you",
	"fine thank you",
	"excellent, thank you",
	"alright then",
	"okay then",
	"appreciated",
	"much obliged",
}

const wholeHouseholdClosureReply = "Indeed, sir. If another garden ornament develops ambitions of nocturnal adventure, " +
	"we shall of course investigate with all due diligence."

var recallClosures = []string{
	"thank you",
	"my thanks",
	"that will do",
	"that will suffice",
	"very well",
	"fine, thank you",
	"fine thank you",
	"excellent, thank you",
	"alright then",
	"okay then",
	"appreciated",
	"much obliged",
}

const recallClosureReply = "Indeed, sir. Miss Pennington and I remain prepared " +
	"to recover any stray reflections."

func matchesClosure(input string, phrases []string) bool {
	lower := strings.ToLower(strings.TrimSpace(input))
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
