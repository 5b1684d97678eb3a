// Package replay serves the scripted investigation transcript: a fixed,
// pre-written multi-turn exchange replayed without any model calls. It is a
// different contract from the live workflows, so it lives behind its own
// capability instead of the orchestrator's dispatch table.
package replay

import (
	"strings"

	"github.com/nextlevelbuilder/westmarch/pkg/protocol"
)

// TaskName is the menu entry that triggers the scripted transcript.
const TaskName = "scripted_investigation"

// Is reports whether task names the scripted transcript, matching the same
// case-insensitive convention as live task dispatch.
func Is(task string) bool {
	return strings.EqualFold(strings.TrimSpace(task), TaskName)
}

// Transcript returns the scripted investigation, one record per chat bubble.
// Callers receive a fresh copy each time; the script itself never changes.
func Transcript() []protocol.TranscriptRecord {
	out := make([]protocol.TranscriptRecord, len(script))
	copy(out, script)
	return out
}

var script = []protocol.TranscriptRecord{
	{
		Role:    "user",
		Speaker: "user",
		Content: "Jeeves, I am told something is amiss in the archives. Assemble the household, if you would.",
	},
	{
		Role:    "assistant",
		Speaker: "Jeeves",
		Content: "Very good, sir. I have taken the liberty of summoning the staff to Archive Chamber B, " +
			"where Miss Pennington reports an iron door that appears in no inventory of the estate. " +
			"Perkins, you will begin with a survey of the chamber's records.",
	},
	{
		Role:    "assistant",
		Speaker: "Perkins",
		Content: "At once, Mr. Jeeves. Observation: the shelving ledgers for Chamber B end abruptly in the " +
			"year 1894, and the iron door bears no catalogue plate. Possible causes: a sealed annex, a " +
			"misfiled renovation, or an oversight by a prior archivist. Most likely explanation: the door " +
			"predates the current cataloguing system entirely.",
	},
	{
		Role:    "assistant",
		Speaker: "Narrator",
		Content: "*The lamplight wavers along the shelves of Archive Chamber B. The iron door stands dull " +
			"and unmoving, its hinges furred with dust that no duster has disturbed in living memory.*",
	},
	{
		Role:    "assistant",
		Speaker: "Lady Hawthorne",
		Content: "A door without a catalogue plate, Perkins? How deliciously irregular. I should note that " +
			"your three tidy sections rather undersell the drama of the thing. Suggested refinement: do " +
			"establish whether the door is locked before theorizing about what it guards.",
	},
	{
		Role:    "assistant",
		Speaker: "Perkins",
		Content: "A fair point, your Ladyship. I have examined the mechanism: the door is locked, and the " +
			"keyhole shows tooling unlike any other lock in the household. I have run the metadata scanner " +
			"along the frame; the readings are faint but consistent with documents stored within.",
	},
	{
		Role:    "assistant",
		Speaker: "Miss Pennington",
		Content: "I have prepared a Discrepancy Report for Archive Chamber B, noting the undocumented iron " +
			"door, the terminated ledgers of 1894, and Perkins's scanner readings. The report is filed " +
			"under the household's investigation records, cross-referenced for any future inquiry.",
	},
	{
		Role:    "user",
		Speaker: "user",
		Content: "And what do you advise we do about the door, Jeeves?",
	},
	{
		Role:    "assistant",
		Speaker: "Jeeves",
		Content: "My advice, sir, is patience and proper paperwork. The door has kept its counsel since " +
			"1894; it will keep it a short while longer. With your permission, I shall write to the " +
			"county records office for the original building plans, and Perkins will repeat his scan " +
			"weekly so that any change is noticed at once.",
	},
	{
		Role:    "assistant",
		Speaker: "Narrator",
		Content: "*Dust settles back onto ledgers and ledges alike. The iron door waits, unchanged in " +
			"position, patient and mute.*",
	},
	{
		Role:    "assistant",
		Speaker: "Jeeves",
		Content: "The matter is recorded and the household stands ready, sir. Should the door ever " +
			"choose to give up its secret, you shall be the first to know of it.",
	},
}
