package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/nextlevelbuilder/westmarch/internal/household"
)

func (o *Orchestrator) parlourDiscussion(ctx context.Context, input string) (string, error) {
	if matchesClosure(input, parlourClosures) {
		return parlourClosureReply, nil
	}

	instruction := "You are Jeeves, Head Butler of the Westmarch Estate, conversing " +
		"with the Master in the parlour.\n" +
		"Respond in your warm, courteous, but still understated manner.\n\n" +
		"You may, when it is natural, draw upon prior notes or memory entries " +
		"included in the context (for example earlier conversations, the " +
		"household staff roster, or notable projects recorded by Miss Pennington).\n" +
		"Use memory for gentle continuity only: brief references such as " +
		"\"As we discussed yesterday\" or recalling known preferences.\n\n" +
		"Do NOT invent new household staff or contradict the known roster. " +
		"If the user inquires about the staff, describe ONLY the Westmarch " +
		"staff you know from your instructions and any roster in memory.\n\n" +
		"Now respond to the user's latest remark."

	reply, err := o.staff().Butler.Run(ctx, household.Message{
		Sender:    "User",
		Recipient: household.NameJeeves,
		Task:      household.TaskConversation,
		Content:   fmt.Sprintf("%s\n\nUSER SAID:\n%s", instruction, input),
		Context:   contextFor(input, household.ModeParlour),
	})
	if err != nil {
		return "", err
	}

	o.archive(fmt.Sprintf("Parlour discussion entry:\n\nUSER SAID:\n%s\n\nJEEVES REPLIED:\n%s", input, reply))
	return reply, nil
}

// scheduleTimePattern and scheduleRangePattern detect explicit time tokens in
// a planning request: H:MM, H.MM, or an H-H range (hyphen or en dash).
var (
	scheduleTimePattern  = regexp.MustCompile(`\d{1,2}[:.]\d{2}`)
	scheduleRangePattern = regexp.MustCompile(`\d{1,2}\s*[-–]\s*\d{1,2}`)
)

const (
	planModePreserve = "USER_PROVIDED_SCHEDULE"
	planModePropose  = "NEEDS_JEEVES_TO_PROPOSE_SCHEDULE"
)

func (o *Orchestrator) dailyPlanning(ctx context.Context, input string, mode household.Mode) (string, error) {
	if matchesClosure(input, planningApprovals) {
		return planningApprovalReply, nil
	}

	planMode := planModePropose
	if scheduleTimePattern.MatchString(input) || scheduleRangePattern.MatchString(input) {
		planMode = planModePreserve
	}
	slog.Debug("orchestrator: planning mode selected", "mode", planMode)

	instruction := fmt.Sprintf(
		"You are Jeeves, the Head Butler of the Westmarch Estate. You are preparing a "+
			"daily plan for the user. Your behaviour depends on the nature of the user's "+
			"request.\n\n"+
			"MODE: %s\n\n"+
			"1) %s:\n"+
			"The user has given explicit times and/or tasks. You must preserve these "+
			"EXACTLY. Format them clearly and elegantly.\n\n"+
			"You may, if the tone of the request implies openness (e.g. 'additions', "+
			"'adjust', 'improve', 'refine', or similar), offer OPTIONAL, politely worded "+
			"suggestions. Suggestions must never override, reorder, replace, or imply "+
			"error. They should be brief and optional: "+
			"('If you wish, sir, you might also consider...').\n\n"+
			"Always maintain Jeeves's characteristic polish and gentle flourish.\n\n"+
			"2) %s:\n"+
			"The user has not given a structured plan. Propose a complete, well-ordered "+
			"schedule. After presenting it, ask whether the user would like any changes.\n\n"+
			"In all modes, remain dignified, structured, and impeccably polite. Never add or "+
			"change tasks unless the user has invited refinement. Err on the side of clarity "+
			"and elegance rather than austerity.",
		planMode, planModePreserve, planModePropose)

	plan, err := o.staff().Butler.Run(ctx, household.Message{
		Sender:      "System",
		Recipient:   household.NameJeeves,
		Task:        household.TaskPlanning,
		Content:     instruction,
		Context:     contextFor(input, mode),
		Constraints: household.Constraints{Style: "structured"},
	})
	if err != nil {
		return "", err
	}

	o.archive(fmt.Sprintf("Daily plan created based on user request:\n\nREQUEST:\n%s\n\nPLAN:\n%s", input, plan))
	return plan, nil
}

// quickResearch delegates to Perkins and returns his words directly; the
// scribe archives the result. The butler frames the task but never rewrites
// the answer.
func (o *Orchestrator) quickResearch(ctx context.Context, input string, mode household.Mode) (string, error) {
	if matchesClosure(input, researchClosures) {
		return researchClosureReply, nil
	}

	research, err := o.staff().Researcher.Run(ctx, household.Message{
		Sender:    household.NameJeeves,
		Recipient: household.NamePerkins,
		Task:      household.TaskResearch,
		Content: "Please provide a concise, well-structured research summary " +
			"for the user's request.",
		Context: contextFor(input, mode),
	})
	if err != nil {
		return "", err
	}

	o.archive(fmt.Sprintf("Research performed for user request:\n\nREQUEST:\n%s\n\nRESEARCH SUMMARY:\n%s", input, research))
	return research, nil
}

func (o *Orchestrator) draftShortText(ctx context.Context, input string, mode household.Mode) (string, error) {
	if matchesClosure(input, draftingClosures) {
		return draftingClosureReply, nil
	}

	draft, err := o.staff().Scribe.Run(ctx, household.Message{
		Sender:    household.NameJeeves,
		Recipient: household.NamePennington,
		Task:      household.TaskDrafting,
		Content: "Please transform the user's notes into a polished, ready-to-send " +
			"piece of writing. Do not explain your process; simply return the " +
			"final text.",
		Context: contextFor(input, mode),
	})
	if err != nil {
		return "", err
	}

	o.archive(fmt.Sprintf("Drafted text based on user request:\n\nREQUEST:\n%s\n\nDRAFT:\n%s", input, draft))
	return draft, nil
}

// critiqueText sends only the target text to Lady Hawthorne, whose reply
// comes back in her own voice.
func (o *Orchestrator) critiqueText(ctx context.Context, input string, mode household.Mode) (string, error) {
	if matchesClosure(input, critiqueClosures) {
		return critiqueClosureReply, nil
	}

	critique, err := o.staff().Critic.Run(ctx, household.Message{
		Sender:    "System",
		Recipient: household.NameHawthorne,
		Task:      household.TaskCritique,
		Content: "Please critique the following text with your customary " +
			"aristocratic wit and clarity. Focus strictly on the text itself.\n\n" +
			"Your critique must be no longer than 3 sentences.\n\n" +
			"Always conclude your critique with an encouraging remark.\n\n" +
			input,
		Context: contextFor(input, mode),
	})
	if err != nil {
		return "", err
	}

	o.archive(fmt.Sprintf("Critique requested from Lady Hawthorne:\n\nTEXT:\n%s\n\nCRITIQUE:\n%s", input, critique))
	return critique, nil
}

// wholeHousehold runs the full seven-stage investigation pipeline. Each
// stage's output is passed as literal text into the next stage's prompt.
func (o *Orchestrator) wholeHousehold(ctx context.Context, input string, mode household.Mode) (string, error) {
	if matchesClosure(input, wholeHouseholdClosures) {
		return wholeHouseholdClosureReply, nil
	}

	// Stage 1: Perkins investigates.
	investigation, err := o.staff().Researcher.Run(ctx, household.Message{
		Sender:    household.NameJeeves,
		Recipient: household.NamePerkins,
		Task:      household.TaskResearch,
		Content: "Please investigate the user's matter with a concise, structured analysis. " +
			"Your report MUST be no more than 120 words. " +
			"Use exactly three sections: 'Observation', 'Possible Causes', and 'Most Likely Explanation'. " +
			"Use no more than 3 bullet points total. " +
			"Avoid long sentences or extended exposition.",
		Context: contextFor(input, mode),
	})
	if err != nil {
		return "", err
	}
	o.archive(fmt.Sprintf("[Whole Household] Perkins investigation:\nUSER REQUEST:\n%s\n\nOUTPUT:\n%s", input, investigation))

	// Stage 2: Lady Hawthorne interjects.
	interjection, err := o.staff().Critic.Run(ctx, household.Message{
		Sender:    "System",
		Recipient: household.NameHawthorne,
		Task:      household.TaskCritique,
		Content: "Please offer a brief, aristocratic interjection commenting on Perkins's investigation. " +
			"Your response must be a SINGLE PARAGRAPH of no more than 80-100 words. " +
			"You may include ONE specific suggested improvement at the end, introduced with the phrase " +
			"'Suggested refinement:' " +
			"Avoid numbered lists, lengthy analysis, or multi-paragraph commentary. " +
			"Maintain Lady Hawthorne's witty, aristocratic tone but remain concise.\n\n" +
			investigation,
		Context: contextFor(input, mode),
	})
	if err != nil {
		return "", err
	}

	// Stage 3: Miss Pennington drafts the note to the neighbours.
	draft, err := o.staff().Scribe.Run(ctx, household.Message{
		Sender:    household.NameJeeves,
		Recipient: household.NamePennington,
		Task:      household.TaskDrafting,
		Content: "Please draft a very short, extremely polite note to the neighbours " +
			"about the unusual movement of the garden gnome. " +
			"Your letter must be no more than 80-100 words total, " +
			"written in 4-5 sentences. " +
			"Avoid flourishes, avoid digressions, and do not include commentary " +
			"outside the letter itself. " +
			"End with a single warm closing line.\n\n" +
			"Write only the letter.",
		Context: contextFor(input, mode),
	})
	if err != nil {
		return "", err
	}

	// Stage 4: Lady Hawthorne critiques the draft.
	letterFeedback, err := o.staff().Critic.Run(ctx, household.Message{
		Sender:    "System",
		Recipient: household.NameHawthorne,
		Task:      household.TaskCritique,
		Content: "Please critique Miss Pennington's drafted letter. " +
			"Your critique must be extremely brief: no more than 40-60 words, " +
			"written in 3-5 sentences total. " +
			"Provide exactly ONE specific improvement. " +
			"Do not include lists, rewrites, or lengthy commentary. " +
			"Maintain your aristocratic tone.\n\n" +
			draft,
		Context: contextFor(input, mode),
	})
	if err != nil {
		return "", err
	}

	// Stage 5: Miss Pennington revises.
	revision, err := o.staff().Scribe.Run(ctx, household.Message{
		Sender:    "System",
		Recipient: household.NamePennington,
		Task:      household.TaskDrafting,
		Content: fmt.Sprintf(
			"Lady Hawthorne has critiqued your draft. Please revise the letter using her "+
				"single suggested improvement. The revised letter must be concise, no more "+
				"than 80-100 words. Keep the tone warm and elegant, avoid ornamentation, and "+
				"ensure the request for neighbour observations is clear. Do not add new ideas, "+
				"and do not repeat content from the original draft.\n\n"+
				"Your original draft:\n%s\n\n"+
				"Lady Hawthorne said:\n%s", draft, letterFeedback),
		Context: contextFor(input, mode),
	})
	if err != nil {
		return "", err
	}

	// Stage 6: Miss Pennington summarises every step.
	summary, err := o.staff().Scribe.Run(ctx, household.Message{
		Sender:    "System",
		Recipient: household.NamePennington,
		Task:      household.TaskDrafting,
		Content: fmt.Sprintf(
			"Please produce a concise, elegant summary of the entire multi-agent "+
				"workflow that has just occurred. Your summary must:\n"+
				"- be 180-240 words long\n"+
				"- use ONLY the information explicitly provided below\n"+
				"- include a brief reference to, and a single short quote from, each participant's contribution\n"+
				"- include, as an exception, the FULL TEXT of your revised letter\n"+
				"- be structured using a separate paragraph for each participant:\n"+
				"     - Perkins' investigation\n"+
				"     - Lady Hawthorne's first interjection\n"+
				"     - your initial draft\n"+
				"     - Lady Hawthorne's critique\n"+
				"     - your revised letter\n"+
				"- maintain your refined, archivist tone (calm, clear, lightly wry)\n"+
				"- avoid adding new theories, invented details, or interpretations\n\n"+
				"Here is the complete record of agent outputs:\n\n"+
				"==== PERKINS' INVESTIGATION ====\n%s\n\n"+
				"==== LADY HAWTHORNE'S FIRST REMARK ====\n%s\n\n"+
				"==== MISS PENNINGTON'S FIRST DRAFT ====\n%s\n\n"+
				"==== LADY HAWTHORNE'S CRITIQUE ====\n%s\n\n"+
				"==== MISS PENNINGTON'S REVISION ====\n%s\n\n"+
				"Please now produce your final archival summary.",
			investigation, interjection, draft, letterFeedback, revision),
		Context: contextFor(input, mode),
	})
	if err != nil {
		return "", err
	}

	// Stage 7: Jeeves presents.
	return o.staff().Butler.Run(ctx, household.Message{
		Sender:    "System",
		Recipient: household.NameJeeves,
		Task:      household.TaskConversation,
		Content: fmt.Sprintf(
			"Miss Pennington has prepared the final archival summary of the "+
				"household's coordinated investigation. Please present her summary to "+
				"the Patron in your polished, understated butler's voice.\n\n"+
				"Guidelines:\n"+
				"- Do NOT add new information.\n"+
				"- Do NOT reinterpret or expand on the events.\n"+
				"- You may introduce her summary with a single courteous line.\n"+
				"- Then reproduce her summary verbatim.\n"+
				"- Then close with one brief, dignified concluding remark.\n\n"+
				"Here is Miss Pennington's summary:\n\n%s", summary),
		Context: contextFor(input, mode),
	})
}
