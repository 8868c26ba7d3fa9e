package prompt

import (
	"fmt"
	"strings"

	"github.com/aadithv/scout/internal/research"
)

// FounderPromptInput carries the meeting context the founder-identification
// prompt is rendered from. Attendees should already be filtered.
type FounderPromptInput struct {
	EventTitle  string
	Attendees   []research.Attendee
	Organizer   *research.Attendee
	Description string
}

// BuildFounderIdentification renders the founder-identification instruction
// for one meeting. Pure template over the input: identical input produces
// byte-identical output. Absent organizer and description get literal
// placeholders so the model never sees a dangling label.
func BuildFounderIdentification(in FounderPromptInput) string {
	var b strings.Builder

	organizerStr := "(not specified)"
	if in.Organizer != nil {
		organizerStr = fmt.Sprintf("%s <%s>", in.Organizer.Name, in.Organizer.Email)
	}

	descriptionStr := in.Description
	if descriptionStr == "" {
		descriptionStr = "(none)"
	}

	b.WriteString("You are an expert at analyzing meeting context to identify startup founders and the companies they are building. ")
	b.WriteString("Please use all available information and think step by step. For each attendee, tell me:\n")
	b.WriteString("- Are they a founder? (Y/N)\n")
	b.WriteString("- What company are they building (if any)?\n")
	b.WriteString("- Your reasoning for each answer.\n\n")

	b.WriteString("Here is the meeting context:\n")
	b.WriteString(fmt.Sprintf("- Title: %s\n", in.EventTitle))
	b.WriteString(fmt.Sprintf("- Organizer: %s\n", organizerStr))
	b.WriteString("- Attendees:\n")
	for _, a := range in.Attendees {
		b.WriteString(fmt.Sprintf("- %s <%s>\n", a.Name, a.Email))
	}
	b.WriteString(fmt.Sprintf("- Description: %s\n\n", descriptionStr))

	b.WriteString("Please output a JSON array, one object per attendee, with keys: name, email, is_founder (Y/N), company (if any), reasoning.")

	return b.String()
}
