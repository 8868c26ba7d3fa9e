package analyzer

import (
	"context"
	"fmt"

	"github.com/aadithv/scout/internal/prompt"
	"github.com/aadithv/scout/internal/research"
)

// Completer is the short-call model backend used for founder identification.
type Completer interface {
	IdentifyFounders(ctx context.Context, model, founderPrompt string) (string, error)
}

// Meeting is one calendar event as the analyzer sees it.
type Meeting struct {
	Title       string
	Description string
	StartTime   string
	Organizer   *research.Attendee
	Attendees   []research.Attendee
}

// Analyzer runs the founder-identification step for calendar events.
type Analyzer struct {
	llm            Completer
	model          string
	excludeEmails  []string
	excludeDomains []string
}

// Config configures the analyzer.
type Config struct {
	Model          string
	ExcludeEmails  []string
	ExcludeDomains []string
}

// New creates a founder analyzer over the given model backend.
func New(llm Completer, cfg Config) *Analyzer {
	return &Analyzer{
		llm:            llm,
		model:          cfg.Model,
		excludeEmails:  cfg.ExcludeEmails,
		excludeDomains: cfg.ExcludeDomains,
	}
}

// FilterAttendees applies the analyzer's exclusion policy to a meeting's
// attendee list.
func (a *Analyzer) FilterAttendees(attendees []research.Attendee) []research.Attendee {
	return research.FilterAttendees(attendees, a.excludeEmails, a.excludeDomains)
}

// AnalyzeMeeting identifies founder candidates among a meeting's attendees.
// Meetings with no attendees left after filtering produce no candidates and no
// model call. A *research.ParseError comes back typed so the caller can report
// it for this meeting without aborting the others.
func (a *Analyzer) AnalyzeMeeting(ctx context.Context, m Meeting) ([]research.FounderCandidate, error) {
	attendees := a.FilterAttendees(m.Attendees)
	if len(attendees) == 0 {
		return nil, nil
	}

	founderPrompt := prompt.BuildFounderIdentification(prompt.FounderPromptInput{
		EventTitle:  m.Title,
		Attendees:   attendees,
		Organizer:   m.Organizer,
		Description: m.Description,
	})

	raw, err := a.llm.IdentifyFounders(ctx, a.model, founderPrompt)
	if err != nil {
		return nil, fmt.Errorf("founder identification failed: %w", err)
	}

	return research.ExtractFounderCandidates(raw)
}
