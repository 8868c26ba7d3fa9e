package research

// Attendee is a meeting participant as fetched from the calendar.
type Attendee struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// FounderCandidate is one attendee the model flagged during founder identification.
// IsFounder is "Y", "N" or "unknown" when the model omitted the field.
type FounderCandidate struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	IsFounder string `json:"is_founder"`
	Company   string `json:"company"`
	Reasoning string `json:"reasoning"`
}

// IsFounderUnknown is the default verdict when the model response omits is_founder.
const IsFounderUnknown = "unknown"

// Target is a curated company/founder record slated for deep research.
// Auto-derived targets keep the event context they came from; manual targets
// have only what the user typed in. The report fields are filled after a run.
type Target struct {
	Key string `json:"key"`

	EventTitle string `json:"event_title,omitempty"`
	EventTime  string `json:"event_time,omitempty"`

	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Company   string `json:"company"`
	IsFounder string `json:"is_founder,omitempty"`
	Reasoning string `json:"reasoning,omitempty"`

	CompanyWebsite   string   `json:"company_website,omitempty"`
	CompanyLinkedIn  string   `json:"company_linkedin,omitempty"`
	FounderLinkedIns []string `json:"founder_linkedins,omitempty"`
	KeyQuestions     []string `json:"key_questions,omitempty"`
	DeckURL          string   `json:"deck_url,omitempty"`
	DeckFile         string   `json:"deck_file,omitempty"`
	Notes            string   `json:"notes,omitempty"`

	Excluded bool `json:"excluded"`

	Report      string `json:"report,omitempty"`
	ReportModel string `json:"report_model,omitempty"`
	ReportError string `json:"report_error,omitempty"`
}

// ModelCandidate is one entry in the research fallback sequence.
type ModelCandidate struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ReportStatus describes the outcome of one research run.
type ReportStatus string

const (
	StatusSuccess   ReportStatus = "success"
	StatusExhausted ReportStatus = "exhausted"
)

// Attempt records a single failed model invocation during fallback.
type Attempt struct {
	ModelID string `json:"model_id"`
	Reason  string `json:"reason"`
}

// ReportResult is the outcome of running research for one target: either the
// first successful model's text, or the full list of failed attempts.
type ReportResult struct {
	Status    ReportStatus `json:"status"`
	ModelUsed string       `json:"model_used,omitempty"`
	Text      string       `json:"text,omitempty"`
	Attempts  []Attempt    `json:"attempts,omitempty"`
}
