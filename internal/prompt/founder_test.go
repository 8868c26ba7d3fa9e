package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aadithv/scout/internal/research"
)

func TestBuildFounderIdentification(t *testing.T) {
	t.Run("full meeting context", func(t *testing.T) {
		p := BuildFounderIdentification(FounderPromptInput{
			EventTitle: "Coffee chat with Acme founders",
			Attendees: []research.Attendee{
				{Name: "Jane Doe", Email: "jane@acme.com"},
				{Name: "John Smith", Email: "john@startup.io"},
			},
			Organizer:   &research.Attendee{Name: "Partner", Email: "partner@fund.com"},
			Description: "Intro to the Acme team.",
		})

		assert.Contains(t, p, "- Title: Coffee chat with Acme founders\n")
		assert.Contains(t, p, "- Organizer: Partner <partner@fund.com>\n")
		assert.Contains(t, p, "- Jane Doe <jane@acme.com>\n")
		assert.Contains(t, p, "- John Smith <john@startup.io>\n")
		assert.Contains(t, p, "- Description: Intro to the Acme team.\n")
		assert.Contains(t, p, "JSON array")
		assert.Contains(t, p, "is_founder (Y/N)")
	})

	t.Run("missing organizer and description get placeholders", func(t *testing.T) {
		p := BuildFounderIdentification(FounderPromptInput{
			EventTitle: "1:1",
			Attendees:  []research.Attendee{{Name: "Jane Doe", Email: "jane@acme.com"}},
		})

		assert.Contains(t, p, "- Organizer: (not specified)\n")
		assert.Contains(t, p, "- Description: (none)\n")
	})

	t.Run("deterministic", func(t *testing.T) {
		in := FounderPromptInput{
			EventTitle: "Pitch meeting",
			Attendees:  []research.Attendee{{Name: "Jane", Email: "jane@acme.com"}},
		}

		assert.Equal(t, BuildFounderIdentification(in), BuildFounderIdentification(in))
	})

	t.Run("attendee order is preserved", func(t *testing.T) {
		p := BuildFounderIdentification(FounderPromptInput{
			EventTitle: "Board sync",
			Attendees: []research.Attendee{
				{Name: "Alpha", Email: "a@x.com"},
				{Name: "Beta", Email: "b@x.com"},
			},
		})

		assert.Less(t, strings.Index(p, "Alpha"), strings.Index(p, "Beta"))
	})
}
