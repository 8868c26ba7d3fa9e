package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aadithv/scout/internal/research"
)

// ErrMissingCompanyName is returned when a research prompt is requested for a
// target with no company identity; nothing useful can be researched.
var ErrMissingCompanyName = errors.New("research target has no company name")

// ResearchSystemPrompt frames the model as a VC research analyst. Sent as the
// system/developer message alongside every research prompt.
const ResearchSystemPrompt = "Formatting re-enabled\n" +
	"You are a professional researcher preparing a structured, data-driven report on behalf of a venture capital team. " +
	"Please answer in markdown format with clear headings, bullet points, and tables where appropriate. " +
	"Your task is to analyze the company and founder(s) described in the prompt. " +
	"Focus on data-rich insights, include specific figures, trends, statistics, and measurable outcomes. " +
	"Prioritize reliable, up-to-date sources and include inline citations and return all source metadata. " +
	"Be analytical, avoid generalities, and ensure that each section supports data-backed reasoning that could inform investment decisions."

// BuildResearch renders the deep-research instruction for one curated target.
// The facts block lists only the fields that are present; absent fields are
// omitted entirely rather than shown with placeholders. Fails only when the
// company name is missing.
func BuildResearch(t research.Target) (string, error) {
	company := strings.TrimSpace(t.Company)
	if company == "" {
		return "", ErrMissingCompanyName
	}

	var facts strings.Builder
	facts.WriteString(fmt.Sprintf("Company Name: %s\n", company))
	if t.CompanyWebsite != "" {
		facts.WriteString(fmt.Sprintf("Company Website: %s\n", t.CompanyWebsite))
	}
	if t.CompanyLinkedIn != "" {
		facts.WriteString(fmt.Sprintf("Company LinkedIn: %s\n", t.CompanyLinkedIn))
	}
	if len(t.FounderLinkedIns) > 0 {
		facts.WriteString("Founder(s) LinkedIn:\n")
		for _, url := range t.FounderLinkedIns {
			facts.WriteString(fmt.Sprintf("- %s\n", url))
		}
	}

	var questions strings.Builder
	if len(t.KeyQuestions) > 0 {
		questions.WriteString("Also, please specifically address the following key questions:\n")
		for _, q := range t.KeyQuestions {
			questions.WriteString(fmt.Sprintf("- %s\n", q))
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("You are the world's best early-stage technical VC conducting deep research on %s. ", company))
	b.WriteString("Your task is to gather concrete, factual information about this specific company and provide actionable insights for investment decision-making.\n\n")

	b.WriteString(fmt.Sprintf("IMPORTANT: Use web search to find current, factual information about %s. ", company))
	b.WriteString("Do not provide generic frameworks or theoretical approaches. Instead, find and analyze real data about this specific company.\n\n")

	b.WriteString("Here is the information I have on the company:\n---\n")
	b.WriteString(strings.TrimRight(facts.String(), "\n"))
	b.WriteString("\n---\n\n")

	b.WriteString(fmt.Sprintf("Please conduct a deep and comprehensive research analysis covering the following areas. For each section, provide specific facts, data, and insights about %s:\n\n", company))

	b.WriteString(fmt.Sprintf("1. **Depth and Nature of Painpoint:** What specific, critical pain point does %s's product solve? How severe is this pain for its target customers? Find concrete evidence and customer testimonials.\n\n", company))
	b.WriteString(fmt.Sprintf("2. **Market Headwinds and Tailwinds:** What broader market trends are helping or hurting %s specifically? Find recent news, market reports, and industry analysis.\n\n", company))
	b.WriteString("3. **Competitive Landscape:**\n")
	b.WriteString(fmt.Sprintf("   - Identify %s's direct and indirect competitors with specific company names.\n", company))
	b.WriteString("   - Find their funding amounts, scale, and key investors. What is the overall sentiment around them?\n")
	b.WriteString(fmt.Sprintf("   - Are there any open-source competitors in %s's space?\n", company))
	b.WriteString(fmt.Sprintf("   - If %s or its competitors have open-source offerings, compare their GitHub activity (stars, forks, contributor velocity).\n\n", company))
	b.WriteString("4. **Product Deep-Dive:**\n")
	b.WriteString(fmt.Sprintf("   - What does %s's product do exactly? Find product descriptions, demos, and feature lists.\n", company))
	b.WriteString("   - What is their key differentiation compared to competitors? What is their unique value proposition?\n\n")
	b.WriteString(fmt.Sprintf("5. **Market Size and Dynamics:** What is the estimated Total Addressable Market (TAM) for %s's specific market? Is this market growing, shrinking, or consolidating?\n\n", company))
	b.WriteString(fmt.Sprintf("6. **Go-To-Market (GTM) Strategy:** How is %s acquiring customers? Find evidence of their marketing, sales, and growth strategies.\n\n", company))
	b.WriteString(fmt.Sprintf("7. **Key Questions for Management:** What are the most important questions one should ask %s's founders to better understand the business and its growth prospects?\n\n", company))
	b.WriteString(fmt.Sprintf("8. **Key Risks:** What are the primary risks associated with %s specifically? Consider technology risk, market risk, execution risk, and competitive risk.\n", company))

	if questions.Len() > 0 {
		b.WriteString("\n")
		b.WriteString(strings.TrimRight(questions.String(), "\n"))
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("\nCRITICAL: Provide specific, factual information about %s. Include company names, funding amounts, dates, and concrete data. Do not give generic advice or frameworks. Use web search to find current information about this specific company.", company))

	return b.String(), nil
}
