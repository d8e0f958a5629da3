// Package prompt assembles the text prompts sent to the generation service.
package prompt

import (
	"strings"

	"bi-assistant/internal/model"
)

// maxHistory is how many prior exchanges are replayed into a prompt.
const maxHistory = 2

// SystemInstruction opens every prompt built by Build.
const SystemInstruction = "You are a Business Intelligence Assistant. Help with data analysis, reports, and business metrics. Be clear and professional."

// AssistantCue ends every prompt built by Build.
const AssistantCue = "Assistant:"

// systemPrompt opens every prompt built by BuildEnhanced.
const systemPrompt = `You are a Business Intelligence Assistant, an expert AI consultant specializing in data analysis, business metrics, and report generation.

Your role is to help users:
1. Understand business metrics and KPIs
2. Generate structured report outlines
3. Answer questions about data analysis
4. Provide guidance on data visualization
5. Explain business concepts in simple terms

Guidelines:
- Always provide clear, actionable insights
- Use business terminology appropriately
- Structure responses with clear sections
- Be concise but comprehensive
- Ask clarifying questions when needed
- Format outputs professionally (use markdown for structure)

When generating reports:
- Include executive summary
- Add key metrics section
- Provide analysis and insights
- Include recommendations
- Suggest visualizations where appropriate`

// Build assembles the short prompt used by the chat relay:
// instruction, up to the last two "Previous:" lines, the user line and the assistant cue.
func Build(message string, history []model.PriorExchange) string {
	var b strings.Builder
	b.WriteString(SystemInstruction)
	b.WriteString("\n\n")

	if ctx := HistoryContext(history); ctx != "" {
		b.WriteString(ctx)
		b.WriteString("\n\n")
	}

	b.WriteString("User: ")
	b.WriteString(message)
	b.WriteString("\n\n")
	b.WriteString(AssistantCue)
	return b.String()
}

// HistoryContext renders the last two exchanges as "Previous: <user>" lines,
// oldest first. Earlier exchanges are dropped.
func HistoryContext(history []model.PriorExchange) string {
	if len(history) > maxHistory {
		history = history[len(history)-maxHistory:]
	}
	lines := make([]string, 0, len(history))
	for _, h := range history {
		lines = append(lines, "Previous: "+h.User)
	}
	return strings.Join(lines, "\n")
}

// Builder produces template-driven prompts.
type Builder struct {
	templates *TemplateStore
}

func NewBuilder(templates *TemplateStore) *Builder {
	return &Builder{templates: templates}
}

// BuildEnhanced classifies message, inserts the matching template fragment
// between the system prompt and the request line, and appends context when set.
func (b *Builder) BuildEnhanced(message, context string) string {
	fragment := b.templates.Load(Classify(message))

	var sb strings.Builder
	sb.WriteString(systemPrompt)
	sb.WriteString("\n\n")
	sb.WriteString(fragment)
	sb.WriteString("\n\nUser request: ")
	sb.WriteString(message)
	if context != "" {
		sb.WriteString("\n\nPrevious conversation context:\n")
		sb.WriteString(context)
		sb.WriteString("\n")
	}
	return sb.String()
}
