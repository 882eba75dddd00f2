// Package narrator turns itineraries into the short assistant-voice prose
// shown in the chat surface. An OpenAI model writes it when a key is
// configured; otherwise a deterministic template takes over, so the chat
// flow works identically with no external dependency.
package narrator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Srujan578/travel-planner-website/internal/domain"
)

const model = openai.ChatModelGPT4oMini

const systemPrompt = "You are a travel assistant. Summarize the itinerary " +
	"you are given in two or three warm, concrete sentences. Mention the " +
	"destination, the dates, one highlight, and the total estimated cost. " +
	"Do not invent details that are not in the itinerary."

// amounts is a grouping-aware printer so totals read "14,000", not "14000".
var amounts = message.NewPrinter(language.English)

// Narrator produces the conversational summary of an itinerary.
type Narrator struct {
	ai      *openai.Client // nil when no API key is configured
	timeout time.Duration
	log     *slog.Logger
}

// New constructs a Narrator. An empty apiKey yields a template-only narrator.
func New(apiKey string, log *slog.Logger) *Narrator {
	if log == nil {
		log = slog.Default()
	}
	n := &Narrator{timeout: 15 * time.Second, log: log}
	if apiKey != "" {
		client := openai.NewClient(option.WithAPIKey(apiKey))
		n.ai = &client
	}
	return n
}

// Narrate describes a freshly planned itinerary. It never fails: any model
// error falls back to the template.
func (n *Narrator) Narrate(ctx context.Context, it domain.Itinerary) string {
	if prose, ok := n.generate(ctx, planPrompt(it)); ok {
		return prose
	}
	return planTemplate(it)
}

// NarrateFollowUp describes the result of an applied follow-up change.
func (n *Narrator) NarrateFollowUp(ctx context.Context, it domain.Itinerary, changeSummary string) string {
	if prose, ok := n.generate(ctx, followUpPrompt(it, changeSummary)); ok {
		return prose
	}
	return followUpTemplate(it, changeSummary)
}

func (n *Narrator) generate(ctx context.Context, prompt string) (string, bool) {
	if n.ai == nil {
		return "", false
	}

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	completion, err := n.ai.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		n.log.Warn("narration model call failed, using template", "error", err)
		return "", false
	}
	if len(completion.Choices) == 0 {
		return "", false
	}
	prose := strings.TrimSpace(completion.Choices[0].Message.Content)
	return prose, prose != ""
}

func planPrompt(it domain.Itinerary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Destination: %s\n", it.Destination)
	fmt.Fprintf(&b, "Dates: %s to %s (%d days)\n",
		it.Dates.StartDate.Format("2006-01-02"), it.Dates.EndDate.Format("2006-01-02"), it.Dates.DurationDays)
	fmt.Fprintf(&b, "Group: %d, %s\n", it.GroupSize, it.GroupType)
	fmt.Fprintf(&b, "Budget tier: %s\n", it.BudgetLevel)
	fmt.Fprintf(&b, "Estimated total: %s %s\n", it.Prices.Currency, formatAmount(it.Prices.Total, it.Prices.Currency))
	if len(it.Highlights) > 0 {
		fmt.Fprintf(&b, "Highlights: %s\n", strings.Join(it.Highlights, "; "))
	}
	for _, rec := range it.Weather.Records {
		fmt.Fprintf(&b, "Weather %s: %s, %.0f-%.0f C\n", rec.Label, rec.Condition, rec.TempMinC, rec.TempMaxC)
	}
	return b.String()
}

func followUpPrompt(it domain.Itinerary, changeSummary string) string {
	return fmt.Sprintf("The traveller just changed their %s itinerary.\nChange: %s\n\n%s",
		it.Destination, changeSummary, planPrompt(it))
}

func planTemplate(it domain.Itinerary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here's your %d-day %s itinerary for %s (%s to %s).",
		it.Dates.DurationDays, strings.ToLower(string(it.BudgetLevel)), it.Destination,
		it.Dates.StartDate.Format("Jan 2"), it.Dates.EndDate.Format("Jan 2, 2006"))

	if len(it.Weather.Records) > 0 {
		rec := it.Weather.Records[0]
		fmt.Fprintf(&b, " Expect %s around %.0f-%.0f°C.",
			strings.ToLower(rec.Condition), rec.TempMinC, rec.TempMaxC)
	}

	fmt.Fprintf(&b, " The estimated total for %d traveller(s) is %s %s.",
		it.GroupSize, it.Prices.Currency, formatAmount(it.Prices.Total, it.Prices.Currency))

	if len(it.Highlights) > 0 {
		fmt.Fprintf(&b, " Don't miss: %s.", lowerFirst(it.Highlights[0]))
	}
	return b.String()
}

func followUpTemplate(it domain.Itinerary, changeSummary string) string {
	return fmt.Sprintf("Done — %s. Your %s trip now runs %s to %s with an estimated total of %s %s.",
		lowerFirst(changeSummary), it.Destination,
		it.Dates.StartDate.Format("Jan 2"), it.Dates.EndDate.Format("Jan 2, 2006"),
		it.Prices.Currency, formatAmount(it.Prices.Total, it.Prices.Currency))
}

// formatAmount renders a money amount with digit grouping, dropping the
// decimals for currencies without minor units.
func formatAmount(v float64, currency string) string {
	switch currency {
	case "JPY", "IDR", "KRW", "VND":
		return amounts.Sprintf("%.0f", v)
	default:
		return amounts.Sprintf("%.2f", v)
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
