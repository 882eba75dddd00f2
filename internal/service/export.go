package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Srujan578/travel-planner-website/internal/domain"
	"github.com/Srujan578/travel-planner-website/internal/repo"
)

// ExportService renders a saved itinerary as a downloadable document.
type ExportService struct {
	trips repo.TripRepo
}

// NewExportService constructs an ExportService backed by the provided TripRepo.
func NewExportService(trips repo.TripRepo) *ExportService {
	return &ExportService{trips: trips}
}

// amounts renders money with digit grouping in the exported documents.
var amounts = message.NewPrinter(language.English)

// Export loads the itinerary and renders it in the requested format.
// An unrecognized format is a validation error.
func (s *ExportService) Export(ctx context.Context, id uuid.UUID, format domain.ExportFormat) (domain.ExportDocument, error) {
	it, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.ExportDocument{}, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	base := exportFilename(it)
	switch format {
	case domain.ExportMarkdown:
		return domain.ExportDocument{
			Filename:    base + ".md",
			ContentType: "text/markdown; charset=utf-8",
			Body:        []byte(renderMarkdown(it)),
		}, nil
	case domain.ExportText:
		return domain.ExportDocument{
			Filename:    base + ".txt",
			ContentType: "text/plain; charset=utf-8",
			Body:        []byte(renderText(it)),
		}, nil
	case domain.ExportJSON:
		body, err := json.MarshalIndent(it, "", "  ")
		if err != nil {
			return domain.ExportDocument{}, fmt.Errorf("service.ExportService.Export: marshal: %w", err)
		}
		return domain.ExportDocument{
			Filename:    base + ".json",
			ContentType: "application/json",
			Body:        body,
		}, nil
	default:
		return domain.ExportDocument{}, fmt.Errorf("%w: unsupported export format %q", domain.ErrValidation, format)
	}
}

var filenameUnsafe = regexp.MustCompile(`[^a-z0-9-]+`)

// exportFilename builds "itinerary-tokyo-2025-06-01" style names safe for a
// Content-Disposition header.
func exportFilename(it domain.Itinerary) string {
	dest := filenameUnsafe.ReplaceAllString(strings.ToLower(it.Destination), "-")
	dest = strings.Trim(dest, "-")
	if dest == "" {
		dest = "trip"
	}
	return fmt.Sprintf("itinerary-%s-%s", dest, it.Dates.StartDate.Format("2006-01-02"))
}

func renderMarkdown(it domain.Itinerary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Travel Itinerary: %s\n\n", it.Destination)
	fmt.Fprintf(&b, "**Dates:** %s to %s  \n",
		it.Dates.StartDate.Format("2006-01-02"), it.Dates.EndDate.Format("2006-01-02"))
	fmt.Fprintf(&b, "**Duration:** %d days  \n", it.Dates.DurationDays)
	fmt.Fprintf(&b, "**Travellers:** %d (%s)  \n", it.GroupSize, it.GroupType)
	fmt.Fprintf(&b, "**Budget:** %s\n\n", it.BudgetLevel)

	if len(it.Highlights) > 0 {
		b.WriteString("## Trip Highlights\n\n")
		for _, h := range it.Highlights {
			fmt.Fprintf(&b, "- %s\n", h)
		}
		b.WriteString("\n")
	}

	if len(it.Weather.Records) > 0 {
		b.WriteString("## Weather\n\n")
		for _, rec := range it.Weather.Records {
			fmt.Fprintf(&b, "- **%s:** %s, %.0f to %.0f°C", rec.Label, rec.Condition, rec.TempMinC, rec.TempMaxC)
			if rec.Tip != "" {
				fmt.Fprintf(&b, " — %s", rec.Tip)
			}
			b.WriteString("\n")
		}
		if it.Weather.Approximate {
			b.WriteString("\n*Weather data is approximate.*\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("## Detailed Itinerary\n\n")
	for _, day := range it.Days {
		fmt.Fprintf(&b, "### %s\n\n", day.Title)
		for _, act := range day.Activities {
			fmt.Fprintf(&b, "**%s:** %s\n", act.Slot, act.Title)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Estimated Costs\n\n")
	fmt.Fprintf(&b, "| Category | Amount (%s) |\n| --- | --- |\n", it.Prices.Currency)
	fmt.Fprintf(&b, "| Accommodation | %s |\n", money(it.Prices.Accommodation, it.Prices.Currency))
	fmt.Fprintf(&b, "| Food | %s |\n", money(it.Prices.Food, it.Prices.Currency))
	fmt.Fprintf(&b, "| Transport | %s |\n", money(it.Prices.Transport, it.Prices.Currency))
	fmt.Fprintf(&b, "| Activities | %s |\n", money(it.Prices.Activities, it.Prices.Currency))
	fmt.Fprintf(&b, "| **Total** | **%s** |\n\n", money(it.Prices.Total, it.Prices.Currency))

	if len(it.History) > 0 {
		b.WriteString("## Changes\n\n")
		for _, rec := range it.History {
			fmt.Fprintf(&b, "- %s — %s\n", rec.Timestamp.Format("2006-01-02 15:04"), rec.Summary)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func renderText(it domain.Itinerary) string {
	var b strings.Builder

	title := fmt.Sprintf("TRAVEL ITINERARY: %s", strings.ToUpper(it.Destination))
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")

	fmt.Fprintf(&b, "Dates:      %s to %s\n",
		it.Dates.StartDate.Format("2006-01-02"), it.Dates.EndDate.Format("2006-01-02"))
	fmt.Fprintf(&b, "Duration:   %d days\n", it.Dates.DurationDays)
	fmt.Fprintf(&b, "Travellers: %d (%s)\n", it.GroupSize, it.GroupType)
	fmt.Fprintf(&b, "Budget:     %s\n\n", it.BudgetLevel)

	for _, day := range it.Days {
		b.WriteString(day.Title + "\n")
		for _, act := range day.Activities {
			fmt.Fprintf(&b, "  %-10s %s\n", act.Slot+":", act.Title)
		}
		b.WriteString("\n")
	}

	b.WriteString("Estimated costs (" + it.Prices.Currency + ")\n")
	fmt.Fprintf(&b, "  Accommodation: %s\n", money(it.Prices.Accommodation, it.Prices.Currency))
	fmt.Fprintf(&b, "  Food:          %s\n", money(it.Prices.Food, it.Prices.Currency))
	fmt.Fprintf(&b, "  Transport:     %s\n", money(it.Prices.Transport, it.Prices.Currency))
	fmt.Fprintf(&b, "  Activities:    %s\n", money(it.Prices.Activities, it.Prices.Currency))
	fmt.Fprintf(&b, "  Total:         %s\n", money(it.Prices.Total, it.Prices.Currency))

	return b.String()
}

// money formats an amount with grouping, whole units for currencies that have
// no minor unit.
func money(v float64, currency string) string {
	switch currency {
	case "JPY", "IDR", "KRW", "VND":
		return amounts.Sprintf("%.0f", v)
	default:
		return amounts.Sprintf("%.2f", v)
	}
}
