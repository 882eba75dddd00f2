// Package planner implements the itinerary planning and follow-up mutation
// engine: date resolution, weather selection, pricing, itinerary building,
// follow-up intent classification, and intent application.
//
// The engine holds no cross-request state. All reference data (seasonal
// tables, price cards, the activity catalog) is immutable and loaded once;
// itineraries are passed in and returned, with persistence left to the
// service layer.
package planner

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/Srujan578/travel-planner-website/internal/domain"
)

// Date expression grammar, in priority order:
//
//	"2025-04-15 to 2025-04-20"   full range (years optional on either side)
//	"04-15 to 04-20"             range without year
//	"04-15 for 5 days"           start + duration
//	"04-15"                      single date, a one-day trip
var (
	reDateRange = regexp.MustCompile(`^\s*(?:(\d{4})-)?(\d{1,2})-(\d{1,2})\s+to\s+(?:(\d{4})-)?(\d{1,2})-(\d{1,2})\s*$`)
	reDateFor   = regexp.MustCompile(`^\s*(?:(\d{4})-)?(\d{1,2})-(\d{1,2})\s+for\s+(\d+)\s+days?\s*$`)
	reDateOnly  = regexp.MustCompile(`^\s*(?:(\d{4})-)?(\d{1,2})-(\d{1,2})\s*$`)
)

// ResolveDates parses a date/duration expression into a concrete TripDates.
// Dates that omit a year assume ref's year; if that puts the start strictly
// in the past, the year advances by one. Cross-year ranges (e.g. "12-28 to
// 01-03") resolve the end into the following year.
//
// Returns domain.ErrDateParse when no form matches or a month/day is outside
// calendar limits.
func ResolveDates(expression string, ref time.Time) (domain.TripDates, error) {
	ref = dateOnly(ref)

	if m := reDateRange.FindStringSubmatch(expression); m != nil {
		start, err := buildDate(m[1], m[2], m[3], ref)
		if err != nil {
			return domain.TripDates{}, err
		}
		endYear := m[4]
		if endYear == "" {
			endYear = strconv.Itoa(start.Year())
		}
		end, err := buildDate(endYear, m[5], m[6], time.Time{})
		if err != nil {
			return domain.TripDates{}, err
		}
		// "Dec 28 to Jan 3" with no end year lands before the start;
		// roll the end into the following year.
		if m[4] == "" && end.Before(start) {
			end = end.AddDate(1, 0, 0)
		}
		if end.Before(start) {
			return domain.TripDates{}, fmt.Errorf("%w: end date %s is before start date %s",
				domain.ErrDateParse, end.Format("2006-01-02"), start.Format("2006-01-02"))
		}
		return newTripDates(start, end), nil
	}

	if m := reDateFor.FindStringSubmatch(expression); m != nil {
		start, err := buildDate(m[1], m[2], m[3], ref)
		if err != nil {
			return domain.TripDates{}, err
		}
		n, err := strconv.Atoi(m[4])
		if err != nil || n < 1 {
			return domain.TripDates{}, fmt.Errorf("%w: duration must be at least 1 day", domain.ErrDateParse)
		}
		return newTripDates(start, start.AddDate(0, 0, n-1)), nil
	}

	if m := reDateOnly.FindStringSubmatch(expression); m != nil {
		start, err := buildDate(m[1], m[2], m[3], ref)
		if err != nil {
			return domain.TripDates{}, err
		}
		return newTripDates(start, start), nil
	}

	return domain.TripDates{}, fmt.Errorf("%w: %q", domain.ErrDateParse, expression)
}

// buildDate assembles a date from regexp captures. When year is empty, the
// year is inferred from ref: ref's year, advanced by one if the resulting
// date is strictly before ref (already past this year). Pass a zero ref to
// skip inference (used for range end dates, which follow the start).
func buildDate(year, month, day string, ref time.Time) (time.Time, error) {
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	if m < 1 || m > 12 {
		return time.Time{}, fmt.Errorf("%w: month %d is out of range", domain.ErrDateParse, m)
	}

	y := 0
	inferred := year == ""
	if inferred {
		y = ref.Year()
	} else {
		y, _ = strconv.Atoi(year)
	}

	if d < 1 || d > daysIn(y, time.Month(m)) {
		return time.Time{}, fmt.Errorf("%w: day %d is out of range for month %d", domain.ErrDateParse, d, m)
	}

	date := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if inferred && date.Before(ref) {
		date = date.AddDate(1, 0, 0)
		// Feb 29 inferred into a non-leap year collapses; reject rather
		// than silently shifting to Mar 1.
		if int(date.Month()) != m {
			return time.Time{}, fmt.Errorf("%w: day %d is out of range for month %d", domain.ErrDateParse, d, m)
		}
	}
	return date, nil
}

func newTripDates(start, end time.Time) domain.TripDates {
	return domain.TripDates{
		StartDate:    start,
		EndDate:      end,
		DurationDays: int(end.Sub(start).Hours()/24) + 1,
	}
}

func daysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
