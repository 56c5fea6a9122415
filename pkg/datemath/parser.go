package datemath

import (
	"fmt"
	"time"
)

// DayLayout is the ISO-8601 calendar date layout used by voice platform date slots.
const DayLayout = "2006-01-02"

// Parser resolves day values to midnights in a fixed location.
type Parser struct {
	location *time.Location
}

// NewParserIn creates a parser for an already loaded location. A nil location means UTC.
func NewParserIn(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	return &Parser{location: loc}
}

// ParseDay resolves an exact YYYY-MM-DD value to the start of that day.
// Surrounding whitespace, relative words and week, month or year values are rejected.
func (p *Parser) ParseDay(value string) (time.Time, error) {
	if len(value) != len(DayLayout) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnsupportedDate, value)
	}
	day, err := time.ParseInLocation(DayLayout, value, p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrUnsupportedDate, value, err)
	}
	return day, nil
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// DayRange returns [day 00:00, next day 00:00) in the parser's timezone.
// The range is 23 or 25 hours long on DST transition days.
func (p *Parser) DayRange(day time.Time) (time.Time, time.Time) {
	start := p.StartOfDay(day)
	return start, time.Date(start.Year(), start.Month(), start.Day()+1, 0, 0, 0, 0, p.location)
}

// Lookahead returns [from, from + days) keeping the wall clock across DST changes.
func (p *Parser) Lookahead(from time.Time, days int) (time.Time, time.Time) {
	from = from.In(p.location)
	return from, from.AddDate(0, 0, days)
}
