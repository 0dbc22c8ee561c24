// Package timeutil parses user supplied dates and provides a swappable clock.
package timeutil

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// ErrInvalidDate is returned when no layout or natural-language rule matches.
var ErrInvalidDate = errors.New("invalid date")

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// DateParser turns the date strings accepted by the API into UTC instants.
type DateParser struct {
	clock Clock
	w     *when.Parser
}

// NewDateParser creates a DateParser. A nil clock falls back to RealClock.
func NewDateParser(clock Clock) *DateParser {
	if clock == nil {
		clock = RealClock{}
	}
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &DateParser{clock: clock, w: w}
}

// Parse accepts RFC3339, "YYYY-MM-DD" (optionally with a time) or English
// phrases such as "tomorrow at 6pm" relative to the parser's clock.
func (p *DateParser) Parse(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf("%w: empty input", ErrInvalidDate)
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, input); err == nil {
			return t.UTC(), nil
		}
	}

	r, err := p.w.Parse(strings.ToLower(input), p.clock.Now())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidDate, input, err)
	}
	if r == nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, input)
	}
	return r.Time.UTC(), nil
}
