package usecase

import (
	"errors"
	"fmt"
	"math"
	"time"

	"pronote-gateway/internal/fetch"
	"pronote-gateway/pkg/pronote"
)

const dateFormat = "2006-01-02"

// computeRanges derives the two request ranges: the past range from the
// input (verbatim when both bounds are given, else the last max(1, Days)
// days ending today) and the fixed next-7-days range.
func computeRanges(now time.Time, input fetch.Input) (past, next7 fetch.DateRange, err error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if input.Start != "" && input.End != "" {
		start, perr := time.Parse(dateFormat, input.Start)
		if perr != nil {
			return past, next7, fmt.Errorf("%w: %q", fetch.ErrBadDateRange, input.Start)
		}
		end, perr := time.Parse(dateFormat, input.End)
		if perr != nil {
			return past, next7, fmt.Errorf("%w: %q", fetch.ErrBadDateRange, input.End)
		}
		past = fetch.DateRange{Start: start, End: end}
	} else {
		days := input.Days
		if days < 1 {
			days = 1
		}
		past = fetch.DateRange{Start: today.AddDate(0, 0, -days), End: today}
	}

	next7 = fetch.DateRange{Start: today, End: today.AddDate(0, 0, 7)}
	return past, next7, nil
}

// roundSeconds renders a duration as seconds with millisecond precision.
func roundSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*1000) / 1000
}

// timeoutText is the error entry recorded for timed-out operations.
func timeoutText(budget time.Duration) string {
	return fmt.Sprintf("timeout>%gs", budget.Seconds())
}

func (uc *implUseCase) schoolURL() string {
	if uc.mock || uc.portal == nil {
		return "MOCK"
	}
	return uc.portal.SchoolURL()
}

// mapLoginErr translates portal handshake faults into the typed domain
// errors the delivery layer knows how to surface.
func mapLoginErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pronote.ErrInvalidCredentials):
		return fetch.ErrInvalidCredentials
	case errors.Is(err, pronote.ErrVersionMismatch):
		return fmt.Errorf("%w: %v", fetch.ErrVersionMismatch, err)
	default:
		return fmt.Errorf("%w: %v", fetch.ErrUpstream, err)
	}
}

func subjectID(s pronote.Subject) string {
	if s.Code != "" {
		return s.Code
	}
	return s.Name
}

func subjectLabel(s pronote.Subject) string {
	if s.Name == "" {
		return "?"
	}
	return s.Name
}
