package activity

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jonathan/activity-planner/internal/types"
)

// Date plausibility error messages
const (
	errStartInFuture       = "Start date cannot be in the future."
	errEndInFuture         = "End date cannot be in the future."
	errAnticipatedInPast   = "Anticipated start date cannot be in the past."
	errAnticipatedTooLateF = "Anticipated end date cannot be later than August %d."
)

// anticipatedEndMonth is the latest month (August, zero-based index 7) an
// anticipated range may end in, within currentYear+1.
const anticipatedEndMonth = 7

// GetDateError checks one date range for chronological plausibility against
// the current date. It returns the first failing condition's message, or ""
// when the range is acceptable. A side with a missing month or year
// contributes no error.
func GetDateError(r types.DateRange) string {
	return getDateErrorAt(r, time.Now())
}

func getDateErrorAt(r types.DateRange, now time.Time) string {
	currentYear := now.Year()
	currentMonth := int(now.Month()) - 1 // zero-based, matching monthIndex

	if r.Anticipated {
		if m, y, ok := monthYear(r.StartMonth, r.StartYear); ok {
			if compareMonthYear(m, y, currentMonth, currentYear) < 0 {
				return errAnticipatedInPast
			}
		}
		maxYear := currentYear + 1
		if m, y, ok := monthYear(r.EndMonth, r.EndYear); ok {
			if compareMonthYear(m, y, anticipatedEndMonth, maxYear) > 0 {
				return fmt.Sprintf(errAnticipatedTooLateF, maxYear)
			}
		}
		return ""
	}

	if m, y, ok := monthYear(r.StartMonth, r.StartYear); ok {
		if compareMonthYear(m, y, currentMonth, currentYear) > 0 {
			return errStartInFuture
		}
	}
	if m, y, ok := monthYear(r.EndMonth, r.EndYear); ok {
		if compareMonthYear(m, y, currentMonth, currentYear) > 0 {
			return errEndInFuture
		}
	}
	return ""
}

// monthYear parses a (month name, year string) pair. ok is false when either
// side is blank or unparseable, in which case the pair is treated as
// satisfied by the caller.
func monthYear(month, year string) (m, y int, ok bool) {
	if month == "" || year == "" {
		return 0, 0, false
	}
	m = monthIndex(month)
	if m < 0 {
		return 0, 0, false
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return 0, 0, false
	}
	return m, y, true
}

// monthIndex returns the zero-based index of a full month name, or -1
func monthIndex(name string) int {
	for i, m := range Months {
		if m == name {
			return i
		}
	}
	return -1
}

// compareMonthYear orders two (month, year) pairs chronologically, year first
func compareMonthYear(m1, y1, m2, y2 int) int {
	if y1 != y2 {
		if y1 > y2 {
			return 1
		}
		return -1
	}
	if m1 != m2 {
		if m1 > m2 {
			return 1
		}
		return -1
	}
	return 0
}

// ValidateRecord checks structural invariants of a full activity record:
// at least one date range, at most one anticipated range, a description
// within the system's character limit, and competencies drawn from the AAMC
// enumeration. Returns all violations; an empty slice means the record is
// structurally sound. Date plausibility is reported per-range by GetDateError
// and is not repeated here.
func ValidateRecord(a *types.Activity, app types.ApplicationType) []string {
	var problems []string

	if len(a.DateRanges) == 0 {
		problems = append(problems, "activity must have at least one date range")
	}
	anticipated := 0
	for _, r := range a.DateRanges {
		if r.Anticipated {
			anticipated++
		}
	}
	if anticipated > 1 {
		problems = append(problems, "activity may have at most one anticipated date range")
	}

	if limit := DescriptionLimit(app); len(a.Description) > limit {
		problems = append(problems, fmt.Sprintf("description exceeds the %d character limit", limit))
	}
	if len(a.MMEEssay) > MMELimit {
		problems = append(problems, fmt.Sprintf("most-meaningful essay exceeds the %d character limit", MMELimit))
	}

	for _, c := range a.Competencies {
		if !IsCoreCompetency(c) {
			problems = append(problems, fmt.Sprintf("unknown competency: %s", c))
		}
	}

	if app == types.AACOMAS && a.MostMeaningful {
		problems = append(problems, "most-meaningful designations do not exist under AACOMAS")
	}

	return problems
}
