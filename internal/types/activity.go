// Package types provides type definitions for structured data used throughout the activity-planner system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strconv"

// ApplicationType identifies which application system the user is preparing for.
// The two systems differ in experience-type enumeration, description limits,
// and whether most-meaningful designations exist.
type ApplicationType string

// Application system constants
const (
	// AMCAS is the MD application system
	AMCAS ApplicationType = "AMCAS"
	// AACOMAS is the DO application system
	AACOMAS ApplicationType = "AACOMAS"
)

// ActivityStatus represents the lifecycle state of an activity entry
type ActivityStatus string

// Activity lifecycle states. An activity is created Empty, is promoted to
// Draft on its first edit, and may be manually set to Polished or Final.
const (
	StatusEmpty    ActivityStatus = "Empty"
	StatusDraft    ActivityStatus = "Draft"
	StatusPolished ActivityStatus = "Polished"
	StatusFinal    ActivityStatus = "Final"
)

// DateRange represents one contiguous period of an activity.
// Months are full English month names; years are four-digit strings.
// Hours is kept as a numeric string to match form input; unparseable
// values count as zero everywhere hours are summed.
type DateRange struct {
	ID          string `json:"id"`
	StartMonth  string `json:"start_date_month"`
	StartYear   string `json:"start_date_year"`
	EndMonth    string `json:"end_date_month"`
	EndYear     string `json:"end_date_year"`
	Hours       string `json:"hours"`
	Anticipated bool   `json:"is_anticipated,omitempty"`
}

// HoursValue returns the parsed hour count for the range. Unparseable and
// negative values count as zero; negatives cannot be entered through the
// forms, so a negative here is bad input and must not shrink hour pools.
func (r DateRange) HoursValue() int {
	n, err := strconv.Atoi(r.Hours)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Activity represents one Work & Activities application entry.
// The ID is assigned client-side at creation time (millisecond epoch) and may
// be replaced by a server-assigned ID after the first successful persistence.
type Activity struct {
	ID             int64          `json:"id"`
	Title          string         `json:"title"`
	Organization   string         `json:"organization"`
	ExperienceType string         `json:"experience_type"`
	City           string         `json:"city"`
	Country        string         `json:"country"`
	DateRanges     []DateRange    `json:"date_ranges"`
	ContactName    string         `json:"contact_name"`
	ContactTitle   string         `json:"contact_title"`
	ContactEmail   string         `json:"contact_email"`
	ContactPhone   string         `json:"contact_phone"`
	Status         ActivityStatus `json:"status"`
	MostMeaningful bool           `json:"is_most_meaningful"`
	Description    string         `json:"description"`
	MMEAction      string         `json:"mme_action"`
	MMEResult      string         `json:"mme_result"`
	MMEEssay       string         `json:"mme_essay"`
	Competencies   []string       `json:"competencies"`
	DueDate        string         `json:"due_date,omitempty"` // ISO date YYYY-MM-DD
}

// Filled reports whether the activity holds user content (anything past Empty)
func (a *Activity) Filled() bool {
	return a.Status != StatusEmpty
}

// TotalHours sums the hours across all date ranges of the activity
func (a *Activity) TotalHours() int {
	total := 0
	for _, r := range a.DateRanges {
		total += r.HoursValue()
	}
	return total
}

// CompletedRanges returns the non-anticipated date ranges in order
func (a *Activity) CompletedRanges() []DateRange {
	var out []DateRange
	for _, r := range a.DateRanges {
		if !r.Anticipated {
			out = append(out, r)
		}
	}
	return out
}

// AnticipatedRange returns the single anticipated range, or nil if none exists
func (a *Activity) AnticipatedRange() *DateRange {
	for i := range a.DateRanges {
		if a.DateRanges[i].Anticipated {
			return &a.DateRanges[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the activity. Slices are copied so the clone
// shares no mutable state with the original.
func (a *Activity) Clone() Activity {
	out := *a
	out.DateRanges = make([]DateRange, len(a.DateRanges))
	copy(out.DateRanges, a.DateRanges)
	out.Competencies = make([]string, len(a.Competencies))
	copy(out.Competencies, a.Competencies)
	return out
}
