package activity

import (
	"fmt"
	"testing"
	"time"

	"github.com/jonathan/activity-planner/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedNow pins date checks to mid-June 2026
var fixedNow = time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

func TestGetDateError_CompletedRangeInPast(t *testing.T) {
	r := types.DateRange{
		StartMonth: "January", StartYear: "2024",
		EndMonth: "March", EndYear: "2025",
	}

	assert.Empty(t, getDateErrorAt(r, fixedNow))
}

func TestGetDateError_StartInFuture(t *testing.T) {
	r := types.DateRange{StartMonth: "July", StartYear: "2026"}

	assert.Equal(t, "Start date cannot be in the future.", getDateErrorAt(r, fixedNow))
}

func TestGetDateError_EndInFuture(t *testing.T) {
	r := types.DateRange{
		StartMonth: "January", StartYear: "2026",
		EndMonth: "December", EndYear: "2026",
	}

	assert.Equal(t, "End date cannot be in the future.", getDateErrorAt(r, fixedNow))
}

func TestGetDateError_CurrentMonthIsNotFuture(t *testing.T) {
	r := types.DateRange{
		StartMonth: "June", StartYear: "2026",
		EndMonth: "June", EndYear: "2026",
	}

	assert.Empty(t, getDateErrorAt(r, fixedNow))
}

func TestGetDateError_AnticipatedStartInPast(t *testing.T) {
	r := types.DateRange{
		Anticipated: true,
		StartMonth:  "May", StartYear: "2026",
	}

	assert.Equal(t, "Anticipated start date cannot be in the past.", getDateErrorAt(r, fixedNow))
}

func TestGetDateError_AnticipatedStartThisMonth(t *testing.T) {
	r := types.DateRange{
		Anticipated: true,
		StartMonth:  "June", StartYear: "2026",
	}

	assert.Empty(t, getDateErrorAt(r, fixedNow))
}

func TestGetDateError_AnticipatedEndCap(t *testing.T) {
	within := types.DateRange{
		Anticipated: true,
		StartMonth:  "July", StartYear: "2026",
		EndMonth: "August", EndYear: "2027",
	}
	assert.Empty(t, getDateErrorAt(within, fixedNow))

	beyond := types.DateRange{
		Anticipated: true,
		StartMonth:  "July", StartYear: "2026",
		EndMonth: "September", EndYear: "2027",
	}
	assert.Equal(t, "Anticipated end date cannot be later than August 2027.", getDateErrorAt(beyond, fixedNow))
}

func TestGetDateError_BlankSidesAreSatisfied(t *testing.T) {
	cases := []types.DateRange{
		{},
		{StartMonth: "January"},
		{StartYear: "2024"},
		{StartMonth: "Janvember", StartYear: "2024"},
		{StartMonth: "January", StartYear: "soon"},
	}

	for i, r := range cases {
		assert.Empty(t, getDateErrorAt(r, fixedNow), "case %d", i)
	}
}

func validRecord() types.Activity {
	return types.Activity{
		ID:             1,
		Title:          "Emergency Department Scribe",
		ExperienceType: "Paid Employment - Medical/Clinical",
		Status:         types.StatusDraft,
		DateRanges:     []types.DateRange{{ID: "dr-1", Hours: "300"}},
		Description:    "Documented patient encounters for attending physicians.",
		Competencies:   []string{"Teamwork"},
	}
}

func TestValidateRecord_Valid(t *testing.T) {
	a := validRecord()

	assert.Empty(t, ValidateRecord(&a, types.AMCAS))
}

func TestValidateRecord_RequiresDateRange(t *testing.T) {
	a := validRecord()
	a.DateRanges = nil

	problems := ValidateRecord(&a, types.AMCAS)

	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "at least one date range")
}

func TestValidateRecord_AtMostOneAnticipatedRange(t *testing.T) {
	a := validRecord()
	a.DateRanges = []types.DateRange{
		{ID: "dr-1", Anticipated: true},
		{ID: "dr-2", Anticipated: true},
	}

	problems := ValidateRecord(&a, types.AMCAS)

	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "at most one anticipated")
}

func TestValidateRecord_DescriptionLimitPerSystem(t *testing.T) {
	long := make([]byte, 650)
	for i := range long {
		long[i] = 'a'
	}

	a := validRecord()
	a.Description = string(long)

	// 650 chars is fine for AMCAS (700) but over the AACOMAS limit (600)
	assert.Empty(t, ValidateRecord(&a, types.AMCAS))

	b := validRecord()
	b.Description = string(long)
	problems := ValidateRecord(&b, types.AACOMAS)
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "600 character limit")
}

func TestValidateRecord_EssayLimit(t *testing.T) {
	a := validRecord()
	for len(a.MMEEssay) <= MMELimit {
		a.MMEEssay += "x"
	}

	problems := ValidateRecord(&a, types.AMCAS)

	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], fmt.Sprintf("%d character limit", MMELimit))
}

func TestValidateRecord_UnknownCompetency(t *testing.T) {
	a := validRecord()
	a.Competencies = []string{"Teamwork", "Wizardry"}

	problems := ValidateRecord(&a, types.AMCAS)

	require.Len(t, problems, 1)
	assert.Equal(t, "unknown competency: Wizardry", problems[0])
}

func TestValidateRecord_NoMostMeaningfulUnderAACOMAS(t *testing.T) {
	a := validRecord()
	a.MostMeaningful = true

	assert.Empty(t, ValidateRecord(&a, types.AMCAS))

	problems := ValidateRecord(&a, types.AACOMAS)
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "AACOMAS")
}
