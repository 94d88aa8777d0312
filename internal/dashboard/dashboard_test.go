package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/activity-planner/internal/types"
)

func sampleRecords() []types.Activity {
	return []types.Activity{
		{
			ID:             1,
			Title:          "Emergency Department Scribe",
			Organization:   "County General Hospital",
			ExperienceType: "Paid Employment - Medical/Clinical",
			Status:         types.StatusFinal,
			MostMeaningful: true,
			DueDate:        "2026-11-01",
		},
		{
			ID:             2,
			Title:          "Benchwork on CRISPR screens",
			Organization:   "University Genetics Lab",
			ExperienceType: "Research/Lab",
			Status:         types.StatusDraft,
			DueDate:        "2026-09-15",
		},
		{
			ID:             3,
			Title:          "Food Bank Volunteer",
			Organization:   "Second Harvest",
			ExperienceType: "Community Service/Volunteer - Not Medical/Clinical",
			Status:         types.StatusPolished,
		},
		{ID: 4, Status: types.StatusEmpty, DueDate: "2026-01-01"},
	}
}

func TestFilterNoRestrictions(t *testing.T) {
	got := Filter(sampleRecords(), Filters{})
	assert.Len(t, got, 4)
}

func TestFilterByStatus(t *testing.T) {
	got := Filter(sampleRecords(), Filters{Status: types.StatusDraft})
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestFilterQueryMatchesTitleCaseInsensitive(t *testing.T) {
	got := Filter(sampleRecords(), Filters{Query: "crispr"})
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestFilterQueryMatchesOrganization(t *testing.T) {
	got := Filter(sampleRecords(), Filters{Query: "second harvest"})
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)
}

func TestFilterQueryTrimsWhitespace(t *testing.T) {
	got := Filter(sampleRecords(), Filters{Query: "  scribe  "})
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestFilterCombinesQueryAndStatus(t *testing.T) {
	got := Filter(sampleRecords(), Filters{Query: "hospital", Status: types.StatusDraft})
	assert.Empty(t, got)
}

func TestFilterPreservesSlotOrder(t *testing.T) {
	got := Filter(sampleRecords(), Filters{Query: "o"})
	require.True(t, len(got) >= 2)
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1].ID, got[i].ID)
	}
}

func TestSummarizeCountsAndScores(t *testing.T) {
	s := Summarize(sampleRecords())

	assert.Equal(t, 3, s.Filled)
	assert.Equal(t, 1, s.MostMeaningful)
	assert.NotEmpty(t, s.BestArchetype.ID)
	assert.Len(t, s.ArchetypeFits, 5)
	for id, fit := range s.ArchetypeFits {
		assert.GreaterOrEqual(t, fit, 0, "fit for %s", id)
		assert.LessOrEqual(t, fit, 100, "fit for %s", id)
	}
}

func TestSummarizeEmptySet(t *testing.T) {
	s := Summarize(nil)

	assert.Zero(t, s.Filled)
	assert.Zero(t, s.MostMeaningful)
	assert.Zero(t, s.Readiness.Score)
}

func TestCanMarkMostMeaningfulUnderCap(t *testing.T) {
	assert.True(t, CanMarkMostMeaningful(sampleRecords(), types.AMCAS))
}

func TestCanMarkMostMeaningfulAtCap(t *testing.T) {
	records := sampleRecords()
	records[1].MostMeaningful = true
	records[2].MostMeaningful = true

	assert.False(t, CanMarkMostMeaningful(records, types.AMCAS))
}

func TestCanMarkMostMeaningfulAACOMAS(t *testing.T) {
	assert.False(t, CanMarkMostMeaningful(nil, types.AACOMAS))
}

func TestUpcomingDeadlinesSortedSoonestFirst(t *testing.T) {
	got := UpcomingDeadlines(sampleRecords())

	require.Len(t, got, 2)
	assert.Equal(t, "2026-09-15", got[0].DueDate)
	assert.Equal(t, "2026-11-01", got[1].DueDate)
}

func TestUpcomingDeadlinesSkipsEmptySlots(t *testing.T) {
	got := UpcomingDeadlines(sampleRecords())
	for _, a := range got {
		assert.NotEqual(t, int64(4), a.ID)
	}
}

func TestUpcomingDeadlinesSkipsActivitiesWithoutDueDate(t *testing.T) {
	got := UpcomingDeadlines(sampleRecords())
	for _, a := range got {
		assert.NotEqual(t, int64(3), a.ID)
	}
}
