package dashboard

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/activity-planner/internal/db"
	"github.com/jonathan/activity-planner/internal/scoring"
)

func catalogSchool(name, category string) db.MedicalSchool {
	return db.MedicalSchool{
		ID:                uuid.New(),
		SchoolName:        name,
		DegreeType:        "MD",
		ApplicationSystem: "AMCAS",
		PrimaryCategory:   category,
	}
}

func TestRecommendSchoolsRanksByFit(t *testing.T) {
	schools := []db.MedicalSchool{
		catalogSchool("Equity State", "The Advocate"),
		catalogSchool("Research U", "The Investigator"),
	}
	// A profile matching the Investigator target exactly.
	radar := scoring.Radar{Inquiry: 10, Service: 5, Teamwork: 6, Clinical: 7}

	got := RecommendSchools(schools, radar)

	require.Len(t, got, 2)
	assert.Equal(t, "Research U", got[0].School.SchoolName)
	assert.Equal(t, 100, got[0].MatchPercent)
	assert.Equal(t, "Equity State", got[1].School.SchoolName)
	assert.Equal(t, 79, got[1].MatchPercent)
}

func TestRecommendSchoolsUnknownCategoryScoresZero(t *testing.T) {
	schools := []db.MedicalSchool{
		catalogSchool("Mystery College", "The Generalist"),
	}

	got := RecommendSchools(schools, scoring.Radar{Inquiry: 10, Service: 10, Teamwork: 10, Clinical: 10})

	require.Len(t, got, 1)
	assert.Zero(t, got[0].MatchPercent)
}

func TestRecommendSchoolsStableOnTies(t *testing.T) {
	schools := []db.MedicalSchool{
		catalogSchool("Alpha Medical", "The Investigator"),
		catalogSchool("Beta Medical", "The Advocate"),
		catalogSchool("Gamma Medical", "The Leader"),
	}
	// A maxed radar satisfies every target, so every school ties at 100.
	radar := scoring.Radar{Inquiry: 10, Service: 10, Teamwork: 10, Clinical: 10}

	got := RecommendSchools(schools, radar)

	require.Len(t, got, 3)
	assert.Equal(t, "Alpha Medical", got[0].School.SchoolName)
	assert.Equal(t, "Beta Medical", got[1].School.SchoolName)
	assert.Equal(t, "Gamma Medical", got[2].School.SchoolName)
}

func TestRecommendSchoolsEmptyCatalog(t *testing.T) {
	got := RecommendSchools(nil, scoring.Radar{Inquiry: 5, Service: 5, Teamwork: 5, Clinical: 5})
	assert.Empty(t, got)
}
