package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitPercent_PerfectFit(t *testing.T) {
	arch := Archetypes[0]

	assert.Equal(t, 100, FitPercent(arch.Targets, arch))
}

func TestFitPercent_OvershootDoesNotExceedTarget(t *testing.T) {
	student := Radar{Inquiry: 10, Service: 10, Teamwork: 10, Clinical: 10}

	for _, arch := range Archetypes {
		assert.Equal(t, 100, FitPercent(student, arch), arch.ID)
	}
}

func TestFitPercent_PartialFit(t *testing.T) {
	student := Radar{Inquiry: 7, Service: 5, Teamwork: 1, Clinical: 3}
	investigator, ok := ArchetypeByName("The Investigator")
	require.True(t, ok)

	// min sums: 7+5+1+3 = 16 over target total 28
	assert.Equal(t, 57, FitPercent(student, investigator))
}

func TestBestFit_PicksSmallestDeficit(t *testing.T) {
	student := Radar{Inquiry: 7, Service: 5, Teamwork: 1, Clinical: 3}

	best, deficits := BestFit(student)

	assert.Equal(t, "innovator", best.ID)
	// Innovator targets {8,4,7,5}; gaps on Inquiry, Teamwork, Clinical
	require.Len(t, deficits, 3)
	assert.Equal(t, "Inquiry", deficits[0].Dimension)
	assert.Equal(t, 1, deficits[0].Gap)
	assert.Equal(t, "Teamwork", deficits[1].Dimension)
	assert.Equal(t, 6, deficits[1].Gap)
	assert.Equal(t, "Clinical", deficits[2].Dimension)
	assert.Equal(t, 2, deficits[2].Gap)
}

func TestBestFit_TieBreaksByDeclarationOrder(t *testing.T) {
	// A maxed radar leaves zero deficit everywhere; the first archetype wins.
	best, deficits := BestFit(Radar{Inquiry: 10, Service: 10, Teamwork: 10, Clinical: 10})

	assert.Equal(t, Archetypes[0].ID, best.ID)
	assert.Empty(t, deficits)
}

func TestDeficits_FixedDimensionOrder(t *testing.T) {
	student := Radar{Inquiry: 1, Service: 1, Teamwork: 1, Clinical: 1}
	practitioner, ok := ArchetypeByName("The Practitioner")
	require.True(t, ok)

	deficits := Deficits(student, practitioner)

	require.Len(t, deficits, 4)
	dims := []string{deficits[0].Dimension, deficits[1].Dimension, deficits[2].Dimension, deficits[3].Dimension}
	assert.Equal(t, []string{"Inquiry", "Service", "Teamwork", "Clinical"}, dims)
	for _, d := range deficits {
		assert.NotEmpty(t, d.Suggestion)
	}
}

func TestArchetypeByName_Unknown(t *testing.T) {
	_, ok := ArchetypeByName("The Generalist")

	assert.False(t, ok)
}

func TestArchetypes_FiveProfiles(t *testing.T) {
	require.Len(t, Archetypes, 5)

	seen := make(map[string]bool)
	for _, arch := range Archetypes {
		assert.False(t, seen[arch.ID], "duplicate archetype ID %s", arch.ID)
		seen[arch.ID] = true
		assert.NotEmpty(t, arch.Description)
	}
}
