package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renomarket/scoping-engine/pkg/models"
)

func summaryGraph() *models.Graph {
	return &models.Graph{Questions: []models.Question{
		{ID: QuestionProjectName, Prompt: "Project name", Kind: models.KindShortText},
		{ID: QuestionProjectType, Prompt: "Project type", Kind: models.KindSingleChoice},
		{ID: QuestionHVAC, Prompt: "HVAC systems?", Kind: models.KindBoolean},
		{ID: QuestionHVACType, Prompt: "HVAC type?", Kind: models.KindSingleChoice},
		{ID: QuestionLighting, Prompt: "Lighting upgrades?", Kind: models.KindBoolean},
		{ID: QuestionEmergencyLighting, Prompt: "Emergency lighting?", Kind: models.KindBoolean},
		{ID: QuestionExclusions, Prompt: "Exclusions", Kind: models.KindShortText},
	}}
}

func TestBuildSummary_FullProject(t *testing.T) {
	answers := map[string]string{
		QuestionProjectName:       "Office refit",
		QuestionProjectType:       "Renovation",
		QuestionHVAC:              "yes",
		QuestionHVACType:          "VRF",
		QuestionLighting:          "yes",
		QuestionEmergencyLighting: "yes",
		QuestionExclusions:        "Furniture, IT/AV systems",
		AnswerKeyNarrative:        "full office renovation",
	}
	provenance := map[string]models.Provenance{
		QuestionProjectName: models.UserProvenance(),
		QuestionHVAC:        models.KeywordProvenance("hvac", models.MethodExact, 0),
		AnswerKeyNarrative:  models.UserProvenance(),
	}

	got := BuildSummary(summaryGraph(), answers, provenance)

	assert.Equal(t, "Office refit", got.Title)
	assert.Equal(t, "Renovation", got.ProjectType)
	assert.Equal(t, []string{"HVAC", "Electrical"}, got.Disciplines)
	assert.Equal(t, []string{
		"Renovation project",
		"Installation of VRF HVAC system",
		"Upgrade of lighting systems including emergency lighting",
	}, got.ScopeOfWork)
	assert.Equal(t, []string{"Furniture", "IT/AV systems"}, got.Exclusions)
	assert.Equal(t, []string{"None specified"}, got.Assumptions)

	require.Len(t, got.Pricing, 3)
	assert.Equal(t, "Civil/Structural", got.Pricing[0].Category)
	assert.Equal(t, "Mechanical (HVAC)", got.Pricing[1].Category)
	assert.Equal(t, "Electrical", got.Pricing[2].Category)
	assert.Equal(t, "TBD", got.Pricing[0].EstimatedCostRange)
}

func TestBuildSummary_ResponsesFollowGraphOrder(t *testing.T) {
	answers := map[string]string{
		QuestionLighting:    "no",
		QuestionProjectName: "Flat refresh",
		AnswerKeyNarrative:  "repaint my flat",
	}
	provenance := map[string]models.Provenance{
		QuestionLighting:    models.UserProvenance(),
		QuestionProjectName: models.UserProvenance(),
		AnswerKeyNarrative:  models.UserProvenance(),
	}

	got := BuildSummary(summaryGraph(), answers, provenance)

	require.Len(t, got.Responses, 3)
	// Graph declaration order, narrative last.
	assert.Equal(t, QuestionProjectName, got.Responses[0].QuestionID)
	assert.Equal(t, QuestionLighting, got.Responses[1].QuestionID)
	assert.Equal(t, AnswerKeyNarrative, got.Responses[2].QuestionID)
	assert.Equal(t, "Project name", got.Responses[0].QuestionText)
}

func TestBuildSummary_Defaults(t *testing.T) {
	got := BuildSummary(summaryGraph(), map[string]string{}, nil)

	assert.Equal(t, "Untitled Project", got.Title)
	assert.Equal(t, "General", got.ProjectType)
	assert.Equal(t, []string{"General"}, got.Disciplines)
	assert.Equal(t, []string{"General works"}, got.ScopeOfWork)
	assert.Equal(t, []string{"None specified"}, got.Exclusions)
	assert.Equal(t, []string{"None specified"}, got.Assumptions)
	require.Len(t, got.Pricing, 1)
	assert.Equal(t, "Civil/Structural", got.Pricing[0].Category)
}

func TestBuildSummary_StructuralFromAreaOrFloors(t *testing.T) {
	answers := map[string]string{QuestionArea: "4500"}
	got := BuildSummary(summaryGraph(), answers, nil)
	assert.Contains(t, got.Disciplines, "Structural")

	answers = map[string]string{QuestionFloors: "3"}
	got = BuildSummary(summaryGraph(), answers, nil)
	assert.Contains(t, got.Disciplines, "Structural")
}

func TestBuildSummary_HVACWithoutTypeOmitsInstallLine(t *testing.T) {
	answers := map[string]string{QuestionHVAC: "yes"}
	got := BuildSummary(summaryGraph(), answers, nil)

	assert.Equal(t, []string{"General works"}, got.ScopeOfWork)
	assert.Contains(t, got.Disciplines, "HVAC")
	require.Len(t, got.Pricing, 2)
}

func TestBuildSummary_DescriptionFallsBackToNarrative(t *testing.T) {
	answers := map[string]string{AnswerKeyNarrative: "renovating my bathroom"}
	got := BuildSummary(summaryGraph(), answers, nil)
	assert.Equal(t, "renovating my bathroom", got.Description)
}
