package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renomarket/scoping-engine/pkg/models"
)

func TestExplain_NoPrecondition(t *testing.T) {
	q := &models.Question{ID: "Q1", Precondition: models.Precondition{Kind: models.PreconditionNone}}
	assert.Nil(t, Explain(q, map[string]string{"X": "y"}, nil))
}

func TestExplain_UnsatisfiedPrecondition(t *testing.T) {
	q := &models.Question{
		ID: "Q2",
		Precondition: models.Precondition{
			Kind: models.PreconditionAllOf,
			All:  []models.Condition{{QuestionID: "Q1", Values: []string{"yes"}}},
		},
	}
	assert.Nil(t, Explain(q, map[string]string{"Q1": "no"}, nil))
	assert.Nil(t, Explain(q, nil, nil))
}

func TestExplain_NarrativeEvidence(t *testing.T) {
	q := &models.Question{
		ID: "Q2",
		Precondition: models.Precondition{
			Kind: models.PreconditionAllOf,
			All:  []models.Condition{{QuestionID: "Q1", Values: []string{"Renovation"}}},
		},
	}
	answers := map[string]string{"Q1": "Renovation"}
	provenance := map[string]models.Provenance{
		"Q1": models.KeywordProvenance("renovation", models.MethodExact, 0),
	}

	got := Explain(q, answers, provenance)
	require.NotNil(t, got)
	assert.Equal(t, models.ExplainNarrative, got.Source)
	assert.Equal(t, []string{"renovation"}, got.Evidence)
}

func TestExplain_PreviousAnswerEvidence(t *testing.T) {
	q := &models.Question{
		ID: "Q3",
		Precondition: models.Precondition{
			Kind: models.PreconditionAllOf,
			All: []models.Condition{
				{QuestionID: "Q1", Values: []string{"yes"}},
				{QuestionID: "Q2", Values: []string{"a"}},
			},
		},
	}
	answers := map[string]string{"Q1": "yes", "Q2": "a"}
	provenance := map[string]models.Provenance{
		"Q1": models.UserProvenance(),
		"Q2": models.UserProvenance(),
	}

	got := Explain(q, answers, provenance)
	require.NotNil(t, got)
	assert.Equal(t, models.ExplainPrevious, got.Source)
	assert.Equal(t, []string{"Q1", "Q2"}, got.Evidence)
}

func TestExplain_MixedProvenancePrefersNarrative(t *testing.T) {
	// One dependency inferred, one explicit: any keyword involvement makes
	// the explanation narrative-sourced.
	q := &models.Question{
		ID: "Q3",
		Precondition: models.Precondition{
			Kind: models.PreconditionAllOf,
			All: []models.Condition{
				{QuestionID: "Q1", Values: []string{"yes"}},
				{QuestionID: "Q2", Values: []string{"a"}},
			},
		},
	}
	answers := map[string]string{"Q1": "yes", "Q2": "a"}
	provenance := map[string]models.Provenance{
		"Q1": models.KeywordProvenance("boiler", models.MethodFuzzy, 1),
		"Q2": models.UserProvenance(),
	}

	got := Explain(q, answers, provenance)
	require.NotNil(t, got)
	assert.Equal(t, models.ExplainNarrative, got.Source)
	assert.Equal(t, []string{"boiler"}, got.Evidence)
}

func TestExplain_FirstSatisfiedDisjunctionBranch(t *testing.T) {
	q := &models.Question{
		ID: "Q4",
		Precondition: models.Precondition{
			Kind: models.PreconditionAnyOf,
			Any: [][]models.Condition{
				{{QuestionID: "Q1", Values: []string{"yes"}}},
				{{QuestionID: "Q2", Values: []string{"big"}}},
			},
		},
	}
	// Only the second branch holds; its dependency supplies the evidence.
	answers := map[string]string{"Q1": "no", "Q2": "big"}
	provenance := map[string]models.Provenance{
		"Q1": models.UserProvenance(),
		"Q2": models.KeywordProvenance("big job", models.MethodLoose, 0),
	}

	got := Explain(q, answers, provenance)
	require.NotNil(t, got)
	assert.Equal(t, models.ExplainNarrative, got.Source)
	assert.Equal(t, []string{"big job"}, got.Evidence)
}

func TestExplain_DistinctKeywords(t *testing.T) {
	// Two dependencies inferred from the same keyword appear once.
	q := &models.Question{
		ID: "Q3",
		Precondition: models.Precondition{
			Kind: models.PreconditionAllOf,
			All: []models.Condition{
				{QuestionID: "Q1", Values: []string{"yes"}},
				{QuestionID: "Q2", Values: []string{"yes"}},
			},
		},
	}
	answers := map[string]string{"Q1": "yes", "Q2": "yes"}
	provenance := map[string]models.Provenance{
		"Q1": models.KeywordProvenance("hvac", models.MethodExact, 0),
		"Q2": models.KeywordProvenance("hvac", models.MethodExact, 0),
	}

	got := Explain(q, answers, provenance)
	require.NotNil(t, got)
	assert.Equal(t, []string{"hvac"}, got.Evidence)
}
