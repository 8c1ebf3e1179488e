package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/renomarket/scoping-engine/pkg/models"
)

// Well-known question ids of the shipped content pack. Summary derivation
// keys off these; unknown packs still get the generic response list.
const (
	QuestionProjectName       = "Q000_NAME"
	QuestionProjectDesc       = "Q000_DESC"
	QuestionArea              = "Q001_AREA"
	QuestionFloors            = "Q001_FLOORS"
	QuestionProjectType       = "Q001_TYPE"
	QuestionHVAC              = "Q002_HVAC"
	QuestionHVACType          = "Q003_HVAC_TYPE"
	QuestionLighting          = "Q004_LIGHTING"
	QuestionEmergencyLighting = "Q005_EMERGENCY_LIGHTING"
	QuestionExclusions        = "Q008_EXCLUSIONS"
	QuestionAssumptions       = "Q009_ASSUMPTIONS"
)

const costRangePending = "TBD"

// BuildSummary derives the structured scope summary from the current
// answers: response list in graph order, involved disciplines, scope-of-work
// lines, comma-split exclusions and assumptions, and the pricing outline.
func BuildSummary(graph *models.Graph, answers map[string]string, provenance map[string]models.Provenance) *models.ScopeSummary {
	summary := &models.ScopeSummary{
		Title:       answers[QuestionProjectName],
		Description: answers[QuestionProjectDesc],
		GeneratedAt: time.Now(),
	}
	if summary.Title == "" {
		summary.Title = "Untitled Project"
	}
	if summary.Description == "" {
		summary.Description = answers[AnswerKeyNarrative]
	}

	// Responses follow graph declaration order; the narrative answer has no
	// graph node and goes last.
	for _, q := range graph.Questions {
		answer, ok := answers[q.ID]
		if !ok {
			continue
		}
		summary.Responses = append(summary.Responses, models.ResponseLine{
			QuestionID:   q.ID,
			QuestionText: q.Prompt,
			Answer:       answer,
			Source:       provenance[q.ID].Source,
		})
	}
	if narrative, ok := answers[AnswerKeyNarrative]; ok {
		summary.Responses = append(summary.Responses, models.ResponseLine{
			QuestionID:   AnswerKeyNarrative,
			QuestionText: "Project description",
			Answer:       narrative,
			Source:       provenance[AnswerKeyNarrative].Source,
		})
	}

	hvac := answerIsYes(answers, QuestionHVAC)
	lighting := answerIsYes(answers, QuestionLighting)

	if hvac {
		summary.Disciplines = append(summary.Disciplines, "HVAC")
	}
	if lighting {
		summary.Disciplines = append(summary.Disciplines, "Electrical")
	}
	if answers[QuestionFloors] != "" || answers[QuestionArea] != "" {
		summary.Disciplines = append(summary.Disciplines, "Structural")
	}
	if len(summary.Disciplines) == 0 {
		summary.Disciplines = []string{"General"}
	}

	summary.ProjectType = answers[QuestionProjectType]
	if summary.ProjectType == "" {
		summary.ProjectType = "General"
	}

	if t := answers[QuestionProjectType]; t != "" {
		summary.ScopeOfWork = append(summary.ScopeOfWork, fmt.Sprintf("%s project", t))
	} else {
		summary.ScopeOfWork = append(summary.ScopeOfWork, "General works")
	}
	if hvac {
		if hvacType := answers[QuestionHVACType]; hvacType != "" {
			summary.ScopeOfWork = append(summary.ScopeOfWork,
				fmt.Sprintf("Installation of %s HVAC system", hvacType))
		}
	}
	if lighting {
		line := "Upgrade of lighting systems"
		if answerIsYes(answers, QuestionEmergencyLighting) {
			line += " including emergency lighting"
		}
		summary.ScopeOfWork = append(summary.ScopeOfWork, line)
	}

	summary.Exclusions = splitList(answers[QuestionExclusions])
	summary.Assumptions = splitList(answers[QuestionAssumptions])

	summary.Pricing = append(summary.Pricing, models.PricingCategory{
		Category:           "Civil/Structural",
		EstimatedCostRange: costRangePending,
	})
	if hvac {
		summary.Pricing = append(summary.Pricing, models.PricingCategory{
			Category:           "Mechanical (HVAC)",
			EstimatedCostRange: costRangePending,
		})
	}
	if lighting {
		summary.Pricing = append(summary.Pricing, models.PricingCategory{
			Category:           "Electrical",
			EstimatedCostRange: costRangePending,
		})
	}

	return summary
}

func answerIsYes(answers map[string]string, id string) bool {
	return normValue(answers[id]) == "yes"
}

// splitList splits a comma-separated free-text answer into trimmed,
// non-empty items, falling back to "None specified".
func splitList(raw string) []string {
	var items []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	if len(items) == 0 {
		return []string{"None specified"}
	}
	return items
}
