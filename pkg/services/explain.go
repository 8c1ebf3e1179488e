package services

import (
	"github.com/renomarket/scoping-engine/pkg/models"
)

// Explain justifies why a question is currently being asked. For the
// question's conjunction (or the first satisfied disjunction branch): if
// every referenced dependency has an answer and any of them was set by a
// narrative keyword, the explanation is narrative-sourced with the distinct
// keywords as evidence; if all were explicit user answers, it is
// previous-answer-sourced with the dependency ids as evidence. Returns nil
// when the question has no precondition or no branch is satisfied (which
// normally cannot happen for an eligible question).
func Explain(q *models.Question, answers map[string]string, provenance map[string]models.Provenance) *models.TriggerExplanation {
	p := q.Precondition

	var group []models.Condition
	switch p.Kind {
	case models.PreconditionAllOf:
		if !conjunctionHolds(p.All, answers) {
			return nil
		}
		group = p.All
	case models.PreconditionAnyOf:
		for _, g := range p.Any {
			if conjunctionHolds(g, answers) {
				group = g
				break
			}
		}
		if group == nil {
			return nil
		}
	default:
		return nil
	}

	var keywords []string
	var depIDs []string
	seenKeyword := make(map[string]bool)
	seenDep := make(map[string]bool)
	for _, cond := range group {
		if !seenDep[cond.QuestionID] {
			seenDep[cond.QuestionID] = true
			depIDs = append(depIDs, cond.QuestionID)
		}
		prov, ok := provenance[cond.QuestionID]
		if !ok {
			continue
		}
		if prov.Source == models.SourceKeyword && !seenKeyword[prov.Keyword] {
			seenKeyword[prov.Keyword] = true
			keywords = append(keywords, prov.Keyword)
		}
	}

	if len(keywords) > 0 {
		return &models.TriggerExplanation{
			Source:   models.ExplainNarrative,
			Evidence: keywords,
		}
	}
	return &models.TriggerExplanation{
		Source:   models.ExplainPrevious,
		Evidence: depIDs,
	}
}
