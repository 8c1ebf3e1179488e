package services

import (
	"strings"

	"github.com/renomarket/scoping-engine/pkg/models"
)

// GraphEvaluator answers eligibility queries over a loaded question graph.
type GraphEvaluator struct {
	graph *models.Graph
}

// NewGraphEvaluator creates an evaluator for the given graph.
func NewGraphEvaluator(graph *models.Graph) *GraphEvaluator {
	return &GraphEvaluator{graph: graph}
}

// IsEligible reports whether the question's precondition is satisfied by the
// current answers. A precondition referencing a question id with no answer
// (including ids absent from the graph entirely) simply never holds; that is
// never an error.
func (e *GraphEvaluator) IsEligible(q *models.Question, answers map[string]string) bool {
	p := q.Precondition
	switch p.Kind {
	case models.PreconditionAllOf:
		return conjunctionHolds(p.All, answers)
	case models.PreconditionAnyOf:
		for _, group := range p.Any {
			if conjunctionHolds(group, answers) {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// NextQuestion scans the graph in declared order and returns the first
// question that has no answer yet and is eligible, or nil when the session
// is complete.
func (e *GraphEvaluator) NextQuestion(answers map[string]string) *models.Question {
	for i := range e.graph.Questions {
		q := &e.graph.Questions[i]
		if _, answered := answers[q.ID]; answered {
			continue
		}
		if e.IsEligible(q, answers) {
			return q
		}
	}
	return nil
}

// conjunctionHolds reports whether every condition in the group matches the
// current answers.
func conjunctionHolds(group []models.Condition, answers map[string]string) bool {
	if len(group) == 0 {
		return false
	}
	for _, cond := range group {
		if !conditionHolds(cond, answers) {
			return false
		}
	}
	return true
}

// conditionHolds compares the dependency's answer against the expected value
// set, case-insensitively after trimming.
func conditionHolds(cond models.Condition, answers map[string]string) bool {
	actual, ok := answers[cond.QuestionID]
	if !ok {
		return false
	}
	folded := normValue(actual)
	for _, v := range cond.Values {
		if folded == normValue(v) {
			return true
		}
	}
	return false
}

func normValue(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
