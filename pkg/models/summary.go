package models

import "time"

// ResponseLine is one answered question in the summary, in graph order.
type ResponseLine struct {
	QuestionID   string           `json:"question_id"`
	QuestionText string           `json:"question_text"`
	Answer       string           `json:"answer"`
	Source       ProvenanceSource `json:"source"`
}

// PricingCategory is one line of the pricing outline. Estimated ranges are
// filled in downstream by the marketplace; the engine only derives the
// category set.
type PricingCategory struct {
	Category           string `json:"category"`
	EstimatedCostRange string `json:"estimated_cost_range"`
}

// ScopeSummary is the structured end-of-session output handed to the UI
// collaborator for rendering, export, or email.
type ScopeSummary struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	ProjectType string            `json:"project_type"`
	Responses   []ResponseLine    `json:"responses"`
	Disciplines []string          `json:"disciplines"`
	ScopeOfWork []string          `json:"scope_of_work"`
	Exclusions  []string          `json:"exclusions"`
	Assumptions []string          `json:"assumptions"`
	Pricing     []PricingCategory `json:"pricing_outline"`
	GeneratedAt time.Time         `json:"generated_at"`
}
