// Package services contains the scoping engine's behavior: narrative
// inference, graph evaluation, the session state machine, trigger
// explanations, and summary derivation.
package services

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/renomarket/scoping-engine/pkg/models"
	"github.com/renomarket/scoping-engine/pkg/textmatch"
)

// AnswerKeyNarrative is the answer-map key the raw narrative is stored
// under. The narrative itself is always retained as an answer.
const AnswerKeyNarrative = "project_description"

// Fuzzy-pass thresholds. Narrative tokens shorter than fuzzyMinTokenLen are
// ignored outright (too many false positives); tokens of length
// fuzzyLongTokenLen or more tolerate edit distance 2, shorter ones only 1.
const (
	fuzzyMinTokenLen  = 4
	fuzzyLongTokenLen = 8
	fuzzyShortMaxDist = 1
	fuzzyLongMaxDist  = 2
)

// InferenceResult carries the answers a single Infer call produced together
// with their provenance. Keys already present in the caller's answer map are
// never included.
type InferenceResult struct {
	Answers    map[string]string
	Provenance map[string]models.Provenance
}

// InferenceEngine prefills answers by matching free-text narrative against
// the keyword dictionary using four escalating strategies: exact
// word-boundary, substring, loose substring, and fuzzy edit-distance.
type InferenceEngine struct {
	dict   *models.Dictionary
	logger *zap.Logger
}

// NewInferenceEngine creates an inference engine over the given dictionary.
func NewInferenceEngine(dict *models.Dictionary, logger *zap.Logger) *InferenceEngine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InferenceEngine{dict: dict, logger: logger}
}

// Infer matches narrative against the dictionary and returns the prefilled
// answers plus provenance. Existing answers are never overwritten
// (first-writer-wins against the session); within a single call, a synonym
// matched in one pass is excluded from later passes, but two different
// synonyms may still write the same answer key, in which case the later
// write wins. That mirrors the shipped behavior and is intentional.
//
// Calling Infer twice with the same narrative and the same existing map is
// idempotent: the second call returns the same result and merging it again
// changes nothing.
func (e *InferenceEngine) Infer(narrative string, existing map[string]string) InferenceResult {
	result := InferenceResult{
		Answers:    make(map[string]string),
		Provenance: make(map[string]models.Provenance),
	}

	trimmed := strings.TrimSpace(narrative)
	if trimmed == "" {
		return result
	}

	normText := textmatch.Normalize(narrative)
	rawLower := strings.ToLower(narrative)
	matched := make(map[string]bool) // synonym -> consumed in an earlier pass

	apply := func(rule models.KeywordRule, method models.MatchMethod, distance int) {
		matched[rule.Synonym] = true
		for key, value := range rule.Prefill {
			if _, ok := existing[key]; ok {
				continue
			}
			result.Answers[key] = value
			result.Provenance[key] = models.KeywordProvenance(rule.Synonym, method, distance)
		}
	}

	// Pass 1: exact word-boundary matches. Rules are already ordered
	// longest-synonym-first, so a phrase beats a single-word substring
	// of it.
	for _, rule := range e.dict.Rules {
		if wordBoundaryMatch(normText, rule.Synonym) {
			apply(rule, models.MethodExact, 0)
		}
	}

	// Pass 2: plain substring, single-word synonyms only. Catches tokens
	// the boundary regex misses due to tokenization quirks.
	for _, rule := range e.dict.Rules {
		if matched[rule.Synonym] || rule.WordCount() != 1 {
			continue
		}
		if strings.Contains(normText, rule.Synonym) {
			apply(rule, models.MethodSubstring, 0)
		}
	}

	// Pass 3: loose substring against both the normalized and the raw
	// lowercased text, any word count. Covers punctuation the normalizer
	// did not anticipate.
	for _, rule := range e.dict.Rules {
		if matched[rule.Synonym] {
			continue
		}
		if strings.Contains(normText, rule.Synonym) || strings.Contains(rawLower, rule.Synonym) {
			apply(rule, models.MethodLoose, 0)
		}
	}

	// Pass 4: fuzzy. Each sufficiently long narrative token is matched to
	// its single closest still-unmatched synonym, accepted only within the
	// distance budget for the token's length. Ties keep the
	// first-registered synonym.
	for _, token := range textmatch.Tokens(normText) {
		if len(token) < fuzzyMinTokenLen {
			continue
		}
		best := -1
		bestDist := 0
		for i, rule := range e.dict.Rules {
			if matched[rule.Synonym] {
				continue
			}
			d := textmatch.Distance(token, rule.Synonym)
			if best == -1 || d < bestDist {
				best = i
				bestDist = d
			}
		}
		if best == -1 {
			continue
		}
		maxDist := fuzzyShortMaxDist
		if len(token) >= fuzzyLongTokenLen {
			maxDist = fuzzyLongMaxDist
		}
		if bestDist <= maxDist {
			e.logger.Debug("Fuzzy keyword match",
				zap.String("token", token),
				zap.String("synonym", e.dict.Rules[best].Synonym),
				zap.Int("distance", bestDist))
			apply(e.dict.Rules[best], models.MethodFuzzy, bestDist)
		}
	}

	// The narrative itself is always retained as an answer.
	if _, ok := existing[AnswerKeyNarrative]; !ok {
		result.Answers[AnswerKeyNarrative] = narrative
		result.Provenance[AnswerKeyNarrative] = models.UserProvenance()
	}

	return result
}

// wordBoundaryMatch reports whether synonym occurs in text delimited by word
// boundaries. Case folding already happened upstream.
func wordBoundaryMatch(text, synonym string) bool {
	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(synonym) + `\b`)
	if err != nil {
		return false
	}
	return re.MatchString(text)
}
