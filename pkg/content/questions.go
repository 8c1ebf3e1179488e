// Package content loads the static content packs the engine consumes: the
// question graph and the keyword dictionary. Content is authored out-of-band;
// malformed entries are skipped with a warning, never a failure, so bad
// content can't take down an interactive session.
package content

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/renomarket/scoping-engine/pkg/jsonutil"
	"github.com/renomarket/scoping-engine/pkg/models"
)

// questionSpec is the raw on-disk question shape. Two generations of content
// exist: the legacy shape ("text", conditions as an {all,any} object with
// {id,value} pairs) and the advanced shape ("question", conditions as an
// array of {depends_on,value} pairs plus conditionGroups). Both are accepted
// and translated into the unified models.Precondition variant here, so the
// evaluator only ever sees one representation.
type questionSpec struct {
	ID              string            `json:"id"`
	Question        string            `json:"question"`
	Text            string            `json:"text"`
	Type            string            `json:"type"`
	Options         []string          `json:"options"`
	Help            string            `json:"help"`
	Info            string            `json:"info"`
	Unit            string            `json:"unit"`
	Placeholder     string            `json:"placeholder"`
	Conditions      json.RawMessage   `json:"conditions"`
	ConditionGroups [][]conditionSpec `json:"conditionGroups"`
}

// conditionSpec accepts both dependency-key spellings.
type conditionSpec struct {
	ID        string          `json:"id"`
	DependsOn string          `json:"depends_on"`
	Value     json.RawMessage `json:"value"`
}

// legacyConditions is the {all,any} shorthand object.
type legacyConditions struct {
	All []conditionSpec `json:"all"`
	Any []conditionSpec `json:"any"`
}

// LoadGraph reads a question graph from path. JSON and YAML (.yaml/.yml)
// files are both accepted.
func LoadGraph(path string, logger *zap.Logger) (*models.Graph, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question graph %s: %w", path, err)
	}
	return ParseGraph(data, isYAMLPath(path), logger)
}

// ParseGraph parses a question graph from raw bytes.
func ParseGraph(data []byte, yamlInput bool, logger *zap.Logger) (*models.Graph, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if yamlInput {
		var err error
		if data, err = yamlToJSON(data); err != nil {
			return nil, fmt.Errorf("failed to convert question graph YAML: %w", err)
		}
	}

	var specs []questionSpec
	if err := json.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("failed to parse question graph: %w", err)
	}

	graph := &models.Graph{}
	seen := make(map[string]bool)
	for _, spec := range specs {
		q, ok := translateQuestion(spec, logger)
		if !ok {
			continue
		}
		if seen[q.ID] {
			logger.Warn("Skipping duplicate question id", zap.String("question_id", q.ID))
			continue
		}
		seen[q.ID] = true
		graph.Questions = append(graph.Questions, q)
	}
	return graph, nil
}

func translateQuestion(spec questionSpec, logger *zap.Logger) (models.Question, bool) {
	if spec.ID == "" {
		logger.Warn("Skipping question with empty id")
		return models.Question{}, false
	}

	prompt := spec.Question
	if prompt == "" {
		prompt = spec.Text
	}

	kind, ok := translateKind(spec.Type)
	if !ok {
		logger.Warn("Skipping question with unknown type",
			zap.String("question_id", spec.ID),
			zap.String("type", spec.Type))
		return models.Question{}, false
	}

	help := spec.Help
	if help == "" {
		help = spec.Info
	}

	return models.Question{
		ID:           spec.ID,
		Prompt:       prompt,
		Kind:         kind,
		Options:      spec.Options,
		Help:         help,
		Unit:         spec.Unit,
		Placeholder:  spec.Placeholder,
		Precondition: translatePrecondition(spec),
	}, true
}

func translateKind(t string) (models.QuestionKind, bool) {
	switch t {
	case "", "text":
		return models.KindShortText, true
	case "textarea":
		return models.KindLongText, true
	case "number":
		return models.KindNumeric, true
	case "select", "multiple_choice":
		return models.KindSingleChoice, true
	case "boolean":
		return models.KindBoolean, true
	default:
		return "", false
	}
}

// translatePrecondition unifies every source shape into the tagged variant:
//   - legacy {all: [...]}            -> AllOf
//   - legacy {any: [...]}            -> AnyOf of one-condition groups
//   - advanced conditions array      -> AllOf
//   - advanced conditionGroups       -> AnyOf
//   - conditions AND conditionGroups -> AnyOf with the conditions prefixed
//     onto every group, preserving the original "both must pass" semantics.
func translatePrecondition(spec questionSpec) models.Precondition {
	var base []models.Condition

	if len(spec.Conditions) > 0 {
		var advanced []conditionSpec
		if err := json.Unmarshal(spec.Conditions, &advanced); err == nil {
			base = translateConditions(advanced)
		} else {
			var legacy legacyConditions
			if err := json.Unmarshal(spec.Conditions, &legacy); err == nil {
				if len(legacy.All) > 0 {
					base = translateConditions(legacy.All)
				} else if len(legacy.Any) > 0 {
					groups := make([][]models.Condition, 0, len(legacy.Any))
					for _, c := range translateConditions(legacy.Any) {
						groups = append(groups, []models.Condition{c})
					}
					if len(groups) > 0 {
						return models.Precondition{Kind: models.PreconditionAnyOf, Any: groups}
					}
				}
			}
		}
	}

	if len(spec.ConditionGroups) > 0 {
		var groups [][]models.Condition
		for _, rawGroup := range spec.ConditionGroups {
			group := translateConditions(rawGroup)
			if len(group) == 0 {
				continue
			}
			// Prefix the base conjunction so each group carries it.
			combined := make([]models.Condition, 0, len(base)+len(group))
			combined = append(combined, base...)
			combined = append(combined, group...)
			groups = append(groups, combined)
		}
		if len(groups) > 0 {
			return models.Precondition{Kind: models.PreconditionAnyOf, Any: groups}
		}
	}

	if len(base) > 0 {
		return models.Precondition{Kind: models.PreconditionAllOf, All: base}
	}
	return models.Precondition{Kind: models.PreconditionNone}
}

func translateConditions(specs []conditionSpec) []models.Condition {
	var out []models.Condition
	for _, c := range specs {
		id := c.DependsOn
		if id == "" {
			id = c.ID
		}
		values := jsonutil.FlexibleStringSlice(c.Value)
		if id == "" || len(values) == 0 {
			continue
		}
		out = append(out, models.Condition{QuestionID: id, Values: values})
	}
	return out
}
