package content

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/renomarket/scoping-engine/pkg/jsonutil"
	"github.com/renomarket/scoping-engine/pkg/models"
)

// LoadDictionary reads a keyword dictionary from path. JSON and YAML files
// are both accepted. The on-disk shape is a mapping from a compound key (one
// or more comma-separated synonyms) to a prefill fragment:
//
//	{"renovation, refurbishment": {"Q001_TYPE": "Renovation"}}
func LoadDictionary(path string, logger *zap.Logger) (*models.Dictionary, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keyword dictionary %s: %w", path, err)
	}
	return ParseDictionary(data, isYAMLPath(path), logger)
}

// ParseDictionary parses a keyword dictionary from raw bytes.
func ParseDictionary(data []byte, yamlInput bool, logger *zap.Logger) (*models.Dictionary, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if yamlInput {
		var err error
		if data, err = yamlToJSON(data); err != nil {
			return nil, fmt.Errorf("failed to convert keyword dictionary YAML: %w", err)
		}
	}

	var raw map[string]map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse keyword dictionary: %w", err)
	}

	// JSON object order is not preserved, so fix registration order by
	// sorting the compound keys. Matching order itself is longest-synonym
	// first; registration order only breaks ties.
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	dict := &models.Dictionary{}
	seen := make(map[string]bool)
	for _, key := range keys {
		prefill := make(map[string]string, len(raw[key]))
		for qid, val := range raw[key] {
			if qid == "" {
				continue
			}
			prefill[qid] = jsonutil.FlexibleStringValue(val)
		}
		if len(prefill) == 0 {
			logger.Warn("Skipping dictionary entry with empty prefill", zap.String("key", key))
			continue
		}

		for _, part := range strings.Split(key, ",") {
			synonym := strings.ToLower(strings.TrimSpace(part))
			if synonym == "" {
				logger.Warn("Skipping empty synonym", zap.String("key", key))
				continue
			}
			if seen[synonym] {
				logger.Warn("Skipping duplicate synonym",
					zap.String("synonym", synonym),
					zap.String("key", key))
				continue
			}
			seen[synonym] = true
			dict.Rules = append(dict.Rules, models.KeywordRule{
				Synonym:   synonym,
				SourceKey: key,
				Prefill:   prefill,
			})
		}
	}

	// Longest synonym first so a multi-word phrase beats a single-word
	// substring of it. Stable: ties keep registration order.
	sort.SliceStable(dict.Rules, func(i, j int) bool {
		return len(dict.Rules[i].Synonym) > len(dict.Rules[j].Synonym)
	})

	return dict, nil
}
