package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDictionary_SplitsCompoundKeys(t *testing.T) {
	data := []byte(`{
		"hvac, air conditioning, ventilation, ac": {"Q002_HVAC": "yes"},
		"renovation, refurbishment": {"Q001_TYPE": "Renovation"}
	}`)

	dict, err := ParseDictionary(data, false, nil)
	require.NoError(t, err)
	require.Len(t, dict.Rules, 6)

	bySynonym := make(map[string]string)
	for _, r := range dict.Rules {
		bySynonym[r.Synonym] = r.SourceKey
	}
	assert.Equal(t, "hvac, air conditioning, ventilation, ac", bySynonym["air conditioning"])
	assert.Equal(t, "hvac, air conditioning, ventilation, ac", bySynonym["ac"])
	assert.Equal(t, "renovation, refurbishment", bySynonym["refurbishment"])
}

func TestParseDictionary_LongestSynonymFirst(t *testing.T) {
	data := []byte(`{
		"ac": {"Q002_HVAC": "yes"},
		"air conditioning": {"Q002_HVAC": "yes"},
		"refurbishment": {"Q001_TYPE": "Renovation"}
	}`)

	dict, err := ParseDictionary(data, false, nil)
	require.NoError(t, err)
	require.Len(t, dict.Rules, 3)
	assert.Equal(t, "air conditioning", dict.Rules[0].Synonym)
	assert.Equal(t, "refurbishment", dict.Rules[1].Synonym)
	assert.Equal(t, "ac", dict.Rules[2].Synonym)
}

func TestParseDictionary_SkipsEmptySynonyms(t *testing.T) {
	data := []byte(`{
		"boiler, , heating": {"Q_HEAT": "yes"},
		" ,  ": {"Q_NOPE": "yes"}
	}`)

	dict, err := ParseDictionary(data, false, nil)
	require.NoError(t, err)
	require.Len(t, dict.Rules, 2)
	for _, r := range dict.Rules {
		assert.NotEmpty(t, r.Synonym)
	}
}

func TestParseDictionary_SharedPrefillAndCaseFolding(t *testing.T) {
	data := []byte(`{"Renovation, REFURBISHMENT": {"Q001_TYPE": "Renovation", "Q_FLAG": true}}`)

	dict, err := ParseDictionary(data, false, nil)
	require.NoError(t, err)
	require.Len(t, dict.Rules, 2)

	for _, r := range dict.Rules {
		assert.Equal(t, "Renovation", r.Prefill["Q001_TYPE"])
		// Flexible decoding renders booleans as strings.
		assert.Equal(t, "true", r.Prefill["Q_FLAG"])
	}
	assert.Equal(t, "refurbishment", dict.Rules[0].Synonym)
	assert.Equal(t, "renovation", dict.Rules[1].Synonym)
}

func TestParseDictionary_DeterministicOrder(t *testing.T) {
	data := []byte(`{
		"tiling": {"Q_A": "1"},
		"boiler": {"Q_B": "2"},
		"piping": {"Q_C": "3"}
	}`)

	// Equal-length synonyms: ties broken by sorted compound-key order,
	// stable across loads.
	for i := 0; i < 5; i++ {
		dict, err := ParseDictionary(data, false, nil)
		require.NoError(t, err)
		require.Len(t, dict.Rules, 3)
		assert.Equal(t, "boiler", dict.Rules[0].Synonym)
		assert.Equal(t, "piping", dict.Rules[1].Synonym)
		assert.Equal(t, "tiling", dict.Rules[2].Synonym)
	}
}

func TestParseDictionary_YAML(t *testing.T) {
	data := []byte(`
"lighting, led, illumination":
  Q004_LIGHTING: "yes"
`)

	dict, err := ParseDictionary(data, true, nil)
	require.NoError(t, err)
	require.Len(t, dict.Rules, 3)
	assert.Equal(t, "illumination", dict.Rules[0].Synonym)
}

func TestKeywordRuleWordCount(t *testing.T) {
	dict, err := ParseDictionary([]byte(`{"air conditioning": {"Q": "yes"}, "ac": {"Q2": "yes"}}`), false, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, dict.Rules[0].WordCount())
	assert.Equal(t, 1, dict.Rules[1].WordCount())
}
