package completion

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidates_EveryKindPopulated(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			candidates := Candidates(k)
			require.NotEmpty(t, candidates)

			seen := make(map[string]bool)
			for _, c := range candidates {
				assert.False(t, seen[c.Label], "duplicate label %q", c.Label)
				seen[c.Label] = true
				assert.NotEmpty(t, c.Detail)
			}
		})
	}
}

func TestCandidates_ExactlyOneDefault(t *testing.T) {
	wantDefault := map[Kind]string{
		KindDynamic:         "auto",
		KindFetchCache:      "auto",
		KindRuntime:         "nodejs",
		KindPreferredRegion: "auto",
		KindDynamicParams:   "true",
		KindExperimentalPPR: "false",
		KindRevalidate:      "false",
		KindMaxDuration:     "10",
	}

	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			var defaults []string
			for _, c := range Candidates(k) {
				if c.IsDefault() {
					defaults = append(defaults, c.Label)
				}
			}
			assert.Equal(t, []string{wantDefault[k]}, defaults)
		})
	}
}

func TestCandidates_InsertText(t *testing.T) {
	for _, k := range Kinds() {
		for _, c := range Candidates(k) {
			if k.ValueType() == ValueString {
				assert.Equal(t, strconv.Quote(c.Label), c.InsertText, "%s/%s", k, c.Label)
			} else {
				assert.Equal(t, c.Label, c.InsertText, "%s/%s", k, c.Label)
			}
		}
	}

	dynamic := Candidates(KindDynamic)
	assert.Equal(t, `"auto"`, dynamic[0].InsertText)

	maxDuration := Candidates(KindMaxDuration)
	assert.Equal(t, "60", maxDuration[3].InsertText)
}

func TestCandidates_OnlyExperimentalEdgeDeprecated(t *testing.T) {
	var deprecated []string
	for _, k := range Kinds() {
		for _, c := range Candidates(k) {
			if c.Deprecated {
				deprecated = append(deprecated, k.String()+"/"+c.Label)
			}
		}
	}
	assert.Equal(t, []string{"runtime/experimental-edge"}, deprecated)
}

func TestCandidates_UnknownKind(t *testing.T) {
	assert.Nil(t, Candidates(Kind(99)))
	assert.Nil(t, Candidates(Kind(-1)))
}
