package completion

import (
	"regexp"
	"strings"
)

// recognizer matches the declaration header of one or more kinds.
// The first capture group holds the identifier that selects the kind.
type recognizer struct {
	pattern *regexp.Regexp
	kinds   map[string]Kind
}

// headerPattern builds `export const <name> =` anchored at the end of the prefix
func headerPattern(names ...string) *regexp.Regexp {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = regexp.QuoteMeta(name)
	}
	return regexp.MustCompile(`export[ \t]+const[ \t]+(` + strings.Join(quoted, "|") + `)[ \t]*=[ \t]*$`)
}

func newRecognizer(kinds ...Kind) recognizer {
	byName := make(map[string]Kind, len(kinds))
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		byName[k.Identifier()] = k
		names = append(names, k.Identifier())
	}
	return recognizer{pattern: headerPattern(names...), kinds: byName}
}

// recognizers are evaluated in order; the first match wins
var recognizers = []recognizer{
	newRecognizer(KindDynamic),
	newRecognizer(KindFetchCache),
	newRecognizer(KindRuntime),
	newRecognizer(KindPreferredRegion),
	newRecognizer(KindDynamicParams, KindExperimentalPPR),
	newRecognizer(KindRevalidate),
	newRecognizer(KindMaxDuration),
}

// Match reports which declaration kind the line prefix ends with
func Match(linePrefix string) (Kind, bool) {
	for _, r := range recognizers {
		m := r.pattern.FindStringSubmatch(linePrefix)
		if m == nil {
			continue
		}
		if k, ok := r.kinds[m[1]]; ok {
			return k, true
		}
	}
	return 0, false
}

// Resolve returns the candidates for the declaration the line prefix ends with.
// linePrefix is the current line from its start up to the cursor.
// A nil result means the prefix does not end with a recognised declaration header.
func Resolve(linePrefix string) []Candidate {
	k, ok := Match(linePrefix)
	if !ok {
		return nil
	}
	return Candidates(k)
}

// ResolveResult is like Resolve but also reports the matched kind
func ResolveResult(linePrefix string) (*Result, bool) {
	k, ok := Match(linePrefix)
	if !ok {
		return nil, false
	}
	return &Result{
		Kind:       k,
		Identifier: k.Identifier(),
		Candidates: Candidates(k),
	}, true
}

// Filter applies prefix filtering to candidates by label.
// Surrounding quotes typed by the user are ignored.
func Filter(candidates []Candidate, prefix string) []Candidate {
	prefix = strings.TrimLeft(prefix, `"'`)
	if prefix == "" {
		return candidates
	}

	var filtered []Candidate
	for _, c := range candidates {
		if strings.HasPrefix(c.Label, prefix) {
			filtered = append(filtered, c)
		}
	}

	return filtered
}
