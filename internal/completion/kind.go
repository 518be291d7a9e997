package completion

// Kind identifies a recognised export declaration
type Kind int

// Declaration kinds in resolution priority order
const (
	KindDynamic Kind = iota
	KindFetchCache
	KindRuntime
	KindPreferredRegion
	KindDynamicParams
	KindExperimentalPPR
	KindRevalidate
	KindMaxDuration
)

// ValueType describes the literal type of a declaration's values
type ValueType string

// Value types
const (
	ValueString  ValueType = "string"
	ValueBoolean ValueType = "boolean"
	ValueNumber  ValueType = "number"
)

type kindInfo struct {
	identifier  string
	valueType   ValueType
	description string
}

var kindInfos = [...]kindInfo{
	KindDynamic:         {"dynamic", ValueString, "Rendering mode of the route segment"},
	KindFetchCache:      {"fetchCache", ValueString, "Default caching behaviour of fetch requests"},
	KindRuntime:         {"runtime", ValueString, "Runtime the route is executed in"},
	KindPreferredRegion: {"preferredRegion", ValueString, "Deployment region of the route"},
	KindDynamicParams:   {"dynamicParams", ValueBoolean, "Handling of dynamic segments missing from generateStaticParams"},
	KindExperimentalPPR: {"experimental_ppr", ValueBoolean, "Partial Prerendering for the route"},
	KindRevalidate:      {"revalidate", ValueNumber, "Default revalidation interval in seconds"},
	KindMaxDuration:     {"maxDuration", ValueNumber, "Maximum execution time in seconds"},
}

// Kinds returns every declaration kind in resolution priority order
func Kinds() []Kind {
	kinds := make([]Kind, len(kindInfos))
	for i := range kindInfos {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Valid reports whether k is a known kind
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < len(kindInfos)
}

// Identifier returns the exported constant name for the kind
func (k Kind) Identifier() string {
	if !k.Valid() {
		return ""
	}
	return kindInfos[k].identifier
}

// String implements fmt.Stringer
func (k Kind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return kindInfos[k].identifier
}

// ValueType returns the literal type of the kind's values
func (k Kind) ValueType() ValueType {
	if !k.Valid() {
		return ""
	}
	return kindInfos[k].valueType
}

// Description returns a short human-readable summary of the declaration
func (k Kind) Description() string {
	if !k.Valid() {
		return ""
	}
	return kindInfos[k].description
}

// KindByIdentifier looks up a kind by its exported constant name.
// Matching is case-sensitive.
func KindByIdentifier(identifier string) (Kind, bool) {
	for i, info := range kindInfos {
		if info.identifier == identifier {
			return Kind(i), true
		}
	}
	return 0, false
}

// Identifiers returns the identifiers of all kinds in priority order
func Identifiers() []string {
	ids := make([]string, len(kindInfos))
	for i, info := range kindInfos {
		ids[i] = info.identifier
	}
	return ids
}
