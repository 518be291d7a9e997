package completion

import "strconv"

// entry is a row of the static candidate table
type entry struct {
	label      string
	detail     string
	deprecated bool
}

var table = map[Kind][]entry{
	KindDynamic: {
		{label: "auto", detail: DefaultMarker + "Cache as much as possible without preventing components from opting into dynamic behavior. Provides optimal performance while maintaining flexibility."},
		{label: "force-dynamic", detail: "Forces dynamic rendering on every request. Equivalent to setting all fetch requests to no-store and revalidate: 0. Use for real-time or user-specific content."},
		{label: "force-static", detail: "Forces static rendering by making cookies(), headers(), and useSearchParams() return empty values. Can be combined with revalidate for ISR. Use when you want guaranteed static generation."},
		{label: "error", detail: "Forces static rendering but throws an error if dynamic APIs or uncached data are used. Equivalent to getStaticProps() behavior. Useful for ensuring routes remain truly static."},
	},
	KindFetchCache: {
		{label: "auto", detail: DefaultMarker + "Cache fetch requests before Dynamic APIs are used, then switch to no-store after. Provides balanced performance and freshness."},
		{label: "default-cache", detail: "Sets default cache option to force-cache for all fetch requests. Individual requests can still override. Use when you want aggressive caching by default."},
		{label: "only-cache", detail: "Ensures all fetch requests use caching by setting default to force-cache and throwing errors if any request uses no-store. Use for guaranteed cacheable routes."},
		{label: "force-cache", detail: "Forces all fetch requests to use force-cache, overriding individual cache settings. Use for maximum caching regardless of individual fetch options."},
		{label: "force-no-store", detail: "Forces all fetch requests to use no-store, overriding individual cache settings. Ensures fresh data on every request for real-time applications."},
		{label: "default-no-store", detail: "Sets default cache option to no-store for all fetch requests. Individual requests can still opt into caching with force-cache."},
		{label: "only-no-store", detail: "Ensures all fetch requests opt out of caching by setting default to no-store and throwing errors if any request uses force-cache."},
	},
	KindRuntime: {
		{label: "nodejs", detail: DefaultMarker + "Uses the full Node.js runtime with access to all Node.js APIs. Recommended for rendering applications. Best for complex server-side logic and file operations."},
		{label: "edge", detail: "Uses the lightweight Edge Runtime with faster cold starts and lower memory usage. Limited to Web APIs only. Recommended for Middleware and simple API routes."},
		{label: "experimental-edge", detail: `⚠️ DEPRECATED: Use "edge" instead. This option was deprecated in Next.js 15.0.0-RC and will be removed in future versions.`, deprecated: true},
	},
	KindPreferredRegion: {
		{label: "auto", detail: DefaultMarker + "Automatically selects optimal regions based on deployment platform. Inherits from nearest parent layout if not specified."},
		{label: "global", detail: "Deploys to all available regions globally. Use when you need the lowest latency worldwide. Support depends on deployment platform."},
		{label: "home", detail: "Deploys only to your home region. Use for region-specific compliance requirements or when global deployment is not needed."},
	},
	KindDynamicParams: toggle(
		DefaultMarker+"Dynamic segments not in generateStaticParams are generated on-demand. Uses Streaming Server Rendering. Replaces fallback: true from getStaticPaths.",
		"Dynamic segments not in generateStaticParams return 404. Replaces fallback: false from getStaticPaths. Use for strict control over accessible routes.",
	),
	KindExperimentalPPR: toggle(
		"Enables Partial Prerendering (PPR) for this route. Combines static and dynamic rendering in the same page. Requires experimental.ppr config.",
		DefaultMarker+"Disables Partial Prerendering (PPR) for this route. Uses standard rendering behavior instead of experimental PPR features.",
	),
	KindRevalidate: {
		{label: "false", detail: DefaultMarker + "Cache indefinitely until manually revalidated. Equivalent to revalidate: Infinity. Individual fetch requests can still override with their own revalidate values."},
		{label: "0", detail: "Always dynamically render even without Dynamic APIs. Changes default fetch cache to no-store but allows individual requests to opt into force-cache."},
		{label: "60", detail: "Revalidate every 60 seconds. Sets default revalidation frequency for the route. Individual fetch requests can use lower values to increase frequency."},
		{label: "3600", detail: "Revalidate every hour (3600 seconds). Good for content that updates daily but benefits from caching. Must be statically analyzable."},
	},
	KindMaxDuration: {
		{label: "5", detail: "5 seconds maximum execution time. Good for simple API routes and quick operations. Compatible with most deployment platforms including Hobby plans."},
		{label: "10", detail: DefaultMarker + "10 seconds maximum execution time. Suitable for moderate data processing and external API calls. Check deployment platform limits."},
		{label: "30", detail: "30 seconds maximum execution time. Use for complex data processing and file operations. May require higher-tier deployment plans."},
		{label: "60", detail: "60 seconds maximum execution time. For heavy operations like report generation. Requires Next.js 13.4.10+ and Pro plan or higher on most platforms."},
	},
}

// toggle builds the true/false rows shared by boolean declarations
func toggle(trueDetail, falseDetail string) []entry {
	return []entry{
		{label: "true", detail: trueDetail},
		{label: "false", detail: falseDetail},
	}
}

// Candidates returns a copy of the candidate list for a kind in presentation order.
// Unknown kinds yield nil.
func Candidates(k Kind) []Candidate {
	rows, ok := table[k]
	if !ok {
		return nil
	}

	candidates := make([]Candidate, 0, len(rows))
	for _, row := range rows {
		candidates = append(candidates, Candidate{
			Label:      row.label,
			Detail:     row.detail,
			InsertText: insertText(k.ValueType(), row.label),
			Deprecated: row.deprecated,
		})
	}
	return candidates
}

// insertText quotes string values; booleans and numbers are inserted verbatim
func insertText(vt ValueType, label string) string {
	if vt == ValueString {
		return strconv.Quote(label)
	}
	return label
}
