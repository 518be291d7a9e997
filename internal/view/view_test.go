package view

import (
	"strings"
	"testing"

	"github.com/NikitaCOEUR/routeconf/internal/completion"
	"github.com/stretchr/testify/assert"
)

// TestRenderList tests that every declaration and candidate is listed
func TestRenderList(t *testing.T) {
	output := RenderList(CollectAll(nil))

	assert.Contains(t, output, "Route segment config declarations")
	for _, k := range completion.Kinds() {
		assert.Contains(t, output, "export const "+k.Identifier())
		for _, c := range completion.Candidates(k) {
			assert.Contains(t, output, c.Detail)
		}
	}
	assert.Contains(t, output, "[deprecated]")
	assert.NotContains(t, output, "✗ disabled")
}

// TestRenderList_Disabled tests that disabled declarations are flagged
func TestRenderList_Disabled(t *testing.T) {
	output := RenderList(CollectAll([]string{"fetchCache"}))

	assert.Equal(t, 1, strings.Count(output, "✗ disabled"))
}

// TestRenderSection tests the detailed view of one declaration
func TestRenderSection(t *testing.T) {
	s := Collect(completion.KindMaxDuration, nil)
	declarations := []string{"decl-5", "decl-10", "decl-30", "decl-60"}

	output := RenderSection(s, declarations)

	assert.Contains(t, output, "export const maxDuration")
	assert.Contains(t, output, "Description:")
	assert.Contains(t, output, "Value type:")
	assert.Contains(t, output, "number")
	assert.NotContains(t, output, "Disabled in configuration")

	// Declarations follow their candidate, in order
	last := -1
	for _, d := range declarations {
		idx := strings.Index(output, d)
		assert.Greater(t, idx, last, d)
		last = idx
	}
}

// TestRenderSection_Disabled tests the disabled notice
func TestRenderSection_Disabled(t *testing.T) {
	output := RenderSection(Collect(completion.KindRuntime, []string{"runtime"}), nil)

	assert.Contains(t, output, "Disabled in configuration")
	assert.Contains(t, output, "[deprecated]")
}
