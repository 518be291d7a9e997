package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/NikitaCOEUR/routeconf/internal/completion"
	"github.com/NikitaCOEUR/routeconf/internal/derrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func complete(t *testing.T, params CompleteParams) (string, error) {
	t.Helper()
	var out bytes.Buffer
	params.Out = &out
	params.LogOut = &bytes.Buffer{}
	err := Complete(params)
	return out.String(), err
}

func TestComplete_LinePrefix(t *testing.T) {
	isolateConfig(t)

	out, err := complete(t, CompleteParams{LinePrefix: "export const runtime = "})
	require.NoError(t, err)

	candidates := completion.Candidates(completion.KindRuntime)
	expected := ""
	for _, c := range candidates {
		expected += c.Label + "\t" + c.Detail + "\n"
	}
	assert.Equal(t, expected, out)
}

func TestComplete_NoMatch(t *testing.T) {
	isolateConfig(t)

	for _, prefix := range []string{"", "const dynamic = ", "export const notDynamic = ", `export const dynamic = "a`} {
		out, err := complete(t, CompleteParams{LinePrefix: prefix})
		require.NoError(t, err, prefix)
		assert.Empty(t, out, prefix)
	}
}

func TestComplete_FilterAndFormat(t *testing.T) {
	isolateConfig(t)

	out, err := complete(t, CompleteParams{
		LinePrefix: "export const fetchCache = ",
		Filter:     `"only`,
		Format:     "json",
	})
	require.NoError(t, err)

	var decoded []completion.Candidate
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "only-cache", decoded[0].Label)
	assert.Equal(t, "only-no-store", decoded[1].Label)
}

func TestComplete_ConfiguredFormat(t *testing.T) {
	dir := isolateConfig(t)
	writeFile(t, dir, "routeconf/config.yml", "format: yaml\n")

	out, err := complete(t, CompleteParams{LinePrefix: "export const maxDuration = "})
	require.NoError(t, err)
	assert.Contains(t, out, "- label: \"5\"")
	assert.Contains(t, out, "insert_text: \"10\"")
}

func TestComplete_Template(t *testing.T) {
	isolateConfig(t)

	out, err := complete(t, CompleteParams{
		LinePrefix: "export const experimental_ppr = ",
		Template:   `{{ .Label }}{{ if .IsDefault }} *{{ end }}`,
		Format:     "json",
	})
	require.NoError(t, err)
	assert.Equal(t, "true\nfalse *\n", out)
}

func TestComplete_DisabledDeclaration(t *testing.T) {
	dir := isolateConfig(t)
	writeFile(t, dir, "routeconf/config.yml", "disabled: [revalidate]\n")

	out, err := complete(t, CompleteParams{LinePrefix: "export const revalidate = "})
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = complete(t, CompleteParams{LinePrefix: "export const dynamic = "})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestComplete_File(t *testing.T) {
	isolateConfig(t)
	src := writeFile(t, t.TempDir(), "app/page.tsx", "import x from 'y'\nexport const preferredRegion = \n")

	tests := []struct {
		name   string
		line   int
		column int
		want   []string
	}{
		{name: "end of line", line: 2, column: 0, want: []string{"auto", "global", "home"}},
		{name: "explicit column", line: 2, column: 32, want: []string{"auto", "global", "home"}},
		{name: "mid line", line: 2, column: 10, want: nil},
		{name: "other line", line: 1, column: 0, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := complete(t, CompleteParams{File: src, Line: tt.line, Column: tt.column, Template: "{{ .Label }}"})
			require.NoError(t, err)

			var got []string
			for _, line := range bytes.Split(bytes.TrimSpace([]byte(out)), []byte("\n")) {
				if len(line) > 0 {
					got = append(got, string(line))
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComplete_FileErrors(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	src := writeFile(t, dir, "route.ts", "export const dynamic = \n")

	_, err := complete(t, CompleteParams{File: writeFile(t, dir, "main.go", ""), Line: 1})
	require.Error(t, err)
	var verr *derrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "file", verr.Field)

	_, err = complete(t, CompleteParams{File: src, Line: 0})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "line", verr.Field)

	_, err = complete(t, CompleteParams{File: src, Line: 1, Column: -1})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "column", verr.Field)

	_, err = complete(t, CompleteParams{File: src, Line: 5})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, err.Error(), "has no line 5")

	_, err = complete(t, CompleteParams{File: dir + "/missing.ts", Line: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestComplete_FileLanguageDisabled(t *testing.T) {
	dir := isolateConfig(t)
	writeFile(t, dir, "routeconf/config.yml", "languages: [typescript]\n")
	src := writeFile(t, t.TempDir(), "page.jsx", "export const dynamic = ")

	out, err := complete(t, CompleteParams{File: src, Line: 1})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestComplete_BadFormat(t *testing.T) {
	isolateConfig(t)

	_, err := complete(t, CompleteParams{LinePrefix: "export const dynamic = ", Format: "xml"})
	var verr *derrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "format", verr.Field)
}
