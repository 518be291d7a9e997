package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandidate_IsDefault(t *testing.T) {
	assert.True(t, Candidate{Label: "auto", Detail: DefaultMarker + "Cache as much as possible"}.IsDefault())
	assert.False(t, Candidate{Label: "error", Detail: "Forces static rendering"}.IsDefault())
	assert.False(t, Candidate{Label: "x", Detail: "Not the (default) one"}.IsDefault())
}
