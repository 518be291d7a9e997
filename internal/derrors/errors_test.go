package derrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigurationError(t *testing.T) {
	cause := fmt.Errorf("invalid YAML")
	err := NewConfigurationError("/path/to/config.yml", "failed to parse config", cause)

	assert.Equal(t, "CONFIG_ERROR", err.Code())
	assert.Equal(t, "/path/to/config.yml", err.Path)
	assert.Contains(t, err.Error(), "failed to parse config")
	assert.Contains(t, err.Error(), "invalid YAML")
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("languages", "unknown language", nil)

	assert.Equal(t, "VALIDATION_ERROR", err.Code())
	assert.Equal(t, "languages", err.Field)
	assert.Equal(t, "unknown language", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("dynamicc", "unknown declaration")

	assert.Equal(t, "NOT_FOUND", err.Code())
	assert.Equal(t, "dynamicc", err.Resource)
	assert.Equal(t, "unknown declaration", err.Error())
}

func TestProtocolError(t *testing.T) {
	cause := fmt.Errorf("unexpected end of JSON input")
	err := NewProtocolError(-32700, "parse error", cause)

	assert.Equal(t, "PROTOCOL_ERROR", err.Code())
	assert.Equal(t, -32700, err.RPCCode)
	assert.Equal(t, "parse error: unexpected end of JSON input", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestDocumentError(t *testing.T) {
	err := NewDocumentError("file:///app/page.tsx", "document is not open", nil)

	assert.Equal(t, "DOCUMENT_ERROR", err.Code())
	assert.Equal(t, "file:///app/page.tsx", err.URI)
	assert.Equal(t, "document is not open", err.Error())
}

func TestRouteconfErrorInterface(t *testing.T) {
	errs := []error{
		NewConfigurationError("", "a", nil),
		NewValidationError("", "b", nil),
		NewNotFoundError("", "c"),
		NewProtocolError(0, "d", nil),
		NewDocumentError("", "e", nil),
	}

	for _, err := range errs {
		var rerr RouteconfError
		assert.True(t, errors.As(err, &rerr))
		assert.NotEmpty(t, rerr.Code())
	}
}

func TestErrorsAs_ThroughWrapping(t *testing.T) {
	inner := NewNotFoundError("runtimee", "unknown declaration")
	wrapped := fmt.Errorf("show failed: %w", inner)

	var nf *NotFoundError
	assert.True(t, errors.As(wrapped, &nf))
	assert.Equal(t, "runtimee", nf.Resource)
}
