package lsp

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConn_WriteRead(t *testing.T) {
	var buf bytes.Buffer
	conn := NewConn(&buf, &buf)

	require.NoError(t, conn.Write(map[string]string{"jsonrpc": "2.0", "method": "initialized"}))
	assert.True(t, strings.HasPrefix(buf.String(), "Content-Length: "))
	assert.Contains(t, buf.String(), "\r\n\r\n")

	body, err := conn.Read()
	require.NoError(t, err)
	assert.JSONEq(t, `{"jsonrpc":"2.0","method":"initialized"}`, string(body))

	_, err = conn.Read()
	assert.ErrorIs(t, err, io.EOF)
}

func TestConn_ReadHeaders(t *testing.T) {
	input := "content-length: 2\r\nContent-Type: application/vscode-jsonrpc; charset=utf-8\r\n\r\n{}" +
		"Content-Length: 4\r\n\r\nnull"
	conn := NewConn(strings.NewReader(input), io.Discard)

	body, err := conn.Read()
	require.NoError(t, err)
	assert.Equal(t, "{}", string(body))

	body, err = conn.Read()
	require.NoError(t, err)
	assert.Equal(t, "null", string(body))
}

func TestConn_ReadErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "missing length",
			input:   "Content-Type: x\r\n\r\n{}",
			wantErr: "missing Content-Length",
		},
		{
			name:    "invalid length",
			input:   "Content-Length: abc\r\n\r\n{}",
			wantErr: "invalid Content-Length",
		},
		{
			name:    "malformed header",
			input:   "garbage\r\n\r\n{}",
			wantErr: "malformed header",
		},
		{
			name:    "truncated body",
			input:   "Content-Length: 10\r\n\r\n{}",
			wantErr: "read body",
		},
		{
			name:    "truncated header",
			input:   "Content-Length: 2",
			wantErr: "read header",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := NewConn(strings.NewReader(tt.input), io.Discard)
			_, err := conn.Read()
			require.Error(t, err)
			assert.NotErrorIs(t, err, io.EOF)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
