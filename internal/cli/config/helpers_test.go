package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

type discard struct{}

func (*discard) Write(p []byte) (int, error) { return len(p), nil }

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func mkdirAll(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(path, 0o755))
}
