// Package testutils holds helpers shared by termfolio's tests.
package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

// WriteFile writes content to dir/name and returns the path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// StripANSI removes terminal escape sequences so rendered frames can be
// compared as plain text.
func StripANSI(str string) string {
	return ansi.Strip(str)
}
