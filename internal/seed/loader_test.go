package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("skips lines with the wrong field count", func(t *testing.T) {
		input := "Alice, 3\n\nBob,8,extra\njust a name\n  Cara ,2\n"
		entries, err := Parse(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, []Entry{
			{Name: "Alice", Tickets: 3},
			{Name: "Cara", Tickets: 2},
		}, entries)
	})

	t.Run("non numeric count aborts the load", func(t *testing.T) {
		input := "Alice,3\nBob,eight\nCara,2\n"
		entries, err := Parse(strings.NewReader(input))
		require.Error(t, err)
		assert.Nil(t, entries)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("empty input", func(t *testing.T) {
		entries, err := Parse(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "customer.txt")
	require.NoError(t, os.WriteFile(path, []byte("Dana,6\nEli,1\n"), 0o600))

	entries, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	_, err = LoadFile(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}
