package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsIsCaseInsensitive(t *testing.T) {
	dict := New([]string{"cat", "Dog", "HOUSE"})

	assert.True(t, dict.Contains("cat"))
	assert.True(t, dict.Contains("CAT"))
	assert.True(t, dict.Contains("dog"))
	assert.True(t, dict.Contains("House"))
	assert.False(t, dict.Contains("mouse"))
	assert.False(t, dict.Contains(""))
}

func TestLoadSkipsBlanksAndComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "# test word list\ncat\n\ndog\n  \nhouse\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	dict, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, dict.Len())
	assert.True(t, dict.Contains("cat"))
	assert.True(t, dict.Contains("dog"))
	assert.True(t, dict.Contains("house"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
