package credentials

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissing(t *testing.T) {
	info, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestSaveLoadDelete(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Save(dir, "  secret-key-1234 \n"))

	st, err := os.Stat(Path(dir))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), st.Mode().Perm())

	info, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "secret-key-1234", info.APIKey)
	assert.Equal(t, "file", info.Source)
	assert.False(t, info.CreatedAt.IsZero())

	require.NoError(t, Delete(dir))
	require.NoError(t, Delete(dir))
	info, err = Load(dir)
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestSaveRejectsEmpty(t *testing.T) {
	assert.Error(t, Save(t.TempDir(), "   "))
}

func TestLoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(Path(dir), []byte("{"), 0o600))
	_, err := Load(dir)
	assert.Error(t, err)
}

func TestMask(t *testing.T) {
	assert.Equal(t, "********5678", Mask("abcdefgh5678"))
	assert.Equal(t, "***", Mask("abc"))
	assert.Equal(t, "", Mask(""))
}
