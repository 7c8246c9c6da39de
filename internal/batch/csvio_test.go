package batch_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/vocaquiz/internal/batch"
)

func TestWriteDirReadDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	want := batch.SeedDataset()
	want.Words[0].Spelling = `He said "hi", twice`

	require.NoError(t, batch.WriteDir(dir, want))
	for _, name := range []string{batch.GroupsFile, batch.WordsFile, batch.GroupItemsFile, batch.WordDetailsFile} {
		assert.FileExists(t, filepath.Join(dir, name))
	}

	got, err := batch.ReadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReadDirColumnOrderIndependent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, batch.WriteDir(dir, batch.SeedDataset()))

	words := "spelling,word_id\nJoyful,1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, batch.WordsFile), []byte(words), 0o644))

	ds, err := batch.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, ds.Words, 1)
	assert.Equal(t, 1, ds.Words[0].WordID)
	assert.Equal(t, "Joyful", ds.Words[0].Spelling)
}

func TestReadDirErrors(t *testing.T) {
	t.Run("MissingFile", func(t *testing.T) {
		_, err := batch.ReadDir(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), batch.GroupsFile)
	})

	t.Run("BadInteger", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, batch.WriteDir(dir, batch.SeedDataset()))
		require.NoError(t, os.WriteFile(filepath.Join(dir, batch.WordsFile), []byte("word_id,spelling\nx,Happy\n"), 0o644))

		_, err := batch.ReadDir(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
		assert.Contains(t, err.Error(), "word_id")
	})
}
