package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/web3-freelance/internal/pkg/apperror"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 'I', 'H', 'D', 'R'}

func newStorage(t *testing.T, maxMB int64) *FileStorage {
	t.Helper()
	s, err := NewFileStorage(t.TempDir(), maxMB)
	require.NoError(t, err)
	return s
}

func TestSave_PNG(t *testing.T) {
	s := newStorage(t, 1)

	stored, err := s.Save(context.Background(), bytes.NewReader(append(pngHeader, make([]byte, 100)...)))
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^[a-f0-9]{32}\.png$`), stored.Name)
	assert.Equal(t, "image/png", stored.MIME)
	assert.Equal(t, int64(len(pngHeader)+100), stored.Size)

	path, mime, err := s.Locate(stored.Name)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
	assert.FileExists(t, path)
}

func TestSave_UniqueNames(t *testing.T) {
	s := newStorage(t, 1)

	a, err := s.Save(context.Background(), bytes.NewReader([]byte("%PDF-1.4\n")))
	require.NoError(t, err)
	b, err := s.Save(context.Background(), bytes.NewReader([]byte("%PDF-1.4\n")))
	require.NoError(t, err)

	assert.NotEqual(t, a.Name, b.Name)
	assert.True(t, strings.HasSuffix(a.Name, ".pdf"))
}

func TestSave_RejectsUnknownAndEmpty(t *testing.T) {
	s := newStorage(t, 1)

	_, err := s.Save(context.Background(), strings.NewReader("plain text"))
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = s.Save(context.Background(), bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestSave_TooLargeLeavesNoFiles(t *testing.T) {
	s := newStorage(t, 1)

	big := append(append([]byte{}, pngHeader...), make([]byte, 1024*1024)...)
	_, err := s.Save(context.Background(), bytes.NewReader(big))
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))

	entries, err := os.ReadDir(s.rootPath)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLocate_RejectsTraversal(t *testing.T) {
	s := newStorage(t, 1)
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(s.rootPath), "secret.txt"), []byte("x"), 0o600))

	for _, name := range []string{"", "../secret.txt", ".hidden", "a/b.png", "missing.png"} {
		_, _, err := s.Locate(name)
		assert.ErrorIs(t, err, apperror.ErrFileNotFound, name)
	}
}
