package prefs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSQLStore(t *testing.T) {
	t.Parallel()

	s, err := OpenSQLStore(filepath.Join(t.TempDir(), sqliteFile))
	require.NoError(t, err)
	defer s.Close()

	exerciseStore(t, s)
}

func TestSQLStore_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "db", sqliteFile)

	s, err := OpenSQLStore(path)
	require.NoError(t, err)
	WriteBool(s, KeySaveSelection, true)
	s.Write(KeySelection, "dark")
	s.Write(KeySelection, "light")
	require.NoError(t, s.Close())

	s, err = OpenSQLStore(path)
	require.NoError(t, err)
	defer s.Close()

	require.True(t, ReadBool(s, KeySaveSelection))
	v, ok := s.Read(KeySelection)
	require.True(t, ok)
	require.Equal(t, "light", v)
}
