package prefs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mark3labs/themeswitch/internal/config"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		stored      *string
		wantValue   bool
		wantPresent bool
	}{
		{name: "absent", stored: nil, wantValue: false, wantPresent: false},
		{name: "true", stored: ptr("true"), wantValue: true, wantPresent: true},
		{name: "false", stored: ptr("false"), wantValue: false, wantPresent: true},
		{name: "malformed", stored: ptr("yes please"), wantValue: false, wantPresent: true},
		{name: "uppercase", stored: ptr("TRUE"), wantValue: false, wantPresent: true},
		{name: "empty", stored: ptr(""), wantValue: false, wantPresent: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := NewMemoryStore()
			if tt.stored != nil {
				s.Write(KeySaveSelection, *tt.stored)
			}

			value, present := Lookup(s, KeySaveSelection)
			require.Equal(t, tt.wantValue, value)
			require.Equal(t, tt.wantPresent, present)
			require.Equal(t, tt.wantValue, ReadBool(s, KeySaveSelection))
		})
	}
}

func TestWriteBool(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()

	WriteBool(s, KeySaveSelection, true)
	raw, ok := s.Read(KeySaveSelection)
	require.True(t, ok)
	require.Equal(t, "true", raw)

	WriteBool(s, KeySaveSelection, false)
	raw, ok = s.Read(KeySaveSelection)
	require.True(t, ok)
	require.Equal(t, "false", raw)
}

func TestOpen(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	s, err := Open(&config.Config{Store: config.StoreMemory}, nil)
	require.NoError(t, err)
	require.IsType(t, &MemoryStore{}, s)

	s, err = Open(&config.Config{Store: config.StoreFile, DataDir: dir}, nil)
	require.NoError(t, err)
	require.IsType(t, &FileStore{}, s)

	s, err = Open(&config.Config{Store: config.StoreSQLite, DataDir: dir}, nil)
	require.NoError(t, err)
	require.IsType(t, &SQLStore{}, s)
	require.NoError(t, s.(*SQLStore).Close())

	_, err = Open(&config.Config{Store: config.StoreNATS}, nil)
	require.Error(t, err)

	_, err = Open(&config.Config{Store: "etcd"}, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown store backend")
}

// exerciseStore checks the behaviour every backend shares.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()

	_, ok := s.Read(KeySelection)
	require.False(t, ok, "fresh store should be empty")

	s.Write(KeySelection, "dark")
	v, ok := s.Read(KeySelection)
	require.True(t, ok)
	require.Equal(t, "dark", v)

	s.Write(KeySelection, "🦕")
	v, ok = s.Read(KeySelection)
	require.True(t, ok)
	require.Equal(t, "🦕", v)

	s.Delete(KeySelection)
	_, ok = s.Read(KeySelection)
	require.False(t, ok)

	// Deleting an absent key is a no-op.
	s.Delete(KeySelection)
	_, ok = s.Read(KeySelection)
	require.False(t, ok)
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	exerciseStore(t, s)

	s.Write(KeySaveSelection, "true")
	snap := s.Snapshot()
	snap[KeySaveSelection] = "false"

	v, _ := s.Read(KeySaveSelection)
	require.Equal(t, "true", v, "snapshot must be a copy")
}

func ptr(s string) *string { return &s }
