package switcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdvance(t *testing.T) {
	t.Parallel()

	require.Equal(t, 2, Advance(0, 2, Previous))
	require.Equal(t, 0, Advance(2, 2, Next))
	for k := 0; k < 2; k++ {
		require.Equal(t, k+1, Advance(k, 2, Next))
	}
	require.Equal(t, 1, Advance(2, 2, Previous))

	// A single option wraps onto itself.
	require.Equal(t, 0, Advance(0, 0, Next))
	require.Equal(t, 0, Advance(0, 0, Previous))
}

func TestDirectionForKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key    string
		want   Direction
		wantOK bool
	}{
		{"left", Previous, true},
		{"up", Previous, true},
		{"h", Previous, true},
		{"k", Previous, true},
		{"right", Next, true},
		{"down", Next, true},
		{"l", Next, true},
		{"j", Next, true},
		{"enter", 0, false},
		{"x", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		dir, ok := DirectionForKey(tt.key)
		require.Equal(t, tt.wantOK, ok, tt.key)
		if ok {
			require.Equal(t, tt.want, dir, tt.key)
		}
	}
}

func TestRoving_Move(t *testing.T) {
	t.Parallel()

	r := Roving{IDs: []string{"a", "b", "c"}}

	next, ok := r.Move("c", Next)
	require.True(t, ok)
	require.Equal(t, "a", next)

	next, ok = r.Move("a", Previous)
	require.True(t, ok)
	require.Equal(t, "c", next)

	_, ok = r.Move("z", Next)
	require.False(t, ok)

	_, ok = Roving{}.Move("a", Next)
	require.False(t, ok)
}
