package switcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrap_Redirect(t *testing.T) {
	t.Parallel()

	trap := DefaultTrap()
	seq := []string{"theme-dark", SaveSelectionID, ReadMoreID, CloseButtonID}

	target, ok := trap.Redirect(TrapStartID, seq)
	require.True(t, ok)
	require.Equal(t, CloseButtonID, target)

	target, ok = trap.Redirect(TrapEndID, seq)
	require.True(t, ok)
	require.Equal(t, "theme-dark", target)

	_, ok = trap.Redirect(ReadMoreID, seq)
	require.False(t, ok, "non-sentinel ids are not redirected")
}

func TestTrap_EmptySequence(t *testing.T) {
	t.Parallel()

	trap := DefaultTrap()
	require.NotPanics(t, func() {
		_, ok := trap.Redirect(TrapStartID, nil)
		require.False(t, ok)
		_, ok = trap.Redirect(TrapEndID, []string{})
		require.False(t, ok)
	})
}

func TestTrap_CustomSentinels(t *testing.T) {
	t.Parallel()

	trap := Trap{Start: "top", End: "bottom"}
	target, ok := trap.Redirect("bottom", []string{"x", "y"})
	require.True(t, ok)
	require.Equal(t, "x", target)

	_, ok = trap.Redirect(TrapStartID, []string{"x", "y"})
	require.False(t, ok)
}
