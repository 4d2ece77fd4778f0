package glass

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupNameVariants(t *testing.T) {
	canonical, ok := Lookup("bk7")
	require.True(t, ok)

	for _, name := range []string{"BK7", "N-BK7", "nbk7", "n_bk7", " bk7 ", "N-bk7"} {
		c, ok := Lookup(name)
		require.True(t, ok, "variant %q should resolve", name)
		require.Equal(t, canonical, c, "variant %q should hit the same model", name)
	}
}

func TestLookupAliases(t *testing.T) {
	fs, ok := Lookup("fused-silica")
	require.True(t, ok)

	for _, name := range []string{"Fused Silica", "fusedsilica", "SiO2", "UVFS", "suprasil"} {
		c, ok := Lookup(name)
		require.True(t, ok, "alias %q should resolve", name)
		require.Equal(t, fs, c)
	}

	sapphire, ok := Lookup("sapphire")
	require.True(t, ok)
	c, ok := Lookup("Al2O3")
	require.True(t, ok)
	require.Equal(t, sapphire, c)
}

func TestLookupUnknownIsNotModeled(t *testing.T) {
	for _, name := range []string{"unobtainium", "air", "", "bk", "bk75"} {
		_, ok := Lookup(name)
		require.False(t, ok, "%q must not resolve to a model", name)
		require.False(t, Known(name))
	}
}

func TestMaterialsSortedAndComplete(t *testing.T) {
	names := Materials()
	require.Len(t, names, len(models))
	require.IsIncreasing(t, names)
	require.Contains(t, names, "fused-silica")
	require.Contains(t, names, "bk7")
}
