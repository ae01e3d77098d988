package resolver_test

import (
	"bytes"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hannajonsd/hookdeps/resolver"
)

func TestBuildGraph_OrderAndReferences(t *testing.T) {
	t.Parallel()

	dir := writeUnits(t, map[string]string{
		"useApp.ts":     "import { useTimer } from './useTimer'\nimport { useUnmount } from './useUnmount'\n",
		"useTimer.ts":   "import { useUnmount } from './useUnmount'\n",
		"useUnmount.ts": "export {}\n",
	})
	units := []string{"useApp", "useTimer", "useUnmount"}

	hg, err := resolver.BuildGraph(newResolver(dir), units)
	require.NoError(t, err)

	refs, err := hg.References("useApp")
	require.NoError(t, err)
	assert.Equal(t, []string{"useTimer", "useUnmount"}, refs)

	cycles, err := hg.Cycles()
	require.NoError(t, err)
	assert.Empty(t, cycles)

	order, err := hg.Order()
	require.NoError(t, err)
	require.Len(t, order, 3)
	assert.Less(t, slices.Index(order, "useUnmount"), slices.Index(order, "useTimer"))
	assert.Less(t, slices.Index(order, "useTimer"), slices.Index(order, "useApp"))
	assert.Empty(t, hg.Missing())

	var buf bytes.Buffer
	require.NoError(t, hg.WriteDOT(&buf))
	assert.Contains(t, buf.String(), "useApp")
	assert.Contains(t, buf.String(), "useTimer")
}

func TestBuildGraph_CyclesAndMissing(t *testing.T) {
	t.Parallel()

	dir := writeUnits(t, map[string]string{
		"useA.ts":    "import { useB } from './useB'\nimport { useGhost } from './useGhost'\n",
		"useB.ts":    "import { useA } from './useA'\n",
		"useSelf.ts": "import { useSelf } from './useSelf'\n",
	})

	hg, err := resolver.BuildGraph(newResolver(dir), []string{"useA", "useB", "useSelf"})
	require.NoError(t, err)

	cycles, err := hg.Cycles()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"useA", "useB"}, {"useSelf"}}, cycles)
	assert.Equal(t, []string{"useGhost"}, hg.Missing())

	_, err = hg.Order()
	require.Error(t, err)
}
