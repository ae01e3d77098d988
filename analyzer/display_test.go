package analyzer_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hannajonsd/hookdeps/analyzer"
	"github.com/hannajonsd/hookdeps/manifest"
	"github.com/hannajonsd/hookdeps/resolver"
	"github.com/hannajonsd/hookdeps/version_lookup"
)

func init() {
	color.NoColor = true
}

func TestDisplayClosure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pkg := filepath.Join(dir, "package.json")
	require.NoError(t, os.WriteFile(pkg, []byte(`{"dependencies":{"date-fns":"^3.6.0"}}`), 0o600))
	versions, err := version_lookup.Load(pkg)
	require.NoError(t, err)

	closure := &resolver.Closure{
		Unit: "useTime",
		Files: []resolver.OutputFile{
			{Name: "useTime.ts", Unit: "useTime", Dependencies: []string{"date-fns", "query-string"}, Size: 2048},
			{Name: "useInterval.ts", Unit: "useInterval", Size: 12},
		},
		Dependencies: []string{"date-fns", "query-string"},
	}

	var out bytes.Buffer
	analyzer.DisplayClosure(&out, closure, versions)

	text := out.String()
	assert.Contains(t, text, "useTime\n")
	assert.Contains(t, text, "useInterval.ts")
	assert.Contains(t, text, "2.0 kB")
	assert.Contains(t, text, "12 B")
	assert.Contains(t, text, "date-fns, query-string")
	assert.Contains(t, text, "Total: 2 files")
	assert.Contains(t, text, "  date-fns@^3.6.0\n")
	assert.Contains(t, text, "  query-string (not in package.json)\n")
}

func TestDisplayClosure_NoDependencies(t *testing.T) {
	t.Parallel()

	closure := &resolver.Closure{
		Unit:  "useUnmount",
		Files: []resolver.OutputFile{{Name: "useUnmount.ts", Unit: "useUnmount"}},
	}

	var out bytes.Buffer
	analyzer.DisplayClosure(&out, closure, nil)
	assert.Contains(t, out.String(), "No external dependencies")
}

func TestDisplayEmitResult(t *testing.T) {
	t.Parallel()

	result := &manifest.Result{
		Written: []string{"out/useA.json", "out/useB.json"},
		Failed: map[string]error{
			"useC": errors.New("missing unit useGone"),
		},
	}

	var out bytes.Buffer
	analyzer.DisplayEmitResult(&out, result)

	assert.Contains(t, out.String(), "Wrote 2 manifests")
	assert.Contains(t, out.String(), "1 hooks failed")
	assert.Contains(t, out.String(), "useGone")
}

func TestDisplayGraphSummary(t *testing.T) {
	t.Parallel()

	ha, _ := newAnalyzer(t, fixtureConfig(t))
	hg, err := ha.Graph()
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, analyzer.DisplayGraphSummary(&out, hg))

	assert.Contains(t, out.String(), "Dependency order:")
	assert.Contains(t, out.String(), "useEventListener")
	assert.NotContains(t, out.String(), "cycle:")
}
