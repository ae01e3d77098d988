package analyzer

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/hannajonsd/hookdeps/manifest"
	"github.com/hannajonsd/hookdeps/resolver"
	"github.com/hannajonsd/hookdeps/version_lookup"
)

// DisplayClosure prints the files and external dependencies of a closure
func DisplayClosure(w io.Writer, closure *resolver.Closure, versions *version_lookup.SimpleVersionLookup) {
	color.New(color.FgCyan, color.Bold).Fprintf(w, "%s\n", closure.Unit)

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"#", "File", "Size", "Dependencies"})

	for i, f := range closure.Files {
		deps := "-"
		if len(f.Dependencies) > 0 {
			deps = strings.Join(f.Dependencies, ", ")
		}
		tbl.AppendRow(table.Row{i + 1, f.Name, humanize.Bytes(uint64(f.Size)), deps})
	}
	tbl.AppendFooter(table.Row{"", fmt.Sprintf("Total: %d files", len(closure.Files)), "", ""})

	fmt.Fprintln(w, tbl.Render())

	if len(closure.Dependencies) == 0 {
		fmt.Fprintln(w, "No external dependencies")
		return
	}

	declared := map[string]string{}
	if versions != nil {
		declared = versions.GetAllVersions(closure.Dependencies)
	}

	fmt.Fprintln(w, "External dependencies:")
	for _, dep := range closure.Dependencies {
		version := declared[dep]

		switch {
		case version != "":
			color.New(color.FgGreen).Fprintf(w, "  %s@%s\n", dep, version)
		case versions != nil && versions.Found():
			color.New(color.FgYellow).Fprintf(w, "  %s (not in package.json)\n", dep)
		default:
			fmt.Fprintf(w, "  %s\n", dep)
		}
	}
}

// DisplayEmitResult prints a summary of a manifest run
func DisplayEmitResult(w io.Writer, result *manifest.Result) {
	color.New(color.FgGreen).Fprintf(w, "Wrote %d manifests\n", len(result.Written))

	if len(result.Failed) == 0 {
		return
	}
	color.New(color.FgRed).Fprintf(w, "%d hooks failed:\n", len(result.Failed))
	for _, line := range strings.Split(result.Err().Error(), "\n") {
		color.New(color.FgRed).Fprintf(w, "  - %s\n", line)
	}
}

// DisplayGraphSummary prints cycles, missing references and, when acyclic, the dependency order
func DisplayGraphSummary(w io.Writer, hg *resolver.HookGraph) error {
	cycles, err := hg.Cycles()
	if err != nil {
		return err
	}

	for _, missing := range hg.Missing() {
		color.New(color.FgYellow).Fprintf(w, "missing unit: %s\n", missing)
	}

	if len(cycles) > 0 {
		for _, cycle := range cycles {
			color.New(color.FgRed).Fprintf(w, "cycle: %s\n", strings.Join(cycle, " <-> "))
		}
		return nil
	}

	order, err := hg.Order()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Dependency order:")
	for i, unit := range order {
		fmt.Fprintf(w, "  %d. %s\n", i+1, unit)
	}
	return nil
}
