package resolver

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"
)

// HookGraph is the directed graph of internal references between hook units.
// Edges point from the importing unit to the imported one.
type HookGraph struct {
	g        graph.Graph[string, string]
	units    []string
	missing  []string
	selfRefs []string
}

// BuildGraph classifies every unit and records its internal references.
// References to units without a source file become dashed vertices.
func BuildGraph(r *Resolver, units []string) (*HookGraph, error) {
	hg := &HookGraph{
		g:     graph.New(graph.StringHash, graph.Directed()),
		units: append([]string{}, units...),
	}

	known := make(map[string]bool, len(units))
	for _, unit := range units {
		known[unit] = true
		if err := hg.g.AddVertex(unit); err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
			return nil, fmt.Errorf("add unit %s: %w", unit, err)
		}
	}

	for _, unit := range units {
		imports, err := r.Imports(unit)
		if err != nil {
			return nil, err
		}

		for _, dep := range imports.Internal {
			if dep == unit {
				hg.selfRefs = append(hg.selfRefs, unit)
				continue
			}
			if !known[dep] {
				known[dep] = true
				hg.missing = append(hg.missing, dep)
				if err := hg.g.AddVertex(dep, graph.VertexAttribute("style", "dashed")); err != nil {
					return nil, fmt.Errorf("add missing unit %s: %w", dep, err)
				}
			}
			if err := hg.g.AddEdge(unit, dep); err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
				return nil, fmt.Errorf("add reference %s -> %s: %w", unit, dep, err)
			}
		}
	}

	return hg, nil
}

// Missing returns referenced units that have no source file.
func (hg *HookGraph) Missing() []string {
	return hg.missing
}

// References returns the units name imports directly, sorted.
func (hg *HookGraph) References(name string) ([]string, error) {
	adjacency, err := hg.g.AdjacencyMap()
	if err != nil {
		return nil, err
	}

	refs := make([]string, 0, len(adjacency[name]))
	for target := range adjacency[name] {
		refs = append(refs, target)
	}
	slices.Sort(refs)
	return refs, nil
}

// Cycles returns every group of units that reference each other, each group
// sorted and the groups ordered by their first member.
func (hg *HookGraph) Cycles() ([][]string, error) {
	components, err := graph.StronglyConnectedComponents(hg.g)
	if err != nil {
		return nil, fmt.Errorf("strongly connected components: %w", err)
	}

	var cycles [][]string
	for _, component := range components {
		if len(component) > 1 {
			sorted := append([]string{}, component...)
			slices.Sort(sorted)
			cycles = append(cycles, sorted)
		}
	}
	for _, unit := range hg.selfRefs {
		cycles = append(cycles, []string{unit})
	}

	slices.SortFunc(cycles, func(a, b []string) int {
		return slices.Compare(a, b)
	})
	return cycles, nil
}

// Order returns the units with every unit listed after the units it imports.
// It fails when the graph has a cycle.
func (hg *HookGraph) Order() ([]string, error) {
	order, err := graph.StableTopologicalSort(hg.g, func(a, b string) bool { return a < b })
	if err != nil {
		return nil, fmt.Errorf("order hooks: %w", err)
	}
	slices.Reverse(order)
	return order, nil
}

// WriteDOT renders the graph in Graphviz DOT format.
func (hg *HookGraph) WriteDOT(w io.Writer) error {
	return draw.DOT(hg.g, w)
}
