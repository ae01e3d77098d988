package resolver

// OutputFile is one hook source file inside a dependency closure.
type OutputFile struct {
	Name         string // "useFoo.ts"
	Unit         string // "useFoo"
	Content      string // canonical retrieval URL of the source
	Dependencies []string
	Size         int64
}

// Closure is every file and external package reachable from Unit.
type Closure struct {
	Unit         string
	Files        []OutputFile
	Dependencies []string
}

// CollectDependencies flattens the distinct external dependencies of files in order.
func CollectDependencies(files []OutputFile) []string {
	seen := make(map[string]bool)
	deps := []string{}

	for _, f := range files {
		for _, dep := range f.Dependencies {
			if !seen[dep] {
				seen[dep] = true
				deps = append(deps, dep)
			}
		}
	}

	return deps
}
