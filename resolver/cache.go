package resolver

// cacheKey identifies a unit as seen by one resolver configuration. Profile
// carries everything besides the directory that changes how a unit resolves:
// extension, content base URL and classifier options.
type cacheKey struct {
	Unit    string
	Dir     string
	Profile string
}

// unitEntry is a unit read and classified once.
type unitEntry struct {
	imports Classification
	size    int64
}

// Cache memoizes classified units and finished closures for the lifetime of
// one run. Entries are never evicted. A Cache may be shared by resolvers with
// different options; their entries do not mix. It is not safe for concurrent use.
type Cache struct {
	closures map[cacheKey][]OutputFile
	units    map[cacheKey]unitEntry
	hits     int
	misses   int
	reads    int
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{
		closures: make(map[cacheKey][]OutputFile),
		units:    make(map[cacheKey]unitEntry),
	}
}

func (c *Cache) getClosure(key cacheKey) ([]OutputFile, bool) {
	files, ok := c.closures[key]
	if ok {
		c.hits++
		return cloneFiles(files), true
	}
	c.misses++
	return nil, false
}

func (c *Cache) putClosure(key cacheKey, files []OutputFile) {
	c.closures[key] = cloneFiles(files)
}

func (c *Cache) getUnit(key cacheKey) (unitEntry, bool) {
	entry, ok := c.units[key]
	return entry, ok
}

func (c *Cache) putUnit(key cacheKey, entry unitEntry) {
	c.reads++
	c.units[key] = entry
}

// Len returns the number of cached closures.
func (c *Cache) Len() int {
	return len(c.closures)
}

// Stats returns the closure hit and miss counters.
func (c *Cache) Stats() (hits, misses int) {
	return c.hits, c.misses
}

// Reads returns how many unit sources were read and classified.
func (c *Cache) Reads() int {
	return c.reads
}

func cloneFiles(files []OutputFile) []OutputFile {
	out := make([]OutputFile, len(files))
	for i, f := range files {
		out[i] = f
		out[i].Dependencies = cloneStrings(f.Dependencies)
	}
	return out
}

func cloneClassification(c Classification) Classification {
	return Classification{
		Internal: cloneStrings(c.Internal),
		External: cloneStrings(c.External),
		Dropped:  cloneStrings(c.Dropped),
	}
}

func cloneStrings(s []string) []string {
	return append([]string{}, s...)
}
