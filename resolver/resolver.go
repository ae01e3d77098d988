package resolver

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/hannajonsd/hookdeps/logging"
)

// DefaultExtension is the file extension of hook source units.
const DefaultExtension = ".ts"

// Options configures a Resolver.
type Options struct {
	Dir            string
	Extension      string
	ContentBaseURL string
	// Cache may be shared between resolvers of the same run. A fresh cache
	// is created when nil.
	Cache  *Cache
	Logger *log.Logger
}

// Resolver builds dependency closures of hook units in one directory.
// It is sequential; a Resolver must not be used from several goroutines.
type Resolver struct {
	classifier *Classifier
	dir        string
	ext        string
	baseURL    string
	profile    string
	cache      *Cache
	logger     *log.Logger
}

// New creates a resolver for the units in opts.Dir.
func New(classifier *Classifier, opts Options) *Resolver {
	if opts.Extension == "" {
		opts.Extension = DefaultExtension
	}
	if opts.Cache == nil {
		opts.Cache = NewCache()
	}
	if classifier == nil {
		classifier = NewClassifier(nil, ClassifierOptions{}, opts.Logger)
	}

	return &Resolver{
		classifier: classifier,
		dir:        opts.Dir,
		ext:        opts.Extension,
		baseURL:    opts.ContentBaseURL,
		profile:    strings.Join([]string{opts.Extension, opts.ContentBaseURL, classifier.Signature()}, "\x00"),
		cache:      opts.Cache,
		logger:     logging.OrDiscard(opts.Logger),
	}
}

// Dir returns the directory the resolver reads units from.
func (r *Resolver) Dir() string {
	return r.dir
}

// Cache returns the cache backing this resolver.
func (r *Resolver) Cache() *Cache {
	return r.cache
}

// UnitPath returns the source path of the named unit.
func (r *Resolver) UnitPath(name string) string {
	return filepath.Join(r.dir, name+r.ext)
}

// ContentURL returns the reference string recorded as a file's content.
func (r *Resolver) ContentURL(name string) string {
	return r.baseURL + name + r.ext
}

// Resolve returns the dependency closure of the named unit: the unit itself
// followed by every unit reachable through internal references, each once,
// in depth-first order.
func (r *Resolver) Resolve(name string) (*Closure, error) {
	key := r.key(name)

	files, ok := r.cache.getClosure(key)
	if ok {
		r.logger.Debug("cache hit", "unit", name)
	} else {
		files = []OutputFile{}
		if err := r.collect(name, make(map[string]bool), &files); err != nil {
			return nil, err
		}
		r.cache.putClosure(key, files)
	}

	return &Closure{
		Unit:         name,
		Files:        files,
		Dependencies: CollectDependencies(files),
	}, nil
}

// Imports returns the classified imports of a single unit without following references.
func (r *Resolver) Imports(name string) (Classification, error) {
	entry, err := r.unit(name)
	if err != nil {
		return Classification{}, err
	}
	return cloneClassification(entry.imports), nil
}

// collect appends name and then, depth first, every unit it references.
// A unit already in seen is never expanded again, which also ends cycles,
// so a closure costs one visit per unit and reference.
func (r *Resolver) collect(name string, seen map[string]bool, files *[]OutputFile) error {
	seen[name] = true

	entry, err := r.unit(name)
	if err != nil {
		return err
	}

	*files = append(*files, OutputFile{
		Name:         name + r.ext,
		Unit:         name,
		Content:      r.ContentURL(name),
		Dependencies: cloneStrings(entry.imports.External),
		Size:         entry.size,
	})

	for _, dep := range entry.imports.Internal {
		if seen[dep] {
			r.logger.Debug("skipping visited reference", "unit", name, "ref", dep)
			continue
		}
		if err := r.collect(dep, seen, files); err != nil {
			return err
		}
	}

	return nil
}

// unit reads and classifies name, at most once per cache.
func (r *Resolver) unit(name string) (unitEntry, error) {
	key := r.key(name)
	if entry, ok := r.cache.getUnit(key); ok {
		return entry, nil
	}

	source, size, err := r.readUnit(name)
	if err != nil {
		return unitEntry{}, err
	}

	imports, err := r.classifier.Classify(source)
	if err != nil {
		return unitEntry{}, fmt.Errorf("classify %s: %w", name, err)
	}

	entry := unitEntry{imports: imports, size: size}
	r.cache.putUnit(key, entry)
	return entry, nil
}

func (r *Resolver) key(name string) cacheKey {
	return cacheKey{Unit: name, Dir: r.dir, Profile: r.profile}
}

func (r *Resolver) readUnit(name string) ([]byte, int64, error) {
	path := r.UnitPath(name)

	source, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, &MissingUnitError{Unit: name, Path: path, Err: err}
		}
		return nil, 0, fmt.Errorf("failed to read unit %s: %w", path, err)
	}

	return source, int64(len(source)), nil
}
