package analyzer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/hannajonsd/hookdeps/config"
	"github.com/hannajonsd/hookdeps/logging"
	"github.com/hannajonsd/hookdeps/manifest"
	"github.com/hannajonsd/hookdeps/parser"
	"github.com/hannajonsd/hookdeps/resolver"
	"github.com/hannajonsd/hookdeps/sidebar"
	"github.com/hannajonsd/hookdeps/snippet"
	"github.com/hannajonsd/hookdeps/version_lookup"
)

// HookAnalyzer ties the configured extractor, resolver and writers together
// for one run over a hooks directory
type HookAnalyzer struct {
	cfg      *config.Config
	logger   *log.Logger
	resolver *resolver.Resolver
	versions *version_lookup.SimpleVersionLookup
}

// New creates an analyzer for cfg. All resolutions made through it share one cache
func New(cfg *config.Config, logger *log.Logger) (*HookAnalyzer, error) {
	logger = logging.OrDiscard(logger)

	extractor, err := parser.NewExtractor(cfg.Parser)
	if err != nil {
		return nil, err
	}

	classifier := resolver.NewClassifier(extractor, resolver.ClassifierOptions{
		FrameworkPackages: cfg.Framework.Packages,
		AliasRoots:        cfg.Framework.AliasRoots,
		HookPrefix:        cfg.HookPrefix,
	}, logger)

	r := resolver.New(classifier, resolver.Options{
		Dir:            cfg.HooksDir,
		Extension:      cfg.Extension,
		ContentBaseURL: cfg.Manifest.ContentBaseURL,
		Logger:         logger,
	})

	versions, err := loadVersions(cfg)
	if err != nil {
		return nil, err
	}
	if versions.Found() {
		logger.Debug("using package manifest", "path", versions.Path())
	}

	return &HookAnalyzer{
		cfg:      cfg,
		logger:   logger,
		resolver: r,
		versions: versions,
	}, nil
}

func loadVersions(cfg *config.Config) (*version_lookup.SimpleVersionLookup, error) {
	path := cfg.PackageJSON
	if path == "" {
		path = version_lookup.FindManifest(cfg.HooksDir)
	}
	if path == "" {
		return new(version_lookup.SimpleVersionLookup), nil
	}
	return version_lookup.Load(path)
}

// Resolver exposes the resolver backing this analyzer
func (ha *HookAnalyzer) Resolver() *resolver.Resolver {
	return ha.resolver
}

// Versions exposes the package.json lookup, which may be empty
func (ha *HookAnalyzer) Versions() *version_lookup.SimpleVersionLookup {
	return ha.versions
}

// Units lists the hook units of the configured directory
func (ha *HookAnalyzer) Units() ([]string, error) {
	return ListUnits(ha.cfg.HooksDir, ha.cfg.HookPrefix, ha.cfg.Extension, ha.logger)
}

// UnitName accepts a unit name or a file name and returns the unit name
func (ha *HookAnalyzer) UnitName(arg string) string {
	return strings.TrimSuffix(strings.TrimSpace(arg), ha.cfg.Extension)
}

// Resolve returns the dependency closure of one hook
func (ha *HookAnalyzer) Resolve(name string) (*resolver.Closure, error) {
	return ha.resolver.Resolve(ha.UnitName(name))
}

// EmitManifests writes one manifest per hook unit into the configured output directory
func (ha *HookAnalyzer) EmitManifests() (*manifest.Result, error) {
	units, err := ha.Units()
	if err != nil {
		return nil, err
	}
	ha.logger.Info("emitting manifests", "hooks", len(units), "dir", ha.cfg.HooksDir, "output", ha.cfg.Manifest.OutputDir)

	emitter, err := manifest.NewEmitter(ha.resolver, manifest.Options{
		OutputDir: ha.cfg.Manifest.OutputDir,
		Indent:    ha.cfg.Manifest.Indent,
		Versions:  ha.versions,
		Logger:    ha.logger,
	})
	if err != nil {
		return nil, err
	}

	result, err := emitter.Emit(units)
	if err != nil {
		return result, err
	}

	hits, misses := ha.resolver.Cache().Stats()
	ha.logger.Debug("resolver cache", "hits", hits, "misses", misses, "entries", ha.resolver.Cache().Len())
	return result, nil
}

// Graph builds the reference graph of every hook unit
func (ha *HookAnalyzer) Graph() (*resolver.HookGraph, error) {
	units, err := ha.Units()
	if err != nil {
		return nil, err
	}
	return resolver.BuildGraph(ha.resolver, units)
}

// Sidebar builds the documentation navigation for every hook unit
func (ha *HookAnalyzer) Sidebar() (*sidebar.Sidebar, error) {
	units, err := ha.Units()
	if err != nil {
		return nil, err
	}
	return sidebar.Build(ha.cfg.Sidebar.Title, ha.cfg.HooksDir, units, ha.cfg.Sidebar.LinkPrefix), nil
}

// Snippet returns the distributable source of one hook
func (ha *HookAnalyzer) Snippet(name string) (string, error) {
	unit := ha.UnitName(name)
	path := ha.resolver.UnitPath(unit)

	source, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &resolver.MissingUnitError{Unit: unit, Path: path, Err: err}
		}
		return "", fmt.Errorf("failed to read unit %s: %w", path, err)
	}

	return snippet.Transform(string(source), ha.cfg.Snippet.PackageName), nil
}

// InstallGroup returns the docs code group installing the packages one hook needs,
// or "" when it has no external dependencies.
func (ha *HookAnalyzer) InstallGroup(name string) (string, error) {
	closure, err := ha.Resolve(name)
	if err != nil {
		return "", err
	}

	packages := make([]string, 0, len(closure.Dependencies))
	for _, dep := range closure.Dependencies {
		if pkg := version_lookup.PackageName(dep); pkg != "" {
			packages = append(packages, pkg)
		}
	}

	return sidebar.CodeGroup(sidebar.InstallCommands(parser.DeduplicateStrings(packages))), nil
}
