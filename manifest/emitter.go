package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/hannajonsd/hookdeps/logging"
	"github.com/hannajonsd/hookdeps/resolver"
	"github.com/hannajonsd/hookdeps/version_lookup"
)

// ErrOutputWrite wraps every failure to create the output directory or write a record.
var ErrOutputWrite = errors.New("manifest output write failed")

const (
	outputDirPerm  = 0o755
	outputFilePerm = 0o644
)

// Options configures an Emitter.
type Options struct {
	OutputDir string
	Indent    bool
	// Versions, when set, is used to warn about dependencies missing from package.json.
	Versions *version_lookup.SimpleVersionLookup
	Logger   *log.Logger
}

// Emitter resolves hooks and writes one record file per hook.
type Emitter struct {
	resolver  *resolver.Resolver
	validator *Validator
	opts      Options
	logger    *log.Logger
}

// Result summarises one emission run.
type Result struct {
	Written []string
	Failed  map[string]error
}

// Err joins the per-unit failures, or returns nil when every unit was written.
func (r *Result) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}

	units := make([]string, 0, len(r.Failed))
	for unit := range r.Failed {
		units = append(units, unit)
	}
	slices.Sort(units)

	errs := make([]error, 0, len(units))
	for _, unit := range units {
		errs = append(errs, fmt.Errorf("%s: %w", unit, r.Failed[unit]))
	}
	return errors.Join(errs...)
}

// NewEmitter creates an emitter writing into opts.OutputDir.
func NewEmitter(r *resolver.Resolver, opts Options) (*Emitter, error) {
	validator, err := NewValidator()
	if err != nil {
		return nil, err
	}

	return &Emitter{
		resolver:  r,
		validator: validator,
		opts:      opts,
		logger:    logging.OrDiscard(opts.Logger),
	}, nil
}

// Build resolves unit and returns its validated record.
func (e *Emitter) Build(unit string) (*Record, error) {
	closure, err := e.resolver.Resolve(unit)
	if err != nil {
		return nil, err
	}

	record := NewRecord(closure)
	if err := e.validator.Validate(record); err != nil {
		return nil, err
	}

	if e.opts.Versions != nil {
		for _, dep := range e.opts.Versions.Undeclared(record.Dependencies) {
			e.logger.Warn("dependency not declared in package.json", "hook", unit, "dependency", dep, "manifest", e.opts.Versions.Path())
		}
	}

	return record, nil
}

// Emit writes a record for every unit. A unit that fails to resolve is logged
// and recorded in the result while the others are still emitted. A failure to
// create the output directory or to write a file aborts the run; records
// written before it are kept.
func (e *Emitter) Emit(units []string) (*Result, error) {
	result := &Result{Failed: make(map[string]error)}

	if err := os.MkdirAll(e.opts.OutputDir, outputDirPerm); err != nil {
		return result, fmt.Errorf("%w: create %s: %w", ErrOutputWrite, e.opts.OutputDir, err)
	}

	for _, unit := range units {
		record, err := e.Build(unit)
		if err != nil {
			e.logger.Error("failed to resolve hook", "hook", unit, "err", err)
			result.Failed[unit] = err
			continue
		}

		path, err := e.Write(record)
		if err != nil {
			return result, err
		}

		e.logger.Debug("wrote manifest", "hook", unit, "path", path, "files", len(record.Files), "dependencies", len(record.Dependencies))
		result.Written = append(result.Written, path)
	}

	return result, nil
}

// Write serialises record to <OutputDir>/<title>.json, replacing any previous file.
func (e *Emitter) Write(record *Record) (string, error) {
	data, err := e.Encode(record)
	if err != nil {
		return "", err
	}

	path := filepath.Join(e.opts.OutputDir, record.Title+".json")
	if err := os.WriteFile(path, data, outputFilePerm); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrOutputWrite, path, err)
	}

	return path, nil
}

// Encode renders record with the emitter's indentation.
func (e *Emitter) Encode(record *Record) ([]byte, error) {
	return Encode(record, e.opts.Indent)
}

// Encode renders record as JSON terminated by a newline, without HTML escaping.
func Encode(record *Record, indent bool) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}

	if err := enc.Encode(record); err != nil {
		return nil, fmt.Errorf("encode %s: %w", record.Title, err)
	}
	return buf.Bytes(), nil
}
