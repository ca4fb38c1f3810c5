// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package loaden

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/z5labs/loaden/internal/try"
)

// Reserved top level keys.
const (
	includeKey = "loaden_include"
	envKey     = "env"
)

type options struct {
	required []string
	env      Environ
	log      *slog.Logger
	parsers  map[string]Parser
}

// Option configures how [Load] behaves.
type Option func(*options)

// Required declares dot-separated key paths, e.g. "database.host", which
// must be present in the fully merged document. Validation runs once,
// after all includes are resolved. Declaring no keys disables validation.
func Required(keys ...string) Option {
	return func(o *options) {
		o.required = keys
	}
}

// Environment sets the process environment capability used for seeding
// variables from the "env" section. Defaults to [OS].
func Environment(env Environ) Option {
	return func(o *options) {
		o.env = env
	}
}

// LogHandler sets the [slog.Handler] used for debug logging of include
// resolution and environment seeding. Logging is discarded by default.
func LogHandler(h slog.Handler) Option {
	return func(o *options) {
		o.log = slog.New(h)
	}
}

// ParserFor registers a [Parser] for files with the given extension,
// e.g. ".yaml". It overrides any previously registered parser for that
// extension. Files whose extension has no registered parser are parsed
// as YAML.
func ParserFor(ext string, p Parser) Option {
	return func(o *options) {
		o.parsers[strings.ToLower(ext)] = p
	}
}

// NotFoundError occurs when the requested config file does not exist.
type NotFoundError struct {
	Path string
}

// Error implements the error interface.
func (e NotFoundError) Error() string {
	return fmt.Sprintf("config file not found: %s (create a config.yaml or pass an explicit path)", e.Path)
}

// CircularIncludeError occurs when a config file appears in its own
// include ancestor chain.
type CircularIncludeError struct {
	// Chain holds the absolute paths of the include chain in traversal
	// order, ending with the path that reappeared.
	Chain []string
}

// Error implements the error interface.
func (e CircularIncludeError) Error() string {
	return fmt.Sprintf("circular include detected: %s", strings.Join(e.Chain, " -> "))
}

// InvalidIncludeError occurs when the value of the include directive is
// neither a string nor a sequence of strings.
type InvalidIncludeError struct {
	Path  string
	Value any
}

// Error implements the error interface.
func (e InvalidIncludeError) Error() string {
	return fmt.Sprintf("invalid %s value in %s: expected a path or sequence of paths, got %T", includeKey, e.Path, e.Value)
}

// Load reads the config file at path, resolves its includes depth-first
// and returns the merged [Document]. The reserved "loaden_include" key
// never appears in the result. At the root of the load, and only there,
// the "env" section seeds process environment variables and any keys
// declared via [Required] are validated against the merged document.
//
// Loads are synchronous and perform no internal recovery: the first
// failing file aborts the whole include tree.
func Load(path string, opts ...Option) (Document, error) {
	o := &options{
		env: OS(),
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
		parsers: map[string]Parser{
			".yaml": YamlParser{},
			".yml":  YamlParser{},
			".json": JsonParser{},
			".toml": TomlParser{},
		},
	}
	for _, opt := range opts {
		opt(o)
	}

	doc, err := load(o, path, nil)
	if err != nil {
		return nil, err
	}

	err = seedEnv(o, path, doc)
	if err != nil {
		return nil, err
	}

	if len(o.required) > 0 {
		err = validateRequired(doc, o.required, path)
		if err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// load is one node of the depth-first walk over the include graph.
// ancestors holds the absolute paths of the chain of files currently
// being loaded, root first. Each recursive call extends a copy, so
// sibling includes never observe each other's chain and diamond
// dependencies remain distinguishable from true cycles.
func load(o *options, path string, ancestors []string) (Document, error) {
	_, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NotFoundError{Path: path}
		}
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if slices.Contains(ancestors, abs) {
		return nil, CircularIncludeError{Chain: append(slices.Clone(ancestors), abs)}
	}
	chain := append(slices.Clone(ancestors), abs)

	o.log.Debug("loading config file", slog.String("path", abs))

	m, err := parseFile(o, path)
	if err != nil {
		return nil, err
	}

	doc := Document(m)
	inc, ok := m[includeKey]
	if !ok {
		return doc, nil
	}
	delete(m, includeKey)

	paths, err := includePaths(path, inc)
	if err != nil {
		return nil, err
	}

	// Fold includes left to right so later ones win, then merge the
	// current file's own keys on top of the accumulated base.
	base := Document{}
	dir := filepath.Dir(path)
	for _, rel := range paths {
		o.log.Debug("resolving include",
			slog.String("from", abs),
			slog.String("include", rel),
		)

		included, err := load(o, filepath.Join(dir, rel), chain)
		if err != nil {
			return nil, err
		}
		base = Merge(base, included)
	}
	return Merge(base, doc), nil
}

func parseFile(o *options, path string) (_ map[string]any, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer try.Close(&err, f)

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	tree, err := parse(o.parserFor(path), b)
	if err != nil {
		return nil, ParseError{Path: path, Cause: err}
	}

	switch m := tree.(type) {
	case nil:
		// An empty file is an empty document, not an error.
		return map[string]any{}, nil
	case map[string]any:
		if m == nil {
			return map[string]any{}, nil
		}
		return m, nil
	default:
		return nil, InvalidShapeError{Path: path, Type: fmt.Sprintf("%T", tree)}
	}
}

// parse guards against panicking parsers so a malformed file always
// surfaces as an error to the caller of Load.
func parse(p Parser, b []byte) (_ any, err error) {
	defer try.Recover(&err)
	return p.Parse(b)
}

func (o *options) parserFor(path string) Parser {
	p, ok := o.parsers[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return YamlParser{}
	}
	return p
}

// includePaths normalizes the include directive value to an ordered list
// of relative paths. A bare string becomes a single-element list.
func includePaths(path string, v any) ([]string, error) {
	switch x := v.(type) {
	case string:
		return []string{x}, nil
	case []any:
		paths := make([]string, 0, len(x))
		for _, item := range x {
			s, ok := item.(string)
			if !ok {
				return nil, InvalidIncludeError{Path: path, Value: item}
			}
			paths = append(paths, s)
		}
		return paths, nil
	default:
		return nil, InvalidIncludeError{Path: path, Value: v}
	}
}
