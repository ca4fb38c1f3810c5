// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package loaden

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

// Environ is the process environment capability used by [Load] when
// seeding variables from the "env" section. It exists so the process
// wide side effect can be substituted in tests.
//
// Seeded values take a canonical string form: strings pass through
// unchanged, booleans become "true"/"false" and all other scalars
// render with fmt's default %v format.
type Environ interface {
	LookupEnv(key string) (string, bool)
	Setenv(key, value string) error
}

type osEnviron struct{}

// OS returns an [Environ] backed by the process environment.
func OS() Environ {
	return osEnviron{}
}

// LookupEnv implements the [Environ] interface.
func (osEnviron) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Setenv implements the [Environ] interface.
func (osEnviron) Setenv(key, value string) error {
	return os.Setenv(key, value)
}

// EnvSectionError occurs when the reserved "env" key is present but its
// value is not a mapping of variable names to scalar values.
type EnvSectionError struct {
	Path string

	// Type is the Go type of the value actually found under "env".
	Type string
}

// Error implements the error interface.
func (e EnvSectionError) Error() string {
	return fmt.Sprintf("invalid env section in %s: expected a mapping, got %s", e.Path, e.Type)
}

// seedEnv sets each variable of the document's "env" section which is
// not already present in the environment. Existing values always win.
// Values are converted to their canonical string form: strings pass
// through unchanged, booleans become "true"/"false", everything else
// renders with fmt's default %v format. The section itself stays in
// the document.
func seedEnv(o *options, path string, doc Document) error {
	v, ok := doc[envKey]
	if !ok {
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return EnvSectionError{Path: path, Type: fmt.Sprintf("%T", v)}
	}

	for name, value := range m {
		_, exists := o.env.LookupEnv(name)
		if exists {
			continue
		}

		o.log.Debug("seeding environment variable", slog.String("name", name))

		err := o.env.Setenv(name, stringify(value))
		if err != nil {
			return err
		}
	}
	return nil
}

func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprintf("%v", v)
	}
}
