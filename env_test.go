// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package loaden

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeEnviron struct {
	vars map[string]string
}

func newFakeEnviron(vars map[string]string) *fakeEnviron {
	if vars == nil {
		vars = make(map[string]string)
	}
	return &fakeEnviron{vars: vars}
}

func (f *fakeEnviron) LookupEnv(key string) (string, bool) {
	v, ok := f.vars[key]
	return v, ok
}

func (f *fakeEnviron) Setenv(key, value string) error {
	f.vars[key] = value
	return nil
}

func TestLoad_env(t *testing.T) {
	t.Run("variables are seeded from the env section", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "config.yaml", `
env:
  TEST_VAR_FROM_CONFIG: config_value
key: value
`)

		env := newFakeEnviron(nil)
		_, err := Load(path, Environment(env))
		require.NoError(t, err)
		require.Equal(t, "config_value", env.vars["TEST_VAR_FROM_CONFIG"])
	})

	t.Run("existing variables always win", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "config.yaml", `
env:
  EXISTING_VAR: config_value
key: value
`)

		env := newFakeEnviron(map[string]string{"EXISTING_VAR": "shell_value"})
		_, err := Load(path, Environment(env))
		require.NoError(t, err)
		require.Equal(t, "shell_value", env.vars["EXISTING_VAR"])
	})

	t.Run("non-string values take their canonical string form", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "config.yaml", `
env:
  INT_VAR: 42
  BOOL_VAR: true
  FLOAT_VAR: 1.5
key: value
`)

		env := newFakeEnviron(nil)
		_, err := Load(path, Environment(env))
		require.NoError(t, err)
		require.Equal(t, "42", env.vars["INT_VAR"])
		require.Equal(t, "true", env.vars["BOOL_VAR"])
		require.Equal(t, "1.5", env.vars["FLOAT_VAR"])
	})

	t.Run("the env section remains in the document", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "config.yaml", `
env:
  SOME_VAR: value
key: other
`)

		doc, err := Load(path, Environment(newFakeEnviron(nil)))
		require.NoError(t, err)

		v, ok := doc.Get("env.SOME_VAR")
		require.True(t, ok)
		require.Equal(t, "value", v)
	})

	t.Run("seeding happens only at the root of a load", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "base.yaml", "env:\n  FROM_BASE: base\n")
		path := writeConfig(t, dir, "config.yaml", "loaden_include: base.yaml\nenv:\n  FROM_BASE: main\n")

		env := newFakeEnviron(nil)
		_, err := Load(path, Environment(env))
		require.NoError(t, err)

		// Only the merged env section is applied, once, after all
		// includes are resolved.
		require.Equal(t, "main", env.vars["FROM_BASE"])
	})

	t.Run("a non-mapping env section fails", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "config.yaml", "env: not_a_mapping\n")

		_, err := Load(path)

		var envErr EnvSectionError
		require.ErrorAs(t, err, &envErr)
		require.Equal(t, "string", envErr.Type)
	})

	t.Run("the OS environ is the default", func(t *testing.T) {
		t.Setenv("LOADEN_TEST_EXISTING", "shell_value")

		path := writeConfig(t, t.TempDir(), "config.yaml", `
env:
  LOADEN_TEST_EXISTING: config_value
`)

		_, err := Load(path)
		require.NoError(t, err)

		v, ok := OS().LookupEnv("LOADEN_TEST_EXISTING")
		require.True(t, ok)
		require.Equal(t, "shell_value", v)
	})
}

func TestOS(t *testing.T) {
	t.Setenv("LOADEN_TEST_OS_VAR", "initial")

	env := OS()

	v, ok := env.LookupEnv("LOADEN_TEST_OS_VAR")
	require.True(t, ok)
	require.Equal(t, "initial", v)

	require.NoError(t, env.Setenv("LOADEN_TEST_OS_VAR", "updated"))

	v, ok = env.LookupEnv("LOADEN_TEST_OS_VAR")
	require.True(t, ok)
	require.Equal(t, "updated", v)

	_, ok = env.LookupEnv("LOADEN_TEST_OS_VAR_MISSING")
	require.False(t, ok)
}

func TestStringify(t *testing.T) {
	testCases := []struct {
		name     string
		value    any
		expected string
	}{
		{name: "string passes through", value: "plain", expected: "plain"},
		{name: "bool is lowercase", value: true, expected: "true"},
		{name: "int", value: 42, expected: "42"},
		{name: "float", value: 1.5, expected: "1.5"},
		{name: "nil", value: nil, expected: "<nil>"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, stringify(tc.value))
		})
	}
}
