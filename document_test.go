// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package loaden

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDocument_Get(t *testing.T) {
	doc := Document{
		"top": "value",
		"database": map[string]any{
			"host": "localhost",
			"credentials": map[string]any{
				"user": "admin",
			},
		},
		"flat": "not_a_mapping",
	}

	testCases := []struct {
		name        string
		path        string
		expectedVal any
		expectedOk  bool
	}{
		{
			name:        "top level key",
			path:        "top",
			expectedVal: "value",
			expectedOk:  true,
		},
		{
			name:        "nested key",
			path:        "database.host",
			expectedVal: "localhost",
			expectedOk:  true,
		},
		{
			name:        "deeply nested key",
			path:        "database.credentials.user",
			expectedVal: "admin",
			expectedOk:  true,
		},
		{
			name:        "intermediate mapping",
			path:        "database.credentials",
			expectedVal: map[string]any{"user": "admin"},
			expectedOk:  true,
		},
		{
			name:       "absent key",
			path:       "database.port",
			expectedOk: false,
		},
		{
			name:       "path through a non-mapping value",
			path:       "flat.host",
			expectedOk: false,
		},
		{
			name:       "absent top level key",
			path:       "nope",
			expectedOk: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, ok := doc.Get(tc.path)
			require.Equal(t, tc.expectedOk, ok)
			require.Equal(t, tc.expectedVal, v)
		})
	}
}

func TestDocument_Unmarshal(t *testing.T) {
	t.Run("decodes nested mappings into struct fields", func(t *testing.T) {
		doc := Document{
			"database": map[string]any{
				"host": "localhost",
				"port": 5432,
			},
			"timeout": "2s",
		}

		var cfg struct {
			Database struct {
				Host string `config:"host"`
				Port int    `config:"port"`
			} `config:"database"`
			Timeout time.Duration `config:"timeout"`
		}

		require.NoError(t, doc.Unmarshal(&cfg))
		require.Equal(t, "localhost", cfg.Database.Host)
		require.Equal(t, 5432, cfg.Database.Port)
		require.Equal(t, 2*time.Second, cfg.Timeout)
	})

	t.Run("fails when a value can not be decoded", func(t *testing.T) {
		doc := Document{"port": "not_a_number"}

		var cfg struct {
			Port int `config:"port"`
		}

		err := doc.Unmarshal(&cfg)

		var umErr UnmarshalError
		require.ErrorAs(t, err, &umErr)
	})
}
