// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package loaden loads hierarchical configuration files with include support.
//
// A config file may name other config files to merge in via the reserved
// "loaden_include" key:
//
//	loaden_include: base.yaml
//	loaden_include: [base.yaml, override.yaml]
//
// Includes are resolved depth-first, relative to the directory of the file
// naming them, and merged in order so later files override earlier ones.
// The including file's own keys always take final precedence. The include
// key itself is removed and never appears in the returned [Document].
//
// # Loading
//
// Load a file and validate that required keys are present:
//
//	doc, err := loaden.Load("config.yaml",
//	    loaden.Required("database.host", "database.port"),
//	)
//
// The returned [Document] can be decoded into a struct:
//
//	var cfg struct {
//	    Database struct {
//	        Host string `config:"host"`
//	        Port int    `config:"port"`
//	    } `config:"database"`
//	}
//	err = doc.Unmarshal(&cfg)
//
// # Merging
//
// [Merge] combines two documents, overlay taking precedence. Mappings
// present on both sides are merged recursively; any other collision is
// replaced wholesale by the overlay value, sequences included. Neither
// input is ever mutated.
//
// # Environment seeding
//
// A top level "env" section seeds process environment variables at the
// root of a load. Variables already set in the environment always win:
//
//	env:
//	  API_TOKEN: dev-token
//	  DEBUG: true
//
// The section remains visible in the returned document. See [Environ] for
// the canonical string forms of non-string values.
//
// # Formats
//
// YAML is the reference format. JSON and TOML files are recognized by
// extension and files of different formats may include one another.
// Additional formats can be registered with [ParserFor].
package loaden
