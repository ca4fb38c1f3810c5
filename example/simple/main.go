// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"fmt"
	"log"

	"github.com/z5labs/loaden"
)

func main() {
	doc, err := loaden.Load("config.yaml",
		loaden.Required("database.host", "database.port"),
	)
	if err != nil {
		log.Fatal(err)
	}

	var cfg struct {
		Database struct {
			Host string `config:"host"`
			Port int    `config:"port"`
		} `config:"database"`
		Debug bool `config:"debug"`
	}
	if err := doc.Unmarshal(&cfg); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("connecting to %s:%d (debug=%t)\n", cfg.Database.Host, cfg.Database.Port, cfg.Debug)
}
