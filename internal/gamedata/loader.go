// Package gamedata provides the embedded data tables the generator draws
// cosmetic features from, and utilities for loading them.
package gamedata

import (
	"embed"
	"encoding/json"
	"fmt"
)

// tablesFS embeds every JSON table in this directory at build time, so
// the binary carries its data and there is no load-order or path issue
// at runtime.
//
//go:embed *.json
var tablesFS embed.FS

// Load reads and unmarshals one embedded JSON table.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := tablesFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("read data table %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("parse data table %s: %w", filename, err)
	}

	return result, nil
}

// MustLoad reads and unmarshals an embedded table, panicking on error.
// Use it for tables the generator cannot run without.
func MustLoad[T any](filename string) T {
	result, err := Load[T](filename)
	if err != nil {
		panic(err)
	}
	return result
}
