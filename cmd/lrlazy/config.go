package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/dekarrin/lrlazy/grammar"
)

// precedenceOverrideFile is the TOML shape of the optional override file
// passed via --precedence: a table of terminal name to (level,
// associativity), applied on top of the sample grammar's built-in
// precedence table.
//
//	[terminals."+"]
//	level = 1
//	assoc = "left"
//
//	[terminals."^"]
//	level = 3
//	assoc = "right"
type precedenceOverrideFile struct {
	Terminals map[string]precedenceOverrideEntry `toml:"terminals"`
}

type precedenceOverrideEntry struct {
	Level int    `toml:"level"`
	Assoc string `toml:"assoc"`
}

// loadPrecedenceOverrides reads path as TOML and applies every entry found
// to base, returning the merged map. An empty path is a no-op.
func loadPrecedenceOverrides(path string, base grammar.PrecedenceMap) (grammar.PrecedenceMap, error) {
	if path == "" {
		return base, nil
	}

	var file precedenceOverrideFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return base, fmt.Errorf("load precedence overrides: %w", err)
	}

	result := base
	for name, entry := range file.Terminals {
		assoc := grammar.LeftAssoc
		if entry.Assoc == "right" {
			assoc = grammar.RightAssoc
		}
		prec, err := grammar.NewPrecedence(entry.Level, assoc)
		if err != nil {
			return base, fmt.Errorf("precedence override for %q: %w", name, err)
		}
		result = result.WithTerminal(grammar.NewTerminal(name), prec)
	}

	return result, nil
}
