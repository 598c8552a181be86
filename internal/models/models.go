// Package models holds built-in example specifications, already in the
// resolved form the simulator consumes. They double as executable
// documentation and as fixtures for the driver tests.
package models

import (
	"golang.org/x/exp/slices"

	"quill/internal/ast"
)

var registry = map[string]func() *ast.Model{
	"counter":   Counter,
	"bank":      Bank,
	"tictactoe": TicTacToe,
}

// ByName builds a fresh instance of the named model.
func ByName(name string) (*ast.Model, bool) {
	build, ok := registry[name]
	if !ok {
		return nil, false
	}
	return build(), true
}

// Names lists the available models in stable order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
