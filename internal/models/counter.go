package models

import "quill/internal/ast"

// Counter is the smallest useful model: a single integer that grows by one
// or two each step, chosen nondeterministically. Bounded is violated once
// the counter passes ten, which every long enough run does.
func Counter() *ast.Model {
	return &ast.Model{
		Name: "counter",
		Vars: []string{"n"},
		Init: ast.Assign("n", ast.I(0)),
		Step: ast.Op("any",
			ast.Assign("n", ast.Op("add", ast.N("n"), ast.I(1))),
			ast.Assign("n", ast.Op("add", ast.N("n"), ast.I(2))),
		),
		Invariants: []ast.Def{
			{Name: "Bounded", Body: ast.Op("lt", ast.N("n"), ast.I(10))},
			{Name: "NonNegative", Body: ast.Op("gte", ast.N("n"), ast.I(0))},
		},
	}
}
