package models

import "quill/internal/ast"

func row(a, b, c int64) ast.Expr {
	return ast.Op("List", ast.I(a), ast.I(b), ast.I(c))
}

// TicTacToe plays random moves on a 3x3 board kept as a map from cell index
// to mark. Both players play blind, so either XHasNotWon or OHasNotWon is
// violated in most runs; a drawn game fills the board and deadlocks.
func TicTacToe() *ast.Model {
	hasLine := ast.Fn([]string{"p"},
		ast.Op("fold", ast.N("lines"), ast.B(false),
			ast.Fn([]string{"won", "line"},
				ast.Op("or", ast.N("won"),
					ast.Op("foldl", ast.N("line"), ast.B(true),
						ast.Fn([]string{"ok", "c"},
							ast.Op("and", ast.N("ok"),
								ast.Op("eq",
									ast.Op("get", ast.N("board"), ast.N("c")),
									ast.N("p")))))))))

	free := ast.Fn([]string{},
		ast.Op("filter", ast.N("cells"),
			ast.Fn([]string{"c"},
				ast.Op("eq", ast.Op("get", ast.N("board"), ast.N("c")), ast.S(".")))))

	move := ast.LetIn("c", ast.Op("oneOf", ast.Op("free")),
		ast.Op("all",
			ast.Assign("board", ast.Op("set", ast.N("board"), ast.N("c"), ast.N("turn"))),
			ast.Assign("turn",
				ast.Ite(ast.Op("eq", ast.N("turn"), ast.S("X")), ast.S("O"), ast.S("X"))),
		))

	return &ast.Model{
		Name: "tictactoe",
		Vars: []string{"board", "turn"},
		Defs: []ast.Def{
			{Name: "cells", Body: ast.Op("to", ast.I(1), ast.I(9))},
			{Name: "lines", Body: ast.Op("Set",
				row(1, 2, 3), row(4, 5, 6), row(7, 8, 9),
				row(1, 4, 7), row(2, 5, 8), row(3, 6, 9),
				row(1, 5, 9), row(3, 5, 7),
			)},
			{Name: "hasLine", Body: hasLine},
			{Name: "free", Body: free},
		},
		Init: ast.Op("all",
			ast.Assign("board", ast.Op("mapBy", ast.N("cells"), ast.Fn([]string{"c"}, ast.S(".")))),
			ast.Assign("turn", ast.S("X")),
		),
		// oneOf over an empty free set is undefined, which any turns into a
		// disabled step, so a full board reads as a deadlock.
		Step: ast.Op("any", move),
		Invariants: []ast.Def{
			{Name: "XHasNotWon", Body: ast.Op("not", ast.Op("hasLine", ast.S("X")))},
			{Name: "OHasNotWon", Body: ast.Op("not", ast.Op("hasLine", ast.S("O")))},
			{Name: "BoardConsistent", Body: ast.Op("fold", ast.N("cells"), ast.B(true),
				ast.Fn([]string{"ok", "c"},
					ast.Op("and", ast.N("ok"),
						ast.Op("in",
							ast.Op("get", ast.N("board"), ast.N("c")),
							ast.Op("Set", ast.S("."), ast.S("X"), ast.S("O"))))))},
		},
	}
}
