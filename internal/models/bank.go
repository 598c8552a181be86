package models

import "quill/internal/ast"

// Bank models withdrawals against a map of account balances. The withdrawal
// amount is not checked against the balance, so NoOverdraft is violated
// eventually. TotalBounded holds in every reachable state.
func Bank() *ast.Model {
	sumBalances := ast.Op("fold", ast.N("accounts"), ast.I(0),
		ast.Fn([]string{"total", "a"},
			ast.Op("add", ast.N("total"),
				ast.Op("get", ast.N("balances"), ast.N("a")))))

	return &ast.Model{
		Name: "bank",
		Vars: []string{"balances"},
		Defs: []ast.Def{
			{Name: "accounts", Body: ast.Op("Set", ast.S("alice"), ast.S("bob"), ast.S("carol"))},
		},
		Init: ast.Assign("balances",
			ast.Op("mapBy", ast.N("accounts"), ast.Fn([]string{"a"}, ast.I(100)))),
		Step: ast.LetIn("who", ast.Op("oneOf", ast.N("accounts")),
			ast.LetIn("amount", ast.Op("oneOf", ast.Op("to", ast.I(1), ast.I(60))),
				ast.Assign("balances",
					ast.Op("setBy", ast.N("balances"), ast.N("who"),
						ast.Fn([]string{"b"}, ast.Op("sub", ast.N("b"), ast.N("amount"))))))),
		Invariants: []ast.Def{
			{Name: "NoOverdraft", Body: ast.Op("fold", ast.N("accounts"), ast.B(true),
				ast.Fn([]string{"ok", "a"},
					ast.Op("and", ast.N("ok"),
						ast.Op("gte",
							ast.Op("get", ast.N("balances"), ast.N("a")),
							ast.I(0)))))},
			{Name: "TotalBounded", Body: ast.Op("lte", sumBalances, ast.I(300))},
		},
	}
}
