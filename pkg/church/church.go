// Package church builds Church-encoded lambda terms. Numerals encode n as
// n-fold application of a function argument; the combinators are the usual
// successor, addition, and predecessor on that encoding. All builders
// return freshly constructed terms, so callers may embed them in larger
// terms without aliasing concerns.
package church

import "lambda/trampoline-go/pkg/ast"

// Numeral returns λf. λx. f (f … (f x)) with n applications of f.
// Negative n is treated as zero.
func Numeral(n int) *ast.Abstraction {
	body := ast.Term(ast.Var("x"))
	for i := 0; i < n; i++ {
		body = ast.App(ast.Var("f"), body)
	}
	return ast.Abs("f", ast.Abs("x", body))
}

// Succ returns λn. λf. λx. f (n f x).
func Succ() *ast.Abstraction {
	return ast.Abs("n", ast.Abs("f", ast.Abs("x",
		ast.App(ast.Var("f"), ast.AppN(ast.Var("n"), ast.Var("f"), ast.Var("x"))))))
}

// Plus returns λm. λn. λf. λx. m f (n f x).
func Plus() *ast.Abstraction {
	return ast.Abs("m", ast.Abs("n", ast.Abs("f", ast.Abs("x",
		ast.AppN(ast.Var("m"), ast.Var("f"),
			ast.AppN(ast.Var("n"), ast.Var("f"), ast.Var("x")))))))
}

// Pred returns λn. λf. λx. n (λg. λh. h (g f)) (λu. x) (λu. u), the
// standard Church predecessor.
func Pred() *ast.Abstraction {
	return ast.Abs("n", ast.Abs("f", ast.Abs("x",
		ast.AppN(ast.Var("n"),
			ast.Abs("g", ast.Abs("h",
				ast.App(ast.Var("h"), ast.App(ast.Var("g"), ast.Var("f"))))),
			ast.Abs("u", ast.Var("x")),
			ast.Abs("u", ast.Var("u"))))))
}
