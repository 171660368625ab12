package main

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
)

// analyzer reports usage of panic anywhere in the project, calls to
// log.Fatal / os.Exit outside main.main, and ==/!= comparisons against
// package-level Err* sentinels, which the project always wraps.
var analyzer = &analysis.Analyzer{
	Name: "projectlinter",
	Doc:  "reports panic usage, log.Fatal/os.Exit calls outside main.main and sentinel error comparisons with ==",
	Run:  run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	pkgName := pass.Pkg.Name()

	for _, file := range pass.Files {
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Body == nil {
				continue
			}
			funcName := fn.Name.Name
			ast.Inspect(fn.Body, func(n ast.Node) bool {
				switch node := n.(type) {
				case *ast.CallExpr:
					checkPanic(pass, node)
					checkFatalOrExit(pass, node, pkgName, funcName)
				case *ast.BinaryExpr:
					checkSentinelCompare(pass, node)
				}
				return true
			})
		}
	}

	return nil, nil
}

// checkPanic reports usage of builtin panic.
func checkPanic(pass *analysis.Pass, call *ast.CallExpr) {
	id, ok := call.Fun.(*ast.Ident)
	if !ok {
		return
	}

	if builtin, ok := pass.TypesInfo.Uses[id].(*types.Builtin); ok && builtin.Name() == "panic" {
		pass.Reportf(call.Lparen, "use of builtin panic is forbidden")
	}
}

// checkFatalOrExit reports usage of log.Fatal* / os.Exit outside main.main.
func checkFatalOrExit(pass *analysis.Pass, call *ast.CallExpr, pkgName, funcName string) {
	if pkgName == "main" && funcName == "main" {
		return
	}

	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return
	}

	fnObj, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func)
	if !ok || fnObj.Pkg() == nil {
		return
	}

	pkgPath := fnObj.Pkg().Path()
	name := fnObj.Name()

	switch {
	case pkgPath == "log" && strings.HasPrefix(name, "Fatal"):
		pass.Reportf(call.Lparen, "log.%s should not be called outside main.main", name)
	case pkgPath == "os" && name == "Exit":
		pass.Reportf(call.Lparen, "os.Exit should not be called outside main.main")
	}
}

// checkSentinelCompare reports err == ErrX and err != ErrX.
func checkSentinelCompare(pass *analysis.Pass, expr *ast.BinaryExpr) {
	if expr.Op != token.EQL && expr.Op != token.NEQ {
		return
	}

	for _, operand := range []ast.Expr{expr.X, expr.Y} {
		if v := sentinel(pass, operand); v != nil {
			pass.Reportf(expr.OpPos, "compare with errors.Is instead of %s against %s", expr.Op, v.Name())
			return
		}
	}
}

// sentinel returns the package-level Err* error variable e refers to, if any.
func sentinel(pass *analysis.Pass, e ast.Expr) *types.Var {
	var id *ast.Ident
	switch x := ast.Unparen(e).(type) {
	case *ast.Ident:
		id = x
	case *ast.SelectorExpr:
		id = x.Sel
	default:
		return nil
	}

	v, ok := pass.TypesInfo.Uses[id].(*types.Var)
	if !ok || v.Pkg() == nil || v.Parent() != v.Pkg().Scope() {
		return nil
	}
	if !strings.HasPrefix(v.Name(), "Err") {
		return nil
	}

	errType := types.Universe.Lookup("error").Type().Underlying().(*types.Interface)
	if !types.Implements(v.Type(), errType) {
		return nil
	}

	return v
}
