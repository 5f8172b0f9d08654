// Package osexit запрещает прямой вызов os.Exit в функции main пакета main.
package osexit

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

var Analyzer = &analysis.Analyzer{
	Name:     "osexit",
	Doc:      "reports direct os.Exit calls in main function of package main",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	insp.Preorder([]ast.Node{(*ast.FuncDecl)(nil)}, func(n ast.Node) {
		fn := n.(*ast.FuncDecl)
		if fn.Recv != nil || fn.Name.Name != "main" || fn.Body == nil {
			return
		}

		ast.Inspect(fn.Body, func(n ast.Node) bool {
			// вложенные функции выполняются не обязательно в main
			if _, ok := n.(*ast.FuncLit); ok {
				return false
			}
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}
			if obj := typeutil.Callee(pass.TypesInfo, call); obj != nil &&
				obj.Pkg() != nil && obj.Pkg().Path() == "os" && obj.Name() == "Exit" {
				pass.Reportf(call.Pos(), "direct os.Exit call in main function")
			}
			return true
		})
	})

	return nil, nil
}
