package rewrite

import "github.com/mahalo/mahalo-transpiler/internal/transpiler/ast"

// CollectIdentifiers gathers every lexical binding name declared anywhere in
// the unit, nested scopes included. The set feeds AllocateIdentifier and is
// discarded after the hook name is chosen.
func CollectIdentifiers(unit *ast.Unit) map[string]struct{} {
	names := make(map[string]struct{})
	add := func(id *ast.Ident) {
		if id != nil {
			names[id.Name] = struct{}{}
		}
	}

	ast.Walk(unit, func(n ast.Node) bool {
		switch d := n.(type) {
		case *ast.VarDecl:
			add(d.Name)
		case *ast.FuncDecl:
			add(d.Name)
			for _, p := range d.Params {
				add(p)
			}
		case *ast.FuncExpr:
			for _, p := range d.Params {
				add(p)
			}
		case *ast.Class:
			add(d.Name)
		case *ast.ImportDecl:
			for _, name := range d.Names {
				add(name)
			}
		case *ast.Member:
			for _, p := range d.Params {
				add(p)
			}
		}
		return true
	})

	return names
}

// AllocateIdentifier returns a name absent from used, starting from name and
// prepending an underscore until the candidate is free. Terminates because
// each step strictly lengthens the candidate and used is finite.
func AllocateIdentifier(used map[string]struct{}, name string) string {
	for {
		if _, taken := used[name]; !taken {
			return name
		}
		name = "_" + name
	}
}
