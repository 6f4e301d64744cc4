// Package lineage answers whether a class transitively extends one of the
// Mahalo sentinel base types. The walk crosses module boundaries and
// re-exports by dereferencing resolved symbols back to their declarations.
package lineage

import "github.com/mahalo/mahalo-transpiler/internal/transpiler/ast"

// Symbol is the semantic identity of a resolved heritage expression: the
// declared name, the canonical path of the declaring file, and the
// declaration node itself. Decl may belong to a different compilation unit
// than the class under inspection.
type Symbol struct {
	Name string
	File string
	Decl ast.Node
}

// HeritageResolver resolves a heritage expression to the symbol it names.
// The front-end compiler owns semantic bindings; this interface is the only
// view of them the transpiler takes.
type HeritageResolver interface {
	ResolveHeritage(expr ast.Node) (*Symbol, bool)
}

// Sentinel identifies a framework base type by simple name and the canonical
// resolved path of the module file declaring it. Matching is exact on both.
type Sentinel struct {
	Name       string
	ModulePath string
}

// Extends reports whether class transitively extends the sentinel.
//
// A class without an extends clause never matches. A resolved ancestor
// matches when its name and declaring file equal the sentinel's exactly;
// otherwise, if the ancestor's declaration is itself a class, the walk
// recurses on it, which covers intermediate subclasses and re-export
// indirection. Inheritance chains are assumed acyclic; the front end rejects
// cyclic input before it reaches the transpiler.
func Extends(class *ast.Class, sentinel Sentinel, resolver HeritageResolver) bool {
	if class == nil || class.Heritage == nil || class.Heritage.Keyword != "extends" {
		return false
	}
	if resolver == nil {
		return false
	}

	sym, ok := resolver.ResolveHeritage(class.Heritage.Expr)
	if !ok || sym == nil {
		return false
	}
	if sym.Name == sentinel.Name && sym.File == sentinel.ModulePath {
		return true
	}
	if decl, ok := sym.Decl.(*ast.Class); ok {
		return Extends(decl, sentinel, resolver)
	}
	return false
}
