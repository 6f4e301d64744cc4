package rewrite

import (
	"testing"

	"github.com/mahalo/mahalo-transpiler/internal/transpiler/ast"
)

func TestAllocateIdentifier_NoCollision(t *testing.T) {
	used := map[string]struct{}{"other": {}}
	if got := AllocateIdentifier(used, "assign"); got != "assign" {
		t.Errorf("AllocateIdentifier() = %q, want %q", got, "assign")
	}
}

func TestAllocateIdentifier_CollisionChain(t *testing.T) {
	used := map[string]struct{}{
		"assign":   {},
		"_assign":  {},
		"__assign": {},
	}
	if got := AllocateIdentifier(used, "assign"); got != "___assign" {
		t.Errorf("AllocateIdentifier() = %q, want %q", got, "___assign")
	}
}

func TestCollectIdentifiers_NestedScopes(t *testing.T) {
	f := fix("import { run } from 'lib';\nvar top = 1;\nfunction outer(arg) {\n  var inner = 2;\n}\nclass Thing {\n  method(param) {}\n}")

	importDecl := &ast.ImportDecl{
		Names:  []*ast.Ident{{Name: "run", Sp: f.span(t, "run")}},
		Module: &ast.Literal{Kind: ast.LitString, Raw: "'lib'", Sp: f.span(t, "'lib'")},
		Sp:     f.span(t, "import { run } from 'lib';"),
	}
	topDecl := &ast.VarDecl{
		Keyword: "var",
		Name:    &ast.Ident{Name: "top", Sp: f.span(t, "top")},
		Init:    &ast.Literal{Kind: ast.LitNumber, Raw: "1", Sp: f.span(t, "1")},
		Sp:      f.span(t, "var top = 1;"),
	}
	innerDecl := &ast.VarDecl{
		Keyword: "var",
		Name:    &ast.Ident{Name: "inner", Sp: f.span(t, "inner")},
		Init:    &ast.Literal{Kind: ast.LitNumber, Raw: "2", Sp: f.span(t, "2")},
		Sp:      f.span(t, "var inner = 2;"),
	}
	fn := &ast.FuncDecl{
		Name:   &ast.Ident{Name: "outer", Sp: f.span(t, "outer")},
		Params: []*ast.Ident{{Name: "arg", Sp: f.span(t, "arg")}},
		Body: &ast.Block{
			Statements: []ast.Node{innerDecl},
			Sp:         f.span(t, "{\n  var inner = 2;\n}"),
		},
		Sp: f.span(t, "function outer(arg) {\n  var inner = 2;\n}"),
	}
	method := &ast.Member{
		Name:   &ast.Ident{Name: "method", Sp: f.span(t, "method")},
		Params: []*ast.Ident{{Name: "param", Sp: f.span(t, "param")}},
		Body:   &ast.Block{Sp: f.span(t, "{}")},
		Sp:     f.span(t, "method(param) {}"),
	}
	class := &ast.Class{
		Name:    &ast.Ident{Name: "Thing", Sp: f.span(t, "Thing")},
		Members: []*ast.Member{method},
		Sp:      f.span(t, "class Thing {\n  method(param) {}\n}"),
	}
	unit := ast.NewUnit("app.ts", f.source, []ast.Node{importDecl, topDecl, fn, class})

	got := CollectIdentifiers(unit)
	for _, want := range []string{"run", "top", "outer", "arg", "inner", "Thing", "param"} {
		if _, ok := got[want]; !ok {
			t.Errorf("CollectIdentifiers() missing %q", want)
		}
	}
	if _, ok := got["method"]; ok {
		t.Errorf("CollectIdentifiers() should not include member name %q", "method")
	}
}
