package rewrite

import (
	"strings"
	"testing"

	"github.com/mahalo/mahalo-transpiler/internal/transpiler/ast"
	"github.com/mahalo/mahalo-transpiler/internal/transpiler/lineage"
)

// fixture builds spans against a source string by substring position, so
// test trees stay consistent with the text the composer slices.
type fixture struct {
	source string
}

func fix(source string) *fixture { return &fixture{source: source} }

func (f *fixture) span(t *testing.T, sub string) ast.Span {
	t.Helper()
	return f.spanN(t, sub, 1)
}

// spanN returns the span of the nth occurrence of sub (1-based).
func (f *fixture) spanN(t *testing.T, sub string, n int) ast.Span {
	t.Helper()
	offset := 0
	for {
		i := strings.Index(f.source[offset:], sub)
		if i < 0 {
			t.Fatalf("fixture: occurrence %d of %q not found in %q", n, sub, f.source)
		}
		offset += i
		n--
		if n == 0 {
			return ast.Span{Start: offset, End: offset + len(sub)}
		}
		offset += len(sub)
	}
}

// memberAccess builds obj.prop / obj[prop] spans for the common fixtures.
func (f *fixture) dotAccess(t *testing.T, obj, prop, whole string) *ast.MemberExpr {
	t.Helper()
	return &ast.MemberExpr{
		Object:   &ast.Ident{Name: obj, Sp: f.span(t, obj)},
		Property: &ast.Ident{Name: prop, Sp: f.span(t, prop)},
		Sp:       f.span(t, whole),
	}
}

// stubResolver resolves heritage identifier expressions from a fixed table.
type stubResolver map[string]*lineage.Symbol

func (r stubResolver) ResolveHeritage(expr ast.Node) (*lineage.Symbol, bool) {
	id, ok := expr.(*ast.Ident)
	if !ok {
		return nil, false
	}
	sym, ok := r[id.Name]
	return sym, ok
}

func rewriteSource(t *testing.T, unit *ast.Unit, resolver lineage.HeritageResolver) *Result {
	t.Helper()
	p := NewPipeline(DefaultOptions())
	res, err := p.Rewrite(&Unit{Path: unit.Path, Tree: unit, Resolver: resolver})
	if err != nil {
		t.Fatalf("Rewrite() error = %v", err)
	}
	return res
}
