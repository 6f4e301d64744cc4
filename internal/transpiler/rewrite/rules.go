package rewrite

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/mahalo/mahalo-transpiler/internal/transpiler/annotations"
	"github.com/mahalo/mahalo-transpiler/internal/transpiler/ast"
	"github.com/mahalo/mahalo-transpiler/internal/transpiler/fragment"
	"github.com/mahalo/mahalo-transpiler/internal/transpiler/lineage"
	"github.com/mahalo/mahalo-transpiler/internal/transpiler/sourcemap"
)

// builder performs the single depth-first walk that mirrors the syntax tree
// into a fragment tree and applies rewrite rules. At most one rule fires per
// node; node kinds are mutually exclusive across rules.
type builder struct {
	unit *ast.Unit
	opts Options
	res  lineage.HeritageResolver
	hook string
	log  *zap.Logger

	hookNeeded bool
	mutated    bool
	routeViews map[*ast.Literal]struct{}
}

func newBuilder(unit *Unit, opts Options, hook string, log *zap.Logger) *builder {
	b := &builder{
		unit:       unit.Tree,
		opts:       opts,
		res:        unit.Resolver,
		hook:       hook,
		log:        log,
		routeViews: make(map[*ast.Literal]struct{}),
	}
	b.collectRouteViews()
	return b
}

// collectRouteViews marks the string-literal initializers of members named
// "view" inside classes extending the Route sentinel, so the literal rule
// can fire without class context during the walk.
func (b *builder) collectRouteViews() {
	ast.Walk(b.unit, func(n ast.Node) bool {
		class, ok := n.(*ast.Class)
		if !ok {
			return true
		}
		if !lineage.Extends(class, b.opts.Sentinels.Route, b.res) {
			return true
		}
		for _, m := range class.Members {
			if m.Name == nil || m.Name.Name != "view" || m.Body != nil {
				continue
			}
			if lit, ok := m.Init.(*ast.Literal); ok && lit.Kind == ast.LitString {
				b.routeViews[lit] = struct{}{}
			}
		}
		return true
	})
}

// build recursively mirrors a node into a fragment: children in document
// order, the text strictly between them copied verbatim, then the rule
// dispatch, which may reset the fragment and describe the node's final
// shape instead.
func (b *builder) build(n ast.Node) *fragment.Fragment {
	sp := n.Span()
	frag := fragment.New(b.posAt(sp.Start))

	cursor := sp.Start
	for _, child := range n.Children() {
		cs := child.Span()
		if cs.Start > cursor {
			frag.AppendSourced(b.unit.Source[cursor:cs.Start], b.posAt(cursor))
		}
		frag.AppendChild(b.build(child))
		cursor = cs.End
	}
	if sp.End > cursor {
		frag.AppendSourced(b.unit.Source[cursor:sp.End], b.posAt(cursor))
	}

	b.dispatch(n, frag)
	return frag
}

func (b *builder) posAt(offset int) sourcemap.Position {
	p := b.unit.PositionAt(offset)
	return sourcemap.Position{Line: p.Line, Column: p.Column}
}

func (b *builder) text(n ast.Node) string { return b.unit.TextOf(n) }

// dispatch applies the one rule (if any) matching the node kind.
func (b *builder) dispatch(n ast.Node, frag *fragment.Fragment) {
	switch x := n.(type) {
	case *ast.AssignExpr:
		b.rewriteAssign(x, frag)
	case *ast.UpdateExpr:
		b.rewriteUpdate(x, frag)
	case *ast.UnaryExpr:
		if x.Op == "delete" {
			b.rewriteDelete(x, frag)
		}
	case *ast.Class:
		b.rewriteClass(x, frag)
	case *ast.Literal:
		if _, ok := b.routeViews[x]; ok {
			b.rewriteRouteView(x, frag)
		}
	}
}

func (b *builder) fired(rule string, frag *fragment.Fragment) {
	b.mutated = true
	b.log.Debug("rewrite rule fired",
		zap.String("rule", rule),
		zap.Int("line", frag.Anchor().Line),
		zap.Int("column", frag.Anchor().Column),
	)
}

// keyText encodes a member access's key for the hook call: dot access
// becomes a quoted string literal, bracket access passes the index
// expression through verbatim.
func (b *builder) keyText(m *ast.MemberExpr) string {
	if m.Computed {
		return b.text(m.Property)
	}
	if id, ok := m.Property.(*ast.Ident); ok {
		return strconv.Quote(id.Name)
	}
	return strconv.Quote(b.text(m.Property))
}

// rewriteAssign routes member assignments through the hook and wraps any
// other assignment in the transparent marker call.
func (b *builder) rewriteAssign(x *ast.AssignExpr, frag *fragment.Fragment) {
	b.hookNeeded = true

	member, ok := x.Left.(*ast.MemberExpr)
	if !ok {
		frag.Reset()
		frag.AppendRaw(b.hook + "(" + b.text(x) + ")")
		b.fired("assign-marker", frag)
		return
	}

	frag.Reset()
	frag.AppendRaw(b.hook + "(" + b.text(member.Object) + ", " + b.keyText(member) + ", ")
	if x.Op != "=" {
		// Compound operators reconstruct the non-assignment form:
		// a.b += v becomes hook(a, "b", a.b + v).
		frag.AppendRaw(b.text(x.Left) + " " + strings.TrimSuffix(x.Op, "=") + " ")
	}
	frag.AppendChild(b.build(x.Right))
	frag.AppendRaw(")")
	b.fired("assign-member", frag)
}

// rewriteUpdate routes member increments and decrements through the hook.
// The postfix form wraps the call so the expression's result is the
// pre-update value.
func (b *builder) rewriteUpdate(x *ast.UpdateExpr, frag *fragment.Fragment) {
	b.hookNeeded = true

	member, ok := x.Operand.(*ast.MemberExpr)
	if !ok {
		frag.Reset()
		frag.AppendRaw(b.hook + "(" + b.text(x) + ")")
		b.fired("update-marker", frag)
		return
	}

	op, inverse := "+", "-"
	if x.Op == "--" {
		op, inverse = "-", "+"
	}

	call := b.hook + "(" + b.text(member.Object) + ", " + b.keyText(member) + ", " +
		b.text(member) + " " + op + " 1)"

	frag.Reset()
	if x.Prefix {
		frag.AppendRaw(call)
	} else {
		frag.AppendRaw("(" + call + " " + inverse + " 1)")
	}
	b.fired("update-member", frag)
}

// rewriteDelete routes member deletion through the two-argument hook form.
// Deletion of a non-member target is left unrewritten; see DESIGN.md for
// the policy decision.
func (b *builder) rewriteDelete(x *ast.UnaryExpr, frag *fragment.Fragment) {
	member, ok := x.Operand.(*ast.MemberExpr)
	if !ok {
		return
	}

	b.hookNeeded = true
	frag.Reset()
	frag.AppendRaw(b.hook + "(" + b.text(member.Object) + ", " + b.keyText(member) + ")")
	b.fired("delete-member", frag)
}

// rewriteClass appends the synthesized metadata table statements after the
// class body for classes extending a Mahalo sentinel. The default-built
// class fragment is kept; statements are appended, never replacing source.
func (b *builder) rewriteClass(x *ast.Class, frag *fragment.Fragment) {
	if x.Name == nil {
		return
	}

	isComponent := lineage.Extends(x, b.opts.Sentinels.Component, b.res)
	isBehavior := !isComponent && lineage.Extends(x, b.opts.Sentinels.Behavior, b.res)
	if !isComponent && !isBehavior {
		return
	}

	tables := annotations.Extract(b.unit, x, isComponent)
	name := x.Name.Name
	appended := false

	if len(tables.Injections) > 0 {
		entries := make([]string, len(tables.Injections))
		for i, e := range tables.Injections {
			entries[i] = strconv.Quote(e.Member) + ": " + strconv.Quote(e.Type)
		}
		frag.AppendRaw("\n" + name + ".inject = Object.assign(" + name + ".inject || {}, {" +
			strings.Join(entries, ", ") + "});")
		appended = true
	}

	if isComponent && len(tables.Attributes) > 0 {
		entries := make([]string, len(tables.Attributes))
		for i, e := range tables.Attributes {
			entries[i] = strconv.Quote(e.Key) + ": " + strconv.Quote(e.Code)
		}
		frag.AppendRaw("\n" + name + ".attributes = Object.assign(" + name + ".attributes || {}, {" +
			strings.Join(entries, ", ") + "});")
		appended = true
	}

	if isComponent && len(tables.Locals) > 0 {
		entries := make([]string, len(tables.Locals))
		for i, l := range tables.Locals {
			entries[i] = strconv.Quote(l)
		}
		frag.AppendRaw("\n" + name + ".locals = (" + name + ".locals || []).concat([" +
			strings.Join(entries, ", ") + "]);")
		appended = true
	}

	if appended {
		b.fired("class-metadata", frag)
	}
}

// rewriteRouteView replaces a route's view path literal with a zero-argument
// function that lazily imports the module and resolves to its default
// export.
func (b *builder) rewriteRouteView(x *ast.Literal, frag *fragment.Fragment) {
	frag.Reset()
	frag.AppendRaw("function () { return import(" + x.Raw + ").then(function (m) { return m['default']; }); }")
	b.fired("route-view", frag)
}
