// Package ast defines the syntax tree node types the transpiler consumes from
// the front-end compiler. It covers the statement and declaration shapes the
// rewrite rules inspect (classes, members, imports) plus generic containers;
// expression nodes live in expressions.go.
package ast

import "sort"

// Span marks a node's extent as byte offsets into the unit source.
// Start is inclusive, End exclusive.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int { return s.End - s.Start }

// Position is a 1-indexed line/column pair in the original source.
type Position struct {
	Line   int // Line number (1-indexed)
	Column int // Column number (1-indexed)
}

// Node is the base interface for all syntax tree nodes.
type Node interface {
	Span() Span
	// Children returns the node's direct children in document order.
	// Nil children are omitted.
	Children() []Node
	node()
}

// Unit is the root node for one compilation unit.
type Unit struct {
	Path       string
	Source     string
	Statements []Node
	Sp         Span

	lineOffsets []int
}

// NewUnit builds a Unit over the full source text and computes the line
// index used for offset-to-position translation.
func NewUnit(path, source string, statements []Node) *Unit {
	u := &Unit{
		Path:       path,
		Source:     source,
		Statements: statements,
		Sp:         Span{Start: 0, End: len(source)},
	}
	u.lineOffsets = []int{0}
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			u.lineOffsets = append(u.lineOffsets, i+1)
		}
	}
	return u
}

func (u *Unit) node() {}

// Span returns the span of the whole unit.
func (u *Unit) Span() Span { return u.Sp }

// Children returns the unit's top-level statements.
func (u *Unit) Children() []Node { return u.Statements }

// PositionAt translates a byte offset into a 1-indexed line/column position.
func (u *Unit) PositionAt(offset int) Position {
	line := sort.Search(len(u.lineOffsets), func(i int) bool {
		return u.lineOffsets[i] > offset
	})
	return Position{Line: line, Column: offset - u.lineOffsets[line-1] + 1}
}

// TextOf returns the source text a node covers.
func (u *Unit) TextOf(n Node) string {
	sp := n.Span()
	if sp.Start < 0 || sp.End > len(u.Source) || sp.Start > sp.End {
		return ""
	}
	return u.Source[sp.Start:sp.End]
}

// Block is a braced statement list.
type Block struct {
	Statements []Node
	Sp         Span
}

func (b *Block) node() {}

// Span returns the block's span, including braces.
func (b *Block) Span() Span { return b.Sp }

// Children returns the block's statements.
func (b *Block) Children() []Node { return b.Statements }

// ExprStmt is an expression used in statement position.
type ExprStmt struct {
	X  Node
	Sp Span
}

func (s *ExprStmt) node() {}

// Span returns the statement's span, including any trailing semicolon.
func (s *ExprStmt) Span() Span { return s.Sp }

// Children returns the wrapped expression.
func (s *ExprStmt) Children() []Node { return []Node{s.X} }

// ReturnStmt is a return statement; X may be nil.
type ReturnStmt struct {
	X  Node
	Sp Span
}

func (s *ReturnStmt) node() {}

// Span returns the statement's span.
func (s *ReturnStmt) Span() Span { return s.Sp }

// Children returns the returned expression, if any.
func (s *ReturnStmt) Children() []Node {
	if s.X == nil {
		return nil
	}
	return []Node{s.X}
}

// VarDecl declares a single lexical binding with an optional initializer.
type VarDecl struct {
	Keyword string // "var", "let" or "const"
	Name    *Ident
	Init    Node
	Sp      Span
}

func (d *VarDecl) node() {}

// Span returns the declaration's span.
func (d *VarDecl) Span() Span { return d.Sp }

// Children returns the name followed by the initializer, if any.
func (d *VarDecl) Children() []Node {
	children := make([]Node, 0, 2)
	if d.Name != nil {
		children = append(children, d.Name)
	}
	if d.Init != nil {
		children = append(children, d.Init)
	}
	return children
}

// FuncDecl declares a function.
type FuncDecl struct {
	Name   *Ident
	Params []*Ident
	Body   *Block
	Sp     Span
}

func (d *FuncDecl) node() {}

// Span returns the declaration's span.
func (d *FuncDecl) Span() Span { return d.Sp }

// Children returns name, parameters and body in document order.
func (d *FuncDecl) Children() []Node {
	children := make([]Node, 0, len(d.Params)+2)
	if d.Name != nil {
		children = append(children, d.Name)
	}
	for _, p := range d.Params {
		children = append(children, p)
	}
	if d.Body != nil {
		children = append(children, d.Body)
	}
	return children
}

// ImportDecl is an import statement binding one or more names from a module.
type ImportDecl struct {
	Names  []*Ident
	Module *Literal
	Sp     Span
}

func (d *ImportDecl) node() {}

// Span returns the import's span.
func (d *ImportDecl) Span() Span { return d.Sp }

// Children returns the imported names followed by the module specifier.
func (d *ImportDecl) Children() []Node {
	children := make([]Node, 0, len(d.Names)+1)
	for _, n := range d.Names {
		children = append(children, n)
	}
	if d.Module != nil {
		children = append(children, d.Module)
	}
	return children
}

// Heritage is a class heritage clause (extends or implements).
type Heritage struct {
	Keyword string // "extends" or "implements"
	Expr    Node
	Sp      Span
}

func (h *Heritage) node() {}

// Span returns the clause's span, including the keyword.
func (h *Heritage) Span() Span { return h.Sp }

// Children returns the heritage expression.
func (h *Heritage) Children() []Node { return []Node{h.Expr} }

// Class is a class declaration.
type Class struct {
	Name     *Ident
	Heritage *Heritage
	Members  []*Member
	Sp       Span
}

func (c *Class) node() {}

// Span returns the declaration's span, including the class body braces.
func (c *Class) Span() Span { return c.Sp }

// Children returns name, heritage clause and members in document order.
func (c *Class) Children() []Node {
	children := make([]Node, 0, len(c.Members)+2)
	if c.Name != nil {
		children = append(children, c.Name)
	}
	if c.Heritage != nil {
		children = append(children, c.Heritage)
	}
	for _, m := range c.Members {
		children = append(children, m)
	}
	return children
}

// TypeAnn is an opaque type annotation. The transpiler only ever looks at
// its literal source text, never its structure.
type TypeAnn struct {
	Sp Span
}

func (t *TypeAnn) node() {}

// Span returns the annotation's span, excluding the leading colon.
func (t *TypeAnn) Span() Span { return t.Sp }

// Children returns nil; annotations are opaque.
func (t *TypeAnn) Children() []Node { return nil }

// Member is a class member: a field with optional type annotation and
// initializer, or a method when Body is non-nil.
type Member struct {
	Name     *Ident
	Optional bool // declared with a trailing '?'
	Static   bool
	TypeAnn  *TypeAnn
	Params   []*Ident
	Init     Node
	Body     *Block
	Sp       Span
}

func (m *Member) node() {}

// Span returns the member's span, including any trailing structured comment.
func (m *Member) Span() Span { return m.Sp }

// Children returns the member's parts in document order.
func (m *Member) Children() []Node {
	children := make([]Node, 0, len(m.Params)+4)
	if m.Name != nil {
		children = append(children, m.Name)
	}
	if m.TypeAnn != nil {
		children = append(children, m.TypeAnn)
	}
	for _, p := range m.Params {
		children = append(children, p)
	}
	if m.Init != nil {
		children = append(children, m.Init)
	}
	if m.Body != nil {
		children = append(children, m.Body)
	}
	return children
}

// Walk traverses the tree rooted at n in document order, calling fn for each
// node. If fn returns false the node's children are skipped.
func Walk(n Node, fn func(Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children() {
		Walk(c, fn)
	}
}
