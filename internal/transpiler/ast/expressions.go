package ast

// LiteralKind distinguishes literal token classes.
type LiteralKind int

const (
	// LitString is a single- or double-quoted string literal.
	LitString LiteralKind = iota
	// LitNumber is a numeric literal.
	LitNumber
	// LitBool is true or false.
	LitBool
	// LitNull is null or undefined.
	LitNull
)

// Ident is an identifier reference or binding occurrence.
type Ident struct {
	Name string
	Sp   Span
}

func (i *Ident) node() {}

// Span returns the identifier's span.
func (i *Ident) Span() Span { return i.Sp }

// Children returns nil.
func (i *Ident) Children() []Node { return nil }

// Literal is a literal token. Raw holds the exact source text, quotes
// included for strings.
type Literal struct {
	Kind LiteralKind
	Raw  string
	Sp   Span
}

func (l *Literal) node() {}

// Span returns the literal's span.
func (l *Literal) Span() Span { return l.Sp }

// Children returns nil.
func (l *Literal) Children() []Node { return nil }

// StringValue returns the literal's text with the surrounding quotes
// stripped. It returns the raw text unchanged for non-string literals.
func (l *Literal) StringValue() string {
	if l.Kind != LitString || len(l.Raw) < 2 {
		return l.Raw
	}
	switch l.Raw[0] {
	case '\'', '"', '`':
		return l.Raw[1 : len(l.Raw)-1]
	}
	return l.Raw
}

// MemberExpr is a property access: dot access when Computed is false
// (Property is an *Ident), bracket access when Computed is true (Property is
// an arbitrary index expression).
type MemberExpr struct {
	Object   Node
	Property Node
	Computed bool
	Sp       Span
}

func (m *MemberExpr) node() {}

// Span returns the access expression's span, brackets included.
func (m *MemberExpr) Span() Span { return m.Sp }

// Children returns object then property.
func (m *MemberExpr) Children() []Node { return []Node{m.Object, m.Property} }

// AssignExpr is an assignment expression. Op is the full operator token:
// "=", "+=", "-=", "*=", "/=", "%=", "**=", "|=", "&=", "^=", "<<=", ">>=",
// ">>>=".
type AssignExpr struct {
	Left  Node
	Op    string
	Right Node
	Sp    Span
}

func (a *AssignExpr) node() {}

// Span returns the assignment's span.
func (a *AssignExpr) Span() Span { return a.Sp }

// Children returns left then right.
func (a *AssignExpr) Children() []Node { return []Node{a.Left, a.Right} }

// UpdateExpr is an increment or decrement. Op is "++" or "--".
type UpdateExpr struct {
	Op      string
	Operand Node
	Prefix  bool
	Sp      Span
}

func (u *UpdateExpr) node() {}

// Span returns the update expression's span.
func (u *UpdateExpr) Span() Span { return u.Sp }

// Children returns the operand.
func (u *UpdateExpr) Children() []Node { return []Node{u.Operand} }

// UnaryExpr is a prefix unary expression. The delete operator arrives here
// with Op == "delete".
type UnaryExpr struct {
	Op      string
	Operand Node
	Sp      Span
}

func (u *UnaryExpr) node() {}

// Span returns the unary expression's span, operator included.
func (u *UnaryExpr) Span() Span { return u.Sp }

// Children returns the operand.
func (u *UnaryExpr) Children() []Node { return []Node{u.Operand} }

// BinaryExpr is an infix binary expression.
type BinaryExpr struct {
	Left  Node
	Op    string
	Right Node
	Sp    Span
}

func (b *BinaryExpr) node() {}

// Span returns the expression's span.
func (b *BinaryExpr) Span() Span { return b.Sp }

// Children returns left then right.
func (b *BinaryExpr) Children() []Node { return []Node{b.Left, b.Right} }

// CallExpr is a function or method call.
type CallExpr struct {
	Callee Node
	Args   []Node
	Sp     Span
}

func (c *CallExpr) node() {}

// Span returns the call's span, parentheses included.
func (c *CallExpr) Span() Span { return c.Sp }

// Children returns callee then arguments.
func (c *CallExpr) Children() []Node {
	children := make([]Node, 0, len(c.Args)+1)
	children = append(children, c.Callee)
	children = append(children, c.Args...)
	return children
}

// ParenExpr is a parenthesized expression.
type ParenExpr struct {
	X  Node
	Sp Span
}

func (p *ParenExpr) node() {}

// Span returns the span including parentheses.
func (p *ParenExpr) Span() Span { return p.Sp }

// Children returns the inner expression.
func (p *ParenExpr) Children() []Node { return []Node{p.X} }

// FuncExpr is an anonymous function expression.
type FuncExpr struct {
	Params []*Ident
	Body   *Block
	Sp     Span
}

func (f *FuncExpr) node() {}

// Span returns the function expression's span.
func (f *FuncExpr) Span() Span { return f.Sp }

// Children returns parameters then body.
func (f *FuncExpr) Children() []Node {
	children := make([]Node, 0, len(f.Params)+1)
	for _, p := range f.Params {
		children = append(children, p)
	}
	if f.Body != nil {
		children = append(children, f.Body)
	}
	return children
}
