package ast

import "testing"

func TestUnit_PositionAt(t *testing.T) {
	unit := NewUnit("app.ts", "ab\ncd\n\nef", nil)

	tests := []struct {
		offset int
		line   int
		column int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3}, // the newline itself
		{3, 2, 1},
		{4, 2, 2},
		{6, 3, 1}, // empty line
		{7, 4, 1},
		{8, 4, 2},
	}
	for _, tt := range tests {
		got := unit.PositionAt(tt.offset)
		if got.Line != tt.line || got.Column != tt.column {
			t.Errorf("PositionAt(%d) = %d:%d, want %d:%d", tt.offset, got.Line, got.Column, tt.line, tt.column)
		}
	}
}

func TestUnit_TextOf(t *testing.T) {
	source := "var x = 1;"
	unit := NewUnit("app.ts", source, nil)

	id := &Ident{Name: "x", Sp: Span{Start: 4, End: 5}}
	if got := unit.TextOf(id); got != "x" {
		t.Errorf("TextOf() = %q, want %q", got, "x")
	}

	bad := &Ident{Name: "y", Sp: Span{Start: 5, End: 99}}
	if got := unit.TextOf(bad); got != "" {
		t.Errorf("TextOf() with out-of-range span = %q, want empty", got)
	}
}

func TestWalk_DocumentOrder(t *testing.T) {
	source := "a.b = v"
	obj := &Ident{Name: "a", Sp: Span{Start: 0, End: 1}}
	prop := &Ident{Name: "b", Sp: Span{Start: 2, End: 3}}
	member := &MemberExpr{Object: obj, Property: prop, Sp: Span{Start: 0, End: 3}}
	right := &Ident{Name: "v", Sp: Span{Start: 6, End: 7}}
	assign := &AssignExpr{Left: member, Op: "=", Right: right, Sp: Span{Start: 0, End: 7}}
	unit := NewUnit("app.ts", source, []Node{assign})

	var order []string
	Walk(unit, func(n Node) bool {
		if id, ok := n.(*Ident); ok {
			order = append(order, id.Name)
		}
		return true
	})

	want := []string{"a", "b", "v"}
	if len(order) != len(want) {
		t.Fatalf("visited %d identifiers, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("visit order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestWalk_SkipSubtree(t *testing.T) {
	obj := &Ident{Name: "a"}
	prop := &Ident{Name: "b"}
	member := &MemberExpr{Object: obj, Property: prop}
	unit := NewUnit("app.ts", "", []Node{member})

	var visited int
	Walk(unit, func(n Node) bool {
		visited++
		_, isMember := n.(*MemberExpr)
		return !isMember
	})

	// unit + member, but not the member's children.
	if visited != 2 {
		t.Errorf("visited = %d, want 2", visited)
	}
}

func TestLiteral_StringValue(t *testing.T) {
	tests := []struct {
		raw  string
		kind LiteralKind
		want string
	}{
		{"'./views/home'", LitString, "./views/home"},
		{`"quoted"`, LitString, "quoted"},
		{"42", LitNumber, "42"},
	}
	for _, tt := range tests {
		l := &Literal{Kind: tt.kind, Raw: tt.raw}
		if got := l.StringValue(); got != tt.want {
			t.Errorf("StringValue(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestMember_ChildrenOrder(t *testing.T) {
	name := &Ident{Name: "view", Sp: Span{Start: 0, End: 4}}
	ann := &TypeAnn{Sp: Span{Start: 6, End: 12}}
	init := &Literal{Kind: LitString, Raw: "'x'", Sp: Span{Start: 15, End: 18}}
	m := &Member{Name: name, TypeAnn: ann, Init: init, Sp: Span{Start: 0, End: 19}}

	children := m.Children()
	if len(children) != 3 {
		t.Fatalf("Children() = %d nodes, want 3", len(children))
	}
	if children[0] != Node(name) || children[1] != Node(ann) || children[2] != Node(init) {
		t.Error("Children() not in document order")
	}
}
