// Package fragment implements the output-composition tree. Each syntax node
// is mirrored by a Fragment anchored at the node's original position; a
// fragment holds an ordered mix of text chunks and child fragments. Rewrites
// replace a fragment's contents in place, so composition is by tree
// structure and never by arithmetic over document offsets.
package fragment

import (
	"strings"

	"github.com/mahalo/mahalo-transpiler/internal/transpiler/sourcemap"
)

// part is one ordered element of a fragment: a text chunk or a nested
// fragment. Text chunks copied from the original source carry their original
// start position; synthesized chunks carry none.
type part struct {
	text string
	src  *sourcemap.Position
	frag *Fragment
}

// Fragment is a node in the output-composition tree.
type Fragment struct {
	anchor sourcemap.Position
	parts  []part
}

// New creates an empty fragment anchored at the originating source position.
func New(anchor sourcemap.Position) *Fragment {
	return &Fragment{anchor: anchor}
}

// Anchor returns the fragment's original source position.
func (f *Fragment) Anchor() sourcemap.Position { return f.anchor }

// AppendSourced appends a chunk of text copied verbatim from the original
// source, starting at the given original position.
func (f *Fragment) AppendSourced(text string, at sourcemap.Position) {
	if text == "" {
		return
	}
	f.parts = append(f.parts, part{text: text, src: &at})
}

// AppendRaw appends synthesized text with no original counterpart.
func (f *Fragment) AppendRaw(text string) {
	if text == "" {
		return
	}
	f.parts = append(f.parts, part{text: text})
}

// AppendChild appends a nested fragment.
func (f *Fragment) AppendChild(c *Fragment) {
	if c == nil {
		return
	}
	f.parts = append(f.parts, part{frag: c})
}

// Reset discards everything appended so far. A rewrite rule calls Reset
// before describing the node's final shape, so rules never reason about the
// default-built contents.
func (f *Fragment) Reset() {
	f.parts = f.parts[:0]
}

// Empty reports whether the fragment has no contents.
func (f *Fragment) Empty() bool { return len(f.parts) == 0 }

// Flatten concatenates the tree's text in document order and records, for
// every chunk, where the rewritten output came from. file names the original
// source file for the emitted fragment map.
func Flatten(root *Fragment, file string) (string, *sourcemap.FragmentMap) {
	var b strings.Builder
	m := sourcemap.NewFragmentMap(file)
	gen := sourcemap.Position{Line: 1, Column: 1}
	flattenInto(root, &b, m, &gen)
	return b.String(), m
}

func flattenInto(f *Fragment, b *strings.Builder, m *sourcemap.FragmentMap, gen *sourcemap.Position) {
	for _, p := range f.parts {
		if p.frag != nil {
			flattenInto(p.frag, b, m, gen)
			continue
		}
		m.Add(*gen, p.src, p.text)
		b.WriteString(p.text)
		*gen = gen.Advance(p.text)
	}
}
