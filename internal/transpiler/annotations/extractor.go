// Package annotations extracts declarative metadata from the structured
// trailing comments Mahalo recognizes on class members: /*inject*/ inside a
// type annotation, an attribute binding comment of the form
// /* <get|eval|watch|bind> [alias] */ after the type annotation, and
// /*local*/ anywhere in the member declaration.
//
// Recognition is exact textual pattern matching against each member's full
// declaration text. Comments that do not match are simply not annotations;
// there is no error path here.
package annotations

import (
	"regexp"
	"strings"

	"github.com/mahalo/mahalo-transpiler/internal/transpiler/ast"
)

var (
	injectPattern = regexp.MustCompile(`/\*\s*inject\s*\*/`)
	localPattern  = regexp.MustCompile(`/\*\s*local\s*\*/`)
	attrPattern   = regexp.MustCompile(`:[^:]*?/\*\s*(get|eval|watch|bind)(?:[ \t]+([A-Za-z_$][A-Za-z0-9_$]*))?\s*\*/`)
)

// modeCodes maps attribute binding modes to the short codes the Mahalo
// runtime consumes.
var modeCodes = map[string]string{
	"get":   "",
	"eval":  "?",
	"watch": ".",
	"bind":  ":",
}

// InjectionEntry records one dependency-injection member: the member name
// and the full type-annotation text.
type InjectionEntry struct {
	Member string
	Type   string
}

// AttributeEntry records one attribute binding: the member name (suffixed
// with '?' when the member is optional) and the mode code plus optional
// alias.
type AttributeEntry struct {
	Key  string
	Code string
}

// Tables aggregates the metadata extracted from one class, in member
// declaration order.
type Tables struct {
	Injections []InjectionEntry
	Attributes []AttributeEntry
	Locals     []string
}

// Extract scans a class's members for structured trailing comments.
// componentTables enables the attribute and locals tables, which only
// component classes support; the injection table is always extracted.
func Extract(unit *ast.Unit, class *ast.Class, componentTables bool) *Tables {
	tables := &Tables{}

	for _, member := range class.Members {
		if member.Name == nil {
			continue
		}
		name := member.Name.Name
		text := unit.TextOf(member)

		if member.TypeAnn != nil {
			typeText := unit.TextOf(member.TypeAnn)
			if injectPattern.MatchString(typeText) {
				tables.Injections = append(tables.Injections, InjectionEntry{
					Member: name,
					Type:   strings.TrimSpace(typeText),
				})
			}
		}

		if !componentTables {
			continue
		}

		if m := attrPattern.FindStringSubmatch(text); m != nil {
			key := name
			if member.Optional {
				key += "?"
			}
			code := modeCodes[m[1]]
			if m[2] != "" {
				code += strings.TrimSpace(m[2])
			}
			tables.Attributes = append(tables.Attributes, AttributeEntry{Key: key, Code: code})
		}

		if localPattern.MatchString(text) {
			tables.Locals = append(tables.Locals, name)
		}
	}

	return tables
}
