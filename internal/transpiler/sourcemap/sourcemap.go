// Package sourcemap defines the position maps the transpiler produces and
// consumes: the fragment map emitted while flattening rewritten output
// (rewritten text → original source), the mapping list the external lowering
// pass emits (lowered text → rewritten text), and the composition of the two
// (lowered text → original source).
package sourcemap

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Position is a 1-indexed line/column pair.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Before reports whether p strictly precedes q in document order.
func (p Position) Before(q Position) bool {
	return p.Line < q.Line || (p.Line == q.Line && p.Column < q.Column)
}

// Advance returns the position reached after reading text starting at p.
func (p Position) Advance(text string) Position {
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			p.Line++
			p.Column = 1
		} else {
			p.Column++
		}
	}
	return p
}

// Mapping associates one generated position with one source position.
// Name optionally carries the symbol name the lowering pass recorded.
type Mapping struct {
	GeneratedLine   int    `json:"generatedLine"`
	GeneratedColumn int    `json:"generatedColumn"`
	SourceLine      int    `json:"sourceLine"`
	SourceColumn    int    `json:"sourceColumn"`
	Name            string `json:"name,omitempty"`
}

// Map is a position map between one generated file and one source file.
// It is the wire shape for both the lowering pass's map and the final
// composed map.
type Map struct {
	SourceFile    string     `json:"sourceFile"`
	GeneratedFile string     `json:"generatedFile"`
	Mappings      []*Mapping `json:"mappings"`
}

// NewMap creates an empty map between the given files.
func NewMap(sourceFile, generatedFile string) *Map {
	return &Map{
		SourceFile:    sourceFile,
		GeneratedFile: generatedFile,
		Mappings:      make([]*Mapping, 0),
	}
}

// AddMapping appends a mapping pair.
func (m *Map) AddMapping(genLine, genCol, srcLine, srcCol int, name string) {
	m.Mappings = append(m.Mappings, &Mapping{
		GeneratedLine:   genLine,
		GeneratedColumn: genCol,
		SourceLine:      srcLine,
		SourceColumn:    srcCol,
		Name:            name,
	})
}

// SaveToFile writes the map as indented JSON.
func (m *Map) SaveToFile(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal position map: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write position map: %w", err)
	}
	return nil
}

// LoadMap reads a map from a JSON file.
func LoadMap(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Map
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse position map %s: %w", path, err)
	}
	return &m, nil
}

// Registry holds composed maps keyed by generated file, for stack-trace
// tooling that needs to translate runtime locations back to original source.
type Registry struct {
	maps  map[string]*Map
	mutex sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{maps: make(map[string]*Map)}
}

// Register adds a map, replacing any previous map for the same generated file.
func (r *Registry) Register(m *Map) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.maps[m.GeneratedFile] = m
}

// Get retrieves the map for a generated file.
func (r *Registry) Get(generatedFile string) (*Map, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	m, ok := r.maps[generatedFile]
	return m, ok
}

// LoadFromDirectory loads every *.map.json file under dir.
func (r *Registry) LoadFromDirectory(dir string) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.map.json"))
	if err != nil {
		return fmt.Errorf("failed to find position maps: %w", err)
	}
	for _, file := range files {
		m, err := LoadMap(file)
		if err != nil {
			return fmt.Errorf("failed to load position map %s: %w", file, err)
		}
		r.Register(m)
	}
	return nil
}

// TranslateLocation translates a generated location to the original source.
// It picks the mapping at or nearest before the requested position; column
// within the mapped region is offset-adjusted on the same line.
func (r *Registry) TranslateLocation(generatedFile string, line, column int) (string, int, int, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	m, ok := r.maps[generatedFile]
	if !ok {
		return "", 0, 0, fmt.Errorf("no position map for generated file %s", generatedFile)
	}

	target := Position{Line: line, Column: column}
	var best *Mapping
	var bestAt Position
	for _, mapping := range m.Mappings {
		at := Position{Line: mapping.GeneratedLine, Column: mapping.GeneratedColumn}
		if target.Before(at) {
			continue
		}
		if best == nil || bestAt.Before(at) {
			best = mapping
			bestAt = at
		}
	}
	if best == nil {
		return "", 0, 0, fmt.Errorf("no mapping found for %s:%d:%d", generatedFile, line, column)
	}

	srcLine, srcCol := best.SourceLine, best.SourceColumn
	if line == best.GeneratedLine {
		srcCol += column - best.GeneratedColumn
	}
	return m.SourceFile, srcLine, srcCol, nil
}
