package sourcemap

// Segment is one contiguous run of rewritten output text. Sourced segments
// copy original text verbatim and carry the original start position;
// synthesized segments have no original counterpart and a nil Src.
type Segment struct {
	Gen  Position  `json:"generated"`
	Src  *Position `json:"source,omitempty"`
	Text string    `json:"text"`
}

// FragmentMap maps rewritten output text back to the original source of one
// compilation unit. Segments are in document order and cover the whole
// output text.
type FragmentMap struct {
	File     string    `json:"file"`
	Segments []Segment `json:"segments"`
}

// NewFragmentMap creates an empty fragment map for the given source file.
func NewFragmentMap(file string) *FragmentMap {
	return &FragmentMap{File: file, Segments: make([]Segment, 0)}
}

// Add appends a segment. Sourced text passes its original start position;
// synthesized text passes nil.
func (m *FragmentMap) Add(gen Position, src *Position, text string) {
	if text == "" {
		return
	}
	m.Segments = append(m.Segments, Segment{Gen: gen, Src: src, Text: text})
}

// Resolve translates a position in the rewritten output to the original
// source. It returns false when the position falls inside synthesized text
// or outside the mapped output.
func (m *FragmentMap) Resolve(line, column int) (Position, bool) {
	target := Position{Line: line, Column: column}
	for _, seg := range m.Segments {
		if target.Before(seg.Gen) {
			continue
		}
		end := seg.Gen.Advance(seg.Text)
		if !target.Before(end) {
			continue
		}
		if seg.Src == nil {
			return Position{}, false
		}
		// Walk the segment text to the target, advancing the source
		// position in lockstep; sourced text is a verbatim copy, so the
		// deltas are identical.
		gen := seg.Gen
		src := *seg.Src
		for i := 0; i < len(seg.Text); i++ {
			if gen == target {
				return src, true
			}
			if seg.Text[i] == '\n' {
				gen.Line++
				gen.Column = 1
				src.Line++
				src.Column = 1
			} else {
				gen.Column++
				src.Column++
			}
		}
		if gen == target {
			return src, true
		}
		return Position{}, false
	}
	return Position{}, false
}
