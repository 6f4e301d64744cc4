package sourcemap

// Compose combines the fragment map (rewritten output → original source)
// with the lowering pass's map (lowered output → rewritten output) into a
// single map from lowered output to original source.
//
// Mappings whose source side falls inside synthesized text are dropped:
// synthesized code has no original location. When no rewriting occurred at
// all (frag is nil) the lowered map is returned verbatim.
func Compose(frag *FragmentMap, lowered *Map) *Map {
	if frag == nil {
		return lowered
	}

	composed := NewMap(frag.File, lowered.GeneratedFile)
	for _, m := range lowered.Mappings {
		src, ok := frag.Resolve(m.SourceLine, m.SourceColumn)
		if !ok {
			continue
		}
		composed.AddMapping(m.GeneratedLine, m.GeneratedColumn, src.Line, src.Column, m.Name)
	}
	return composed
}
