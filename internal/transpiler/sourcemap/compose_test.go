package sourcemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose_DropsSynthesizedPositions(t *testing.T) {
	frag := NewFragmentMap("app.ts")
	frag.Add(Position{Line: 1, Column: 1}, nil, "assign(")
	frag.Add(Position{Line: 1, Column: 8}, srcPos(1, 7), "v")
	frag.Add(Position{Line: 1, Column: 9}, nil, ")")

	lowered := NewMap("app.ts", "app.js")
	lowered.AddMapping(5, 1, 1, 2, "")  // inside assign( -> dropped
	lowered.AddMapping(5, 9, 1, 8, "v") // the sourced chunk

	composed := Compose(frag, lowered)
	require.Len(t, composed.Mappings, 1)
	assert.Equal(t, 5, composed.Mappings[0].GeneratedLine)
	assert.Equal(t, 9, composed.Mappings[0].GeneratedColumn)
	assert.Equal(t, 1, composed.Mappings[0].SourceLine)
	assert.Equal(t, 7, composed.Mappings[0].SourceColumn)
}

func TestCompose_CarriesNamesAndFileIdentity(t *testing.T) {
	frag := NewFragmentMap("original.ts")
	frag.Add(Position{Line: 1, Column: 1}, srcPos(4, 2), "doWork()")

	lowered := NewMap("rewritten.ts", "bundle.js")
	lowered.AddMapping(100, 12, 1, 1, "doWork")

	composed := Compose(frag, lowered)
	assert.Equal(t, "original.ts", composed.SourceFile)
	assert.Equal(t, "bundle.js", composed.GeneratedFile)
	require.Len(t, composed.Mappings, 1)
	assert.Equal(t, "doWork", composed.Mappings[0].Name)
	assert.Equal(t, 4, composed.Mappings[0].SourceLine)
	assert.Equal(t, 2, composed.Mappings[0].SourceColumn)
}

func TestCompose_NilFragmentMapIsVerbatim(t *testing.T) {
	lowered := NewMap("app.ts", "app.js")
	lowered.AddMapping(1, 1, 1, 1, "")

	composed := Compose(nil, lowered)
	assert.Same(t, lowered, composed)
}
