// Package rewrite drives the Mahalo transpiler's rewrite-and-remap pipeline:
// it walks one compilation unit's syntax tree, mirrors it into a fragment
// tree, applies the rewrite rules that route mutating expressions through
// the runtime assign hook and synthesize component metadata tables, and
// flattens the result into output text plus a fragment position map.
package rewrite

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mahalo/mahalo-transpiler/internal/transpiler/ast"
	"github.com/mahalo/mahalo-transpiler/internal/transpiler/errors"
	"github.com/mahalo/mahalo-transpiler/internal/transpiler/fragment"
	"github.com/mahalo/mahalo-transpiler/internal/transpiler/lineage"
	"github.com/mahalo/mahalo-transpiler/internal/transpiler/sourcemap"
)

// Sentinels names the framework base types whose presence in a class's
// inheritance chain enables metadata synthesis. Component classes get all
// three tables; Behavior classes are injection-eligible only; Route classes
// get the lazy view rewrite.
type Sentinels struct {
	Component lineage.Sentinel
	Behavior  lineage.Sentinel
	Route     lineage.Sentinel
}

// DefaultSentinels returns the sentinel set for a standard Mahalo install.
func DefaultSentinels() Sentinels {
	return Sentinels{
		Component: lineage.Sentinel{Name: "Component", ModulePath: "mahalo/mahalo.ts"},
		Behavior:  lineage.Sentinel{Name: "Behavior", ModulePath: "mahalo/mahalo.ts"},
		Route:     lineage.Sentinel{Name: "Route", ModulePath: "mahalo/route.ts"},
	}
}

// Options configures a Pipeline.
type Options struct {
	// HookName is the runtime hook's exported name. Default "assign".
	HookName string
	// HookModule is the module the hook is imported from. Default "mahalo".
	HookModule string
	// Sentinels overrides the framework base type identities.
	Sentinels Sentinels
	// CheckDiagnostics makes the pipeline fail on front-end diagnostics of
	// error severity before any rewriting.
	CheckDiagnostics bool
	// Logger receives debug traces. Nil means no logging.
	Logger *zap.Logger
}

// DefaultOptions returns the standard pipeline configuration.
func DefaultOptions() Options {
	return Options{
		HookName:   "assign",
		HookModule: "mahalo",
		Sentinels:  DefaultSentinels(),
	}
}

// Diagnostic is one pre-emit diagnostic handed over by the front end.
type Diagnostic struct {
	Severity errors.ErrorSeverity
	Message  string
	Location ast.Position
}

// Unit is one compilation unit as delivered by the front-end compiler: the
// parsed tree, the semantic resolver bound to it, and optionally its
// pre-emit diagnostics.
type Unit struct {
	Path        string
	Tree        *ast.Unit
	Resolver    lineage.HeritageResolver
	Diagnostics []Diagnostic
}

// Result is the outcome of rewriting one unit. Map is nil when no rewrite
// rule fired, in which case Text is the original source verbatim.
type Result struct {
	RunID        string
	Text         string
	Map          *sourcemap.FragmentMap
	HookName     string
	HookImported bool
}

// Pipeline rewrites compilation units. A pipeline is stateless across units
// and processes one unit start-to-finish at a time.
type Pipeline struct {
	opts Options
	log  *zap.Logger
}

// NewPipeline creates a pipeline, filling in defaults for unset options.
func NewPipeline(opts Options) *Pipeline {
	defaults := DefaultOptions()
	if opts.HookName == "" {
		opts.HookName = defaults.HookName
	}
	if opts.HookModule == "" {
		opts.HookModule = defaults.HookModule
	}
	if opts.Sentinels == (Sentinels{}) {
		opts.Sentinels = defaults.Sentinels
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{opts: opts, log: log}
}

// Rewrite processes one unit. It either returns a complete Result or fails
// the whole unit; there is no partial success.
func (p *Pipeline) Rewrite(unit *Unit) (*Result, error) {
	if unit == nil || unit.Tree == nil {
		return nil, errors.NewRewriteFailed(ast.Position{Line: 1, Column: 1}, "no syntax tree for unit")
	}

	if p.opts.CheckDiagnostics {
		for _, d := range unit.Diagnostics {
			if d.Severity == errors.SeverityError {
				return nil, errors.NewFrontEndDiagnostic(d.Location, d.Message).WithFile(unit.Path)
			}
		}
	}

	hook := AllocateIdentifier(CollectIdentifiers(unit.Tree), p.opts.HookName)

	b := newBuilder(unit, p.opts, hook, p.log)
	root := b.build(unit.Tree)

	result := &Result{
		RunID:    uuid.New().String(),
		HookName: hook,
	}

	if !b.mutated {
		// Identity transform: hand back the original text and no map, so
		// composition passes the lowering map through verbatim.
		result.Text = unit.Tree.Source
		return result, nil
	}

	outer := fragment.New(sourcemap.Position{Line: 1, Column: 1})
	if b.hookNeeded {
		outer.AppendRaw(p.hookImport(hook))
		result.HookImported = true
	}
	outer.AppendChild(root)

	text, fragMap := fragment.Flatten(outer, unit.Path)
	result.Text = text
	result.Map = fragMap

	p.log.Debug("unit rewritten",
		zap.String("run_id", result.RunID),
		zap.String("unit", unit.Path),
		zap.String("hook", hook),
		zap.Bool("hook_imported", result.HookImported),
		zap.Int("segments", len(fragMap.Segments)),
	)
	return result, nil
}

// Compose combines a rewrite result's fragment map with the lowering pass's
// map into the final output-to-original-source map.
func (p *Pipeline) Compose(result *Result, lowered *sourcemap.Map) *sourcemap.Map {
	if result == nil {
		return lowered
	}
	return sourcemap.Compose(result.Map, lowered)
}

// hookImport renders the single import statement binding the runtime hook.
func (p *Pipeline) hookImport(alloc string) string {
	if alloc == p.opts.HookName {
		return fmt.Sprintf("import { %s } from '%s';\n", alloc, p.opts.HookModule)
	}
	return fmt.Sprintf("import { %s as %s } from '%s';\n", p.opts.HookName, alloc, p.opts.HookModule)
}
