package compile

import (
	"fmt"
	"log/slog"

	"github.com/nodeadmin/casq-go/model"
)

// Options bundles every CLI-level parameter that reaches into the core
// pipeline: each field feeds exactly one stage, never more than one.
type Options struct {
	ComponentThreshold int
	Upstream           []string
	Downstream         []string
	PreferNamesAsIDs   bool
	Overrides          []Override
	Logger             *slog.Logger
}

// Compile runs the full pipeline in the fixed order Reduce -> BuildRules ->
// Prune -> Name -> Overrides -> Simplify (Prune derives the influence graph
// it needs internally via Abstract). It returns the
// accumulated non-fatal Diagnostics alongside a fatal error, if any. A
// DanglingReferenceError surfacing from Validate is treated as a core bug
// and aborts the run; every other recoverable problem is folded into
// the returned Diagnostics instead.
func Compile(m *model.Model, opts Options) ([]model.Diagnostic, error) {
	if m == nil {
		return nil, ErrNoModel
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(discardWriter{}, nil))
	}

	log.Debug("reduce: starting")
	Reduce(m)
	if err := m.Validate(); err != nil {
		return m.Diagnostics(), fmt.Errorf("compile: invariant violated after reduce: %w", err)
	}

	log.Debug("rule builder: starting")
	BuildRules(m)

	log.Debug("pruner: starting", "threshold", opts.ComponentThreshold)
	Prune(m, PruneOptions{
		ComponentThreshold: opts.ComponentThreshold,
		Upstream:           opts.Upstream,
		Downstream:         opts.Downstream,
	})
	if err := m.Validate(); err != nil {
		return m.Diagnostics(), fmt.Errorf("compile: invariant violated after prune: %w", err)
	}

	log.Debug("namer: starting", "preferNamesAsIDs", opts.PreferNamesAsIDs)
	Name(m, NameOptions{PreferNamesAsIDs: opts.PreferNamesAsIDs})

	log.Debug("overrides: starting", "count", len(opts.Overrides))
	ApplyOverrides(m, opts.Overrides)

	log.Debug("simplifier: starting")
	SimplifyModel(m)

	if len(m.AllSpecies()) == 0 {
		m.AddDiagnostic(model.Diagnostic{
			Kind:    model.DiagnosticEmptyModel,
			Message: "no species remained after compilation",
		})
	}

	return m.Diagnostics(), nil
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
