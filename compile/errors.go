package compile

import "errors"

// Sentinel errors for the pipeline orchestrator, grounded on the pack's
// per-package errors.go convention (gridgraph/errors.go, kripke-ctl's
// model_checker.go): callers distinguish failure kinds with errors.Is/As
// rather than matching message strings.
var (
	// ErrNoModel is returned by Compile when the input model is nil.
	ErrNoModel = errors.New("compile: model is nil")
)
