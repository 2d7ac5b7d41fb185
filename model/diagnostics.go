package model

// DiagnosticKind classifies a non-fatal warning accumulated during
// compilation. Fatal problems are reported as Go errors instead and
// never become Diagnostics.
type DiagnosticKind string

const (
	// DiagnosticOverrideUnresolved: a fixed-values row named a species not
	// present in (or after) the model.
	DiagnosticOverrideUnresolved DiagnosticKind = "override_unresolved"
	// DiagnosticUnresolvedConeTarget: an --upstream/--downstream name did
	// not resolve to a surviving species.
	DiagnosticUnresolvedConeTarget DiagnosticKind = "unresolved_cone_target"
	// DiagnosticEmptyModel: no species remained after all stages ran.
	DiagnosticEmptyModel DiagnosticKind = "empty_model"
)

// Diagnostic is one accumulated non-fatal warning.
type Diagnostic struct {
	Kind    DiagnosticKind
	Message string
}

func (d Diagnostic) String() string {
	return string(d.Kind) + ": " + d.Message
}
