package model

// Influence is a signed arc between two species, derived by the Abstracter
// from a surviving reaction's reactants, positive modifiers and negative
// modifiers. Influences are a read-only, derived view: they need not
// survive into export.
type Influence struct {
	Source SpeciesID
	Target SpeciesID
	Sign   Sign
}
