package compile

import "github.com/nodeadmin/casq-go/model"

// usage indexes, for every species, which surviving reactions reference it
// as a reactant, product or modifier. It is rebuilt fresh before each
// Reducer rule runs, over the model as it stands at that point — this is
// what lets R2 and R4's live rewiring be visible to the next rule without
// re-examining reactions the current rule already decided about.
type usage struct {
	reactantIn map[model.SpeciesID][]model.ReactionID
	productIn  map[model.SpeciesID][]model.ReactionID
	modifierIn map[model.SpeciesID][]model.ReactionID
}

func buildUsage(m *model.Model) *usage {
	u := &usage{
		reactantIn: make(map[model.SpeciesID][]model.ReactionID),
		productIn:  make(map[model.SpeciesID][]model.ReactionID),
		modifierIn: make(map[model.SpeciesID][]model.ReactionID),
	}
	for _, rid := range m.AllReactions() {
		r, _ := m.Reaction(rid)
		for _, s := range r.Reactants {
			u.reactantIn[s] = append(u.reactantIn[s], rid)
		}
		for _, s := range r.Products {
			u.productIn[s] = append(u.productIn[s], rid)
		}
		for _, mo := range r.Modifiers {
			u.modifierIn[mo.Species] = append(u.modifierIn[mo.Species], rid)
		}
	}
	return u
}

// onlyReactantOf reports whether sp's only appearance anywhere in the model
// is as a reactant of r: not a product of anything, not a modifier of
// anything, and a reactant of nothing but r.
func (u *usage) onlyReactantOf(sp model.SpeciesID, r model.ReactionID) bool {
	if len(u.productIn[sp]) > 0 {
		return false
	}
	if len(u.modifierIn[sp]) > 0 {
		return false
	}
	rs := u.reactantIn[sp]
	return len(rs) == 1 && rs[0] == r
}

// onlyReactantOfExcludingProduct is like onlyReactantOf but allows sp to
// also be produced by other reactions, per R4's "it may be produced by
// other reactions" clause.
func (u *usage) onlyReactantOfExcludingProduct(sp model.SpeciesID, r model.ReactionID) bool {
	if len(u.modifierIn[sp]) > 0 {
		return false
	}
	rs := u.reactantIn[sp]
	return len(rs) == 1 && rs[0] == r
}

// nowhereElseAsReactantOrModifier reports whether sp appears as a reactant
// only in r (or not at all) and never as a modifier anywhere. It may still
// appear as a product elsewhere, matching R2's precondition.
func (u *usage) nowhereElseAsReactantOrModifier(sp model.SpeciesID, r model.ReactionID) bool {
	for _, rid := range u.reactantIn[sp] {
		if rid != r {
			return false
		}
	}
	return len(u.modifierIn[sp]) == 0
}
