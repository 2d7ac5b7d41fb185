package compile

import "github.com/nodeadmin/casq-go/model"

// BuildRules synthesizes a Boolean transition function for every surviving
// species that is the product of at least one reaction. A species
// produced by no reaction is a free input and is left without a Function.
func BuildRules(m *model.Model) {
	producedBy := make(map[model.SpeciesID][]model.ReactionID)
	for _, rid := range m.AllReactions() {
		r, _ := m.Reaction(rid)
		for _, y := range r.Products {
			y = m.Find(y)
			producedBy[y] = append(producedBy[y], rid)
		}
	}

	for _, y := range m.AllSpecies() {
		reactions, ok := producedBy[y]
		if !ok {
			continue
		}
		var clauses []model.Expr
		for _, rid := range reactions {
			clauses = append(clauses, reactionClause(m, rid))
		}
		sp, _ := m.Species(y)
		sp.Function = model.Or(clauses...)
	}
}

// reactionClause builds a single reaction's contribution to its product's
// formula: (any positive modifier) AND (every reactant) AND (no negative
// modifier), each conjunct defaulting to TRUE when its operand set is
// empty.
func reactionClause(m *model.Model, rid model.ReactionID) model.Expr {
	r, _ := m.Reaction(rid)

	var pos, neg []model.SpeciesID
	for _, mo := range r.Modifiers {
		if mo.Kind.Polarity() == model.Positive {
			pos = append(pos, m.Find(mo.Species))
		} else {
			neg = append(neg, m.Find(mo.Species))
		}
	}
	reactants := make([]model.SpeciesID, len(r.Reactants))
	for i, s := range r.Reactants {
		reactants[i] = m.Find(s)
	}

	posClause := orOfVars(pos)
	reactantClause := andOfVars(reactants)
	var negTerms []model.Expr
	for _, s := range neg {
		negTerms = append(negTerms, model.Not(model.Var(s)))
	}
	negClause := model.And(negTerms...)

	return model.And(posClause, reactantClause, negClause)
}

func orOfVars(ids []model.SpeciesID) model.Expr {
	if len(ids) == 0 {
		return model.Const(true)
	}
	xs := make([]model.Expr, len(ids))
	for i, id := range ids {
		xs[i] = model.Var(id)
	}
	return model.Or(xs...)
}

func andOfVars(ids []model.SpeciesID) model.Expr {
	if len(ids) == 0 {
		return model.Const(true)
	}
	xs := make([]model.Expr, len(ids))
	for i, id := range ids {
		xs[i] = model.Var(id)
	}
	return model.And(xs...)
}
