package compile

import "github.com/nodeadmin/casq-go/model"

// Abstract derives the signed influence graph from every surviving
// reaction: reactants and positive modifiers arc positively into
// each product, negative modifiers arc negatively. Mutual inhibition
// between co-reactants is deliberately not generated. Arcs are deduplicated
// per (source, target, sign) triple across the whole model, since a species
// pair reachable via several reactions with the same sign only needs to be
// counted once for component/cone analysis.
func Abstract(m *model.Model) []model.Influence {
	seen := make(map[model.Influence]bool)
	var out []model.Influence
	add := func(src, dst model.SpeciesID, sign model.Sign) {
		src, dst = m.Find(src), m.Find(dst)
		if src == dst {
			return
		}
		inf := model.Influence{Source: src, Target: dst, Sign: sign}
		if seen[inf] {
			return
		}
		seen[inf] = true
		out = append(out, inf)
	}

	for _, rid := range m.AllReactions() {
		r, _ := m.Reaction(rid)
		var positive, negative []model.SpeciesID
		positive = append(positive, r.Reactants...)
		for _, mo := range r.Modifiers {
			if mo.Kind.Polarity() == model.Positive {
				positive = append(positive, mo.Species)
			} else {
				negative = append(negative, mo.Species)
			}
		}
		for _, target := range r.Products {
			for _, src := range positive {
				add(src, target, model.SignPositive)
			}
			for _, src := range negative {
				add(src, target, model.SignNegative)
			}
		}
	}
	return out
}
