// Package compile implements the core semantic pipeline: the reduction
// rewriter, the reaction-to-influence abstraction, the logical-rule
// builder, the pruning/selection stage, the naming/disambiguation
// algorithm, the rule simplifier and the fixed-input override mechanism.
// Every stage is a pure function of (model, parameters): there is no
// package-level mutable state.
package compile

import "github.com/nodeadmin/casq-go/model"

// Reduce applies the Reducer's rewrite rules in fixed order, each over a
// fresh snapshot of the model as it stands when that rule starts.
// Running each rule once, over a fixed candidate set, is what makes the
// pass deterministic, confluent and O(|R|) per rule.
func Reduce(m *model.Model) {
	reduceReceptorCollapse(m)
	reduceComplexFormation(m)
	reduceSameNamePassthrough(m)
	reduceTransportMerge(m)
	reducePhenotypeFold(m)
}

// reduceReceptorCollapse is R1: a ligand-receptor heterodimer_association
// where both participants appear nowhere else loses its receptor reactant;
// the receptor's annotations move to the product.
func reduceReceptorCollapse(m *model.Model) {
	u := buildUsage(m)
	for _, rid := range snapshot(m.AllReactions()) {
		r, ok := m.Reaction(rid)
		if !ok || r.Type != model.RxnHeterodimerAssociation {
			continue
		}
		if len(r.Reactants) != 2 || len(r.Products) != 1 || len(r.Modifiers) != 0 {
			continue
		}
		a, b := r.Reactants[0], r.Reactants[1]
		p := r.Products[0]

		sa, ok := m.Species(a)
		if !ok {
			continue
		}
		sb, ok := m.Species(b)
		if !ok {
			continue
		}

		var receptor, other model.SpeciesID
		switch {
		case sa.Type == model.TypeReceptor && sb.Type != model.TypeReceptor:
			receptor, other = a, b
		case sb.Type == model.TypeReceptor && sa.Type != model.TypeReceptor:
			receptor, other = b, a
		default:
			continue
		}
		if !u.onlyReactantOf(receptor, rid) || !u.onlyReactantOf(other, rid) {
			continue
		}

		_ = m.TransferAnnotations(receptor, p)
		m.DeleteSpecies(receptor, model.LeaveReactions)
		r.Reactants = removeSpecies(r.Reactants, receptor)
	}
}

// reduceComplexFormation is R2: a pure heterodimer_association between two
// otherwise-unused, non-receptor species is collapsed: both reactants merge
// into the product and the reaction now produces p unconditionally.
func reduceComplexFormation(m *model.Model) {
	u := buildUsage(m)
	for _, rid := range snapshot(m.AllReactions()) {
		r, ok := m.Reaction(rid)
		if !ok || r.Type != model.RxnHeterodimerAssociation {
			continue
		}
		if len(r.Reactants) != 2 || len(r.Products) != 1 || len(r.Modifiers) != 0 {
			continue
		}
		a, b := r.Reactants[0], r.Reactants[1]
		p := r.Products[0]

		sa, ok := m.Species(a)
		if !ok || sa.Type == model.TypeReceptor {
			continue
		}
		sb, ok := m.Species(b)
		if !ok || sb.Type == model.TypeReceptor {
			continue
		}
		if !u.nowhereElseAsReactantOrModifier(a, rid) || !u.nowhereElseAsReactantOrModifier(b, rid) {
			continue
		}

		_ = m.TransferAnnotations(a, p)
		_ = m.TransferAnnotations(b, p)

		for _, other := range snapshot(m.AllReactions()) {
			if other == rid {
				continue
			}
			orr, ok := m.Reaction(other)
			if !ok {
				continue
			}
			if containsID(orr.Products, a) {
				model.RewireProducts(orr, a, p)
			}
			if containsID(orr.Products, b) {
				model.RewireProducts(orr, b, p)
			}
		}

		if err := m.MergeInto(a, p); err != nil {
			continue
		}
		if err := m.MergeInto(b, p); err != nil {
			continue
		}
		r.Reactants = nil
	}
}

// reduceSameNamePassthrough is R3: a single-reactant, single-product
// reaction whose reactant only exists to feed it, and whose name is
// identical to the product's, is a no-op relabeling; drop both.
func reduceSameNamePassthrough(m *model.Model) {
	u := buildUsage(m)
	for _, rid := range snapshot(m.AllReactions()) {
		r, ok := m.Reaction(rid)
		if !ok || len(r.Reactants) != 1 || len(r.Products) != 1 {
			continue
		}
		a, p := r.Reactants[0], r.Products[0]
		if !u.onlyReactantOf(a, rid) {
			continue
		}
		sa, ok := m.Species(a)
		if !ok {
			continue
		}
		sp, ok := m.Species(p)
		if !ok || sa.Name != sp.Name {
			continue
		}
		_ = m.TransferAnnotations(a, p)
		m.DeleteSpecies(a, model.LeaveReactions)
		m.DeleteReaction(rid)
	}
}

// reduceTransportMerge is R4: a transport reaction whose single reactant is
// merely relocating into a same-named product is collapsed: the reactant
// merges into the product, picking up any reactions that produced it.
func reduceTransportMerge(m *model.Model) {
	u := buildUsage(m)
	for _, rid := range snapshot(m.AllReactions()) {
		r, ok := m.Reaction(rid)
		if !ok || r.Type != model.RxnTransport {
			continue
		}
		if len(r.Reactants) != 1 || len(r.Products) != 1 {
			continue
		}
		a, p := r.Reactants[0], r.Products[0]
		if !u.onlyReactantOfExcludingProduct(a, rid) {
			continue
		}
		sa, ok := m.Species(a)
		if !ok {
			continue
		}
		sp, ok := m.Species(p)
		if !ok || sa.Name != sp.Name {
			continue
		}

		_ = m.TransferAnnotations(a, p)

		for _, other := range snapshot(m.AllReactions()) {
			if other == rid {
				continue
			}
			orr, ok := m.Reaction(other)
			if !ok {
				continue
			}
			if containsID(orr.Products, a) {
				model.RewireProducts(orr, a, p)
			}
		}

		if err := m.MergeInto(a, p); err != nil {
			continue
		}
		m.DeleteReaction(rid)
	}
}

// reducePhenotypeFold is the supplemented R5: all single-reactant,
// unmodified reactions targeting a phenotype collapse into one synthetic
// stateTransition whose modifiers carry the original reactants' polarity.
func reducePhenotypeFold(m *model.Model) {
	for _, y := range snapshot(m.AllSpecies()) {
		sy, ok := m.Species(y)
		if !ok || sy.Type != model.TypePhenotype {
			continue
		}

		var mods []model.Modifier
		var fold []model.ReactionID
		for _, rid := range snapshot(m.AllReactions()) {
			r, ok := m.Reaction(rid)
			if !ok || !containsID(r.Products, y) {
				continue
			}
			if len(r.Reactants) != 1 || len(r.Modifiers) != 0 {
				continue
			}
			kind := model.ModCatalyst
			if r.Type == model.RxnTrueNegativeInfluence || r.Type == model.RxnUnknownNegativeInfluence {
				kind = model.ModInhibitor
			}
			mods = append(mods, model.Modifier{Species: r.Reactants[0], Kind: kind})
			fold = append(fold, rid)
		}
		if len(fold) == 0 {
			continue
		}
		for _, rid := range fold {
			m.DeleteReaction(rid)
		}
		m.AddReaction(model.Reaction{
			Type:      model.RxnStateTransition,
			Products:  []model.SpeciesID{y},
			Modifiers: mods,
		})
	}
}

func snapshot[T any](xs []T) []T {
	return append([]T(nil), xs...)
}

func containsID(list []model.SpeciesID, id model.SpeciesID) bool {
	for _, x := range list {
		if x == id {
			return true
		}
	}
	return false
}

func removeSpecies(list []model.SpeciesID, id model.SpeciesID) []model.SpeciesID {
	out := make([]model.SpeciesID, 0, len(list))
	for _, x := range list {
		if x != id {
			out = append(out, x)
		}
	}
	return out
}
