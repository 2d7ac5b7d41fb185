package compile

import (
	"fmt"
	"sort"

	"github.com/nodeadmin/casq-go/model"
)

// PruneOptions configures the Pruner. ComponentThreshold is S: >0
// drops components smaller than S, <0 keeps only the |S| largest, 0 skips
// component filtering. Upstream/Downstream name the target species (by
// biological name, since the Pruner runs before the Namer) whose
// cones should be kept; when both are given, their union is kept.
type PruneOptions struct {
	ComponentThreshold int
	Upstream           []string
	Downstream         []string
}

// Prune applies the connected-component filter and the upstream/downstream
// cone selection, then rewrites every surviving formula so that any
// reference to a dropped species becomes FALSE, followed by simplification.
func Prune(m *model.Model, opts PruneOptions) {
	if opts.ComponentThreshold != 0 {
		pruneComponents(m, opts.ComponentThreshold)
	}
	if len(opts.Upstream) > 0 || len(opts.Downstream) > 0 {
		pruneCones(m, opts.Upstream, opts.Downstream)
	}
	SimplifyModel(m)
}

func pruneComponents(m *model.Model, threshold int) {
	comps := connectedComponents(m)
	var keep [][]model.SpeciesID
	switch {
	case threshold > 0:
		for _, c := range comps {
			if len(c) >= threshold {
				keep = append(keep, c)
			}
		}
	case threshold < 0:
		k := -threshold
		sort.SliceStable(comps, func(i, j int) bool {
			if len(comps[i]) != len(comps[j]) {
				return len(comps[i]) > len(comps[j])
			}
			return comps[i][0] < comps[j][0] // lexicographic min-id tiebreak
		})
		if k > len(comps) {
			k = len(comps)
		}
		keep = comps[:k]
	}

	kept := make(map[model.SpeciesID]bool)
	for _, c := range keep {
		for _, id := range c {
			kept[id] = true
		}
	}
	var drop []model.SpeciesID
	for _, id := range m.AllSpecies() {
		if !kept[id] {
			drop = append(drop, id)
		}
	}
	dropSpecies(m, drop)
}

// connectedComponents returns the weakly connected components of the
// species graph induced by influences, including species with no
// influence edges as singleton components, in ascending id order both
// within and across components.
func connectedComponents(m *model.Model) [][]model.SpeciesID {
	all := m.AllSpecies()
	influences := Abstract(m)

	adj := make(map[model.SpeciesID][]model.SpeciesID)
	for _, inf := range influences {
		adj[inf.Source] = append(adj[inf.Source], inf.Target)
		adj[inf.Target] = append(adj[inf.Target], inf.Source)
	}

	visited := make(map[model.SpeciesID]bool)
	var comps [][]model.SpeciesID
	for _, id := range all {
		if visited[id] {
			continue
		}
		var comp []model.SpeciesID
		queue := []model.SpeciesID{id}
		visited[id] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			comp = append(comp, cur)
			for _, nb := range adj[cur] {
				if !visited[nb] {
					visited[nb] = true
					queue = append(queue, nb)
				}
			}
		}
		sort.Slice(comp, func(i, j int) bool { return comp[i] < comp[j] })
		comps = append(comps, comp)
	}
	return comps
}

func pruneCones(m *model.Model, upstream, downstream []string) {
	byName := make(map[string]model.SpeciesID)
	for _, id := range m.AllSpecies() {
		sp, _ := m.Species(id)
		byName[sp.Name] = id
	}
	influences := Abstract(m)
	forward := make(map[model.SpeciesID][]model.SpeciesID)
	backward := make(map[model.SpeciesID][]model.SpeciesID)
	for _, inf := range influences {
		forward[inf.Source] = append(forward[inf.Source], inf.Target)
		backward[inf.Target] = append(backward[inf.Target], inf.Source)
	}

	keep := make(map[model.SpeciesID]bool)
	resolve := func(names []string, edges map[model.SpeciesID][]model.SpeciesID) {
		for _, name := range names {
			id, ok := byName[name]
			if !ok {
				m.AddDiagnostic(model.Diagnostic{
					Kind:    model.DiagnosticUnresolvedConeTarget,
					Message: fmt.Sprintf("cone target %q was not found among surviving species", name),
				})
				continue
			}
			keep[id] = true
			queue := []model.SpeciesID{id}
			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				for _, nb := range edges[cur] {
					if !keep[nb] {
						keep[nb] = true
						queue = append(queue, nb)
					}
				}
			}
		}
	}
	resolve(downstream, forward)
	resolve(upstream, backward)

	var drop []model.SpeciesID
	for _, id := range m.AllSpecies() {
		if !keep[id] {
			drop = append(drop, id)
		}
	}
	dropSpecies(m, drop)
}

// dropSpecies deletes ids from the model and replaces any reference to them
// inside surviving formulae with the constant FALSE, the conservative
// default: an upstream that is no longer modelled cannot activate.
func dropSpecies(m *model.Model, ids []model.SpeciesID) {
	if len(ids) == 0 {
		return
	}
	dropped := make(map[model.SpeciesID]bool, len(ids))
	for _, id := range ids {
		dropped[m.Find(id)] = true
	}
	for id := range dropped {
		m.DeleteSpecies(id, model.DropIncidentReactions)
	}
	for _, id := range m.AllSpecies() {
		sp, _ := m.Species(id)
		if sp.Function != nil {
			sp.Function = substituteFalse(sp.Function, dropped)
		}
	}
}

func substituteFalse(e model.Expr, dropped map[model.SpeciesID]bool) model.Expr {
	if v, ok := model.AsVar(e); ok {
		if dropped[v] {
			return model.Const(false)
		}
		return e
	}
	if _, ok := model.AsConst(e); ok {
		return e
	}
	if x, ok := model.AsNot(e); ok {
		return model.Not(substituteFalse(x, dropped))
	}
	if xs, ok := model.AsAnd(e); ok {
		return model.And(substituteFalseAll(xs, dropped)...)
	}
	if xs, ok := model.AsOr(e); ok {
		return model.Or(substituteFalseAll(xs, dropped)...)
	}
	return e
}

func substituteFalseAll(xs []model.Expr, dropped map[model.SpeciesID]bool) []model.Expr {
	out := make([]model.Expr, len(xs))
	for i, x := range xs {
		out[i] = substituteFalse(x, dropped)
	}
	return out
}
