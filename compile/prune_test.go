package compile

import (
	"testing"

	"github.com/nodeadmin/casq-go/model"
)

func twoComponents(m *model.Model) (big, small []model.SpeciesID) {
	a := m.AddSpecies(model.Species{Name: "a"})
	b := m.AddSpecies(model.Species{Name: "b"})
	c := m.AddSpecies(model.Species{Name: "c"})
	m.AddReaction(model.Reaction{Reactants: []model.SpeciesID{a}, Products: []model.SpeciesID{b}})
	m.AddReaction(model.Reaction{Reactants: []model.SpeciesID{b}, Products: []model.SpeciesID{c}})

	x := m.AddSpecies(model.Species{Name: "x"})
	return []model.SpeciesID{a, b, c}, []model.SpeciesID{x}
}

func TestPruneComponentThresholdKeepsLargeOnly(t *testing.T) {
	m := model.NewModel()
	big, small := twoComponents(m)
	BuildRules(m)

	Prune(m, PruneOptions{ComponentThreshold: 2})

	for _, id := range big {
		if _, ok := m.Species(id); !ok {
			t.Errorf("species %d from the large component was dropped", id)
		}
	}
	for _, id := range small {
		if _, ok := m.Species(id); ok {
			t.Errorf("singleton species %d survived a threshold=2 prune", id)
		}
	}
}

func TestPruneKeepLargestKComponents(t *testing.T) {
	m := model.NewModel()
	big, small := twoComponents(m)
	BuildRules(m)

	Prune(m, PruneOptions{ComponentThreshold: -1})

	for _, id := range big {
		if _, ok := m.Species(id); !ok {
			t.Errorf("species %d from the largest component was dropped", id)
		}
	}
	for _, id := range small {
		if _, ok := m.Species(id); ok {
			t.Errorf("smaller component (species %d) survived -k=1 prune", id)
		}
	}
}

func TestPruneDownstreamCone(t *testing.T) {
	m := model.NewModel()
	a := m.AddSpecies(model.Species{Name: "a"})
	b := m.AddSpecies(model.Species{Name: "b"})
	unrelated := m.AddSpecies(model.Species{Name: "unrelated"})
	m.AddReaction(model.Reaction{Reactants: []model.SpeciesID{a}, Products: []model.SpeciesID{b}})
	BuildRules(m)

	Prune(m, PruneOptions{Downstream: []string{"a"}})

	if _, ok := m.Species(a); !ok {
		t.Errorf("cone source a was dropped")
	}
	if _, ok := m.Species(b); !ok {
		t.Errorf("downstream b was dropped")
	}
	if _, ok := m.Species(unrelated); ok {
		t.Errorf("unrelated species survived downstream-cone pruning")
	}
}

func TestPruneUnresolvedConeTargetIsDiagnosticNotFatal(t *testing.T) {
	m := model.NewModel()
	m.AddSpecies(model.Species{Name: "a"})
	BuildRules(m)

	Prune(m, PruneOptions{Downstream: []string{"does-not-exist"}})

	found := false
	for _, d := range m.Diagnostics() {
		if d.Kind == model.DiagnosticUnresolvedConeTarget {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an UnresolvedConeTarget diagnostic")
	}
}
