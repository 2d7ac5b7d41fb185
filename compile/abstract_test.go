package compile

import (
	"testing"

	"github.com/nodeadmin/casq-go/model"
)

func TestAbstractSignsFromReactantsAndModifiers(t *testing.T) {
	m := model.NewModel()
	a := m.AddSpecies(model.Species{Name: "a"})
	inh := m.AddSpecies(model.Species{Name: "inh"})
	p := m.AddSpecies(model.Species{Name: "p"})
	m.AddReaction(model.Reaction{
		Reactants: []model.SpeciesID{a},
		Products:  []model.SpeciesID{p},
		Modifiers: []model.Modifier{{Species: inh, Kind: model.ModInhibitor}},
	})

	influences := Abstract(m)
	if len(influences) != 2 {
		t.Fatalf("got %d influences; want 2", len(influences))
	}
	signs := make(map[model.SpeciesID]model.Sign)
	for _, inf := range influences {
		signs[inf.Source] = inf.Sign
	}
	if signs[a] != model.SignPositive {
		t.Errorf("reactant arc sign = %v; want positive", signs[a])
	}
	if signs[inh] != model.SignNegative {
		t.Errorf("inhibitor arc sign = %v; want negative", signs[inh])
	}
}

func TestAbstractDedupesParallelArcs(t *testing.T) {
	m := model.NewModel()
	a := m.AddSpecies(model.Species{Name: "a"})
	p := m.AddSpecies(model.Species{Name: "p"})
	m.AddReaction(model.Reaction{Reactants: []model.SpeciesID{a}, Products: []model.SpeciesID{p}})
	m.AddReaction(model.Reaction{Reactants: []model.SpeciesID{a}, Products: []model.SpeciesID{p}})

	influences := Abstract(m)
	if len(influences) != 1 {
		t.Errorf("got %d influences; want 1 after dedup of same-sign parallel arcs", len(influences))
	}
}

func TestAbstractSkipsSelfLoops(t *testing.T) {
	m := model.NewModel()
	a := m.AddSpecies(model.Species{Name: "a"})
	m.AddReaction(model.Reaction{Reactants: []model.SpeciesID{a}, Products: []model.SpeciesID{a}})

	influences := Abstract(m)
	if len(influences) != 0 {
		t.Errorf("got %d influences; want 0 for a self-loop", len(influences))
	}
}
