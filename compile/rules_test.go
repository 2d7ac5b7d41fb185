package compile

import (
	"testing"

	"github.com/nodeadmin/casq-go/model"
)

func TestRuleBuildingRoundTrip(t *testing.T) {
	m := model.NewModel()
	a := m.AddSpecies(model.Species{Name: "a"})
	c := m.AddSpecies(model.Species{Name: "c"})
	i := m.AddSpecies(model.Species{Name: "i"})
	p := m.AddSpecies(model.Species{Name: "p"})
	m.AddReaction(model.Reaction{
		Reactants: []model.SpeciesID{a},
		Products:  []model.SpeciesID{p},
		Modifiers: []model.Modifier{
			{Species: c, Kind: model.ModCatalyst},
			{Species: i, Kind: model.ModInhibitor},
		},
	})

	BuildRules(m)

	sp, _ := m.Species(p)
	cases := []struct {
		aVal, cVal, iVal bool
		want             bool
	}{
		{true, true, false, true},
		{true, false, false, false},
		{true, true, true, false},
		{false, true, false, false},
	}
	for _, tc := range cases {
		assign := map[model.SpeciesID]bool{a: tc.aVal, c: tc.cVal, i: tc.iVal}
		if got := sp.Function.Eval(assign); got != tc.want {
			t.Errorf("Eval(a=%v,c=%v,i=%v) = %v; want %v", tc.aVal, tc.cVal, tc.iVal, got, tc.want)
		}
	}
}

func TestBuildRulesLeavesFreeInputsWithoutFunction(t *testing.T) {
	m := model.NewModel()
	free := m.AddSpecies(model.Species{Name: "free"})
	BuildRules(m)

	sp, _ := m.Species(free)
	if sp.Function != nil {
		t.Errorf("free input got a Function: %v", sp.Function)
	}
}
