package compile

import (
	"strings"
	"testing"

	"github.com/nodeadmin/casq-go/model"
)

func TestParseOverrides(t *testing.T) {
	in := "# knock-outs\np53,0\nmdm2,1\n\n"
	got, err := ParseOverrides(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseOverrides: %v", err)
	}
	want := []Override{{Name: "p53", Value: false}, {Name: "mdm2", Value: true}}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("ParseOverrides = %v; want %v", got, want)
	}
}

func TestParseOverridesRejectsBadValue(t *testing.T) {
	if _, err := ParseOverrides(strings.NewReader("p53,2\n")); err == nil {
		t.Errorf("ParseOverrides accepted value 2; want error")
	}
}

func TestApplyOverridesPinsFunction(t *testing.T) {
	m := model.NewModel()
	id := m.AddSpecies(model.Species{Name: "p53", PublicName: "p53"})
	m.AddReaction(model.Reaction{Products: []model.SpeciesID{id}})
	BuildRules(m)

	ApplyOverrides(m, []Override{{Name: "p53", Value: false}})

	sp, _ := m.Species(id)
	v, ok := model.AsConst(sp.Function)
	if !ok || v {
		t.Errorf("Function = %v; want constant FALSE", sp.Function)
	}
	if sp.FixedValue == nil || *sp.FixedValue != 0 {
		t.Errorf("FixedValue = %v; want pointer to 0", sp.FixedValue)
	}
}

func TestApplyOverridesUnresolvedNameIsDiagnostic(t *testing.T) {
	m := model.NewModel()
	m.AddSpecies(model.Species{Name: "p53", PublicName: "p53"})

	ApplyOverrides(m, []Override{{Name: "unknown", Value: true}})

	found := false
	for _, d := range m.Diagnostics() {
		if d.Kind == model.DiagnosticOverrideUnresolved {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an OverrideUnresolved diagnostic")
	}
}
