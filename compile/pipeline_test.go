package compile

import (
	"testing"

	"github.com/nodeadmin/casq-go/model"
)

func TestCompileEndToEnd(t *testing.T) {
	m := model.NewModel()
	gene := m.AddSpecies(model.Species{Name: "gene", Type: model.TypeGene})
	protein := m.AddSpecies(model.Species{Name: "protein", Type: model.TypeProtein})
	m.AddReaction(model.Reaction{
		Type:      model.RxnTranscription,
		Reactants: []model.SpeciesID{gene},
		Products:  []model.SpeciesID{protein},
	})

	diagnostics, err := Compile(m, Options{})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(diagnostics) != 0 {
		t.Errorf("unexpected diagnostics: %v", diagnostics)
	}

	sp, ok := m.Species(protein)
	if !ok {
		t.Fatal("protein species missing after Compile")
	}
	if sp.PublicName == "" || sp.ExportID == "" {
		t.Errorf("Namer did not run: PublicName=%q ExportID=%q", sp.PublicName, sp.ExportID)
	}
	if sp.Function == nil {
		t.Errorf("protein has no Function after Compile")
	}
}

func TestCompileNilModel(t *testing.T) {
	if _, err := Compile(nil, Options{}); err != ErrNoModel {
		t.Errorf("Compile(nil, ...) error = %v; want ErrNoModel", err)
	}
}

func TestCompileEmptyModelDiagnostic(t *testing.T) {
	m := model.NewModel()
	diagnostics, err := Compile(m, Options{})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	found := false
	for _, d := range diagnostics {
		if d.Kind == model.DiagnosticEmptyModel {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an EmptyModel diagnostic for a model with no species")
	}
}
