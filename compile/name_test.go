package compile

import (
	"testing"

	"github.com/nodeadmin/casq-go/model"
)

func TestNameDisambiguatesByType(t *testing.T) {
	m := model.NewModel()
	a := m.AddSpecies(model.Species{Name: "ras", Type: model.TypeProtein, SourceID: "sa1"})
	b := m.AddSpecies(model.Species{Name: "ras", Type: model.TypeGene, SourceID: "sa2"})

	Name(m, NameOptions{})

	spA, _ := m.Species(a)
	spB, _ := m.Species(b)
	if spA.PublicName == spB.PublicName {
		t.Errorf("colliding species got the same PublicName: %q", spA.PublicName)
	}
	if spA.ExportID == spB.ExportID {
		t.Errorf("colliding species got the same ExportID: %q", spA.ExportID)
	}
}

func TestNameDefaultExportIDUsesSourceID(t *testing.T) {
	m := model.NewModel()
	id := m.AddSpecies(model.Species{Name: "ras", SourceID: "sa42"})

	Name(m, NameOptions{})

	sp, _ := m.Species(id)
	if sp.ExportID != "sa42" {
		t.Errorf("ExportID = %q; want %q (SourceID) when --names is not given", sp.ExportID, "sa42")
	}
}

func TestNamePreferNamesAsIDs(t *testing.T) {
	m := model.NewModel()
	id := m.AddSpecies(model.Species{Name: "ras", SourceID: "sa42"})

	Name(m, NameOptions{PreferNamesAsIDs: true})

	sp, _ := m.Species(id)
	if sp.ExportID != "ras" {
		t.Errorf("ExportID = %q; want %q (PublicName) under --names", sp.ExportID, "ras")
	}
}

func TestSanitizeSId(t *testing.T) {
	cases := map[string]string{
		"foo-bar":  "foo_bar",
		"5prime":   "_5prime",
		"already_ok_1": "already_ok_1",
	}
	for in, want := range cases {
		if got := sanitizeSId(in); got != want {
			t.Errorf("sanitizeSId(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestNameNumericFallbackIsDeterministicByAscendingID(t *testing.T) {
	m := model.NewModel()
	first := m.AddSpecies(model.Species{Name: "dup", SourceID: "s1"})
	second := m.AddSpecies(model.Species{Name: "dup", SourceID: "s2"})

	Name(m, NameOptions{})

	spFirst, _ := m.Species(first)
	spSecond, _ := m.Species(second)
	if spFirst.PublicName != "dup" {
		t.Errorf("lowest-id member got suffixed: %q", spFirst.PublicName)
	}
	if spSecond.PublicName != "dup_1" {
		t.Errorf("second member's suffix = %q; want dup_1", spSecond.PublicName)
	}
}
