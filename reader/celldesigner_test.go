package reader

import (
	"strings"
	"testing"

	"github.com/nodeadmin/casq-go/model"
)

const minimalDoc = `<sbml>
  <model>
    <annotation>
      <extension>
        <modelDisplay sizeX="100" sizeY="100"/>
        <listOfSpeciesAliases>
          <speciesAlias id="sa1" species="s1" compartmentAlias="ca1">
            <bounds x="10" y="10" w="20" h="20"/>
          </speciesAlias>
          <speciesAlias id="sa2" species="s2" compartmentAlias="ca1">
            <bounds x="30" y="10" w="20" h="20"/>
          </speciesAlias>
        </listOfSpeciesAliases>
        <listOfCompartmentAliases>
          <compartmentAlias id="ca1" compartment="default"/>
        </listOfCompartmentAliases>
      </extension>
    </annotation>
    <listOfCompartments>
      <compartment id="default" name="cytoplasm"/>
    </listOfCompartments>
    <listOfSpecies>
      <species id="s1" name="geneA">
        <annotation>
          <extension>
            <class>GENE</class>
          </extension>
        </annotation>
      </species>
      <species id="s2" name="proteinA">
        <annotation>
          <extension>
            <class>PROTEIN</class>
          </extension>
        </annotation>
      </species>
    </listOfSpecies>
    <listOfReactions>
      <reaction id="re1">
        <annotation>
          <extension>
            <reactionType>TRANSCRIPTION</reactionType>
            <baseReactants>
              <baseReactant alias="sa1"/>
            </baseReactants>
            <baseProducts>
              <baseProduct alias="sa2"/>
            </baseProducts>
          </extension>
        </annotation>
      </reaction>
    </listOfReactions>
  </model>
</sbml>`

func TestParseCellDesignerMinimal(t *testing.T) {
	m, err := ParseCellDesigner(strings.NewReader(minimalDoc))
	if err != nil {
		t.Fatalf("ParseCellDesigner: %v", err)
	}

	ids := m.AllSpecies()
	if len(ids) != 2 {
		t.Fatalf("got %d species; want 2", len(ids))
	}

	var gene, protein *model.Species
	for _, id := range ids {
		sp, _ := m.Species(id)
		switch sp.SourceID {
		case "sa1":
			gene = sp
		case "sa2":
			protein = sp
		}
	}
	if gene == nil || protein == nil {
		t.Fatal("missing expected species by SourceID")
	}
	if gene.Type != model.TypeGene {
		t.Errorf("gene.Type = %v; want TypeGene", gene.Type)
	}
	if protein.Type != model.TypeProtein {
		t.Errorf("protein.Type = %v; want TypeProtein", protein.Type)
	}
	if gene.Compartment != "cytoplasm" {
		t.Errorf("gene.Compartment = %q; want cytoplasm", gene.Compartment)
	}

	reactions := m.AllReactions()
	if len(reactions) != 1 {
		t.Fatalf("got %d reactions; want 1", len(reactions))
	}
	r, _ := m.Reaction(reactions[0])
	if r.Type != model.RxnTranscription {
		t.Errorf("reaction type = %v; want RxnTranscription", r.Type)
	}
	if len(r.Products) != 1 || m.Find(r.Products[0]) != protein.ID {
		t.Errorf("product = %v; want protein", r.Products)
	}
	if len(r.Reactants) != 1 || m.Find(r.Reactants[0]) != gene.ID {
		t.Errorf("reactant = %v; want gene", r.Reactants)
	}
}

func TestParseCellDesignerRejectsNonSBML(t *testing.T) {
	_, err := ParseCellDesigner(strings.NewReader("<notsbml/>"))
	if err == nil {
		t.Fatal("expected an error for a non-SBML root element")
	}
}

func TestCleanName(t *testing.T) {
	cases := map[string]string{
		"p53_sub_endsub":  "p53",
		"foo__bar":        "foo_bar",
		"a_&_b":           "a_b",
	}
	for in, want := range cases {
		if got := cleanName(in); got != want {
			t.Errorf("cleanName(%q) = %q; want %q", in, got, want)
		}
	}
}
