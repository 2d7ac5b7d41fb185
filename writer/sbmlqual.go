package writer

import (
	"fmt"
	"io"

	"github.com/nodeadmin/casq-go/model"
)

// WriteSBMLQual emits an SBML Level 3 qual document: one qualitativeSpecies
// per surviving species (qual:maxLevel="1"), one transition per species
// with a Function, and the Expr tree translated to nested MathML apply
// terms. Per-species Layout is not written; the only geometry emitted is the
// canvas size, as qual:sizeX/qual:sizeY on qual:model. The document is
// written directly rather than through encoding/xml struct marshaling,
// matching the reference writer's template-driven approach and avoiding a
// parallel struct tree that would just mirror reader/types.go in reverse.
func WriteSBMLQual(w io.Writer, m *model.Model, sizeX, sizeY float64) error {
	if m == nil {
		return ErrNilModel
	}
	ids := m.AllSpecies()

	fmt.Fprint(w, xmlHeader)
	fmt.Fprintf(w, sbmlOpenTag, sizeX, sizeY)

	fmt.Fprint(w, "      <listOfQualitativeSpecies>\n")
	for _, id := range ids {
		sp, _ := m.Species(id)
		fmt.Fprintf(w, "        <qual:qualitativeSpecies qual:id=%q qual:name=%q qual:compartment=%q qual:maxLevel=\"1\" qual:constant=\"false\"/>\n",
			exportName(sp), publicName(sp), xmlEscape(sp.Compartment))
	}
	fmt.Fprint(w, "      </listOfQualitativeSpecies>\n")

	fmt.Fprint(w, "      <listOfTransitions>\n")
	for _, id := range ids {
		sp, _ := m.Species(id)
		if sp.Function == nil {
			continue
		}
		writeTransition(w, m, sp)
	}
	fmt.Fprint(w, "      </listOfTransitions>\n")

	fmt.Fprint(w, "    </qual:model>\n")
	fmt.Fprint(w, "  </model>\n</sbml>\n")
	return nil
}

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>
`

const sbmlOpenTag = `<sbml xmlns="http://www.sbml.org/sbml/level3/version1/core" level="3" version="1"
      xmlns:qual="http://www.sbml.org/sbml/level3/version1/qual/version1">
  <model>
    <qual:model qual:sizeX="%v" qual:sizeY="%v">
`

func writeTransition(w io.Writer, m *model.Model, sp *model.Species) {
	fmt.Fprintf(w, "        <qual:transition qual:id=%q>\n", "tr_"+exportName(sp))
	fmt.Fprint(w, "          <qual:listOfInputs>\n")
	for _, v := range model.Vars(sp.Function) {
		in, ok := m.Species(v)
		if !ok {
			continue
		}
		fmt.Fprintf(w, "            <qual:input qual:qualitativeSpecies=%q qual:transitionEffect=\"none\" qual:sign=\"unknown\"/>\n", exportName(in))
	}
	fmt.Fprint(w, "          </qual:listOfInputs>\n")
	fmt.Fprintf(w, "          <qual:listOfOutputs>\n            <qual:output qual:qualitativeSpecies=%q qual:transitionEffect=\"assignmentLevel\"/>\n          </qual:listOfOutputs>\n", exportName(sp))
	fmt.Fprint(w, "          <qual:listOfFunctionTerms>\n")
	fmt.Fprint(w, "            <qual:defaultTerm qual:resultLevel=\"0\"/>\n")
	fmt.Fprint(w, "            <qual:functionTerm qual:resultLevel=\"1\">\n")
	fmt.Fprint(w, "              <math xmlns=\"http://www.w3.org/1998/Math/MathML\">\n")
	writeMathML(w, sp.Function, 4, func(id model.SpeciesID) string {
		s, _ := m.Species(id)
		return exportName(s)
	})
	fmt.Fprint(w, "              </math>\n")
	fmt.Fprint(w, "            </qual:functionTerm>\n")
	fmt.Fprint(w, "          </qual:listOfFunctionTerms>\n")
	fmt.Fprint(w, "        </qual:transition>\n")
}

// writeMathML translates an Expr into MathML for a qual:functionTerm:
// and/or/not become nested <apply> blocks, each variable leaf a <ci> holding
// the input species' export id, and constants <true/> or <false/>.
func writeMathML(w io.Writer, e model.Expr, indent int, namer func(model.SpeciesID) string) {
	pad := indentStr(indent)
	if v, ok := model.AsConst(e); ok {
		if v {
			fmt.Fprintf(w, "%s<true/>\n", pad)
		} else {
			fmt.Fprintf(w, "%s<false/>\n", pad)
		}
		return
	}
	if id, ok := model.AsVar(e); ok {
		fmt.Fprintf(w, "%s<ci>%s</ci>\n", pad, xmlEscape(namer(id)))
		return
	}
	if x, ok := model.AsNot(e); ok {
		fmt.Fprintf(w, "%s<apply>\n%s  <not/>\n", pad, pad)
		writeMathML(w, x, indent+1, namer)
		fmt.Fprintf(w, "%s</apply>\n", pad)
		return
	}
	if xs, ok := model.AsAnd(e); ok {
		writeMathMLNary(w, xs, indent, "and", namer)
		return
	}
	if xs, ok := model.AsOr(e); ok {
		writeMathMLNary(w, xs, indent, "or", namer)
		return
	}
}

func writeMathMLNary(w io.Writer, xs []model.Expr, indent int, op string, namer func(model.SpeciesID) string) {
	pad := indentStr(indent)
	fmt.Fprintf(w, "%s<apply>\n%s  <%s/>\n", pad, pad, op)
	for _, x := range xs {
		writeMathML(w, x, indent+1, namer)
	}
	fmt.Fprintf(w, "%s</apply>\n", pad)
}

func indentStr(n int) string {
	out := make([]byte, 0, n*2)
	for i := 0; i < n; i++ {
		out = append(out, ' ', ' ')
	}
	return string(out)
}

func xmlEscape(s string) string {
	var out []byte
	for _, r := range s {
		switch r {
		case '&':
			out = append(out, []byte("&amp;")...)
		case '<':
			out = append(out, []byte("&lt;")...)
		case '>':
			out = append(out, []byte("&gt;")...)
		case '"':
			out = append(out, []byte("&quot;")...)
		default:
			out = append(out, []byte(string(r))...)
		}
	}
	return string(out)
}
