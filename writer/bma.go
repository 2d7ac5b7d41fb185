package writer

import (
	"encoding/json"
	"io"
	"sort"
	"strconv"

	"github.com/nodeadmin/casq-go/model"
)

// BMAOptions configures the BMA-JSON writer: Granularity scales the
// variable range and the min/max formula encoding (1 means pure Boolean),
// DefaultInput is the value assigned to a free input (no incoming formula),
// ColourConstant overrides the per-compartment colour assignment when set.
type BMAOptions struct {
	Granularity    int
	DefaultInput   int
	ColourConstant string
}

type bmaUniverse struct {
	Model  bmaModel  `json:"Model"`
	Layout bmaLayout `json:"Layout"`
	LTL    bmaLTL    `json:"ltl"`
}

type bmaModel struct {
	Name          string            `json:"Name"`
	Variables     []bmaVariable     `json:"Variables"`
	Relationships []bmaRelationship `json:"Relationships"`
}

type bmaVariable struct {
	Name      string `json:"Name"`
	ID        int    `json:"Id"`
	RangeFrom int    `json:"RangeFrom"`
	RangeTo   int    `json:"RangeTo"`
	Formula   string `json:"Formula"`
}

type bmaRelationship struct {
	ToVariable   int    `json:"ToVariable"`
	Type         string `json:"Type"`
	FromVariable int    `json:"FromVariable"`
	ID           int    `json:"Id"`
}

type bmaLayout struct {
	Variables  []bmaLayoutVariable `json:"Variables"`
	Containers []struct{}          `json:"Containers"`
	Description string            `json:"Description"`
}

type bmaLayoutVariable struct {
	ID          int     `json:"Id"`
	Name        string  `json:"Name"`
	Type        string  `json:"Type"`
	ContainerID int     `json:"ContainerId"`
	PositionX   float64 `json:"PositionX"`
	PositionY   float64 `json:"PositionY"`
	CellY       int     `json:"CellY"`
	CellX       int     `json:"CellX"`
	Angle       int     `json:"Angle"`
	Description string  `json:"Description"`
	Fill        string  `json:"Fill,omitempty"`
}

type bmaLTL struct {
	States     []struct{} `json:"states"`
	Operations []struct{} `json:"operations"`
}

var bmaColours = []string{"BMA_Green", "BMA_Orange", "BMA_Purple", "BMA_Mint"}

// WriteBMA emits a Model/Layout BMA document: one variable per surviving
// species, one Activator/Inhibitor relationship per influence, a
// granularity-scaled formula, and variable colour derived from compartment
// size rank or the fixed -C override.
func WriteBMA(w io.Writer, m *model.Model, opts BMAOptions) error {
	if m == nil {
		return ErrNilModel
	}
	if opts.Granularity <= 0 {
		return ErrInvalidGranularity
	}

	ids := m.AllSpecies()
	bmaID := make(map[model.SpeciesID]int, len(ids))
	for i, id := range ids {
		bmaID[id] = i + 1
	}

	colourOf := compartmentColours(m, ids, opts.ColourConstant)

	relCounter := 1
	var relationships []bmaRelationship
	addRel := func(from, to model.SpeciesID, kind string) {
		relationships = append(relationships, bmaRelationship{
			ToVariable:   bmaID[to],
			Type:         kind,
			FromVariable: bmaID[from],
			ID:           relCounter,
		})
		relCounter++
	}

	variables := make([]bmaVariable, 0, len(ids))
	layoutVars := make([]bmaLayoutVariable, 0, len(ids))
	for _, id := range ids {
		sp, _ := m.Species(id)
		formula := renderBMAFormula(sp.Function, opts.Granularity, func(v model.SpeciesID) int { return bmaID[v] })
		if sp.Function == nil {
			formula = strconv.Itoa(opts.DefaultInput)
		} else {
			for _, v := range model.Vars(sp.Function) {
				kind := "Activator"
				if negatedOnly(sp.Function, v) {
					kind = "Inhibitor"
				}
				addRel(v, id, kind)
			}
		}
		variables = append(variables, bmaVariable{
			Name:      publicName(sp),
			ID:        bmaID[id],
			RangeFrom: 0,
			RangeTo:   opts.Granularity,
			Formula:   formula,
		})
		layoutVars = append(layoutVars, bmaLayoutVariable{
			ID:          bmaID[id],
			Name:        publicName(sp),
			Type:        "Constant",
			PositionX:   sp.Layout.X,
			PositionY:   sp.Layout.Y,
			Fill:        colourOf[sp.Compartment],
		})
	}

	universe := bmaUniverse{
		Model:  bmaModel{Name: "casq-go-BMA", Variables: variables, Relationships: relationships},
		Layout: bmaLayout{Variables: layoutVars, Containers: []struct{}{}},
		LTL:    bmaLTL{States: []struct{}{}, Operations: []struct{}{}},
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(universe)
}

// negatedOnly reports whether every occurrence of v in e sits under an odd
// number of Nots, which is the common case for a single-inhibitor clause; used
// only to pick Activator vs Inhibitor for the BMA relationship list, a
// best-effort classification since a general formula can mix both roles.
func negatedOnly(e model.Expr, v model.SpeciesID) bool {
	found := false
	allNegated := true
	var walk func(model.Expr, bool)
	walk = func(e model.Expr, negated bool) {
		if id, ok := model.AsVar(e); ok {
			if id == v {
				found = true
				if !negated {
					allNegated = false
				}
			}
			return
		}
		if x, ok := model.AsNot(e); ok {
			walk(x, !negated)
			return
		}
		if xs, ok := model.AsAnd(e); ok {
			for _, x := range xs {
				walk(x, negated)
			}
			return
		}
		if xs, ok := model.AsOr(e); ok {
			for _, x := range xs {
				walk(x, negated)
			}
			return
		}
	}
	walk(e, false)
	return found && allNegated
}

// renderBMAFormula translates e into the reference implementation's
// min/max Boolean encoding: AND becomes nested min(), OR becomes nested
// max(), NOT(var) becomes (granularity - var).
func renderBMAFormula(e model.Expr, granularity int, id func(model.SpeciesID) int) string {
	if e == nil {
		return strconv.Itoa(granularity)
	}
	if v, ok := model.AsConst(e); ok {
		if v {
			return strconv.Itoa(granularity)
		}
		return "0"
	}
	if vid, ok := model.AsVar(e); ok {
		return "var(" + strconv.Itoa(id(vid)) + ")"
	}
	if x, ok := model.AsNot(e); ok {
		return "(" + strconv.Itoa(granularity) + "-" + renderBMAFormula(x, granularity, id) + ")"
	}
	if xs, ok := model.AsAnd(e); ok {
		return foldBMA(xs, granularity, id, "min")
	}
	if xs, ok := model.AsOr(e); ok {
		return foldBMA(xs, granularity, id, "max")
	}
	return strconv.Itoa(granularity)
}

func foldBMA(xs []model.Expr, granularity int, id func(model.SpeciesID) int, fn string) string {
	if len(xs) == 0 {
		return strconv.Itoa(granularity)
	}
	acc := renderBMAFormula(xs[0], granularity, id)
	for _, x := range xs[1:] {
		acc = fn + "(" + renderBMAFormula(x, granularity, id) + "," + acc + ")"
	}
	return acc
}

func compartmentColours(m *model.Model, ids []model.SpeciesID, constant string) map[string]string {
	colours := make(map[string]string)
	if constant != "" {
		for _, id := range ids {
			sp, _ := m.Species(id)
			colours[sp.Compartment] = constant
		}
		return colours
	}
	counts := make(map[string]int)
	for _, id := range ids {
		sp, _ := m.Species(id)
		counts[sp.Compartment]++
	}
	type entry struct {
		name  string
		count int
	}
	var entries []entry
	for name, count := range counts {
		entries = append(entries, entry{name, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].name < entries[j].name
	})
	for i, e := range entries {
		if i >= len(bmaColours) {
			break
		}
		colours[e.name] = bmaColours[i]
	}
	return colours
}

