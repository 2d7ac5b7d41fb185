package compile

import (
	"testing"

	"github.com/nodeadmin/casq-go/model"
)

func TestSimplifyIdempotent(t *testing.T) {
	a := model.Var(model.SpeciesID(0))
	f := model.And(a, model.Const(true), model.Or(a, model.Const(false)))

	once := Simplify(f)
	twice := Simplify(once)
	if !model.Equal(once, twice) {
		t.Errorf("simplify not idempotent: once=%v twice=%v", once, twice)
	}
	if !model.Equal(once, a) {
		t.Errorf("Simplify(f) = %v; want %v", once, a)
	}
}

func TestSimplifyPreservesSemantics(t *testing.T) {
	a, b := model.Var(model.SpeciesID(0)), model.Var(model.SpeciesID(1))
	f := model.Not(model.Not(model.And(a, b, model.Const(true))))
	simplified := Simplify(f)

	for _, av := range []bool{true, false} {
		for _, bv := range []bool{true, false} {
			assign := map[model.SpeciesID]bool{0: av, 1: bv}
			if f.Eval(assign) != simplified.Eval(assign) {
				t.Errorf("semantics changed at a=%v,b=%v", av, bv)
			}
		}
	}
}

func TestSimplifyConstantAbsorption(t *testing.T) {
	a := model.Var(model.SpeciesID(0))
	if got := Simplify(model.And(a, model.Const(false))); !mustConst(t, got, false) {
		return
	}
	if got := Simplify(model.Or(a, model.Const(true))); !mustConst(t, got, true) {
		return
	}
}

func mustConst(t *testing.T, e model.Expr, want bool) bool {
	t.Helper()
	v, ok := model.AsConst(e)
	if !ok || v != want {
		t.Errorf("got %v; want constant %v", e, want)
		return false
	}
	return true
}
