package compile

import "github.com/nodeadmin/casq-go/model"

// Simplify applies the standard Boolean identities to e until a fixpoint is
// reached: constant absorption, double-negation elimination,
// flattening of nested same-operator AND/OR, operand deduplication, and
// collapsing an empty AND/OR to TRUE/FALSE. simplify(simplify(f)) always
// equals simplify(f), and simplify never changes what f evaluates to.
func Simplify(e model.Expr) model.Expr {
	for {
		next := simplifyOnce(e)
		if model.Equal(next, e) {
			return next
		}
		e = next
	}
}

func simplifyOnce(e model.Expr) model.Expr {
	if _, ok := model.AsConst(e); ok {
		return e
	}
	if _, ok := model.AsVar(e); ok {
		return e
	}
	if x, ok := model.AsNot(e); ok {
		x = simplifyOnce(x)
		if v, ok := model.AsConst(x); ok {
			return model.Const(!v)
		}
		if inner, ok := model.AsNot(x); ok {
			return simplifyOnce(inner)
		}
		return model.Not(x)
	}
	if xs, ok := model.AsAnd(e); ok {
		return simplifyAssoc(xs, true)
	}
	if xs, ok := model.AsOr(e); ok {
		return simplifyAssoc(xs, false)
	}
	return e
}

func simplifyAssoc(xs []model.Expr, isAnd bool) model.Expr {
	var flat []model.Expr
	for _, x := range xs {
		x = simplifyOnce(x)
		if isAnd {
			if sub, ok := model.AsAnd(x); ok {
				flat = append(flat, sub...)
				continue
			}
		} else {
			if sub, ok := model.AsOr(x); ok {
				flat = append(flat, sub...)
				continue
			}
		}
		flat = append(flat, x)
	}

	var kept []model.Expr
	for _, x := range flat {
		v, ok := model.AsConst(x)
		if !ok {
			kept = append(kept, x)
			continue
		}
		if isAnd && !v {
			return model.Const(false) // x AND FALSE -> FALSE
		}
		if !isAnd && v {
			return model.Const(true) // x OR TRUE -> TRUE
		}
		// x AND TRUE -> drop; x OR FALSE -> drop
	}

	deduped := make([]model.Expr, 0, len(kept))
	for _, x := range kept {
		dup := false
		for _, y := range deduped {
			if model.Equal(x, y) {
				dup = true
				break
			}
		}
		if !dup {
			deduped = append(deduped, x)
		}
	}

	if isAnd {
		return model.And(deduped...)
	}
	return model.Or(deduped...)
}

// SimplifyModel simplifies every surviving species' Function in place.
func SimplifyModel(m *model.Model) {
	for _, id := range m.AllSpecies() {
		sp, _ := m.Species(id)
		if sp.Function != nil {
			sp.Function = Simplify(sp.Function)
		}
	}
}
