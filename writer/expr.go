package writer

import (
	"strings"

	"github.com/nodeadmin/casq-go/model"
)

// renderExpr renders e using the given operator tokens and a namer that
// maps a species id to the identifier that should appear in the text. It
// is shared by the CSV (infix AND/OR/NOT) and BNet (&, |, !) writers, which
// differ only in their token set.
func renderExpr(e model.Expr, namer func(model.SpeciesID) string, and, or, not string) string {
	if e == nil {
		return ""
	}
	if v, ok := model.AsConst(e); ok {
		if v {
			return "1"
		}
		return "0"
	}
	if id, ok := model.AsVar(e); ok {
		return namer(id)
	}
	if x, ok := model.AsNot(e); ok {
		return not + parenthesize(renderExpr(x, namer, and, or, not))
	}
	if xs, ok := model.AsAnd(e); ok {
		return renderAssoc(xs, namer, and, or, not, and)
	}
	if xs, ok := model.AsOr(e); ok {
		return renderAssoc(xs, namer, and, or, not, or)
	}
	return ""
}

func renderAssoc(xs []model.Expr, namer func(model.SpeciesID) string, and, or, not, op string) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = parenthesize(renderExpr(x, namer, and, or, not))
	}
	return strings.Join(parts, op)
}

func parenthesize(s string) string { return "(" + s + ")" }
