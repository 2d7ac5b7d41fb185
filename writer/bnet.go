package writer

import (
	"fmt"
	"io"

	"github.com/nodeadmin/casq-go/model"
)

// WriteBNet emits header-less "id, formula" rows in the conventional
// BoolNet syntax (&, |, !); species without a Function are omitted, since
// BoolNet treats them as inputs in its own sense.
func WriteBNet(w io.Writer, m *model.Model) error {
	if m == nil {
		return ErrNilModel
	}
	for _, id := range m.AllSpecies() {
		sp, _ := m.Species(id)
		if sp.Function == nil {
			continue
		}
		formula := renderExpr(sp.Function, func(v model.SpeciesID) string {
			s, _ := m.Species(v)
			return exportName(s)
		}, " & ", " | ", "!")
		if _, err := fmt.Fprintf(w, "%s, %s\n", exportName(sp), formula); err != nil {
			return err
		}
	}
	return nil
}
