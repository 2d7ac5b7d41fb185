package writer

import (
	"encoding/csv"
	"io"

	"github.com/nodeadmin/casq-go/model"
)

// WriteCSV emits the header "id,name,formula,alias" then one row per
// surviving species; alias is the pre-Namer biological name so a human can
// cross-reference against the original map.
func WriteCSV(w io.Writer, m *model.Model) error {
	if m == nil {
		return ErrNilModel
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "name", "formula", "alias"}); err != nil {
		return err
	}
	for _, id := range m.AllSpecies() {
		sp, _ := m.Species(id)
		formula := renderExpr(sp.Function, func(v model.SpeciesID) string {
			s, _ := m.Species(v)
			return publicName(s)
		}, " AND ", " OR ", "NOT ")
		if err := cw.Write([]string{exportName(sp), publicName(sp), formula, sp.Name}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
