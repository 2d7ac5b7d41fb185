package compile

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nodeadmin/casq-go/model"
)

// Override is one row of a fixed-values table: Name is matched
// against a species' PublicName, Value pins that species' Function to the
// corresponding constant.
type Override struct {
	Name  string
	Value bool
}

// ParseOverrides reads a two-column "name,value" table, one override per
// row, where value is 0 or 1. Blank lines and rows starting with # in the
// first field are skipped, matching the CLI's -f flag format.
func ParseOverrides(r io.Reader) ([]Override, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("override table: %w", err)
	}

	var out []Override
	for i, fields := range rows {
		if len(fields) == 1 && strings.TrimSpace(fields[0]) == "" {
			continue
		}
		name := strings.TrimSpace(fields[0])
		if name == "" || strings.HasPrefix(name, "#") {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("override table: row %d: want 2 fields, got %d", i+1, len(fields))
		}
		raw := strings.TrimSpace(fields[1])
		v, err := strconv.Atoi(raw)
		if err != nil || (v != 0 && v != 1) {
			return nil, fmt.Errorf("override table: row %d: value %q is not 0 or 1", i+1, raw)
		}
		out = append(out, Override{Name: name, Value: v == 1})
	}
	return out, nil
}

// ApplyOverrides pins every named species' Function to a constant.
// It must run after the Namer, since names are matched against PublicName.
// A row naming a species not present in the model is reported as a
// diagnostic, not a fatal error — the rest of the table still applies.
func ApplyOverrides(m *model.Model, overrides []Override) {
	if len(overrides) == 0 {
		return
	}
	byName := make(map[string]model.SpeciesID)
	for _, id := range m.AllSpecies() {
		sp, _ := m.Species(id)
		byName[sp.PublicName] = id
	}
	for _, o := range overrides {
		id, ok := byName[o.Name]
		if !ok {
			m.AddDiagnostic(model.Diagnostic{
				Kind:    model.DiagnosticOverrideUnresolved,
				Message: fmt.Sprintf("fixed-value override %q did not match any species", o.Name),
			})
			continue
		}
		sp, _ := m.Species(id)
		v := o.Value
		iv := boolToInt(v)
		sp.FixedValue = &iv
		sp.Function = model.Const(v)
	}
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
