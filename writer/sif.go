package writer

import (
	"fmt"
	"io"
	"sort"

	"github.com/nodeadmin/casq-go/compile"
	"github.com/nodeadmin/casq-go/model"
)

// WriteSIF emits one "source\tsign\ttarget" line per influence, sorted by
// (source id, target id) for determinism.
func WriteSIF(w io.Writer, m *model.Model) error {
	if m == nil {
		return ErrNilModel
	}
	influences := compile.Abstract(m)
	sort.Slice(influences, func(i, j int) bool {
		if influences[i].Source != influences[j].Source {
			return influences[i].Source < influences[j].Source
		}
		return influences[i].Target < influences[j].Target
	})
	for _, inf := range influences {
		src, ok := m.Species(inf.Source)
		if !ok {
			continue
		}
		dst, ok := m.Species(inf.Target)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", exportName(src), inf.Sign.String(), exportName(dst)); err != nil {
			return err
		}
	}
	return nil
}

// exportName returns the identifier a writer should use for sp: its
// ExportID if the Namer has run, otherwise its SourceID, otherwise its raw
// biological name as a last resort.
func exportName(sp *model.Species) string {
	if sp.ExportID != "" {
		return sp.ExportID
	}
	if sp.SourceID != "" {
		return sp.SourceID
	}
	return sp.Name
}

func publicName(sp *model.Species) string {
	if sp.PublicName != "" {
		return sp.PublicName
	}
	return sp.Name
}
