package compile

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/nodeadmin/casq-go/model"
)

// NameOptions configures the Namer.
type NameOptions struct {
	// PreferNamesAsIDs implements --names: the biological name (once
	// disambiguated) becomes the source for the exported SId instead of
	// the Reader's opaque SourceID.
	PreferNamesAsIDs bool
}

var nonSId = regexp.MustCompile(`[^A-Za-z0-9_]`)

// Name assigns every surviving species a unique PublicName and a
// collision-free, SId-valid ExportID.
func Name(m *model.Model, opts NameOptions) {
	ids := m.AllSpecies()
	names := disambiguate(m, ids)
	for _, id := range ids {
		sp, _ := m.Species(id)
		sp.PublicName = names[id]
	}

	sourceOf := func(id model.SpeciesID) string {
		sp, _ := m.Species(id)
		if opts.PreferNamesAsIDs {
			return sp.PublicName
		}
		return sp.SourceID
	}
	exportIDs := uniquify(ids, sourceOf, sanitizeSId)
	for _, id := range ids {
		sp, _ := m.Species(id)
		sp.ExportID = exportIDs[id]
	}
}

// disambiguate computes each species' PublicName: base biological name,
// refined by type, then distinctive modification, then compartment, then
// activity, then a numeric suffix — each step applied only to groups still
// colliding after the previous one.
func disambiguate(m *model.Model, ids []model.SpeciesID) map[model.SpeciesID]string {
	names := make(map[model.SpeciesID]string, len(ids))
	for _, id := range ids {
		sp, _ := m.Species(id)
		names[id] = sp.Name
	}

	steps := []func(model.SpeciesID) string{
		func(id model.SpeciesID) string { sp, _ := m.Species(id); return string(sp.Type) },
		func(id model.SpeciesID) string { sp, _ := m.Species(id); return leastModification(sp.Modifications) },
		func(id model.SpeciesID) string { sp, _ := m.Species(id); return sp.Compartment },
	}
	for _, attr := range steps {
		names = refineBySuffix(ids, names, attr)
		if allUnique(ids, names) {
			return names
		}
	}

	names = refineByActivity(m, ids, names)
	if allUnique(ids, names) {
		return names
	}

	return refineNumeric(ids, names)
}

// leastModification picks the lexicographically-least modification as the
// deterministic fallback when several are present.
func leastModification(mods []string) string {
	if len(mods) == 0 {
		return ""
	}
	sorted := append([]string(nil), mods...)
	sort.Strings(sorted)
	return sorted[0]
}

func refineBySuffix(ids []model.SpeciesID, names map[model.SpeciesID]string, attr func(model.SpeciesID) string) map[model.SpeciesID]string {
	groups := groupBy(ids, names)
	out := make(map[model.SpeciesID]string, len(ids))
	for name, members := range groups {
		if len(members) == 1 {
			out[members[0]] = name
			continue
		}
		for _, id := range members {
			if suf := attr(id); suf != "" {
				out[id] = name + "_" + suf
			} else {
				out[id] = name
			}
		}
	}
	return out
}

func refineByActivity(m *model.Model, ids []model.SpeciesID, names map[model.SpeciesID]string) map[model.SpeciesID]string {
	groups := groupBy(ids, names)
	out := make(map[model.SpeciesID]string, len(ids))
	for name, members := range groups {
		if len(members) == 1 {
			out[members[0]] = name
			continue
		}
		activeCount := 0
		for _, id := range members {
			sp, _ := m.Species(id)
			if sp.Activity == model.ActivityActive {
				activeCount++
			}
		}
		for _, id := range members {
			sp, _ := m.Species(id)
			if activeCount == 1 && sp.Activity == model.ActivityActive {
				out[id] = name + "_active"
			} else {
				out[id] = name
			}
		}
	}
	return out
}

func refineNumeric(ids []model.SpeciesID, names map[model.SpeciesID]string) map[model.SpeciesID]string {
	groups := groupBy(ids, names)
	out := make(map[model.SpeciesID]string, len(ids))
	for name, members := range groups {
		sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })
		for i, id := range members {
			if i == 0 {
				out[id] = name
			} else {
				out[id] = fmt.Sprintf("%s_%d", name, i)
			}
		}
	}
	return out
}

func groupBy(ids []model.SpeciesID, names map[model.SpeciesID]string) map[string][]model.SpeciesID {
	groups := make(map[string][]model.SpeciesID)
	for _, id := range ids {
		groups[names[id]] = append(groups[names[id]], id)
	}
	return groups
}

func allUnique(ids []model.SpeciesID, names map[model.SpeciesID]string) bool {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		n := names[id]
		if seen[n] {
			return false
		}
		seen[n] = true
	}
	return true
}

func sanitizeSId(s string) string {
	out := nonSId.ReplaceAllString(s, "_")
	if out == "" {
		out = "_"
	}
	if out[0] >= '0' && out[0] <= '9' {
		out = "_" + out
	}
	return out
}

// uniquify applies transform to each id's source string, then deterministically
// disambiguates any collisions by appending a numeric suffix in ascending id
// order.
func uniquify(ids []model.SpeciesID, source func(model.SpeciesID) string, transform func(string) string) map[model.SpeciesID]string {
	base := make(map[model.SpeciesID]string, len(ids))
	for _, id := range ids {
		base[id] = transform(source(id))
	}
	return refineNumeric(ids, base)
}
