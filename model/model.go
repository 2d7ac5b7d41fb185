package model

import "fmt"

// Species is a biochemical entity in the map.
type Species struct {
	ID            SpeciesID
	SourceID      string // stable opaque id assigned by the Reader
	Name          string
	Compartment   string
	Type          SpeciesType
	Modifications []string
	Activity      Activity
	Layout        Layout
	Function      Expr
	Annotations   Annotations
	FixedValue    *int // nil unless a fixed-values override pinned this species

	// PublicName/ExportID are filled in by the Namer; empty until then.
	PublicName string
	ExportID   string

	deleted    bool
	mergedInto SpeciesID
}

// Reaction is a hyperedge.
type Reaction struct {
	ID        ReactionID
	Type      ReactionType
	Reactants []SpeciesID
	Products  []SpeciesID
	Modifiers []Modifier

	deleted bool
}

// DeletePolicy controls what DeleteSpecies does to reactions that still
// reference the species being deleted.
type DeletePolicy int

const (
	// DropIncidentReactions deletes every reaction that still references
	// the species, in addition to the species itself.
	DropIncidentReactions DeletePolicy = iota
	// LeaveReactions deletes only the species; the caller is responsible
	// for having already rewired or removed every reference to it.
	LeaveReactions
)

// Model is the mutable reaction hypergraph shared by every pipeline stage.
// Species and reactions are addressed by small integer handles; handles are
// never reused, and a merged-away species resolves through a forwarding
// table (Find) rather than being physically removed from the slice.
type Model struct {
	species     []Species
	reactions   []Reaction
	diagnostics []Diagnostic

	// CanvasWidth/CanvasHeight carry the source document's drawing-surface
	// size through unmodified, for writers that emit a layout extension.
	CanvasWidth, CanvasHeight float64
}

// NewModel returns an empty Model.
func NewModel() *Model {
	return &Model{}
}

// AddSpecies appends a new species and returns its handle. The ID field of
// s is ignored and overwritten with the assigned handle.
func (m *Model) AddSpecies(s Species) SpeciesID {
	id := SpeciesID(len(m.species))
	s.ID = id
	s.mergedInto = NoSpecies
	m.species = append(m.species, s)
	return id
}

// AddReaction appends a new reaction and returns its handle.
func (m *Model) AddReaction(r Reaction) ReactionID {
	id := ReactionID(len(m.reactions))
	r.ID = id
	m.reactions = append(m.reactions, r)
	return id
}

// Find chases the merge-forwarding chain for id and returns the surviving
// handle it ultimately resolves to (id itself if it was never merged away).
func (m *Model) Find(id SpeciesID) SpeciesID {
	for {
		if int(id) < 0 || int(id) >= len(m.species) {
			return id
		}
		next := m.species[id].mergedInto
		if next == NoSpecies {
			return id
		}
		id = next
	}
}

// Species returns the species at handle id, resolved through Find, or false
// if id is out of range or the resolved species has been deleted outright
// (not merely merged).
func (m *Model) Species(id SpeciesID) (*Species, bool) {
	id = m.Find(id)
	if int(id) < 0 || int(id) >= len(m.species) {
		return nil, false
	}
	s := &m.species[id]
	if s.deleted {
		return nil, false
	}
	return s, true
}

// RawSpecies returns the species at handle id without chasing forwarding or
// checking deletion, so tombstoned entries can be inspected.
func (m *Model) RawSpecies(id SpeciesID) *Species {
	return &m.species[id]
}

// Reaction returns the reaction at handle id, or false if deleted/out of range.
func (m *Model) Reaction(id ReactionID) (*Reaction, bool) {
	if int(id) < 0 || int(id) >= len(m.reactions) {
		return nil, false
	}
	r := &m.reactions[id]
	if r.deleted {
		return nil, false
	}
	return r, true
}

// AllSpecies returns every surviving species handle in ascending order.
func (m *Model) AllSpecies() []SpeciesID {
	out := make([]SpeciesID, 0, len(m.species))
	for i := range m.species {
		if !m.species[i].deleted && m.species[i].mergedInto == NoSpecies {
			out = append(out, SpeciesID(i))
		}
	}
	return out
}

// AllReactions returns every surviving reaction handle in ascending order.
func (m *Model) AllReactions() []ReactionID {
	out := make([]ReactionID, 0, len(m.reactions))
	for i := range m.reactions {
		if !m.reactions[i].deleted {
			out = append(out, ReactionID(i))
		}
	}
	return out
}

// DeleteSpecies removes a species per the given policy.
func (m *Model) DeleteSpecies(id SpeciesID, policy DeletePolicy) {
	id = m.Find(id)
	if int(id) < 0 || int(id) >= len(m.species) {
		return
	}
	m.species[id].deleted = true
	if policy == LeaveReactions {
		return
	}
	for i := range m.reactions {
		r := &m.reactions[i]
		if r.deleted {
			continue
		}
		if containsSpecies(r.Reactants, id) || containsSpecies(r.Products, id) || modifiersContain(r.Modifiers, id) {
			r.deleted = true
		}
	}
}

// DeleteReaction removes a reaction outright.
func (m *Model) DeleteReaction(id ReactionID) {
	if int(id) < 0 || int(id) >= len(m.reactions) {
		return
	}
	m.reactions[id].deleted = true
}

// MergeInto records that from has been merged into to: every future Find(from)
// resolves to to. It is an error to merge into a species that has itself
// already been merged away — the caller must chase forwardings first.
func (m *Model) MergeInto(from, to SpeciesID) error {
	if int(to) < 0 || int(to) >= len(m.species) {
		return fmt.Errorf("model: merge target %d out of range", to)
	}
	if m.species[to].mergedInto != NoSpecies {
		return fmt.Errorf("model: cannot merge into %d, which was itself merged into %d", to, m.species[to].mergedInto)
	}
	if int(from) < 0 || int(from) >= len(m.species) {
		return fmt.Errorf("model: merge source %d out of range", from)
	}
	m.species[from].mergedInto = to
	m.species[from].deleted = true
	return nil
}

// TransferAnnotations merges from's annotation bag into to's. It is
// an error to transfer into a species that has itself been merged away.
func (m *Model) TransferAnnotations(from, to SpeciesID) error {
	if int(to) < 0 || int(to) >= len(m.species) {
		return fmt.Errorf("model: transfer target %d out of range", to)
	}
	if m.species[to].mergedInto != NoSpecies {
		return fmt.Errorf("model: cannot transfer annotations into %d, which was itself merged into %d", to, m.species[to].mergedInto)
	}
	if int(from) < 0 || int(from) >= len(m.species) {
		return fmt.Errorf("model: transfer source %d out of range", from)
	}
	MergeAnnotations(&m.species[to].Annotations, &m.species[from].Annotations)
	return nil
}

// RewireProducts replaces every occurrence of from in r's product list with
// to, deduplicating.
func RewireProducts(r *Reaction, from, to SpeciesID) {
	r.Products = rewireList(r.Products, from, to)
}

// RewireReactants replaces every occurrence of from in r's reactant list
// with to, deduplicating.
func RewireReactants(r *Reaction, from, to SpeciesID) {
	r.Reactants = rewireList(r.Reactants, from, to)
}

func rewireList(list []SpeciesID, from, to SpeciesID) []SpeciesID {
	out := make([]SpeciesID, 0, len(list))
	seen := make(map[SpeciesID]bool, len(list))
	for _, id := range list {
		if id == from {
			id = to
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func containsSpecies(list []SpeciesID, id SpeciesID) bool {
	for _, x := range list {
		if x == id {
			return true
		}
	}
	return false
}

func modifiersContain(mods []Modifier, id SpeciesID) bool {
	for _, mo := range mods {
		if mo.Species == id {
			return true
		}
	}
	return false
}

// AddDiagnostic accumulates a non-fatal warning produced by any stage.
func (m *Model) AddDiagnostic(d Diagnostic) {
	m.diagnostics = append(m.diagnostics, d)
}

// Diagnostics returns every warning accumulated so far, in emission order.
func (m *Model) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), m.diagnostics...)
}
