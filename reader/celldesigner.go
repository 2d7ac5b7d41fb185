// Package reader parses CellDesigner SBML documents into a model.Model.
// It performs no biological simplification: it is a faithful,
// syntax-directed tree walk, matching the rest of the compiler's collaborator
// components. Structural problems surface as a *MalformedInputError.
package reader

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/nodeadmin/casq-go/model"
)

var reactionTypes = map[string]model.ReactionType{
	"STATE_TRANSITION":           model.RxnStateTransition,
	"HETERODIMER_ASSOCIATION":    model.RxnHeterodimerAssociation,
	"DISSOCIATION":               model.RxnDissociation,
	"TRANSPORT":                  model.RxnTransport,
	"TRANSCRIPTION":              model.RxnTranscription,
	"TRANSLATION":                model.RxnTranslation,
	"POSITIVE_INFLUENCE":         model.RxnTruePositiveInfluence,
	"NEGATIVE_INFLUENCE":         model.RxnTrueNegativeInfluence,
	"UNKNOWN_POSITIVE_INFLUENCE": model.RxnUnknownPositiveInfluence,
	"UNKNOWN_NEGATIVE_INFLUENCE": model.RxnUnknownNegativeInfluence,
	"UNKNOWN_TRANSITION":         model.RxnUnknownTransition,
	"KNOWN_TRANSITION_OMITTED":   model.RxnKnownTransitionOmitted,
	"PHYSICAL_STIMULATION":       model.RxnReducedPhysicalStimulation,
	"MODULATION":                 model.RxnReducedModulation,
	"INHIBITION":                 model.RxnReducedInhibition,
	"TRIGGER":                    model.RxnReducedTrigger,
	"BOOLEAN_LOGIC_GATE_AND":     model.RxnBooleanLogicGateAnd,
}

var modifierKinds = map[string]model.ModifierKind{
	"CATALYSIS":                  model.ModCatalyst,
	"UNKNOWN_CATALYSIS":          model.ModUnknownPositive,
	"INHIBITION":                 model.ModInhibitor,
	"UNKNOWN_INHIBITION":         model.ModUnknownNegative,
	"PHYSICAL_STIMULATION":       model.ModPhysicalStimulation,
	"MODULATION":                 model.ModModulator,
	"TRIGGER":                    model.ModTrigger,
	"TRANSCRIPTIONAL_ACTIVATION": model.ModTranscriptionalActivator,
	"TRANSCRIPTIONAL_INHIBITION": model.ModTranscriptionalInhibitor,
	"BOOLEAN_LOGIC_GATE_AND":     model.ModCatalyst,
}

var speciesTypes = map[string]model.SpeciesType{
	"PROTEIN":        model.TypeProtein,
	"RECEPTOR":       model.TypeReceptor,
	"RNA":            model.TypeRNA,
	"GENE":           model.TypeGene,
	"ANTISENSE_RNA":  model.TypeAntisenseRNA,
	"SIMPLE_MOLECULE": model.TypeSimpleMol,
	"ION":            model.TypeIon,
	"COMPLEX":        model.TypeComplex,
	"DEGRADED":       model.TypeDegraded,
	"UNKNOWN":        model.TypeUnknown,
	"PHENOTYPE":      model.TypePhenotype,
	"DRUG":           model.TypeDrug,
}

// cdRecord is the intermediate per-alias record, mirroring the reference
// reader's nameconv entries, before species make it into the Model.
type cdRecord struct {
	aliasID     string
	refSpecies  string
	name        string
	species     model.Species
	transitions []cdTransition
}

type cdTransition struct {
	rtype     string
	reactants []string
	modifiers []cdModRef
}

type cdModRef struct {
	kind  string
	alias string
}

// ParseCellDesigner reads a CellDesigner SBML document and builds a Model.
func ParseCellDesigner(r io.Reader) (*model.Model, error) {
	var doc sbmlDoc
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, &MalformedInputError{Where: "document", Err: err}
	}
	if doc.XMLName.Local != "sbml" {
		return nil, &MalformedInputError{Where: "root", Err: ErrNotSBML}
	}
	ext := doc.Model.Annotation.Extension

	compartmentByAlias := buildCompartmentIndex(doc)
	aliasByID := buildAliasIndex(ext)
	speciesByID := buildSpeciesIndex(doc)
	proteinTypeByID := buildProteinIndex(ext)

	records := make(map[string]*cdRecord)
	for _, alias := range allAliases(ext) {
		if alias.Bounds == nil || alias.ComplexSpeciesAlias != "" {
			continue // nested subcomponent of a complex: skip, per species_info
		}
		sbmlSp, ok := speciesByID[alias.Species]
		if !ok {
			continue
		}
		classStr := sbmlSp.Annotation.Extension.Class
		if classStr == "" {
			classStr = "PROTEIN"
		}
		if classStr == "DEGRADED" {
			continue
		}
		sType, ok := speciesTypes[classStr]
		if !ok {
			sType = model.TypeUnknown
		}
		if sType == model.TypeProtein {
			if proteinType, ok := proteinTypeByID[sbmlSp.Annotation.Extension.ProteinReference]; ok && proteinType == "RECEPTOR" {
				sType = model.TypeReceptor
			}
		}
		mods := extractMods(sbmlSp.Annotation.Extension.ListOfModifications)
		activity := model.ActivityInactive
		if sbmlSp.Annotation.Extension.StructuralState != nil {
			if sbmlSp.Annotation.Extension.StructuralState.State == "active" {
				activity = model.ActivityActive
			}
		}
		compartment := compartmentByAlias[alias.CompartmentAlias]

		rec := &cdRecord{
			aliasID:    alias.ID,
			refSpecies: alias.Species,
			name:       cleanName(sbmlSp.Name),
			species: model.Species{
				SourceID:      alias.ID,
				Name:          cleanName(sbmlSp.Name),
				Compartment:   compartment,
				Type:          sType,
				Modifications: mods,
				Activity:      activity,
				Layout:        boundsToLayout(alias.Bounds),
				Annotations:   parseAnnotations(sbmlSp.Annotation.RDF),
			},
		}
		records[alias.ID] = rec
	}

	attachIncludedSpeciesAnnotations(records, ext, aliasByID)

	decomplexify := func(aliasID string) string {
		if a, ok := aliasByID[aliasID]; ok && a.ComplexSpeciesAlias != "" {
			return a.ComplexSpeciesAlias
		}
		return aliasID
	}

	for _, rxn := range doc.Model.Reactions {
		rtype := rxn.Annotation.Extension.ReactionType
		var reacs []string
		for _, p := range rxn.Annotation.Extension.BaseReactants {
			reacs = append(reacs, decomplexify(p.Alias))
		}
		for _, p := range rxn.Annotation.Extension.ReactantLinks {
			reacs = append(reacs, decomplexify(p.Alias))
		}
		var prods []string
		for _, p := range rxn.Annotation.Extension.BaseProducts {
			prods = append(prods, decomplexify(p.Alias))
		}
		for _, p := range rxn.Annotation.Extension.ProductLinks {
			prods = append(prods, decomplexify(p.Alias))
		}
		var mods []cdModRef
		for _, m := range rxn.Annotation.Extension.Modifications {
			mods = append(mods, cdModRef{kind: m.Type, alias: decomplexify(m.Aliases)})
		}

		reacs = filterKnown(reacs, records)
		prods = filterKnown(prods, records)
		mods = filterKnownMods(mods, records)

		for _, p := range prods {
			rec := records[p]
			rec.transitions = append(rec.transitions, cdTransition{rtype: rtype, reactants: reacs, modifiers: mods})
		}
	}

	m := buildModel(records)
	m.CanvasWidth = parseFloat(ext.ModelDisplay.SizeX)
	m.CanvasHeight = parseFloat(ext.ModelDisplay.SizeY)
	return m, nil
}

func buildModel(records map[string]*cdRecord) *model.Model {
	m := model.NewModel()
	ids := make(map[string]model.SpeciesID, len(records))
	order := make([]string, 0, len(records))
	for aliasID := range records {
		order = append(order, aliasID)
	}
	// Deterministic: sort by aliasID so output does not depend on Go's map
	// iteration order.
	sortStrings(order)
	for _, aliasID := range order {
		ids[aliasID] = m.AddSpecies(records[aliasID].species)
	}
	for _, aliasID := range order {
		rec := records[aliasID]
		target := ids[aliasID]
		for _, t := range rec.transitions {
			var reactants []model.SpeciesID
			for _, r := range t.reactants {
				reactants = append(reactants, ids[r])
			}
			var modifiers []model.Modifier
			for _, mo := range t.modifiers {
				kind, ok := modifierKinds[mo.kind]
				if !ok {
					kind = model.ModUnknownPositive
				}
				modifiers = append(modifiers, model.Modifier{Species: ids[mo.alias], Kind: kind})
			}
			rtype, ok := reactionTypes[t.rtype]
			if !ok {
				rtype = model.RxnUnknownTransition
			}
			m.AddReaction(model.Reaction{
				Type:      rtype,
				Reactants: reactants,
				Products:  []model.SpeciesID{target},
				Modifiers: modifiers,
			})
		}
	}
	return m
}

func filterKnown(aliases []string, records map[string]*cdRecord) []string {
	var out []string
	for _, a := range aliases {
		if _, ok := records[a]; ok {
			out = append(out, a)
		}
	}
	return out
}

func filterKnownMods(mods []cdModRef, records map[string]*cdRecord) []cdModRef {
	var out []cdModRef
	for _, mo := range mods {
		if _, ok := records[mo.alias]; ok {
			out = append(out, mo)
		}
	}
	return out
}

func allAliases(ext cdExtension) []speciesAlias {
	out := make([]speciesAlias, 0, len(ext.ComplexAliases)+len(ext.SpeciesAliases))
	out = append(out, ext.ComplexAliases...)
	out = append(out, ext.SpeciesAliases...)
	return out
}

func buildAliasIndex(ext cdExtension) map[string]speciesAlias {
	idx := make(map[string]speciesAlias, len(ext.ComplexAliases)+len(ext.SpeciesAliases))
	for _, a := range allAliases(ext) {
		idx[a.ID] = a
	}
	return idx
}

func buildSpeciesIndex(doc sbmlDoc) map[string]sbmlSpecies {
	idx := make(map[string]sbmlSpecies, len(doc.Model.Species))
	for _, s := range doc.Model.Species {
		idx[s.ID] = s
	}
	return idx
}

func buildProteinIndex(ext cdExtension) map[string]string {
	idx := make(map[string]string, len(ext.Proteins))
	for _, p := range ext.Proteins {
		idx[p.ID] = p.Type
	}
	return idx
}

func buildCompartmentIndex(doc sbmlDoc) map[string]string {
	compartmentByID := make(map[string]string, len(doc.Model.Compartments))
	for _, c := range doc.Model.Compartments {
		compartmentByID[c.ID] = c.Name
	}
	compartmentByAlias := make(map[string]string)
	for _, ca := range doc.Model.Annotation.Extension.CompartAliases {
		if name, ok := compartmentByID[ca.Compartment]; ok {
			compartmentByAlias[ca.ID] = name
		}
	}
	return compartmentByAlias
}

func attachIncludedSpeciesAnnotations(records map[string]*cdRecord, ext cdExtension, aliasByID map[string]speciesAlias) {
	for _, inc := range ext.IncludedSpecies {
		if inc.Notes.RDF == nil {
			continue
		}
		target := inc.ID
		if a, ok := aliasByID[inc.ID]; ok && a.ComplexSpeciesAlias != "" {
			target = a.ComplexSpeciesAlias
		}
		rec, ok := records[target]
		if !ok {
			continue
		}
		extra := parseAnnotations(inc.Notes.RDF)
		model.MergeAnnotations(&rec.species.Annotations, &extra)
	}
}

func extractMods(lom *listOfModifications) []string {
	if lom == nil {
		return nil
	}
	out := make([]string, 0, len(lom.Modifications))
	for _, m := range lom.Modifications {
		if m.State != "" {
			out = append(out, m.State)
		}
	}
	return out
}

func boundsToLayout(b *bounds) model.Layout {
	if b == nil {
		return model.Layout{}
	}
	return model.Layout{
		X: parseFloat(b.X),
		Y: parseFloat(b.Y),
		W: parseFloat(b.W),
		H: parseFloat(b.H),
	}
}

// cleanName strips the sub/endsub markers and separator artifacts CellDesigner
// bakes into a species' display name, matching the reference reader's
// underscore cleanup (minus the type/modification suffixing, which the
// namer applies downstream instead of the reader).
func cleanName(name string) string {
	parts := strings.Split(name, "_")
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "sub" || p == "endsub" {
			continue
		}
		switch p {
		case "&", "|", "!", "underscore":
			p = ""
		}
		kept = append(kept, p)
	}
	joined := strings.Join(kept, "_")
	for strings.Contains(joined, "__") {
		joined = strings.ReplaceAll(joined, "__", "_")
	}
	return strings.Trim(joined, "_")
}
