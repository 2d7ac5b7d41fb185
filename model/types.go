// Package model defines the in-memory reaction hypergraph: species,
// reactions, influences and the Boolean formula tree attached to each
// surviving species by the compiler pipeline.
package model

// SpeciesID is a small integer handle identifying a Species within a Model.
// Cross-references between reactions and species are always handles, never
// pointers, so that merges can be done lazily through a forwarding table
// (see Model.Find).
type SpeciesID int32

// ReactionID is a small integer handle identifying a Reaction within a Model.
type ReactionID int32

// NoSpecies is the sentinel for an absent species reference. It is -1, not
// the zero value of SpeciesID, so it must be set explicitly.
const NoSpecies SpeciesID = -1

// SpeciesType is the closed set of CellDesigner/SBGN-PD species classes.
type SpeciesType string

const (
	TypeProtein      SpeciesType = "protein"
	TypeReceptor     SpeciesType = "receptor"
	TypeRNA          SpeciesType = "rna"
	TypeGene         SpeciesType = "gene"
	TypeAntisenseRNA SpeciesType = "antisenseRNA"
	TypeSimpleMol    SpeciesType = "simpleMolecule"
	TypeIon          SpeciesType = "ion"
	TypeComplex      SpeciesType = "complex"
	TypeDegraded     SpeciesType = "degraded"
	TypeUnknown      SpeciesType = "unknown"
	TypePhenotype    SpeciesType = "phenotype"
	TypeDrug         SpeciesType = "drug"
)

// Activity is CellDesigner's structural-state flag. It is used only to break
// naming ties in the Namer; it carries no Boolean semantics.
type Activity string

const (
	ActivityActive   Activity = "active"
	ActivityInactive Activity = "inactive"
)

// ReactionType is the closed set of CellDesigner/SBGN-PD reaction and
// influence classes the Reducer and Abstracter recognize.
type ReactionType string

const (
	RxnStateTransition           ReactionType = "stateTransition"
	RxnHeterodimerAssociation    ReactionType = "heterodimer_association"
	RxnDissociation              ReactionType = "dissociation"
	RxnTransport                 ReactionType = "transport"
	RxnTranscription             ReactionType = "transcription"
	RxnTranslation               ReactionType = "translation"
	RxnTruePositiveInfluence     ReactionType = "truePositiveInfluence"
	RxnTrueNegativeInfluence     ReactionType = "trueNegativeInfluence"
	RxnUnknownPositiveInfluence  ReactionType = "unknownPositiveInfluence"
	RxnUnknownNegativeInfluence  ReactionType = "unknownNegativeInfluence"
	RxnUnknownTransition         ReactionType = "unknownTransition"
	RxnKnownTransitionOmitted    ReactionType = "knownTransitionOmitted"
	RxnReducedPhysicalStimulation ReactionType = "reducedPhysicalStimulation"
	RxnReducedModulation         ReactionType = "reducedModulation"
	RxnReducedInhibition         ReactionType = "reducedInhibition"
	RxnReducedTrigger            ReactionType = "reducedTrigger"
	RxnBooleanLogicGateAnd       ReactionType = "boolean_logic_gate_and"
)

// ModifierKind is the closed set of roles a modifier species can play in a
// reaction. Polarity() classifies each kind as positive or negative.
type ModifierKind string

const (
	ModCatalyst                 ModifierKind = "catalyst"
	ModTranscriptionalActivator ModifierKind = "transcriptional_activator"
	ModPhysicalStimulation      ModifierKind = "physical_stimulation"
	ModUnknownPositive          ModifierKind = "unknown_positive"
	ModModulator                ModifierKind = "modulator"
	ModTrigger                  ModifierKind = "trigger"
	ModInhibitor                ModifierKind = "inhibitor"
	ModUnknownNegative          ModifierKind = "unknown_negative"
	ModTranscriptionalInhibitor ModifierKind = "transcriptional_inhibitor"
)

// Polarity is the sign a modifier or influence contributes to a rule/arc.
type Polarity int

const (
	Positive Polarity = 1
	Negative Polarity = -1
)

// Polarity classifies a modifier kind as positive or negative.
func (k ModifierKind) Polarity() Polarity {
	switch k {
	case ModInhibitor, ModUnknownNegative, ModTranscriptionalInhibitor:
		return Negative
	default:
		return Positive
	}
}

// Sign is the sign of an Influence arc.
type Sign int

const (
	SignPositive Sign = 1
	SignNegative Sign = -1
)

func (s Sign) String() string {
	if s == SignPositive {
		return "+"
	}
	return "-"
}

// MIRIAMQualifier is the closed set of biological/model qualifiers an
// Annotations bag can key on.
type MIRIAMQualifier string

const (
	QualIs             MIRIAMQualifier = "is"
	QualIsDescribedBy  MIRIAMQualifier = "isDescribedBy"
	QualIsVersionOf    MIRIAMQualifier = "isVersionOf"
	QualHasPart        MIRIAMQualifier = "hasPart"
	QualHasVersion     MIRIAMQualifier = "hasVersion"
	QualIsHomologTo    MIRIAMQualifier = "isHomologTo"
	QualIsPartOf       MIRIAMQualifier = "isPartOf"
	QualOccursIn       MIRIAMQualifier = "occursIn"
	QualHasTaxon       MIRIAMQualifier = "hasTaxon"
	QualEncodes        MIRIAMQualifier = "encodes"
	QualIsEncodedBy    MIRIAMQualifier = "isEncodedBy"
)

// Layout mirrors the subset of CellDesigner layout geometry the spec asks
// the compiler to carry through unmodified.
type Layout struct {
	X, Y, W, H float64
	Color      string
}

// Modifier pairs a species handle with the role it plays in a reaction.
type Modifier struct {
	Species SpeciesID
	Kind    ModifierKind
}
