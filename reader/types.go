package reader

import "encoding/xml"

// The struct tags below name elements by local name only, so an element
// matches whatever namespace it is in. Of the namespace constants, only
// nsRDF and nsBQBio are used, by parseAnnotations.
const (
	nsSBML  = "http://www.sbml.org/sbml/level2/version4"
	nsCD    = "http://www.sbml.org/2001/ns/celldesigner"
	nsRDF   = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	nsBQBio = "http://biomodels.net/biology-qualifiers/"
)

type sbmlDoc struct {
	XMLName xml.Name  `xml:"sbml"`
	Model   sbmlModel `xml:"model"`
}

type sbmlModel struct {
	Annotation   modelAnnotation `xml:"annotation"`
	Compartments []compartment   `xml:"listOfCompartments>compartment"`
	Species      []sbmlSpecies   `xml:"listOfSpecies>species"`
	Reactions    []sbmlReaction  `xml:"listOfReactions>reaction"`
}

type modelAnnotation struct {
	Extension cdExtension `xml:"extension"`
}

type cdExtension struct {
	ModelDisplay    modelDisplay      `xml:"modelDisplay"`
	SpeciesAliases  []speciesAlias    `xml:"listOfSpeciesAliases>speciesAlias"`
	ComplexAliases  []speciesAlias    `xml:"listOfComplexSpeciesAliases>complexSpeciesAlias"`
	CompartAliases  []compartAlias    `xml:"listOfCompartmentAliases>compartmentAlias"`
	IncludedSpecies []includedSpecies `xml:"listOfIncludedSpecies>species"`
	Proteins        []cdProtein       `xml:"listOfProteins>protein"`
}

type modelDisplay struct {
	SizeX string `xml:"sizeX,attr"`
	SizeY string `xml:"sizeY,attr"`
}

type speciesAlias struct {
	ID                 string `xml:"id,attr"`
	Species            string `xml:"species,attr"`
	CompartmentAlias   string `xml:"compartmentAlias,attr"`
	ComplexSpeciesAlias string `xml:"complexSpeciesAlias,attr"`
	Bounds             *bounds `xml:"bounds"`
}

type bounds struct {
	X string `xml:"x,attr"`
	Y string `xml:"y,attr"`
	W string `xml:"w,attr"`
	H string `xml:"h,attr"`
}

type compartAlias struct {
	ID          string `xml:"id,attr"`
	Compartment string `xml:"compartment,attr"`
}

type compartment struct {
	ID   string `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type includedSpecies struct {
	ID    string     `xml:"id,attr"`
	Notes innerNotes `xml:"notes"`
}

type innerNotes struct {
	RDF *rawRDF `xml:"html>body>RDF"`
}

type cdProtein struct {
	ID   string `xml:"id,attr"`
	Type string `xml:"type,attr"`
}

type sbmlSpecies struct {
	ID         string           `xml:"id,attr"`
	Name       string           `xml:"name,attr"`
	Annotation speciesAnnot     `xml:"annotation"`
}

type speciesAnnot struct {
	Extension speciesCDExt `xml:"extension"`
	RDF       *rawRDF      `xml:"RDF"`
}

type speciesCDExt struct {
	Class              string              `xml:"class"`
	ProteinReference   string              `xml:"proteinReference"`
	StructuralState    *structuralState    `xml:"structuralState"`
	ListOfModifications *listOfModifications `xml:"listOfModifications"`
}

type structuralState struct {
	State string `xml:"structuralState,attr"`
}

type listOfModifications struct {
	Modifications []cdModification `xml:"modification"`
}

type cdModification struct {
	State string `xml:"state,attr"`
}

type sbmlReaction struct {
	ID         string          `xml:"id,attr"`
	Annotation reactionAnnot   `xml:"annotation"`
}

type reactionAnnot struct {
	Extension reactionCDExt `xml:"extension"`
	RDF       *rawRDF       `xml:"RDF"`
}

type reactionCDExt struct {
	ReactionType      string             `xml:"reactionType"`
	BaseReactants     []baseParticipant  `xml:"baseReactants>baseReactant"`
	BaseProducts      []baseParticipant  `xml:"baseProducts>baseProduct"`
	ReactantLinks     []baseParticipant  `xml:"listOfReactantLinks>reactantLink"`
	ProductLinks      []baseParticipant  `xml:"listOfProductLinks>productLink"`
	Modifications     []cdModLink        `xml:"listOfModification>modification"`
}

type baseParticipant struct {
	Alias string `xml:"alias,attr"`
}

type cdModLink struct {
	Type    string `xml:"type,attr"`
	Aliases string `xml:"aliases,attr"`
}

// rawRDF captures an rdf:RDF subtree verbatim; parseAnnotations below walks
// its raw bytes on demand rather than modeling the full bqbiol vocabulary as
// Go types, since the only thing that matters downstream is the
// (qualifier, resource URI) pairs.
type rawRDF struct {
	Inner []byte `xml:",innerxml"`
}
