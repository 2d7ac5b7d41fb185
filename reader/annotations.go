package reader

import (
	"encoding/xml"
	"strings"

	"github.com/nodeadmin/casq-go/model"
)

var bqbiolQualifiers = map[string]model.MIRIAMQualifier{
	"is":            model.QualIs,
	"isDescribedBy": model.QualIsDescribedBy,
	"isVersionOf":   model.QualIsVersionOf,
	"hasPart":       model.QualHasPart,
	"hasVersion":    model.QualHasVersion,
	"isHomologTo":   model.QualIsHomologTo,
	"isPartOf":      model.QualIsPartOf,
	"occursIn":      model.QualOccursIn,
	"hasTaxon":      model.QualHasTaxon,
	"encodes":       model.QualEncodes,
	"isEncodedBy":   model.QualIsEncodedBy,
}

// parseAnnotations walks a raw rdf:RDF subtree looking for bqbiol-qualified
// rdf:Bag/rdf:li elements, collecting their rdf:resource URIs into an
// Annotations bag. A nil raw value produces an empty, valid bag.
func parseAnnotations(raw *rawRDF) model.Annotations {
	var a model.Annotations
	if raw == nil || len(raw.Inner) == 0 {
		return a
	}
	// The captured inner XML loses the rdf/bqbiol prefix declarations made on
	// rdf:RDF or an ancestor, so the wrapper redeclares them.
	dec := xml.NewDecoder(strings.NewReader(`<root xmlns:rdf="` + nsRDF + `" xmlns:bqbiol="` + nsBQBio + `">` + string(raw.Inner) + "</root>"))
	var currentQual model.MIRIAMQualifier
	inQual := false
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if se.Name.Space == nsBQBio {
			if q, ok := bqbiolQualifiers[se.Name.Local]; ok {
				currentQual = q
				inQual = true
			}
			continue
		}
		if inQual && se.Name.Local == "li" {
			for _, attr := range se.Attr {
				if attr.Name.Space == nsRDF && attr.Name.Local == "resource" {
					a.Add(currentQual, attr.Value)
				}
			}
		}
	}
	return a
}
