package model

import "testing"

func TestAnnotationsAddDeduplicates(t *testing.T) {
	var a Annotations
	a.Add(QualIs, "urn:miriam:chebi:CHEBI:1")
	a.Add(QualIs, "urn:miriam:chebi:CHEBI:1")
	a.Add(QualIs, "urn:miriam:chebi:CHEBI:2")

	uris := a.URIs(QualIs)
	if len(uris) != 2 {
		t.Fatalf("got %d uris; want 2 after deduping repeat add", len(uris))
	}
	if uris[0] != "urn:miriam:chebi:CHEBI:1" || uris[1] != "urn:miriam:chebi:CHEBI:2" {
		t.Errorf("URIs not in insertion order: %v", uris)
	}
}

func TestMergeAnnotationsIdempotent(t *testing.T) {
	var dst, src Annotations
	src.Add(QualIs, "a")
	src.Add(QualHasPart, "b")

	MergeAnnotations(&dst, &src)
	MergeAnnotations(&dst, &src)

	if got := dst.URIs(QualIs); len(got) != 1 {
		t.Errorf("second merge duplicated entries: %v", got)
	}
	if len(dst.Qualifiers()) != 2 {
		t.Errorf("got %d qualifiers; want 2", len(dst.Qualifiers()))
	}
}

func TestAnnotationsEmpty(t *testing.T) {
	var a Annotations
	if !a.Empty() {
		t.Errorf("zero-value Annotations should be Empty")
	}
	a.Add(QualIs, "x")
	if a.Empty() {
		t.Errorf("Annotations with one entry should not be Empty")
	}
}
