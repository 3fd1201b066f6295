// Copyright 2026 The AASX Authors
// SPDX-License-Identifier: Apache-2.0

package opc

import (
	"encoding/xml"
	"fmt"
)

// RelationshipsNamespace is the XML namespace of relationship
// documents.
const RelationshipsNamespace = "http://schemas.openxmlformats.org/package/2006/relationships"

type xmlRelationships struct {
	XMLName       xml.Name          `xml:"Relationships"`
	Xmlns         string            `xml:"xmlns,attr"`
	Relationships []xmlRelationship `xml:"Relationship"`
}

type xmlRelationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

// encodeRels serializes a relationship bucket to a relationship
// document. Edges appear in recorded order. TargetMode is omitted:
// Internal is the OPC default and the only mode this model produces.
func encodeRels(bucket []Relationship) ([]byte, error) {
	doc := xmlRelationships{
		Xmlns:         RelationshipsNamespace,
		Relationships: make([]xmlRelationship, len(bucket)),
	}
	for i, edge := range bucket {
		doc.Relationships[i] = xmlRelationship{
			ID:     edge.ID,
			Type:   edge.Type,
			Target: edge.Target,
		}
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding relationships: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

// decodeRels parses a relationship document into its entries, in
// document order. TargetMode, when present, is accepted and ignored
// (this model treats every relationship as Internal).
func decodeRels(data []byte) ([]xmlRelationship, error) {
	var doc xmlRelationships
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing relationships: %w", err)
	}
	return doc.Relationships, nil
}
