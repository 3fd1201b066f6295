// Copyright 2026 The AASX Authors
// SPDX-License-Identifier: Apache-2.0

package contenttype

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/aasx-foundation/aasx/lib/opcpath"
)

// Namespace is the XML namespace of the [Content_Types].xml document.
const Namespace = "http://schemas.openxmlformats.org/package/2006/content-types"

// DocumentPath is the fixed archive location of the content-types
// document.
const DocumentPath = "[Content_Types].xml"

type xmlTypes struct {
	XMLName   xml.Name      `xml:"Types"`
	Xmlns     string        `xml:"xmlns,attr"`
	Defaults  []xmlDefault  `xml:"Default"`
	Overrides []xmlOverride `xml:"Override"`
}

type xmlDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type xmlOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// Encode serializes the document to XML. Defaults are sorted by
// extension and overrides by part path, so the same tables always
// produce identical bytes.
func (d *Document) Encode() ([]byte, error) {
	doc := xmlTypes{
		Xmlns:     Namespace,
		Defaults:  d.sortedDefaults(),
		Overrides: d.sortedOverrides(),
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding content types: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

// Decode parses a [Content_Types].xml document. Extensions are
// lower-cased and override part names canonicalized, so lookups are
// case-insensitive regardless of how the producing writer cased them.
func Decode(data []byte) (*Document, error) {
	var doc xmlTypes
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing content types: %w", err)
	}

	result := Empty()
	for _, entry := range doc.Defaults {
		result.defaults[strings.ToLower(entry.Extension)] = entry.ContentType
	}
	for _, entry := range doc.Overrides {
		path, err := opcpath.Parse(entry.PartName)
		if err != nil {
			return nil, fmt.Errorf("parsing override part name %q: %w", entry.PartName, err)
		}
		result.overrides[path.Key()] = entry.ContentType
	}
	return result, nil
}
