// Copyright 2026 The AASX Authors
// SPDX-License-Identifier: Apache-2.0

package opcpath

import "testing"

func TestParseCanonicalization(t *testing.T) {
	tests := []struct {
		uri     string
		key     string
		display string
	}{
		{"/aasx/data.xml", "/aasx/data.xml", "/aasx/data.xml"},
		{"aasx/data.xml", "/aasx/data.xml", "/aasx/data.xml"},
		{"/AASX/Data.XML", "/aasx/data.xml", "/AASX/Data.XML"},
		{"/aasx//double//slash.bin", "/aasx/double/slash.bin", "/aasx/double/slash.bin"},
		{"/aasx/./here.txt", "/aasx/here.txt", "/aasx/here.txt"},
		{"/aasx/sub/../up.txt", "/aasx/up.txt", "/aasx/up.txt"},
		{"/../escape.txt", "/escape.txt", "/escape.txt"},
		{"/a/b/c/../../d.bin", "/a/d.bin", "/a/d.bin"},
	}

	for _, test := range tests {
		p, err := Parse(test.uri)
		if err != nil {
			t.Errorf("Parse(%q): %v", test.uri, err)
			continue
		}
		if p.Key() != test.key {
			t.Errorf("Parse(%q).Key() = %q, want %q", test.uri, p.Key(), test.key)
		}
		if p.Display() != test.display {
			t.Errorf("Parse(%q).Display() = %q, want %q", test.uri, p.Display(), test.display)
		}
	}
}

func TestParseRejectsOpaqueURI(t *testing.T) {
	for _, uri := range []string{"", "mailto:someone@example.com", "urn:isbn:0451450523"} {
		if _, err := Parse(uri); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", uri)
		}
	}
}

func TestPartPathIdentityIsCaseInsensitive(t *testing.T) {
	a := MustParse("/aasx/Doc.XML")
	b := MustParse("/AASX/doc.xml")
	if a.Key() != b.Key() {
		t.Errorf("keys differ: %q vs %q", a.Key(), b.Key())
	}
	if a.Display() == b.Display() {
		t.Error("display forms should preserve original case")
	}
}

func TestExt(t *testing.T) {
	tests := []struct {
		uri string
		ext string
	}{
		{"/aasx/data.xml", "xml"},
		{"/aasx/Data.XML", "xml"},
		{"/aasx/archive.tar.gz", "gz"},
		{"/aasx/noext", ""},
		{"/aasx/.hidden", ""},
		{"/aasx/aasx-origin", ""},
	}
	for _, test := range tests {
		if got := MustParse(test.uri).Ext(); got != test.ext {
			t.Errorf("Ext(%q) = %q, want %q", test.uri, got, test.ext)
		}
	}
}

func TestIsZero(t *testing.T) {
	var zero PartPath
	if !zero.IsZero() {
		t.Error("zero value should report IsZero")
	}
	if MustParse("/a").IsZero() {
		t.Error("parsed path should not report IsZero")
	}
}
