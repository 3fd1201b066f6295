// Copyright 2026 The AASX Authors
// SPDX-License-Identifier: Apache-2.0

package opcpath

import "testing"

func TestRelsPathFor(t *testing.T) {
	tests := []struct {
		source string
		doc    string
	}{
		{"", "/_rels/.rels"},
		{"/aasx/aasx-origin", "/aasx/_rels/aasx-origin.rels"},
		{"/aasx/data.xml", "/aasx/_rels/data.xml.rels"},
		{"/root.bin", "/_rels/root.bin.rels"},
	}
	for _, test := range tests {
		if got := RelsPathFor(test.source); got != test.doc {
			t.Errorf("RelsPathFor(%q) = %q, want %q", test.source, got, test.doc)
		}
	}
}

func TestSourceFromRelsPathInvertsRelsPathFor(t *testing.T) {
	for _, source := range []string{"", "/aasx/aasx-origin", "/aasx/data.xml", "/root.bin", "/a/b/c.d"} {
		doc := RelsPathFor(source)
		got, ok := SourceFromRelsPath(doc)
		if !ok {
			t.Errorf("SourceFromRelsPath(%q) not recognized", doc)
			continue
		}
		if got != source {
			t.Errorf("SourceFromRelsPath(%q) = %q, want %q", doc, got, source)
		}
	}
}

func TestSourceFromRelsPathRejectsNonRelsPaths(t *testing.T) {
	for _, doc := range []string{"/aasx/data.xml", "/x_rels/a.rels", "/aasx/_rels/a.xml", "/norels"} {
		if _, ok := SourceFromRelsPath(doc); ok {
			t.Errorf("SourceFromRelsPath(%q) accepted, want rejection", doc)
		}
	}
}

func TestIsRelsPath(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"/_rels/.rels", true},
		{"/aasx/_rels/data.xml.rels", true},
		{"/aasx/data.xml", false},
		{"/aasx_rels/data.rels", false},
		{"/_rels/nested/data.rels", false},
	}
	for _, test := range tests {
		if got := IsRelsPath(test.key); got != test.want {
			t.Errorf("IsRelsPath(%q) = %v, want %v", test.key, got, test.want)
		}
	}
}

func TestResolveTarget(t *testing.T) {
	tests := []struct {
		source string
		target string
		want   string
	}{
		{"", "aasx/aasx-origin", "/aasx/aasx-origin"},
		{"", "/aasx/aasx-origin", "/aasx/aasx-origin"},
		{"/aasx/aasx-origin", "data.xml", "/aasx/data.xml"},
		{"/aasx/aasx-origin", "/aasx/data.xml", "/aasx/data.xml"},
		{"/aasx/spec.xml", "../files/manual.pdf", "/files/manual.pdf"},
		{"/aasx/spec.xml", "./sub/img.png", "/aasx/sub/img.png"},
		{"/aasx/spec.xml", "Mixed/Case.PNG", "/aasx/mixed/case.png"},
	}
	for _, test := range tests {
		p, err := ResolveTarget(test.source, test.target)
		if err != nil {
			t.Errorf("ResolveTarget(%q, %q): %v", test.source, test.target, err)
			continue
		}
		if p.Key() != test.want {
			t.Errorf("ResolveTarget(%q, %q) = %q, want %q", test.source, test.target, p.Key(), test.want)
		}
	}

	if _, err := ResolveTarget("/aasx/spec.xml", ""); err == nil {
		t.Error("empty target accepted, want error")
	}
}
