// Copyright 2026 The AASX Authors
// SPDX-License-Identifier: Apache-2.0

package opc

import (
	"bytes"
	"testing"

	"github.com/aasx-foundation/aasx/lib/opcpath"
)

func TestRegistryPutAndFind(t *testing.T) {
	registry := NewRegistry()
	path := opcpath.MustParse("/aasx/data.xml")

	registry.Put(path, "application/xml", []byte("<x/>"))

	part, ok := registry.Find(path)
	if !ok {
		t.Fatal("Find missed a registered part")
	}
	if part.ContentType() != "application/xml" {
		t.Errorf("ContentType = %q, want application/xml", part.ContentType())
	}
	if !bytes.Equal(part.Content(), []byte("<x/>")) {
		t.Errorf("Content = %q, want <x/>", part.Content())
	}
}

func TestRegistryFindIsCaseInsensitive(t *testing.T) {
	registry := NewRegistry()
	registry.Put(opcpath.MustParse("/AASX/Data.XML"), "application/xml", nil)

	if _, ok := registry.Find(opcpath.MustParse("/aasx/data.xml")); !ok {
		t.Error("Find with differently-cased path missed")
	}
	if registry.Len() != 1 {
		t.Errorf("Len = %d, want 1", registry.Len())
	}
}

func TestRegistryPutReplacesInPlace(t *testing.T) {
	registry := NewRegistry()
	original := opcpath.MustParse("/aasx/Data.xml")
	registry.Put(original, "application/xml", []byte("one"))

	// Same canonical key, different case and new content.
	registry.Put(opcpath.MustParse("/aasx/data.XML"), "text/xml", []byte("two"))

	if registry.Len() != 1 {
		t.Fatalf("Len = %d after replacement, want 1", registry.Len())
	}
	part, _ := registry.Find(original)
	if part.ContentType() != "text/xml" {
		t.Errorf("ContentType = %q, want text/xml", part.ContentType())
	}
	if !bytes.Equal(part.Content(), []byte("two")) {
		t.Errorf("Content = %q, want two", part.Content())
	}
	// The original display form survives replacement.
	if part.Path().Display() != "/aasx/Data.xml" {
		t.Errorf("Display = %q, want original /aasx/Data.xml", part.Path().Display())
	}
}

func TestRegistryContentIsCopied(t *testing.T) {
	registry := NewRegistry()
	path := opcpath.MustParse("/p.bin")

	input := []byte("abc")
	registry.Put(path, "application/octet-stream", input)
	input[0] = 'z'

	part, _ := registry.Find(path)
	view := part.Content()
	if !bytes.Equal(view, []byte("abc")) {
		t.Errorf("registry shares the caller's slice: %q", view)
	}

	view[0] = 'q'
	again, _ := registry.Find(path)
	if !bytes.Equal(again.Content(), []byte("abc")) {
		t.Error("Content hands out a shared mutable alias")
	}
}

func TestRegistryDelete(t *testing.T) {
	registry := NewRegistry()
	path := opcpath.MustParse("/p.bin")
	registry.Put(path, "application/octet-stream", nil)

	if !registry.Delete(path) {
		t.Error("Delete of existing part reported false")
	}
	if registry.Delete(path) {
		t.Error("Delete of absent part reported true")
	}
	if _, ok := registry.Find(path); ok {
		t.Error("deleted part still found")
	}
}

func TestRegistryPartsSorted(t *testing.T) {
	registry := NewRegistry()
	for _, uri := range []string{"/c.bin", "/a.bin", "/b.bin"} {
		registry.Put(opcpath.MustParse(uri), "application/octet-stream", nil)
	}

	var keys []string
	for _, part := range registry.Parts() {
		keys = append(keys, part.Path().Key())
	}
	want := []string{"/a.bin", "/b.bin", "/c.bin"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("Parts order = %v, want %v", keys, want)
		}
	}
}
