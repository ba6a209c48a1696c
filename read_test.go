// github.com/RomanVPX/ExifReader - image metadata extraction in Go
// Copyright (C) 2026  The ExifReader authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package exifreader

import (
	"fmt"
	"strings"
	"testing"

	"github.com/RomanVPX/ExifReader/xmldom"
	"github.com/google/go-cmp/cmp"
)

type recordingSink struct {
	warnings []string
}

func (s *recordingSink) Warningf(format string, args ...any) {
	s.warnings = append(s.warnings, fmt.Sprintf(format, args...))
}

func simpleDoc(prop string) string {
	return rdfHead + `<rdf:Description>` + prop + `</rdf:Description>` + rdfFoot
}

func TestReadChunks(t *testing.T) {
	doc := simpleDoc(`<tiff:Orientation>3</tiff:Orientation>`)
	buf := append([]byte("IMAGEDATA"), doc...)
	buf = append(buf, "TRAILER"...)

	got := ReadXMP(buf, []Chunk{{DataOffset: 9, Length: len(doc)}},
		WithDiagnostics(DiscardDiagnostics))

	if got.Raw() != doc {
		t.Errorf("raw source: got %q, want %q", got.Raw(), doc)
	}
	tag, ok := got["Orientation"]
	if !ok {
		t.Fatal("Orientation tag missing")
	}
	if tag.Description != "Rotate 180" {
		t.Errorf("description: got %q, want %q", tag.Description, "Rotate 180")
	}
}

func TestReadEmptyChunks(t *testing.T) {
	got := ReadXMP([]byte("x"), nil, WithDiagnostics(DiscardDiagnostics))
	if len(got) != 0 {
		t.Errorf("expected empty tag map, got %v", got)
	}
}

func TestReadPacketEnvelope(t *testing.T) {
	src := "\x00\x01framing<?xpacket begin=\"\" id=\"W5M0MpCehiHzreSzNTczkc9d\"?>" +
		simpleDoc(`<xmp:A>1</xmp:A>`) +
		"<?xpacket end=\"w\"?>junk after"

	got := ReadXMPString(src, WithDiagnostics(DiscardDiagnostics))

	if d := cmp.Diff(textTag("1"), got["A"]); d != "" {
		t.Errorf("tag A (-want +got):\n%s", d)
	}
	// the raw source keeps the untrimmed input
	if got.Raw() != src {
		t.Errorf("raw source: got %q, want %q", got.Raw(), src)
	}
}

func TestReadExtendedChunks(t *testing.T) {
	std := simpleDoc(`<xmp:Std>s</xmp:Std>`)
	ext := simpleDoc(`<xmp:Ext>e</xmp:Ext>`)
	buf := []byte(std + ext)

	got := ReadXMP(buf, []Chunk{
		{DataOffset: 0, Length: len(std)},
		{DataOffset: len(std), Length: len(ext)},
	}, WithDiagnostics(DiscardDiagnostics))

	if d := cmp.Diff(textTag("s"), got["Std"]); d != "" {
		t.Errorf("standard tag (-want +got):\n%s", d)
	}
	if d := cmp.Diff(textTag("e"), got["Ext"]); d != "" {
		t.Errorf("extended tag (-want +got):\n%s", d)
	}
	if got.Raw() != std+ext {
		t.Errorf("raw source: got %q", got.Raw())
	}
}

func TestReadExtendedSplitMidDocument(t *testing.T) {
	// Neither half parses on its own; the byte concatenation does.
	doc := simpleDoc(`<xmp:A>1</xmp:A>`)
	cut := len(doc) / 2
	buf := []byte(doc)

	got := ReadXMP(buf, []Chunk{
		{DataOffset: 0, Length: cut},
		{DataOffset: cut, Length: len(doc) - cut},
	}, WithDiagnostics(DiscardDiagnostics))

	if d := cmp.Diff(textTag("1"), got["A"]); d != "" {
		t.Errorf("tag A (-want +got):\n%s", d)
	}
	if got.Raw() != doc {
		t.Errorf("raw source: got %q, want %q", got.Raw(), doc)
	}
}

func TestReadPartialFailure(t *testing.T) {
	std := simpleDoc(`<xmp:Std>s</xmp:Std>`)
	ext := "<broken"
	buf := []byte(std + ext)

	got := ReadXMP(buf, []Chunk{
		{DataOffset: 0, Length: len(std)},
		{DataOffset: len(std), Length: len(ext)},
	}, WithDiagnostics(DiscardDiagnostics))

	if d := cmp.Diff(textTag("s"), got["Std"]); d != "" {
		t.Errorf("standard tag (-want +got):\n%s", d)
	}
	// only the successful chunk contributes to the raw source
	if got.Raw() != std {
		t.Errorf("raw source: got %q, want %q", got.Raw(), std)
	}
}

func TestReadNoParser(t *testing.T) {
	sink := &recordingSink{}
	got := ReadXMPString(simpleDoc(`<xmp:A>1</xmp:A>`),
		WithParser(nil), WithDiagnostics(sink))

	if len(got) != 0 {
		t.Errorf("expected empty tag map, got %v", got)
	}
	if len(sink.warnings) != 1 || !strings.Contains(sink.warnings[0], "no XML parser") {
		t.Errorf("expected a no-parser warning, got %v", sink.warnings)
	}
}

func TestReadUnparsableDocument(t *testing.T) {
	got := ReadXMPString("this is not XML", WithDiagnostics(DiscardDiagnostics))
	if len(got) != 0 {
		t.Errorf("expected empty tag map, got %v", got)
	}
	if _, ok := got[RawTagName]; ok {
		t.Error("raw source present for a failed document")
	}
}

func TestReadMissingRDF(t *testing.T) {
	got := ReadXMPString(`<foo><bar/></foo>`, WithDiagnostics(DiscardDiagnostics))
	if len(got) != 0 {
		t.Errorf("expected empty tag map, got %v", got)
	}
}

func TestReadNamespaceRepair(t *testing.T) {
	// a real-world packet with every xmlns declaration missing
	src := `<x:xmpmeta><rdf:RDF><rdf:Description>` +
		`<tiff:Orientation>3</tiff:Orientation>` +
		`</rdf:Description></rdf:RDF></x:xmpmeta>`

	got := ReadXMPString(src, WithDiagnostics(DiscardDiagnostics))

	tag, ok := got["Orientation"]
	if !ok {
		t.Fatal("Orientation tag missing after namespace repair")
	}
	if tag.Description != "Rotate 180" {
		t.Errorf("description: got %q, want %q", tag.Description, "Rotate 180")
	}
}

func TestReadIdempotent(t *testing.T) {
	src := simpleDoc(`<xmp:A>1</xmp:A><xmp:S xmp:X="x"/>`)
	first := ReadXMPString(src, WithDiagnostics(DiscardDiagnostics))
	second := ReadXMPString(src, WithDiagnostics(DiscardDiagnostics))
	if d := cmp.Diff(first, second); d != "" {
		t.Errorf("reads differ (-first +second):\n%s", d)
	}
}

func TestReadInvalidUTF8(t *testing.T) {
	doc := simpleDoc(`<xmp:A>a` + "\xff" + `b</xmp:A>`)
	buf := []byte(doc)

	got := ReadXMP(buf, []Chunk{{DataOffset: 0, Length: len(buf)}},
		WithDiagnostics(DiscardDiagnostics))

	want := "a�b"
	tag, ok := got["A"]
	if !ok {
		t.Fatal("tag A missing")
	}
	if tag.Value != Text(want) {
		t.Errorf("value: got %q, want %q", tag.Value, want)
	}
}

func TestReadForeignParserError(t *testing.T) {
	got := ReadXMPString(simpleDoc(`<xmp:A>1</xmp:A>`),
		WithParser(parserErrorParser{}), WithDiagnostics(DiscardDiagnostics))
	if len(got) != 0 {
		t.Errorf("expected empty tag map, got %v", got)
	}
}

// parserErrorParser mimics a browser-style parser that reports failure
// through a parsererror document.
type parserErrorParser struct{}

func (parserErrorParser) Parse(string) (*xmldom.Document, error) {
	return &xmldom.Document{Root: &xmldom.Element{Name: "parsererror"}}, nil
}
