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
	"strings"
	"testing"
)

func TestDeclareMissingNamespaces(t *testing.T) {
	src := `<rdf:RDF><rdf:Description tiff:Orientation="3"><dc:title>x</dc:title></rdf:Description></rdf:RDF>`
	got, changed := declareMissingNamespaces(src)
	if !changed {
		t.Fatal("expected declarations to be inserted")
	}
	want := `<rdf:RDF` +
		` xmlns:dc="http://purl.org/dc/elements/1.1/"` +
		` xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"` +
		` xmlns:tiff="http://ns.adobe.com/tiff/1.0/"` +
		`><rdf:Description tiff:Orientation="3"><dc:title>x</dc:title></rdf:Description></rdf:RDF>`
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestDeclareMissingNamespacesUnknownPrefix(t *testing.T) {
	src := `<custom:thing>1</custom:thing>`
	got, changed := declareMissingNamespaces(src)
	if !changed {
		t.Fatal("expected declarations to be inserted")
	}
	if !strings.Contains(got, `xmlns:custom="urn:x-prefix:custom"`) {
		t.Errorf("missing synthesized declaration in %q", got)
	}
}

func TestDeclareMissingNamespacesAlreadyDeclared(t *testing.T) {
	src := `<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"/>`
	got, changed := declareMissingNamespaces(src)
	if changed {
		t.Errorf("unexpected change: %q", got)
	}
}

func TestDeclareMissingNamespacesIgnoresXML(t *testing.T) {
	src := `<a xml:lang="en">x</a>`
	_, changed := declareMissingNamespaces(src)
	if changed {
		t.Error("xml prefix must not be declared")
	}
}
