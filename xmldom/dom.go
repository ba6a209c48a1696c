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

// Package xmldom provides a small vendor-neutral XML document model and
// a default parser built on encoding/xml.
//
// Element and attribute names keep the colon-qualified prefix:local
// spelling used in the source document.  Namespace URIs are tracked
// only as far as needed to reconstruct the original prefixes; callers
// work with prefixes alone.
package xmldom

// Node is the content of an element: either [*Element] or [Text].
type Node interface {
	isNode()
}

// Document is a parsed XML document.
type Document struct {
	Root *Element
}

// Element is an XML element.  Name is the qualified name as written in
// the source ("rdf:Description", "about", ...).  Attr preserves
// attribute order, including xmlns declarations.
type Element struct {
	Name     string
	Attr     []Attr
	Children []Node
}

// Attr is a single attribute with its qualified name.
type Attr struct {
	Name  string
	Value string
}

// Text is character data inside an element.  CDATA sections arrive here
// too; encoding/xml folds them into ordinary character data.
type Text string

func (*Element) isNode() {}
func (Text) isNode()     {}

// Parser turns an XML source into a Document.  Implementations report
// failure through the returned error; a nil error with a nil document
// is treated as failure by callers.
type Parser interface {
	Parse(src string) (*Document, error)
}
