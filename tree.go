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
	"errors"
	"strings"

	"github.com/RomanVPX/ExifReader/xmldom"
)

// node is one element of the intermediate tree built from the DOM.  It
// is decoupled from the parser vendor: the interpreter only ever sees
// nodes.
type node struct {
	// attrNames keeps the attributes in document order; attr maps the
	// same qualified names to their values.
	attrNames []string
	attr      map[string]string

	value nodeValue
}

// nodeValue is the content of a node: [textValue] for a text leaf or
// [*elemValue] for element content (possibly empty).
type nodeValue interface {
	isNodeValue()
}

// textValue is the collapsed text of an element with character data
// only.  Whitespace is preserved verbatim.
type textValue string

// elemValue holds the child elements of a node, grouped by qualified
// name.  names lists the distinct child names in first-occurrence
// order; a slot with more than one node marks a repeated child name.
type elemValue struct {
	names []string
	slots map[string][]*node
}

func (textValue) isNodeValue() {}
func (*elemValue) isNodeValue() {}

func (v *elemValue) add(name string, n *node) {
	if v.slots == nil {
		v.slots = make(map[string][]*node)
	}
	if _, ok := v.slots[name]; !ok {
		v.names = append(v.names, name)
	}
	v.slots[name] = append(v.slots[name], n)
}

// find returns the last node recorded under a child name matching the
// given RDF local name, with or without the rdf prefix.
func (v *elemValue) find(local string) *node {
	for _, name := range v.names {
		if isRDFName(name, local) {
			slot := v.slots[name]
			return slot[len(slot)-1]
		}
	}
	return nil
}

// text returns the node's textual value; element content has none.
func (n *node) text() string {
	if t, ok := n.value.(textValue); ok {
		return string(t)
	}
	return ""
}

// elems returns the node's child elements, or nil for a text leaf.
func (n *node) elems() *elemValue {
	if v, ok := n.value.(*elemValue); ok {
		return v
	}
	return nil
}

// isRDFName reports whether a qualified name denotes the given RDF
// syntax term.  Only prefixes are compared; a document using the
// default namespace writes the term without a prefix.
func isRDFName(qname, local string) bool {
	return qname == "rdf:"+local || qname == local
}

var errNoRDF = errors.New("xmp: missing rdf:RDF element")

// toTree locates the rdf:RDF root, optionally wrapped in x:xmpmeta,
// and converts it into the intermediate tree.
func toTree(doc *xmldom.Document) (*node, error) {
	el := findRDF(doc.Root)
	if el == nil {
		return nil, errNoRDF
	}
	return buildNode(el), nil
}

func findRDF(el *xmldom.Element) *xmldom.Element {
	if el == nil {
		return nil
	}
	if isRDFName(el.Name, "RDF") {
		return el
	}
	for _, c := range el.Children {
		if e, ok := c.(*xmldom.Element); ok {
			if found := findRDF(e); found != nil {
				return found
			}
		}
	}
	return nil
}

// buildNode converts one DOM element.  An element with child elements
// becomes an elemValue (interleaved text is framing whitespace and is
// dropped); an element with character data only collapses into its
// text; an empty element becomes an empty elemValue.
func buildNode(el *xmldom.Element) *node {
	n := &node{attr: make(map[string]string)}
	for _, a := range el.Attr {
		if _, ok := n.attr[a.Name]; !ok {
			n.attrNames = append(n.attrNames, a.Name)
		}
		n.attr[a.Name] = a.Value
	}

	var childElems []*xmldom.Element
	var text strings.Builder
	hasText := false
	for _, c := range el.Children {
		switch c := c.(type) {
		case *xmldom.Element:
			childElems = append(childElems, c)
		case xmldom.Text:
			text.WriteString(string(c))
			hasText = true
		}
	}

	switch {
	case len(childElems) > 0:
		v := &elemValue{}
		for _, e := range childElems {
			v.add(e.Name, buildNode(e))
		}
		n.value = v
	case hasText:
		n.value = textValue(text.String())
	default:
		n.value = &elemValue{}
	}
	return n
}
