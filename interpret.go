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
)

// rule identifies which of the RDF shorthand forms a property element
// was classified as.  The forms are tried in this order; the first
// match wins.
type rule int

const (
	ruleEmptyResource rule = iota + 1
	ruleQualifiedValue
	ruleStructure
	ruleCompactStructure
	ruleArray
	ruleSimple
)

// interpretTree merges the contents of every rdf:Description element
// under the rdf:RDF root into tags.  Sibling descriptions are
// equivalent to a single one; on duplicate names the last wins.
func (r *Reader) interpretTree(root *node, tags TagMap) {
	ev := root.elems()
	if ev == nil {
		return
	}
	for _, name := range ev.names {
		if !isRDFName(name, "Description") {
			continue
		}
		for _, desc := range ev.slots[name] {
			r.interpretDescription(desc, tags)
		}
	}
}

func (r *Reader) interpretDescription(desc *node, tags TagMap) {
	// simple unqualified properties may be written as attributes of
	// the description element itself
	for _, name := range desc.attrNames {
		if isSyntacticAttr(name) || name == "xml:lang" {
			continue
		}
		tags[localName(name)] = simpleTag(name, desc.attr[name])
	}

	ev := desc.elems()
	if ev == nil {
		return
	}
	for _, name := range ev.names {
		tag, err := r.interpretProperty(name, ev.slots[name])
		if err != nil {
			r.diag.Warningf("xmp: skipping tag %s: %v", name, err)
			continue
		}
		tags[localName(name)] = tag
	}
}

// interpretProperty classifies one property element.  A failure is
// contained to this property; the caller skips it and continues with
// its siblings.
func (r *Reader) interpretProperty(qname string, slot []*node) (tag Tag, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("interpreting %s: %v", qname, p)
		}
	}()
	// a repeated element name keeps only its last occurrence
	n := slot[len(slot)-1]
	tag, _ = r.classify(qname, n)
	return tag, nil
}

// classify applies the shorthand rules in priority order.
func (r *Reader) classify(qname string, n *node) (Tag, rule) {
	if isEmptyResource(n) {
		return Tag{Value: Text(""), Attr: map[string]string{}, Description: ""}, ruleEmptyResource
	}
	if valueNode, descNode := qualifiedValueNode(n); valueNode != nil {
		return r.qualifiedValueTag(qname, n, valueNode, descNode), ruleQualifiedValue
	}
	if members, nested, ok := structureNode(n); ok {
		return r.structureTag(n, members, nested), ruleStructure
	}
	if isCompactStructure(n) {
		return r.compactStructureTag(n), ruleCompactStructure
	}
	if container := arrayContainer(n); container != nil {
		return r.arrayTag(qname, n, container), ruleArray
	}
	return r.simpleValueTag(qname, n), ruleSimple
}

// rdfAttr looks up an RDF syntax attribute.  Old writers emit these
// without the rdf prefix, so both spellings are accepted.
func rdfAttr(n *node, local string) (string, bool) {
	if v, ok := n.attr["rdf:"+local]; ok {
		return v, true
	}
	if v, ok := n.attr[local]; ok {
		return v, true
	}
	return "", false
}

func parseTypeResource(n *node) bool {
	v, _ := rdfAttr(n, "parseType")
	return v == "Resource"
}

// uriOrText returns the node's rdf:resource URI if present, else its
// text content.
func uriOrText(n *node) string {
	if v, ok := rdfAttr(n, "resource"); ok {
		return v
	}
	return n.text()
}

// isEmptyResource detects an rdf:parseType="Resource" element with no
// members and at most whitespace content.
func isEmptyResource(n *node) bool {
	if !parseTypeResource(n) {
		return false
	}
	switch v := n.value.(type) {
	case textValue:
		return strings.TrimSpace(string(v)) == ""
	case *elemValue:
		return len(v.names) == 0
	}
	return false
}

// qualifiedValueNode detects the simple-value-with-qualifiers forms:
// rdf:parseType="Resource" with an rdf:value member, or a sole nested
// rdf:Description holding rdf:value.  It returns the rdf:value node
// and, for the nested form, the description carrying it.
func qualifiedValueNode(n *node) (valueNode, descNode *node) {
	ev := n.elems()
	if ev == nil {
		return nil, nil
	}
	if parseTypeResource(n) {
		return ev.find("value"), nil
	}
	if len(ev.names) == 1 && isRDFName(ev.names[0], "Description") {
		d := ev.find("Description")
		if dev := d.elems(); dev != nil {
			if vn := dev.find("value"); vn != nil {
				return vn, d
			}
		}
	}
	return nil, nil
}

// qualifiedValueTag lifts the rdf:value into the tag value and turns
// the remaining members into qualifier attributes.
func (r *Reader) qualifiedValueTag(qname string, n, valueNode, descNode *node) Tag {
	val := uriOrText(valueNode)
	attrs := map[string]string{}
	addLocalAttrs(attrs, n)
	if descNode != nil {
		addLocalAttrs(attrs, descNode)
		addQualifierMembers(attrs, descNode)
	} else {
		addQualifierMembers(attrs, n)
	}
	return Tag{Value: Text(val), Attr: attrs, Description: describeScalar(qname, val)}
}

// addQualifierMembers records every non-rdf:value child as a qualifier
// attribute, keyed by local name with the child's textual value.
func addQualifierMembers(attrs map[string]string, n *node) {
	ev := n.elems()
	if ev == nil {
		return
	}
	for _, name := range ev.names {
		if isRDFName(name, "value") {
			continue
		}
		slot := ev.slots[name]
		attrs[attrLocalName(name)] = slot[len(slot)-1].text()
	}
}

// structureNode detects the structure forms: rdf:parseType="Resource"
// without rdf:value, or a sole nested rdf:Description without
// rdf:value.  Both variants of the qualified-value form have already
// been ruled out by the caller.
func structureNode(n *node) (members *node, nested, ok bool) {
	if parseTypeResource(n) {
		return n, false, true
	}
	ev := n.elems()
	if ev != nil && len(ev.names) == 1 && isRDFName(ev.names[0], "Description") {
		return ev.find("Description"), true, true
	}
	return nil, false, false
}

// structureTag interprets each member recursively.  Attributes of a
// nested rdf:Description are members of the structure, not qualifiers.
func (r *Reader) structureTag(outer, members *node, nested bool) Tag {
	s := Struct{}
	if nested {
		for _, name := range members.attrNames {
			if isSyntacticAttr(name) || name == "xml:lang" {
				continue
			}
			s[localName(name)] = simpleTag(name, members.attr[name])
		}
	}
	if ev := members.elems(); ev != nil {
		for _, name := range ev.names {
			tag, err := r.interpretProperty(name, ev.slots[name])
			if err != nil {
				r.diag.Warningf("xmp: skipping structure member %s: %v", name, err)
				continue
			}
			s[localName(name)] = tag
		}
	}
	attrs := map[string]string{}
	addLocalAttrs(attrs, outer)
	return Tag{Value: s, Attr: attrs, Description: describeStruct(s)}
}

// isCompactStructure detects the attribute-shorthand structure form:
// an element with no members, no language qualifier and no URI value.
func isCompactStructure(n *node) bool {
	ev := n.elems()
	if ev == nil || len(ev.names) > 0 {
		return false
	}
	if _, ok := n.attr["xml:lang"]; ok {
		return false
	}
	if _, ok := rdfAttr(n, "resource"); ok {
		return false
	}
	return true
}

func (r *Reader) compactStructureTag(n *node) Tag {
	s := Struct{}
	for _, name := range n.attrNames {
		if isSyntacticAttr(name) {
			continue
		}
		s[localName(name)] = simpleTag(name, n.attr[name])
	}
	return Tag{Value: s, Attr: map[string]string{}, Description: describeStruct(s)}
}

// arrayContainer returns the rdf:Bag, rdf:Seq or rdf:Alt child, if
// any.  The three container kinds decode identically.
func arrayContainer(n *node) *node {
	ev := n.elems()
	if ev == nil {
		return nil
	}
	for _, local := range []string{"Bag", "Seq", "Alt"} {
		if c := ev.find(local); c != nil {
			return c
		}
	}
	return nil
}

func (r *Reader) arrayTag(qname string, n, container *node) Tag {
	arr := Array{}
	if ev := container.elems(); ev != nil {
		for _, name := range ev.names {
			if !isRDFName(name, "li") {
				continue
			}
			for _, item := range ev.slots[name] {
				arr = append(arr, r.interpretItem(item))
			}
		}
	}
	attrs := map[string]string{}
	addLocalAttrs(attrs, n)
	return Tag{Value: arr, Attr: attrs, Description: describeArray(qname, arr)}
}

// interpretItem classifies one rdf:li element.  Structure items yield
// their member map directly rather than a wrapping tag.
func (r *Reader) interpretItem(item *node) Value {
	tag, rl := r.classify("rdf:li", item)
	if rl == ruleStructure {
		return tag.Value
	}
	return tag
}

// simpleValueTag is the default form: the rdf:resource URI or the text
// content, with the element's own attributes as qualifiers.
func (r *Reader) simpleValueTag(qname string, n *node) Tag {
	val := uriOrText(n)
	attrs := map[string]string{}
	addLocalAttrs(attrs, n)
	return Tag{Value: Text(val), Attr: attrs, Description: describeScalar(qname, val)}
}

// simpleTag builds the tag for an attribute-shorthand property.
func simpleTag(qname, value string) Tag {
	return Tag{Value: Text(value), Attr: map[string]string{}, Description: describeScalar(qname, value)}
}

// addLocalAttrs copies the node's non-syntactic attributes, keyed by
// local name.
func addLocalAttrs(attrs map[string]string, n *node) {
	for _, name := range n.attrNames {
		if isSyntacticAttr(name) {
			continue
		}
		attrs[attrLocalName(name)] = n.attr[name]
	}
}

// isSyntacticAttr reports whether an attribute belongs to the RDF/XML
// syntax layer rather than to the data model.  Namespace declarations
// and the RDF node-identification attributes never become qualifiers.
func isSyntacticAttr(name string) bool {
	if name == "xmlns" || strings.HasPrefix(name, "xmlns:") {
		return true
	}
	switch {
	case isRDFName(name, "parseType"),
		isRDFName(name, "resource"),
		isRDFName(name, "about"),
		isRDFName(name, "ID"),
		isRDFName(name, "nodeID"),
		isRDFName(name, "datatype"):
		return true
	}
	return false
}
