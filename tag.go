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

// Tag is one extracted metadata property.
type Tag struct {
	// Value is the property value: [Text], [Struct], or [Array].
	Value Value

	// Attr holds the property's qualifiers by local name.  The
	// xml:lang qualifier appears under the key "lang".
	Attr map[string]string

	// Description is a human-readable rendering of Value.
	Description string
}

// Value is the value of a [Tag].  It is one of [Text], [Struct], or
// [Array].  Tag itself also implements Value, so that array elements
// can carry their own qualifiers and descriptions.
type Value interface {
	isValue()
}

// Text is a simple text or URI value.
type Text string

// Struct is an XMP structure: a mapping from field local names to
// their tags.
type Struct map[string]Tag

// Array is an XMP array.  The rdf:Bag, rdf:Seq and rdf:Alt container
// forms all decode to Array; the container kind is not preserved.
// Elements are [Tag] values, except that structure elements written
// with rdf:parseType="Resource" or a nested rdf:Description appear as
// naked [Struct] maps.  An attribute-shorthand structure element is a
// [Tag] whose Value is a [Struct].
type Array []Value

func (Text) isValue()   {}
func (Struct) isValue() {}
func (Array) isValue()  {}
func (Tag) isValue()    {}

func (t Text) String() string {
	return string(t)
}

// TagMap is the result of reading an XMP document: extracted tags by
// local name, plus the reserved [RawTagName] entry.
type TagMap map[string]Tag

// RawTagName is the reserved key holding the raw XML source of the
// document, joined in chunk order.  Its value is a [Text].
const RawTagName = "_raw"

// Raw returns the raw XML source stored under [RawTagName], or "" if
// the read produced no usable document.
func (m TagMap) Raw() string {
	if t, ok := m[RawTagName]; ok {
		if s, ok := t.Value.(Text); ok {
			return string(s)
		}
	}
	return ""
}
