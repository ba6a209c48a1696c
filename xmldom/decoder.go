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

package xmldom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

// xmlNamespace is the namespace bound to the reserved "xml" prefix.
const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

// Decoder is the default [Parser].  It reads the token stream produced
// by encoding/xml and rebuilds the qualified names the document used,
// by keeping its own stack of in-scope xmlns bindings.
type Decoder struct {
	// AllowUnboundPrefixes keeps names whose prefix has no in-scope
	// xmlns binding instead of failing with [UnboundPrefixError].
	AllowUnboundPrefixes bool
}

// NewDecoder returns a Decoder with default settings.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// UnboundPrefixError reports a namespace prefix used without an
// in-scope xmlns declaration.
type UnboundPrefixError struct {
	Prefix string
}

func (e *UnboundPrefixError) Error() string {
	return fmt.Sprintf("xmldom: unbound namespace prefix %q", e.Prefix)
}

// ErrNoContent is returned when the source contains no element.
var ErrNoContent = errors.New("xmldom: document has no element content")

// Parse implements the [Parser] interface.
func (d *Decoder) Parse(src string) (*Document, error) {
	dec := xml.NewDecoder(strings.NewReader(src))
	dec.CharsetReader = charsetReader
	b := &builder{dec: dec, allowUnbound: d.AllowUnboundPrefixes}
	root, err := b.run()
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, ErrNoContent
	}
	return &Document{Root: root}, nil
}

// charsetReader resolves the encoding named in an XML declaration via
// the IANA registry.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	if strings.EqualFold(charset, "utf-8") {
		return input, nil
	}
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("xmldom: unsupported charset %q", charset)
	}
	return enc.NewDecoder().Reader(input), nil
}

type binding struct {
	prefix string
	uri    string
}

type builder struct {
	dec          *xml.Decoder
	allowUnbound bool

	bindings []binding
	counts   []int // bindings added per open element
}

func (b *builder) run() (*Element, error) {
	var root *Element
	var stack []*Element
	for {
		tok, err := b.dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			// xmlns declarations on this element are in scope for the
			// element's own name.
			n := 0
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" {
					b.bindings = append(b.bindings, binding{prefix: a.Name.Local, uri: a.Value})
					n++
				} else if a.Name.Space == "" && a.Name.Local == "xmlns" {
					b.bindings = append(b.bindings, binding{prefix: "", uri: a.Value})
					n++
				}
			}
			b.counts = append(b.counts, n)

			name, err := b.qualify(t.Name, false)
			if err != nil {
				return nil, err
			}
			el := &Element{Name: name}
			for _, a := range t.Attr {
				an, err := b.qualify(a.Name, true)
				if err != nil {
					return nil, err
				}
				el.Attr = append(el.Attr, Attr{Name: an, Value: a.Value})
			}
			if len(stack) == 0 {
				if root == nil {
					root = el
				}
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			if len(b.counts) > 0 {
				n := b.counts[len(b.counts)-1]
				b.counts = b.counts[:len(b.counts)-1]
				b.bindings = b.bindings[:len(b.bindings)-n]
			}

		case xml.CharData:
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				// the token's buffer is reused by the decoder
				parent.Children = append(parent.Children, Text(string(t)))
			}
		}
	}
	return root, nil
}

// qualify maps an encoding/xml name back to its prefix:local spelling.
// encoding/xml resolves declared prefixes to namespace URIs and passes
// undeclared prefixes through verbatim.
func (b *builder) qualify(name xml.Name, isAttr bool) (string, error) {
	if name.Space == "" {
		return name.Local, nil
	}
	switch name.Space {
	case "xml", xmlNamespace:
		return "xml:" + name.Local, nil
	case "xmlns":
		return "xmlns:" + name.Local, nil
	}
	for i := len(b.bindings) - 1; i >= 0; i-- {
		bd := b.bindings[i]
		if bd.uri != name.Space {
			continue
		}
		if bd.prefix == "" {
			if isAttr {
				// the default namespace does not apply to attributes
				continue
			}
			return name.Local, nil
		}
		return bd.prefix + ":" + name.Local, nil
	}
	if looksLikePrefix(name.Space) {
		if b.allowUnbound {
			return name.Space + ":" + name.Local, nil
		}
		return "", &UnboundPrefixError{Prefix: name.Space}
	}
	return name.Local, nil
}

// looksLikePrefix distinguishes a verbatim prefix from a namespace URI.
// Prefixes are NCNames and cannot contain a colon or slash.
func looksLikePrefix(s string) bool {
	return !strings.ContainsAny(s, ":/")
}
