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

// defaultParser is the process-wide parser slot.  Swapping it between
// calls is permitted but not interlocked; callers serialize swaps.
var defaultParser xmldom.Parser = xmldom.NewDecoder()

// SetDefaultParser replaces the process-wide default parser.  Passing
// nil disables XMP reading for callers that do not inject their own
// parser.
func SetDefaultParser(p xmldom.Parser) {
	defaultParser = p
}

// Reader extracts XMP tags from assembled metadata chunks.  A Reader
// holds no state across calls and is safe for concurrent use as long
// as each call sees its own inputs.
type Reader struct {
	parser    xmldom.Parser
	setParser bool
	diag      DiagnosticSink
}

// Option configures a [Reader].
type Option func(*Reader)

// WithParser injects the XML parser to use instead of the process-wide
// default.
func WithParser(p xmldom.Parser) Option {
	return func(r *Reader) {
		r.parser = p
		r.setParser = true
	}
}

// WithDiagnostics routes warnings to the given sink.
func WithDiagnostics(d DiagnosticSink) Option {
	return func(r *Reader) {
		r.diag = d
	}
}

// NewReader allocates a Reader.
func NewReader(opts ...Option) *Reader {
	r := &Reader{diag: glogSink{}}
	for _, opt := range opts {
		opt(r)
	}
	if !r.setParser {
		r.parser = defaultParser
	}
	return r
}

// ReadXMP reads the XMP documents located by chunks within buf: the
// first chunk holds the standard XMP packet, any further chunks the
// extended XMP to be concatenated.  The result maps tag local names to
// tags and stores the joined raw XML under [RawTagName].
//
// ReadXMP never fails: documents that cannot be parsed contribute no
// tags.
func ReadXMP(buf []byte, chunks []Chunk, opts ...Option) TagMap {
	return NewReader(opts...).ReadBytes(buf, chunks)
}

// ReadXMPString reads a single XMP document given as a UTF-8 string.
// This is the form used for TIFF files, where the container reader
// extracts the document from the ApplicationNotes tag.
func ReadXMPString(src string, opts ...Option) TagMap {
	return NewReader(opts...).ReadString(src)
}

// ReadBytes is the chunk-based form of the read operation.
func (r *Reader) ReadBytes(buf []byte, chunks []Chunk) TagMap {
	docs := assembleChunks(buf, chunks)
	// extended XMP may split the document at an arbitrary byte offset,
	// so the fallback joins the chunks before UTF-8 decoding
	var combined string
	if len(chunks) > 1 {
		var all []byte
		for _, c := range chunks {
			all = append(all, chunkBytes(buf, c)...)
		}
		combined = decodeUTF8(all)
	}
	return r.readDocs(docs, combined)
}

// ReadString reads a single document.
func (r *Reader) ReadString(src string) TagMap {
	return r.readDocs([]string{src}, "")
}

func (r *Reader) readDocs(docs []string, combined string) TagMap {
	tags := TagMap{}
	if len(docs) == 0 {
		return tags
	}
	if r.parser == nil {
		r.diag.Warningf("xmp: no XML parser available, skipping XMP metadata")
		return tags
	}

	var raw strings.Builder
	parsed := 0
	for _, doc := range docs {
		tree, err := r.parseDocument(doc)
		if err != nil {
			r.diag.Warningf("xmp: discarding unreadable document: %v", err)
			continue
		}
		r.interpretTree(tree, tags)
		raw.WriteString(doc)
		parsed++
	}

	// Extended XMP is sometimes split mid-document.  When neither part
	// parses on its own, retry the byte concatenation as one document.
	if parsed == 0 && combined != "" {
		if tree, err := r.parseDocument(combined); err == nil {
			tags = TagMap{}
			r.interpretTree(tree, tags)
			raw.Reset()
			raw.WriteString(combined)
		}
	}

	if raw.Len() > 0 {
		s := raw.String()
		tags[RawTagName] = Tag{Value: Text(s), Attr: map[string]string{}, Description: s}
	}
	return tags
}

// parseDocument trims the packet envelope, parses the XML, and builds
// the intermediate tree.
func (r *Reader) parseDocument(src string) (*node, error) {
	doc, err := r.parseXML(trimPacket(src))
	if err != nil {
		return nil, err
	}
	return toTree(doc)
}

// parseXML runs the injected parser.  On a failure caused by an
// unbound namespace prefix, the missing declarations are inserted and
// the parse retried, once per document.
func (r *Reader) parseXML(src string) (*xmldom.Document, error) {
	doc, err := r.parser.Parse(src)
	if err == nil {
		err = checkDocument(doc)
	}
	if err == nil {
		return doc, nil
	}
	if !indicatesUnboundPrefix(err) {
		return nil, err
	}
	repaired, changed := declareMissingNamespaces(src)
	if !changed {
		return nil, err
	}
	doc, err = r.parser.Parse(repaired)
	if err == nil {
		err = checkDocument(doc)
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

var errParserError = errors.New("xmp: parser reported an error document")

// checkDocument normalizes the two ways a parser can fail: an error
// return, or a browser-style document whose root is a parsererror
// element.
func checkDocument(doc *xmldom.Document) error {
	if doc == nil || doc.Root == nil {
		return errParserError
	}
	if attrLocalName(doc.Root.Name) == "parsererror" {
		return errParserError
	}
	return nil
}

// indicatesUnboundPrefix recognizes parse failures worth a namespace
// repair, whatever parser produced them.
func indicatesUnboundPrefix(err error) bool {
	var unbound *xmldom.UnboundPrefixError
	if errors.As(err, &unbound) {
		return true
	}
	msg := strings.ToLower(err.Error())
	if !strings.Contains(msg, "prefix") && !strings.Contains(msg, "namespace") {
		return false
	}
	return strings.Contains(msg, "unbound") ||
		strings.Contains(msg, "undeclared") ||
		strings.Contains(msg, "undefined")
}
