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

// Package exifreader extracts XMP metadata embedded in image files.
//
// # Reading XMP
//
// The container reader locates the XMP segments of a JPEG, PNG, TIFF,
// HEIC or WebP file and hands them to [ReadXMP] as a byte buffer plus
// an ordered list of [Chunk] descriptors.  The first chunk is the
// standard XMP packet; any further chunks hold extended XMP and are
// concatenated before parsing.  For TIFF files the document arrives as
// a single string from the ApplicationNotes tag; use [ReadXMPString].
//
// The result is a [TagMap] from tag local names to [Tag] values.  Each
// tag carries its value, its qualifiers, and a human-readable
// description.  The raw XML source is available under [RawTagName].
//
// Reading never fails.  Documents that cannot be parsed contribute no
// tags, malformed properties are skipped one by one, and everything
// the reader had to give up on is reported to the configured
// [DiagnosticSink].
//
// # Values
//
// XMP admits several equivalent RDF/XML spellings for the same
// property.  The reader folds all of them into three value shapes:
//
//   - [Text] for simple values and URIs,
//   - [Struct] for structures, whichever of the element, nested
//     description, parseType="Resource" or attribute-shorthand forms
//     was used,
//   - [Array] for rdf:Bag, rdf:Seq and rdf:Alt containers.
//
// Qualifiers end up in the tag's Attr map, with xml:lang under the
// key "lang".
//
// # Parsers
//
// XML parsing is pluggable.  The [xmldom] subpackage ships the default
// parser; another implementation of [xmldom.Parser] can be injected
// per call with [WithParser] or installed process-wide with
// [SetDefaultParser].
package exifreader
