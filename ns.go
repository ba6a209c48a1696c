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
	"regexp"
	"sort"
	"strings"
)

const (
	// xmlNamespace is the namespace for XML.
	xmlNamespace = "http://www.w3.org/XML/1998/namespace"

	// RDFNamespace is the namespace for RDF.
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
)

// knownNamespaces maps well-known XMP prefixes to their canonical
// namespace URIs.  The table is used to repair documents whose writer
// omitted the xmlns declarations.
var knownNamespaces = map[string]string{
	"xml":            xmlNamespace,
	"rdf":            RDFNamespace,
	"x":              "adobe:ns:meta/",
	"xmp":            "http://ns.adobe.com/xap/1.0/",
	"xmpMM":          "http://ns.adobe.com/xap/1.0/mm/",     // XMP Media Management
	"xmpRights":      "http://ns.adobe.com/xap/1.0/rights/", // XMP Rights Management
	"xmpidq":         "http://ns.adobe.com/xmp/Identifier/qual/1.0/",
	"xmpGImg":        "http://ns.adobe.com/xap/1.0/g/img/",
	"stRef":          "http://ns.adobe.com/xap/1.0/sType/ResourceRef#", // ResourceRef
	"dc":             "http://purl.org/dc/elements/1.1/",               // Dublin Core
	"tiff":           "http://ns.adobe.com/tiff/1.0/",
	"exif":           "http://ns.adobe.com/exif/1.0/",
	"aux":            "http://ns.adobe.com/exif/1.0/aux/",
	"photoshop":      "http://ns.adobe.com/photoshop/1.0/",
	"crs":            "http://ns.adobe.com/camera-raw-settings/1.0/",
	"Iptc4xmpCore":   "http://iptc.org/std/Iptc4xmpCore/1.0/xmlns/",
	"MicrosoftPhoto": "http://ns.microsoft.com/photo/1.0/",
}

var (
	elemPrefixRegexp = regexp.MustCompile(`</?([A-Za-z_][A-Za-z0-9_.-]*):`)
	attrPrefixRegexp = regexp.MustCompile(`[\s"']([A-Za-z_][A-Za-z0-9_.-]*):[A-Za-z_][A-Za-z0-9_.-]*\s*=`)
	firstTagRegexp   = regexp.MustCompile(`<[A-Za-z_][^\s/>]*`)
)

// declareMissingNamespaces inserts xmlns declarations for the prefixes
// used in src onto its first start tag.  Prefixes already declared
// somewhere in the source are left alone; known prefixes receive their
// canonical URI, the rest a synthesized one.  The second return value
// reports whether anything was inserted.
func declareMissingNamespaces(src string) (string, bool) {
	used := make(map[string]bool)
	for _, m := range elemPrefixRegexp.FindAllStringSubmatch(src, -1) {
		used[m[1]] = true
	}
	for _, m := range attrPrefixRegexp.FindAllStringSubmatch(src, -1) {
		used[m[1]] = true
	}

	var missing []string
	for p := range used {
		if p == "xml" || p == "xmlns" {
			continue
		}
		if strings.Contains(src, "xmlns:"+p) {
			continue
		}
		missing = append(missing, p)
	}
	if len(missing) == 0 {
		return src, false
	}
	sort.Strings(missing)

	loc := firstTagRegexp.FindStringIndex(src)
	if loc == nil {
		return src, false
	}
	var decls strings.Builder
	for _, p := range missing {
		uri, ok := knownNamespaces[p]
		if !ok {
			uri = "urn:x-prefix:" + p
		}
		decls.WriteString(` xmlns:` + p + `="` + uri + `"`)
	}
	return src[:loc[1]] + decls.String() + src[loc[1]:], true
}
