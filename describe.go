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

	"golang.org/x/exp/maps"
)

// Some writers emit the Microsoft rating under numbered namespace
// variants (MicrosoftPhoto_1_:Rating and so on).
var ratingPercentRegexp = regexp.MustCompile(`(?i)^microsoftphoto(_\d+_)?:rating$`)

// localName returns a tag name without its namespace prefix.  The
// MicrosoftPhoto rating property normalizes to RatingPercent.
func localName(qname string) string {
	if ratingPercentRegexp.MatchString(qname) {
		return "RatingPercent"
	}
	return attrLocalName(qname)
}

// attrLocalName strips the namespace prefix from a qualified name.
// The qualified xml:lang becomes lang like every other attribute.
func attrLocalName(qname string) string {
	if i := strings.Index(qname, ":"); i >= 0 {
		return qname[i+1:]
	}
	return qname
}

// scalarTranslator rewrites a raw scalar value into its display form.
type scalarTranslator func(value string) (string, error)

// arrayTranslator renders an array from the display forms of its
// elements.
type arrayTranslator func(elements []string) (string, error)

// mapValue builds a translator from a lookup table.  Unknown values
// pass through verbatim.
func mapValue(table map[string]string) scalarTranslator {
	return func(value string) (string, error) {
		if s, ok := table[value]; ok {
			return s, nil
		}
		return value, nil
	}
}

// scalarTranslators is indexed by the property's original qualified
// name.  The tables follow the standard EXIF value translations.
var scalarTranslators = map[string]scalarTranslator{
	"tiff:Orientation": mapValue(map[string]string{
		"1": "Horizontal (normal)",
		"2": "Mirror horizontal",
		"3": "Rotate 180",
		"4": "Mirror vertical",
		"5": "Mirror horizontal and rotate 270 CW",
		"6": "Rotate 90 CW",
		"7": "Mirror horizontal and rotate 90 CW",
		"8": "Rotate 270 CW",
	}),
	"tiff:ResolutionUnit": mapValue(map[string]string{
		"2": "inches",
		"3": "cm",
	}),
	"tiff:YCbCrPositioning": mapValue(map[string]string{
		"1": "Centered",
		"2": "Co-sited",
	}),
	"exif:ColorSpace": mapValue(map[string]string{
		"1":     "sRGB",
		"65535": "Uncalibrated",
	}),
	"exif:ExposureProgram": mapValue(map[string]string{
		"0": "Undefined",
		"1": "Manual",
		"2": "Normal program",
		"3": "Aperture priority",
		"4": "Shutter priority",
		"5": "Creative program",
		"6": "Action program",
		"7": "Portrait mode",
		"8": "Landscape mode",
	}),
	"exif:MeteringMode": mapValue(map[string]string{
		"1":   "Average",
		"2":   "CenterWeightedAverage",
		"3":   "Spot",
		"4":   "MultiSpot",
		"5":   "Pattern",
		"6":   "Partial",
		"255": "Other",
	}),
}

var arrayTranslators = map[string]arrayTranslator{
	"tiff:YCbCrSubSampling": func(elements []string) (string, error) {
		switch strings.Join(elements, ",") {
		case "2,1":
			return "YCbCr4:2:2", nil
		case "2,2":
			return "YCbCr4:2:0", nil
		}
		return strings.Join(elements, ", "), nil
	},
}

// creatorContactKeys maps the IPTC Core CreatorContactInfo field names
// to their display names.
var creatorContactKeys = map[string]string{
	"CiAdrCity":   "CreatorCity",
	"CiAdrCtry":   "CreatorCountry",
	"CiAdrExtadr": "CreatorAddress",
	"CiAdrPcode":  "CreatorPostalCode",
	"CiAdrRegion": "CreatorRegion",
	"CiEmailWork": "CreatorWorkEmail",
	"CiTelWork":   "CreatorWorkPhone",
	"CiUrlWork":   "CreatorWorkUrl",
}

// describeScalar renders a scalar value, applying the translator
// registered for the property's qualified name.  A translator failure
// falls back to the raw value.
func describeScalar(qname, value string) string {
	if tr, ok := scalarTranslators[qname]; ok {
		if s, err := tr(value); err == nil {
			return s
		}
	}
	return value
}

// describeArray joins the display forms of the elements, unless an
// array translator is registered for the property.
func describeArray(qname string, arr Array) string {
	elements := make([]string, len(arr))
	for i, item := range arr {
		elements[i] = describeValue(item)
	}
	if tr, ok := arrayTranslators[qname]; ok {
		if s, err := tr(elements); err == nil {
			return s
		}
	}
	return strings.Join(elements, ", ")
}

// describeStruct renders "Key: Value" pairs sorted by member name.
func describeStruct(s Struct) string {
	keys := maps.Keys(s)
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		name := k
		if display, ok := creatorContactKeys[k]; ok {
			name = display
		}
		parts = append(parts, name+": "+s[k].Description)
	}
	return strings.Join(parts, "; ")
}

// describeValue renders any tag value.  Array elements use their own
// description when they carry one.
func describeValue(v Value) string {
	switch v := v.(type) {
	case Tag:
		return v.Description
	case Text:
		return string(v)
	case Struct:
		return describeStruct(v)
	case Array:
		return describeArray("", v)
	}
	return ""
}
