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

import "testing"

func TestLocalName(t *testing.T) {
	type testCase struct {
		in   string
		want string
	}
	cases := []testCase{
		{"xmp:CreateDate", "CreateDate"},
		{"tiff:Orientation", "Orientation"},
		{"plain", "plain"},
		{"a:b:c", "b:c"},
		{"MicrosoftPhoto:Rating", "RatingPercent"},
		{"MicroSoftPhoto_1_:Rating", "RatingPercent"},
		{"microsoftphoto_12_:rating", "RatingPercent"},
		{"MicrosoftPhoto:RatingScale", "RatingScale"},
		{"MicrosoftPhoto_x_:Rating", "Rating"},
	}
	for _, tc := range cases {
		if got := localName(tc.in); got != tc.want {
			t.Errorf("localName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAttrLocalName(t *testing.T) {
	if got := attrLocalName("xml:lang"); got != "lang" {
		t.Errorf(`attrLocalName("xml:lang") = %q, want "lang"`, got)
	}
	if got := attrLocalName("bare"); got != "bare" {
		t.Errorf(`attrLocalName("bare") = %q, want "bare"`, got)
	}
}

func TestDescribeScalar(t *testing.T) {
	type testCase struct {
		qname string
		value string
		want  string
	}
	cases := []testCase{
		{"tiff:Orientation", "1", "Horizontal (normal)"},
		{"tiff:Orientation", "3", "Rotate 180"},
		{"tiff:Orientation", "8", "Rotate 270 CW"},
		{"tiff:Orientation", "42", "42"},
		{"tiff:ResolutionUnit", "2", "inches"},
		{"exif:ColorSpace", "65535", "Uncalibrated"},
		{"exif:MeteringMode", "5", "Pattern"},
		{"xmp:CreatorTool", "SomeTool 1.0", "SomeTool 1.0"},
	}
	for _, tc := range cases {
		if got := describeScalar(tc.qname, tc.value); got != tc.want {
			t.Errorf("describeScalar(%q, %q) = %q, want %q", tc.qname, tc.value, got, tc.want)
		}
	}
}

func TestDescribeStruct(t *testing.T) {
	s := Struct{
		"CiAdrCity": textTag("Lund"),
		"CiTelWork": textTag("123"),
		"Other":     textTag("x"),
	}
	// raw keys sort the output; renames apply per key
	want := "CreatorCity: Lund; CreatorWorkPhone: 123; Other: x"
	if got := describeStruct(s); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDescribeArray(t *testing.T) {
	arr := Array{
		textTag("a"),
		Struct{"K": textTag("v")},
	}
	if got := describeArray("xmp:Things", arr); got != "a, K: v" {
		t.Errorf("got %q", got)
	}
}

func TestDescribeArrayTranslator(t *testing.T) {
	arr := Array{textTag("2"), textTag("2")}
	if got := describeArray("tiff:YCbCrSubSampling", arr); got != "YCbCr4:2:0" {
		t.Errorf("got %q", got)
	}
	arr = Array{textTag("1"), textTag("1")}
	if got := describeArray("tiff:YCbCrSubSampling", arr); got != "1, 1" {
		t.Errorf("got %q", got)
	}
}
