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

import "strings"

// Chunk locates one XMP segment inside an image buffer.  The container
// reader discovers the segments; this package only consumes them.
type Chunk struct {
	DataOffset int
	Length     int
}

// assembleChunks splits the located segments into up to two XML
// documents: the standard XMP packet (the first chunk alone) and the
// extended XMP (all remaining chunks concatenated in order).
func assembleChunks(buf []byte, chunks []Chunk) []string {
	if len(chunks) == 0 {
		return nil
	}
	docs := []string{decodeUTF8(chunkBytes(buf, chunks[0]))}
	if len(chunks) > 1 {
		var ext strings.Builder
		for _, c := range chunks[1:] {
			ext.WriteString(decodeUTF8(chunkBytes(buf, c)))
		}
		docs = append(docs, ext.String())
	}
	return docs
}

// chunkBytes slices one chunk out of the buffer, clamping descriptors
// that reach past the end.
func chunkBytes(buf []byte, c Chunk) []byte {
	start := c.DataOffset
	if start < 0 || start > len(buf) {
		return nil
	}
	end := start + c.Length
	if c.Length < 0 || end > len(buf) {
		end = len(buf)
	}
	return buf[start:end]
}

// decodeUTF8 interprets raw bytes as UTF-8.  Each invalid byte becomes
// a replacement character rather than aborting the read.
func decodeUTF8(b []byte) string {
	return string([]rune(string(b)))
}

// trimPacket strips everything before the <?xpacket begin?> processing
// instruction and after the <?xpacket end?> one.  This removes the XMP
// packet wrapper together with any framing bytes left over from the
// enclosing image segment.
func trimPacket(s string) string {
	if i := strings.Index(s, "<?xpacket begin"); i >= 0 {
		s = s[i:]
	}
	if i := strings.Index(s, "<?xpacket end"); i >= 0 {
		if j := strings.Index(s[i:], "?>"); j >= 0 {
			s = s[:i+j+2]
		} else {
			s = s[:i]
		}
	}
	return s
}
