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

import "github.com/golang/glog"

// DiagnosticSink receives the reader's warnings.  Reading never fails;
// anything that had to be skipped or recovered is reported here.
type DiagnosticSink interface {
	Warningf(format string, args ...any)
}

// glogSink is the default sink.
type glogSink struct{}

func (glogSink) Warningf(format string, args ...any) {
	glog.Warningf(format, args...)
}

// DiscardDiagnostics is a sink that drops all warnings.
var DiscardDiagnostics DiagnosticSink = discardSink{}

type discardSink struct{}

func (discardSink) Warningf(string, ...any) {}
