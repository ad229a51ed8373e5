// seehuhn.de/go/invoice - render invoice data as PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package config

import "strings"

// Paper is a page size in PDF units (1/72 inch).
type Paper struct {
	Width, Height float64
}

// Default paper sizes.
var (
	PaperA3     = Paper{Width: 841.890, Height: 1190.551}
	PaperA4     = Paper{Width: 595.276, Height: 841.890}
	PaperA5     = Paper{Width: 420.945, Height: 595.276}
	PaperLetter = Paper{Width: 612, Height: 792}
	PaperLegal  = Paper{Width: 612, Height: 1008}
)

var papers = map[string]Paper{
	"a3":     PaperA3,
	"a4":     PaperA4,
	"a5":     PaperA5,
	"letter": PaperLetter,
	"legal":  PaperLegal,
}

// LookupPaper returns the paper size with the given name.
// Names are case-insensitive.
func LookupPaper(name string) (Paper, bool) {
	p, ok := papers[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}
