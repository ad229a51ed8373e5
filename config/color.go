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

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a colour in hexadecimal notation, either "#RRGGBB" or "#RGB".
// The empty Color is unset.
type Color string

// RGB returns the red, green and blue components of c in the range [0, 1].
func (c Color) RGB() (r, g, b float64, err error) {
	s, ok := strings.CutPrefix(strings.TrimSpace(string(c)), "#")
	if !ok {
		return 0, 0, 0, fmt.Errorf("invalid colour %q", string(c))
	}
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid colour %q", string(c))
	}
	x, parseErr := strconv.ParseUint(s, 16, 32)
	if parseErr != nil {
		return 0, 0, 0, fmt.Errorf("invalid colour %q", string(c))
	}
	r = float64(x>>16&0xFF) / 255
	g = float64(x>>8&0xFF) / 255
	b = float64(x&0xFF) / 255
	return r, g, b, nil
}
