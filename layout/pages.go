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

package layout

import "go.uber.org/zap"

// topMargin returns the y coordinate where content starts on a new page.
func (s *Session) topMargin() float64 {
	return s.cfg.Style.Document.MarginTop
}

// fitTolerance is the amount by which a block may overshoot the bottom of
// the page, to absorb rounding errors in the computed positions.
const fitTolerance = 1e-6

// fits reports whether a block of the given height fits onto the current
// page below the cursor.
func (s *Session) fits(height float64) bool {
	return s.cursor.Y+height <= s.surf.MaxY()+fitTolerance
}

// newPage starts a new page, moves the cursor to the top margin and calls
// onBreak, if given.
func (s *Session) newPage(onBreak func()) {
	s.surf.AddPage()
	s.page++
	s.cursor.Y = s.topMargin()
	s.log.Debug("page break", zap.Int("page", s.page))
	if onBreak != nil {
		onBreak()
	}
}
