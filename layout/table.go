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

import (
	"go.uber.org/zap"

	"seehuhn.de/go/invoice/config"
)

// RowKind distinguishes the table header from the data rows.
type RowKind int

// These are the kinds of table rows.
const (
	HeaderRow RowKind = iota
	DataRow
)

// cell is a piece of text in a table row.
type cell struct {
	text   string
	slot   config.Slot
	weight config.FontWeight
	color  config.ColorCode
	align  config.Align
}

// DrawRow draws one row of the parts table, followed by a separator line.
// Header rows use the bold font and the primary colour, data rows use the
// normal font and the secondary colour.  Columns with the price flag set
// are formatted as amounts of money.
func (s *Session) DrawRow(kind RowKind, columns []config.Column) {
	if len(columns) == 0 {
		return
	}

	weight, color := config.WeightNormal, config.ColorSecondary
	if kind == HeaderRow {
		weight, color = config.WeightBold, config.ColorPrimary
		s.tableColumns = len(columns)
	} else if s.tableColumns > 0 && len(columns) != s.tableColumns {
		s.log.Warn("table row does not match the header",
			zap.Int("columns", len(columns)),
			zap.Int("header", s.tableColumns))
	}

	slots := s.columnSlots(len(columns))
	cells := make([]cell, len(columns))
	for i, col := range columns {
		text := col.Value.Text()
		if col.Price {
			text = s.formatPrice(col.Value, nil)
		}
		cells[i] = cell{
			text:   text,
			slot:   slots[i],
			weight: weight,
			color:  color,
		}
	}
	s.drawCells(cells)
	s.separator()
}

// drawCells draws text cells next to each other, starting at the current
// cursor position, and moves the cursor below the tallest cell.
func (s *Session) drawCells(cells []cell) {
	maxY := s.cursor.Y
	onBreak := func() {
		maxY = s.cursor.Y
	}
	for _, c := range cells {
		s.cursor.X = c.slot.Position
		s.PlaceText(c.text, &TextOptions{
			Weight:      c.weight,
			ColorCode:   c.color,
			Align:       c.align,
			MaxWidth:    c.slot.MaxWidth,
			SkipDown:    true,
			OnPageBreak: onBreak,
		})
		maxY = max(maxY, s.lastBottom)
	}
	s.cursor.Y = maxY
}

// separator draws a horizontal line across the text area at the cursor
// position and moves the cursor below the line.
func (s *Session) separator() {
	doc := &s.cfg.Style.Document
	line := &s.cfg.Style.Table.Line
	y := s.cursor.Y
	s.surf.StrokeLine(doc.MarginLeft, y, s.surf.PageWidth()-doc.MarginRight, y,
		s.color(line.Color), line.Width)
	s.cursor.Y += line.Spacing
}

// columnSlots returns the position and width of each of n table columns.
func (s *Session) columnSlots(n int) []config.Slot {
	table := &s.cfg.Style.Table
	if table.Layout == config.LayoutFixed {
		return s.fixedSlots(n)
	}

	res := make([]config.Slot, n)
	res[n-1] = table.Total
	if n == 1 {
		return res
	}

	left := s.cfg.Style.Document.MarginLeft
	shared := n - 1
	width := (table.Total.Position - left - float64(shared)*table.ColumnGap) / float64(shared)
	if width < 1 {
		s.warnOnce("narrow-columns", "table columns do not fit left of the total column",
			zap.Int("columns", n))
		width = 1
	}
	for i := range shared {
		res[i] = config.Slot{
			Position: left + float64(i)*(width+table.ColumnGap),
			MaxWidth: width,
		}
	}
	return res
}

// fixedSlots returns the configured slots for n columns.  Columns without
// a configured slot are placed to the right of the previous column, using
// the width of the total slot.
func (s *Session) fixedSlots(n int) []config.Slot {
	table := &s.cfg.Style.Table
	res := make([]config.Slot, n)
	for i := range n {
		if i < len(table.Slots) {
			res[i] = table.Slots[i]
			continue
		}

		s.warnOnce("missing-slot", "no slot configured for table column, using a default position",
			zap.Int("column", i))
		x := s.cfg.Style.Document.MarginLeft
		if i > 0 {
			x = res[i-1].Position + res[i-1].MaxWidth + table.ColumnGap
		}
		width := table.Total.MaxWidth
		limit := s.surf.PageWidth() - s.cfg.Style.Document.MarginRight - width
		res[i] = config.Slot{
			Position: min(x, max(limit, 0)),
			MaxWidth: width,
		}
	}
	return res
}
