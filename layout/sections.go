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
	"fmt"

	"go.uber.org/zap"

	"seehuhn.de/go/invoice/config"
	"seehuhn.de/go/invoice/surface"
)

// header draws the coloured band at the top of the first page, the logo,
// the invoice title and the header lines.
func (s *Session) header() {
	s.log.Debug("section", zap.String("name", "header"))

	doc := &s.cfg.Style.Document
	hdr := &s.cfg.Style.Header
	inv := &s.cfg.Data.Invoice

	s.surf.FillRect(0, 0, s.surf.PageWidth(), hdr.Height, s.color(hdr.BackgroundColor))

	if img := hdr.Image; img != nil && img.Path != "" {
		logo, err := surface.LoadImage(img.Path)
		if err != nil {
			s.fail(fmt.Errorf("header image: %w", err))
		} else {
			s.surf.DrawImage(logo, doc.MarginLeft, doc.MarginTop, img.Width, img.Height)
		}
	}

	s.SetCursor(AxisX, hdr.TextPosition)
	s.SetCursor(AxisY, doc.MarginTop)

	s.PlaceText(inv.Name, &TextOptions{
		Size:   config.SizeHeading,
		Weight: config.WeightBold,
		Color:  hdr.RegularColor,
	})

	for _, line := range inv.Header {
		s.PlaceText(line.Label+":", &TextOptions{
			Weight:    config.WeightBold,
			Color:     hdr.RegularColor,
			MarginTop: hdr.LineMargin,
		})
		for _, v := range line.Value {
			s.PlaceText(v.Text(), &TextOptions{
				ColorCode: config.ColorSecondary,
				Color:     hdr.SecondaryColor,
				MarginTop: hdr.LineMargin,
			})
		}
	}
}

// details draws the customer or the seller block below the header band,
// and records where the block ends.
func (s *Session) details(b Block) {
	s.log.Debug("section", zap.Stringer("name", b))

	det := &s.cfg.Style.Details
	inv := &s.cfg.Data.Invoice

	lines := inv.Customer
	x := s.cfg.Style.Document.MarginLeft
	if b == Seller {
		lines = inv.Seller
		x = s.cfg.Style.Header.TextPosition
	}

	s.SetCursor(AxisY, s.cfg.Style.Header.Height+det.Offset)
	s.SetCursor(AxisX, x)

	for _, line := range lines {
		s.PlaceText(line.Label+":", &TextOptions{
			Weight:    config.WeightBold,
			ColorCode: config.ColorPrimary,
			MarginTop: det.LabelMargin,
			MaxWidth:  det.MaxWidth,
		})
		for _, v := range line.Value {
			s.PlaceText(v.Text(), &TextOptions{
				ColorCode: config.ColorSecondary,
				MarginTop: det.ValueMargin,
				MaxWidth:  det.MaxWidth,
			})
		}
	}

	switch b {
	case Customer:
		s.heights.Customer = s.cursor.Y
	case Seller:
		s.heights.Seller = s.cursor.Y
	}
}

// parts draws the table of invoice parts below the detail blocks, followed
// by the totals.
func (s *Session) parts() {
	s.log.Debug("section", zap.String("name", "parts"))

	table := &s.cfg.Style.Table
	total := &s.cfg.Style.Total
	det := &s.cfg.Data.Invoice.Details

	s.SetCursor(AxisY, max(s.heights.Customer, s.heights.Seller)+table.Gap)

	s.DrawRow(HeaderRow, det.Header)
	for _, part := range det.Parts {
		s.DrawRow(DataRow, part)
	}

	s.cursor.Y += total.Gap

	for _, t := range det.Total {
		value := t.Value.Text()
		if t.Price {
			value = s.formatPrice(t.Value, t.Digits)
		}
		s.cursor.Y += total.MarginTop
		s.drawCells([]cell{
			{
				text:   t.Label,
				slot:   total.Label,
				weight: config.WeightBold,
				color:  config.ColorPrimary,
				align:  total.Align,
			},
			{
				text:   value,
				slot:   total.Value,
				weight: config.WeightNormal,
				color:  config.ColorSecondary,
				align:  total.Align,
			},
		})
	}
}

// legal draws the legal notices at the bottom of the last page.  If the
// notices do not fit below the current content, they are moved to a new
// page.
func (s *Session) legal() {
	s.log.Debug("section", zap.String("name", "legal"))

	leg := &s.cfg.Style.Legal
	notices := s.cfg.Data.Invoice.Legal

	s.cursor.Y += leg.Gap
	if len(notices) == 0 {
		return
	}

	opts := make([]*TextOptions, len(notices))
	var height float64
	for i, n := range notices {
		opts[i] = s.legalOptions(n)
		text, _, h := s.prepare(n.Value, opts[i])
		if h <= 0 && text != "" {
			h = s.cfg.Style.Text.LineFallback
		}
		height += leg.MarginTop + h
	}

	if !s.fits(height) && s.cursor.Y > s.topMargin() {
		s.newPage(nil)
	}
	s.cursor.Y = max(s.cursor.Y, s.surf.MaxY()-height)

	for i, n := range notices {
		s.SetCursor(AxisX, leg.Indent)
		s.PlaceText(n.Value, opts[i])
	}
}

func (s *Session) legalOptions(n config.Legal) *TextOptions {
	leg := &s.cfg.Style.Legal

	color := n.Color
	if color == 0 {
		color = config.ColorPrimary
	}
	align := n.Align
	if align == 0 {
		align = config.AlignCenter
	}
	return &TextOptions{
		Weight:    n.Weight,
		ColorCode: color,
		Align:     align,
		MarginTop: leg.MarginTop,
		MaxWidth:  s.surf.PageWidth() - 2*leg.Indent,
	}
}
